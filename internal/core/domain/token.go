package domain

import "time"

// TokenClaims is the claims snapshot embedded in a signed token. It is
// authoritative until the token expires: a role change or account closure
// after issuance is not reflected in already-minted tokens.
type TokenClaims struct {
	UserUID   string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenPair is the result of issuing or refreshing credentials. Both tokens
// are minted together; there is no partial result.
type TokenPair struct {
	AccessToken      string    `json:"accessToken"`
	AccessExpiresAt  time.Time `json:"accessTokenExpiresAt"`
	RefreshToken     string    `json:"refreshToken"`
	RefreshExpiresAt time.Time `json:"refreshTokenExpiresAt"`
}
