package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cinepass/cinema-platform/internal/core/domain"
)

// SecretClass selects which signing secret a token is bound to. Access and
// refresh tokens use disjoint secrets so that possession of one class's
// secret cannot forge the other.
type SecretClass int

const (
	AccessClass SecretClass = iota
	RefreshClass
)

const (
	AccessTokenTTL  = 60 * time.Minute
	RefreshTokenTTL = 120 * time.Minute
)

// tokenClaims is the wire shape of a signed token.
type tokenClaims struct {
	UserUID string `json:"userId"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies both token classes with HS256. The clock is
// injectable so expiry behavior can be tested without waiting.
type TokenCodec struct {
	accessSecret  []byte
	refreshSecret []byte
	now           func() time.Time
}

// NewTokenCodec builds a codec from the two configured secrets. An empty
// secret is a fatal misconfiguration, not a runtime condition to recover from.
func NewTokenCodec(accessSecret, refreshSecret string) (*TokenCodec, error) {
	if accessSecret == "" {
		return nil, errors.New("token codec: access signing secret is not configured")
	}
	if refreshSecret == "" {
		return nil, errors.New("token codec: refresh signing secret is not configured")
	}
	return &TokenCodec{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		now:           time.Now,
	}, nil
}

// WithClock overrides the codec's time source. Intended for tests.
func (c *TokenCodec) WithClock(now func() time.Time) *TokenCodec {
	c.now = now
	return c
}

func (c *TokenCodec) secret(class SecretClass) []byte {
	if class == RefreshClass {
		return c.refreshSecret
	}
	return c.accessSecret
}

// Sign mints a token for the given subject and role, valid from now for ttl.
func (c *TokenCodec) Sign(userUID, role string, class SecretClass, ttl time.Duration) (string, *domain.TokenClaims, error) {
	now := c.now().UTC()
	expiresAt := now.Add(ttl)

	claims := tokenClaims{
		UserUID: userUID,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret(class))
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	return signed, &domain.TokenClaims{
		UserUID:   userUID,
		Role:      role,
		IssuedAt:  now,
		ExpiresAt: expiresAt,
	}, nil
}

// Verify checks the signature under the given class's secret and the encoded
// expiry. Failures are reported with the precise internal reason
// (domain.ErrTokenMalformed, ErrTokenSignatureInvalid, ErrTokenExpired);
// callers collapse these before the API boundary but must keep them apart for
// audit purposes.
func (c *TokenCodec) Verify(token string, class SecretClass) (*domain.TokenClaims, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret(class), nil
	}, jwt.WithTimeFunc(func() time.Time { return c.now() }), jwt.WithExpirationRequired())

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, domain.ErrTokenSignatureInvalid
		default:
			return nil, domain.ErrTokenMalformed
		}
	}
	if !parsed.Valid {
		return nil, domain.ErrTokenSignatureInvalid
	}

	out := &domain.TokenClaims{UserUID: claims.UserUID, Role: claims.Role}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
