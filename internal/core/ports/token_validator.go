package ports

import (
	"context"

	"github.com/cinepass/cinema-platform/internal/core/domain"
)

// TokenValidator is the cross-service trust boundary: the capability to decide
// whether an access token is valid. The identity service implements it
// in-process against the signing secret; every other service uses an HTTP
// client implementation so the secret stays confined to the identity process.
//
// Validate returns the claims snapshot for a valid token,
// domain.ErrTokenNotFound for any invalid token, and
// domain.ErrValidationUnavailable when the validator cannot be reached.
type TokenValidator interface {
	Validate(ctx context.Context, accessToken string) (*domain.TokenClaims, error)
}
