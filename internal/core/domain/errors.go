package domain

import "errors"

// Authentication and authorization errors.
var (
	// ErrLoginFailed covers both an unknown login and a wrong password so the
	// response never reveals whether an account exists.
	ErrLoginFailed = errors.New("login failed")

	// ErrTokenNotFound is the single outward result for every invalid access
	// token. The precise reason (malformed, bad signature, expired) is kept
	// internally for logs and metrics only.
	ErrTokenNotFound = errors.New("token not found or invalid")

	ErrRefreshInvalid  = errors.New("invalid or expired refresh token")
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("access forbidden")

	// ErrValidationUnavailable means the remote token validator could not be
	// reached. It must surface as a 5xx outcome, never as an auth failure.
	ErrValidationUnavailable = errors.New("token validation unavailable")
)

// Codec-internal validation reasons. Collapsed to ErrTokenNotFound or
// ErrRefreshInvalid before they cross the API boundary.
var (
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired          = errors.New("token expired")
)

// Resource errors.
var (
	ErrUserExists          = errors.New("user already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrMovieNotFound       = errors.New("movie not found")
	ErrMovieNotBookable    = errors.New("reservations are not available for this movie")
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrCatalogUnavailable means the movie service could not be reached for
	// the read-only lookup that precedes reservation creation.
	ErrCatalogUnavailable = errors.New("movie service unavailable")

	ErrCinemaNotFound      = errors.New("cinema not found")
	ErrRoomNotFound        = errors.New("room not found")
	ErrSeanceNotFound      = errors.New("seance not found")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrInvalidInput        = errors.New("invalid input")
)
