package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cinepass/cinema-platform/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"message": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes. Transient dependency
	// outages map to 5xx, never to an auth failure.
	switch {
	case errors.Is(err, domain.ErrLoginFailed):
		return http.StatusUnauthorized, "Login failed"
	case errors.Is(err, domain.ErrTokenNotFound):
		return http.StatusNotFound, "Token not found or invalid"
	case errors.Is(err, domain.ErrRefreshInvalid):
		return http.StatusNotFound, "Invalid or expired refresh token"
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "Access denied. No token provided."
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Access denied. Requires admin role or ownership of the account."
	case errors.Is(err, domain.ErrValidationUnavailable):
		return http.StatusServiceUnavailable, "Token validation failed."
	case errors.Is(err, domain.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable, "Movie lookup failed."
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "User already exists."
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "No user found with the given UID"
	case errors.Is(err, domain.ErrMovieNotFound):
		return http.StatusNotFound, "Movie not found"
	case errors.Is(err, domain.ErrMovieNotBookable):
		return http.StatusBadRequest, "Reservations are not available for this movie."
	case errors.Is(err, domain.ErrReservationNotFound):
		return http.StatusNotFound, "Reservation not found"
	case errors.Is(err, domain.ErrCinemaNotFound):
		return http.StatusNotFound, "Cinema not found"
	case errors.Is(err, domain.ErrRoomNotFound):
		return http.StatusNotFound, "Room not found"
	case errors.Is(err, domain.ErrSeanceNotFound):
		return http.StatusNotFound, "Seance not found"
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "Invalid payload"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Server error."
}
