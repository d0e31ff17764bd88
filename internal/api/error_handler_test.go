package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cinepass/cinema-platform/internal/core/domain"
)

func TestHTTPErrorHandler_DomainErrorMapping(t *testing.T) {
	tests := []struct {
		err      error
		wantCode int
		wantMsg  string
	}{
		{domain.ErrLoginFailed, http.StatusUnauthorized, "Login failed"},
		{domain.ErrTokenNotFound, http.StatusNotFound, "Token not found or invalid"},
		{domain.ErrRefreshInvalid, http.StatusNotFound, "Invalid or expired refresh token"},
		{domain.ErrUnauthenticated, http.StatusUnauthorized, "Access denied. No token provided."},
		{domain.ErrForbidden, http.StatusForbidden, "Access denied. Requires admin role or ownership of the account."},
		{domain.ErrValidationUnavailable, http.StatusServiceUnavailable, "Token validation failed."},
		{domain.ErrCatalogUnavailable, http.StatusServiceUnavailable, "Movie lookup failed."},
		{domain.ErrUserExists, http.StatusConflict, "User already exists."},
		{domain.ErrMovieNotFound, http.StatusNotFound, "Movie not found"},
		{domain.ErrMovieNotBookable, http.StatusBadRequest, "Reservations are not available for this movie."},
		{domain.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
		{domain.ErrInvalidInput, http.StatusBadRequest, "Invalid payload"},
	}

	for _, tt := range tests {
		t.Run(tt.wantMsg, func(t *testing.T) {
			e := echo.New()
			e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
			e.GET("/boom", func(c echo.Context) error {
				return tt.err
			})

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			var body struct {
				Message string `json:"message"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Message != tt.wantMsg {
				t.Fatalf("expected message %q, got %q", tt.wantMsg, body.Message)
			}
		})
	}
}

// Unexpected errors never leak their cause to the client.
func TestHTTPErrorHandler_UnknownErrorIsOpaque(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("mongo: connection pool exhausted")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, "Server error.") || strings.Contains(body, "mongo") {
		t.Fatalf("unexpected body: %s", body)
	}
}
