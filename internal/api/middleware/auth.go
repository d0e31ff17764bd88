package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cinepass/cinema-platform/internal/core/domain"
	"github.com/cinepass/cinema-platform/internal/core/ports"
)

// Authenticate validates the bearer token through the injected validator and
// puts the caller's uid and role into the request context. The identity
// service injects its in-process validator; the other services inject the
// HTTP client, so the signing secret never leaves the identity process.
//
// Outcomes are kept distinct: a missing or invalid token is an authentication
// failure, while an unreachable validator surfaces as service-unavailable so
// a transient outage never reads as a bad credential.
func Authenticate(v ports.TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c)
			if !ok {
				return domain.ErrUnauthenticated
			}

			claims, err := v.Validate(c.Request().Context(), token)
			if err != nil {
				// ErrValidationUnavailable passes through untouched; the
				// error handler maps it to 503, never 401.
				return err
			}

			c.Set("uid", claims.UserUID)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}

// RequireRoles enforces role-based access control on top of Authenticate.
func RequireRoles(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

// RequireAdmin is the local administrator-only gate.
func RequireAdmin() echo.MiddlewareFunc {
	return RequireRoles(domain.RoleAdmin)
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
