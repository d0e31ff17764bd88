package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/cinepass/cinema-platform/internal/core/domain"
)

// callerIdentity extracts the identity injected by the Authenticate
// middleware. A missing uid or role means the middleware did not run for this
// route, which is a wiring error surfaced as unauthenticated rather than a
// panic deeper down.
func callerIdentity(c echo.Context) (uid, role string, err error) {
	uid, _ = c.Get("uid").(string)
	role, _ = c.Get("role").(string)
	if uid == "" || role == "" {
		return "", "", domain.ErrUnauthenticated
	}
	return uid, role, nil
}

// resolveAccountUID maps the "me" path alias to the caller's own uid.
func resolveAccountUID(param, callerUID string) string {
	if param == "me" {
		return callerUID
	}
	return param
}
