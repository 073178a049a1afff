package middleware // middleware provides shared request processing for handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/travel-route-planner/internal/response"
)

// RequireRole returns a middleware that enforces that the authenticated
// user has one of the given roles.  The values correspond to the role the
// TokenAuth middleware stored in the context under "role".  Requests with
// a missing or disallowed role are rejected with 403 Forbidden.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	// Build a set of allowed roles once at registration time.
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			v := c.Get("role")
			role, ok := v.(string)
			if !ok || !allowed[role] {
				return c.JSON(http.StatusForbidden, response.Err[struct{}]("forbidden"))
			}
			return next(c)
		}
	}
}
