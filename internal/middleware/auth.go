package middleware // middleware contains reusable HTTP middleware functions

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/travel-route-planner/internal/response"
	"github.com/iliyamo/travel-route-planner/internal/service"
)

// TokenAuth returns an Echo middleware that validates the opaque bearer
// token against the session table and injects the resolved user into the
// request context.  Tokens carry no claims; validity means exactly one
// thing: the token is currently bound to a user, i.e. it was issued and
// has not been logged out.  Handlers read the identity via
// c.Get("user_id"), c.Get("role") and c.Get("token").
func TokenAuth(auth *service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(h, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, response.Err[struct{}]("missing bearer token"))
			}
			token := strings.TrimPrefix(h, "Bearer ")
			u, err := auth.GetUser(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, response.Err[struct{}](err.Error()))
			}
			c.Set("token", token)
			c.Set("user_id", u.ID)
			c.Set("role", string(u.Role))
			return next(c)
		}
	}
}
