package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/travel-route-planner/internal/handler"
	"github.com/iliyamo/travel-route-planner/internal/middleware"
	"github.com/iliyamo/travel-route-planner/internal/service"
)

// RegisterAuth registers the authentication endpoints.  Operations that
// create or destroy a session live under /v1/auth and take no middleware:
// register, login and guest creation mint tokens, while logout and verify
// read the bearer header themselves so an already-revoked token still gets
// the service's own "Invalid token" answer instead of a middleware reject.
// The profile endpoints live under /v1 behind the token middleware.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, auth *service.AuthService) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/guest", a.Guest)
	g.POST("/logout", a.Logout)
	g.GET("/verify", a.Verify)

	me := e.Group("/v1", middleware.TokenAuth(auth))
	me.GET("/me", a.Me)
	me.PATCH("/me", a.RenameMe)
}
