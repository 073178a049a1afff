package router

// This file registers the admin-only user directory endpoints.  They are
// kept separate from the other registrars so the role requirement is
// visible in one place.

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/travel-route-planner/internal/handler"
	"github.com/iliyamo/travel-route-planner/internal/middleware"
	"github.com/iliyamo/travel-route-planner/internal/model"
	"github.com/iliyamo/travel-route-planner/internal/service"
)

// RegisterAdmin registers user management endpoints under /v1/admin.
// All routes require a valid session token and the Admin role.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, auth *service.AuthService) {
	g := e.Group(
		"/v1/admin",
		middleware.TokenAuth(auth),
		middleware.RequireRole(string(model.RoleAdmin)),
	)
	g.GET("/users/:id", a.GetUser)
	g.PATCH("/users/:id/name", a.RenameUser)
	g.POST("/users/:id/promote", a.PromoteUser)
	g.DELETE("/users/:id", a.DeleteUser)
}
