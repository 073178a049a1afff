package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/travel-route-planner/internal/handler"
	"github.com/iliyamo/travel-route-planner/internal/middleware"
	"github.com/iliyamo/travel-route-planner/internal/service"
)

// RegisterRouteAPI registers the route management endpoints under /v1.
// Every role may manage its own routes, guests included, so the group
// only requires a valid session token.  Ownership is enforced inside the
// route service: a token can never reach another user's routes.
func RegisterRouteAPI(e *echo.Echo, r *handler.RouteHandler, auth *service.AuthService) {
	g := e.Group("/v1", middleware.TokenAuth(auth))
	g.POST("/routes", r.CreateRoute)
	g.GET("/routes", r.ListRoutes)
	g.PATCH("/routes/:id/status", r.UpdateStatus)
	g.DELETE("/routes/:id", r.DeleteRoute)
}
