package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/travel-route-planner/internal/handler"
)

// RegisterRoutes registers routes that require no authentication.
// Currently that is only the health check, used by load balancers and
// monitoring to verify the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the unauthenticated catalog browse endpoints.
// Guests use these to inspect locations, housings and restaurants before
// assembling a route.  The optional cache middleware is applied here so
// repeated catalog reads are served from Redis.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/v1", mw...)
	g.GET("/locations", p.GetLocations)
	g.GET("/housings", p.GetHousings)
	g.GET("/restaurants", p.GetRestaurants)
}
