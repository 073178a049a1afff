package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/travel-route-planner/internal/repository"
	"github.com/iliyamo/travel-route-planner/internal/response"
)

// PublicHandler exposes the read-only catalog the route form is built
// from.  No authentication is required so guests can browse locations,
// housings and restaurants before creating an account.
type PublicHandler struct {
	Catalog *repository.CatalogRepo
}

func NewPublicHandler(catalog *repository.CatalogRepo) *PublicHandler {
	return &PublicHandler{Catalog: catalog}
}

// GetLocations lists all catalog locations.
func (h *PublicHandler) GetLocations(c echo.Context) error {
	return c.JSON(http.StatusOK, response.OK(h.Catalog.Locations()))
}

// GetHousings lists all catalog housing options.
func (h *PublicHandler) GetHousings(c echo.Context) error {
	return c.JSON(http.StatusOK, response.OK(h.Catalog.Housings()))
}

// GetRestaurants lists all catalog restaurants.
func (h *PublicHandler) GetRestaurants(c echo.Context) error {
	return c.JSON(http.StatusOK, response.OK(h.Catalog.Restaurants()))
}
