package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/travel-route-planner/internal/model"
	"github.com/iliyamo/travel-route-planner/internal/queue"
	"github.com/iliyamo/travel-route-planner/internal/repository"
	"github.com/iliyamo/travel-route-planner/internal/response"
	"github.com/iliyamo/travel-route-planner/internal/service"
)

// RouteHandler bundles dependencies for the route endpoints.  The
// catalog resolves the location/housing/restaurant ids a route is
// assembled from.
type RouteHandler struct {
	Routes  *service.RouteService
	Catalog *repository.CatalogRepo
}

func NewRouteHandler(routes *service.RouteService, catalog *repository.CatalogRepo) *RouteHandler {
	return &RouteHandler{Routes: routes, Catalog: catalog}
}

type createRouteReq struct {
	Name            string   `json:"name"`
	StartLocationID uint64   `json:"start_location_id"`
	EndLocationID   uint64   `json:"end_location_id"`
	StopLocationIDs []uint64 `json:"stop_location_ids"`
	HousingIDs      []uint64 `json:"housing_ids"`
	RestaurantIDs   []uint64 `json:"restaurant_ids"`
}

type updateStatusReq struct {
	State string `json:"state"`
}

// CreateRoute assembles a route from catalog ids through the route
// builder and stores it under the authenticated user.  The builder
// allocates the route id up front; ids are global and never reused.
func (h *RouteHandler) CreateRoute(c echo.Context) error {
	token, err := getToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, response.Err[struct{}]("unauthorized"))
	}
	var req createRouteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Err[struct{}]("invalid body"))
	}

	start, ok := h.Catalog.LocationByID(req.StartLocationID)
	if !ok {
		return c.JSON(http.StatusBadRequest, response.Err[struct{}]("unknown start location"))
	}
	end, ok := h.Catalog.LocationByID(req.EndLocationID)
	if !ok {
		return c.JSON(http.StatusBadRequest, response.Err[struct{}]("unknown end location"))
	}

	b := h.Routes.NewRouteBuilder().SetName(req.Name).SetStart(start).SetEnd(end)
	for _, id := range req.StopLocationIDs {
		stop, ok := h.Catalog.LocationByID(id)
		if !ok {
			return c.JSON(http.StatusBadRequest, response.Err[struct{}]("unknown stop location"))
		}
		b.AddStop(stop)
	}
	for _, id := range req.HousingIDs {
		hs, ok := h.Catalog.HousingByID(id)
		if !ok {
			return c.JSON(http.StatusBadRequest, response.Err[struct{}]("unknown housing"))
		}
		b.AddHousing(hs)
	}
	for _, id := range req.RestaurantIDs {
		r, ok := h.Catalog.RestaurantByID(id)
		if !ok {
			return c.JSON(http.StatusBadRequest, response.Err[struct{}]("unknown restaurant"))
		}
		b.AddRestaurant(r)
	}

	route := b.Build()
	if err := h.Routes.AddRoute(token, route); err != nil {
		return c.JSON(statusFor(err), response.Err[struct{}](err.Error()))
	}

	// Best effort: route creation succeeds whether or not the broker is up.
	_ = queue.PublishRouteEvent(c.Request().Context(), queue.RouteEvent{
		Kind:       queue.KindRouteCreated,
		RouteID:    route.ID,
		OwnerID:    route.OwnerID,
		RouteName:  route.Name,
		State:      string(route.State),
		StartName:  start.Name,
		EndName:    end.Name,
		Stops:      len(route.Path.Stops),
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, response.OK(route))
}

// ListRoutes returns the authenticated user's routes in insertion order.
// The optional end_location and start_location query parameters narrow
// the list by path end/start location id and combine as an AND.
func (h *RouteHandler) ListRoutes(c echo.Context) error {
	token, err := getToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, response.Err[struct{}]("unauthorized"))
	}
	endFilter, err := queryID(c, "end_location")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Err[struct{}]("invalid end_location"))
	}
	startFilter, err := queryID(c, "start_location")
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Err[struct{}]("invalid start_location"))
	}
	routes, err := h.Routes.GetRoutes(token, endFilter, startFilter)
	if err != nil {
		return c.JSON(statusFor(err), response.Err[struct{}](err.Error()))
	}
	return c.JSON(http.StatusOK, response.OK(routes))
}

// UpdateStatus overwrites the lifecycle state of one of the user's own
// routes.  Any state is accepted from any state; an unknown route id
// leaves the store unchanged.
func (h *RouteHandler) UpdateStatus(c echo.Context) error {
	token, err := getToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, response.Err[struct{}]("unauthorized"))
	}
	routeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Err[struct{}]("invalid id"))
	}
	var req updateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Err[struct{}]("invalid body"))
	}
	state := model.RouteState(req.State)
	if !model.ValidRouteState(state) {
		return c.JSON(http.StatusBadRequest, response.Err[struct{}]("invalid state"))
	}
	if err := h.Routes.UpdateRouteStatus(token, routeID, state); err != nil {
		return c.JSON(statusFor(err), response.Err[struct{}](err.Error()))
	}

	ownerID, _ := getUserID(c)
	_ = queue.PublishRouteEvent(c.Request().Context(), queue.RouteEvent{
		Kind:       queue.KindRouteStatusChanged,
		RouteID:    routeID,
		OwnerID:    ownerID,
		State:      string(state),
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, response.Empty())
}

// DeleteRoute removes exactly one route by id from the user's own list.
// Deleting the same id twice fails the second time.
func (h *RouteHandler) DeleteRoute(c echo.Context) error {
	token, err := getToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, response.Err[struct{}]("unauthorized"))
	}
	routeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Err[struct{}]("invalid id"))
	}
	if err := h.Routes.DeleteRoute(token, routeID); err != nil {
		return c.JSON(statusFor(err), response.Err[struct{}](err.Error()))
	}
	return c.JSON(http.StatusOK, response.Empty())
}

// queryID parses an optional numeric query parameter, returning nil when
// the parameter is absent.
func queryID(c echo.Context, name string) (*uint64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
