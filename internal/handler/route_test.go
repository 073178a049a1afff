package handler_test

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func itoa(id uint64) string { return strconv.FormatUint(id, 10) }

type locationView struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type routeView struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
	Path  struct {
		Start *locationView  `json:"start"`
		End   *locationView  `json:"end"`
		Stops []locationView `json:"stops"`
	} `json:"path"`
}

func createRoute(t *testing.T, e *echo.Echo, token string, body map[string]any) routeView {
	t.Helper()
	rec := do(e, http.MethodPost, "/v1/routes", token, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var rt routeView
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &rt))
	return rt
}

func listRoutes(t *testing.T, e *echo.Echo, token, query string) []routeView {
	t.Helper()
	rec := do(e, http.MethodGet, "/v1/routes"+query, token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var routes []routeView
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &routes))
	return routes
}

func TestCreateAndListRoutes(t *testing.T) {
	e, _ := newTestServer()
	token := registerAndGetToken(t, e, "alice", "a@b.com", "secret")

	// seeded catalog: Lisbon=1, Porto=2, Madrid=3
	rt := createRoute(t, e, token, map[string]any{
		"name":              "coast trip",
		"start_location_id": 1,
		"end_location_id":   2,
		"stop_location_ids": []uint64{3},
		"housing_ids":       []uint64{1},
		"restaurant_ids":    []uint64{1},
	})
	require.Equal(t, "coast trip", rt.Name)
	require.Equal(t, "Created", rt.State)
	require.NotNil(t, rt.Path.Start)
	require.Equal(t, uint64(1), rt.Path.Start.ID)
	require.Equal(t, uint64(2), rt.Path.End.ID)
	require.Len(t, rt.Path.Stops, 1)

	routes := listRoutes(t, e, token, "")
	require.Len(t, routes, 1)
	require.Equal(t, rt.ID, routes[0].ID)
}

func TestCreateRouteUnknownCatalogID(t *testing.T) {
	e, _ := newTestServer()
	token := registerAndGetToken(t, e, "alice", "a@b.com", "secret")

	rec := do(e, http.MethodPost, "/v1/routes", token, map[string]any{
		"name":              "nowhere",
		"start_location_id": 999,
		"end_location_id":   2,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// nothing was stored
	require.Empty(t, listRoutes(t, e, token, ""))
}

func TestListRoutesFilterQuery(t *testing.T) {
	e, _ := newTestServer()
	token := registerAndGetToken(t, e, "alice", "a@b.com", "secret")

	createRoute(t, e, token, map[string]any{
		"name": "south", "start_location_id": 1, "end_location_id": 5,
	})
	createRoute(t, e, token, map[string]any{
		"name": "north", "start_location_id": 1, "end_location_id": 2,
	})
	createRoute(t, e, token, map[string]any{
		"name": "east", "start_location_id": 3, "end_location_id": 5,
	})

	got := listRoutes(t, e, token, "?end_location=5")
	require.Len(t, got, 2)
	for _, r := range got {
		require.Equal(t, uint64(5), r.Path.End.ID)
	}

	got = listRoutes(t, e, token, "?end_location=5&start_location=1")
	require.Len(t, got, 1)
	require.Equal(t, "south", got[0].Name)

	rec := do(e, http.MethodGet, "/v1/routes?end_location=abc", token, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateRouteStatusEndpoint(t *testing.T) {
	e, _ := newTestServer()
	token := registerAndGetToken(t, e, "alice", "a@b.com", "secret")

	rt := createRoute(t, e, token, map[string]any{
		"name": "trip", "start_location_id": 1, "end_location_id": 2,
	})

	rec := do(e, http.MethodPatch, "/v1/routes/"+itoa(rt.ID)+"/status", token,
		map[string]string{"state": "Active"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	routes := listRoutes(t, e, token, "")
	require.Equal(t, "Active", routes[0].State)

	// unknown states are rejected before touching the store
	rec = do(e, http.MethodPatch, "/v1/routes/"+itoa(rt.ID)+"/status", token,
		map[string]string{"state": "Teleporting"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// unknown route id
	rec = do(e, http.MethodPatch, "/v1/routes/9999/status", token,
		map[string]string{"state": "Paused"})
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Route not found", decodeEnvelope(t, rec).Error)
}

func TestDeleteRouteEndpoint(t *testing.T) {
	e, _ := newTestServer()
	token := registerAndGetToken(t, e, "alice", "a@b.com", "secret")

	rt := createRoute(t, e, token, map[string]any{
		"name": "trip", "start_location_id": 1, "end_location_id": 2,
	})

	rec := do(e, http.MethodDelete, "/v1/routes/"+itoa(rt.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, listRoutes(t, e, token, ""))

	// second delete of the same id
	rec = do(e, http.MethodDelete, "/v1/routes/"+itoa(rt.ID), token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Route doesnt exist", decodeEnvelope(t, rec).Error)
}

func TestRoutesRequireToken(t *testing.T) {
	e, _ := newTestServer()

	rec := do(e, http.MethodGet, "/v1/routes", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(e, http.MethodGet, "/v1/routes", "deadbeefdeadbeefdeadbeefdeadbeef", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Invalid token", decodeEnvelope(t, rec).Error)
}

func TestGuestCanManageRoutes(t *testing.T) {
	e, _ := newTestServer()

	rec := do(e, http.MethodPost, "/v1/auth/guest", "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &data))

	rt := createRoute(t, e, data.Token, map[string]any{
		"name": "guest trip", "start_location_id": 1, "end_location_id": 2,
	})
	routes := listRoutes(t, e, data.Token, "")
	require.Len(t, routes, 1)
	require.Equal(t, rt.ID, routes[0].ID)
}
