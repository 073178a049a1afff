package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/travel-route-planner/internal/handler"
	"github.com/iliyamo/travel-route-planner/internal/repository"
	"github.com/iliyamo/travel-route-planner/internal/router"
	"github.com/iliyamo/travel-route-planner/internal/service"
)

// newTestServer wires the full application without the optional redis
// and broker layers, mirroring the wiring in cmd/server.
func newTestServer() (*echo.Echo, *repository.UserRepo) {
	users := repository.NewUserRepo()
	tokens := repository.NewTokenRepo()
	routes := repository.NewRouteRepo()
	catalog := repository.NewCatalogRepo()
	repository.SeedDemoCatalog(catalog)

	auth := service.NewAuthService(users, tokens, bcrypt.MinCost)
	routeSvc := service.NewRouteService(auth, routes)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterPublic(e, handler.NewPublicHandler(catalog))
	router.RegisterAuth(e, handler.NewAuthHandler(auth, users), auth)
	router.RegisterRouteAPI(e, handler.NewRouteHandler(routeSvc, catalog), auth)
	router.RegisterAdmin(e, handler.NewAdminHandler(users), auth)
	return e, users
}

// do performs a JSON request against the in-memory server.
func do(e *echo.Echo, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Type  string          `json:"type"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func registerAndGetToken(t *testing.T, e *echo.Echo, name, email, password string) string {
	t.Helper()
	rec := do(e, http.MethodPost, "/v1/auth/register", "", map[string]string{
		"name": name, "email": email, "password": password,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var data struct {
		Token string `json:"token"`
	}
	env := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func TestRegisterLoginMeFlow(t *testing.T) {
	e, _ := newTestServer()
	token := registerAndGetToken(t, e, "alice", "a@b.com", "secret")

	rec := do(e, http.MethodGet, "/v1/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	require.Equal(t, "ok", env.Type)
	var me struct {
		Name string `json:"name"`
		Role string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &me))
	require.Equal(t, "alice", me.Name)
	require.Equal(t, "User", me.Role)

	// login issues a second, distinct token that resolves to the same user
	rec = do(e, http.MethodPost, "/v1/auth/login", "", map[string]string{
		"name": "alice", "password": "secret",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	env = decodeEnvelope(t, rec)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	require.NotEqual(t, token, login.Token)
}

func TestRegisterValidationStatus(t *testing.T) {
	e, _ := newTestServer()

	rec := do(e, http.MethodPost, "/v1/auth/register", "", map[string]string{
		"name": "alice", "email": "a@b.com", "password": "1234",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.Equal(t, "error", env.Type)
	require.Equal(t, "Password must be at least 5 characters long", env.Error)
}

func TestLoginWrongPasswordStatus(t *testing.T) {
	e, _ := newTestServer()
	registerAndGetToken(t, e, "alice", "a@b.com", "secret")

	rec := do(e, http.MethodPost, "/v1/auth/login", "", map[string]string{
		"name": "alice", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Invalid password", decodeEnvelope(t, rec).Error)
}

func TestLogoutRevokesToken(t *testing.T) {
	e, _ := newTestServer()
	token := registerAndGetToken(t, e, "alice", "a@b.com", "secret")

	rec := do(e, http.MethodPost, "/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(e, http.MethodGet, "/v1/auth/verify", token, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Invalid token", decodeEnvelope(t, rec).Error)

	rec = do(e, http.MethodGet, "/v1/me", token, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGuestFlow(t *testing.T) {
	e, _ := newTestServer()

	rec := do(e, http.MethodPost, "/v1/auth/guest", "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))

	rec = do(e, http.MethodGet, "/v1/me", data.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var me struct {
		Name string `json:"name"`
		Role string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &me))
	require.Equal(t, "Guest", me.Role)
	require.Empty(t, me.Name)
}

func TestRenameMe(t *testing.T) {
	e, _ := newTestServer()
	token := registerAndGetToken(t, e, "alice", "a@b.com", "secret")

	rec := do(e, http.MethodPatch, "/v1/me", token, map[string]string{"name": "alicia"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(e, http.MethodGet, "/v1/me", token, nil)
	var me struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &me))
	require.Equal(t, "alicia", me.Name)
}

func TestAdminEndpointsRequireAdminRole(t *testing.T) {
	e, users := newTestServer()
	aliceToken := registerAndGetToken(t, e, "alice", "a@b.com", "secret")
	bobToken := registerAndGetToken(t, e, "bobby", "b@c.com", "hunter2")

	// a regular user is rejected
	rec := do(e, http.MethodGet, "/v1/admin/users/1", aliceToken, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	// promote alice out of band, as an operator would
	alice, err := users.ByName("alice")
	require.NoError(t, err)
	_, err = users.SetAdmin(alice.ID)
	require.NoError(t, err)

	bob, err := users.ByName("bobby")
	require.NoError(t, err)

	// the admin can promote and delete other users
	rec = do(e, http.MethodPost, "/v1/admin/users/"+itoa(bob.ID)+"/promote", aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(e, http.MethodDelete, "/v1/admin/users/"+itoa(bob.ID), aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// bob's token now dangles: the user behind it is gone
	rec = do(e, http.MethodGet, "/v1/me", bobToken, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(e, http.MethodGet, "/v1/admin/users/"+itoa(bob.ID), aliceToken, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "User not found", decodeEnvelope(t, rec).Error)
}

func TestPublicCatalog(t *testing.T) {
	e, _ := newTestServer()

	for _, path := range []string{"/v1/locations", "/v1/housings", "/v1/restaurants"} {
		rec := do(e, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusOK, rec.Code, path)
		env := decodeEnvelope(t, rec)
		require.Equal(t, "ok", env.Type, path)
		var items []json.RawMessage
		require.NoError(t, json.Unmarshal(env.Data, &items))
		require.NotEmpty(t, items, path)
	}
}
