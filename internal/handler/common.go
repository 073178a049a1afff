package handler // handler defines the HTTP handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/travel-route-planner/internal/repository"
	"github.com/iliyamo/travel-route-planner/internal/service"
)

// getToken extracts the bearer token the TokenAuth middleware stored in
// the context.
func getToken(c echo.Context) (string, error) {
	if t, ok := c.Get("token").(string); ok && t != "" {
		return t, nil
	}
	return "", errors.New("missing token in context")
}

// getUserID extracts the authenticated user id from the context.
func getUserID(c echo.Context) (uint64, error) {
	switch t := c.Get("user_id").(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// statusFor maps a service or repository error to the HTTP status its
// envelope travels with: validation failures are 400, credential and
// token failures 401, lookups that matched nothing 404.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrNameTooShort),
		errors.Is(err, service.ErrInvalidEmail):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidPassword),
		errors.Is(err, repository.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrRouteNotFound),
		errors.Is(err, repository.ErrNoRoutes),
		errors.Is(err, repository.ErrNoUserRoutes),
		errors.Is(err, repository.ErrRouteDoesntExist):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
