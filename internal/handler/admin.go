package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/travel-route-planner/internal/repository"
	"github.com/iliyamo/travel-route-planner/internal/response"
)

// AdminHandler exposes the user-directory management operations.  All of
// its routes sit behind the Admin role.
type AdminHandler struct {
	Users *repository.UserRepo
}

func NewAdminHandler(users *repository.UserRepo) *AdminHandler {
	return &AdminHandler{Users: users}
}

// GetUser returns a user record by id.
func (h *AdminHandler) GetUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Err[struct{}]("invalid id"))
	}
	u, err := h.Users.ByID(id)
	if err != nil {
		return c.JSON(statusFor(err), response.Err[struct{}](err.Error()))
	}
	return c.JSON(http.StatusOK, response.OK(u))
}

// RenameUser updates a user's display name in place.
func (h *AdminHandler) RenameUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Err[struct{}]("invalid id"))
	}
	var req renameReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Err[struct{}]("invalid body"))
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, response.Err[struct{}]("name is required"))
	}
	u, err := h.Users.UpdateName(id, name)
	if err != nil {
		return c.JSON(statusFor(err), response.Err[struct{}](err.Error()))
	}
	return c.JSON(http.StatusOK, response.OK(u))
}

// PromoteUser promotes a user to the Admin role.
func (h *AdminHandler) PromoteUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Err[struct{}]("invalid id"))
	}
	u, err := h.Users.SetAdmin(id)
	if err != nil {
		return c.JSON(statusFor(err), response.Err[struct{}](err.Error()))
	}
	return c.JSON(http.StatusOK, response.OK(u))
}

// DeleteUser removes a user from the directory.  Outstanding session
// tokens and routes belonging to the user are left in place; they are
// unreachable for route operations because every call re-resolves the
// token against the directory.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Err[struct{}]("invalid id"))
	}
	if err := h.Users.Delete(id); err != nil {
		return c.JSON(statusFor(err), response.Err[struct{}](err.Error()))
	}
	return c.JSON(http.StatusOK, response.Empty())
}
