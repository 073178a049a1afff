package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/travel-route-planner/internal/model"
	"github.com/iliyamo/travel-route-planner/internal/repository"
	"github.com/iliyamo/travel-route-planner/internal/response"
	"github.com/iliyamo/travel-route-planner/internal/service"
)

// AuthHandler bundles dependencies for the auth endpoints.
type AuthHandler struct {
	Auth  *service.AuthService
	Users *repository.UserRepo
}

func NewAuthHandler(auth *service.AuthService, users *repository.UserRepo) *AuthHandler {
	return &AuthHandler{Auth: auth, Users: users}
}

// ----- DTOs -----

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
type loginReq struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}
type renameReq struct {
	Name string `json:"name"`
}

type tokenPart struct {
	Token string `json:"token"`
}

// Register validates the credentials, creates the user and returns a
// session token.  Validation failures come back with the service's exact
// message; nothing is created in that case.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Err[struct{}]("invalid body"))
	}
	token, err := h.Auth.Register(strings.TrimSpace(req.Name), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		return c.JSON(statusFor(err), response.Err[struct{}](err.Error()))
	}
	return c.JSON(http.StatusCreated, response.OK(tokenPart{Token: token}))
}

// Login checks the name/password pair and returns a fresh session token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Err[struct{}]("invalid body"))
	}
	token, err := h.Auth.Login(strings.TrimSpace(req.Name), req.Password)
	if err != nil {
		return c.JSON(statusFor(err), response.Err[struct{}](err.Error()))
	}
	return c.JSON(http.StatusOK, response.OK(tokenPart{Token: token}))
}

// Guest creates an anonymous guest user and returns its session token.
// No credentials are required and the operation cannot fail validation.
func (h *AuthHandler) Guest(c echo.Context) error {
	token, err := h.Auth.CreateGuest()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, response.Err[struct{}]("could not create guest"))
	}
	return c.JSON(http.StatusCreated, response.OK(tokenPart{Token: token}))
}

// Logout revokes the bearer token.  After a logout the same token fails
// verification and resolution.
func (h *AuthHandler) Logout(c echo.Context) error {
	auth := c.Request().Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return c.JSON(http.StatusBadRequest, response.Err[struct{}]("missing bearer token"))
	}
	if err := h.Auth.Logout(strings.TrimPrefix(auth, "Bearer ")); err != nil {
		return c.JSON(statusFor(err), response.Err[struct{}](err.Error()))
	}
	return c.JSON(http.StatusOK, response.Empty())
}

// Verify reports whether the bearer token is currently valid.
func (h *AuthHandler) Verify(c echo.Context) error {
	auth := c.Request().Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return c.JSON(http.StatusBadRequest, response.Err[struct{}]("missing bearer token"))
	}
	valid, err := h.Auth.VerifyToken(strings.TrimPrefix(auth, "Bearer "))
	if err != nil {
		return c.JSON(statusFor(err), response.Err[struct{}](err.Error()))
	}
	return c.JSON(http.StatusOK, response.OK(map[string]bool{"valid": valid}))
}

// Me returns the authenticated user's record.
func (h *AuthHandler) Me(c echo.Context) error {
	token, err := getToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, response.Err[struct{}]("unauthorized"))
	}
	u, err := h.Auth.GetUser(token)
	if err != nil {
		return c.JSON(statusFor(err), response.Err[struct{}](err.Error()))
	}
	return c.JSON(http.StatusOK, response.OK(u))
}

// RenameMe updates the authenticated user's display name in place.
func (h *AuthHandler) RenameMe(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, response.Err[struct{}]("unauthorized"))
	}
	var req renameReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Err[struct{}]("invalid body"))
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, response.Err[struct{}]("name is required"))
	}
	var u *model.User
	if u, err = h.Users.UpdateName(uid, name); err != nil {
		return c.JSON(statusFor(err), response.Err[struct{}](err.Error()))
	}
	return c.JSON(http.StatusOK, response.OK(u))
}
