// Package service implements the business rules on top of the in-memory
// repositories: the authentication service that issues and validates
// session tokens, and the route service that manages per-user routes.
package service

import (
	"errors"
	"strings"

	"github.com/iliyamo/travel-route-planner/internal/model"
	"github.com/iliyamo/travel-route-planner/internal/repository"
	"github.com/iliyamo/travel-route-planner/internal/utils"
)

// Validation and credential errors surfaced by Register and Login.  The
// text is returned to clients verbatim.
var (
	ErrPasswordTooShort = errors.New("Password must be at least 5 characters long")
	ErrNameTooShort     = errors.New("Name must be at least 3 characters long")
	ErrInvalidEmail     = errors.New("Invalid email")
	ErrInvalidPassword  = errors.New("Invalid password")
)

// AuthService issues opaque bearer tokens and maps them to user ids.  It
// is the authorization boundary: every privileged operation elsewhere
// resolves its token through GetUser before acting and propagates the
// error instead of proceeding.
type AuthService struct {
	users      *repository.UserRepo
	tokens     *repository.TokenRepo
	bcryptCost int
}

// NewAuthService wires the service to its user directory and token table.
func NewAuthService(users *repository.UserRepo, tokens *repository.TokenRepo, bcryptCost int) *AuthService {
	return &AuthService{users: users, tokens: tokens, bcryptCost: bcryptCost}
}

// GenerateToken mints a fresh opaque token.  Uniqueness among currently
// valid tokens is the caller's concern; see Register and CreateGuest.
func (s *AuthService) GenerateToken() (string, error) {
	return utils.NewSessionToken()
}

// Register validates the credentials, creates the user and returns a
// bound session token.  Checks run password → name → email and the first
// failing check wins.  No user and no token exist after a validation
// failure.
func (s *AuthService) Register(name, email, password string) (string, error) {
	if len(password) < 5 {
		return "", ErrPasswordTooShort
	}
	if len(name) < 3 {
		return "", ErrNameTooShort
	}
	if !strings.Contains(email, "@") {
		return "", ErrInvalidEmail
	}

	hash, err := utils.HashPassword(password, s.bcryptCost)
	if err != nil {
		return "", err
	}
	u := model.NewUser(s.users.NextID(), name, email, hash)
	s.users.Add(u)

	// Re-roll until the token is not in use among the currently valid ones.
	var token string
	for {
		token, err = s.GenerateToken()
		if err != nil {
			return "", err
		}
		if !s.tokens.Exists(token) {
			break
		}
	}
	s.tokens.Bind(token, u.ID)
	return token, nil
}

// Login looks the user up by display name, compares the password and
// returns a fresh bound token.  The first user with a matching name wins
// when names collide.
func (s *AuthService) Login(name, password string) (string, error) {
	u, err := s.users.ByName(name)
	if err != nil {
		return "", err
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return "", ErrInvalidPassword
	}
	token, err := s.GenerateToken()
	if err != nil {
		return "", err
	}
	s.tokens.Bind(token, u.ID)
	return token, nil
}

// Logout removes the token binding.
func (s *AuthService) Logout(token string) error {
	if !s.tokens.Revoke(token) {
		return repository.ErrInvalidToken
	}
	return nil
}

// VerifyToken reports whether the token is currently bound.
func (s *AuthService) VerifyToken(token string) (bool, error) {
	if !s.tokens.Exists(token) {
		return false, repository.ErrInvalidToken
	}
	return true, nil
}

// CreateGuest asks the directory for a guest user, mints a token not
// currently in use, binds it and returns it.  It only fails if the
// system's entropy source does.
func (s *AuthService) CreateGuest() (string, error) {
	u := s.users.CreateGuest()
	var token string
	for {
		t, err := s.GenerateToken()
		if err != nil {
			return "", err
		}
		if !s.tokens.Exists(t) {
			token = t
			break
		}
	}
	s.tokens.Bind(token, u.ID)
	return token, nil
}

// GetUser resolves the token to its user record.
func (s *AuthService) GetUser(token string) (*model.User, error) {
	id, ok := s.tokens.Resolve(token)
	if !ok {
		return nil, repository.ErrInvalidToken
	}
	return s.users.ByID(id)
}
