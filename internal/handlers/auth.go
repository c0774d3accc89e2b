package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-apartment-listings/internal/logger"
	"github.com/sbilibin2017/gw-apartment-listings/internal/models"
	"github.com/sbilibin2017/gw-apartment-listings/internal/services"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, email, password, role string) (*models.UserDB, error)
}

// Authenticator logs users in.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*models.AuthTokens, error)
}

// Refresher exchanges refresh tokens for access tokens.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (string, *models.UserDB, error)
}

// LogoutService revokes refresh tokens.
type LogoutService interface {
	Logout(ctx context.Context, refreshToken string) error
}

// Verifier marks users as verified.
type Verifier interface {
	Verify(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// TokenExtractor reads the bearer token of a request.
type TokenExtractor interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username" validate:"required"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required"`

	// Role, tenant or landlord
	// required: true
	// default: tenant
	Role string `json:"role" validate:"required"`
}

// UserResponse wraps a user with a message
// swagger:model UserResponse
type UserResponse struct {
	Message string         `json:"message"`
	User    *models.UserDB `json:"user"`
}

// LoginRequest represents the JSON body for login
// swagger:model LoginRequest
type LoginRequest struct {
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required"`

	// required: true
	// default: secret123
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued tokens
// swagger:model LoginResponse
type LoginResponse struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	User         *models.UserDB `json:"user"`
}

// RefreshResponse carries a new access token
// swagger:model RefreshResponse
type RefreshResponse struct {
	AccessToken string         `json:"access_token"`
	User        *models.UserDB `json:"user"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates an unverified tenant or landlord. Username and email must be unique.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.UserResponse
// @Failure 400 {object} handlers.ErrorResponse "Missing fields, invalid role or duplicate user"
// @Failure 429 {object} handlers.ErrorResponse
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if err := validate.Struct(req); err != nil {
			writeError(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		user, err := svc.Register(r.Context(), req.Username, req.Email, req.Password, req.Role)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidRole):
				writeError(w, http.StatusBadRequest, "Invalid role")
			case errors.Is(err, services.ErrUsernameExists):
				writeError(w, http.StatusBadRequest, "Username already exists")
			case errors.Is(err, services.ErrEmailExists):
				writeError(w, http.StatusBadRequest, "Email already exists")
			case errors.Is(err, services.ErrPasswordTooLong):
				writeError(w, http.StatusBadRequest, "Password must be at most 72 bytes")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, UserResponse{Message: "User registered successfully", User: user})
	}
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Log in
// @Description Checks email and password and issues an access and a refresh token.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Credentials"
// @Success 200 {object} handlers.LoginResponse
// @Failure 400 {object} handlers.ErrorResponse "Missing email or password"
// @Failure 401 {object} handlers.ErrorResponse "Invalid email or password"
// @Failure 429 {object} handlers.ErrorResponse
// @Router /auth/login [post]
func NewLoginHandler(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if err := validate.Struct(req); err != nil {
			writeError(w, http.StatusBadRequest, "Missing email or password")
			return
		}

		tokens, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				writeError(w, http.StatusUnauthorized, "Invalid email or password")
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{
			AccessToken:  tokens.AccessToken,
			RefreshToken: tokens.RefreshToken,
			User:         tokens.User,
		})
	}
}

// NewRefreshHandler returns an HTTP handler that issues a new access token.
// @Summary Refresh the access token
// @Description Takes the refresh token as a bearer token.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.RefreshResponse
// @Failure 401 {object} handlers.ErrorResponse "Invalid or revoked refresh token"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /auth/refresh [post]
// @Security BearerAuth
func NewRefreshHandler(svc Refresher, tokens TokenExtractor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := tokens.GetTokenFromRequest(r.Context(), r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Invalid or missing token")
			return
		}

		access, user, err := svc.Refresh(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidToken):
				writeError(w, http.StatusUnauthorized, "Invalid or missing token")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, RefreshResponse{AccessToken: access, User: user})
	}
}

// NewLogoutHandler returns an HTTP handler that revokes a refresh token.
// @Summary Log out
// @Description Revokes the refresh token sent as a bearer token.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MessageResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /auth/logout [post]
// @Security BearerAuth
func NewLogoutHandler(svc LogoutService, tokens TokenExtractor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := tokens.GetTokenFromRequest(r.Context(), r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Invalid or missing token")
			return
		}

		if err := svc.Logout(r.Context(), token); err != nil {
			if errors.Is(err, services.ErrInvalidToken) {
				writeError(w, http.StatusUnauthorized, "Invalid or missing token")
				return
			}
			writeInternalError(w, err)
			return
		}

		logger.Log.Infow("user logged out")
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Successfully logged out"})
	}
}

// NewVerifyHandler returns an HTTP handler that marks a user as verified.
// @Summary Verify a user
// @Tags auth
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} handlers.UserResponse
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /auth/verify/{userID} [get]
func NewVerifyHandler(svc Verifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := urlUUID(r, "userID")
		if !ok {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}

		user, err := svc.Verify(r.Context(), userID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, UserResponse{Message: "User verified successfully", User: user})
	}
}
