package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-apartment-listings/internal/jwt"
	"github.com/sbilibin2017/gw-apartment-listings/internal/logger"
	"github.com/sbilibin2017/gw-apartment-listings/internal/models"
	"github.com/sbilibin2017/gw-apartment-listings/internal/repositories"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// Error variables
var (
	ErrInvalidRole        = errors.New("invalid role")
	ErrUsernameExists     = errors.New("username already exists")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or revoked token")
	ErrUserNotFound       = errors.New("user not found")
	ErrPasswordTooLong    = errors.New("password exceeds 72 bytes")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
	Update(ctx context.Context, user *models.UserDB) error
}

// TokenManager issues and parses access and refresh tokens.
type TokenManager interface {
	GenerateAccess(ctx context.Context, userID uuid.UUID, role string) (string, error)
	GenerateRefresh(ctx context.Context, userID uuid.UUID) (token string, tokenID string, err error)
	GetClaims(ctx context.Context, token string) (*jwt.Claims, error)
	RefreshTTL() time.Duration
}

// SessionStore tracks refresh tokens that have not been revoked.
type SessionStore interface {
	Save(ctx context.Context, tokenID string, userID uuid.UUID, ttl time.Duration) error
	Exists(ctx context.Context, tokenID string) (bool, error)
	Delete(ctx context.Context, tokenID string) error
}

// AuthService handles registration, login and the token lifecycle.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	tokens   TokenManager
	sessions SessionStore
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenManager, sessions SessionStore) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		tokens:   tokens,
		sessions: sessions,
	}
}

// Register creates an unverified tenant or landlord.
func (svc *AuthService) Register(ctx context.Context, username, email, password, role string) (*models.UserDB, error) {
	if role != models.RoleTenant && role != models.RoleLandlord {
		logger.Log.Warnw("rejected registration role", "role", role)
		return nil, ErrInvalidRole
	}

	if err := checkUserUnique(ctx, svc.reader, username, email); err != nil {
		return nil, err
	}

	hashedPassword, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &models.UserDB{
		UserID:       uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := svc.writer.Save(ctx, user); err != nil {
		if err := userConflict(err); err != nil {
			return nil, err
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, fmt.Errorf("save user: %w", err)
	}

	return user, nil
}

// hashPassword bcrypts password. bcrypt only reads the first 72 bytes, so
// longer passwords are refused with ErrPasswordTooLong.
func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Login checks the credentials and issues an access and a refresh token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.AuthTokens, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		logger.Log.Warnw("login for unknown email", "email", email)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warnw("invalid credentials", "email", email)
		return nil, ErrInvalidCredentials
	}

	access, err := svc.tokens.GenerateAccess(ctx, user.UserID, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate access token", "err", err)
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refresh, tokenID, err := svc.tokens.GenerateRefresh(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate refresh token", "err", err)
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := svc.sessions.Save(ctx, tokenID, user.UserID, svc.tokens.RefreshTTL()); err != nil {
		logger.Log.Errorw("failed to store session", "err", err)
		return nil, fmt.Errorf("store session: %w", err)
	}

	return &models.AuthTokens{AccessToken: access, RefreshToken: refresh, User: user}, nil
}

// Refresh exchanges an active refresh token for a new access token.
func (svc *AuthService) Refresh(ctx context.Context, refreshToken string) (string, *models.UserDB, error) {
	claims, err := svc.refreshClaims(ctx, refreshToken)
	if err != nil {
		return "", nil, err
	}

	user, err := svc.reader.GetByID(ctx, claims.UserID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return "", nil, ErrUserNotFound
	}

	access, err := svc.tokens.GenerateAccess(ctx, user.UserID, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate access token", "err", err)
		return "", nil, fmt.Errorf("generate access token: %w", err)
	}

	return access, user, nil
}

// Logout revokes the refresh token.
func (svc *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := svc.refreshClaims(ctx, refreshToken)
	if err != nil {
		return err
	}

	if err := svc.sessions.Delete(ctx, claims.ID); err != nil {
		logger.Log.Errorw("failed to delete session", "err", err)
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Verify marks the user as verified.
func (svc *AuthService) Verify(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.IsVerified = true
	user.UpdatedAt = time.Now().UTC()

	if err := svc.writer.Update(ctx, user); err != nil {
		logger.Log.Errorw("failed to verify user", "err", err)
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// refreshClaims parses a refresh token and checks that its session is active.
func (svc *AuthService) refreshClaims(ctx context.Context, refreshToken string) (*jwt.Claims, error) {
	claims, err := svc.tokens.GetClaims(ctx, refreshToken)
	if err != nil || claims.Type != jwt.TokenTypeRefresh || claims.ID == "" {
		logger.Log.Warnw("rejected refresh token", "err", err)
		return nil, ErrInvalidToken
	}

	ok, err := svc.sessions.Exists(ctx, claims.ID)
	if err != nil {
		logger.Log.Errorw("failed to look up session", "err", err)
		return nil, fmt.Errorf("look up session: %w", err)
	}
	if !ok {
		logger.Log.Warnw("refresh token revoked", "jti", claims.ID)
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// checkUserUnique rejects a username or email that another user holds.
func checkUserUnique(ctx context.Context, reader UserReader, username, email string) error {
	if username != "" {
		existing, err := reader.GetByUsername(ctx, username)
		if err != nil {
			logger.Log.Errorw("failed to check username", "err", err)
			return fmt.Errorf("check username: %w", err)
		}
		if existing != nil {
			return ErrUsernameExists
		}
	}

	if email != "" {
		existing, err := reader.GetByEmail(ctx, email)
		if err != nil {
			logger.Log.Errorw("failed to check email", "err", err)
			return fmt.Errorf("check email: %w", err)
		}
		if existing != nil {
			return ErrEmailExists
		}
	}
	return nil
}

// userConflict maps a unique violation on users to the pre-check error.
func userConflict(err error) error {
	switch {
	case repositories.IsConflict(err, repositories.ConstraintUsersUsername):
		return ErrUsernameExists
	case repositories.IsConflict(err, repositories.ConstraintUsersEmail):
		return ErrEmailExists
	}
	return nil
}
