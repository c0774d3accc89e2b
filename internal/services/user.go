package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-apartment-listings/internal/logger"
	"github.com/sbilibin2017/gw-apartment-listings/internal/models"
)

// UserService serves the caller's own profile.
type UserService struct {
	reader UserReader
	writer UserWriter
}

func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{reader: reader, writer: writer}
}

// Profile returns the user or ErrUserNotFound.
func (s *UserService) Profile(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := s.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile applies the present fields of update. Uniqueness is
// re-checked only for values that actually change.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, update models.ProfileUpdate) (*models.UserDB, error) {
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	var newUsername, newEmail string
	if update.Username != nil && *update.Username != user.Username {
		newUsername = *update.Username
	}
	if update.Email != nil && *update.Email != user.Email {
		newEmail = *update.Email
	}
	if err := checkUserUnique(ctx, s.reader, newUsername, newEmail); err != nil {
		return nil, err
	}

	if newUsername != "" {
		user.Username = newUsername
	}
	if newEmail != "" {
		user.Email = newEmail
	}
	if update.Password != nil && *update.Password != "" {
		hashed, err := hashPassword(*update.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashed
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.writer.Update(ctx, user); err != nil {
		if err := userConflict(err); err != nil {
			return nil, err
		}
		logger.Log.Errorw("failed to update user", "err", err)
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}
