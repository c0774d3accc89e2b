package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-apartment-listings/internal/models"
	"github.com/sbilibin2017/gw-apartment-listings/internal/repositories"
	"github.com/sbilibin2017/gw-apartment-listings/internal/services"
)

func TestUserService_Profile(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := services.NewMockUserReader(ctrl)
	svc := services.NewUserService(reader, services.NewMockUserWriter(ctrl))
	id := uuid.New()

	reader.EXPECT().GetByID(gomock.Any(), id).Return(&models.UserDB{UserID: id, Username: "alice"}, nil)
	user, err := svc.Profile(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	reader.EXPECT().GetByID(gomock.Any(), id).Return(nil, nil)
	_, err = svc.Profile(context.Background(), id)
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestUserService_UpdateProfile(t *testing.T) {
	id := uuid.New()
	current := func() *models.UserDB {
		return &models.UserDB{UserID: id, Username: "alice", Email: "alice@example.com", PasswordHash: "old"}
	}

	t.Run("unchanged values skip uniqueness checks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := services.NewMockUserReader(ctrl)
		writer := services.NewMockUserWriter(ctrl)
		svc := services.NewUserService(reader, writer)

		reader.EXPECT().GetByID(gomock.Any(), id).Return(current(), nil)
		writer.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		user, err := svc.UpdateProfile(context.Background(), id, models.ProfileUpdate{
			Username: ptr("alice"),
			Email:    ptr("alice@example.com"),
		})
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("new username and password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := services.NewMockUserReader(ctrl)
		writer := services.NewMockUserWriter(ctrl)
		svc := services.NewUserService(reader, writer)

		reader.EXPECT().GetByID(gomock.Any(), id).Return(current(), nil)
		reader.EXPECT().GetByUsername(gomock.Any(), "alicia").Return(nil, nil)
		writer.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u *models.UserDB) error {
				assert.Equal(t, "alicia", u.Username)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("new-pass")))
				return nil
			})

		_, err := svc.UpdateProfile(context.Background(), id, models.ProfileUpdate{
			Username: ptr("alicia"),
			Password: ptr("new-pass"),
		})
		assert.NoError(t, err)
	})

	t.Run("email taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := services.NewMockUserReader(ctrl)
		svc := services.NewUserService(reader, services.NewMockUserWriter(ctrl))

		reader.EXPECT().GetByID(gomock.Any(), id).Return(current(), nil)
		reader.EXPECT().GetByEmail(gomock.Any(), "bob@example.com").Return(&models.UserDB{UserID: uuid.New()}, nil)

		_, err := svc.UpdateProfile(context.Background(), id, models.ProfileUpdate{Email: ptr("bob@example.com")})
		assert.ErrorIs(t, err, services.ErrEmailExists)
	})

	t.Run("username race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := services.NewMockUserReader(ctrl)
		writer := services.NewMockUserWriter(ctrl)
		svc := services.NewUserService(reader, writer)

		reader.EXPECT().GetByID(gomock.Any(), id).Return(current(), nil)
		reader.EXPECT().GetByUsername(gomock.Any(), "bob").Return(nil, nil)
		writer.EXPECT().Update(gomock.Any(), gomock.Any()).
			Return(&repositories.ConflictError{Constraint: repositories.ConstraintUsersUsername})

		_, err := svc.UpdateProfile(context.Background(), id, models.ProfileUpdate{Username: ptr("bob")})
		assert.ErrorIs(t, err, services.ErrUsernameExists)
	})

	t.Run("password over 72 bytes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := services.NewMockUserReader(ctrl)
		svc := services.NewUserService(reader, services.NewMockUserWriter(ctrl))

		reader.EXPECT().GetByID(gomock.Any(), id).Return(current(), nil)

		_, err := svc.UpdateProfile(context.Background(), id, models.ProfileUpdate{Password: ptr(strings.Repeat("p", 73))})
		assert.ErrorIs(t, err, services.ErrPasswordTooLong)
	})
}
