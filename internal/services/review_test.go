package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-apartment-listings/internal/models"
	"github.com/sbilibin2017/gw-apartment-listings/internal/repositories"
	"github.com/sbilibin2017/gw-apartment-listings/internal/services"
)

type reviewMocks struct {
	reader   *services.MockReviewReader
	writer   *services.MockReviewWriter
	listings *services.MockListingReader
	users    *services.MockUserReader
	authors  *services.MockUserBatchReader
}

func newReviewService(t *testing.T) (*services.ReviewService, reviewMocks) {
	ctrl := gomock.NewController(t)
	m := reviewMocks{
		reader:   services.NewMockReviewReader(ctrl),
		writer:   services.NewMockReviewWriter(ctrl),
		listings: services.NewMockListingReader(ctrl),
		users:    services.NewMockUserReader(ctrl),
		authors:  services.NewMockUserBatchReader(ctrl),
	}
	return services.NewReviewService(m.reader, m.writer, m.listings, m.users, m.authors, nil), m
}

func TestReviewService_CheckCanReview(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		user    *models.UserDB
		wantErr error
	}{
		{name: "verified", user: &models.UserDB{UserID: userID, IsVerified: true}},
		{name: "unverified", user: &models.UserDB{UserID: userID}, wantErr: services.ErrNotVerified},
		{name: "missing user", wantErr: services.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newReviewService(t)
			m.users.EXPECT().GetByID(gomock.Any(), userID).Return(tt.user, nil)

			err := svc.CheckCanReview(context.Background(), userID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestReviewService_Create(t *testing.T) {
	userID := uuid.New()
	listingID := uuid.New()
	verified := &models.UserDB{UserID: userID, Username: "tina", Role: models.RoleTenant, IsVerified: true}

	input := func(rating float64, listing string) models.ReviewInput {
		return models.ReviewInput{Content: ptr("Lovely"), Rating: &rating, ListingID: &listing}
	}

	tests := []struct {
		name      string
		input     models.ReviewInput
		mockSetup func(m reviewMocks)
		wantErr   error
	}{
		{
			name:  "success",
			input: input(5, listingID.String()),
			mockSetup: func(m reviewMocks) {
				m.users.EXPECT().GetByID(gomock.Any(), userID).Return(verified, nil)
				m.listings.EXPECT().GetByID(gomock.Any(), listingID).Return(&models.ListingDB{ListingID: listingID}, nil)
				m.reader.EXPECT().GetByUserAndListing(gomock.Any(), userID, listingID).Return(nil, nil)
				m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:  "unverified",
			input: input(5, listingID.String()),
			mockSetup: func(m reviewMocks) {
				m.users.EXPECT().GetByID(gomock.Any(), userID).Return(&models.UserDB{UserID: userID}, nil)
			},
			wantErr: services.ErrNotVerified,
		},
		{
			name:  "fractional rating",
			input: input(4.5, listingID.String()),
			mockSetup: func(m reviewMocks) {
				m.users.EXPECT().GetByID(gomock.Any(), userID).Return(verified, nil)
			},
			wantErr: services.ErrInvalidRating,
		},
		{
			name:  "rating out of range",
			input: input(6, listingID.String()),
			mockSetup: func(m reviewMocks) {
				m.users.EXPECT().GetByID(gomock.Any(), userID).Return(verified, nil)
			},
			wantErr: services.ErrInvalidRating,
		},
		{
			name:  "malformed listing id",
			input: input(3, "not-a-uuid"),
			mockSetup: func(m reviewMocks) {
				m.users.EXPECT().GetByID(gomock.Any(), userID).Return(verified, nil)
			},
			wantErr: services.ErrListingNotFound,
		},
		{
			name:  "listing missing",
			input: input(3, listingID.String()),
			mockSetup: func(m reviewMocks) {
				m.users.EXPECT().GetByID(gomock.Any(), userID).Return(verified, nil)
				m.listings.EXPECT().GetByID(gomock.Any(), listingID).Return(nil, nil)
			},
			wantErr: services.ErrListingNotFound,
		},
		{
			name:  "already reviewed",
			input: input(3, listingID.String()),
			mockSetup: func(m reviewMocks) {
				m.users.EXPECT().GetByID(gomock.Any(), userID).Return(verified, nil)
				m.listings.EXPECT().GetByID(gomock.Any(), listingID).Return(&models.ListingDB{ListingID: listingID}, nil)
				m.reader.EXPECT().GetByUserAndListing(gomock.Any(), userID, listingID).Return(&models.ReviewDB{}, nil)
			},
			wantErr: services.ErrAlreadyReviewed,
		},
		{
			name:  "unique index race",
			input: input(3, listingID.String()),
			mockSetup: func(m reviewMocks) {
				m.users.EXPECT().GetByID(gomock.Any(), userID).Return(verified, nil)
				m.listings.EXPECT().GetByID(gomock.Any(), listingID).Return(&models.ListingDB{ListingID: listingID}, nil)
				m.reader.EXPECT().GetByUserAndListing(gomock.Any(), userID, listingID).Return(nil, nil)
				m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).
					Return(&repositories.ConflictError{Constraint: repositories.ConstraintReviewsUnique})
			},
			wantErr: services.ErrAlreadyReviewed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newReviewService(t)
			tt.mockSetup(m)

			review, err := svc.Create(context.Background(), userID, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 5, review.Rating)
			assert.Equal(t, listingID, review.ListingID)
			assert.Equal(t, "tina", review.User.Username)
		})
	}
}

func TestReviewService_Update(t *testing.T) {
	author := uuid.New()
	reviewID := uuid.New()
	existing := func() *models.ReviewDB {
		return &models.ReviewDB{ReviewID: reviewID, UserID: author, Content: "ok", Rating: 3}
	}

	t.Run("author updates rating", func(t *testing.T) {
		svc, m := newReviewService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), reviewID).Return(existing(), nil)
		m.writer.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r *models.ReviewDB) error {
				assert.Equal(t, 4, r.Rating)
				assert.Equal(t, "ok", r.Content)
				return nil
			})
		m.users.EXPECT().GetByID(gomock.Any(), author).Return(&models.UserDB{UserID: author}, nil)

		review, err := svc.Update(context.Background(), author, reviewID, models.ReviewUpdate{Rating: ptr(4.0)})
		require.NoError(t, err)
		assert.Equal(t, 4, review.Rating)
	})

	t.Run("invalid rating", func(t *testing.T) {
		svc, m := newReviewService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), reviewID).Return(existing(), nil)

		_, err := svc.Update(context.Background(), author, reviewID, models.ReviewUpdate{Rating: ptr(0.0)})
		assert.ErrorIs(t, err, services.ErrInvalidRating)
	})

	t.Run("not author", func(t *testing.T) {
		svc, m := newReviewService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), reviewID).Return(existing(), nil)

		_, err := svc.Update(context.Background(), uuid.New(), reviewID, models.ReviewUpdate{})
		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("missing", func(t *testing.T) {
		svc, m := newReviewService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), reviewID).Return(nil, nil)

		_, err := svc.Update(context.Background(), author, reviewID, models.ReviewUpdate{})
		assert.ErrorIs(t, err, services.ErrReviewNotFound)
	})
}

func TestReviewService_Delete(t *testing.T) {
	author := uuid.New()
	reviewID := uuid.New()

	tests := []struct {
		name    string
		caller  uuid.UUID
		role    string
		wantErr error
	}{
		{"author", author, models.RoleTenant, nil},
		{"admin", uuid.New(), models.RoleAdmin, nil},
		{"stranger", uuid.New(), models.RoleTenant, services.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newReviewService(t)
			m.reader.EXPECT().GetByID(gomock.Any(), reviewID).Return(&models.ReviewDB{ReviewID: reviewID, UserID: author}, nil)
			if tt.wantErr == nil {
				m.writer.EXPECT().Delete(gomock.Any(), reviewID).Return(nil)
			}

			err := svc.Delete(context.Background(), tt.caller, tt.role, reviewID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReviewService_ListByListing(t *testing.T) {
	listingID := uuid.New()

	t.Run("with authors", func(t *testing.T) {
		svc, m := newReviewService(t)
		a, b := uuid.New(), uuid.New()

		m.listings.EXPECT().GetByID(gomock.Any(), listingID).Return(&models.ListingDB{ListingID: listingID}, nil)
		m.reader.EXPECT().ListByListing(gomock.Any(), listingID, 10, 0).
			Return([]models.ReviewDB{{UserID: a}, {UserID: b}, {UserID: a}}, 3, nil)
		m.authors.EXPECT().GetByIDs(gomock.Any(), []uuid.UUID{a, b}).
			Return(map[uuid.UUID]*models.UserDB{a: {Username: "a"}, b: {Username: "b"}}, nil)

		res, err := svc.ListByListing(context.Background(), listingID, models.NewPage(1, 10))
		require.NoError(t, err)
		assert.Equal(t, 3, res.Total)
		require.Len(t, res.Items, 3)
		assert.Equal(t, "a", res.Items[2].User.Username)
	})

	t.Run("listing missing", func(t *testing.T) {
		svc, m := newReviewService(t)
		m.listings.EXPECT().GetByID(gomock.Any(), listingID).Return(nil, nil)

		_, err := svc.ListByListing(context.Background(), listingID, models.NewPage(1, 10))
		assert.ErrorIs(t, err, services.ErrListingNotFound)
	})
}

func TestReviewService_ListByUser(t *testing.T) {
	svc, m := newReviewService(t)
	userID := uuid.New()

	m.reader.EXPECT().ListByUser(gomock.Any(), userID, 5, 5).Return([]models.ReviewDB{}, 5, nil)

	res, err := svc.ListByUser(context.Background(), userID, models.NewPage(2, 5))
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Equal(t, 1, res.Pages)
}
