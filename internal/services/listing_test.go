package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-apartment-listings/internal/models"
	"github.com/sbilibin2017/gw-apartment-listings/internal/services"
)

type listingMocks struct {
	reader  *services.MockListingReader
	writer  *services.MockListingWriter
	reviews *services.MockReviewReader
	users   *services.MockUserBatchReader
	kafka   *services.MockKafkaWriter
}

func newListingService(t *testing.T) (*services.ListingService, listingMocks) {
	ctrl := gomock.NewController(t)
	m := listingMocks{
		reader:  services.NewMockListingReader(ctrl),
		writer:  services.NewMockListingWriter(ctrl),
		reviews: services.NewMockReviewReader(ctrl),
		users:   services.NewMockUserBatchReader(ctrl),
		kafka:   services.NewMockKafkaWriter(ctrl),
	}
	return services.NewListingService(m.reader, m.writer, m.reviews, m.users, m.kafka), m
}

func ptr[T any](v T) *T { return &v }

func fullListingInput() models.ListingInput {
	return models.ListingInput{
		Title:       ptr("Loft"),
		Description: ptr("Bright loft"),
		Price:       ptr(1500.0),
		Bedrooms:    ptr(1),
		Bathrooms:   ptr(1.0),
		Address:     ptr("1 Main St"),
		City:        ptr("Austin"),
		State:       ptr("TX"),
		ZipCode:     ptr("78701"),
	}
}

func expectAttach(m listingMocks) {
	m.reader.EXPECT().GetAmenities(gomock.Any(), gomock.Any()).Return(map[uuid.UUID][]models.AmenityDB{}, nil)
	m.reader.EXPECT().GetImages(gomock.Any(), gomock.Any()).Return(map[uuid.UUID][]models.ListingImageDB{}, nil)
}

func TestListingService_List(t *testing.T) {
	svc, m := newListingService(t)
	a, b := uuid.New(), uuid.New()
	page := models.NewPage(2, 2)

	m.reader.EXPECT().
		List(gomock.Any(), models.ListingFilter{City: "Austin", PublishedOnly: true}, 2, 2).
		Return([]models.ListingDB{{ListingID: a}, {ListingID: b}}, 5, nil)
	m.reader.EXPECT().GetAmenities(gomock.Any(), []uuid.UUID{a, b}).
		Return(map[uuid.UUID][]models.AmenityDB{a: {{AmenityID: 1, Name: "Pool"}}}, nil)
	m.reader.EXPECT().GetImages(gomock.Any(), []uuid.UUID{a, b}).
		Return(map[uuid.UUID][]models.ListingImageDB{}, nil)

	res, err := svc.List(context.Background(), models.ListingFilter{City: "Austin"}, page)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Total)
	assert.Equal(t, 3, res.Pages)
	require.Len(t, res.Items, 2)
	assert.Len(t, res.Items[0].Amenities, 1)
	assert.NotNil(t, res.Items[1].Amenities)
	assert.NotNil(t, res.Items[1].Images)
}

func TestListingService_ListByOwner(t *testing.T) {
	svc, m := newListingService(t)
	owner := uuid.New()

	m.reader.EXPECT().
		List(gomock.Any(), models.ListingFilter{OwnerID: &owner}, 10, 0).
		Return([]models.ListingDB{}, 0, nil)
	expectAttach(m)

	res, err := svc.ListByOwner(context.Background(), owner, models.NewPage(1, 10))
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Equal(t, 0, res.Pages)
}

func TestListingService_Get(t *testing.T) {
	owner, stranger := uuid.New(), uuid.New()
	id := uuid.New()

	t.Run("published with reviews", func(t *testing.T) {
		svc, m := newListingService(t)
		author := uuid.New()

		m.reader.EXPECT().GetByID(gomock.Any(), id).Return(&models.ListingDB{ListingID: id, UserID: owner, IsPublished: true}, nil)
		expectAttach(m)
		m.reviews.EXPECT().ListAllByListing(gomock.Any(), id).Return([]models.ReviewDB{{UserID: author, Rating: 4}}, nil)
		m.users.EXPECT().GetByIDs(gomock.Any(), []uuid.UUID{author}).
			Return(map[uuid.UUID]*models.UserDB{author: {UserID: author, Username: "bob"}}, nil)

		detail, err := svc.Get(context.Background(), id, nil)
		require.NoError(t, err)
		require.Len(t, detail.Reviews, 1)
		assert.Equal(t, "bob", detail.Reviews[0].User.Username)
	})

	t.Run("unpublished hidden from others", func(t *testing.T) {
		svc, m := newListingService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), id).Return(&models.ListingDB{ListingID: id, UserID: owner}, nil)

		_, err := svc.Get(context.Background(), id, &stranger)
		assert.ErrorIs(t, err, services.ErrListingNotFound)
	})

	t.Run("unpublished hidden from anonymous", func(t *testing.T) {
		svc, m := newListingService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), id).Return(&models.ListingDB{ListingID: id, UserID: owner}, nil)

		_, err := svc.Get(context.Background(), id, nil)
		assert.ErrorIs(t, err, services.ErrListingNotFound)
	})

	t.Run("unpublished visible to owner", func(t *testing.T) {
		svc, m := newListingService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), id).Return(&models.ListingDB{ListingID: id, UserID: owner}, nil)
		expectAttach(m)
		m.reviews.EXPECT().ListAllByListing(gomock.Any(), id).Return([]models.ReviewDB{}, nil)

		detail, err := svc.Get(context.Background(), id, &owner)
		require.NoError(t, err)
		assert.Empty(t, detail.Reviews)
		assert.NotNil(t, detail.Reviews)
	})

	t.Run("missing", func(t *testing.T) {
		svc, m := newListingService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), id).Return(nil, nil)

		_, err := svc.Get(context.Background(), id, &owner)
		assert.ErrorIs(t, err, services.ErrListingNotFound)
	})
}

func TestListingService_Create(t *testing.T) {
	owner := uuid.New()

	t.Run("defaults and sets", func(t *testing.T) {
		svc, m := newListingService(t)

		input := fullListingInput()
		input.AmenityIDs = &[]int64{1, 2}
		input.Images = &[]models.ImageInput{
			{URL: ptr("https://img/1.jpg"), IsPrimary: true},
			{Caption: ptr("no url")},
			{URL: ptr("")},
		}

		var saved *models.ListingDB
		m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l *models.ListingDB) error {
				saved = l
				assert.True(t, l.IsPublished)
				assert.Equal(t, owner, l.UserID)
				assert.Equal(t, "Loft", l.Title)
				return nil
			})
		m.writer.EXPECT().SetAmenities(gomock.Any(), gomock.Any(), []int64{1, 2}).Return(nil)
		m.writer.EXPECT().ReplaceImages(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, images []models.ListingImageDB) error {
				require.Len(t, images, 1)
				assert.Equal(t, "https://img/1.jpg", images[0].URL)
				return nil
			})
		expectAttach(m)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, msgs ...kafka.Message) error {
				require.Len(t, msgs, 1)
				assert.Equal(t, saved.ListingID.String(), string(msgs[0].Key))
				assert.Contains(t, string(msgs[0].Value), models.EventListingCreated)
				return nil
			})

		listing, err := svc.Create(context.Background(), owner, input)
		require.NoError(t, err)
		assert.Equal(t, saved.ListingID, listing.ListingID)
	})

	t.Run("explicit draft without sets", func(t *testing.T) {
		svc, m := newListingService(t)

		input := fullListingInput()
		input.IsPublished = ptr(false)

		m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l *models.ListingDB) error {
				assert.False(t, l.IsPublished)
				return nil
			})
		expectAttach(m)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		_, err := svc.Create(context.Background(), owner, input)
		assert.NoError(t, err)
	})

	t.Run("save error", func(t *testing.T) {
		svc, m := newListingService(t)
		m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

		_, err := svc.Create(context.Background(), owner, fullListingInput())
		assert.ErrorContains(t, err, "db error")
	})
}

func TestListingService_Update(t *testing.T) {
	owner := uuid.New()
	id := uuid.New()
	existing := func() *models.ListingDB {
		return &models.ListingDB{ListingID: id, UserID: owner, Title: "Old", Price: 900, IsPublished: true}
	}

	t.Run("partial update replaces images", func(t *testing.T) {
		svc, m := newListingService(t)

		m.reader.EXPECT().GetByID(gomock.Any(), id).Return(existing(), nil)
		m.writer.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l *models.ListingDB) error {
				assert.Equal(t, "Old", l.Title)
				assert.Equal(t, 1200.0, l.Price)
				return nil
			})
		m.writer.EXPECT().ReplaceImages(gomock.Any(), id, gomock.Len(1)).Return(nil)
		expectAttach(m)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		input := models.ListingInput{
			Price:  ptr(1200.0),
			Images: &[]models.ImageInput{{URL: ptr("https://img/new.jpg")}},
		}
		_, err := svc.Update(context.Background(), owner, id, input)
		assert.NoError(t, err)
	})

	t.Run("empty amenity list clears the set", func(t *testing.T) {
		svc, m := newListingService(t)

		m.reader.EXPECT().GetByID(gomock.Any(), id).Return(existing(), nil)
		m.writer.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		m.writer.EXPECT().SetAmenities(gomock.Any(), id, []int64{}).Return(nil)
		expectAttach(m)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.Update(context.Background(), owner, id, models.ListingInput{AmenityIDs: &[]int64{}})
		assert.NoError(t, err)
	})

	t.Run("not owner", func(t *testing.T) {
		svc, m := newListingService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), id).Return(existing(), nil)

		_, err := svc.Update(context.Background(), uuid.New(), id, models.ListingInput{})
		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("missing", func(t *testing.T) {
		svc, m := newListingService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), id).Return(nil, nil)

		_, err := svc.Update(context.Background(), owner, id, models.ListingInput{})
		assert.ErrorIs(t, err, services.ErrListingNotFound)
	})
}

func TestListingService_Delete(t *testing.T) {
	owner := uuid.New()
	id := uuid.New()

	t.Run("owner deletes", func(t *testing.T) {
		svc, m := newListingService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), id).Return(&models.ListingDB{ListingID: id, UserID: owner}, nil)
		m.writer.EXPECT().Delete(gomock.Any(), id).Return(nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), owner, id))
	})

	t.Run("not owner", func(t *testing.T) {
		svc, m := newListingService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), id).Return(&models.ListingDB{ListingID: id, UserID: owner}, nil)

		assert.ErrorIs(t, svc.Delete(context.Background(), uuid.New(), id), services.ErrForbidden)
	})
}

func TestListingService_WithoutKafka(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := services.NewMockListingReader(ctrl)
	writer := services.NewMockListingWriter(ctrl)
	svc := services.NewListingService(reader, writer, services.NewMockReviewReader(ctrl), services.NewMockUserBatchReader(ctrl), nil)

	owner, id := uuid.New(), uuid.New()
	reader.EXPECT().GetByID(gomock.Any(), id).Return(&models.ListingDB{ListingID: id, UserID: owner}, nil)
	writer.EXPECT().Delete(gomock.Any(), id).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), owner, id))
}
