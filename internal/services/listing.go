package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-apartment-listings/internal/logger"
	"github.com/sbilibin2017/gw-apartment-listings/internal/models"
)

//go:generate mockgen -source=listing.go -destination=listing_mock.go -package=services

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrForbidden       = errors.New("permission denied")
)

// ListingReader defines read-only operations for listings.
type ListingReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.ListingDB, error)
	List(ctx context.Context, filter models.ListingFilter, limit, offset int) ([]models.ListingDB, int, error)
	GetAmenities(ctx context.Context, listingIDs []uuid.UUID) (map[uuid.UUID][]models.AmenityDB, error)
	GetImages(ctx context.Context, listingIDs []uuid.UUID) (map[uuid.UUID][]models.ListingImageDB, error)
}

// ListingWriter defines write operations for listings.
type ListingWriter interface {
	Save(ctx context.Context, listing *models.ListingDB) error
	Update(ctx context.Context, listing *models.ListingDB) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetAmenities(ctx context.Context, listingID uuid.UUID, amenityIDs []int64) error
	ReplaceImages(ctx context.Context, listingID uuid.UUID, images []models.ListingImageDB) error
}

// ListingService manages listings and their amenity and image sets.
type ListingService struct {
	reader      ListingReader
	writer      ListingWriter
	reviews     ReviewReader
	users       UserBatchReader
	kafkaWriter KafkaWriter
}

// NewListingService creates a new ListingService.
func NewListingService(
	reader ListingReader,
	writer ListingWriter,
	reviews ReviewReader,
	users UserBatchReader,
	kafkaWriter KafkaWriter,
) *ListingService {
	return &ListingService{
		reader:      reader,
		writer:      writer,
		reviews:     reviews,
		users:       users,
		kafkaWriter: kafkaWriter,
	}
}

// List returns one page of published listings matching filter.
func (s *ListingService) List(ctx context.Context, filter models.ListingFilter, page models.Page) (*models.Paginated[models.Listing], error) {
	filter.PublishedOnly = true
	return s.list(ctx, filter, page)
}

// ListByOwner returns one page of the owner's listings, drafts included.
func (s *ListingService) ListByOwner(ctx context.Context, ownerID uuid.UUID, page models.Page) (*models.Paginated[models.Listing], error) {
	return s.list(ctx, models.ListingFilter{OwnerID: &ownerID}, page)
}

func (s *ListingService) list(ctx context.Context, filter models.ListingFilter, page models.Page) (*models.Paginated[models.Listing], error) {
	rows, total, err := s.reader.List(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		logger.Log.Errorw("failed to list listings", "err", err)
		return nil, fmt.Errorf("list listings: %w", err)
	}

	listings, err := s.attach(ctx, rows)
	if err != nil {
		return nil, err
	}
	return models.NewPaginated(listings, total, page), nil
}

// Get returns the listing with its reviews. Unpublished listings are only
// visible to their owner; viewerID is nil for anonymous callers.
func (s *ListingService) Get(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*models.ListingDetail, error) {
	row, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get listing", "err", err)
		return nil, fmt.Errorf("get listing: %w", err)
	}
	if row == nil {
		return nil, ErrListingNotFound
	}
	if !row.IsPublished && (viewerID == nil || *viewerID != row.UserID) {
		return nil, ErrListingNotFound
	}

	listings, err := s.attach(ctx, []models.ListingDB{*row})
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.ListAllByListing(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to list reviews", "err", err)
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	withAuthors, err := attachAuthors(ctx, s.users, reviews)
	if err != nil {
		return nil, err
	}

	return &models.ListingDetail{Listing: listings[0], Reviews: withAuthors}, nil
}

// Create stores a new listing owned by ownerID. Required fields of input
// must already be validated.
func (s *ListingService) Create(ctx context.Context, ownerID uuid.UUID, input models.ListingInput) (*models.Listing, error) {
	now := time.Now().UTC()
	row := &models.ListingDB{
		ListingID:   uuid.New(),
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
		UserID:      ownerID,
	}
	applyListingInput(row, input)

	if err := s.writer.Save(ctx, row); err != nil {
		logger.Log.Errorw("failed to save listing", "err", err)
		return nil, fmt.Errorf("save listing: %w", err)
	}

	if err := s.replaceSets(ctx, row.ListingID, input, now); err != nil {
		return nil, err
	}

	listing, err := s.reload(ctx, row)
	if err != nil {
		return nil, err
	}

	// Sent before the request transaction commits; see publishEvent.
	publishEvent(ctx, s.kafkaWriter, models.EventListingCreated, row.ListingID, row.ListingID, ownerID)
	return listing, nil
}

// Update applies the present fields of input to the owner's listing.
func (s *ListingService) Update(ctx context.Context, ownerID, id uuid.UUID, input models.ListingInput) (*models.Listing, error) {
	row, err := s.owned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	applyListingInput(row, input)
	row.UpdatedAt = now

	if err := s.writer.Update(ctx, row); err != nil {
		logger.Log.Errorw("failed to update listing", "err", err)
		return nil, fmt.Errorf("update listing: %w", err)
	}

	if err := s.replaceSets(ctx, id, input, now); err != nil {
		return nil, err
	}

	listing, err := s.reload(ctx, row)
	if err != nil {
		return nil, err
	}

	// Sent before the request transaction commits; see publishEvent.
	publishEvent(ctx, s.kafkaWriter, models.EventListingUpdated, id, id, ownerID)
	return listing, nil
}

// Delete removes the owner's listing.
func (s *ListingService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if _, err := s.owned(ctx, ownerID, id); err != nil {
		return err
	}

	if err := s.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete listing", "err", err)
		return fmt.Errorf("delete listing: %w", err)
	}

	// Sent before the request transaction commits; see publishEvent.
	publishEvent(ctx, s.kafkaWriter, models.EventListingDeleted, id, id, ownerID)
	return nil
}

// owned loads the listing and checks that ownerID owns it.
func (s *ListingService) owned(ctx context.Context, ownerID, id uuid.UUID) (*models.ListingDB, error) {
	row, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get listing", "err", err)
		return nil, fmt.Errorf("get listing: %w", err)
	}
	if row == nil {
		return nil, ErrListingNotFound
	}
	if row.UserID != ownerID {
		logger.Log.Warnw("listing owner mismatch", "listing_id", id, "user_id", ownerID)
		return nil, ErrForbidden
	}
	return row, nil
}

// replaceSets replaces the amenity and image sets that input carries.
func (s *ListingService) replaceSets(ctx context.Context, id uuid.UUID, input models.ListingInput, now time.Time) error {
	if input.AmenityIDs != nil {
		if err := s.writer.SetAmenities(ctx, id, *input.AmenityIDs); err != nil {
			logger.Log.Errorw("failed to set amenities", "err", err)
			return fmt.Errorf("set amenities: %w", err)
		}
	}

	if input.Images != nil {
		images := make([]models.ListingImageDB, 0, len(*input.Images))
		for _, img := range *input.Images {
			if img.URL == nil || *img.URL == "" {
				continue
			}
			images = append(images, models.ListingImageDB{
				URL:       *img.URL,
				Caption:   img.Caption,
				IsPrimary: img.IsPrimary,
				CreatedAt: now,
			})
		}
		if err := s.writer.ReplaceImages(ctx, id, images); err != nil {
			logger.Log.Errorw("failed to replace images", "err", err)
			return fmt.Errorf("replace images: %w", err)
		}
	}
	return nil
}

func (s *ListingService) reload(ctx context.Context, row *models.ListingDB) (*models.Listing, error) {
	listings, err := s.attach(ctx, []models.ListingDB{*row})
	if err != nil {
		return nil, err
	}
	return &listings[0], nil
}

// attach loads the amenities and images of rows in two batched queries.
func (s *ListingService) attach(ctx context.Context, rows []models.ListingDB) ([]models.Listing, error) {
	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ListingID
	}

	amenities, err := s.reader.GetAmenities(ctx, ids)
	if err != nil {
		logger.Log.Errorw("failed to load amenities", "err", err)
		return nil, fmt.Errorf("load amenities: %w", err)
	}

	images, err := s.reader.GetImages(ctx, ids)
	if err != nil {
		logger.Log.Errorw("failed to load images", "err", err)
		return nil, fmt.Errorf("load images: %w", err)
	}

	listings := make([]models.Listing, len(rows))
	for i, row := range rows {
		listings[i] = models.Listing{
			ListingDB: row,
			Amenities: amenities[row.ListingID],
			Images:    images[row.ListingID],
		}
		if listings[i].Amenities == nil {
			listings[i].Amenities = []models.AmenityDB{}
		}
		if listings[i].Images == nil {
			listings[i].Images = []models.ListingImageDB{}
		}
	}
	return listings, nil
}

func applyListingInput(row *models.ListingDB, input models.ListingInput) {
	if input.Title != nil {
		row.Title = *input.Title
	}
	if input.Description != nil {
		row.Description = *input.Description
	}
	if input.Price != nil {
		row.Price = *input.Price
	}
	if input.Bedrooms != nil {
		row.Bedrooms = *input.Bedrooms
	}
	if input.Bathrooms != nil {
		row.Bathrooms = *input.Bathrooms
	}
	if input.SquareFeet != nil {
		row.SquareFeet = input.SquareFeet
	}
	if input.Address != nil {
		row.Address = *input.Address
	}
	if input.City != nil {
		row.City = *input.City
	}
	if input.State != nil {
		row.State = *input.State
	}
	if input.ZipCode != nil {
		row.ZipCode = *input.ZipCode
	}
	if input.Latitude != nil {
		row.Latitude = input.Latitude
	}
	if input.Longitude != nil {
		row.Longitude = input.Longitude
	}
	if input.IsPublished != nil {
		row.IsPublished = *input.IsPublished
	}
}
