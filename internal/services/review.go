package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-apartment-listings/internal/logger"
	"github.com/sbilibin2017/gw-apartment-listings/internal/models"
	"github.com/sbilibin2017/gw-apartment-listings/internal/repositories"
)

//go:generate mockgen -source=review.go -destination=review_mock.go -package=services

var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrNotVerified     = errors.New("user is not verified")
	ErrInvalidRating   = errors.New("rating must be an integer between 1 and 5")
	ErrAlreadyReviewed = errors.New("listing already reviewed by user")
)

// ReviewReader defines read-only operations for reviews.
type ReviewReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.ReviewDB, error)
	GetByUserAndListing(ctx context.Context, userID, listingID uuid.UUID) (*models.ReviewDB, error)
	ListByListing(ctx context.Context, listingID uuid.UUID, limit, offset int) ([]models.ReviewDB, int, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.ReviewDB, int, error)
	ListAllByListing(ctx context.Context, listingID uuid.UUID) ([]models.ReviewDB, error)
}

// ReviewWriter defines write operations for reviews.
type ReviewWriter interface {
	Save(ctx context.Context, review *models.ReviewDB) error
	Update(ctx context.Context, review *models.ReviewDB) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserBatchReader loads several users at once.
type UserBatchReader interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.UserDB, error)
}

// ReviewService manages tenant reviews of listings.
type ReviewService struct {
	reader      ReviewReader
	writer      ReviewWriter
	listings    ListingReader
	users       UserReader
	authors     UserBatchReader
	kafkaWriter KafkaWriter
}

// NewReviewService creates a new ReviewService.
func NewReviewService(
	reader ReviewReader,
	writer ReviewWriter,
	listings ListingReader,
	users UserReader,
	authors UserBatchReader,
	kafkaWriter KafkaWriter,
) *ReviewService {
	return &ReviewService{
		reader:      reader,
		writer:      writer,
		listings:    listings,
		users:       users,
		authors:     authors,
		kafkaWriter: kafkaWriter,
	}
}

// CheckCanReview returns ErrUserNotFound or ErrNotVerified when userID
// may not post reviews.
func (s *ReviewService) CheckCanReview(ctx context.Context, userID uuid.UUID) error {
	_, err := s.checkCanReview(ctx, userID)
	return err
}

// checkCanReview is CheckCanReview that also returns the loaded user.
func (s *ReviewService) checkCanReview(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if !user.IsVerified {
		logger.Log.Warnw("unverified user tried to review", "user_id", userID)
		return nil, ErrNotVerified
	}
	return user, nil
}

// Create posts the user's review of a listing. The user must be verified
// and may review each listing once.
func (s *ReviewService) Create(ctx context.Context, userID uuid.UUID, input models.ReviewInput) (*models.ReviewWithAuthor, error) {
	user, err := s.checkCanReview(ctx, userID)
	if err != nil {
		return nil, err
	}

	rating, err := parseRating(*input.Rating)
	if err != nil {
		return nil, err
	}

	listingID, err := uuid.Parse(*input.ListingID)
	if err != nil {
		return nil, ErrListingNotFound
	}
	listing, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		logger.Log.Errorw("failed to get listing", "err", err)
		return nil, fmt.Errorf("get listing: %w", err)
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}

	existing, err := s.reader.GetByUserAndListing(ctx, userID, listingID)
	if err != nil {
		logger.Log.Errorw("failed to check review", "err", err)
		return nil, fmt.Errorf("check review: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyReviewed
	}

	now := time.Now().UTC()
	review := models.ReviewDB{
		ReviewID:  uuid.New(),
		Content:   *input.Content,
		Rating:    rating,
		CreatedAt: now,
		UpdatedAt: now,
		UserID:    userID,
		ListingID: listingID,
	}

	if err := s.writer.Save(ctx, &review); err != nil {
		if repositories.IsConflict(err, repositories.ConstraintReviewsUnique) {
			return nil, ErrAlreadyReviewed
		}
		logger.Log.Errorw("failed to save review", "err", err)
		return nil, fmt.Errorf("save review: %w", err)
	}

	// Sent before the request transaction commits; see publishEvent.
	publishEvent(ctx, s.kafkaWriter, models.EventReviewCreated, review.ReviewID, listingID, userID)
	return &models.ReviewWithAuthor{ReviewDB: review, User: user}, nil
}

// Update changes the content or rating of the user's own review.
func (s *ReviewService) Update(ctx context.Context, userID, reviewID uuid.UUID, input models.ReviewUpdate) (*models.ReviewWithAuthor, error) {
	review, err := s.get(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.UserID != userID {
		logger.Log.Warnw("review author mismatch", "review_id", reviewID, "user_id", userID)
		return nil, ErrForbidden
	}

	if input.Rating != nil {
		rating, err := parseRating(*input.Rating)
		if err != nil {
			return nil, err
		}
		review.Rating = rating
	}
	if input.Content != nil {
		review.Content = *input.Content
	}
	review.UpdatedAt = time.Now().UTC()

	if err := s.writer.Update(ctx, review); err != nil {
		logger.Log.Errorw("failed to update review", "err", err)
		return nil, fmt.Errorf("update review: %w", err)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, fmt.Errorf("get user: %w", err)
	}

	// Sent before the request transaction commits; see publishEvent.
	publishEvent(ctx, s.kafkaWriter, models.EventReviewUpdated, reviewID, review.ListingID, userID)
	return &models.ReviewWithAuthor{ReviewDB: *review, User: user}, nil
}

// Delete removes a review. Only its author or an admin may do so.
func (s *ReviewService) Delete(ctx context.Context, userID uuid.UUID, role string, reviewID uuid.UUID) error {
	review, err := s.get(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.UserID != userID && role != models.RoleAdmin {
		logger.Log.Warnw("review delete denied", "review_id", reviewID, "user_id", userID)
		return ErrForbidden
	}

	if err := s.writer.Delete(ctx, reviewID); err != nil {
		logger.Log.Errorw("failed to delete review", "err", err)
		return fmt.Errorf("delete review: %w", err)
	}

	// Sent before the request transaction commits; see publishEvent.
	publishEvent(ctx, s.kafkaWriter, models.EventReviewDeleted, reviewID, review.ListingID, userID)
	return nil
}

// ListByListing returns one page of the listing's reviews with their authors.
func (s *ReviewService) ListByListing(ctx context.Context, listingID uuid.UUID, page models.Page) (*models.Paginated[models.ReviewWithAuthor], error) {
	listing, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		logger.Log.Errorw("failed to get listing", "err", err)
		return nil, fmt.Errorf("get listing: %w", err)
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}

	reviews, total, err := s.reader.ListByListing(ctx, listingID, page.Limit(), page.Offset())
	if err != nil {
		logger.Log.Errorw("failed to list reviews", "err", err)
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return s.paginate(ctx, reviews, total, page)
}

// ListByUser returns one page of the user's reviews.
func (s *ReviewService) ListByUser(ctx context.Context, userID uuid.UUID, page models.Page) (*models.Paginated[models.ReviewWithAuthor], error) {
	reviews, total, err := s.reader.ListByUser(ctx, userID, page.Limit(), page.Offset())
	if err != nil {
		logger.Log.Errorw("failed to list reviews", "err", err)
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return s.paginate(ctx, reviews, total, page)
}

func (s *ReviewService) paginate(ctx context.Context, reviews []models.ReviewDB, total int, page models.Page) (*models.Paginated[models.ReviewWithAuthor], error) {
	items, err := attachAuthors(ctx, s.authors, reviews)
	if err != nil {
		return nil, err
	}
	return models.NewPaginated(items, total, page), nil
}

func (s *ReviewService) get(ctx context.Context, id uuid.UUID) (*models.ReviewDB, error) {
	review, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get review", "err", err)
		return nil, fmt.Errorf("get review: %w", err)
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}
	return review, nil
}

// parseRating accepts only integral ratings within bounds.
func parseRating(value float64) (int, error) {
	if value != math.Trunc(value) || value < models.MinRating || value > models.MaxRating {
		return 0, ErrInvalidRating
	}
	return int(value), nil
}

// attachAuthors pairs each review with its author, loaded in one query.
func attachAuthors(ctx context.Context, users UserBatchReader, reviews []models.ReviewDB) ([]models.ReviewWithAuthor, error) {
	if len(reviews) == 0 {
		return []models.ReviewWithAuthor{}, nil
	}

	seen := make(map[uuid.UUID]struct{}, len(reviews))
	ids := make([]uuid.UUID, 0, len(reviews))
	for _, r := range reviews {
		if _, ok := seen[r.UserID]; !ok {
			seen[r.UserID] = struct{}{}
			ids = append(ids, r.UserID)
		}
	}

	authors, err := users.GetByIDs(ctx, ids)
	if err != nil {
		logger.Log.Errorw("failed to load review authors", "err", err)
		return nil, fmt.Errorf("load review authors: %w", err)
	}

	items := make([]models.ReviewWithAuthor, len(reviews))
	for i, r := range reviews {
		items[i] = models.ReviewWithAuthor{ReviewDB: r, User: authors[r.UserID]}
	}
	return items, nil
}
