package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-apartment-listings/internal/models"
	"github.com/sbilibin2017/gw-apartment-listings/internal/services"
)

//go:generate mockgen -source=review.go -destination=review_mock.go -package=handlers

// ReviewCreator posts reviews.
type ReviewCreator interface {
	CheckCanReview(ctx context.Context, userID uuid.UUID) error
	Create(ctx context.Context, userID uuid.UUID, input models.ReviewInput) (*models.ReviewWithAuthor, error)
}

// ReviewUpdater edits the caller's reviews.
type ReviewUpdater interface {
	Update(ctx context.Context, userID, reviewID uuid.UUID, input models.ReviewUpdate) (*models.ReviewWithAuthor, error)
}

// ReviewDeleter removes reviews as author or admin.
type ReviewDeleter interface {
	Delete(ctx context.Context, userID uuid.UUID, role string, reviewID uuid.UUID) error
}

// ListingReviewLister pages through the reviews of a listing.
type ListingReviewLister interface {
	ListByListing(ctx context.Context, listingID uuid.UUID, page models.Page) (*models.Paginated[models.ReviewWithAuthor], error)
}

// ReviewResponse wraps a review with a message
// swagger:model ReviewResponse
type ReviewResponse struct {
	Message string                   `json:"message"`
	Review  *models.ReviewWithAuthor `json:"review"`
}

const ratingMessage = "Rating must be an integer between 1 and 5"

// NewCreateReviewHandler returns an HTTP handler that posts a review.
// @Summary Review a listing
// @Description Verified tenants only, one review per listing.
// @Tags reviews
// @Accept json
// @Produce json
// @Param review body models.ReviewInput true "Review"
// @Success 201 {object} handlers.ReviewResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Listing not found"
// @Router /reviews/ [post]
// @Security BearerAuth
func NewCreateReviewHandler(svc ReviewCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		if err := svc.CheckCanReview(r.Context(), claims.UserID); err != nil {
			writeReviewerError(w, err)
			return
		}

		var input models.ReviewInput
		if !decodeBody(w, r, &input) {
			return
		}
		if err := validate.Struct(input); err != nil {
			writeError(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		review, err := svc.Create(r.Context(), claims.UserID, input)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrNotVerified):
				writeReviewerError(w, err)
			case errors.Is(err, services.ErrInvalidRating):
				writeError(w, http.StatusBadRequest, ratingMessage)
			case errors.Is(err, services.ErrListingNotFound):
				writeError(w, http.StatusNotFound, "Listing not found")
			case errors.Is(err, services.ErrAlreadyReviewed):
				writeError(w, http.StatusBadRequest, "You have already reviewed this listing")
			default:
				writeInternalError(w, err)
			}
			return
		}
		writeJSON(w, http.StatusCreated, ReviewResponse{Message: "Review created successfully", Review: review})
	}
}

func writeReviewerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, services.ErrNotVerified):
		writeError(w, http.StatusForbidden, "Only verified tenants can post reviews")
	default:
		writeInternalError(w, err)
	}
}

// NewUpdateReviewHandler returns an HTTP handler that edits the caller's review.
// @Summary Update a review
// @Tags reviews
// @Accept json
// @Produce json
// @Param reviewID path string true "Review ID"
// @Param review body models.ReviewUpdate true "Changed fields"
// @Success 200 {object} handlers.ReviewResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Review not found"
// @Router /reviews/{reviewID} [put]
// @Security BearerAuth
func NewUpdateReviewHandler(svc ReviewUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}
		id, ok := urlUUID(r, "reviewID")
		if !ok {
			writeError(w, http.StatusNotFound, "Review not found")
			return
		}

		var input models.ReviewUpdate
		if !decodeBody(w, r, &input) {
			return
		}

		review, err := svc.Update(r.Context(), claims.UserID, id, input)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrReviewNotFound):
				writeError(w, http.StatusNotFound, "Review not found")
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "You do not have permission to update this review")
			case errors.Is(err, services.ErrInvalidRating):
				writeError(w, http.StatusBadRequest, ratingMessage)
			default:
				writeInternalError(w, err)
			}
			return
		}
		writeJSON(w, http.StatusOK, ReviewResponse{Message: "Review updated successfully", Review: review})
	}
}

// NewDeleteReviewHandler returns an HTTP handler that deletes a review.
// @Summary Delete a review
// @Description Allowed for the author and for admins.
// @Tags reviews
// @Produce json
// @Param reviewID path string true "Review ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Review not found"
// @Router /reviews/{reviewID} [delete]
// @Security BearerAuth
func NewDeleteReviewHandler(svc ReviewDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}
		id, ok := urlUUID(r, "reviewID")
		if !ok {
			writeError(w, http.StatusNotFound, "Review not found")
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, claims.Role, id); err != nil {
			switch {
			case errors.Is(err, services.ErrReviewNotFound):
				writeError(w, http.StatusNotFound, "Review not found")
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "You do not have permission to delete this review")
			default:
				writeInternalError(w, err)
			}
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Review deleted successfully"})
	}
}

// NewListingReviewsHandler returns an HTTP handler paging through a listing's reviews.
// @Summary List reviews of a listing
// @Tags reviews
// @Produce json
// @Param listingID path string true "Listing ID"
// @Param page query int false "Page" default(1)
// @Param per_page query int false "Items per page" default(10)
// @Success 200 {object} models.Paginated[models.ReviewWithAuthor]
// @Failure 404 {object} handlers.ErrorResponse "Listing not found"
// @Router /reviews/listing/{listingID} [get]
func NewListingReviewsHandler(svc ListingReviewLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlUUID(r, "listingID")
		if !ok {
			writeError(w, http.StatusNotFound, "Listing not found")
			return
		}

		result, err := svc.ListByListing(r.Context(), id, parsePage(r))
		if err != nil {
			if errors.Is(err, services.ErrListingNotFound) {
				writeError(w, http.StatusNotFound, "Listing not found")
				return
			}
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}
