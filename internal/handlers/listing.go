package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-apartment-listings/internal/middlewares"
	"github.com/sbilibin2017/gw-apartment-listings/internal/models"
	"github.com/sbilibin2017/gw-apartment-listings/internal/services"
)

//go:generate mockgen -source=listing.go -destination=listing_mock.go -package=handlers

// ListingLister lists published listings.
type ListingLister interface {
	List(ctx context.Context, filter models.ListingFilter, page models.Page) (*models.Paginated[models.Listing], error)
}

// ListingGetter loads a single listing.
type ListingGetter interface {
	Get(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*models.ListingDetail, error)
}

// ListingCreator creates listings.
type ListingCreator interface {
	Create(ctx context.Context, ownerID uuid.UUID, input models.ListingInput) (*models.Listing, error)
}

// ListingUpdater updates listings owned by the caller.
type ListingUpdater interface {
	Update(ctx context.Context, ownerID, id uuid.UUID, input models.ListingInput) (*models.Listing, error)
}

// ListingDeleter deletes listings owned by the caller.
type ListingDeleter interface {
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// ListingResponse wraps a listing with a message
// swagger:model ListingResponse
type ListingResponse struct {
	Message string          `json:"message"`
	Listing *models.Listing `json:"listing"`
}

// NewListListingsHandler returns an HTTP handler that pages through published listings.
// @Summary List listings
// @Description Published listings, newest first. bedrooms and bathrooms are minimums.
// @Tags listings
// @Produce json
// @Param city query string false "City substring"
// @Param state query string false "State substring"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param bedrooms query int false "Minimum bedrooms"
// @Param bathrooms query number false "Minimum bathrooms"
// @Param page query int false "Page" default(1)
// @Param per_page query int false "Items per page" default(10)
// @Success 200 {object} models.Paginated[models.Listing]
// @Failure 500 {object} handlers.ErrorResponse
// @Router /listings/ [get]
func NewListListingsHandler(svc ListingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := models.ListingFilter{
			City:         q.Get("city"),
			State:        q.Get("state"),
			MinPrice:     queryFloat(r, "min_price"),
			MaxPrice:     queryFloat(r, "max_price"),
			MinBedrooms:  queryInt(r, "bedrooms"),
			MinBathrooms: queryFloat(r, "bathrooms"),
		}

		result, err := svc.List(r.Context(), filter, parsePage(r))
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// NewGetListingHandler returns an HTTP handler for a single listing.
// @Summary Get a listing
// @Description Unpublished listings are only visible to their owner.
// @Tags listings
// @Produce json
// @Param listingID path string true "Listing ID"
// @Success 200 {object} models.ListingDetail
// @Failure 404 {object} handlers.ErrorResponse "Listing not found"
// @Router /listings/{listingID} [get]
func NewGetListingHandler(svc ListingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlUUID(r, "listingID")
		if !ok {
			writeError(w, http.StatusNotFound, "Listing not found")
			return
		}

		var viewerID *uuid.UUID
		if claims := middlewares.ClaimsFromContext(r.Context()); claims != nil {
			viewerID = &claims.UserID
		}

		listing, err := svc.Get(r.Context(), id, viewerID)
		if err != nil {
			if errors.Is(err, services.ErrListingNotFound) {
				writeError(w, http.StatusNotFound, "Listing not found")
				return
			}
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, listing)
	}
}

// NewCreateListingHandler returns an HTTP handler that creates a listing for the caller.
// @Summary Create a listing
// @Tags listings
// @Accept json
// @Produce json
// @Param listing body models.ListingInput true "Listing"
// @Success 201 {object} handlers.ListingResponse
// @Failure 400 {object} handlers.ErrorResponse "Missing required fields"
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse "Only landlords can create listings"
// @Router /listings/ [post]
// @Security BearerAuth
func NewCreateListingHandler(svc ListingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		var input models.ListingInput
		if !decodeBody(w, r, &input) {
			return
		}
		if err := validate.Struct(input); err != nil {
			writeError(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		listing, err := svc.Create(r.Context(), claims.UserID, input)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, ListingResponse{Message: "Listing created successfully", Listing: listing})
	}
}

// NewUpdateListingHandler returns an HTTP handler that updates one of the caller's listings.
// @Summary Update a listing
// @Description Only present fields change. amenity_ids and images replace the current sets.
// @Tags listings
// @Accept json
// @Produce json
// @Param listingID path string true "Listing ID"
// @Param listing body models.ListingInput true "Changed fields"
// @Success 200 {object} handlers.ListingResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Listing not found"
// @Router /listings/{listingID} [put]
// @Security BearerAuth
func NewUpdateListingHandler(svc ListingUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}
		id, ok := urlUUID(r, "listingID")
		if !ok {
			writeError(w, http.StatusNotFound, "Listing not found")
			return
		}

		var input models.ListingInput
		if !decodeBody(w, r, &input) {
			return
		}

		listing, err := svc.Update(r.Context(), claims.UserID, id, input)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrListingNotFound):
				writeError(w, http.StatusNotFound, "Listing not found")
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "You do not have permission to update this listing")
			default:
				writeInternalError(w, err)
			}
			return
		}
		writeJSON(w, http.StatusOK, ListingResponse{Message: "Listing updated successfully", Listing: listing})
	}
}

// NewDeleteListingHandler returns an HTTP handler that deletes one of the caller's listings.
// @Summary Delete a listing
// @Tags listings
// @Produce json
// @Param listingID path string true "Listing ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Listing not found"
// @Router /listings/{listingID} [delete]
// @Security BearerAuth
func NewDeleteListingHandler(svc ListingDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}
		id, ok := urlUUID(r, "listingID")
		if !ok {
			writeError(w, http.StatusNotFound, "Listing not found")
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, id); err != nil {
			switch {
			case errors.Is(err, services.ErrListingNotFound):
				writeError(w, http.StatusNotFound, "Listing not found")
			case errors.Is(err, services.ErrForbidden):
				writeError(w, http.StatusForbidden, "You do not have permission to delete this listing")
			default:
				writeInternalError(w, err)
			}
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Listing deleted successfully"})
	}
}
