package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-apartment-listings/internal/models"
	"github.com/sbilibin2017/gw-apartment-listings/internal/services"
)

//go:generate mockgen -source=user.go -destination=user_mock.go -package=handlers

type ProfileGetter interface {
	Profile(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, update models.ProfileUpdate) (*models.UserDB, error)
}

type OwnerListingLister interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID, page models.Page) (*models.Paginated[models.Listing], error)
}

type UserReviewLister interface {
	ListByUser(ctx context.Context, userID uuid.UUID, page models.Page) (*models.Paginated[models.ReviewWithAuthor], error)
}

// NewProfileHandler returns an HTTP handler for the caller's profile.
// @Summary Current user
// @Tags users
// @Produce json
// @Success 200 {object} models.UserDB
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/me [get]
// @Security BearerAuth
func NewProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		user, err := svc.Profile(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// NewUpdateProfileHandler returns an HTTP handler that edits the caller's profile.
// @Summary Update current user
// @Tags users
// @Accept json
// @Produce json
// @Param profile body models.ProfileUpdate true "Changed fields"
// @Success 200 {object} handlers.UserResponse
// @Failure 400 {object} handlers.ErrorResponse "Empty field, password too long, username or email taken"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/me [put]
// @Security BearerAuth
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		var update models.ProfileUpdate
		if !decodeBody(w, r, &update) {
			return
		}
		if err := validate.Struct(update); err != nil {
			writeError(w, http.StatusBadRequest, "Username, email and password cannot be empty")
			return
		}

		user, err := svc.UpdateProfile(r.Context(), claims.UserID, update)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
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
		writeJSON(w, http.StatusOK, UserResponse{Message: "Profile updated successfully", User: user})
	}
}

// NewMyListingsHandler returns an HTTP handler paging through the caller's listings, drafts included.
// @Summary Current landlord's listings
// @Tags users
// @Produce json
// @Param page query int false "Page" default(1)
// @Param per_page query int false "Items per page" default(10)
// @Success 200 {object} models.Paginated[models.Listing]
// @Failure 403 {object} handlers.ErrorResponse "Only landlords can access listings"
// @Router /users/me/listings [get]
// @Security BearerAuth
func NewMyListingsHandler(svc OwnerListingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		result, err := svc.ListByOwner(r.Context(), claims.UserID, parsePage(r))
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// NewMyReviewsHandler returns an HTTP handler paging through the caller's reviews.
// @Summary Current user's reviews
// @Tags users
// @Produce json
// @Param page query int false "Page" default(1)
// @Param per_page query int false "Items per page" default(10)
// @Success 200 {object} models.Paginated[models.ReviewWithAuthor]
// @Router /users/me/reviews [get]
// @Security BearerAuth
func NewMyReviewsHandler(svc UserReviewLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		result, err := svc.ListByUser(r.Context(), claims.UserID, parsePage(r))
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}
