package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-apartment-listings/internal/models"
	"github.com/sbilibin2017/gw-apartment-listings/internal/services"
)

//go:generate mockgen -source=amenity.go -destination=amenity_mock.go -package=handlers

type AmenityLister interface {
	List(ctx context.Context) ([]models.AmenityDB, error)
}

type AmenityCreator interface {
	Create(ctx context.Context, name string, icon *string) (*models.AmenityDB, error)
}

// AmenityRequest represents the JSON body for amenity creation
// swagger:model AmenityRequest
type AmenityRequest struct {
	// required: true
	// default: Dishwasher
	Name string  `json:"name" validate:"required"`
	Icon *string `json:"icon"`
}

// AmenityResponse wraps an amenity with a message
// swagger:model AmenityResponse
type AmenityResponse struct {
	Message string            `json:"message"`
	Amenity *models.AmenityDB `json:"amenity"`
}

// NewListAmenitiesHandler returns an HTTP handler listing all amenities.
// @Summary List amenities
// @Tags listings
// @Produce json
// @Success 200 {array} models.AmenityDB
// @Router /listings/amenities [get]
func NewListAmenitiesHandler(svc AmenityLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		amenities, err := svc.List(r.Context())
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, amenities)
	}
}

// NewCreateAmenityHandler returns an HTTP handler that adds an amenity.
// @Summary Create an amenity
// @Tags listings
// @Accept json
// @Produce json
// @Param amenity body handlers.AmenityRequest true "Amenity"
// @Success 201 {object} handlers.AmenityResponse
// @Failure 400 {object} handlers.ErrorResponse "Missing or duplicate name"
// @Failure 401 {object} handlers.ErrorResponse
// @Router /listings/amenities [post]
// @Security BearerAuth
func NewCreateAmenityHandler(svc AmenityCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AmenityRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if err := validate.Struct(req); err != nil {
			writeError(w, http.StatusBadRequest, "Amenity name is required")
			return
		}

		amenity, err := svc.Create(r.Context(), req.Name, req.Icon)
		if err != nil {
			if errors.Is(err, services.ErrAmenityExists) {
				writeError(w, http.StatusBadRequest, "Amenity already exists")
				return
			}
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, AmenityResponse{Message: "Amenity created successfully", Amenity: amenity})
	}
}
