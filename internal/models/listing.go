package models

import (
	"time"

	"github.com/google/uuid"
)

// ListingDB represents a listing row in the database
type ListingDB struct {
	ListingID   uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	Bedrooms    int       `json:"bedrooms" db:"bedrooms"`
	Bathrooms   float64   `json:"bathrooms" db:"bathrooms"`
	SquareFeet  *int      `json:"square_feet" db:"square_feet"`
	Address     string    `json:"address" db:"address"`
	City        string    `json:"city" db:"city"`
	State       string    `json:"state" db:"state"`
	ZipCode     string    `json:"zip_code" db:"zip_code"`
	Latitude    *float64  `json:"latitude" db:"latitude"`
	Longitude   *float64  `json:"longitude" db:"longitude"`
	IsPublished bool      `json:"is_published" db:"is_published"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"` // Owning landlord
}

// ListingImageDB represents a listing_images row
type ListingImageDB struct {
	ImageID   int64     `json:"id" db:"id"`
	URL       string    `json:"url" db:"url"`
	Caption   *string   `json:"caption" db:"caption"`
	IsPrimary bool      `json:"is_primary" db:"is_primary"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	ListingID uuid.UUID `json:"listing_id" db:"listing_id"`
}

// AmenityDB represents an amenities row
type AmenityDB struct {
	AmenityID int64   `json:"id" db:"id"`
	Name      string  `json:"name" db:"name"`
	Icon      *string `json:"icon" db:"icon"`
}

// Listing is a listing together with its amenities and images.
type Listing struct {
	ListingDB
	Amenities []AmenityDB      `json:"amenities"`
	Images    []ListingImageDB `json:"images"`
}

// ListingDetail is a listing with its reviews, returned by the single listing endpoint.
type ListingDetail struct {
	Listing
	Reviews []ReviewWithAuthor `json:"reviews"`
}

// ImageInput describes one image in a create or update request.
type ImageInput struct {
	URL       *string `json:"url"`
	Caption   *string `json:"caption"`
	IsPrimary bool    `json:"is_primary"`
}

// ListingInput is the body of listing create and update requests.
// Pointer fields distinguish "absent" from zero values; on update only the
// present fields are applied. AmenityIDs and Images replace the current sets
// when present.
type ListingInput struct {
	Title       *string       `json:"title" validate:"required"`
	Description *string       `json:"description" validate:"required"`
	Price       *float64      `json:"price" validate:"required"`
	Bedrooms    *int          `json:"bedrooms" validate:"required"`
	Bathrooms   *float64      `json:"bathrooms" validate:"required"`
	SquareFeet  *int          `json:"square_feet"`
	Address     *string       `json:"address" validate:"required"`
	City        *string       `json:"city" validate:"required"`
	State       *string       `json:"state" validate:"required"`
	ZipCode     *string       `json:"zip_code" validate:"required"`
	Latitude    *float64      `json:"latitude"`
	Longitude   *float64      `json:"longitude"`
	IsPublished *bool         `json:"is_published"`
	AmenityIDs  *[]int64      `json:"amenity_ids"`
	Images      *[]ImageInput `json:"images"`
}

// ListingFilter narrows listing queries. Zero values mean "no filter".
type ListingFilter struct {
	Query         string // free text, OR-matched across the text columns
	City          string
	State         string
	ZipCode       string
	MinPrice      *float64
	MaxPrice      *float64
	MinBedrooms   *int
	MaxBedrooms   *int
	MinBathrooms  *float64
	MaxBathrooms  *float64
	AmenityIDs    []int64 // every id must be linked to the listing
	OwnerID       *uuid.UUID
	PublishedOnly bool
}
