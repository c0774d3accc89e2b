package models

import (
	"time"

	"github.com/google/uuid"
)

// Rating bounds
const (
	MinRating = 1
	MaxRating = 5
)

// ReviewDB represents a review row in the database
type ReviewDB struct {
	ReviewID  uuid.UUID `json:"id" db:"id"`
	Content   string    `json:"content" db:"content"`
	Rating    int       `json:"rating" db:"rating"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Author
	ListingID uuid.UUID `json:"listing_id" db:"listing_id"` // Reviewed listing
}

// ReviewWithAuthor is a review serialized with its author.
type ReviewWithAuthor struct {
	ReviewDB
	User *UserDB `json:"user"`
}

// ReviewInput is the body of a review create request.
// Rating is decoded as a number so that non-integral values can be rejected
// with a rating error rather than a decoding error.
type ReviewInput struct {
	Content   *string  `json:"content" validate:"required"`
	Rating    *float64 `json:"rating" validate:"required"`
	ListingID *string  `json:"listing_id" validate:"required"`
}

// ReviewUpdate is the body of a review update request; nil means unchanged.
type ReviewUpdate struct {
	Content *string  `json:"content"`
	Rating  *float64 `json:"rating"`
}
