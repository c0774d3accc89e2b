package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleTenant   = "tenant"
	RoleLandlord = "landlord"
	RoleAdmin    = "admin"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"id"`                   // Primary key
	Username     string    `json:"username" db:"username"`       // Unique username
	Email        string    `json:"email" db:"email"`             // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`         // Bcrypt hash, never serialized
	Role         string    `json:"role" db:"role"`               // tenant, landlord or admin
	IsVerified   bool      `json:"is_verified" db:"is_verified"` // Gates review posting
	CreatedAt    time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`   // Last update timestamp
}

// AuthTokens is the result of a successful login.
type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	User         *UserDB
}

// ProfileUpdate holds the self-service profile fields; nil means unchanged
// and an empty string is rejected.
type ProfileUpdate struct {
	Username *string `json:"username" validate:"omitnil,min=1"`
	Email    *string `json:"email" validate:"omitnil,min=1"`
	Password *string `json:"password" validate:"omitnil,min=1"`
}
