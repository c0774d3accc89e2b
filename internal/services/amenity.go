package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-apartment-listings/internal/logger"
	"github.com/sbilibin2017/gw-apartment-listings/internal/models"
	"github.com/sbilibin2017/gw-apartment-listings/internal/repositories"
)

//go:generate mockgen -source=amenity.go -destination=amenity_mock.go -package=services

var ErrAmenityExists = errors.New("amenity already exists")

// AmenityStore is the amenity catalogue.
type AmenityStore interface {
	List(ctx context.Context) ([]models.AmenityDB, error)
	GetByName(ctx context.Context, name string) (*models.AmenityDB, error)
	Save(ctx context.Context, amenity *models.AmenityDB) error
}

// AmenityService manages the amenity catalogue.
type AmenityService struct {
	store AmenityStore
}

func NewAmenityService(store AmenityStore) *AmenityService {
	return &AmenityService{store: store}
}

// List returns every amenity ordered by name.
func (s *AmenityService) List(ctx context.Context) ([]models.AmenityDB, error) {
	amenities, err := s.store.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list amenities", "err", err)
		return nil, fmt.Errorf("list amenities: %w", err)
	}
	return amenities, nil
}

// Create adds an amenity with a unique name.
func (s *AmenityService) Create(ctx context.Context, name string, icon *string) (*models.AmenityDB, error) {
	existing, err := s.store.GetByName(ctx, name)
	if err != nil {
		logger.Log.Errorw("failed to check amenity", "err", err)
		return nil, fmt.Errorf("check amenity: %w", err)
	}
	if existing != nil {
		return nil, ErrAmenityExists
	}

	amenity := &models.AmenityDB{Name: name, Icon: icon}
	if err := s.store.Save(ctx, amenity); err != nil {
		if repositories.IsConflict(err, repositories.ConstraintAmenitiesName) {
			return nil, ErrAmenityExists
		}
		logger.Log.Errorw("failed to save amenity", "err", err)
		return nil, fmt.Errorf("save amenity: %w", err)
	}
	return amenity, nil
}
