package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-apartment-listings/internal/models"
)

// AmenityRepository handles the amenity catalogue
type AmenityRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewAmenityRepository(db *sqlx.DB, txGetter TxGetter) *AmenityRepository {
	return &AmenityRepository{db: db, txGetter: txGetter}
}

// List returns every amenity ordered by name.
func (r *AmenityRepository) List(ctx context.Context) ([]models.AmenityDB, error) {
	const query = `SELECT id, name, icon FROM amenities ORDER BY name`

	amenities := []models.AmenityDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &amenities, query)
	logQuery(query, nil, err)
	if err != nil {
		return nil, err
	}
	return amenities, nil
}

// GetByName returns the amenity or nil when it does not exist.
func (r *AmenityRepository) GetByName(ctx context.Context, name string) (*models.AmenityDB, error) {
	const query = `SELECT id, name, icon FROM amenities WHERE name = $1`

	var amenity models.AmenityDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &amenity, query, name)
	logQuery(query, []any{name}, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &amenity, nil
}

// Save inserts the amenity and sets its generated id.
func (r *AmenityRepository) Save(ctx context.Context, amenity *models.AmenityDB) error {
	const query = `INSERT INTO amenities (name, icon) VALUES ($1, $2) RETURNING id`

	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &amenity.AmenityID, query, amenity.Name, amenity.Icon)
	logQuery(query, []any{amenity.Name, amenity.Icon}, err)

	return translateError(err)
}
