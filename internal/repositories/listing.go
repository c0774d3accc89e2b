package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-apartment-listings/internal/models"
)

const listingColumns = `l.id, l.title, l.description, l.price, l.bedrooms, l.bathrooms, l.square_feet,
	l.address, l.city, l.state, l.zip_code, l.latitude, l.longitude, l.is_published,
	l.created_at, l.updated_at, l.user_id`

// ListingReadRepository handles listing read operations
type ListingReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewListingReadRepository(db *sqlx.DB, txGetter TxGetter) *ListingReadRepository {
	return &ListingReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the listing or nil when it does not exist.
func (r *ListingReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ListingDB, error) {
	query := `SELECT ` + listingColumns + ` FROM listings l WHERE l.id = $1`

	var listing models.ListingDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &listing, query, id)
	logQuery(query, []any{id}, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// List returns one page of listings matching filter, newest first, and the
// total number of matches.
func (r *ListingReadRepository) List(ctx context.Context, filter models.ListingFilter, limit, offset int) ([]models.ListingDB, int, error) {
	exec := executor(ctx, r.db, r.txGetter)
	where, args := buildListingWhere(filter)

	countQuery := exec.Rebind(`SELECT COUNT(*) FROM listings l` + where)
	var total int
	err := sqlx.GetContext(ctx, exec, &total, countQuery, args...)
	logQuery(countQuery, args, err)
	if err != nil {
		return nil, 0, err
	}

	listQuery := exec.Rebind(`SELECT ` + listingColumns + ` FROM listings l` + where +
		` ORDER BY l.created_at DESC, l.id DESC LIMIT ? OFFSET ?`)
	listArgs := append(append([]any{}, args...), limit, offset)

	listings := []models.ListingDB{}
	err = sqlx.SelectContext(ctx, exec, &listings, listQuery, listArgs...)
	logQuery(listQuery, listArgs, err)
	if err != nil {
		return nil, 0, err
	}

	return listings, total, nil
}

// GetAmenities returns the amenities of each listing keyed by listing id.
func (r *ListingReadRepository) GetAmenities(ctx context.Context, listingIDs []uuid.UUID) (map[uuid.UUID][]models.AmenityDB, error) {
	result := make(map[uuid.UUID][]models.AmenityDB, len(listingIDs))
	if len(listingIDs) == 0 {
		return result, nil
	}

	exec := executor(ctx, r.db, r.txGetter)
	query, args, err := sqlx.In(`
		SELECT la.listing_id, a.id, a.name, a.icon
		FROM listing_amenities la
		JOIN amenities a ON a.id = la.amenity_id
		WHERE la.listing_id IN (?)
		ORDER BY a.name
	`, listingIDs)
	if err != nil {
		return nil, err
	}
	query = exec.Rebind(query)

	var rows []struct {
		ListingID uuid.UUID `db:"listing_id"`
		models.AmenityDB
	}
	err = sqlx.SelectContext(ctx, exec, &rows, query, args...)
	logQuery(query, args, err)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.ListingID] = append(result[row.ListingID], row.AmenityDB)
	}
	return result, nil
}

// GetImages returns the images of each listing keyed by listing id.
func (r *ListingReadRepository) GetImages(ctx context.Context, listingIDs []uuid.UUID) (map[uuid.UUID][]models.ListingImageDB, error) {
	result := make(map[uuid.UUID][]models.ListingImageDB, len(listingIDs))
	if len(listingIDs) == 0 {
		return result, nil
	}

	exec := executor(ctx, r.db, r.txGetter)
	query, args, err := sqlx.In(`
		SELECT id, url, caption, is_primary, created_at, listing_id
		FROM listing_images
		WHERE listing_id IN (?)
		ORDER BY id
	`, listingIDs)
	if err != nil {
		return nil, err
	}
	query = exec.Rebind(query)

	var rows []models.ListingImageDB
	err = sqlx.SelectContext(ctx, exec, &rows, query, args...)
	logQuery(query, args, err)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.ListingID] = append(result[row.ListingID], row)
	}
	return result, nil
}

// buildListingWhere renders filter as a WHERE clause with ? placeholders.
func buildListingWhere(filter models.ListingFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)

	if filter.PublishedOnly {
		conds = append(conds, "l.is_published = TRUE")
	}
	if filter.OwnerID != nil {
		conds = append(conds, "l.user_id = ?")
		args = append(args, *filter.OwnerID)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + q + "%"
		cols := []string{"l.title", "l.description", "l.address", "l.city", "l.state", "l.zip_code"}
		parts := make([]string, len(cols))
		for i, col := range cols {
			parts[i] = col + " ILIKE ?"
			args = append(args, pattern)
		}
		conds = append(conds, "("+strings.Join(parts, " OR ")+")")
	}
	for _, f := range []struct{ col, value string }{
		{"l.city", filter.City},
		{"l.state", filter.State},
		{"l.zip_code", filter.ZipCode},
	} {
		if f.value != "" {
			conds = append(conds, f.col+" ILIKE ?")
			args = append(args, "%"+f.value+"%")
		}
	}
	if filter.MinPrice != nil {
		conds = append(conds, "l.price >= ?")
		args = append(args, *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		conds = append(conds, "l.price <= ?")
		args = append(args, *filter.MaxPrice)
	}
	if filter.MinBedrooms != nil {
		conds = append(conds, "l.bedrooms >= ?")
		args = append(args, *filter.MinBedrooms)
	}
	if filter.MaxBedrooms != nil {
		conds = append(conds, "l.bedrooms <= ?")
		args = append(args, *filter.MaxBedrooms)
	}
	if filter.MinBathrooms != nil {
		conds = append(conds, "l.bathrooms >= ?")
		args = append(args, *filter.MinBathrooms)
	}
	if filter.MaxBathrooms != nil {
		conds = append(conds, "l.bathrooms <= ?")
		args = append(args, *filter.MaxBathrooms)
	}
	for _, id := range filter.AmenityIDs {
		conds = append(conds, "EXISTS (SELECT 1 FROM listing_amenities la WHERE la.listing_id = l.id AND la.amenity_id = ?)")
		args = append(args, id)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// ListingWriteRepository handles listing write operations
type ListingWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewListingWriteRepository(db *sqlx.DB, txGetter TxGetter) *ListingWriteRepository {
	return &ListingWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new listing.
func (r *ListingWriteRepository) Save(ctx context.Context, listing *models.ListingDB) error {
	const query = `
		INSERT INTO listings (id, title, description, price, bedrooms, bathrooms, square_feet,
			address, city, state, zip_code, latitude, longitude, is_published, created_at, updated_at, user_id)
		VALUES (:id, :title, :description, :price, :bedrooms, :bathrooms, :square_feet,
			:address, :city, :state, :zip_code, :latitude, :longitude, :is_published, :created_at, :updated_at, :user_id)
	`
	_, err := sqlx.NamedExecContext(ctx, executor(ctx, r.db, r.txGetter), query, listing)
	logQuery(query, []any{listing.ListingID, listing.Title, listing.UserID}, err)

	return translateError(err)
}

// Update overwrites every mutable listing column.
func (r *ListingWriteRepository) Update(ctx context.Context, listing *models.ListingDB) error {
	const query = `
		UPDATE listings SET
			title = :title,
			description = :description,
			price = :price,
			bedrooms = :bedrooms,
			bathrooms = :bathrooms,
			square_feet = :square_feet,
			address = :address,
			city = :city,
			state = :state,
			zip_code = :zip_code,
			latitude = :latitude,
			longitude = :longitude,
			is_published = :is_published,
			updated_at = :updated_at
		WHERE id = :id
	`
	_, err := sqlx.NamedExecContext(ctx, executor(ctx, r.db, r.txGetter), query, listing)
	logQuery(query, []any{listing.ListingID, listing.Title}, err)

	return translateError(err)
}

// Delete removes the listing; images, amenity links and reviews cascade.
func (r *ListingWriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM listings WHERE id = $1`
	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	logQuery(query, []any{id}, err)
	return err
}

// SetAmenities replaces the amenity links of the listing. Ids that do not
// name an existing amenity are ignored.
func (r *ListingWriteRepository) SetAmenities(ctx context.Context, listingID uuid.UUID, amenityIDs []int64) error {
	exec := executor(ctx, r.db, r.txGetter)

	const deleteQuery = `DELETE FROM listing_amenities WHERE listing_id = $1`
	_, err := exec.ExecContext(ctx, deleteQuery, listingID)
	logQuery(deleteQuery, []any{listingID}, err)
	if err != nil {
		return err
	}

	if len(amenityIDs) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`
		INSERT INTO listing_amenities (listing_id, amenity_id)
		SELECT ?, id FROM amenities WHERE id IN (?)
	`, listingID, amenityIDs)
	if err != nil {
		return err
	}
	query = exec.Rebind(query)

	_, err = exec.ExecContext(ctx, query, args...)
	logQuery(query, args, err)
	return err
}

// ReplaceImages deletes the current images of the listing and inserts the
// given ones, filling in their generated ids.
func (r *ListingWriteRepository) ReplaceImages(ctx context.Context, listingID uuid.UUID, images []models.ListingImageDB) error {
	exec := executor(ctx, r.db, r.txGetter)

	const deleteQuery = `DELETE FROM listing_images WHERE listing_id = $1`
	_, err := exec.ExecContext(ctx, deleteQuery, listingID)
	logQuery(deleteQuery, []any{listingID}, err)
	if err != nil {
		return err
	}

	const insertQuery = `
		INSERT INTO listing_images (url, caption, is_primary, created_at, listing_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	for i := range images {
		img := &images[i]
		img.ListingID = listingID
		args := []any{img.URL, img.Caption, img.IsPrimary, img.CreatedAt, listingID}

		err = sqlx.GetContext(ctx, exec, &img.ImageID, insertQuery, args...)
		logQuery(insertQuery, args, err)
		if err != nil {
			return err
		}
	}
	return nil
}
