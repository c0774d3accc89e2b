package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-apartment-listings/internal/models"
)

const reviewColumns = `id, content, rating, created_at, updated_at, user_id, listing_id`

// ReviewReadRepository handles review read operations
type ReviewReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewReviewReadRepository(db *sqlx.DB, txGetter TxGetter) *ReviewReadRepository {
	return &ReviewReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the review or nil when it does not exist.
func (r *ReviewReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ReviewDB, error) {
	return r.getOne(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, id)
}

// GetByUserAndListing returns the review the user left on the listing, or nil.
func (r *ReviewReadRepository) GetByUserAndListing(ctx context.Context, userID, listingID uuid.UUID) (*models.ReviewDB, error) {
	return r.getOne(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE user_id = $1 AND listing_id = $2`, userID, listingID)
}

// ListByListing returns one page of the listing's reviews, newest first, and the total.
func (r *ReviewReadRepository) ListByListing(ctx context.Context, listingID uuid.UUID, limit, offset int) ([]models.ReviewDB, int, error) {
	return r.listPage(ctx, "listing_id", listingID, limit, offset)
}

// ListByUser returns one page of the user's reviews, newest first, and the total.
func (r *ReviewReadRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.ReviewDB, int, error) {
	return r.listPage(ctx, "user_id", userID, limit, offset)
}

// ListAllByListing returns every review of the listing, newest first.
func (r *ReviewReadRepository) ListAllByListing(ctx context.Context, listingID uuid.UUID) ([]models.ReviewDB, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE listing_id = $1 ORDER BY created_at DESC, id DESC`

	reviews := []models.ReviewDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &reviews, query, listingID)
	logQuery(query, []any{listingID}, err)
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// column is always one of the two literals passed by the methods above.
func (r *ReviewReadRepository) listPage(ctx context.Context, column string, id uuid.UUID, limit, offset int) ([]models.ReviewDB, int, error) {
	exec := executor(ctx, r.db, r.txGetter)

	countQuery := `SELECT COUNT(*) FROM reviews WHERE ` + column + ` = $1`
	var total int
	err := sqlx.GetContext(ctx, exec, &total, countQuery, id)
	logQuery(countQuery, []any{id}, err)
	if err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE ` + column + ` = $1
		ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`
	args := []any{id, limit, offset}

	reviews := []models.ReviewDB{}
	err = sqlx.SelectContext(ctx, exec, &reviews, query, args...)
	logQuery(query, args, err)
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *ReviewReadRepository) getOne(ctx context.Context, query string, args ...any) (*models.ReviewDB, error) {
	var review models.ReviewDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &review, query, args...)
	logQuery(query, args, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// ReviewWriteRepository handles review write operations
type ReviewWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewReviewWriteRepository(db *sqlx.DB, txGetter TxGetter) *ReviewWriteRepository {
	return &ReviewWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new review.
func (r *ReviewWriteRepository) Save(ctx context.Context, review *models.ReviewDB) error {
	const query = `
		INSERT INTO reviews (id, content, rating, created_at, updated_at, user_id, listing_id)
		VALUES (:id, :content, :rating, :created_at, :updated_at, :user_id, :listing_id)
	`
	_, err := sqlx.NamedExecContext(ctx, executor(ctx, r.db, r.txGetter), query, review)
	logQuery(query, []any{review.ReviewID, review.UserID, review.ListingID, review.Rating}, err)

	return translateError(err)
}

// Update overwrites the review content and rating.
func (r *ReviewWriteRepository) Update(ctx context.Context, review *models.ReviewDB) error {
	const query = `
		UPDATE reviews SET content = :content, rating = :rating, updated_at = :updated_at
		WHERE id = :id
	`
	_, err := sqlx.NamedExecContext(ctx, executor(ctx, r.db, r.txGetter), query, review)
	logQuery(query, []any{review.ReviewID, review.Rating}, err)

	return err
}

// Delete removes the review.
func (r *ReviewWriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM reviews WHERE id = $1`
	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	logQuery(query, []any{id}, err)
	return err
}
