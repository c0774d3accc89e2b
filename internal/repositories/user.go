package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-apartment-listings/internal/models"
)

const userColumns = `id, username, email, password_hash, role, is_verified, created_at, updated_at`

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the user or nil when it does not exist.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByUsername returns the user or nil when it does not exist.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

// GetByEmail returns the user or nil when it does not exist.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

// GetByIDs returns the users with the given ids keyed by id.
func (r *UserReadRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.UserDB, error) {
	users := make(map[uuid.UUID]*models.UserDB, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	exec := executor(ctx, r.db, r.txGetter)
	query, args, err := sqlx.In(`SELECT `+userColumns+` FROM users WHERE id IN (?)`, ids)
	if err != nil {
		return nil, err
	}
	query = exec.Rebind(query)

	var rows []models.UserDB
	err = sqlx.SelectContext(ctx, exec, &rows, query, args...)
	logQuery(query, args, err)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		users[rows[i].UserID] = &rows[i]
	}
	return users, nil
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, arg)
	logQuery(query, []any{arg}, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new user.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) error {
	const query = `
		INSERT INTO users (id, username, email, password_hash, role, is_verified, created_at, updated_at)
		VALUES (:id, :username, :email, :password_hash, :role, :is_verified, :created_at, :updated_at)
	`
	_, err := sqlx.NamedExecContext(ctx, executor(ctx, r.db, r.txGetter), query, user)

	// The password hash is left out of the log.
	logQuery(query, []any{user.UserID, user.Username, user.Email, user.Role}, err)

	return translateError(err)
}

// Update overwrites the mutable user columns.
func (r *UserWriteRepository) Update(ctx context.Context, user *models.UserDB) error {
	const query = `
		UPDATE users SET
			username = :username,
			email = :email,
			password_hash = :password_hash,
			is_verified = :is_verified,
			updated_at = :updated_at
		WHERE id = :id
	`
	_, err := sqlx.NamedExecContext(ctx, executor(ctx, r.db, r.txGetter), query, user)
	logQuery(query, []any{user.UserID, user.Username, user.Email, user.IsVerified}, err)

	return translateError(err)
}
