package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-apartment-listings/internal/logger"
)

// Unique constraint names declared by the schema.
const (
	ConstraintUsersUsername = "users_username_key"
	ConstraintUsersEmail    = "users_email_key"
	ConstraintAmenitiesName = "amenities_name_key"
	ConstraintReviewsUnique = "reviews_user_listing_key"
)

const pgUniqueViolation = "23505"

// ErrConflict matches any *ConflictError.
var ErrConflict = errors.New("unique constraint violation")

// ConflictError is returned when a write hits a unique constraint.
type ConflictError struct {
	Constraint string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("unique constraint %q violated", e.Constraint)
}

// Is reports ErrConflict as a match.
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// IsConflict reports whether err is a violation of the named constraint.
func IsConflict(err error, constraint string) bool {
	var conflict *ConflictError
	return errors.As(err, &conflict) && conflict.Constraint == constraint
}

// translateError maps driver errors onto repository errors.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return &ConflictError{Constraint: pgErr.ConstraintName}
	}
	return err
}

// TxGetter returns the transaction bound to the request context, if any.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor picks the request transaction when there is one.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// logQuery logs the query in a single line with its args and error.
func logQuery(query string, args []any, err error) {
	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)
}
