package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rickgao/kalshi-sync/internal/storage"
)

// Store implements storage.Store backed by a pgx connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a Store on top of an existing pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Compile-time interface check.
var _ storage.Store = (*Store)(nil)

// unique_violation
const pgErrUniqueViolation = "23505"

// isDuplicateKeyError reports whether err is a unique-constraint violation.
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrUniqueViolation
	}
	return false
}

// isNotFoundError reports whether err means the query matched no rows.
func isNotFoundError(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// wrapCreateErr maps a create failure to the storage sentinel for conflicts
// and wraps everything else with context.
func wrapCreateErr(op string, err error) error {
	if isDuplicateKeyError(err) {
		return fmt.Errorf("%s: %w", op, storage.ErrDuplicateKey)
	}
	return fmt.Errorf("%s: %w", op, err)
}
