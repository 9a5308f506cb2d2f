// Package pgerror classifies errors raised by the postgres driver.
package pgerror

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// UniqueViolation is the SQLSTATE postgres raises when a unique index rejects a row.
const UniqueViolation = "23505"

// IsUniqueViolation reports whether err carries a unique-violation PgError,
// optionally restricted to one constraint. An empty constraint matches any.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != UniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
