// Package dberrors recognizes driver-level PostgreSQL errors so repositories
// can translate them into domain sentinels.
package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint breach.
const uniqueViolation = "23505"

// IsDuplicateConstraintError reports whether err is a unique violation raised
// by the named constraint. Matching on the constraint name keeps the mapping
// precise when a table carries more than one unique index.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == uniqueViolation && pgErr.ConstraintName == constraintName
}
