package dberr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres error code for unique_violation
const uniqueViolationCode = "23505"

// IsDuplicate reports whether err is a unique-constraint violation. Callers
// translate it to the fixed DUPLICATE_ENTRY client error instead of leaking
// the driver message.
func IsDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// IsNotFound reports whether err means no matching row
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
