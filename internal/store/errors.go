package store

import (
	"errors"
	"fmt"

	sqlite "github.com/mattn/go-sqlite3"
)

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrConstraintViolation = errors.New("database constraint violation")
)

// classify maps SQLite constraint failures onto ErrConstraintViolation and
// leaves every other error untouched.
func classify(err error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)

	var sqliteErr sqlite.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite.ErrConstraint {
		return fmt.Errorf("%s: %w (%v)", msg, ErrConstraintViolation, sqliteErr.ExtendedCode)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
