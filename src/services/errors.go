package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrOutOfStock         = errors.New("no copies available for this book")
	ErrInvalidDate        = errors.New("expected return date must be after the loan start")
	ErrInvalidReversal    = errors.New("loan cannot be reopened: the book has no copies available")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError reports a malformed or out of range input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalid(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Reason: err.Error()}
}

// DuplicateKeyError reports a uniqueness violation on Field.
type DuplicateKeyError struct {
	Field string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s already registered", e.Field)
}

// notFound turns gorm's missing-row error into ErrNotFound and leaves others alone.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// uniqueViolation maps a constraint error raised by the store to a DuplicateKeyError.
// Columns lists the candidate fields, matched against the constraint name or message.
func uniqueViolation(err error, columns ...string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		for _, col := range columns {
			if strings.Contains(pgErr.ConstraintName, col) {
				return &DuplicateKeyError{Field: col}
			}
		}
		return &DuplicateKeyError{Field: pgErr.ConstraintName}
	}

	msg := err.Error()
	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(msg, "UNIQUE constraint failed") {
		for _, col := range columns {
			if strings.Contains(msg, col) {
				return &DuplicateKeyError{Field: col}
			}
		}
		if len(columns) == 1 {
			return &DuplicateKeyError{Field: columns[0]}
		}
	}
	return err
}
