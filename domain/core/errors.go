package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Source errors
	ErrSourceNotFound   = errors.New("dataset source not found")
	ErrUnsupportedType  = errors.New("unsupported dataset file type")
	ErrEmptyDataset     = errors.New("dataset has no data rows")
	ErrUnreadableSource = errors.New("dataset source unreadable")

	// Schema errors
	ErrMissingColumn = errors.New("required column missing")

	// Value errors
	ErrMalformedValue = errors.New("malformed value")
	ErrNegativeValue  = errors.New("negative value")
	ErrDuplicateID    = errors.New("duplicate employee id")
)

// Error constructors with context
func NewMissingColumnError(column string) error {
	return fmt.Errorf("%w: %s", ErrMissingColumn, column)
}

func NewMalformedValueError(row int, column, value string) error {
	return fmt.Errorf("%w: row %d column %s value %q", ErrMalformedValue, row, column, value)
}

func NewNegativeValueError(row int, column string, value float64) error {
	return fmt.Errorf("%w: row %d column %s value %v", ErrNegativeValue, row, column, value)
}

func NewDuplicateIDError(row int, id string) error {
	return fmt.Errorf("%w: row %d id %s", ErrDuplicateID, row, id)
}

// Error checking helpers
func IsSchemaError(err error) bool {
	return errors.Is(err, ErrMissingColumn)
}

func IsValueError(err error) bool {
	return errors.Is(err, ErrMalformedValue) ||
		errors.Is(err, ErrNegativeValue) ||
		errors.Is(err, ErrDuplicateID)
}

func IsSourceError(err error) bool {
	return errors.Is(err, ErrSourceNotFound) ||
		errors.Is(err, ErrUnsupportedType) ||
		errors.Is(err, ErrEmptyDataset) ||
		errors.Is(err, ErrUnreadableSource)
}
