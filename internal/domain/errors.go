package domain

import (
	"errors"
	"fmt"
)

// Domain errors (no external dependencies).
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmptyItems         = errors.New("at least one line item is required")
	ErrEmailNotConfigured = errors.New("email provider API key not configured")
	ErrRenderFailed       = errors.New("document rendering failed")
	ErrBadImage           = errors.New("embedded image data is not decodable")
)

// FieldError is a validation error that identifies the offending field, and
// for line items the offending row (1-based). It matches ErrInvalidInput via
// errors.Is so handlers can map it to a 400 without losing the detail.
type FieldError struct {
	Field string // e.g. "receiverName", "rate"
	Row   int    // 0 for top-level fields
}

func (e *FieldError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("invalid %s at row %d", e.Field, e.Row)
	}
	return fmt.Sprintf("missing required field: %s", e.Field)
}

func (e *FieldError) Is(target error) bool { return target == ErrInvalidInput }

// MissingField builds the error for an absent or empty required field.
func MissingField(field string) *FieldError {
	return &FieldError{Field: field}
}

// InvalidRow builds the error for a bad numeric value on a line item.
func InvalidRow(field string, row int) *FieldError {
	return &FieldError{Field: field, Row: row}
}
