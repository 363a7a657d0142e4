package services

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound means a lookup by id, slug, or path yielded nothing.
	ErrNotFound = errors.New("not found")
	// ErrConflict means a uniqueness violation, in practice a duplicate slug.
	ErrConflict = errors.New("already exists")
	// ErrValidation means the input was rejected before any persistence
	// attempt (missing required fields, out-of-range rating, undecodable
	// upload).
	ErrValidation = errors.New("validation failed")
)

// isUniqueViolation recognizes the driver's uniqueness error so it can be
// surfaced as ErrConflict instead of a generic failure.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "Duplicate entry")
}
