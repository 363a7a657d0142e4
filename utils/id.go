package utils

import "github.com/google/uuid"

// NewID returns a collision-resistant opaque identifier.
func NewID() string {
	return uuid.NewString()
}
