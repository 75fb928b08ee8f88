package util

import "github.com/google/uuid"

// NewID generates a unique identifier with a type prefix, e.g. "art-<uuid>".
func NewID(prefix string) string {
	return prefix + "-" + uuid.New().String()
}
