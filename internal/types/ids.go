package types

import (
	"github.com/google/uuid"
)

// NewUID generates a UUIDv7 object identifier.
// Time-ordered IDs ensure sequential inserts cluster in B-tree pages.
// Panics on clock regression (uuid.Must); acceptable for ID generation.
func NewUID() UID {
	return UID(uuid.Must(uuid.NewV7()).String())
}

// ParseUID validates and converts a string to UID.
// Rejects malformed UUIDs to prevent invalid IDs from entering the system.
func ParseUID(s string) (UID, error) {
	_, err := uuid.Parse(s)
	if err != nil {
		return "", err
	}
	return UID(s), nil
}
