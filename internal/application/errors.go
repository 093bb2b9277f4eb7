package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrOutfitNotFound    = errors.New("outfit not found")
	ErrNoOutfits         = errors.New("no outfits available")
	ErrDirectoryNotFound = errors.New("directory not found")

	// ErrCacheDecode marks a cache file whose content does not parse.
	// Callers can treat it as "corrupt, offer factory reset" rather than
	// a generic I/O failure.
	ErrCacheDecode = errors.New("cache file is corrupted")
)

// ValidationError represents an invalid caller-supplied input, rejected
// before any I/O is attempted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
