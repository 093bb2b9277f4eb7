package ports

import "rotawear/internal/domain"

// CacheStore persists the rotation cache between runs.
type CacheStore interface {
	// Load reads the persisted cache. A missing cache file yields a
	// fresh empty cache, not an error.
	Load() (*domain.RotationCache, error)

	// Save writes the cache, creating the containing directory if needed.
	Save(cache *domain.RotationCache) error

	// Delete removes the cache file. A missing file is not an error.
	Delete() error
}
