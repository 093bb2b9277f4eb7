package domain

import "time"

// CacheVersion is the current schema version of the persisted cache.
const CacheVersion = 1

// CategoryRotation tracks the worn outfits of one category within the
// current rotation cycle. TotalOutfits is recorded when the entry is
// created and is only re-read from the filesystem on reset.
type CategoryRotation struct {
	WornOutfits  map[string]bool `json:"wornOutfits"`
	TotalOutfits int             `json:"totalOutfits"`
	LastUpdated  time.Time       `json:"lastUpdated"`
}

// NewCategoryRotation creates a rotation entry with an empty worn set.
func NewCategoryRotation(totalOutfits int) *CategoryRotation {
	return &CategoryRotation{
		WornOutfits:  make(map[string]bool),
		TotalOutfits: totalOutfits,
		LastUpdated:  time.Now(),
	}
}

// AddWorn marks an outfit as worn. Marking an already worn outfit is a
// no-op, so the worn count never grows past the number of distinct names.
func (r *CategoryRotation) AddWorn(fileName string) {
	if r.WornOutfits[fileName] {
		return
	}
	if r.WornOutfits == nil {
		r.WornOutfits = make(map[string]bool)
	}
	r.WornOutfits[fileName] = true
	r.LastUpdated = time.Now()
}

// IsWorn reports whether the outfit has been worn this cycle.
func (r *CategoryRotation) IsWorn(fileName string) bool {
	return r.WornOutfits[fileName]
}

// IsRotationComplete reports whether every outfit has been worn.
func (r *CategoryRotation) IsRotationComplete() bool {
	return len(r.WornOutfits) >= r.TotalOutfits
}

// Progress returns the worn fraction of the rotation (0.0 to 1.0).
// An entry with zero total outfits is vacuously complete.
func (r *CategoryRotation) Progress() float64 {
	if r.TotalOutfits == 0 {
		return 1.0
	}
	return float64(len(r.WornOutfits)) / float64(r.TotalOutfits)
}

// Remaining returns the number of unworn outfits, saturating at zero.
func (r *CategoryRotation) Remaining() int {
	remaining := r.TotalOutfits - len(r.WornOutfits)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Reset clears the worn set and starts a new cycle. The recorded total
// is preserved.
func (r *CategoryRotation) Reset() {
	r.WornOutfits = make(map[string]bool)
	r.LastUpdated = time.Now()
}

// RotationCache maps category paths to their rotation state.
type RotationCache struct {
	Version    int                          `json:"version"`
	CreatedAt  time.Time                    `json:"createdAt"`
	Categories map[string]*CategoryRotation `json:"categories"`
}

// NewRotationCache creates an empty cache at the current schema version.
func NewRotationCache() *RotationCache {
	return &RotationCache{
		Version:    CacheVersion,
		CreatedAt:  time.Now(),
		Categories: make(map[string]*CategoryRotation),
	}
}

// GetOrCreate returns the rotation entry for a category path, inserting
// a fresh entry with the given total if none exists. An existing entry is
// returned untouched; its total stays as recorded until the next reset.
func (c *RotationCache) GetOrCreate(categoryPath string, totalOutfits int) *CategoryRotation {
	if c.Categories == nil {
		c.Categories = make(map[string]*CategoryRotation)
	}
	if entry, ok := c.Categories[categoryPath]; ok {
		return entry
	}
	entry := NewCategoryRotation(totalOutfits)
	c.Categories[categoryPath] = entry
	return entry
}

// Get returns the rotation entry for a category path, or nil.
func (c *RotationCache) Get(categoryPath string) *CategoryRotation {
	return c.Categories[categoryPath]
}

// Remove drops the rotation entry for a category path.
func (c *RotationCache) Remove(categoryPath string) {
	delete(c.Categories, categoryPath)
}

// ResetAll starts a new cycle for every category, preserving totals.
func (c *RotationCache) ResetAll() {
	for _, entry := range c.Categories {
		entry.Reset()
	}
}
