package application

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"rotawear/internal/domain"
	"rotawear/internal/ports"
)

// Selection describes the outcome of marking an outfit worn.
type Selection struct {
	Outfit domain.OutfitFile
	// RotationProgress is the worn fraction after this selection.
	RotationProgress float64
	// RotationWasReset is true when this selection started a new cycle
	// because every outfit had been worn.
	RotationWasReset bool
}

// CategoryWorn lists the worn outfit names of one category.
type CategoryWorn struct {
	CategoryPath string
	Outfits      []string
}

// Picker orchestrates the scanner and the rotation cache to select
// outfits without replacement, resetting a category once every outfit in
// it has been worn. Each operation loads the cache, mutates it, and saves
// it as one critical section; the picker assumes it is the only writer.
type Picker struct {
	scanner  ports.Scanner
	cache    ports.CacheStore
	settings ports.SettingsStore
}

// NewPicker creates a picker backed by the given stores.
func NewPicker(scanner ports.Scanner, cache ports.CacheStore, settings ports.SettingsStore) *Picker {
	return &Picker{
		scanner:  scanner,
		cache:    cache,
		settings: settings,
	}
}

// Settings returns the current user settings.
func (p *Picker) Settings() (*domain.Settings, error) {
	return p.settings.Load()
}

// Categories scans the closet and reports every category with its state
// and rotation counts. Worn counts are populated from the cache on a
// best-effort basis: a cache load failure degrades to zero worn counts
// rather than failing the listing.
func (p *Picker) Categories() ([]domain.CategoryInfo, error) {
	settings, err := p.settings.Load()
	if err != nil {
		return nil, err
	}

	categories, err := p.scanner.ScanCategories(settings.Closet, settings.ExcludedSet())
	if err != nil {
		return nil, err
	}

	cache, err := p.cache.Load()
	if err != nil {
		return categories, nil
	}

	for i := range categories {
		if entry := cache.Get(categories[i].Category.Path); entry != nil {
			categories[i].WornCount = len(entry.WornOutfits)
		}
	}

	return categories, nil
}

// Outfits lists the outfit files of a category by name.
func (p *Picker) Outfits(categoryName string) ([]domain.OutfitFile, error) {
	if err := ValidateRequired("category name", categoryName); err != nil {
		return nil, err
	}

	category, err := p.findCategory(categoryName)
	if err != nil {
		return nil, err
	}

	return p.scanner.ScanOutfits(category.Category.Path)
}

// PickRandom selects a random unworn outfit from a category, marks it
// worn, and persists the cache. If the category's rotation is already
// complete the worn set is cleared first and the selection reports that
// a reset happened. A category with no outfits yields a nil selection.
func (p *Picker) PickRandom(categoryName string) (*Selection, error) {
	outfits, err := p.Outfits(categoryName)
	if err != nil {
		return nil, err
	}
	if len(outfits) == 0 {
		return nil, nil
	}

	cache, err := p.cache.Load()
	if err != nil {
		return nil, err
	}

	categoryPath := outfits[0].CategoryPath
	entry := cache.GetOrCreate(categoryPath, len(outfits))

	rotationWasReset := false
	if entry.IsRotationComplete() {
		entry.Reset()
		rotationWasReset = true
	}

	available := domain.FilterUnworn(outfits, entry.WornOutfits)
	if len(available) == 0 {
		return nil, nil
	}

	outfit := available[rand.IntN(len(available))]
	entry.AddWorn(outfit.Name)

	if err := p.cache.Save(cache); err != nil {
		return nil, err
	}

	return &Selection{
		Outfit:           outfit,
		RotationProgress: entry.Progress(),
		RotationWasReset: rotationWasReset,
	}, nil
}

// PickRandomAcrossCategories selects a random outfit from any category
// that currently has outfits. Returns a nil selection when no category
// qualifies.
func (p *Picker) PickRandomAcrossCategories() (*Selection, error) {
	categories, err := p.Categories()
	if err != nil {
		return nil, err
	}

	var available []domain.CategoryInfo
	for _, category := range categories {
		if category.Selectable() {
			available = append(available, category)
		}
	}
	if len(available) == 0 {
		return nil, nil
	}

	category := available[rand.IntN(len(available))]
	return p.PickRandom(category.Category.Name)
}

// PickOutfit selects a specific outfit by name rather than randomly. The
// outfit is marked worn with the same reset-on-exhaustion semantics as a
// random pick. Fails if the outfit is absent from the category.
func (p *Picker) PickOutfit(categoryName, fileName string) (*Selection, error) {
	if err := ValidateRequired("outfit name", fileName); err != nil {
		return nil, err
	}

	outfits, err := p.Outfits(categoryName)
	if err != nil {
		return nil, err
	}
	if len(outfits) == 0 {
		return nil, ErrNoOutfits
	}

	outfit, err := findOutfit(outfits, fileName, categoryName)
	if err != nil {
		return nil, err
	}

	cache, err := p.cache.Load()
	if err != nil {
		return nil, err
	}

	entry := cache.GetOrCreate(outfit.CategoryPath, len(outfits))

	rotationWasReset := false
	if entry.IsRotationComplete() {
		entry.Reset()
		rotationWasReset = true
	}

	entry.AddWorn(outfit.Name)

	if err := p.cache.Save(cache); err != nil {
		return nil, err
	}

	return &Selection{
		Outfit:           outfit,
		RotationProgress: entry.Progress(),
		RotationWasReset: rotationWasReset,
	}, nil
}

// Wear marks a specific outfit as worn without evaluating rotation
// completion. Fails if the category has no outfits or the named outfit
// is not among them.
func (p *Picker) Wear(categoryName, fileName string) error {
	if err := ValidateRequired("outfit name", fileName); err != nil {
		return err
	}

	outfits, err := p.Outfits(categoryName)
	if err != nil {
		return err
	}
	if len(outfits) == 0 {
		return ErrNoOutfits
	}

	outfit, err := findOutfit(outfits, fileName, categoryName)
	if err != nil {
		return err
	}

	cache, err := p.cache.Load()
	if err != nil {
		return err
	}

	entry := cache.GetOrCreate(outfit.CategoryPath, len(outfits))
	entry.AddWorn(outfit.Name)

	return p.cache.Save(cache)
}

// ResetCategory clears the worn set of one category. A category that
// currently has no outfits, or no cache entry, is a no-op.
func (p *Picker) ResetCategory(categoryName string) error {
	outfits, err := p.Outfits(categoryName)
	if err != nil {
		return err
	}
	if len(outfits) == 0 {
		return nil
	}

	cache, err := p.cache.Load()
	if err != nil {
		return err
	}

	entry := cache.Get(outfits[0].CategoryPath)
	if entry == nil {
		return nil
	}

	entry.Reset()
	return p.cache.Save(cache)
}

// ResetAll clears the worn set of every category in one persisted write.
func (p *Picker) ResetAll() error {
	cache, err := p.cache.Load()
	if err != nil {
		return err
	}

	cache.ResetAll()
	return p.cache.Save(cache)
}

// RemoveCategory drops a category's cache entry entirely, for when a
// category disappears or its path changes.
func (p *Picker) RemoveCategory(categoryPath string) error {
	cache, err := p.cache.Load()
	if err != nil {
		return err
	}

	cache.Remove(categoryPath)
	return p.cache.Save(cache)
}

// FactoryReset deletes the cache and the settings files.
func (p *Picker) FactoryReset() error {
	if err := p.cache.Delete(); err != nil {
		return err
	}
	return p.settings.Delete()
}

// RotationStatus returns the worn and total outfit counts of a category.
// A category with no outfits reports (0, 0).
func (p *Picker) RotationStatus(categoryName string) (worn, total int, err error) {
	outfits, err := p.Outfits(categoryName)
	if err != nil {
		return 0, 0, err
	}
	if len(outfits) == 0 {
		return 0, 0, nil
	}

	wornSet, err := p.wornSet(outfits[0].CategoryPath)
	if err != nil {
		return 0, 0, err
	}

	return len(wornSet), len(outfits), nil
}

// IsRotationComplete reports whether every outfit in the category has
// been worn. A category with no outfits is never complete.
func (p *Picker) IsRotationComplete(categoryName string) (bool, error) {
	worn, total, err := p.RotationStatus(categoryName)
	if err != nil {
		return false, err
	}
	return total > 0 && worn >= total, nil
}

// IsWorn reports whether a specific outfit has been worn this cycle.
func (p *Picker) IsWorn(categoryName, fileName string) (bool, error) {
	outfits, err := p.Outfits(categoryName)
	if err != nil {
		return false, err
	}
	if len(outfits) == 0 {
		return false, nil
	}

	wornSet, err := p.wornSet(outfits[0].CategoryPath)
	if err != nil {
		return false, err
	}

	return wornSet[fileName], nil
}

// WornOutfits lists the outfits of a category worn this cycle.
func (p *Picker) WornOutfits(categoryName string) ([]domain.OutfitFile, error) {
	return p.filterByWorn(categoryName, true)
}

// UnwornOutfits lists the outfits of a category not yet worn this cycle.
func (p *Picker) UnwornOutfits(categoryName string) ([]domain.OutfitFile, error) {
	return p.filterByWorn(categoryName, false)
}

// AllWornOutfits reports the worn outfit names of every category that
// has at least one, sorted by category path and file name.
func (p *Picker) AllWornOutfits() ([]CategoryWorn, error) {
	cache, err := p.cache.Load()
	if err != nil {
		return nil, err
	}

	var result []CategoryWorn
	for path, entry := range cache.Categories {
		if len(entry.WornOutfits) == 0 {
			continue
		}
		worn := make([]string, 0, len(entry.WornOutfits))
		for name := range entry.WornOutfits {
			worn = append(worn, name)
		}
		slices.Sort(worn)
		result = append(result, CategoryWorn{CategoryPath: path, Outfits: worn})
	}

	slices.SortFunc(result, func(a, b CategoryWorn) int {
		if a.CategoryPath < b.CategoryPath {
			return -1
		}
		if a.CategoryPath > b.CategoryPath {
			return 1
		}
		return 0
	})

	return result, nil
}

// ExcludeCategory adds a category name to the persisted exclusion list.
func (p *Picker) ExcludeCategory(categoryName string) error {
	if err := ValidateRequired("category name", categoryName); err != nil {
		return err
	}

	settings, err := p.settings.Load()
	if err != nil {
		return err
	}

	settings.Exclude(categoryName)
	return p.settings.Save(settings)
}

// IncludeCategory removes a category name from the exclusion list.
func (p *Picker) IncludeCategory(categoryName string) error {
	settings, err := p.settings.Load()
	if err != nil {
		return err
	}

	settings.Include(categoryName)
	return p.settings.Save(settings)
}

func (p *Picker) findCategory(categoryName string) (domain.CategoryInfo, error) {
	categories, err := p.Categories()
	if err != nil {
		return domain.CategoryInfo{}, err
	}

	for _, category := range categories {
		if category.Category.Name == categoryName {
			return category, nil
		}
	}

	return domain.CategoryInfo{}, fmt.Errorf("%w: %s", ErrCategoryNotFound, categoryName)
}

func (p *Picker) wornSet(categoryPath string) (map[string]bool, error) {
	cache, err := p.cache.Load()
	if err != nil {
		return nil, err
	}

	entry := cache.Get(categoryPath)
	if entry == nil {
		return map[string]bool{}, nil
	}
	return entry.WornOutfits, nil
}

func (p *Picker) filterByWorn(categoryName string, worn bool) ([]domain.OutfitFile, error) {
	outfits, err := p.Outfits(categoryName)
	if err != nil {
		return nil, err
	}
	if len(outfits) == 0 {
		return nil, nil
	}

	wornSet, err := p.wornSet(outfits[0].CategoryPath)
	if err != nil {
		return nil, err
	}

	var result []domain.OutfitFile
	for _, outfit := range outfits {
		if wornSet[outfit.Name] == worn {
			result = append(result, outfit)
		}
	}
	return result, nil
}

func findOutfit(outfits []domain.OutfitFile, fileName, categoryName string) (domain.OutfitFile, error) {
	for _, outfit := range outfits {
		if outfit.Name == fileName {
			return outfit, nil
		}
	}
	return domain.OutfitFile{}, fmt.Errorf("%w: %q in category %q", ErrOutfitNotFound, fileName, categoryName)
}
