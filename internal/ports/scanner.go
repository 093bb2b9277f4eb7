package ports

import "rotawear/internal/domain"

// Scanner enumerates categories and outfit files in the closet.
type Scanner interface {
	// ScanCategories lists the immediate subdirectories of root and
	// classifies each into a CategoryState. Names in excluded are
	// reported as user-excluded without touching their contents.
	// Results are sorted by category name.
	ScanCategories(root string, excluded map[string]bool) ([]domain.CategoryInfo, error)

	// ScanOutfits lists the outfit files directly inside a category
	// directory, sorted by file name.
	ScanOutfits(categoryPath string) ([]domain.OutfitFile, error)
}
