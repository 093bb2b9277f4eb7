package domain

import "slices"

// CategoryState represents the scan-time state of a category directory.
type CategoryState string

const (
	// CategoryHasOutfits means the category contains selectable outfit files.
	CategoryHasOutfits CategoryState = "hasOutfits"
	// CategoryEmpty means the category directory contains no files at all.
	CategoryEmpty CategoryState = "empty"
	// CategoryNoAvatarFiles means the category has files, but none are outfits.
	CategoryNoAvatarFiles CategoryState = "noAvatarFiles"
	// CategoryUserExcluded means the category is skipped by user configuration.
	CategoryUserExcluded CategoryState = "userExcluded"
)

// Category identifies a category by directory name and path.
type Category struct {
	Name string // directory base name, unique among siblings
	Path string // full path to the category directory
}

// CategoryInfo combines a category with its scan state and counts.
type CategoryInfo struct {
	Category    Category
	State       CategoryState
	OutfitCount int
	WornCount   int
}

// Selectable reports whether the category can serve a random pick.
func (c CategoryInfo) Selectable() bool {
	return c.State == CategoryHasOutfits
}

// SortCategories sorts category infos by category name in ascending order.
func SortCategories(infos []CategoryInfo) {
	slices.SortFunc(infos, func(a, b CategoryInfo) int {
		if a.Category.Name < b.Category.Name {
			return -1
		}
		if a.Category.Name > b.Category.Name {
			return 1
		}
		return 0
	})
}
