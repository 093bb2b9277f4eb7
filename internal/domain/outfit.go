package domain

import (
	"path/filepath"
	"slices"
	"strings"
)

// OutfitExtension is the file suffix that marks a selectable outfit.
const OutfitExtension = ".avatar"

// OutfitFile represents a single outfit file inside a category.
// Two entries with the same path are interchangeable.
type OutfitFile struct {
	Path         string // full path to the file
	Name         string // file name only
	CategoryName string // parent directory name
	CategoryPath string // parent directory path
}

// NewOutfitFile derives an outfit entry from its file path.
func NewOutfitFile(path string) OutfitFile {
	categoryPath := filepath.Dir(path)
	return OutfitFile{
		Path:         path,
		Name:         filepath.Base(path),
		CategoryName: filepath.Base(categoryPath),
		CategoryPath: categoryPath,
	}
}

// IsOutfitFile reports whether a file name carries the outfit extension.
// The suffix match is case-insensitive.
func IsOutfitFile(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), OutfitExtension)
}

// SortOutfits sorts outfit files by file name in ascending order.
func SortOutfits(outfits []OutfitFile) {
	slices.SortFunc(outfits, func(a, b OutfitFile) int {
		if a.Name < b.Name {
			return -1
		}
		if a.Name > b.Name {
			return 1
		}
		return 0
	})
}

// FilterUnworn returns the outfits whose names are not in the worn set.
func FilterUnworn(outfits []OutfitFile, worn map[string]bool) []OutfitFile {
	var available []OutfitFile
	for _, outfit := range outfits {
		if !worn[outfit.Name] {
			available = append(available, outfit)
		}
	}
	return available
}
