// Package scanner implements the category scanner port against a real
// (or in-memory) filesystem.
package scanner

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"rotawear/internal/application"
	"rotawear/internal/domain"
)

// maxConcurrentScans bounds the number of in-flight category sub-scans.
const maxConcurrentScans = 10

// Scanner walks the closet root and classifies category directories.
type Scanner struct {
	fs afero.Fs
}

// New creates a scanner backed by the OS filesystem.
func New() *Scanner {
	return &Scanner{fs: afero.NewOsFs()}
}

// NewWithFs creates a scanner backed by the given filesystem.
func NewWithFs(fs afero.Fs) *Scanner {
	return &Scanner{fs: fs}
}

// ScanCategories lists the immediate subdirectories of root and
// classifies each one. Non-directories and dot-prefixed names are
// skipped. Sub-scans run concurrently up to maxConcurrentScans; any
// sub-scan error aborts the whole scan. Results are sorted by name.
func (s *Scanner) ScanCategories(root string, excluded map[string]bool) ([]domain.CategoryInfo, error) {
	exists, err := afero.DirExists(s.fs, root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat closet: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", application.ErrDirectoryNotFound, root)
	}

	entries, err := afero.ReadDir(s.fs, root)
	if err != nil {
		return nil, fmt.Errorf("failed to read closet: %w", err)
	}

	var categories []domain.Category
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		categories = append(categories, domain.Category{
			Name: name,
			Path: filepath.Join(root, name),
		})
	}

	infos := make([]domain.CategoryInfo, len(categories))
	var g errgroup.Group
	g.SetLimit(maxConcurrentScans)
	for i, category := range categories {
		g.Go(func() error {
			info, err := s.scanCategory(category, excluded)
			if err != nil {
				return err
			}
			infos[i] = info
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	domain.SortCategories(infos)
	return infos, nil
}

// ScanOutfits lists the outfit files directly inside a category
// directory, sorted by file name.
func (s *Scanner) ScanOutfits(categoryPath string) ([]domain.OutfitFile, error) {
	entries, err := afero.ReadDir(s.fs, categoryPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read category: %w", err)
	}

	var outfits []domain.OutfitFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !domain.IsOutfitFile(entry.Name()) {
			continue
		}
		outfits = append(outfits, domain.NewOutfitFile(filepath.Join(categoryPath, entry.Name())))
	}

	domain.SortOutfits(outfits)
	return outfits, nil
}

// scanCategory classifies one category. Exclusion wins over filesystem
// content: an excluded category is reported with a zero count without
// enumerating its files.
func (s *Scanner) scanCategory(category domain.Category, excluded map[string]bool) (domain.CategoryInfo, error) {
	if excluded[category.Name] {
		return domain.CategoryInfo{
			Category: category,
			State:    domain.CategoryUserExcluded,
		}, nil
	}

	outfits, err := s.ScanOutfits(category.Path)
	if err != nil {
		return domain.CategoryInfo{}, err
	}

	state := domain.CategoryHasOutfits
	if len(outfits) == 0 {
		hasFiles, err := s.hasAnyFiles(category.Path)
		if err != nil {
			return domain.CategoryInfo{}, err
		}
		if hasFiles {
			state = domain.CategoryNoAvatarFiles
		} else {
			state = domain.CategoryEmpty
		}
	}

	return domain.CategoryInfo{
		Category:    category,
		State:       state,
		OutfitCount: len(outfits),
	}, nil
}

func (s *Scanner) hasAnyFiles(path string) (bool, error) {
	entries, err := afero.ReadDir(s.fs, path)
	if err != nil {
		return false, fmt.Errorf("failed to read category: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			return true, nil
		}
	}
	return false, nil
}
