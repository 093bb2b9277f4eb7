package scanner

import (
	"errors"
	"testing"

	"github.com/spf13/afero"

	"rotawear/internal/application"
	"rotawear/internal/domain"
)

func newClosetFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()

	mustWrite := func(path string) {
		if err := afero.WriteFile(fs, path, []byte("x"), 0o644); err != nil {
			t.Fatalf("failed to seed %s: %v", path, err)
		}
	}

	mustWrite("/closet/Casual/summer.avatar")
	mustWrite("/closet/Casual/winter.avatar")
	mustWrite("/closet/Formal/suit.avatar")
	mustWrite("/closet/Photos/holiday.png")
	if err := fs.MkdirAll("/closet/Empty", 0o755); err != nil {
		t.Fatalf("failed to create empty category: %v", err)
	}
	if err := fs.MkdirAll("/closet/.git", 0o755); err != nil {
		t.Fatalf("failed to create dot dir: %v", err)
	}
	mustWrite("/closet/stray.avatar")

	return fs
}

func TestScanCategories(t *testing.T) {
	t.Run("missing closet root", func(t *testing.T) {
		s := NewWithFs(afero.NewMemMapFs())

		_, err := s.ScanCategories("/nowhere", nil)

		if !errors.Is(err, application.ErrDirectoryNotFound) {
			t.Errorf("expected ErrDirectoryNotFound, got %v", err)
		}
	})

	t.Run("classifies each category", func(t *testing.T) {
		s := NewWithFs(newClosetFs(t))

		infos, err := s.ScanCategories("/closet", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []struct {
			name  string
			state domain.CategoryState
			count int
		}{
			{"Casual", domain.CategoryHasOutfits, 2},
			{"Empty", domain.CategoryEmpty, 0},
			{"Formal", domain.CategoryHasOutfits, 1},
			{"Photos", domain.CategoryNoAvatarFiles, 0},
		}

		if len(infos) != len(want) {
			t.Fatalf("expected %d categories, got %d", len(want), len(infos))
		}
		for i, w := range want {
			if infos[i].Category.Name != w.name {
				t.Errorf("position %d: expected %s, got %s", i, w.name, infos[i].Category.Name)
			}
			if infos[i].State != w.state {
				t.Errorf("%s: expected state %s, got %s", w.name, w.state, infos[i].State)
			}
			if infos[i].OutfitCount != w.count {
				t.Errorf("%s: expected %d outfits, got %d", w.name, w.count, infos[i].OutfitCount)
			}
		}
	})

	t.Run("exclusion wins over content", func(t *testing.T) {
		s := NewWithFs(newClosetFs(t))

		infos, err := s.ScanCategories("/closet", map[string]bool{"Casual": true, "Empty": true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, info := range infos {
			switch info.Category.Name {
			case "Casual", "Empty":
				if info.State != domain.CategoryUserExcluded {
					t.Errorf("%s: expected userExcluded, got %s", info.Category.Name, info.State)
				}
				if info.OutfitCount != 0 {
					t.Errorf("%s: expected zero count for excluded category, got %d",
						info.Category.Name, info.OutfitCount)
				}
			}
		}
	})

	t.Run("skips dot directories and root files", func(t *testing.T) {
		s := NewWithFs(newClosetFs(t))

		infos, err := s.ScanCategories("/closet", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, info := range infos {
			if info.Category.Name == ".git" {
				t.Error("dot directory should be skipped")
			}
			if info.Category.Name == "stray.avatar" {
				t.Error("files at the closet root should be skipped")
			}
		}
	})
}

func TestScanOutfits(t *testing.T) {
	t.Run("lists only outfit files, sorted", func(t *testing.T) {
		fs := newClosetFs(t)
		if err := afero.WriteFile(fs, "/closet/Casual/notes.txt", []byte("x"), 0o644); err != nil {
			t.Fatalf("failed to seed file: %v", err)
		}
		if err := fs.MkdirAll("/closet/Casual/nested", 0o755); err != nil {
			t.Fatalf("failed to create nested dir: %v", err)
		}
		s := NewWithFs(fs)

		outfits, err := s.ScanOutfits("/closet/Casual")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(outfits) != 2 {
			t.Fatalf("expected 2 outfits, got %d", len(outfits))
		}
		if outfits[0].Name != "summer.avatar" || outfits[1].Name != "winter.avatar" {
			t.Errorf("unexpected outfits: %v", outfits)
		}
		if outfits[0].CategoryName != "Casual" {
			t.Errorf("expected category Casual, got %s", outfits[0].CategoryName)
		}
	})

	t.Run("uppercase extensions match", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		if err := afero.WriteFile(fs, "/closet/Caps/LOUD.AVATAR", []byte("x"), 0o644); err != nil {
			t.Fatalf("failed to seed file: %v", err)
		}
		s := NewWithFs(fs)

		outfits, err := s.ScanOutfits("/closet/Caps")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(outfits) != 1 {
			t.Errorf("expected 1 outfit, got %d", len(outfits))
		}
	})
}
