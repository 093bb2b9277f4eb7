package cachefile

import (
	"errors"
	"testing"

	"github.com/spf13/afero"

	"rotawear/internal/application"
	"rotawear/internal/domain"
)

func TestLoad(t *testing.T) {
	t.Run("missing file yields a fresh cache", func(t *testing.T) {
		store := NewWithFs(afero.NewMemMapFs(), "/config/cache.json")

		cache, err := store.Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cache.Version != domain.CacheVersion {
			t.Errorf("expected version %d, got %d", domain.CacheVersion, cache.Version)
		}
		if len(cache.Categories) != 0 {
			t.Errorf("expected empty cache, got %d categories", len(cache.Categories))
		}
	})

	t.Run("corrupted file yields ErrCacheDecode", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		if err := afero.WriteFile(fs, "/config/cache.json", []byte("{not json"), 0o644); err != nil {
			t.Fatalf("failed to seed file: %v", err)
		}
		store := NewWithFs(fs, "/config/cache.json")

		_, err := store.Load()

		if !errors.Is(err, application.ErrCacheDecode) {
			t.Errorf("expected ErrCacheDecode, got %v", err)
		}
	})

	t.Run("missing categories map is repaired", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		if err := afero.WriteFile(fs, "/config/cache.json", []byte(`{"version":1}`), 0o644); err != nil {
			t.Fatalf("failed to seed file: %v", err)
		}
		store := NewWithFs(fs, "/config/cache.json")

		cache, err := store.Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cache.Categories == nil {
			t.Error("expected a non-nil categories map")
		}
	})
}

func TestSaveAndLoad(t *testing.T) {
	t.Run("round trip preserves rotation state", func(t *testing.T) {
		store := NewWithFs(afero.NewMemMapFs(), "/config/rotawear/cache.json")

		cache := domain.NewRotationCache()
		cache.GetOrCreate("/closet/Casual", 3).AddWorn("summer.avatar")
		cache.GetOrCreate("/closet/Formal", 1)

		if err := store.Save(cache); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		loaded, err := store.Load()
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}

		casual := loaded.Get("/closet/Casual")
		if casual == nil {
			t.Fatal("expected Casual entry to survive")
		}
		if casual.TotalOutfits != 3 {
			t.Errorf("expected total 3, got %d", casual.TotalOutfits)
		}
		if !casual.IsWorn("summer.avatar") {
			t.Error("expected summer.avatar to be worn after reload")
		}
		if loaded.Get("/closet/Formal") == nil {
			t.Error("expected Formal entry to survive")
		}
	})

	t.Run("save creates parent directories", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		store := NewWithFs(fs, "/deep/nested/dir/cache.json")

		if err := store.Save(domain.NewRotationCache()); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		exists, err := afero.Exists(fs, "/deep/nested/dir/cache.json")
		if err != nil || !exists {
			t.Errorf("expected cache file to exist, exists=%v err=%v", exists, err)
		}
	})
}

func TestDelete(t *testing.T) {
	t.Run("removes the cache file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		store := NewWithFs(fs, "/config/cache.json")
		if err := store.Save(domain.NewRotationCache()); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		if err := store.Delete(); err != nil {
			t.Fatalf("delete failed: %v", err)
		}

		exists, _ := afero.Exists(fs, "/config/cache.json")
		if exists {
			t.Error("expected cache file to be gone")
		}
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		store := NewWithFs(afero.NewMemMapFs(), "/config/cache.json")

		if err := store.Delete(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
