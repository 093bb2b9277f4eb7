package domain

import (
	"testing"
)

func TestCategoryRotation(t *testing.T) {
	t.Run("marking worn is idempotent", func(t *testing.T) {
		rotation := NewCategoryRotation(3)

		rotation.AddWorn("a.avatar")
		rotation.AddWorn("a.avatar")
		rotation.AddWorn("b.avatar")

		if got := len(rotation.WornOutfits); got != 2 {
			t.Errorf("expected 2 worn outfits, got %d", got)
		}
		if !rotation.IsWorn("a.avatar") {
			t.Error("expected a.avatar to be worn")
		}
		if rotation.IsWorn("c.avatar") {
			t.Error("expected c.avatar to be unworn")
		}
	})

	t.Run("progress tracks the worn fraction", func(t *testing.T) {
		rotation := NewCategoryRotation(4)

		if got := rotation.Progress(); got != 0.0 {
			t.Errorf("expected progress 0.0, got %f", got)
		}

		rotation.AddWorn("a.avatar")
		if got := rotation.Progress(); got != 0.25 {
			t.Errorf("expected progress 0.25, got %f", got)
		}

		rotation.AddWorn("b.avatar")
		rotation.AddWorn("c.avatar")
		rotation.AddWorn("d.avatar")
		if got := rotation.Progress(); got != 1.0 {
			t.Errorf("expected progress 1.0, got %f", got)
		}
	})

	t.Run("zero total outfits is vacuously complete", func(t *testing.T) {
		rotation := NewCategoryRotation(0)

		if got := rotation.Progress(); got != 1.0 {
			t.Errorf("expected progress 1.0, got %f", got)
		}
		if !rotation.IsRotationComplete() {
			t.Error("expected rotation to be complete")
		}
		if got := rotation.Remaining(); got != 0 {
			t.Errorf("expected 0 remaining, got %d", got)
		}
	})

	t.Run("completes when every outfit is worn", func(t *testing.T) {
		rotation := NewCategoryRotation(2)

		rotation.AddWorn("a.avatar")
		if rotation.IsRotationComplete() {
			t.Error("rotation should not be complete after one of two")
		}
		if got := rotation.Remaining(); got != 1 {
			t.Errorf("expected 1 remaining, got %d", got)
		}

		rotation.AddWorn("b.avatar")
		if !rotation.IsRotationComplete() {
			t.Error("rotation should be complete after two of two")
		}
	})

	t.Run("remaining saturates at zero", func(t *testing.T) {
		rotation := NewCategoryRotation(1)
		rotation.AddWorn("a.avatar")
		rotation.AddWorn("b.avatar")

		if got := rotation.Remaining(); got != 0 {
			t.Errorf("expected 0 remaining, got %d", got)
		}
	})

	t.Run("reset clears worn but preserves total", func(t *testing.T) {
		rotation := NewCategoryRotation(3)
		rotation.AddWorn("a.avatar")
		rotation.AddWorn("b.avatar")

		rotation.Reset()

		if got := len(rotation.WornOutfits); got != 0 {
			t.Errorf("expected empty worn set after reset, got %d entries", got)
		}
		if got := rotation.TotalOutfits; got != 3 {
			t.Errorf("expected total 3 after reset, got %d", got)
		}
	})
}

func TestRotationCache(t *testing.T) {
	t.Run("creates entries on first access", func(t *testing.T) {
		cache := NewRotationCache()

		entry := cache.GetOrCreate("/closet/Casual", 5)

		if entry.TotalOutfits != 5 {
			t.Errorf("expected total 5, got %d", entry.TotalOutfits)
		}
		if cache.Get("/closet/Casual") != entry {
			t.Error("expected Get to return the created entry")
		}
	})

	t.Run("existing entries keep their recorded total", func(t *testing.T) {
		cache := NewRotationCache()
		cache.GetOrCreate("/closet/Casual", 5)

		entry := cache.GetOrCreate("/closet/Casual", 9)

		if entry.TotalOutfits != 5 {
			t.Errorf("expected recorded total 5 to stick, got %d", entry.TotalOutfits)
		}
	})

	t.Run("get returns nil for unknown categories", func(t *testing.T) {
		cache := NewRotationCache()

		if cache.Get("/closet/Missing") != nil {
			t.Error("expected nil for unknown category")
		}
	})

	t.Run("remove drops one category", func(t *testing.T) {
		cache := NewRotationCache()
		cache.GetOrCreate("/closet/Casual", 2)
		cache.GetOrCreate("/closet/Formal", 3)

		cache.Remove("/closet/Casual")

		if cache.Get("/closet/Casual") != nil {
			t.Error("expected removed category to be gone")
		}
		if cache.Get("/closet/Formal") == nil {
			t.Error("expected other category to survive")
		}
	})

	t.Run("reset all starts a new cycle everywhere", func(t *testing.T) {
		cache := NewRotationCache()
		cache.GetOrCreate("/closet/Casual", 2).AddWorn("a.avatar")
		cache.GetOrCreate("/closet/Formal", 3).AddWorn("b.avatar")

		cache.ResetAll()

		for _, path := range []string{"/closet/Casual", "/closet/Formal"} {
			entry := cache.Get(path)
			if got := len(entry.WornOutfits); got != 0 {
				t.Errorf("%s: expected empty worn set, got %d entries", path, got)
			}
		}
		if got := cache.Get("/closet/Formal").TotalOutfits; got != 3 {
			t.Errorf("expected total to survive reset, got %d", got)
		}
	})
}
