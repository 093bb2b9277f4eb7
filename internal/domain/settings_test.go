package domain

import (
	"testing"
)

func TestSettingsExclusions(t *testing.T) {
	t.Run("exclude is idempotent and keeps the list sorted", func(t *testing.T) {
		settings := NewSettings("/closet")

		settings.Exclude("Winter")
		settings.Exclude("Beach")
		settings.Exclude("Winter")

		if len(settings.Excluded) != 2 {
			t.Fatalf("expected 2 exclusions, got %d", len(settings.Excluded))
		}
		if settings.Excluded[0] != "Beach" || settings.Excluded[1] != "Winter" {
			t.Errorf("expected sorted exclusions, got %v", settings.Excluded)
		}
	})

	t.Run("include removes an exclusion", func(t *testing.T) {
		settings := NewSettings("/closet")
		settings.Exclude("Winter")

		settings.Include("Winter")

		if settings.IsExcluded("Winter") {
			t.Error("expected Winter to no longer be excluded")
		}
	})

	t.Run("include of a non-excluded name is a no-op", func(t *testing.T) {
		settings := NewSettings("/closet")
		settings.Exclude("Winter")

		settings.Include("Summer")

		if !settings.IsExcluded("Winter") {
			t.Error("expected Winter to stay excluded")
		}
	})

	t.Run("excluded set mirrors the list", func(t *testing.T) {
		settings := NewSettings("/closet")
		settings.Exclude("Winter")
		settings.Exclude("Beach")

		set := settings.ExcludedSet()

		if !set["Winter"] || !set["Beach"] {
			t.Errorf("expected both names in the set, got %v", set)
		}
		if set["Summer"] {
			t.Error("did not expect Summer in the set")
		}
	})
}
