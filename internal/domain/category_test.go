package domain

import (
	"testing"
)

func TestSortCategories(t *testing.T) {
	infos := []CategoryInfo{
		{Category: Category{Name: "Zoo"}},
		{Category: Category{Name: "Apple"}},
		{Category: Category{Name: "Mango"}},
	}

	SortCategories(infos)

	want := []string{"Apple", "Mango", "Zoo"}
	for i, name := range want {
		if infos[i].Category.Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, infos[i].Category.Name)
		}
	}
}

func TestSelectable(t *testing.T) {
	tests := []struct {
		name  string
		state CategoryState
		want  bool
	}{
		{"has outfits", CategoryHasOutfits, true},
		{"empty", CategoryEmpty, false},
		{"no outfit files", CategoryNoAvatarFiles, false},
		{"user excluded", CategoryUserExcluded, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := CategoryInfo{State: tt.state}
			if got := info.Selectable(); got != tt.want {
				t.Errorf("Selectable() = %v, want %v", got, tt.want)
			}
		})
	}
}
