package domain

import "slices"

// Settings holds the user configuration for the picker: the closet root
// and the categories excluded from selection.
type Settings struct {
	Closet   string   `yaml:"closet"`
	Excluded []string `yaml:"excluded,omitempty"`
}

// NewSettings creates settings for a closet root with no exclusions.
func NewSettings(closet string) *Settings {
	return &Settings{Closet: closet}
}

// ExcludedSet returns the excluded category names as a lookup set.
func (s *Settings) ExcludedSet() map[string]bool {
	set := make(map[string]bool, len(s.Excluded))
	for _, name := range s.Excluded {
		set[name] = true
	}
	return set
}

// IsExcluded reports whether a category name is excluded.
func (s *Settings) IsExcluded(name string) bool {
	return slices.Contains(s.Excluded, name)
}

// Exclude adds a category name to the exclusion list. Adding a name that
// is already excluded is a no-op.
func (s *Settings) Exclude(name string) {
	if s.IsExcluded(name) {
		return
	}
	s.Excluded = append(s.Excluded, name)
	slices.Sort(s.Excluded)
}

// Include removes a category name from the exclusion list.
func (s *Settings) Include(name string) {
	s.Excluded = slices.DeleteFunc(s.Excluded, func(n string) bool {
		return n == name
	})
}
