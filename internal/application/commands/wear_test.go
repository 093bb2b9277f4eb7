package commands

import (
	"testing"
)

func TestWearCommand_Validate(t *testing.T) {
	tests := []struct {
		name     string
		category string
		outfit   string
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "valid wear",
			category: "Casual",
			outfit:   "summer.avatar",
			wantErr:  false,
		},
		{
			name:     "empty category",
			category: "",
			outfit:   "summer.avatar",
			wantErr:  true,
			errMsg:   "category name is required",
		},
		{
			name:     "empty outfit",
			category: "Casual",
			outfit:   "",
			wantErr:  true,
			errMsg:   "outfit name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &WearCommand{
				Category: tt.category,
				Outfit:   tt.outfit,
			}
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}
