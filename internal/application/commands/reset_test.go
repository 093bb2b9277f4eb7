package commands

import (
	"testing"
)

func TestResetCommand_Validate(t *testing.T) {
	tests := []struct {
		name     string
		category string
		all      bool
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "valid category reset",
			category: "Casual",
			wantErr:  false,
		},
		{
			name:    "reset all needs no category",
			all:     true,
			wantErr: false,
		},
		{
			name:    "empty category without all",
			wantErr: true,
			errMsg:  "category name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &ResetCommand{
				Category: tt.category,
				All:      tt.all,
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
