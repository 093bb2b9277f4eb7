package application

import (
	"errors"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		wantErr bool
	}{
		{"non-empty value", "category name", "Casual", false},
		{"empty value", "category name", "", true},
		{"whitespace only", "outfit name", "   ", true},
		{"value with surrounding spaces", "outfit name", " summer.avatar ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.field, tt.value)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error, got nil")
				}
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("expected a ValidationError, got %T", err)
				}
				if verr.Field != tt.field {
					t.Errorf("expected field %q, got %q", tt.field, verr.Field)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
