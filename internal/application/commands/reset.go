package commands

import (
	"context"
	"fmt"

	"rotawear/internal/application"
)

// ResetCommand clears the worn set of one category, or of every
// category when All is set.
type ResetCommand struct {
	picker   *application.Picker
	Category string
	All      bool
}

// NewResetCommand creates a new ResetCommand.
func NewResetCommand(picker *application.Picker, category string, all bool) *ResetCommand {
	return &ResetCommand{picker: picker, Category: category, All: all}
}

// Validate checks the command inputs.
func (c *ResetCommand) Validate() error {
	if c.All {
		return nil
	}
	return application.ValidateRequired("category name", c.Category)
}

// Execute runs the reset command.
func (c *ResetCommand) Execute(ctx context.Context) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	if c.All {
		if err := c.picker.ResetAll(); err != nil {
			return "", err
		}
		return "Reset rotation for all categories", nil
	}

	if err := c.picker.ResetCategory(c.Category); err != nil {
		return "", err
	}
	return fmt.Sprintf("Reset rotation for %s", c.Category), nil
}

// FactoryResetCommand deletes the cache and the settings files.
type FactoryResetCommand struct {
	picker *application.Picker
}

// NewFactoryResetCommand creates a new FactoryResetCommand.
func NewFactoryResetCommand(picker *application.Picker) *FactoryResetCommand {
	return &FactoryResetCommand{picker: picker}
}

// Execute runs the factory reset command.
func (c *FactoryResetCommand) Execute(ctx context.Context) (string, error) {
	if err := c.picker.FactoryReset(); err != nil {
		return "", err
	}
	return "Removed cache and settings", nil
}
