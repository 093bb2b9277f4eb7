package commands

import (
	"context"
	"fmt"

	"rotawear/internal/application"
)

// WearCommand marks a specific outfit as worn without reporting
// rotation metadata.
type WearCommand struct {
	picker   *application.Picker
	Category string
	Outfit   string
}

// NewWearCommand creates a new WearCommand.
func NewWearCommand(picker *application.Picker, category, outfit string) *WearCommand {
	return &WearCommand{picker: picker, Category: category, Outfit: outfit}
}

// Validate checks the command inputs.
func (c *WearCommand) Validate() error {
	if err := application.ValidateRequired("category name", c.Category); err != nil {
		return err
	}
	return application.ValidateRequired("outfit name", c.Outfit)
}

// Execute runs the wear command.
func (c *WearCommand) Execute(ctx context.Context) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	if err := c.picker.Wear(c.Category, c.Outfit); err != nil {
		return "", err
	}

	return fmt.Sprintf("Marked %s as worn in %s", c.Outfit, c.Category), nil
}
