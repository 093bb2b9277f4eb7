package commands

import (
	"context"
	"fmt"

	"rotawear/internal/application"
)

// StatusResult contains the rotation status of one category.
type StatusResult struct {
	Worn     int
	Total    int
	Complete bool
	Message  string
}

// StatusCommand reports the rotation status of a category.
type StatusCommand struct {
	picker   *application.Picker
	Category string
}

// NewStatusCommand creates a new StatusCommand.
func NewStatusCommand(picker *application.Picker, category string) *StatusCommand {
	return &StatusCommand{picker: picker, Category: category}
}

// Validate checks the command inputs.
func (c *StatusCommand) Validate() error {
	return application.ValidateRequired("category name", c.Category)
}

// Execute runs the status command.
func (c *StatusCommand) Execute(ctx context.Context) (*StatusResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	worn, total, err := c.picker.RotationStatus(c.Category)
	if err != nil {
		return nil, err
	}

	complete := total > 0 && worn >= total
	msg := fmt.Sprintf("%s: %d of %d outfits worn", c.Category, worn, total)
	if complete {
		msg += " (rotation complete)"
	}

	return &StatusResult{
		Worn:     worn,
		Total:    total,
		Complete: complete,
		Message:  msg,
	}, nil
}
