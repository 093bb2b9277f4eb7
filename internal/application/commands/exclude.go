package commands

import (
	"context"
	"fmt"

	"rotawear/internal/application"
)

// ExcludeCommand adds or removes a category from the exclusion list.
type ExcludeCommand struct {
	picker   *application.Picker
	Category string
	Remove   bool
}

// NewExcludeCommand creates a new ExcludeCommand.
func NewExcludeCommand(picker *application.Picker, category string, remove bool) *ExcludeCommand {
	return &ExcludeCommand{picker: picker, Category: category, Remove: remove}
}

// Validate checks the command inputs.
func (c *ExcludeCommand) Validate() error {
	return application.ValidateRequired("category name", c.Category)
}

// Execute runs the exclude command.
func (c *ExcludeCommand) Execute(ctx context.Context) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	if c.Remove {
		if err := c.picker.IncludeCategory(c.Category); err != nil {
			return "", err
		}
		return fmt.Sprintf("Included %s in selection", c.Category), nil
	}

	if err := c.picker.ExcludeCategory(c.Category); err != nil {
		return "", err
	}
	return fmt.Sprintf("Excluded %s from selection", c.Category), nil
}

// ListExclusionsCommand lists the excluded category names.
type ListExclusionsCommand struct {
	picker *application.Picker
}

// NewListExclusionsCommand creates a new ListExclusionsCommand.
func NewListExclusionsCommand(picker *application.Picker) *ListExclusionsCommand {
	return &ListExclusionsCommand{picker: picker}
}

// Execute runs the list exclusions command.
func (c *ListExclusionsCommand) Execute(ctx context.Context) ([]string, error) {
	settings, err := c.picker.Settings()
	if err != nil {
		return nil, err
	}
	return settings.Excluded, nil
}
