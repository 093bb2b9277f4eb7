package commands

import (
	"context"
	"fmt"

	"rotawear/internal/application"
)

// PickResult contains the result of a pick operation.
type PickResult struct {
	Selection *application.Selection
	Message   string
}

// PickRandomCommand selects a random outfit, from one category or across
// all eligible categories when Category is empty.
type PickRandomCommand struct {
	picker   *application.Picker
	Category string
}

// NewPickRandomCommand creates a new PickRandomCommand.
func NewPickRandomCommand(picker *application.Picker, category string) *PickRandomCommand {
	return &PickRandomCommand{picker: picker, Category: category}
}

// Execute runs the pick command.
func (c *PickRandomCommand) Execute(ctx context.Context) (*PickResult, error) {
	var (
		selection *application.Selection
		err       error
	)
	if c.Category == "" {
		selection, err = c.picker.PickRandomAcrossCategories()
	} else {
		selection, err = c.picker.PickRandom(c.Category)
	}
	if err != nil {
		return nil, err
	}
	if selection == nil {
		return &PickResult{Message: "No outfits available"}, nil
	}

	return &PickResult{
		Selection: selection,
		Message:   formatSelection(selection),
	}, nil
}

// PickOutfitCommand selects a specific outfit by name.
type PickOutfitCommand struct {
	picker   *application.Picker
	Category string
	Outfit   string
}

// NewPickOutfitCommand creates a new PickOutfitCommand.
func NewPickOutfitCommand(picker *application.Picker, category, outfit string) *PickOutfitCommand {
	return &PickOutfitCommand{picker: picker, Category: category, Outfit: outfit}
}

// Validate checks the command inputs.
func (c *PickOutfitCommand) Validate() error {
	if err := application.ValidateRequired("category name", c.Category); err != nil {
		return err
	}
	return application.ValidateRequired("outfit name", c.Outfit)
}

// Execute runs the manual pick command.
func (c *PickOutfitCommand) Execute(ctx context.Context) (*PickResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	selection, err := c.picker.PickOutfit(c.Category, c.Outfit)
	if err != nil {
		return nil, err
	}

	return &PickResult{
		Selection: selection,
		Message:   formatSelection(selection),
	}, nil
}

func formatSelection(selection *application.Selection) string {
	msg := fmt.Sprintf("Picked %s from %s (%.0f%% of rotation worn)",
		selection.Outfit.Name,
		selection.Outfit.CategoryName,
		selection.RotationProgress*100,
	)
	if selection.RotationWasReset {
		msg += "\nRotation complete — starting a new cycle"
	}
	return msg
}
