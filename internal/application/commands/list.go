package commands

import (
	"context"

	"rotawear/internal/application"
	"rotawear/internal/domain"
)

// ListCategoriesCommand lists every category in the closet.
type ListCategoriesCommand struct {
	picker *application.Picker
}

// NewListCategoriesCommand creates a new ListCategoriesCommand.
func NewListCategoriesCommand(picker *application.Picker) *ListCategoriesCommand {
	return &ListCategoriesCommand{picker: picker}
}

// Execute runs the list categories command.
func (c *ListCategoriesCommand) Execute(ctx context.Context) ([]domain.CategoryInfo, error) {
	return c.picker.Categories()
}

// OutfitListing is an outfit together with its worn state.
type OutfitListing struct {
	Outfit domain.OutfitFile
	Worn   bool
}

// ListOutfitsCommand lists the outfits of a category with worn markers.
type ListOutfitsCommand struct {
	picker   *application.Picker
	Category string
}

// NewListOutfitsCommand creates a new ListOutfitsCommand.
func NewListOutfitsCommand(picker *application.Picker, category string) *ListOutfitsCommand {
	return &ListOutfitsCommand{picker: picker, Category: category}
}

// Validate checks the command inputs.
func (c *ListOutfitsCommand) Validate() error {
	return application.ValidateRequired("category name", c.Category)
}

// Execute runs the list outfits command.
func (c *ListOutfitsCommand) Execute(ctx context.Context) ([]OutfitListing, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	outfits, err := c.picker.Outfits(c.Category)
	if err != nil {
		return nil, err
	}

	worn, err := c.picker.WornOutfits(c.Category)
	if err != nil {
		return nil, err
	}
	wornSet := make(map[string]bool, len(worn))
	for _, outfit := range worn {
		wornSet[outfit.Name] = true
	}

	listings := make([]OutfitListing, 0, len(outfits))
	for _, outfit := range outfits {
		listings = append(listings, OutfitListing{
			Outfit: outfit,
			Worn:   wornSet[outfit.Name],
		})
	}

	return listings, nil
}
