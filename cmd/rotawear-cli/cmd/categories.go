package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rotawear/internal/application/commands"
	"rotawear/internal/domain"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories in the closet",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		categories, err := commands.NewListCategoriesCommand(GetPicker()).Execute(ctx)
		if err != nil {
			return err
		}

		for _, c := range categories {
			switch c.State {
			case domain.CategoryHasOutfits:
				fmt.Printf("%s  %d/%d worn\n", c.Category.Name, c.WornCount, c.OutfitCount)
			case domain.CategoryEmpty:
				fmt.Printf("%s  (empty)\n", c.Category.Name)
			case domain.CategoryNoAvatarFiles:
				fmt.Printf("%s  (no outfit files)\n", c.Category.Name)
			case domain.CategoryUserExcluded:
				fmt.Printf("%s  (excluded)\n", c.Category.Name)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
