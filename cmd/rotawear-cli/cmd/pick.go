package cmd

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"rotawear/internal/application/commands"
)

var (
	pickOutfit string
	pickCopy   bool
)

var pickCmd = &cobra.Command{
	Use:   "pick [category]",
	Short: "Pick an outfit at random",
	Long: `Pick a random unworn outfit from a category, or from any category
with outfits when no category is given. The pick is marked worn and
the rotation restarts automatically once every outfit has been worn.

Examples:
  rotawear-cli pick
  rotawear-cli pick Casual
  rotawear-cli pick Casual --outfit blue_jacket.avatar
  rotawear-cli pick Casual --copy`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		category := ""
		if len(args) == 1 {
			category = args[0]
		}

		var (
			result *commands.PickResult
			err    error
		)
		if pickOutfit != "" {
			if category == "" {
				return fmt.Errorf("--outfit requires a category")
			}
			result, err = commands.NewPickOutfitCommand(GetPicker(), category, pickOutfit).Execute(ctx)
		} else {
			result, err = commands.NewPickRandomCommand(GetPicker(), category).Execute(ctx)
		}
		if err != nil {
			return err
		}

		fmt.Println(result.Message)

		if pickCopy && result.Selection != nil {
			if err := clipboard.WriteAll(result.Selection.Outfit.Path); err != nil {
				return fmt.Errorf("failed to copy path to clipboard: %w", err)
			}
			fmt.Println("Copied outfit path to clipboard")
		}
		return nil
	},
}

func init() {
	pickCmd.Flags().StringVarP(&pickOutfit, "outfit", "o", "", "pick this specific outfit instead of a random one")
	pickCmd.Flags().BoolVar(&pickCopy, "copy", false, "copy the picked outfit path to the clipboard")
	rootCmd.AddCommand(pickCmd)
}
