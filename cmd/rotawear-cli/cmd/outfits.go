package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rotawear/internal/application/commands"
)

var outfitsCmd = &cobra.Command{
	Use:   "outfits <category>",
	Short: "List outfits in a category",
	Long: `List the outfits of a category. Outfits worn in the current
rotation cycle are marked with an asterisk.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		listings, err := commands.NewListOutfitsCommand(GetPicker(), args[0]).Execute(ctx)
		if err != nil {
			return err
		}

		for _, l := range listings {
			marker := " "
			if l.Worn {
				marker = "*"
			}
			fmt.Printf("%s %s\n", marker, l.Outfit.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(outfitsCmd)
}
