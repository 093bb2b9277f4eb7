package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var wornCmd = &cobra.Command{
	Use:   "worn",
	Short: "List worn outfits across all categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		worn, err := GetPicker().AllWornOutfits()
		if err != nil {
			return err
		}
		if len(worn) == 0 {
			fmt.Println("No outfits worn yet.")
			return nil
		}

		for _, category := range worn {
			fmt.Printf("%s: %s\n", category.CategoryPath, strings.Join(category.Outfits, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(wornCmd)
}
