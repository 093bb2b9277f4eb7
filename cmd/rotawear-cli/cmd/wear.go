package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rotawear/internal/application/commands"
)

var wearCmd = &cobra.Command{
	Use:   "wear <category> <outfit>",
	Short: "Mark an outfit as worn",
	Long: `Mark a specific outfit as worn without picking it. Useful after
wearing something chosen outside the picker.

Examples:
  rotawear-cli wear Casual blue_jacket.avatar`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		msg, err := commands.NewWearCommand(GetPicker(), args[0], args[1]).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(wearCmd)
}
