package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rotawear/internal/application/commands"
)

var statusCmd = &cobra.Command{
	Use:   "status <category>",
	Short: "Show rotation status for a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		result, err := commands.NewStatusCommand(GetPicker(), args[0]).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
