package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rotawear/internal/application/commands"
)

var resetAll bool

var resetCmd = &cobra.Command{
	Use:   "reset [category]",
	Short: "Reset rotation progress",
	Long: `Clear the worn set of a category so its rotation starts over.
With --all, every category is reset in one write.

Examples:
  rotawear-cli reset Casual
  rotawear-cli reset --all`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		category := ""
		if len(args) == 1 {
			category = args[0]
		}
		if !resetAll && category == "" {
			return fmt.Errorf("specify a category or --all")
		}

		msg, err := commands.NewResetCommand(GetPicker(), category, resetAll).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil
	},
}

var factoryResetCmd = &cobra.Command{
	Use:   "factory-reset",
	Short: "Delete the rotation cache and settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		msg, err := commands.NewFactoryResetCommand(GetPicker()).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetAll, "all", false, "reset every category")
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(factoryResetCmd)
}
