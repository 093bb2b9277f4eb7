package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rotawear/internal/application/commands"
)

var excludeCmd = &cobra.Command{
	Use:   "exclude",
	Short: "Manage excluded categories",
	Long: `Manage the list of categories skipped during selection.

Examples:
  rotawear-cli exclude add Formal
  rotawear-cli exclude remove Formal
  rotawear-cli exclude list`,
}

var excludeAddCmd = &cobra.Command{
	Use:   "add <category>",
	Short: "Exclude a category from selection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		msg, err := commands.NewExcludeCommand(GetPicker(), args[0], false).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil
	},
}

var excludeRemoveCmd = &cobra.Command{
	Use:   "remove <category>",
	Short: "Include a previously excluded category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		msg, err := commands.NewExcludeCommand(GetPicker(), args[0], true).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil
	},
}

var excludeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List excluded categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		excluded, err := commands.NewListExclusionsCommand(GetPicker()).Execute(ctx)
		if err != nil {
			return err
		}
		for _, name := range excluded {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(excludeCmd)
	excludeCmd.AddCommand(excludeAddCmd)
	excludeCmd.AddCommand(excludeRemoveCmd)
	excludeCmd.AddCommand(excludeListCmd)
}
