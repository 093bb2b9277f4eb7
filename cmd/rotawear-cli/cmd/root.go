package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rotawear/internal/adapters/cachefile"
	"rotawear/internal/adapters/scanner"
	"rotawear/internal/application"
	"rotawear/internal/config"
)

var (
	closetPath string
	picker     *application.Picker
)

var rootCmd = &cobra.Command{
	Use:   "rotawear-cli",
	Short: "CLI for rotating through outfit files",
	Long: `rotawear-cli picks outfits from a closet directory, one subdirectory
per category, making sure every outfit in a category is worn once
before any repeats. Rotation progress survives restarts.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		cachePath, err := config.CachePath()
		if err != nil {
			return fmt.Errorf("failed to resolve cache path: %w", err)
		}
		settingsPath, err := config.SettingsPath()
		if err != nil {
			return fmt.Errorf("failed to resolve settings path: %w", err)
		}

		var opts []config.StoreOption
		if closetPath != "" {
			opts = append(opts, config.WithClosetOverride(closetPath))
		}

		picker = application.NewPicker(
			scanner.New(),
			cachefile.New(cachePath),
			config.NewStore(settingsPath, opts...),
		)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&closetPath, "closet", "c", "", "path to the closet (defaults to settings or ROTAWEAR_CLOSET)")
}

// GetPicker returns the initialized picker
func GetPicker() *application.Picker {
	return picker
}
