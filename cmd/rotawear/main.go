package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"rotawear/internal/adapters/cachefile"
	"rotawear/internal/adapters/scanner"
	"rotawear/internal/adapters/tui"
	"rotawear/internal/application"
	"rotawear/internal/config"
)

func main() {
	settingsPath, err := config.SettingsPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cachePath, err := config.CachePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	picker := application.NewPicker(
		scanner.New(),
		cachefile.New(cachePath),
		config.NewStore(settingsPath),
	)

	app := tui.NewApp(picker)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
