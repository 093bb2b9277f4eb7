package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"rotawear/internal/adapters/tui/views"
	"rotawear/internal/application"
)

// ViewState represents the current view
type ViewState int

const (
	ViewCategories ViewState = iota
	ViewOutfits
	ViewResult
	ViewHelp
)

// App is the main TUI application model
type App struct {
	picker *application.Picker

	state      ViewState
	categories *views.CategoriesModel
	outfits    *views.OutfitsModel
	result     *views.ResultModel
	help       *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(picker *application.Picker) *App {
	return &App{
		picker:     picker,
		state:      ViewCategories,
		categories: views.NewCategoriesModel(picker),
		outfits:    views.NewOutfitsModel(picker),
		result:     views.NewResultModel(),
		help:       views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.categories.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.categories.SetSize(msg.Width, msg.Height)
		a.outfits.SetSize(msg.Width, msg.Height)
		a.result.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToOutfitsMsg:
		a.state = ViewOutfits
		a.outfits.SetCategory(msg.Category)
		return a, a.outfits.Init()

	case views.SwitchToCategoriesMsg:
		a.state = ViewCategories
		return a, a.categories.Reload()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.ShowSelectionMsg:
		a.state = ViewResult
		a.result.SetSelection(msg.Selection)
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewCategories:
		_, cmd = a.categories.Update(msg)
	case ViewOutfits:
		_, cmd = a.outfits.Update(msg)
	case ViewResult:
		_, cmd = a.result.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewOutfits:
		return a.outfits.View()
	case ViewResult:
		return a.result.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.categories.View()
	}
}
