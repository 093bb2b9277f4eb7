package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"rotawear/internal/adapters/tui/styles"
	"rotawear/internal/application"
)

// ResultKeyMap defines key bindings for the pick result view
type ResultKeyMap struct {
	Yank key.Binding
	Back key.Binding
	Quit key.Binding
}

var ResultKeys = ResultKeyMap{
	Yank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "enter"),
		key.WithHelp("esc/enter", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ResultModel shows the outcome of a pick
type ResultModel struct {
	ViewState
	selection *application.Selection
}

// NewResultModel creates a new pick result model
func NewResultModel() *ResultModel {
	return &ResultModel{}
}

// SetSelection stores the selection to display
func (m *ResultModel) SetSelection(selection *application.Selection) {
	m.selection = selection
	m.ClearMessage()
}

// Init initializes the result view
func (m *ResultModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the result view
func (m *ResultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, ResultKeys.Yank):
			if m.selection != nil {
				if err := clipboard.WriteAll(m.selection.Outfit.Path); err != nil {
					m.SetMessage(err.Error(), true)
				} else {
					m.SetMessage("Copied outfit path to clipboard", false)
				}
			}
			return m, nil

		case key.Matches(msg, ResultKeys.Back):
			return m, func() tea.Msg {
				return SwitchToCategoriesMsg{}
			}

		case key.Matches(msg, ResultKeys.Quit):
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the result view
func (m *ResultModel) View() string {
	if m.selection == nil {
		return styles.App.Render(styles.MutedText.Render("Nothing picked yet."))
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render("Today's pick"))
	b.WriteString("\n\n")

	b.WriteString(styles.Success.Render(m.selection.Outfit.Name))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("from " + m.selection.Outfit.CategoryName))
	b.WriteString("\n\n")

	b.WriteString(styles.Progress.Render(
		fmt.Sprintf("%.0f%% of rotation worn", m.selection.RotationProgress*100)))
	b.WriteString("\n")

	if m.selection.RotationWasReset {
		b.WriteString(styles.ProgressDone.Render("Rotation complete — starting a new cycle"))
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpDesc.Render("y copy path • esc back • q quit"))

	return styles.App.Render(b.String())
}
