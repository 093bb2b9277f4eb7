package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"rotawear/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToCategoriesMsg{}
			}
		}
	}
	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Rotawear Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Outfit rotation without repeats"))
	b.WriteString("\n\n")

	b.WriteString(styles.SectionLabel.Render("Categories"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("enter", "Open category"))
	b.WriteString(helpLine("p", "Pick a random outfit from the category"))
	b.WriteString(helpLine("a", "Pick from any category"))
	b.WriteString(helpLine("r", "Reset the category's rotation"))
	b.WriteString("\n")

	b.WriteString(styles.SectionLabel.Render("Outfits"))
	b.WriteString("\n")
	b.WriteString(helpLine("enter", "Pick the selected outfit"))
	b.WriteString(helpLine("p", "Pick a random outfit"))
	b.WriteString(helpLine("w", "Mark the selected outfit worn"))
	b.WriteString(helpLine("esc", "Back to categories"))
	b.WriteString("\n")

	b.WriteString(styles.SectionLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n\n")

	b.WriteString(styles.MutedText.Render("Every outfit in a category is picked once before any repeats."))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Progress is saved between runs."))

	return styles.App.Render(b.String())
}

func helpLine(keys, desc string) string {
	return "  " + styles.HelpKey.Render(keys) + "  " + styles.HelpDesc.Render(desc) + "\n"
}
