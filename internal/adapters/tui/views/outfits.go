package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"rotawear/internal/adapters/tui/styles"
	"rotawear/internal/application"
	"rotawear/internal/application/commands"
)

// OutfitsKeyMap defines key bindings for the outfit list view
type OutfitsKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Pick  key.Binding
	Wear  key.Binding
	Back  key.Binding
	Quit  key.Binding
}

var OutfitsKeys = OutfitsKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "pick this outfit"),
	),
	Pick: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pick random"),
	),
	Wear: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "mark worn"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "h", "left"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// OutfitsModel is the model for the outfit list view
type OutfitsModel struct {
	ViewState
	picker *application.Picker

	category string
	listings []commands.OutfitListing
	cursor   int
}

// NewOutfitsModel creates a new outfit list model
func NewOutfitsModel(picker *application.Picker) *OutfitsModel {
	return &OutfitsModel{picker: picker}
}

// SetCategory points the view at a category and resets the cursor
func (m *OutfitsModel) SetCategory(category string) {
	m.category = category
	m.cursor = 0
	m.listings = nil
	m.ClearMessage()
}

// Init initializes the outfit list
func (m *OutfitsModel) Init() tea.Cmd {
	return m.loadOutfits
}

func (m *OutfitsModel) loadOutfits() tea.Msg {
	listings, err := commands.NewListOutfitsCommand(m.picker, m.category).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return outfitsLoadedMsg{listings}
}

type outfitsLoadedMsg struct {
	listings []commands.OutfitListing
}

// Update handles messages for the outfit list
func (m *OutfitsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case outfitsLoadedMsg:
		m.listings = msg.listings
		if m.cursor >= len(m.listings) {
			m.cursor = 0
		}
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case successMsg:
		m.SetMessage(msg.message, false)
		return m, m.loadOutfits

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, OutfitsKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, OutfitsKeys.Down):
			if m.cursor < len(m.listings)-1 {
				m.cursor++
			}

		case key.Matches(msg, OutfitsKeys.Enter):
			if listing := m.selected(); listing != nil {
				return m, m.pickOutfit(listing.Outfit.Name)
			}

		case key.Matches(msg, OutfitsKeys.Pick):
			return m, m.pickRandom

		case key.Matches(msg, OutfitsKeys.Wear):
			if listing := m.selected(); listing != nil {
				return m, m.wear(listing.Outfit.Name)
			}

		case key.Matches(msg, OutfitsKeys.Back):
			return m, func() tea.Msg {
				return SwitchToCategoriesMsg{}
			}

		case key.Matches(msg, OutfitsKeys.Quit):
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *OutfitsModel) selected() *commands.OutfitListing {
	if m.cursor < 0 || m.cursor >= len(m.listings) {
		return nil
	}
	return &m.listings[m.cursor]
}

func (m *OutfitsModel) pickOutfit(name string) tea.Cmd {
	return func() tea.Msg {
		selection, err := m.picker.PickOutfit(m.category, name)
		if err != nil {
			return errMsg{err}
		}
		return ShowSelectionMsg{Selection: selection}
	}
}

func (m *OutfitsModel) pickRandom() tea.Msg {
	selection, err := m.picker.PickRandom(m.category)
	if err != nil {
		return errMsg{err}
	}
	if selection == nil {
		return errMsg{fmt.Errorf("no outfits available in %s", m.category)}
	}
	return ShowSelectionMsg{Selection: selection}
}

func (m *OutfitsModel) wear(name string) tea.Cmd {
	return func() tea.Msg {
		if err := m.picker.Wear(m.category, name); err != nil {
			return errMsg{err}
		}
		return successMsg{fmt.Sprintf("Marked %s as worn", name)}
	}
}

// View renders the outfit list
func (m *OutfitsModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(m.category))
	b.WriteString("\n\n")

	if len(m.listings) == 0 {
		b.WriteString(styles.MutedText.Render("No outfits in this category."))
		b.WriteString("\n")
	}

	for i, listing := range m.listings {
		line := listing.Outfit.Name
		if listing.Worn {
			line = styles.RowWorn.Render(line + "  (worn)")
		}
		if i == m.cursor {
			line = styles.RowSelected.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
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
	b.WriteString(styles.HelpDesc.Render("enter pick this • p pick random • w mark worn • esc back • q quit"))

	return styles.App.Render(b.String())
}
