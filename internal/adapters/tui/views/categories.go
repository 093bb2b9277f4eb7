package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"rotawear/internal/adapters/tui/styles"
	"rotawear/internal/application"
	"rotawear/internal/domain"
)

// CategoriesKeyMap defines key bindings for the category browser
type CategoriesKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Enter   key.Binding
	Pick    key.Binding
	PickAny key.Binding
	Reset   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var CategoriesKeys = CategoriesKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter", "l", "right"),
		key.WithHelp("enter", "open"),
	),
	Pick: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pick from category"),
	),
	PickAny: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "pick from any category"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset rotation"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// CategoriesModel is the model for the category browser view
type CategoriesModel struct {
	ViewState
	picker *application.Picker

	categories []domain.CategoryInfo
	cursor     int

	// confirming is set while a reset waits for y/n confirmation.
	confirming bool
}

// NewCategoriesModel creates a new category browser model
func NewCategoriesModel(picker *application.Picker) *CategoriesModel {
	return &CategoriesModel{picker: picker}
}

// Init initializes the category browser
func (m *CategoriesModel) Init() tea.Cmd {
	return m.loadCategories
}

// Reload refreshes the category listing
func (m *CategoriesModel) Reload() tea.Cmd {
	return m.loadCategories
}

func (m *CategoriesModel) loadCategories() tea.Msg {
	categories, err := m.picker.Categories()
	if err != nil {
		return errMsg{err}
	}
	return categoriesLoadedMsg{categories}
}

type categoriesLoadedMsg struct {
	categories []domain.CategoryInfo
}

// Update handles messages for the category browser
func (m *CategoriesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case categoriesLoadedMsg:
		m.categories = msg.categories
		if m.cursor >= len(m.categories) {
			m.cursor = 0
		}
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case successMsg:
		m.SetMessage(msg.message, false)
		return m, m.loadCategories

	case tea.KeyMsg:
		if m.confirming {
			return m.updateConfirm(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *CategoriesModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, CategoriesKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, CategoriesKeys.Down):
		if m.cursor < len(m.categories)-1 {
			m.cursor++
		}

	case key.Matches(msg, CategoriesKeys.Enter):
		if category := m.selected(); category != nil {
			name := category.Category.Name
			return m, func() tea.Msg {
				return SwitchToOutfitsMsg{Category: name}
			}
		}

	case key.Matches(msg, CategoriesKeys.Pick):
		if category := m.selected(); category != nil {
			return m, m.pick(category.Category.Name)
		}

	case key.Matches(msg, CategoriesKeys.PickAny):
		return m, m.pickAny

	case key.Matches(msg, CategoriesKeys.Reset):
		if m.selected() != nil {
			m.confirming = true
		}

	case key.Matches(msg, CategoriesKeys.Help):
		return m, func() tea.Msg {
			return SwitchToHelpMsg{}
		}

	case key.Matches(msg, CategoriesKeys.Quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m *CategoriesModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.confirming = false
		if category := m.selected(); category != nil {
			return m, m.reset(category.Category.Name)
		}
	case "n", "N", "esc":
		m.confirming = false
	}
	return m, nil
}

func (m *CategoriesModel) selected() *domain.CategoryInfo {
	if m.cursor < 0 || m.cursor >= len(m.categories) {
		return nil
	}
	return &m.categories[m.cursor]
}

func (m *CategoriesModel) pick(category string) tea.Cmd {
	return func() tea.Msg {
		selection, err := m.picker.PickRandom(category)
		if err != nil {
			return errMsg{err}
		}
		if selection == nil {
			return errMsg{fmt.Errorf("no outfits available in %s", category)}
		}
		return ShowSelectionMsg{Selection: selection}
	}
}

func (m *CategoriesModel) pickAny() tea.Msg {
	selection, err := m.picker.PickRandomAcrossCategories()
	if err != nil {
		return errMsg{err}
	}
	if selection == nil {
		return errMsg{fmt.Errorf("no category has outfits")}
	}
	return ShowSelectionMsg{Selection: selection}
}

func (m *CategoriesModel) reset(category string) tea.Cmd {
	return func() tea.Msg {
		if err := m.picker.ResetCategory(category); err != nil {
			return errMsg{err}
		}
		return successMsg{fmt.Sprintf("Reset rotation for %s", category)}
	}
}

// View renders the category browser
func (m *CategoriesModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Rotawear"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Pick outfits without repeats"))
	b.WriteString("\n\n")

	if len(m.categories) == 0 {
		b.WriteString(styles.MutedText.Render("No categories found in the closet."))
		b.WriteString("\n")
	}

	for i, category := range m.categories {
		line := renderCategoryLine(category)
		if i == m.cursor {
			line = styles.RowSelected.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.confirming {
		if category := m.selected(); category != nil {
			b.WriteString("\n")
			b.WriteString(styles.ErrorMsg.Render(
				fmt.Sprintf("Reset rotation for %s? (y/n)", category.Category.Name)))
			b.WriteString("\n")
		}
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
	b.WriteString(styles.HelpDesc.Render("enter open • p pick • a pick any • r reset • ? help • q quit"))

	return styles.App.Render(b.String())
}

func renderCategoryLine(category domain.CategoryInfo) string {
	switch category.State {
	case domain.CategoryHasOutfits:
		progress := fmt.Sprintf("%d/%d worn", category.WornCount, category.OutfitCount)
		if category.WornCount >= category.OutfitCount {
			return fmt.Sprintf("%s  %s", category.Category.Name, styles.ProgressDone.Render(progress))
		}
		return fmt.Sprintf("%s  %s", category.Category.Name, styles.Progress.Render(progress))
	case domain.CategoryEmpty:
		return fmt.Sprintf("%s  %s", category.Category.Name, styles.RowMuted.Render("(empty)"))
	case domain.CategoryNoAvatarFiles:
		return fmt.Sprintf("%s  %s", category.Category.Name, styles.RowMuted.Render("(no outfit files)"))
	case domain.CategoryUserExcluded:
		return fmt.Sprintf("%s  %s", category.Category.Name, styles.RowMuted.Render("(excluded)"))
	default:
		return category.Category.Name
	}
}
