// Package tui renders the categories screen in a terminal.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/VladPetriv/category_manager/internal/client"
	"github.com/VladPetriv/category_manager/internal/models"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type loadedMsg struct {
	categories []models.Category
	err        error
}

type createdMsg struct {
	category *models.Category
	err      error
}

type deletedMsg struct {
	categoryID int
	err        error
}

// Model is a bubbletea model of the categories screen.
type Model struct {
	ctx    context.Context
	screen *client.Screen

	cursor int
	adding bool
	input  textinput.Model
	help   help.Model
}

var _ tea.Model = Model{}

// New returns a new categories screen model.
func New(ctx context.Context, screen *client.Screen) Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "New Category"
	input.CharLimit = 255

	return Model{
		ctx:    ctx,
		screen: screen,
		input:  input,
		help:   help.New(),
	}
}

// Run starts the categories screen and blocks until it's closed.
func Run(ctx context.Context, screen *client.Screen) error {
	_, err := tea.NewProgram(New(ctx, screen), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("run categories screen: %w", err)
	}

	return nil
}

// Init loads categories on first display.
func (m Model) Init() tea.Cmd {
	return m.load()
}

// Update applies key presses and request results to the screen.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.screen.ApplyLoad(msg.categories, msg.err)
		m.clampCursor()
		return m, nil
	case createdMsg:
		m.screen.ApplyAdd(msg.category, msg.err)
		m.input.SetValue(m.screen.Input())
		return m, nil
	case deletedMsg:
		m.screen.ApplyDelete(msg.categoryID, msg.err)
		m.clampCursor()
		return m, nil
	case tea.KeyMsg:
		if m.adding {
			return m.updateInput(msg)
		}

		return m.updateList(msg)
	}

	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Submit):
		title, ok := m.screen.PendingTitle()
		if !ok {
			return m, nil
		}

		return m, m.create(title)
	case key.Matches(msg, keys.Cancel):
		m.adding = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.screen.SetInput(m.input.Value())

	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	categories := m.screen.Categories()

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(categories)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Add):
		m.adding = true
		return m, m.input.Focus()
	case key.Matches(msg, keys.Toggle):
		if len(categories) > 0 {
			m.screen.Toggle(categories[m.cursor].ID)
		}
	case key.Matches(msg, keys.Delete):
		if len(categories) > 0 {
			return m, m.delete(categories[m.cursor].ID)
		}
	case key.Matches(msg, keys.Reload):
		return m, m.load()
	}

	return m, nil
}

func (m *Model) clampCursor() {
	count := len(m.screen.Categories())
	if m.cursor >= count {
		m.cursor = count - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) load() tea.Cmd {
	api := m.screen.API()

	return func() tea.Msg {
		categories, err := api.List(m.ctx)
		return loadedMsg{categories: categories, err: err}
	}
}

func (m Model) create(title string) tea.Cmd {
	api := m.screen.API()

	return func() tea.Msg {
		category, err := api.Create(m.ctx, title)
		return createdMsg{category: category, err: err}
	}
}

func (m Model) delete(categoryID int) tea.Cmd {
	api := m.screen.API()

	return func() tea.Msg {
		err := api.Delete(m.ctx, categoryID)
		return deletedMsg{categoryID: categoryID, err: err}
	}
}

// View renders the screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Categories"))
	b.WriteString("\n\n")
	b.WriteString(inputStyle.Render(m.input.View()))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("Your Categories"))
	b.WriteString("\n")

	categories := m.screen.Categories()
	if len(categories) == 0 {
		b.WriteString(mutedStyle.Render("  no categories yet"))
		b.WriteString("\n")
	}

	for i, category := range categories {
		mark := mutedStyle.Render(markInactive)
		if category.Active {
			mark = activeStyle.Render(markActive)
		}

		line := fmt.Sprintf("%s %s", mark, category.GetName())
		prefix := "  "
		if i == m.cursor && !m.adding {
			prefix = selectedStyle.Render(">") + " "
		}

		b.WriteString(prefix + line + "\n")
	}

	bindings := keys.listHelp()
	if m.adding {
		bindings = keys.inputHelp()
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.ShortHelpView(bindings)))

	return panelStyle.Render(b.String())
}
