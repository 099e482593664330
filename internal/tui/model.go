// Package tui provides an interactive terminal browser for generated
// outfits.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fernwood/dresscode/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	gapStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

// Config configures the outfit browser.
type Config struct {
	Occasion string
	Outfits  []model.Outfit
	Gaps     []model.GapSuggestion
}

// Model holds the browser state.
type Model struct {
	config   Config
	keymap   KeyMap
	help     help.Model
	cursor   int
	width    int
	height   int
	showGaps bool
	quitting bool
}

// newModel creates a browser model for the given outfits.
func newModel(cfg Config) Model {
	return Model{
		config: cfg,
		keymap: DefaultKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit), key.Matches(msg, m.keymap.ForceQuit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keymap.Down):
			if m.cursor < len(m.config.Outfits)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keymap.Home):
			m.cursor = 0
		case key.Matches(msg, m.keymap.End):
			if n := len(m.config.Outfits); n > 0 {
				m.cursor = n - 1
			}
		case key.Matches(msg, m.keymap.Gaps):
			m.showGaps = !m.showGaps
		case key.Matches(msg, m.keymap.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	return m, nil
}

// View renders the browser.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "Outfits"
	if m.config.Occasion != "" {
		title = fmt.Sprintf("Outfits for %s", m.config.Occasion)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	if len(m.config.Outfits) == 0 {
		b.WriteString(dimStyle.Render("No outfits to show. Add more garments to your wardrobe."))
		b.WriteString("\n")
	}

	for i, outfit := range m.config.Outfits {
		line := fmt.Sprintf("%2d. %s  %s",
			i+1,
			describeOutfit(outfit),
			scoreStyle.Render(fmt.Sprintf("(%.0f)", outfit.Score)))
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.showGaps {
		b.WriteString("\n")
		b.WriteString(gapStyle.Render("Missing items"))
		b.WriteString("\n")
		if len(m.config.Gaps) == 0 {
			b.WriteString(dimStyle.Render("  Nothing missing, or the oracle is not configured."))
			b.WriteString("\n")
		}
		for _, gap := range m.config.Gaps {
			b.WriteString(fmt.Sprintf("  • %s", gap.Term))
			if gap.Reason != "" {
				b.WriteString(dimStyle.Render(" — " + gap.Reason))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keymap))
	return b.String()
}

// describeOutfit joins item titles, falling back to colors and
// categories for untitled garments.
func describeOutfit(outfit model.Outfit) string {
	parts := make([]string, 0, len(outfit.Items))
	for _, item := range outfit.Items {
		if item.Title != "" {
			parts = append(parts, item.Title)
			continue
		}
		parts = append(parts, strings.TrimSpace(item.Color+" "+item.Category))
	}
	return strings.Join(parts, " + ")
}
