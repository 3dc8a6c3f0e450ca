// Package tui is the interactive history browser. It is a read-mostly
// presentation layer: all state lives in the history engine, and the
// model re-fetches the entry list whenever the engine announces a change.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rwalden/clipwatch/internal/history"
	"github.com/rwalden/clipwatch/internal/store"
)

// RefreshMsg tells the model to re-fetch entries from the engine. The
// engine's change notification carries no payload, so the model re-queries
// full state.
type RefreshMsg struct{}

// Model is the bubbletea model for the history browser.
type Model struct {
	manager       *history.Manager
	showTimestamp bool

	entries []*store.Entry
	cursor  int
	width   int
	height  int
	flash   string
}

// NewModel creates a browser over the given engine.
func NewModel(manager *history.Manager, showTimestamp bool) *Model {
	return &Model{
		manager:       manager,
		showTimestamp: showTimestamp,
		entries:       manager.Entries(),
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case RefreshMsg:
		m.refresh()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}

		case "g":
			m.cursor = 0

		case "G":
			if len(m.entries) > 0 {
				m.cursor = len(m.entries) - 1
			}

		case "enter":
			if entry := m.selected(); entry != nil {
				m.manager.CopyToClipboard(entry.ID)
				return m, tea.Quit
			}

		case "p":
			if entry := m.selected(); entry != nil {
				m.manager.TogglePin(entry.ID)
				m.refresh()
				m.flash = "toggled pin"
			}

		case "d":
			if entry := m.selected(); entry != nil {
				m.manager.Delete(entry.ID)
				m.refresh()
				m.flash = "deleted"
			}
		}
	}

	return m, nil
}

// refresh re-fetches the entry list and clamps the cursor.
func (m *Model) refresh() {
	m.entries = m.manager.Entries()
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selected returns the entry under the cursor, or nil.
func (m *Model) selected() *store.Entry {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return nil
	}
	return m.entries[m.cursor]
}

var (
	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	pinStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(lipgloss.Color("241"))
)

// View implements tea.Model
func (m *Model) View() string {
	if len(m.entries) == 0 {
		return "History is empty.\n\nRun 'clipwatch watch' to start recording. Press q to quit.\n"
	}

	var b strings.Builder

	visible := m.visibleRows()
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := start + visible
	if end > len(m.entries) {
		end = len(m.entries)
	}

	for i := start; i < end; i++ {
		entry := m.entries[i]

		marker := " "
		if entry.Pinned {
			marker = pinStyle.Render("*")
		}

		line := fmt.Sprintf("%s [%s] %s", marker, entry.ContentType, m.manager.Preview(entry.Content))
		if m.showTimestamp {
			line += dimStyle.Render(fmt.Sprintf("  %s", entry.Timestamp.Format("2006-01-02 15:04")))
		}

		if i == m.cursor {
			line = cursorStyle.Render("> ") + line
		} else {
			line = "  " + line
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	if entry := m.selected(); entry != nil {
		detail := fmt.Sprintf("%d line(s), %s", entry.LineCount, entry.ContentType)
		if entry.SourceFile != "" {
			detail += ", from " + entry.SourceFile
		}
		b.WriteString(previewStyle.Render(m.manager.Preview(entry.Content) + "\n" + dimStyle.Render(detail)))
		b.WriteString("\n")
	}

	status := "enter copy · p pin · d delete · q quit"
	if m.flash != "" {
		status = m.flash + " · " + status
		m.flash = ""
	}
	b.WriteString(dimStyle.Render(status))
	b.WriteString("\n")

	return b.String()
}

// visibleRows returns how many list rows fit above the preview and status.
func (m *Model) visibleRows() int {
	rows := m.height - 5
	if rows < 1 {
		rows = 10
	}
	return rows
}
