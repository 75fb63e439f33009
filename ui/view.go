package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTitle())
	b.WriteString("\n\n")
	b.WriteString(m.styles.header.Render(m.renderHeader()))
	b.WriteString("\n")
	b.WriteString(m.styles.base.Render(m.table.View()))
	b.WriteString("\n")

	if m.mode == browsingMode {
		b.WriteString(m.renderQuickHelp())
		b.WriteString("\n")
	}

	if m.statusText != "" {
		b.WriteString("\n")
		b.WriteString(m.renderStatus())
		b.WriteString("\n")
	}

	if m.searchVisible() {
		b.WriteString("\n")
		b.WriteString(m.renderSearchBar())
	}

	return b.String()
}

func (m Model) renderTitle() string {
	title := m.styles.title.Render("SYSKILL - Process Killer")
	return lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Render(title)
}

// renderHeader shows the list position derived from the cursor each frame;
// it is never stored, so it cannot drift from the selection.
func (m Model) renderHeader() string {
	position := "-"
	if len(m.records) > 0 {
		position = fmt.Sprintf("%d/%d", m.table.Cursor()+1, len(m.records))
	}
	return fmt.Sprintf("Processes: %d | Selected: %s | Palette: %s",
		len(m.records), position, palettes[m.paletteIdx].name)
}

func (m Model) renderQuickHelp() string {
	quickHelp := fmt.Sprintf(
		"%s Move | %s Search | %s Kill | %s Force kill | %s Refresh | %s Palette | %s Quit",
		m.styles.keybind.Render("[j/k]"),
		m.styles.keybind.Render("[/]"),
		m.styles.keybind.Render("[d]"),
		m.styles.keybind.Render("[D]"),
		m.styles.keybind.Render("[r]"),
		m.styles.keybind.Render("[tab]"),
		m.styles.keybind.Render("[q]"),
	)
	return m.styles.keybindDesc.Render(quickHelp)
}

func (m Model) renderStatus() string {
	style := m.styles.status
	if m.statusError {
		style = m.styles.statusError
	}
	return style.Render(m.statusText)
}

func (m Model) renderSearchBar() string {
	return m.styles.search.Render("Search: ") +
		m.searchInput.View() +
		m.styles.keybindDesc.Render(" (Enter to apply, Esc to cancel)")
}
