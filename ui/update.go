package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexei-ozerov/syskill/config"
	"github.com/alexei-ozerov/syskill/model"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const errorFmt = "Error: %v"

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Exactly one mode sees any given key.
		switch m.mode {
		case searchingMode:
			return m.handleSearchingMode(msg)
		default:
			return m.handleBrowsingMode(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(msg.Height - 9)
		return m, nil

	case statusMsg:
		m.statusText = msg.text
		m.statusError = msg.isError
		return m, nil

	case configMsg:
		m.cfg = msg.cfg
		m.setPalette(paletteIndex(msg.cfg.Palette))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) handleBrowsingMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "r":
		m.refresh()
		return m, nil

	case "j", "down":
		m.selectNext()
		return m, nil

	case "k", "up":
		m.selectPrevious()
		return m, nil

	// Kill process
	case "d":
		return m.killSelected(m.source.Terminate, "SIGTERM")

	// Force kill
	case "D":
		return m.killSelected(m.source.Kill, "SIGKILL")

	// Searching
	case "/":
		m.enterSearch()
		return m, textinput.Blink

	case "tab":
		m.cyclePalette()
		return m, nil
	}

	// Page/home/end movement stays with the table (clamping, not wrapping).
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) handleSearchingMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.leaveSearch()
		return m, nil

	case "enter":
		needle := m.searchInput.Value()
		m.leaveSearch()
		m.applySearch(needle)
		return m, nil
	}

	// Everything else is text editing: runes insert at the caret, backspace
	// deletes before it, left/right clamp into [0, len]. The input is
	// rune-indexed, so multi-byte characters count as one position.
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// enterSearch switches to searching mode with a fresh buffer. Clearing on
// entry (rather than resuming leftover text) is deliberate.
func (m *Model) enterSearch() {
	m.mode = searchingMode
	m.searchInput.Reset()
	m.searchInput.Focus()
}

func (m *Model) leaveSearch() {
	m.mode = browsingMode
	m.searchInput.Reset()
	m.searchInput.Blur()
}

// searchVisible reports whether the search overlay is drawn; it is true
// exactly while in searching mode.
func (m Model) searchVisible() bool {
	return m.mode == searchingMode
}

// refresh replaces the snapshot with a fresh enumeration. Enumeration
// failure degrades to an empty list for this cycle.
func (m *Model) refresh() {
	records, err := m.source.Snapshot()
	if err != nil {
		m.logger.Printf("refresh: %v", err)
		m.statusText = "process listing failed"
		m.statusError = true
		records = nil
	}
	m.setRecords(records)
}

// applySearch keeps only records whose name contains needle, case-sensitive.
// It replaces the working snapshot; only a refresh un-filters. An empty
// needle matches every name, so submitting an empty search is a no-op.
func (m *Model) applySearch(needle string) {
	filtered := make([]model.Record, 0, len(m.records))
	for _, r := range m.records {
		if strings.Contains(r.Name, needle) {
			filtered = append(filtered, r)
		}
	}
	m.setRecords(filtered)
}

// setRecords installs a new working list: PID-sorted, rows rebuilt, cursor
// clamped into the new length. Selection is positional; rows have no
// identity across refreshes.
func (m *Model) setRecords(records []model.Record) {
	model.SortByPid(records)
	m.records = records

	cursor := m.table.Cursor()
	m.table.SetRows(m.buildRows(records))

	if len(records) == 0 {
		return
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= len(records) {
		cursor = len(records) - 1
	}
	m.table.SetCursor(cursor)
}

func (m *Model) buildRows(records []model.Record) []table.Row {
	rows := make([]table.Row, 0, len(records))
	for _, r := range records {
		cpu := fmt.Sprintf("%.1f", r.CPU)
		if r.CPU > 50 {
			cpu = m.styles.highCPU.Render(cpu)
		} else if r.CPU > 20 {
			cpu = m.styles.medCPU.Render(cpu)
		}

		rows = append(rows, table.Row{
			r.Name,
			strconv.Itoa(r.Pid),
			cpu,
			FormatBytes(r.Memory),
		})
	}
	return rows
}

// selectNext advances the selection, wrapping past the last row to the
// first. No-op on an empty list.
func (m *Model) selectNext() {
	n := len(m.records)
	if n == 0 {
		return
	}
	if m.table.Cursor() >= n-1 {
		m.table.SetCursor(0)
	} else {
		m.table.SetCursor(m.table.Cursor() + 1)
	}
}

// selectPrevious is the symmetric wrap from the first row to the last.
func (m *Model) selectPrevious() {
	n := len(m.records)
	if n == 0 {
		return
	}
	if m.table.Cursor() <= 0 {
		m.table.SetCursor(n - 1)
	} else {
		m.table.SetCursor(m.table.Cursor() - 1)
	}
}

func (m Model) selectedPid() (int, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.records) {
		return 0, false
	}
	return m.records[i].Pid, true
}

// killSelected signals the selected process and then refreshes
// unconditionally: termination is neither synchronous nor guaranteed, so the
// row is never removed optimistically. With nothing selected it is a no-op.
func (m Model) killSelected(send func(int) error, signal string) (tea.Model, tea.Cmd) {
	pid, ok := m.selectedPid()
	if !ok {
		m.logger.Println("kill: empty list, nothing selected")
		return m, nil
	}

	var cmd tea.Cmd
	if err := send(pid); err != nil {
		// Already gone or not ours to kill; the refresh below shows
		// whatever is actually true now.
		m.logger.Printf("kill PID %d: %v", pid, err)
		cmd = m.showStatus(fmt.Sprintf(errorFmt, err), true)
	} else {
		cmd = m.showStatus(fmt.Sprintf("Sent %s to PID %d", signal, pid), false)
	}

	m.refresh()
	return m, cmd
}

func (m *Model) setPalette(idx int) {
	m.paletteIdx = idx
	m.styles = newStyles(palettes[idx])
	m.table.SetStyles(m.styles.table)
}

func (m *Model) cyclePalette() {
	m.setPalette((m.paletteIdx + 1) % len(palettes))
	m.cfg.Palette = palettes[m.paletteIdx].name
	if err := config.SaveConfig(m.cfg); err != nil {
		m.logger.Printf("saving config: %v", err)
	}
}

func (m Model) showStatus(text string, isError bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text, isError: isError}
	}
}
