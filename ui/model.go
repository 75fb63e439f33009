package ui

import (
	"log"

	"github.com/alexei-ozerov/syskill/config"
	"github.com/alexei-ozerov/syskill/model"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ProcessSource is what the controller needs from the OS: one full
// enumeration and two termination signals. Failures are non-fatal by
// contract; a process vanishing between Snapshot and Terminate is settled by
// the next refresh.
type ProcessSource interface {
	Snapshot() ([]model.Record, error)
	Terminate(pid int) error
	Kill(pid int) error
}

// Model holds TUI state. There is exactly one per running program; both the
// dispatch step (Update) and the render step (View) operate on it, and only
// Update mutates.
type Model struct {
	table   table.Model
	records []model.Record // current snapshot, sorted by PID, maybe filtered
	source  ProcessSource
	logger  *log.Logger

	// Searching
	searchInput textinput.Model
	mode        uiMode

	// Status messages
	statusText  string
	statusError bool

	cfg        *config.Config
	paletteIdx int
	styles     styles

	width  int
	height int
}

func NewModel(source ProcessSource, cfg *config.Config, logger *log.Logger) Model {
	columns := []table.Column{
		{Title: "NAME", Width: 24},
		{Title: "PID", Width: 8},
		{Title: "CPU%", Width: 8},
		{Title: "MEM", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	ti := textinput.New()
	ti.Placeholder = "search by name..."
	ti.CharLimit = 64

	m := Model{
		table:       t,
		source:      source,
		logger:      logger,
		searchInput: ti,
		mode:        browsingMode,
		cfg:         cfg,
	}
	m.setPalette(paletteIndex(cfg.Palette))
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// SendConfig pushes an externally reloaded config into the running program.
// This is the only write path from outside the event loop.
func SendConfig(p *tea.Program, cfg *config.Config) {
	p.Send(configMsg{cfg: cfg})
}
