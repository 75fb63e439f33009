package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// The palette set is fixed; tab cycles through it and the choice persists in
// the config file. Values are the original tailwind 400/900 pairs over a
// slate base.
type palette struct {
	name     string
	headerBg lipgloss.Color
	accent   lipgloss.Color
}

var palettes = []palette{
	{name: "blue", headerBg: lipgloss.Color("#1e3a8a"), accent: lipgloss.Color("#60a5fa")},
	{name: "emerald", headerBg: lipgloss.Color("#064e3b"), accent: lipgloss.Color("#34d399")},
	{name: "indigo", headerBg: lipgloss.Color("#312e81"), accent: lipgloss.Color("#818cf8")},
	{name: "red", headerBg: lipgloss.Color("#7f1d1d"), accent: lipgloss.Color("#f87171")},
}

const (
	colorRowFg  = lipgloss.Color("#e2e8f0") // slate 200
	colorDim    = lipgloss.Color("#94a3b8") // slate 400
	colorBufBg  = lipgloss.Color("#020617") // slate 950
	colorGreen  = lipgloss.Color("green")
	colorRed    = lipgloss.Color("red")
	colorYellow = lipgloss.Color("yellow")
)

func paletteIndex(name string) int {
	for i, p := range palettes {
		if p.name == name {
			return i
		}
	}
	return 0
}

// Styles split for readability
type styles struct {
	table table.Styles

	base        lipgloss.Style
	title       lipgloss.Style
	header      lipgloss.Style
	search      lipgloss.Style
	status      lipgloss.Style
	statusError lipgloss.Style
	keybind     lipgloss.Style
	keybindDesc lipgloss.Style

	highCPU lipgloss.Style
	medCPU  lipgloss.Style
}

func newStyles(p palette) styles {
	t := table.DefaultStyles()
	t.Header = t.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorDim).
		BorderBottom(true).
		Bold(true).
		Foreground(colorRowFg).
		Background(p.headerBg)
	t.Selected = t.Selected.
		Foreground(colorBufBg).
		Background(p.accent).
		Bold(true)

	return styles{
		table: t,

		base: lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(p.accent),

		title: lipgloss.NewStyle().
			Background(p.headerBg).
			Foreground(colorRowFg).
			Bold(true).
			Padding(0, 1),

		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent).
			Align(lipgloss.Left),

		search: lipgloss.NewStyle().Foreground(p.accent),

		status:      lipgloss.NewStyle().Foreground(colorGreen).Bold(true),
		statusError: lipgloss.NewStyle().Foreground(colorRed).Bold(true),

		keybind:     lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		keybindDesc: lipgloss.NewStyle().Foreground(colorDim),

		highCPU: lipgloss.NewStyle().Foreground(colorRed),
		medCPU:  lipgloss.NewStyle().Foreground(colorYellow),
	}
}
