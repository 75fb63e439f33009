package ui

import "github.com/alexei-ozerov/syskill/config"

// Messages

type statusMsg struct {
	text    string
	isError bool
}

type configMsg struct {
	cfg *config.Config
}

// UI Modes

type uiMode int

const (
	browsingMode uiMode = iota
	searchingMode
)
