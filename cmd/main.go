package main

import (
	"context"
	"log"
	"os"

	"github.com/alexei-ozerov/syskill/config"
	"github.com/alexei-ozerov/syskill/proc"
	"github.com/alexei-ozerov/syskill/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	logger := log.New(os.Stderr, "[syskill] ", log.LstdFlags)

	cfg, _ := config.LoadConfig()

	m := ui.NewModel(proc.NewSource(), cfg, logger)
	p := tea.NewProgram(m, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// External config edits restyle the running program. Writes go through
	// Program.Send, so the event loop stays the single owner of all state.
	go func() {
		err := config.Watch(ctx, func(c *config.Config) {
			ui.SendConfig(p, c)
		})
		if err != nil && ctx.Err() == nil {
			logger.Printf("config watch: %v", err)
		}
	}()

	if _, err := p.Run(); err != nil {
		logger.Printf("fatal: %v", err)
		os.Exit(1)
	}
}
