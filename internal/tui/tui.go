// Package tui is the interactive outline view with keyboard drag and drop.
package tui

import (
	"slipbox/internal/format"
	"slipbox/internal/gesture"
	"slipbox/internal/logger"

	tea "github.com/charmbracelet/bubbletea"
)

type Options struct {
	Display format.Display
	Indent  bool
	// Log must not write to the terminal the TUI draws on.
	Log logger.Logger
}

func Run(ctrl *gesture.Controller, opts Options) error {
	applyColorProfilePreference()
	applyThemePreference()

	if opts.Log != nil {
		log := opts.Log
		ctrl.Subscribe(func(s gesture.Snapshot) {
			log.Debug("outline changed", "seq", s.Seq, "items", len(s.Items))
		})
	}

	m := newAppModel(ctrl, opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
