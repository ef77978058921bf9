package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/benchkit/internal/ui"
)

// Run starts the program and blocks until the user quits. State is written
// through on every change, so there is nothing to save on exit.
func Run(opt Options) error {
	m := New(opt)
	// Lay out for the real terminal before the first WindowSizeMsg.
	m.width, m.height = ui.TermSize()
	m.help.Width = m.width

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	_, err := p.Run()
	return err
}
