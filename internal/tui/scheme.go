package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/benchkit/internal/theme"
)

// focusDebounce ignores focus reports right after a scheme query; handing
// the terminal back can make some terminals report focus-in again.
const focusDebounce = time.Second

// schemeQuery asks a SchemeSource with the terminal handed back to it, so
// the reply to a background-color query is not read as key presses.
type schemeQuery struct {
	src  theme.SchemeSource
	dark bool
}

func (q *schemeQuery) Run() error {
	q.dark = q.src.PrefersDark()
	return nil
}

func (q *schemeQuery) SetStdin(io.Reader)  {}
func (q *schemeQuery) SetStdout(io.Writer) {}
func (q *schemeQuery) SetStderr(io.Writer) {}

// detectScheme re-reads the platform scheme. Explicit light or dark
// settings ignore it, so no query runs then.
func (m Model) detectScheme() tea.Cmd {
	if m.theme.Setting() != theme.System {
		return nil
	}
	q := &schemeQuery{src: m.scheme}
	if !m.termScheme {
		return func() tea.Msg {
			_ = q.Run()
			return SchemeMsg{Dark: q.dark}
		}
	}
	return tea.Exec(q, func(error) tea.Msg { return SchemeMsg{Dark: q.dark} })
}
