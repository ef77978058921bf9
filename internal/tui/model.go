// Package tui is the interactive terminal front end: a drawer of tools, one
// form per calculator, the persisted checklist and a theme toggle.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/idilsaglam/benchkit/internal/calc"
	"github.com/idilsaglam/benchkit/internal/checklist"
	"github.com/idilsaglam/benchkit/internal/nav"
	"github.com/idilsaglam/benchkit/internal/theme"
	"github.com/idilsaglam/benchkit/internal/ui"
)

const (
	drawerWidth = 30
	menuLabel   = "[≡ Menu]"
	// Rows above the first drawer link: header line and a spacer.
	drawerTop = 2
)

// SchemeMsg reports the terminal's current color scheme.
type SchemeMsg struct{ Dark bool }

type pageKind int

const (
	pageCalc pageKind = iota
	pageChecklist
)

type page struct {
	kind  pageKind
	title string
	calc  *calcPage
}

// Options configure a Model.
type Options struct {
	Styles    *ui.Styles
	Theme     *theme.Controller
	Scheme    theme.SchemeSource
	Checklist *checklist.Checklist
	Logger    *zap.Logger

	// TerminalScheme marks Scheme as querying the terminal itself; the
	// query then runs with the terminal released by the program.
	TerminalScheme bool
	// Start selects the initial page by calculator id or "checklist".
	Start string
}

// Model is the Bubble Tea model.
type Model struct {
	styles *ui.Styles
	theme  *theme.Controller
	check  *checklist.Checklist
	log    *zap.Logger

	// termScheme and lastQuery gate focus-driven scheme queries.
	scheme     theme.SchemeSource
	termScheme bool
	lastQuery  time.Time

	drawer nav.Drawer
	cursor int

	pages  []page
	active int
	list   list.Model

	keys   keyMap
	help   help.Model
	status string

	width, height int
}

// New builds the model; nothing runs until the program starts.
func New(opt Options) Model {
	log := opt.Logger
	if log == nil {
		log = zap.NewNop()
	}
	m := Model{
		styles:     opt.Styles,
		theme:      opt.Theme,
		check:      opt.Checklist,
		log:        log,
		scheme:     opt.Scheme,
		termScheme: opt.TerminalScheme,
		keys:       defaultKeys(),
		help:       help.New(),
		width:      80,
		height:     24,
	}
	for _, c := range calc.All() {
		m.pages = append(m.pages, page{kind: pageCalc, title: c.Title, calc: newCalcPage(c)})
	}
	m.pages = append(m.pages, page{kind: pageChecklist, title: "Design Review Checklist"})
	m.list = newChecklistList(m.styles, m.check.Items())
	m.styles.SetEffective(m.theme.View().Effective)

	for i, p := range m.pages {
		if (p.kind == pageCalc && p.calc.calc.ID == opt.Start) || (p.kind == pageChecklist && opt.Start == "checklist") {
			m.active = i
		}
	}
	m.cursor = m.active
	m.focusActive()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.focusActive()
}

// Active returns the title of the visible page.
func (m Model) Active() string { return m.pages[m.active].title }

// DrawerOpen reports the nav drawer state.
func (m Model) DrawerOpen() bool { return m.drawer.Open() }

func (m *Model) focusActive() tea.Cmd {
	for _, p := range m.pages {
		if p.calc != nil {
			p.calc.blur()
		}
	}
	if p := m.pages[m.active]; p.kind == pageCalc {
		return p.calc.focusField(p.calc.focus)
	}
	return nil
}

func (m *Model) show(i int) tea.Cmd {
	n := len(m.pages)
	m.active = (i%n + n) % n
	m.cursor = m.active
	return m.focusActive()
}

func (m *Model) applyTheme(v theme.View) {
	m.styles.SetEffective(v.Effective)
	m.status = "Theme: " + v.Title
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.FocusMsg:
		if !m.lastQuery.IsZero() && time.Since(m.lastQuery) < focusDebounce {
			return m, nil
		}
		return m, m.detectScheme()

	case SchemeMsg:
		m.lastQuery = time.Now()
		if v, ok := m.theme.SchemeChanged(msg.Dark); ok {
			m.applyTheme(v)
		}
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cur := m.pages[m.active]
	typing := cur.kind == pageCalc
	plain := msg.String()

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.DrawerOpen() && plain == "esc" {
			m.drawer.Close()
			return m, nil
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Menu) || (!typing && plain == "m"):
		m.drawer.Click(nav.TargetToggle)
		m.cursor = m.active
		return m, nil
	case key.Matches(msg, m.keys.Theme) || (!typing && plain == "t"):
		v := m.theme.Cycle()
		m.applyTheme(v)
		if v.Setting == theme.System {
			return m, m.detectScheme()
		}
		return m, nil
	case key.Matches(msg, m.keys.Next):
		return m, m.show(m.active + 1)
	case key.Matches(msg, m.keys.Prev):
		return m, m.show(m.active - 1)
	case !typing && plain == "q":
		return m, tea.Quit
	}

	if m.DrawerOpen() {
		switch plain {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.pages)-1 {
				m.cursor++
			}
		case "enter":
			m.drawer.Close()
			return m, m.show(m.cursor)
		}
		return m, nil
	}

	if cur.kind == pageChecklist {
		if key.Matches(msg, m.keys.Toggle) {
			return m, m.toggleSelected()
		}
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	p := cur.calc
	switch {
	case key.Matches(msg, m.keys.Field), plain == "enter":
		return m, p.focusField(p.focus + 1)
	case key.Matches(msg, m.keys.Back):
		return m, p.focusField(p.focus - 1)
	case key.Matches(msg, m.keys.Option) && len(p.fields[p.focus].def.Options) > 0:
		d := 1
		if plain == "left" {
			d = -1
		}
		p.cycleOption(d)
		return m, nil
	}
	return m, p.update(msg)
}

func (m *Model) toggleSelected() tea.Cmd {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return nil
	}
	checked, err := m.check.Toggle(it.ID)
	if err != nil {
		m.log.Error("toggle checklist item", zap.String("id", it.ID), zap.Error(err))
		m.status = "Could not save: " + err.Error()
		return nil
	}
	it.Checked = checked
	done, total := m.check.Progress()
	m.status = fmt.Sprintf("%d/%d checked", done, total)
	return m.list.SetItem(m.list.Index(), it)
}

// updateMouse maps a left click to a drawer target: the menu label in the
// header, the drawer links, or anywhere else.
func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	target := nav.TargetOutside
	switch {
	case msg.Y == 0 && msg.X < len([]rune(menuLabel)):
		target = nav.TargetToggle
	case m.DrawerOpen() && msg.X < drawerWidth:
		target = nav.TargetLinks
	}
	m.drawer.Click(target)

	if target == nav.TargetLinks {
		if row := msg.Y - drawerTop; row >= 0 && row < len(m.pages) {
			m.drawer.Close()
			return m, m.show(row)
		}
	}
	return m, nil
}
