package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	s := m.styles
	v := m.theme.View()

	left := s.Accent.Render(menuLabel) + "  " + s.Title.Render("benchkit") + s.Muted.Render(" · "+m.Active())
	right := s.Muted.Render(v.Icon.Glyph + " " + v.Title)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	header := left + strings.Repeat(" ", gap) + right

	bodyWidth := m.width
	var drawer string
	if m.DrawerOpen() {
		drawer = m.drawerView()
		bodyWidth -= drawerWidth
	}

	var body string
	switch p := m.pages[m.active]; p.kind {
	case pageCalc:
		body = p.calc.view(s, bodyWidth-2)
	case pageChecklist:
		done, total := m.check.Progress()
		m.list.SetSize(bodyWidth-2, m.height-8)
		body = s.Title.Render(p.title) + "\n" +
			s.Muted.Render(s.ProgressBar(done, total, 24)) + "\n\n" +
			m.list.View()
	}
	if drawer != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, drawer, body)
	}

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = s.Muted.Render(m.status) + "\n" + footer
	}
	return header + "\n\n" + body + "\n\n" + footer
}

func (m Model) drawerView() string {
	s := m.styles
	lines := make([]string, 0, len(m.pages))
	for i, p := range m.pages {
		label := fmt.Sprintf(" %s", p.title)
		switch {
		case i == m.cursor:
			label = s.Selected.Render(label)
		case i == m.active:
			label = s.Accent.Render(label)
		}
		lines = append(lines, label)
	}
	return s.Renderer().NewStyle().
		Width(drawerWidth - 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		Render(strings.Join(lines, "\n"))
}
