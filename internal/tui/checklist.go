package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/benchkit/internal/model"
	"github.com/idilsaglam/benchkit/internal/ui"
)

// listItem adapts model.Item to bubbles/list.Item.
type listItem struct{ model.Item }

func (i listItem) FilterValue() string { return i.Label }

// itemDelegate renders one checklist row per line; checked rows get the
// highlight style.
type itemDelegate struct{ styles *ui.Styles }

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	s := d.styles
	box := s.Muted.Render(s.Glyphs.BoxUnchecked)
	text := it.Label
	if it.Checked {
		box = s.Success.Render(s.Glyphs.BoxChecked)
		text = s.Checked.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = s.Selected.Render("> ")
	}
	fmt.Fprint(w, prefix+box+" "+text)
}

func toListItems(items []model.Item) []list.Item {
	out := make([]list.Item, 0, len(items))
	for _, it := range items {
		out = append(out, listItem{it})
	}
	return out
}

func newChecklistList(s *ui.Styles, items []model.Item) list.Model {
	l := list.New(toListItems(items), itemDelegate{styles: s}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.Styles.PaginationStyle = s.Muted
	return l
}
