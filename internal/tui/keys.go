package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Menu   key.Binding
	Theme  key.Binding
	Next   key.Binding
	Prev   key.Binding
	Field  key.Binding
	Back   key.Binding
	Option key.Binding
	Toggle key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Menu:   key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "menu")),
		Theme:  key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		Next:   key.NewBinding(key.WithKeys("ctrl+n", "pgdown"), key.WithHelp("ctrl+n", "next tool")),
		Prev:   key.NewBinding(key.WithKeys("ctrl+p", "pgup"), key.WithHelp("ctrl+p", "prev tool")),
		Field:  key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Back:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Option: key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "change option")),
		Toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "check")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Menu, k.Theme, k.Next, k.Field, k.Toggle, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Menu, k.Select, k.Theme},
		{k.Next, k.Prev, k.Field, k.Back, k.Option},
		{k.Toggle, k.Quit},
	}
}
