package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/benchkit/internal/calc"
	"github.com/idilsaglam/benchkit/internal/ui"
)

// field is one form input: a text input, or a select when the definition
// carries options.
type field struct {
	def    calc.Field
	input  textinput.Model
	option int
}

func (f field) value() string {
	if len(f.def.Options) > 0 {
		return f.def.Options[f.option]
	}
	return f.input.Value()
}

// calcPage is the form of one calculator. Outputs are recomputed on every
// edit; nothing is debounced.
type calcPage struct {
	calc    calc.Calculator
	fields  []field
	focus   int
	outputs []calc.Output
}

func newCalcPage(c calc.Calculator) *calcPage {
	p := &calcPage{calc: c}
	for _, d := range c.Fields {
		f := field{def: d}
		if len(d.Options) > 0 {
			for i, o := range d.Options {
				if o == d.Default {
					f.option = i
				}
			}
		} else {
			ti := textinput.New()
			ti.Prompt = ""
			ti.Placeholder = d.Unit
			ti.CharLimit = 32
			ti.Width = 16
			ti.SetValue(d.Default)
			f.input = ti
		}
		p.fields = append(p.fields, f)
	}
	if c.ID == "convert" {
		p.setField("mm", calc.MilToMM(p.values()["mil"]))
	}
	p.recompute()
	return p
}

func (p *calcPage) values() map[string]string {
	in := make(map[string]string, len(p.fields))
	for _, f := range p.fields {
		in[f.def.ID] = f.value()
	}
	return in
}

func (p *calcPage) recompute() {
	p.outputs = p.calc.Evaluate(p.values())
}

// setField replaces a field's text and recomputes, as if typed.
func (p *calcPage) setField(id, v string) {
	for i := range p.fields {
		if p.fields[i].def.ID == id {
			p.fields[i].input.SetValue(v)
		}
	}
	p.recompute()
}

func (p *calcPage) focusField(i int) tea.Cmd {
	if len(p.fields) == 0 {
		return nil
	}
	i = (i%len(p.fields) + len(p.fields)) % len(p.fields)
	for j := range p.fields {
		p.fields[j].input.Blur()
	}
	p.focus = i
	if len(p.fields[i].def.Options) > 0 {
		return nil
	}
	return p.fields[i].input.Focus()
}

func (p *calcPage) blur() {
	for j := range p.fields {
		p.fields[j].input.Blur()
	}
}

// cycleOption moves a select field by delta.
func (p *calcPage) cycleOption(delta int) bool {
	f := &p.fields[p.focus]
	n := len(f.def.Options)
	if n == 0 {
		return false
	}
	f.option = ((f.option+delta)%n + n) % n
	p.recompute()
	return true
}

// update feeds a message to the focused text input. The mil/mm converter
// rewrites its partner field on every edit.
func (p *calcPage) update(msg tea.Msg) tea.Cmd {
	f := &p.fields[p.focus]
	if len(f.def.Options) > 0 {
		return nil
	}
	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if f.input.Value() == before {
		return cmd
	}
	if p.calc.ID == "convert" {
		switch f.def.ID {
		case "mil":
			p.setField("mm", calc.MilToMM(f.input.Value()))
		case "mm":
			p.setField("mil", calc.MMToMil(f.input.Value()))
		}
	}
	p.recompute()
	return cmd
}

func (p *calcPage) view(s *ui.Styles, width int) string {
	var b strings.Builder
	b.WriteString(s.Title.Render(p.calc.Title))
	b.WriteString("\n")
	b.WriteString(s.Muted.Render(p.calc.Summary))
	b.WriteString("\n\n")

	for i, f := range p.fields {
		label := f.def.Label
		if f.def.Unit != "" {
			label += " (" + f.def.Unit + ")"
		}
		var val string
		if len(f.def.Options) > 0 {
			val = "‹ " + f.value() + " ›"
		} else {
			val = f.input.View()
		}
		box := s.Border
		if i == p.focus {
			box = s.Focused
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, s.Label.Render(label), box.Width(20).Render(val)))
		b.WriteString("\n")
	}

	if p.calc.ID != "convert" {
		b.WriteString("\n")
		pairs := make([][2]string, 0, len(p.outputs))
		for _, o := range p.outputs {
			v := s.Accent.Render(o.Value)
			if o.Value == calc.None || o.Value == calc.DivErr || o.Value == calc.LEDInvert {
				v = s.Pending.Render(o.Value)
			}
			pairs = append(pairs, [2]string{o.Label, v})
		}
		b.WriteString(s.Panel(s.Rows(pairs)))
	}
	return s.Renderer().NewStyle().MaxWidth(width).Render(b.String())
}
