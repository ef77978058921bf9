package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/idilsaglam/benchkit/internal/theme"
)

// Glyphs are the symbols renderers draw with.
type Glyphs struct {
	BoxUnchecked, BoxChecked string
	Done, Cross, Bullet      string
	Fill, Empty              string
}

var (
	unicodeGlyphs = Glyphs{BoxUnchecked: "☐", BoxChecked: "☑", Done: "✔", Cross: "✖", Bullet: "•", Fill: "█", Empty: "░"}
	asciiGlyphs   = Glyphs{BoxUnchecked: "[ ]", BoxChecked: "[x]", Done: "ok", Cross: "x", Bullet: "-", Fill: "#", Empty: "."}
)

// Adaptive palette. The renderer's dark-background flag picks the side,
// and that flag is set from the effective theme.
var (
	colorTitle   = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#F3F4F6"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	colorAccent  = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"}
	colorError   = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
	colorPending = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}
	colorBorder  = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}
	colorHiBg    = lipgloss.AdaptiveColor{Light: "#DCFCE7", Dark: "#14532D"}
)

// Styles bundles a renderer, its styles and glyphs. All UI helpers pull
// from a Styles value.
type Styles struct {
	r      *lipgloss.Renderer
	Glyphs Glyphs

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Checked, Border, Focused, Label     lipgloss.Style
}

// New builds Styles writing to w. color is auto, always or never; never
// also switches to ASCII glyphs.
func New(w io.Writer, color string) *Styles {
	r := lipgloss.NewRenderer(w)
	g := unicodeGlyphs
	switch color {
	case "always":
		r.SetColorProfile(termenv.ANSI256)
	case "never":
		r.SetColorProfile(termenv.Ascii)
		g = asciiGlyphs
	}
	s := &Styles{r: r, Glyphs: g}
	s.build()
	return s
}

// SetEffective points the adaptive palette at the light or dark side.
func (s *Styles) SetEffective(e theme.Effective) {
	s.r.SetHasDarkBackground(e == theme.EffectiveDark)
	s.build()
}

// Dark reports which side of the palette is active.
func (s *Styles) Dark() bool { return s.r.HasDarkBackground() }

// Renderer exposes the underlying renderer for components that style
// themselves.
func (s *Styles) Renderer() *lipgloss.Renderer { return s.r }

func (s *Styles) build() {
	n := s.r.NewStyle
	s.Title = n().Bold(true).Foreground(colorTitle)
	s.Muted = n().Foreground(colorMuted)
	s.Accent = n().Foreground(colorAccent)
	s.Success = n().Foreground(colorSuccess)
	s.Error = n().Foreground(colorError).Bold(true)
	s.Pending = n().Foreground(colorPending)
	s.Selected = n().Bold(true).Reverse(true)
	s.Checked = n().Foreground(colorSuccess).Background(colorHiBg)
	s.Border = n().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 1)
	s.Focused = n().Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent).Padding(0, 1)
	s.Label = n().Foreground(colorMuted).Width(22)
}

var current = New(os.Stdout, "auto")

// SetTheme replaces the package-level styles used by OK, Fail and
// PrintPanel.
func SetTheme(s *Styles) { current = s }

// Current exposes what renderers need.
func Current() *Styles { return current }
