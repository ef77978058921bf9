package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a bar with percentage.
func (s *Styles) ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(s.Glyphs.Fill, filled) + strings.Repeat(s.Glyphs.Empty, width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Panel frames lines in the border style.
func (s *Styles) Panel(lines []string) string {
	return s.Border.Render(strings.Join(lines, "\n"))
}

// Rows aligns label/value pairs in two columns.
func (s *Styles) Rows(pairs [][2]string) []string {
	w := 0
	for _, p := range pairs {
		if lw := lipgloss.Width(p[0]); lw > w {
			w = lw
		}
	}
	out := make([]string, 0, len(pairs))
	for _, p := range pairs {
		pad := strings.Repeat(" ", w-lipgloss.Width(p[0]))
		out = append(out, s.Muted.Render(p[0]+pad)+"  "+p[1])
	}
	return out
}

// PrintPanel writes a framed panel to w.
func PrintPanel(w io.Writer, lines []string) {
	fmt.Fprintln(w, current.Panel(lines))
}
