package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// TermSize returns the terminal size of stdout, falling back to 80x24.
func TermSize() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

// TerminalDark asks the terminal on stdout for its background color. Each
// call queries again; nothing is cached.
func TerminalDark() bool {
	return termenv.NewOutput(os.Stdout).HasDarkBackground()
}

// OK prints a success line to w.
func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Success.Render(current.Glyphs.Done+" "+msg))
}

// Fail prints an error line to w, normally stderr.
func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Error.Render(current.Glyphs.Cross+" "+msg))
}
