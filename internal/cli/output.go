package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/idilsaglam/benchkit/internal/calc"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// printOutputs renders calculator results as an aligned panel.
func (a *app) printOutputs(title string, outs []calc.Output) {
	pairs := make([][2]string, 0, len(outs))
	for _, o := range outs {
		pairs = append(pairs, [2]string{o.Label, a.styles.Accent.Render(o.Value)})
	}
	lines := append([]string{a.styles.Title.Render(title)}, a.styles.Rows(pairs)...)
	fmt.Fprintln(a.stdout, a.styles.Panel(lines))
}
