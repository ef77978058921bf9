package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/benchkit/internal/calc"
)

type calcResult struct {
	ID      string            `json:"id"`
	Inputs  map[string]string `json:"inputs"`
	Outputs []calc.Output     `json:"outputs"`
}

func newCalcCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc <id> [--field=value...]",
		Short: "Evaluate one calculator",
		Args:  args(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = cmd.Help()
			return usagef("calc: missing calculator id (see `benchkit calc list`)")
		},
	}
	cmd.AddCommand(newCalcListCmd(a))
	for _, c := range calc.All() {
		cmd.AddCommand(newCalculatorCmd(a, c))
	}
	return cmd
}

func newCalcListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List calculators and their fields",
		Args:  args(cobra.NoArgs),
		RunE: func(_ *cobra.Command, _ []string) error {
			calcs := calc.All()
			if a.json() {
				type entry struct {
					ID     string   `json:"id"`
					Title  string   `json:"title"`
					Fields []string `json:"fields"`
				}
				out := make([]entry, 0, len(calcs))
				for _, c := range calcs {
					e := entry{ID: c.ID, Title: c.Title}
					for _, f := range c.Fields {
						e.Fields = append(e.Fields, f.ID)
					}
					out = append(out, e)
				}
				return printJSON(a.stdout, out)
			}
			pairs := make([][2]string, 0, len(calcs))
			for _, c := range calcs {
				pairs = append(pairs, [2]string{c.ID, c.Title})
			}
			for _, line := range a.styles.Rows(pairs) {
				fmt.Fprintln(a.stdout, line)
			}
			return nil
		},
	}
}

// newCalculatorCmd exposes every field of c as a --<field> flag that
// defaults to the form's prefilled value.
func newCalculatorCmd(a *app, c calc.Calculator) *cobra.Command {
	vals := make(map[string]*string, len(c.Fields))
	cmd := &cobra.Command{
		Use:   c.ID,
		Short: c.Title,
		Long:  c.Title + "\n\n" + c.Summary,
		Args:  args(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := c.Defaults()
			for _, f := range c.Fields {
				if cmd.Flags().Changed(f.ID) {
					in[f.ID] = *vals[f.ID]
				}
			}
			for _, f := range c.Fields {
				if len(f.Options) > 0 && !slices.Contains(f.Options, in[f.ID]) {
					return usagef("--%s must be one of %v", f.ID, f.Options)
				}
			}
			outs := c.Evaluate(in)
			if a.json() {
				return printJSON(a.stdout, calcResult{ID: c.ID, Inputs: in, Outputs: outs})
			}
			a.printOutputs(c.Title, outs)
			return nil
		},
	}
	for _, f := range c.Fields {
		usage := f.Label
		if f.Unit != "" {
			usage += " (" + f.Unit + ")"
		}
		if len(f.Options) > 0 {
			usage += fmt.Sprintf(" %v", f.Options)
		}
		vals[f.ID] = cmd.Flags().String(f.ID, f.Default, usage)
	}
	return cmd
}

