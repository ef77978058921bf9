package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/benchkit/internal/calc"
)

func newConvertCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert between mil and mm",
		Args:  args(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = cmd.Help()
			return usagef("convert: choose mil or mm")
		},
	}
	cmd.AddCommand(
		newConvertUnitCmd(a, "mil", "mm", calc.MilToMM),
		newConvertUnitCmd(a, "mm", "mil", calc.MMToMil),
	)
	return cmd
}

func newConvertUnitCmd(a *app, from, to string, conv func(string) string) *cobra.Command {
	return &cobra.Command{
		Use:   from + " <value>",
		Short: fmt.Sprintf("Convert %s to %s", from, to),
		Args:  args(cobra.ExactArgs(1)),
		RunE: func(_ *cobra.Command, argv []string) error {
			out := conv(argv[0])
			if out == "" {
				return usagef("convert %s: not a number: %q", from, argv[0])
			}
			if a.json() {
				return printJSON(a.stdout, map[string]string{from: argv[0], to: out})
			}
			fmt.Fprintf(a.stdout, "%s %s = %s %s\n", argv[0], from, a.styles.Accent.Render(out), to)
			return nil
		},
	}
}
