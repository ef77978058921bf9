package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/benchkit/internal/calc"
	"github.com/idilsaglam/benchkit/internal/theme"
	"github.com/idilsaglam/benchkit/internal/tui"
	"github.com/idilsaglam/benchkit/internal/ui"
)

var errNoTerminal = errors.New("the terminal UI needs an interactive terminal")

func newTUICmd(a *app) *cobra.Command {
	var start string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive terminal UI",
		Args:  args(cobra.NoArgs),
		RunE: func(_ *cobra.Command, _ []string) error {
			if start != "" && start != "checklist" {
				if _, err := calc.Lookup(start); err != nil {
					return usageError{err}
				}
			}
			return a.runTUI(start)
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "initial page: a calculator id or \"checklist\"")
	return cmd
}

func (a *app) runTUI(start string) error {
	if !ui.IsTTY(os.Stdin) || !ui.IsTTY(os.Stdout) {
		return errNoTerminal
	}
	// One live source for the controller and the program, so a focus-in
	// re-query and a later cycle into system mode agree.
	scheme := theme.SchemeFunc(ui.TerminalDark)
	ctl, err := a.themeController(scheme)
	if err != nil {
		return err
	}
	cl, err := a.checklist()
	if err != nil {
		return err
	}
	return tui.Run(tui.Options{
		Styles:         a.styles,
		Theme:          ctl,
		Scheme:         scheme,
		TerminalScheme: true,
		Checklist:      cl,
		Logger:         a.log,
		Start:          start,
	})
}
