package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/benchkit/internal/theme"
)

type themeResult struct {
	Setting   string `json:"setting"`
	Effective string `json:"effective"`
	Title     string `json:"title"`
}

func newThemeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the stored theme",
		Args:  args(cobra.NoArgs),
		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := a.themeController(nil)
			if err != nil {
				return err
			}
			return a.printTheme(c.View())
		},
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "cycle",
			Short: "Advance system → light → dark → system",
			Args:  args(cobra.NoArgs),
			RunE: func(_ *cobra.Command, _ []string) error {
				c, err := a.themeController(nil)
				if err != nil {
					return err
				}
				return a.printTheme(c.Cycle())
			},
		},
		&cobra.Command{
			Use:       "set <light|dark|system>",
			Short:     "Store an explicit theme",
			Args:      args(cobra.ExactArgs(1)),
			ValidArgs: []string{string(theme.Light), string(theme.Dark), string(theme.System)},
			RunE: func(_ *cobra.Command, argv []string) error {
				s, err := theme.ParseSetting(argv[0])
				if err != nil {
					return usageError{err}
				}
				c, err := a.themeController(nil)
				if err != nil {
					return err
				}
				return a.printTheme(c.Set(s))
			},
		},
	)
	return cmd
}

func (a *app) printTheme(v theme.View) error {
	if a.json() {
		return printJSON(a.stdout, themeResult{
			Setting:   string(v.Setting),
			Effective: string(v.Effective),
			Title:     v.Title,
		})
	}
	a.styles.SetEffective(v.Effective)
	fmt.Fprintf(a.stdout, "%s %s\n", v.Icon.Glyph, a.styles.Title.Render(v.Title))
	return nil
}
