package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/benchkit/internal/checklist"
	"github.com/idilsaglam/benchkit/internal/ui"
)

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "check",
		Aliases: []string{"checklist"},
		Short:   "Work through the design review checklist",
		Args:    args(cobra.NoArgs),
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.listChecklist()
		},
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "ls",
			Short: "List items with their state",
			Args:  args(cobra.NoArgs),
			RunE: func(_ *cobra.Command, _ []string) error {
				return a.listChecklist()
			},
		},
		newCheckSetCmd(a, "on <id>", "Mark an item checked", func(c *checklist.Checklist, id string) (bool, error) {
			return true, c.Set(id, true)
		}),
		newCheckSetCmd(a, "off <id>", "Clear an item", func(c *checklist.Checklist, id string) (bool, error) {
			return false, c.Set(id, false)
		}),
		newCheckSetCmd(a, "toggle <id>", "Flip an item", func(c *checklist.Checklist, id string) (bool, error) {
			return c.Toggle(id)
		}),
	)
	return cmd
}

func newCheckSetCmd(a *app, use, short string, apply func(*checklist.Checklist, string) (bool, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args(cobra.ExactArgs(1)),
		RunE: func(_ *cobra.Command, argv []string) error {
			c, err := a.checklist()
			if err != nil {
				return err
			}
			id := argv[0]
			checked, err := apply(c, id)
			if errors.Is(err, checklist.ErrUnknownItem) {
				return usagef("%w (run `benchkit check ls` to see valid ids)", err)
			}
			if err != nil {
				return err
			}
			done, total := c.Progress()
			if a.json() {
				return printJSON(a.stdout, map[string]any{"id": id, "checked": checked, "done": done, "total": total})
			}
			state := "unchecked"
			if checked {
				state = "checked"
			}
			ui.OK(a.stdout, fmt.Sprintf("%s %s (%d/%d)", id, state, done, total))
			return nil
		},
	}
}

func (a *app) listChecklist() error {
	c, err := a.checklist()
	if err != nil {
		return err
	}
	items := c.Items()
	done, total := c.Progress()
	if a.json() {
		return printJSON(a.stdout, items)
	}

	s := a.styles
	lines := []string{
		fmt.Sprintf("%s  %s %d  %s %d",
			s.Title.Render("Design Review Checklist"),
			s.Success.Render(s.Glyphs.Done), done,
			s.Pending.Render(s.Glyphs.Bullet), total-done),
		s.Muted.Render(s.ProgressBar(done, total, 28)),
		"",
	}
	for _, it := range items {
		box, label := s.Glyphs.BoxUnchecked, it.Label
		if it.Checked {
			box, label = s.Glyphs.BoxChecked, s.Checked.Render(it.Label)
		}
		lines = append(lines, fmt.Sprintf("%s %s  %s", box, label, s.Muted.Render(it.ID)))
	}
	lines = append(lines, "", s.Muted.Render("Tip: benchkit check toggle <id>"))
	ui.PrintPanel(a.stdout, lines)
	return nil
}
