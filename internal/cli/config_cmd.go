package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/benchkit/internal/config"
	"github.com/idilsaglam/benchkit/internal/ui"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration file",
		Args:  args(cobra.NoArgs),
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration after env and flags",
			Args:  args(cobra.NoArgs),
			RunE: func(_ *cobra.Command, _ []string) error {
				if a.json() {
					return printJSON(a.stdout, a.cfg)
				}
				data, err := yaml.Marshal(a.cfg)
				if err != nil {
					return fmt.Errorf("marshal config: %w", err)
				}
				_, err = a.stdout.Write(data)
				return err
			},
		},
		newConfigInitCmd(a),
	)
	return cmd
}

func newConfigInitCmd(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Args:  args(cobra.NoArgs),
		RunE: func(_ *cobra.Command, _ []string) error {
			path := a.flags.config
			if path == "" {
				path = config.Path()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return usagef("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			if err := config.Save(path, a.cfg); err != nil {
				return err
			}
			ui.OK(a.stdout, "wrote "+path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
