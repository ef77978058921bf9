// Package cli is the benchkit command line: one-shot calculators, theme and
// checklist commands, the terminal UI and the web server.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/idilsaglam/benchkit/internal/checklist"
	"github.com/idilsaglam/benchkit/internal/config"
	"github.com/idilsaglam/benchkit/internal/logging"
	"github.com/idilsaglam/benchkit/internal/model"
	"github.com/idilsaglam/benchkit/internal/store"
	"github.com/idilsaglam/benchkit/internal/store/jsonstore"
	"github.com/idilsaglam/benchkit/internal/store/sqlitestore"
	"github.com/idilsaglam/benchkit/internal/theme"
	"github.com/idilsaglam/benchkit/internal/ui"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// usageError marks errors caused by how the command was invoked.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, a ...any) error {
	return usageError{fmt.Errorf(format, a...)}
}

// args wraps a positional-args validator so its failures exit with ExitUsage.
func args(v cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, a []string) error {
		if err := v(cmd, a); err != nil {
			return usageError{err}
		}
		return nil
	}
}

type rootFlags struct {
	config   string
	dataDir  string
	store    string
	output   string
	logFile  string
	logLevel string
	color    string
}

// app is the state shared by every subcommand once flags and config are
// resolved.
type app struct {
	flags  rootFlags
	cfg    config.Config
	styles *ui.Styles
	log    *zap.Logger
	// osDark is the terminal background detected before any theme is applied.
	osDark bool

	stdout, stderr io.Writer

	st    store.Store
	close func() error
}

// Execute runs the CLI with the process arguments and returns an exit code
// (0 ok, 1 error, 2 usage).
func Execute() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(argv []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr, log: zap.NewNop()}
	root := newRootCmd(a)
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if cerr := a.shutdown(); cerr != nil && err == nil {
		err = cerr
	}
	if err == nil {
		return ExitOK
	}
	ui.Fail(stderr, err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		return ExitUsage
	}
	return ExitError
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "benchkit",
		Short:         "Electronics bench calculators, design checklist and theme, in the terminal or the browser",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          args(cobra.NoArgs),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f, ok := a.stdout.(*os.File); ok && ui.IsTTY(f) {
				return a.runTUI("")
			}
			_ = cmd.Help()
			return usagef("no command given")
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	f := root.PersistentFlags()
	f.StringVar(&a.flags.config, "config", "", "config file (default ~/.benchkit/config.yaml)")
	f.StringVar(&a.flags.dataDir, "data-dir", "", "directory for stored state (default ~/.benchkit)")
	f.StringVar(&a.flags.store, "store", "", "storage backend: json, sqlite or memory")
	f.StringVarP(&a.flags.output, "output", "o", OutputText, "output format: text or json")
	f.StringVar(&a.flags.logFile, "log-file", "", "write logs to this file")
	f.StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	f.StringVar(&a.flags.color, "color", "", "color output: auto, always or never")

	root.AddCommand(
		newCalcCmd(a),
		newConvertCmd(a),
		newThemeCmd(a),
		newCheckCmd(a),
		newTUICmd(a),
		newServeCmd(a),
		newConfigCmd(a),
	)
	return root
}

// setup resolves configuration with flag > env > file > default precedence,
// then builds styles and the logger.
func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()
	cfg, err := config.Load(a.flags.config, func(c *config.Config) {
		override := func(name string, dst *string) {
			if flags.Changed(name) {
				*dst = flagValue(flags, name)
			}
		}
		override("data-dir", &c.DataDir)
		override("store", &c.Store)
		override("log-file", &c.LogFile)
		override("log-level", &c.LogLevel)
		override("color", &c.Color)
	})
	switch {
	case errors.Is(err, config.ErrInvalid):
		return usageError{err}
	case err != nil:
		return err
	}
	switch a.flags.output {
	case OutputText, OutputJSON:
	default:
		return usagef("unsupported output format %q: use %q or %q", a.flags.output, OutputText, OutputJSON)
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return usageError{err}
	}
	a.cfg = cfg

	a.styles = ui.New(a.stdout, cfg.Color)
	a.osDark = a.styles.Dark()
	ui.SetTheme(a.styles)

	log, err := logging.NewFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	a.log = log
	return nil
}

func flagValue(fs *pflag.FlagSet, name string) string {
	v, _ := fs.GetString(name)
	return v
}

// openStore opens the configured backend once per run.
func (a *app) openStore() (store.Store, error) {
	if a.st != nil {
		return a.st, nil
	}
	if a.cfg.Store == config.StoreMemory {
		m := store.NewMemory(nil)
		a.st = m
		a.close = func() error {
			a.log.Debug("memory store discarded", zap.Any("state", m.Snapshot()))
			return nil
		}
		return a.st, nil
	}
	if err := os.MkdirAll(a.cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	var path string
	switch a.cfg.Store {
	case config.StoreSQLite:
		path = filepath.Join(a.cfg.DataDir, sqlitestore.DefaultFileName)
		s, err := sqlitestore.Open(path)
		if err != nil {
			return nil, err
		}
		a.st, a.close = s, s.Close
	default:
		s := jsonstore.New(a.cfg.DataDir)
		a.st, path = s, s.Path()
	}
	a.log.Debug("store opened", zap.String("backend", a.cfg.Store), zap.String("path", path))
	return a.st, nil
}

func (a *app) checklistItems() []model.Item {
	if len(a.cfg.Checklist) > 0 {
		return a.cfg.Checklist
	}
	return checklist.Defaults
}

// themeController resolves system mode against scheme, or against the
// background detected at startup when scheme is nil.
func (a *app) themeController(scheme theme.SchemeSource) (*theme.Controller, error) {
	st, err := a.openStore()
	if err != nil {
		return nil, err
	}
	if scheme == nil {
		scheme = theme.Fixed(a.osDark)
	}
	return theme.NewController(st, scheme, a.log), nil
}

func (a *app) checklist() (*checklist.Checklist, error) {
	st, err := a.openStore()
	if err != nil {
		return nil, err
	}
	c := checklist.New(st, a.checklistItems())
	if err := c.Load(); err != nil {
		return nil, err
	}
	return c, nil
}

func (a *app) json() bool { return a.flags.output == OutputJSON }
