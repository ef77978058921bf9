package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/benchkit/internal/logging"
	"github.com/idilsaglam/benchkit/internal/web"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web UI",
		Args:  args(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = a.cfg.Addr
			}
			if a.cfg.LogFile == "" {
				log, err := logging.NewStderr(a.cfg.LogLevel)
				if err != nil {
					return err
				}
				a.log = log
			}

			h := web.NewHandler(web.Options{
				Checklist: a.cfg.Checklist,
				Logger:    a.log,
			})
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return web.Serve(ctx, addr, web.NewRouter(h), a.log)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
