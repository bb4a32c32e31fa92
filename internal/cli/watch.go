package cli

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/franku1122/confmanager/logging"
	"github.com/franku1122/confmanager/store"
	"github.com/franku1122/confmanager/watch"
)

// NewWatchCmd creates the watch command.
func NewWatchCmd(app *App) *cobra.Command {
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Reload the file on every change until interrupted",
		Long: `Watch reloads the configuration file whenever it changes on disk and
prints a summary of each reload. With --metrics-addr, reload counters
are exposed over HTTP in Prometheus text format.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			var srv *http.Server
			if metricsAddr != "" {
				mux := http.NewServeMux()
				mux.Handle("/metrics", app.Metrics.Handler())
				srv = &http.Server{Addr: metricsAddr, Handler: mux}
				go func() {
					app.Logger.Info("metrics listening", "addr", metricsAddr)
					if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
						app.Logger.Error("metrics server stopped", "err", err)
					}
				}()
				defer srv.Shutdown(context.Background()) //nolint:errcheck
			}

			opts := store.Options{
				Syntax:     app.Config.Syntax,
				Logger:     logging.Slog(app.Logger),
				Metrics:    app.Metrics,
				AutoCreate: app.Config.AutoCreate,
			}
			return watch.File(ctx, app.File, opts, func(st *store.Store) {
				fmt.Fprintf(app.Out, "%s reloaded: %d values, %d annotations\n",
					app.File, len(st.Values()), len(st.Annotations()))
			})
		},
	}

	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	return cmd
}
