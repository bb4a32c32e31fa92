// Package cli implements the confctl commands.
package cli

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/franku1122/confmanager/internal/cliconfig"
	"github.com/franku1122/confmanager/logging"
	"github.com/franku1122/confmanager/metrics"
	"github.com/franku1122/confmanager/store"
)

// App holds application state shared across commands.
type App struct {
	File    string
	Config  *cliconfig.Config
	Out     io.Writer
	Err     io.Writer
	Metrics *metrics.Collector
	Logger  *slog.Logger
}

// newStore builds an empty store with the app's syntax and logging.
func (app *App) newStore() (*store.Store, error) {
	return store.New(store.Options{
		Syntax:     app.Config.Syntax,
		Logger:     logging.Slog(app.Logger),
		Metrics:    app.Metrics,
		AutoCreate: app.Config.AutoCreate,
	})
}

// openStore loads the app's file. When mustExist is false and auto-create is
// enabled, a missing file yields an unloaded store instead of an error.
func (app *App) openStore(mustExist bool) (*store.Store, error) {
	st, err := app.newStore()
	if err != nil {
		return nil, err
	}
	if err := st.Open(app.File); err != nil {
		if !mustExist && app.Config.AutoCreate && errors.Is(err, store.ErrFileNotFound) {
			return st, nil
		}
		return nil, err
	}
	return st, nil
}

// NewRootCmd creates the confctl root command with all subcommands attached.
// Output and error streams are injected so tests can capture them.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	app := &App{Out: out, Err: errOut}

	var (
		file     string
		settings string
		verbose  bool
	)

	rootCmd := &cobra.Command{
		Use:   "confctl",
		Short: "Inspect and edit .cfg configuration files",
		Long: `confctl reads and writes line-oriented .cfg configuration files:
key/value pairs split across lines and semicolon fragments, an optional
@annotation declaration on the first line, and // comments.

Syntax characters and auto-create behavior are customized through a
.confctl.yaml settings file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cliconfig.Load(settings)
			if err != nil {
				return err
			}
			app.File = file
			app.Config = cfg
			app.Metrics = metrics.NewCollector()

			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			app.Logger = slog.New(slog.NewTextHandler(app.Err, &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&file, "file", "f", "config.cfg", "configuration file to operate on")
	rootCmd.PersistentFlags().StringVar(&settings, "settings", cliconfig.DefaultPath, "confctl settings file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log parse warnings and reload activity")

	rootCmd.AddCommand(
		NewGetCmd(app),
		NewSetCmd(app),
		NewUnsetCmd(app),
		NewAnnotateCmd(app),
		NewListCmd(app),
		NewConvertCmd(app),
		NewWatchCmd(app),
	)

	return rootCmd
}

// Execute runs the root command against os.Stdout and os.Stderr.
func Execute() error {
	return NewRootCmd(os.Stdout, os.Stderr).Execute()
}
