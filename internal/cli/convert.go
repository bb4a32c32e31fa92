package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/franku1122/confmanager/convert"
	"github.com/franku1122/confmanager/logging"
	"github.com/franku1122/confmanager/store"
)

// NewConvertCmd creates the convert command.
func NewConvertCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert between .cfg and YAML",
		Long: `Convert translates a configuration file between the .cfg format and
YAML. The direction is taken from the input extension: a .yaml or .yml
input produces a .cfg output, anything else produces YAML.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, output := args[0], args[1]

			ext := strings.ToLower(filepath.Ext(input))
			if ext == ".yaml" || ext == ".yml" {
				data, err := os.ReadFile(input)
				if err != nil {
					return fmt.Errorf("cli: read %q: %w", input, err)
				}
				doc, err := convert.FromYAML(data)
				if err != nil {
					return err
				}
				// The staged document is the whole configuration, so the
				// store always starts from an empty loaded state.
				st, err := store.New(store.Options{
					Syntax:     app.Config.Syntax,
					Logger:     logging.Slog(app.Logger),
					Metrics:    app.Metrics,
					AutoCreate: true,
				})
				if err != nil {
					return err
				}
				if err := convert.Stage(st, doc); err != nil {
					return err
				}
				st.ApplyModified()
				if err := st.Save(output, store.SaveOptions{}); err != nil {
					return err
				}
			} else {
				st, err := app.newStore()
				if err != nil {
					return err
				}
				if err := st.Open(input); err != nil {
					return err
				}
				data, err := convert.ToYAML(st)
				if err != nil {
					return err
				}
				if err := os.WriteFile(output, data, 0o644); err != nil {
					return fmt.Errorf("cli: write %q: %w", output, err)
				}
			}

			fmt.Fprintf(app.Out, "converted %s to %s\n", input, output)
			return nil
		},
	}
}
