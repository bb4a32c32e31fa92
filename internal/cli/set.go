package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/franku1122/confmanager/store"
)

// NewSetCmd creates the set command.
func NewSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a key to a value and save the file",
		Long: `Set stages the key/value pair, merges it into the configuration
and writes the file back. With auto_create enabled (the default) a
missing file is created.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.openStore(false)
			if err != nil {
				return err
			}
			if err := st.AddEditedValue(args[0], args[1], true); err != nil {
				return err
			}
			if err := st.Save(app.File, store.SaveOptions{ApplyFirst: true}); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "%s set in %s\n", args[0], app.File)
			return nil
		},
	}
}
