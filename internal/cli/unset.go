package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/franku1122/confmanager/store"
)

// NewUnsetCmd creates the unset command.
func NewUnsetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a key and save the file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.openStore(true)
			if err != nil {
				return err
			}
			if err := st.RemoveLoadedValue(args[0]); err != nil {
				return err
			}
			if err := st.Save(app.File, store.SaveOptions{}); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "%s removed from %s\n", args[0], app.File)
			return nil
		},
	}
}
