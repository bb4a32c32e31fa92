package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/franku1122/confmanager/store"
)

// NewGetCmd creates the get command.
func NewGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print the value of a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.openStore(true)
			if err != nil {
				return err
			}
			value, ok := st.LoadedValue(args[0])
			if !ok {
				return fmt.Errorf("cli: key %q: %w", args[0], store.ErrNotFound)
			}
			fmt.Fprintln(app.Out, value)
			return nil
		},
	}
}
