package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/franku1122/confmanager/store"
)

// NewAnnotateCmd creates the annotate command.
func NewAnnotateCmd(app *App) *cobra.Command {
	var remove bool

	cmd := &cobra.Command{
		Use:   "annotate <name>",
		Short: "Add or remove an annotation and save the file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.openStore(!remove)
			if err != nil {
				return err
			}

			verb := "added to"
			if remove {
				if err := st.RemoveLoadedAnnotation(args[0]); err != nil {
					return err
				}
				verb = "removed from"
			} else if err := st.AddEditedAnnotation(args[0], true); err != nil {
				return err
			}

			if err := st.Save(app.File, store.SaveOptions{ApplyFirst: !remove}); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "annotation %s %s %s\n", args[0], verb, app.File)
			return nil
		},
	}

	cmd.Flags().BoolVar(&remove, "remove", false, "remove the annotation instead of adding it")
	return cmd
}
