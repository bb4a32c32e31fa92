package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// NewListCmd creates the list command.
func NewListCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print all annotations and key/value pairs",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.openStore(true)
			if err != nil {
				return err
			}

			values := st.Values()
			annotations := st.Annotations()

			if asJSON {
				enc := json.NewEncoder(app.Out)
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					Annotations []string          `json:"annotations"`
					Values      map[string]string `json:"values"`
				}{annotations, values})
			}

			if len(annotations) > 0 {
				fmt.Fprintf(app.Out, "annotations: %s\n", strings.Join(annotations, ", "))
			}
			keys := make([]string, 0, len(values))
			for k := range values {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(app.Out, "%s%c%s\n", k, st.Syntax().PairSep, values[k])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output in JSON format")
	return cmd
}
