package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/speakeasy-api/wes/marshaller"
	"github.com/spf13/cobra"
)

func newTypesCommand(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types [model...]",
		Short: "List the registered models and their fields",
		Long: `List the registered models with the declared type of every field.

For each field the wire key is shown when it differs from the field name,
and fields that strict validation requires are marked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			schemas := marshaller.Schemas()
			if len(args) > 0 {
				schemas = schemas[:0:0]
				for _, name := range args {
					s, err := lookupModel(name)
					if err != nil {
						return err
					}
					schemas = append(schemas, s)
				}
			}

			if err := marshaller.CheckRegistry(); err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for i, s := range schemas {
				if i > 0 {
					fmt.Fprintln(tw)
				}
				fmt.Fprintln(tw, s.Name())
				for _, f := range s.Fields() {
					var notes string
					if f.Key() != f.Name() {
						notes += " key=" + f.Key()
					}
					if f.Required() {
						notes += " required"
					}
					fmt.Fprintf(tw, "  %s\t%s%s\n", f.Name(), f.Type(), notes)
				}
			}
			return tw.Flush()
		},
	}
}
