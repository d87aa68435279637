package commands

import (
	"github.com/speakeasy-api/wes/cmd/wesmodel/internal/config"
	"github.com/speakeasy-api/wes/jsonschema"
	"github.com/spf13/cobra"
)

func newSchemaCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema <model>",
		Short: "Print the JSON Schema of a model",
		Long: `Print the draft 2020-12 JSON Schema derived from the given model.

Nested models are emitted under $defs. This is the schema documents are
checked against by validate and decode --strict.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := lookupModel(args[0])
			if err != nil {
				return err
			}

			doc, err := jsonschema.Generate(s)
			if err != nil {
				return err
			}

			return a.writeValue(cmd.Context(), cmd.OutOrStdout(), doc, nil)
		},
	}

	cmd.Flags().String(config.FormatKey, "", "output format: json or yaml (default json)")
	cmd.Flags().Int(config.IndentKey, 0, "output indentation (default 2)")

	return cmd
}
