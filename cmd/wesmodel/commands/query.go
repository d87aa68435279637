package commands

import (
	"github.com/speakeasy-api/wes/cmd/wesmodel/internal/config"
	"github.com/speakeasy-api/wes/query"
	"github.com/speakeasy-api/wes/values"
	"github.com/spf13/cobra"
)

func newQueryCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <jsonpath> [file]",
		Short: "Print the values matching a JSONPath expression",
		Long: `Evaluate a JSONPath expression against a document and print the list of matches.

RFC 9535 syntax is used by default. Pass --legacy for the older dialect
that some existing tooling still emits.

Example:
  wesmodel query "$.runs[?@.state=='RUNNING'].run_id" runs.json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := query.NewPath(args[0], a.cfg.Legacy)
			if err != nil {
				return err
			}

			raw, data, err := a.readValue(documentArgs(args[1:])[0])
			if err != nil {
				return err
			}

			matches, err := query.Values(q, raw)
			if err != nil {
				return err
			}

			return a.writeValue(cmd.Context(), cmd.OutOrStdout(), values.Sequence(matches...), data)
		},
	}

	cmd.Flags().Bool(config.LegacyKey, false, "use the legacy JSONPath dialect")
	cmd.Flags().String(config.FormatKey, "", "output format: json or yaml (default is the input format)")
	cmd.Flags().Int(config.IndentKey, 0, "output indentation (default is the input indentation)")

	return cmd
}
