package commands

import (
	"fmt"

	"github.com/speakeasy-api/wes/cmd/wesmodel/internal/config"
	"github.com/speakeasy-api/wes/jsonpointer"
	"github.com/spf13/cobra"
)

func newGetCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <pointer> [file]",
		Short: "Print the value at a JSON pointer",
		Long: `Print the value a JSON pointer (RFC 6901) refers to in a document.

Example:
  wesmodel get /request/workflow_params run.json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pointer := jsonpointer.JSONPointer(args[0])
			if err := pointer.Validate(); err != nil {
				return err
			}

			name := documentArgs(args[1:])[0]
			raw, data, err := a.readValue(name)
			if err != nil {
				return err
			}

			target, err := jsonpointer.GetTarget(raw, pointer)
			if err != nil {
				return fmt.Errorf("%s: %w", displayName(name), err)
			}

			return a.writeValue(cmd.Context(), cmd.OutOrStdout(), target, data)
		},
	}

	cmd.Flags().String(config.FormatKey, "", "output format: json or yaml (default is the input format)")
	cmd.Flags().Int(config.IndentKey, 0, "output indentation (default is the input indentation)")

	return cmd
}
