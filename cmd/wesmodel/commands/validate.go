package commands

import (
	"context"
	"fmt"

	"github.com/speakeasy-api/wes/cmd/wesmodel/internal/config"
	"github.com/speakeasy-api/wes/errors"
	"github.com/speakeasy-api/wes/marshaller"
	"github.com/spf13/cobra"
)

type validateResult struct {
	name     string
	findings []error
	err      error
}

func newValidateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <model> [file...]",
		Short: "Validate documents against a model",
		Long: `Validate each document against the JSON Schema derived from the given model.

This command checks:
- Required fields are present
- Field values have the declared primitive, list or map types
- Enumerated fields hold one of the allowed values

Documents are validated concurrently and reported in argument order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runValidate(cmd, args[0], documentArgs(args[1:]))
		},
	}

	cmd.Flags().Int(config.ConcurrencyKey, 4, "number of documents validated at once")

	return cmd
}

func (a *app) runValidate(cmd *cobra.Command, model string, names []string) error {
	ctx := cmd.Context()

	if _, err := lookupModel(model); err != nil {
		return err
	}

	results := make([]validateResult, len(names))
	err := a.forEachDocument(ctx, names, func(ctx context.Context, i int, name string) {
		results[i] = a.validateDocument(ctx, model, name)
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	invalid := 0
	for _, res := range results {
		name := displayName(res.name)
		switch {
		case res.err != nil:
			invalid++
			fmt.Fprintf(out, "❌ %s could not be validated: %v\n", name, res.err)
		case len(res.findings) == 0:
			fmt.Fprintf(out, "✅ %s is a valid %s - 0 errors\n", name, model)
		default:
			invalid++
			fmt.Fprintf(out, "❌ %s is an invalid %s - %d errors:\n\n", name, model, len(res.findings))
			fmt.Fprint(out, formatValidationErrors(res.findings))
		}
	}

	if invalid > 0 {
		return errors.New("validation failed")
	}
	return nil
}

func (a *app) validateDocument(ctx context.Context, model, name string) validateResult {
	res := validateResult{name: name}

	raw, _, err := a.readValue(name)
	if err != nil {
		res.err = err
		return res
	}

	_, res.findings, res.err = marshaller.DeserializeAs(ctx, raw, model, a.decodeOptions(true)...)
	return res
}
