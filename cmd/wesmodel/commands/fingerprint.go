package commands

import (
	"context"
	"fmt"

	"github.com/speakeasy-api/wes/cmd/wesmodel/internal/config"
	"github.com/speakeasy-api/wes/hashing"
	"github.com/speakeasy-api/wes/marshaller"
	"github.com/spf13/cobra"
)

type fingerprintResult struct {
	name string
	hash string
	err  error
}

func newFingerprintCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint <model> [file...]",
		Short: "Print a stable hash of normalized documents",
		Long: `Print a fingerprint of each document after normalizing it through the given model.

Documents that normalize to the same fields and values share a fingerprint
regardless of key order, formatting or undeclared keys.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model := args[0]
			if _, err := lookupModel(model); err != nil {
				return err
			}

			names := documentArgs(args[1:])
			results := make([]fingerprintResult, len(names))
			err := a.forEachDocument(cmd.Context(), names, func(ctx context.Context, i int, name string) {
				results[i] = a.fingerprintDocument(ctx, model, name)
			})
			if err != nil {
				return err
			}

			for _, res := range results {
				if res.err != nil {
					return fmt.Errorf("%s: %w", displayName(res.name), res.err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", res.hash, displayName(res.name))
			}
			return nil
		},
	}

	cmd.Flags().Int(config.ConcurrencyKey, 4, "number of documents processed at once")

	return cmd
}

func (a *app) fingerprintDocument(ctx context.Context, model, name string) fingerprintResult {
	res := fingerprintResult{name: name}

	raw, _, err := a.readValue(name)
	if err != nil {
		res.err = err
		return res
	}

	m, _, err := marshaller.DeserializeAs(ctx, raw, model, a.decodeOptions(false)...)
	if err != nil {
		res.err = err
		return res
	}

	res.hash, res.err = hashing.HashModel(ctx, m)
	return res
}
