package commands

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/speakeasy-api/wes/cmd/wesmodel/internal/config"
	"github.com/speakeasy-api/wes/marshaller"
	"github.com/speakeasy-api/wes/system"
	"github.com/speakeasy-api/wes/yml"
	"github.com/spf13/cobra"
)

type decodeResult struct {
	name     string
	output   []byte
	format   yml.OutputFormat
	findings []error
	err      error
}

func newDecodeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <model> [file...]",
		Short: "Normalize documents through a model",
		Long: `Deserialize each document into the given model and serialize it again.

The output keeps only the fields the model declares, in declaration order.
Values whose type does not match the declaration are passed through as is
unless --strict is set, in which case they are reported as validation errors.
The layout of the input (JSON or YAML, indentation) is kept unless --format
or --indent override it.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDecode(cmd, args[0], documentArgs(args[1:]))
		},
	}

	cmd.Flags().String(config.FormatKey, "", "output format: json or yaml (default is the input format)")
	cmd.Flags().Int(config.IndentKey, 0, "output indentation (default is the input indentation)")
	cmd.Flags().Bool(config.StrictKey, false, "validate documents against the model's JSON Schema")
	cmd.Flags().Int(config.ConcurrencyKey, 4, "number of documents processed at once")
	cmd.Flags().StringP("output", "o", "", "write each normalized document to this directory instead of stdout")

	return cmd
}

func (a *app) runDecode(cmd *cobra.Command, model string, names []string) error {
	ctx := cmd.Context()

	if _, err := lookupModel(model); err != nil {
		return err
	}
	outputDir, _ := cmd.Flags().GetString("output")

	results := make([]decodeResult, len(names))
	err := a.forEachDocument(ctx, names, func(ctx context.Context, i int, name string) {
		results[i] = a.decodeDocument(ctx, model, name)
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, res := range results {
		if res.err != nil {
			failed++
			a.logger.Error("failed to decode document", "file", displayName(res.name), "error", res.err)
			continue
		}
		if len(res.findings) > 0 {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s has %d validation errors:\n%s", displayName(res.name), len(res.findings), formatValidationErrors(res.findings))
		}

		if outputDir != "" {
			target := filepath.Join(outputDir, outputName(res))
			if err := a.fsys.WriteFile(target, res.output, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", target, err)
			}
			a.logger.Info("wrote normalized document", "file", target)
			continue
		}

		if len(names) > 1 && res.format == yml.OutputFormatYAML {
			fmt.Fprintln(out, "---")
		}
		if _, err := out.Write(res.output); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed to decode cleanly", failed, len(names))
	}
	return nil
}

func (a *app) decodeDocument(ctx context.Context, model, name string) decodeResult {
	res := decodeResult{name: name}

	raw, data, err := a.readValue(name)
	if err != nil {
		res.err = err
		return res
	}

	m, findings, err := marshaller.DeserializeAs(ctx, raw, model, a.decodeOptions(a.cfg.Strict)...)
	if err != nil {
		res.err = err
		return res
	}
	res.findings = findings

	v, err := marshaller.Serialize(ctx, m)
	if err != nil {
		res.err = err
		return res
	}

	var buf bytes.Buffer
	if err := a.writeValue(ctx, &buf, v, data); err != nil {
		res.err = err
		return res
	}
	res.output = buf.Bytes()
	res.format = a.cfg.OutputConfig(data).OutputFormat

	return res
}

func outputName(res decodeResult) string {
	ext := ".json"
	if res.format == yml.OutputFormatYAML {
		ext = ".yaml"
	}
	if res.name == system.Stdin {
		return "stdin" + ext
	}
	base := filepath.Base(res.name)
	return base[:len(base)-len(filepath.Ext(base))] + ext
}
