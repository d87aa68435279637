package commands

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/speakeasy-api/wes/cmd/wesmodel/internal/config"
	"github.com/speakeasy-api/wes/cmd/wesmodel/internal/logging"
	"github.com/speakeasy-api/wes/errors"
	"github.com/speakeasy-api/wes/jsonschema"
	"github.com/speakeasy-api/wes/marshaller"
	"github.com/speakeasy-api/wes/system"
	"github.com/speakeasy-api/wes/values"
	"github.com/speakeasy-api/wes/yml"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// app is the state shared by the commands of one invocation.
type app struct {
	fsys   system.WritableVirtualFS
	stdin  io.Reader
	cfg    *config.Config
	logger *logging.Logger

	validatorOnce sync.Once
	validator     *jsonschema.Validator
}

func (a *app) load(cmd *cobra.Command, configDir string) error {
	flags := cmd.Flags()

	verbose, _ := flags.GetBool("verbose")
	quiet, _ := flags.GetBool("quiet")
	a.logger = logging.ForFlags(verbose, quiet, cmd.ErrOrStderr())
	a.stdin = cmd.InOrStdin()

	cfgFile, _ := flags.GetString("config")
	cfg, err := config.LoadConfig(cfgFile, configDir, flags)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if used := cfg.ConfigFileUsed(); used != "" {
		a.logger.Debug("loaded config", "file", used)
	}
	return nil
}

func (a *app) strictValidator() *jsonschema.Validator {
	a.validatorOnce.Do(func() {
		a.validator = jsonschema.NewValidator(jsonschema.WithLanguage(a.cfg.LanguageTag()))
	})
	return a.validator
}

func (a *app) decodeOptions(strict bool) []marshaller.Option {
	opts := []marshaller.Option{marshaller.WithLogger(a.logger.Logger)}
	if strict {
		opts = append(opts, marshaller.WithStrict(a.strictValidator()))
	}
	return opts
}

// readValue reads and parses the document name, returning the raw bytes too
// so the output can follow the input's layout.
func (a *app) readValue(name string) (*values.Value, []byte, error) {
	data, err := system.ReadDocument(a.fsys, a.stdin, name)
	if err != nil {
		return nil, nil, err
	}

	v, _, err := values.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", name, err)
	}
	return v, data, nil
}

// writeValue writes v in the layout of the input document data, subject to
// the configured overrides. A nil data uses the defaults.
func (a *app) writeValue(ctx context.Context, w io.Writer, v *values.Value, data []byte) error {
	ctx = yml.ContextWithConfig(ctx, a.cfg.OutputConfig(data))
	return marshaller.WriteValue(ctx, v, w)
}

// forEachDocument runs fn for every document, at most cfg.Concurrency at a
// time. fn reports per document failures through its own result so that one
// bad document does not stop the others.
func (a *app) forEachDocument(ctx context.Context, names []string, fn func(ctx context.Context, i int, name string)) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Concurrency)

	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(ctx, i, name)
			return nil
		})
	}

	return g.Wait()
}

// documentArgs returns the document names of a command, standard input when none are given.
func documentArgs(args []string) []string {
	if len(args) == 0 {
		return []string{system.Stdin}
	}
	return args
}

func lookupModel(name string) (*marshaller.Schema, error) {
	s, ok := marshaller.Lookup(name)
	if ok {
		return s, nil
	}

	known := make([]string, 0)
	for _, s := range marshaller.Schemas() {
		known = append(known, s.Name())
	}
	return nil, marshaller.ErrUnknownModel.Wrapf("%s, known models: %s", name, strings.Join(known, ", "))
}

func displayName(name string) string {
	if name == system.Stdin {
		return "<stdin>"
	}
	return name
}

// formatValidationErrors renders a numbered list, one line per error with
// joined errors listed part by part.
func formatValidationErrors(validationErrors []error) string {
	var flat []error
	for _, err := range validationErrors {
		flat = append(flat, errors.UnwrapErrors(err)...)
	}

	var sb strings.Builder
	indexWidth := len(strconv.Itoa(len(flat)))

	for i, validationErr := range flat {
		fmt.Fprintf(&sb, "%*d. %s\n", indexWidth, i+1, validationErr.Error())
	}

	return sb.String()
}
