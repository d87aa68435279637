package marshaller

import (
	"context"
	"log/slog"

	"github.com/speakeasy-api/wes/values"
)

// Validator checks a wire value against a schema before it is deserialized.
// It returns validation findings, and an error only when validation itself
// could not run.
type Validator interface {
	Validate(ctx context.Context, s *Schema, raw *values.Value) ([]error, error)
}

type Option func(o *options)

type options struct {
	logger    *slog.Logger
	validator Validator
}

// WithLogger reports ignored keys and raw pass-through values at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStrict validates the wire value with v and returns its findings.
// The model is still populated.
func WithStrict(v Validator) Option {
	return func(o *options) {
		o.validator = v
	}
}

func getOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}
