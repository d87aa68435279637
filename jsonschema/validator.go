package jsonschema

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	jsValidator "github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"github.com/speakeasy-api/wes/errors"
	"github.com/speakeasy-api/wes/jsonpointer"
	"github.com/speakeasy-api/wes/marshaller"
	"github.com/speakeasy-api/wes/validation"
	"github.com/speakeasy-api/wes/values"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// Validator validates wire values against the JSON Schema generated for a
// model. Compiled schemas are cached per model name. It is safe for
// concurrent use.
type Validator struct {
	printer *message.Printer

	mu       sync.Mutex
	compiled map[string]*jsValidator.Schema
}

var _ marshaller.Validator = (*Validator)(nil)

type Option func(v *Validator)

// WithLanguage localizes validation messages.
func WithLanguage(tag language.Tag) Option {
	return func(v *Validator) {
		v.printer = message.NewPrinter(tag)
	}
}

func NewValidator(opts ...Option) *Validator {
	v := &Validator{
		printer:  message.NewPrinter(language.English),
		compiled: make(map[string]*jsValidator.Schema),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks raw against the schema generated for s and returns one
// validation.Error per failing leaf constraint, sorted by source location.
func (v *Validator) Validate(ctx context.Context, s *marshaller.Schema, raw *values.Value) ([]error, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sch, err := v.compile(s)
	if err != nil {
		return nil, err
	}

	data, err := raw.MarshalJSON()
	if err != nil {
		return []error{
			validation.NewTypeMismatchError(jsonpointer.Root, raw.Node(), "value is not valid json: %s", err.Error()),
		}, nil
	}

	instance, err := jsValidator.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode instance: %w", err)
	}

	err = sch.Validate(instance)
	if err == nil {
		return nil, nil
	}

	var validationErr *jsValidator.ValidationError
	if !errors.As(err, &validationErr) {
		return nil, fmt.Errorf("failed to validate %s: %w", s.Name(), err)
	}

	errs := v.getRootCauses(validationErr, raw)
	validation.SortValidationErrors(errs)

	return errs, nil
}

func (v *Validator) getRootCauses(err *jsValidator.ValidationError, raw *values.Value) []error {
	if len(err.Causes) == 0 {
		return []error{v.toValidationError(err, raw)}
	}

	errs := []error{}
	for _, cause := range err.Causes {
		errs = append(errs, v.getRootCauses(cause, raw)...)
	}
	return errs
}

func (v *Validator) toValidationError(cause *jsValidator.ValidationError, raw *values.Value) error {
	pointer := jsonpointer.PartsToJSONPointer(cause.InstanceLocation)

	var node *yaml.Node
	if target, err := jsonpointer.GetTarget(raw, pointer); err == nil {
		node = target.Node()
	}
	if node == nil {
		node = raw.Node()
	}

	location := strings.Join(cause.InstanceLocation, ".")
	if location == "" {
		location = "<root>"
	}
	msg := cause.ErrorKind.LocalizedString(v.printer)

	switch cause.ErrorKind.(type) {
	case *kind.Type:
		return validation.NewTypeMismatchError(pointer, node, "field %s %s", location, msg)
	case *kind.Required:
		return validation.NewMissingFieldError(pointer, node, "field %s %s", location, msg)
	default:
		return validation.NewValueError(pointer, node, "field %s %s", location, msg)
	}
}

func (v *Validator) compile(s *marshaller.Schema) (*jsValidator.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if sch, ok := v.compiled[s.Name()]; ok {
		return sch, nil
	}

	doc, err := Generate(s)
	if err != nil {
		return nil, err
	}

	data, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to encode schema for %s: %w", s.Name(), err)
	}

	jsAny, err := jsValidator.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode schema for %s: %w", s.Name(), err)
	}

	url := s.Name() + ".json"

	c := jsValidator.NewCompiler()
	c.DefaultDraft(jsValidator.Draft2020)
	if err := c.AddResource(url, jsAny); err != nil {
		return nil, marshaller.ErrMalformedSchema.Wrap(err)
	}

	sch, err := c.Compile(url)
	if err != nil {
		return nil, marshaller.ErrMalformedSchema.Wrap(err)
	}

	v.compiled[s.Name()] = sch
	return sch, nil
}
