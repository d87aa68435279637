package marshaller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"reflect"

	"github.com/speakeasy-api/wes/json"
	"github.com/speakeasy-api/wes/values"
	"github.com/speakeasy-api/wes/yml"
	"gopkg.in/yaml.v3"
)

// Unmarshal reads a JSON or YAML document from r and deserializes it into out.
func Unmarshal(ctx context.Context, r io.Reader, out Model, opts ...Option) ([]error, error) {
	raw, _, err := values.Parse(r)
	if err != nil {
		return nil, err
	}

	return Deserialize(ctx, raw, out, opts...)
}

// Marshal serializes in and writes it to w in the format of the yml.Config
// carried by ctx, JSON by default.
func Marshal(ctx context.Context, in Model, w io.Writer) error {
	v, err := Serialize(ctx, in)
	if err != nil {
		return err
	}

	return WriteValue(ctx, v, w)
}

// WriteValue writes a wire value to w in the format of the yml.Config carried by ctx.
func WriteValue(ctx context.Context, v *values.Value, w io.Writer) error {
	cfg := yml.GetConfigFromContext(ctx)

	var buf bytes.Buffer

	switch cfg.OutputFormat {
	case yml.OutputFormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(max(cfg.Indentation, 2))
		if err := enc.Encode(v.ToNode()); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
	default:
		if err := json.WriteValue(v, cfg.Indent(), &buf); err != nil {
			return err
		}
	}

	data := buf.Bytes()
	if !cfg.TrailingNewline {
		data = bytes.TrimRight(data, "\n")
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Equal reports whether a and b are instances of the same model holding the
// same present fields with equal values.
func Equal(a, b Model) bool {
	if isNilModel(a) || isNilModel(b) {
		return isNilModel(a) && isNilModel(b)
	}
	if a.Schema() != b.Schema() {
		return false
	}

	ctx := context.Background()

	av, err := Serialize(ctx, a)
	if err != nil {
		return false
	}
	bv, err := Serialize(ctx, b)
	if err != nil {
		return false
	}

	return values.Equal(av, bv)
}

func isNilModel(m Model) bool {
	if m == nil {
		return true
	}
	rv := reflect.ValueOf(m)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
