// Package json provides utilities for writing wire values as JSON.
package json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/speakeasy-api/wes/values"
	"gopkg.in/yaml.v3"
)

// YAMLToJSON will convert the provided YAML node to JSON in a stable way not reordering keys.
func YAMLToJSON(node *yaml.Node, indentation int, buffer io.Writer) error {
	v, err := values.FromNode(node)
	if err != nil {
		return err
	}

	return WriteValue(v, strings.Repeat(" ", indentation), buffer)
}

// WriteValue writes v as JSON followed by a newline, using indent for each
// nesting level. An empty indent produces compact output.
func WriteValue(v *values.Value, indent string, buffer io.Writer) error {
	data, err := v.MarshalJSON()
	if err != nil {
		return err
	}

	if indent != "" {
		var out bytes.Buffer
		if err := json.Indent(&out, data, "", indent); err != nil {
			return fmt.Errorf("failed to indent json: %w", err)
		}
		data = out.Bytes()
	}

	data = append(data, '\n')
	if _, err := buffer.Write(data); err != nil {
		return fmt.Errorf("failed to write json: %w", err)
	}

	return nil
}
