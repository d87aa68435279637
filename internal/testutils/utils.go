// Package testutils holds fixtures shared by package tests.
package testutils

import (
	"testing"

	"github.com/speakeasy-api/wes/values"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// ParseValue parses a JSON or YAML document and fails the test on error.
func ParseValue(t *testing.T, doc string) *values.Value {
	t.Helper()

	v, err := values.ParseBytes([]byte(doc))
	require.NoError(t, err, "document should parse")
	return v
}

// Scalar builds a positioned scalar node with the given core schema tag,
// e.g. "!!str" or "!!int".
func Scalar(tag, value string, line, column int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value, Line: line, Column: column}
}

// Mapping builds a positioned mapping from alternating key and value nodes.
func Mapping(line, column int, contents ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: contents, Line: line, Column: column}
}

func Sequence(line, column int, items ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: items, Line: line, Column: column}
}
