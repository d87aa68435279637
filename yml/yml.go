// Package yml contains helpers for building and inspecting yaml.v3 node trees,
// which serve as the parsed form of every wire document (JSON is read as YAML).
package yml

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// Core YAML tags produced by the node builders.
const (
	TagNull  = "!!null"
	TagBool  = "!!bool"
	TagInt   = "!!int"
	TagFloat = "!!float"
	TagStr   = "!!str"
	TagMap   = "!!map"
	TagSeq   = "!!seq"
)

func CreateStringNode(value string) *yaml.Node {
	return &yaml.Node{
		Value: value,
		Kind:  yaml.ScalarNode,
		Tag:   TagStr,
	}
}

func CreateIntNode(value int64) *yaml.Node {
	return &yaml.Node{
		Value: strconv.FormatInt(value, 10),
		Kind:  yaml.ScalarNode,
		Tag:   TagInt,
	}
}

func CreateFloatNode(value float64) *yaml.Node {
	return &yaml.Node{
		Value: strconv.FormatFloat(value, 'g', -1, 64),
		Kind:  yaml.ScalarNode,
		Tag:   TagFloat,
	}
}

func CreateBoolNode(value bool) *yaml.Node {
	return &yaml.Node{
		Value: strconv.FormatBool(value),
		Kind:  yaml.ScalarNode,
		Tag:   TagBool,
	}
}

func CreateNullNode() *yaml.Node {
	return &yaml.Node{
		Value: "null",
		Kind:  yaml.ScalarNode,
		Tag:   TagNull,
	}
}

// CreateMapNode creates a mapping node; content alternates key and value nodes.
func CreateMapNode(content []*yaml.Node) *yaml.Node {
	return &yaml.Node{
		Content: content,
		Kind:    yaml.MappingNode,
		Tag:     TagMap,
	}
}

func CreateSequenceNode(elements []*yaml.Node) *yaml.Node {
	return &yaml.Node{
		Content: elements,
		Kind:    yaml.SequenceNode,
		Tag:     TagSeq,
	}
}

// ResolveAlias follows alias nodes until a concrete node is reached.
func ResolveAlias(node *yaml.Node) *yaml.Node {
	if node == nil {
		return nil
	}

	if node.Kind == yaml.AliasNode {
		return ResolveAlias(node.Alias)
	}
	return node
}

// UnwrapDocument returns the single root of a document node, resolving aliases.
// Non-document nodes are returned resolved but otherwise unchanged.
func UnwrapDocument(node *yaml.Node) *yaml.Node {
	node = ResolveAlias(node)
	if node == nil || node.Kind != yaml.DocumentNode {
		return node
	}
	if len(node.Content) == 0 {
		return nil
	}
	return ResolveAlias(node.Content[0])
}

// NodeKindToString returns a human-readable name for a yaml.Kind for use in error messages.
func NodeKindToString(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "object"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
