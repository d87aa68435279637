package values

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/speakeasy-api/wes/sequencedmap"
	"github.com/speakeasy-api/wes/yml"
	"gopkg.in/yaml.v3"
)

// Parse reads a single JSON or YAML document and returns its root value along
// with the parsed node tree.
func Parse(r io.Reader) (*Value, *yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil, ErrEmptyDocument
		}
		return nil, nil, fmt.Errorf("failed to parse document: %w", err)
	}

	root := yml.UnwrapDocument(&doc)
	if root == nil {
		return nil, nil, ErrEmptyDocument
	}

	v, err := FromNode(root)
	if err != nil {
		return nil, nil, err
	}
	return v, &doc, nil
}

// ParseBytes is Parse over an in-memory document.
func ParseBytes(data []byte) (*Value, error) {
	v, _, err := Parse(bytes.NewReader(data))
	return v, err
}

// FromNode converts a yaml node tree into a Value. Aliases are followed and
// every produced Value remembers the node it came from for error reporting.
// Repeated map keys resolve to the last occurrence. Documents whose alias
// expansion dwarfs their own size are rejected with ErrUnsupportedNode.
func FromNode(node *yaml.Node) (*Value, error) {
	c := &converter{}
	return c.fromNode(node)
}

// maxAliasDepth bounds alias expansion so self-referencing documents terminate.
const maxAliasDepth = 64

// converter tracks how much of the produced tree came from alias expansion.
type converter struct {
	aliasDepth  int
	decodeCount int
	aliasCount  int
}

// allowedAliasRatio mirrors the budget yaml.v3 applies when decoding into Go
// values: small documents may be almost entirely aliases, large ones may not.
func allowedAliasRatio(decodeCount int) float64 {
	switch {
	case decodeCount <= 400_000:
		return 0.99
	case decodeCount >= 4_000_000:
		return 0.10
	default:
		return 0.99 - 0.89*(float64(decodeCount-400_000)/3_600_000)
	}
}

func (c *converter) count(node *yaml.Node) error {
	c.decodeCount++
	if c.aliasDepth > 0 {
		c.aliasCount++
	}
	if c.aliasCount > 100 && c.decodeCount > 1000 && float64(c.aliasCount)/float64(c.decodeCount) > allowedAliasRatio(c.decodeCount) {
		return ErrUnsupportedNode.Wrapf("document contains excessive aliasing at line %d", node.Line)
	}
	return nil
}

func (c *converter) fromNode(node *yaml.Node) (*Value, error) {
	if node == nil {
		return nil, ErrUnsupportedNode.Wrapf("nil node")
	}
	if err := c.count(node); err != nil {
		return nil, err
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) != 1 {
			return nil, ErrUnsupportedNode.Wrapf("expected 1 node in document, got %d", len(node.Content))
		}
		return c.fromNode(node.Content[0])
	case yaml.AliasNode:
		if c.aliasDepth >= maxAliasDepth {
			return nil, ErrUnsupportedNode.Wrapf("alias nesting exceeds %d at line %d", maxAliasDepth, node.Line)
		}
		c.aliasDepth++
		v, err := c.fromNode(node.Alias)
		c.aliasDepth--
		if err != nil {
			return nil, err
		}
		v.node = node
		return v, nil
	case yaml.MappingNode:
		return c.fromMappingNode(node)
	case yaml.SequenceNode:
		items := make([]*Value, len(node.Content))
		for i, n := range node.Content {
			item, err := c.fromNode(n)
			if err != nil {
				return nil, err
			}
			items[i] = item
		}
		return &Value{kind: KindSequence, items: items, node: node}, nil
	case yaml.ScalarNode:
		return fromScalarNode(node)
	default:
		return nil, ErrUnsupportedNode.Wrapf("unknown node kind %s at line %d", yml.NodeKindToString(node.Kind), node.Line)
	}
}

func (c *converter) fromMappingNode(node *yaml.Node) (*Value, error) {
	fields := sequencedmap.NewWithCapacity[string, *Value](len(node.Content) / 2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := yml.ResolveAlias(node.Content[i])
		if keyNode == nil || keyNode.Kind != yaml.ScalarNode {
			return nil, ErrUnsupportedNode.Wrapf("non-scalar mapping key at line %d", node.Content[i].Line)
		}

		value, err := c.fromNode(node.Content[i+1])
		if err != nil {
			return nil, err
		}

		fields.Set(keyNode.Value, value)
	}

	return &Value{kind: KindMap, fields: fields, node: node}, nil
}

func fromScalarNode(node *yaml.Node) (*Value, error) {
	var v *Value

	switch node.ShortTag() {
	case yml.TagNull:
		v = Null()
	case yml.TagBool, yml.TagInt, yml.TagFloat:
		var decoded any
		if err := node.Decode(&decoded); err != nil {
			return nil, ErrUnsupportedNode.Wrapf("line %d: %w", node.Line, err)
		}
		converted, err := FromAny(decoded)
		if err != nil {
			return nil, err
		}
		v = converted
	default:
		// !!str, !!timestamp, !!binary and custom tags keep their literal text,
		// which is what a JSON consumer would have received.
		v = String(node.Value)
	}

	v.node = node
	return v, nil
}

// ToNode converts the value into a freshly built yaml node tree.
func (v *Value) ToNode() *yaml.Node {
	switch v.Kind() {
	case KindBool:
		return yml.CreateBoolNode(v.b)
	case KindInt:
		return yml.CreateIntNode(v.i)
	case KindFloat:
		return createFloatNode(v.f)
	case KindString:
		return yml.CreateStringNode(v.s)
	case KindSequence:
		elements := make([]*yaml.Node, len(v.items))
		for i, item := range v.items {
			elements[i] = item.ToNode()
		}
		return yml.CreateSequenceNode(elements)
	case KindMap:
		content := make([]*yaml.Node, 0, v.fields.Len()*2)
		for key, value := range v.fields.All() {
			content = append(content, yml.CreateStringNode(key), value.ToNode())
		}
		return yml.CreateMapNode(content)
	default:
		return yml.CreateNullNode()
	}
}

func createFloatNode(f float64) *yaml.Node {
	n := yml.CreateFloatNode(f)
	switch {
	case math.IsNaN(f):
		n.Value = ".nan"
	case math.IsInf(f, 1):
		n.Value = ".inf"
	case math.IsInf(f, -1):
		n.Value = "-.inf"
	default:
		n.Value = formatFloat(f)
	}
	return n
}
