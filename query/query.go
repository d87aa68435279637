// Package query evaluates JSONPath expressions against parsed wire documents.
package query

import (
	"fmt"

	"github.com/speakeasy-api/jsonpath/pkg/jsonpath"
	"github.com/speakeasy-api/wes/values"
	"github.com/speakeasy-api/wes/yml"
	"github.com/vmware-labs/yaml-jsonpath/pkg/yamlpath"
	"gopkg.in/yaml.v3"
)

// Queryable is an interface for querying YAML nodes using JSONPath expressions.
type Queryable interface {
	Query(root *yaml.Node) []*yaml.Node
}

type yamlPathQueryable struct {
	path *yamlpath.Path
}

func (y yamlPathQueryable) Query(root *yaml.Node) []*yaml.Node {
	if y.path == nil {
		return []*yaml.Node{}
	}
	// errors aren't actually possible from yamlpath.
	result, _ := y.path.Find(root)
	return result
}

type rfcJSONPathQueryable struct {
	path *jsonpath.JSONPath
}

func (r rfcJSONPathQueryable) Query(root *yaml.Node) []*yaml.Node {
	return r.path.Query(root)
}

// NewPath compiles a JSONPath expression. RFC 9535 syntax is used unless
// legacy is set, in which case the older yamlpath dialect applies.
func NewPath(expr string, legacy bool) (Queryable, error) {
	if legacy {
		path, err := yamlpath.NewPath(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid legacy jsonpath %s: %w", expr, err)
		}
		return yamlPathQueryable{path: path}, nil
	}

	path, err := jsonpath.NewPath(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath %s: %w", expr, err)
	}
	return rfcJSONPathQueryable{path: path}, nil
}

// Values runs q against v and converts the matched nodes back to wire values.
// Matches keep pointing at the nodes of v when v was parsed from a document.
func Values(q Queryable, v *values.Value) ([]*values.Value, error) {
	root := v.Node()
	if root == nil {
		root = v.ToNode()
	}

	// both dialects resolve $ against a document node
	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{yml.UnwrapDocument(root)}}

	nodes := q.Query(doc)
	out := make([]*values.Value, 0, len(nodes))
	for _, node := range nodes {
		match, err := values.FromNode(node)
		if err != nil {
			return nil, err
		}
		out = append(out, match)
	}
	return out, nil
}
