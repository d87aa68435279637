// Package values provides Value, a tagged variant holding a single dynamically
// typed wire value (null, bool, number, string, sequence or string keyed map).
//
// Values are produced by parsing JSON or YAML documents and are consumed by the
// schema-driven marshaller. A nil *Value means "absent"; an explicit JSON null
// is represented by a Value of KindNull.
package values

import (
	"strconv"

	"github.com/speakeasy-api/wes/errors"
	"github.com/speakeasy-api/wes/sequencedmap"
	"gopkg.in/yaml.v3"
)

const (
	// ErrUnsupportedNode is returned when a yaml node cannot be represented as a Value.
	ErrUnsupportedNode = errors.Error("unsupported node")
	// ErrUnsupportedType is returned when a Go value cannot be represented as a Value.
	ErrUnsupportedType = errors.Error("unsupported type")
	// ErrEmptyDocument is returned when parsing input that contains no document.
	ErrEmptyDocument = errors.Error("empty document")
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindSequence
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	case KindFloat:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "array"
	case KindMap:
		return "object"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a single wire value. The zero Value is a null.
type Value struct {
	kind   Kind
	b      bool
	i      int64
	f      float64
	s      string
	items  []*Value
	fields *sequencedmap.Map[string, *Value]

	// node is the yaml node the value was decoded from, nil when built in memory.
	node *yaml.Node
}

func Null() *Value {
	return &Value{kind: KindNull}
}

func Bool(b bool) *Value {
	return &Value{kind: KindBool, b: b}
}

func Int(i int64) *Value {
	return &Value{kind: KindInt, i: i}
}

func Float(f float64) *Value {
	return &Value{kind: KindFloat, f: f}
}

func String(s string) *Value {
	return &Value{kind: KindString, s: s}
}

// Sequence creates an ordered sequence value. nil items are stored as nulls.
func Sequence(items ...*Value) *Value {
	v := &Value{kind: KindSequence, items: make([]*Value, len(items))}
	for i, item := range items {
		v.items[i] = orNull(item)
	}
	return v
}

// Mapping creates a map value from the given fields, keeping their order.
func Mapping(fields ...*sequencedmap.Element[string, *Value]) *Value {
	m := sequencedmap.NewWithCapacity[string, *Value](len(fields))
	for _, f := range fields {
		m.Set(f.Key, orNull(f.Value))
	}
	return &Value{kind: KindMap, fields: m}
}

// Field is shorthand for building Mapping arguments.
func Field(key string, value *Value) *sequencedmap.Element[string, *Value] {
	return sequencedmap.NewElem(key, value)
}

func orNull(v *Value) *Value {
	if v == nil {
		return Null()
	}
	return v
}

// Clone returns a deep copy of v that shares no sequence or map storage with
// it. Source nodes are kept since they are never modified. A nil Value clones
// to nil.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}

	c := *v
	switch v.kind {
	case KindSequence:
		c.items = make([]*Value, len(v.items))
		for i, item := range v.items {
			c.items[i] = orNull(item.Clone())
		}
	case KindMap:
		c.fields = cloneFields(v.fields)
	}
	return &c
}

func cloneFields(fields *sequencedmap.Map[string, *Value]) *sequencedmap.Map[string, *Value] {
	return sequencedmap.From(func(yield func(string, *Value) bool) {
		for k, item := range fields.All() {
			if !yield(k, orNull(item.Clone())) {
				return
			}
		}
	})
}

// Kind returns the variant held. A nil Value reports KindNull.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

func (v *Value) IsNull() bool {
	return v.Kind() == KindNull
}

// IsNumber reports whether the value is an integer or a floating point number.
func (v *Value) IsNumber() bool {
	k := v.Kind()
	return k == KindInt || k == KindFloat
}

func (v *Value) AsBool() (bool, bool) {
	if v.Kind() != KindBool {
		return false, false
	}
	return v.b, true
}

// AsInt returns the integer held. Floats with an integral value are accepted.
func (v *Value) AsInt() (int64, bool) {
	switch v.Kind() {
	case KindInt:
		return v.i, true
	case KindFloat:
		if v.f == float64(int64(v.f)) {
			return int64(v.f), true
		}
	}
	return 0, false
}

// AsFloat returns the number held, converting integers.
func (v *Value) AsFloat() (float64, bool) {
	switch v.Kind() {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	}
	return 0, false
}

func (v *Value) AsString() (string, bool) {
	if v.Kind() != KindString {
		return "", false
	}
	return v.s, true
}

// Items returns the elements of a sequence, nil for other kinds.
func (v *Value) Items() []*Value {
	if v.Kind() != KindSequence {
		return nil
	}
	return v.items
}

// Fields returns the entries of a map, nil for other kinds.
func (v *Value) Fields() *sequencedmap.Map[string, *Value] {
	if v.Kind() != KindMap {
		return nil
	}
	return v.fields
}

// Len returns the number of elements of a sequence or entries of a map.
func (v *Value) Len() int {
	switch v.Kind() {
	case KindSequence:
		return len(v.items)
	case KindMap:
		return v.fields.Len()
	}
	return 0
}

// Get returns the entry for key of a map value.
func (v *Value) Get(key string) (*Value, bool) {
	return v.Fields().Get(key)
}

// Index returns the element at i of a sequence value.
func (v *Value) Index(i int) (*Value, bool) {
	items := v.Items()
	if i < 0 || i >= len(items) {
		return nil, false
	}
	return items[i], true
}

// Node returns the yaml node the value was decoded from, if any.
func (v *Value) Node() *yaml.Node {
	if v == nil {
		return nil
	}
	return v.node
}

// Line returns the source line of the value, or -1 when unknown.
func (v *Value) Line() int {
	if n := v.Node(); n != nil {
		return n.Line
	}
	return -1
}

// Column returns the source column of the value, or -1 when unknown.
func (v *Value) Column() int {
	if n := v.Node(); n != nil {
		return n.Column
	}
	return -1
}

func (v *Value) String() string {
	data, err := v.MarshalJSON()
	if err != nil {
		return "<" + v.Kind().String() + ": " + err.Error() + ">"
	}
	return string(data)
}
