package marshaller

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/speakeasy-api/wes/values"
)

// TypeKind identifies the shape of a declared field type.
type TypeKind int

const (
	TypeKindInvalid TypeKind = iota
	TypeKindString
	TypeKindInteger
	TypeKindNumber
	TypeKindBoolean
	TypeKindAny
	TypeKindModel
	TypeKindList
	TypeKindMap
)

// Type is the declared semantic type of a model field. Types are immutable values.
type Type struct {
	kind  TypeKind
	model string
	elem  *Type
	enum  []string
}

func String() Type  { return Type{kind: TypeKindString} }
func Integer() Type { return Type{kind: TypeKindInteger} }
func Number() Type  { return Type{kind: TypeKindNumber} }
func Boolean() Type { return Type{kind: TypeKindBoolean} }

// Any accepts every wire value, stored as *values.Value.
func Any() Type { return Type{kind: TypeKindAny} }

// Enum is a string restricted to the given values. The restriction is only
// enforced by strict validation.
func Enum(allowed ...string) Type {
	return Type{kind: TypeKindString, enum: slices.Clone(allowed)}
}

// Ref is a nested model registered under name.
func Ref(name string) Type {
	return Type{kind: TypeKindModel, model: name}
}

// ListOf is an ordered sequence of elem.
func ListOf(elem Type) Type {
	return Type{kind: TypeKindList, elem: &elem}
}

// MapOf is a string keyed map of elem.
func MapOf(elem Type) Type {
	return Type{kind: TypeKindMap, elem: &elem}
}

func (t Type) Kind() TypeKind {
	return t.kind
}

func (t Type) IsZero() bool {
	return t.kind == TypeKindInvalid
}

// Model returns the referenced model name of a TypeKindModel type.
func (t Type) Model() string {
	return t.model
}

// Elem returns the element type of a list or map type, the zero Type otherwise.
func (t Type) Elem() Type {
	if t.elem == nil {
		return Type{}
	}
	return *t.elem
}

// EnumValues returns the allowed values of an enum, nil when unrestricted.
func (t Type) EnumValues() []string {
	return slices.Clone(t.enum)
}

// String renders the type the way generated model metadata spells it,
// e.g. str, list[Log] or dict(str, int).
func (t Type) String() string {
	switch t.kind {
	case TypeKindString:
		return "str"
	case TypeKindInteger:
		return "int"
	case TypeKindNumber:
		return "float"
	case TypeKindBoolean:
		return "bool"
	case TypeKindAny:
		return "object"
	case TypeKindModel:
		return t.model
	case TypeKindList:
		return "list[" + t.Elem().String() + "]"
	case TypeKindMap:
		return "dict(str, " + t.Elem().String() + ")"
	default:
		return "invalid"
	}
}

// JSONType returns the JSON Schema type keyword for the type, empty for Any.
func (t Type) JSONType() string {
	switch t.kind {
	case TypeKindString:
		return "string"
	case TypeKindInteger:
		return "integer"
	case TypeKindNumber:
		return "number"
	case TypeKindBoolean:
		return "boolean"
	case TypeKindModel, TypeKindMap:
		return "object"
	case TypeKindList:
		return "array"
	default:
		return ""
	}
}

// directRef returns the model referenced without an intervening list or map.
func (t Type) directRef() (string, bool) {
	if t.kind == TypeKindModel {
		return t.model, true
	}
	return "", false
}

var (
	valueType   = reflect.TypeFor[*values.Value]()
	modelType   = reflect.TypeFor[Model]()
	untypedType = reflect.TypeFor[untypedMap]()
)

// checkStorage reports whether values of the Go type storage can hold the type.
func (t Type) checkStorage(storage reflect.Type) error {
	switch t.kind {
	case TypeKindString:
		if storage.Kind() != reflect.String {
			return fmt.Errorf("%s requires a string kind, got %s", t, storage)
		}
	case TypeKindInteger:
		if !isIntKind(storage.Kind()) && !isUintKind(storage.Kind()) {
			return fmt.Errorf("%s requires an integer kind, got %s", t, storage)
		}
	case TypeKindNumber:
		if storage.Kind() != reflect.Float32 && storage.Kind() != reflect.Float64 {
			return fmt.Errorf("%s requires a float kind, got %s", t, storage)
		}
	case TypeKindBoolean:
		if storage.Kind() != reflect.Bool {
			return fmt.Errorf("%s requires a bool kind, got %s", t, storage)
		}
	case TypeKindAny:
		if storage != valueType {
			return fmt.Errorf("%s requires %s, got %s", t, valueType, storage)
		}
	case TypeKindModel:
		if t.model == "" {
			return fmt.Errorf("model reference without a name")
		}
		if storage.Kind() != reflect.Pointer || storage.Elem().Kind() != reflect.Struct || !storage.Implements(modelType) {
			return fmt.Errorf("%s requires a pointer to a model struct, got %s", t, storage)
		}
	case TypeKindList:
		if storage.Kind() != reflect.Slice {
			return fmt.Errorf("%s requires a slice, got %s", t, storage)
		}
		return t.Elem().checkStorage(storage.Elem())
	case TypeKindMap:
		if storage.Kind() != reflect.Pointer || !storage.Implements(untypedType) {
			return fmt.Errorf("%s requires *sequencedmap.Map[string, V], got %s", t, storage)
		}
		m := reflect.New(storage.Elem()).Interface().(untypedMap)
		if m.GetKeyType() != reflect.TypeFor[string]() {
			return fmt.Errorf("%s requires string keys, got %s", t, m.GetKeyType())
		}
		return t.Elem().checkStorage(mapValueType(storage))
	default:
		return fmt.Errorf("invalid type")
	}

	if len(t.enum) > 0 && t.kind != TypeKindString {
		return fmt.Errorf("enum values are only supported on strings")
	}

	return nil
}

func isIntKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUintKind(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}
