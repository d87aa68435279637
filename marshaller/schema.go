package marshaller

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/speakeasy-api/wes/sequencedmap"
)

// Model is implemented by every type with a declared schema. Implementations
// are pointers to structs whose attributes are Field values.
type Model interface {
	Schema() *Schema
}

// FieldDescriptor describes one declared attribute of a model.
type FieldDescriptor struct {
	name     string
	key      string
	typ      Type
	required bool
	storage  reflect.Type
	access   func(Model) fieldAccessor
}

// Name returns the public field name.
func (f *FieldDescriptor) Name() string {
	return f.name
}

// Key returns the wire key the field is read from and written to.
func (f *FieldDescriptor) Key() string {
	return f.key
}

func (f *FieldDescriptor) Type() Type {
	return f.typ
}

// Required reports whether strict validation demands the field.
func (f *FieldDescriptor) Required() bool {
	return f.required
}

// Property declares an attribute of model type M.
type Property[M any] struct {
	desc *FieldDescriptor
	get  func(*M) fieldAccessor
}

// PropOption customizes a declared property.
type PropOption func(*FieldDescriptor)

// WithKey overrides the wire key, which defaults to the field name.
func WithKey(key string) PropOption {
	return func(f *FieldDescriptor) {
		f.key = key
	}
}

// WithRequired marks the property as required by strict validation.
func WithRequired() PropOption {
	return func(f *FieldDescriptor) {
		f.required = true
	}
}

// Prop declares the attribute name of type typ stored in the Field returned by get.
func Prop[M any, V any](name string, typ Type, get func(*M) *Field[V], opts ...PropOption) Property[M] {
	desc := &FieldDescriptor{
		name:    name,
		key:     name,
		typ:     typ,
		storage: reflect.TypeFor[V](),
	}
	for _, opt := range opts {
		opt(desc)
	}

	p := Property[M]{desc: desc}
	if get != nil {
		p.get = func(m *M) fieldAccessor { return get(m) }
	}
	return p
}

// Schema is the static description of a model type: its ordered field
// schema and attribute map. Schemas are built once and never mutated.
type Schema struct {
	name   string
	goType reflect.Type
	fields *sequencedmap.Map[string, *FieldDescriptor]
	byKey  map[string]*FieldDescriptor
}

// NewSchema declares the schema of model type M, where *M implements Model.
// A malformed declaration is a programming error and panics.
func NewSchema[M any](name string, props ...Property[M]) *Schema {
	s, err := buildSchema(name, props)
	if err != nil {
		panic(ErrMalformedSchema.Wrapf("%s: %w", name, err))
	}
	return s
}

func buildSchema[M any](name string, props []Property[M]) (*Schema, error) {
	goType := reflect.TypeFor[M]()

	if name == "" {
		return nil, fmt.Errorf("model name must not be empty")
	}
	if goType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("model %s must be a struct, got %s", goType, goType.Kind())
	}
	if !reflect.PointerTo(goType).Implements(modelType) {
		return nil, fmt.Errorf("*%s does not implement marshaller.Model", goType)
	}

	s := &Schema{
		name:   name,
		goType: goType,
		fields: sequencedmap.NewWithCapacity[string, *FieldDescriptor](len(props)),
		byKey:  make(map[string]*FieldDescriptor, len(props)),
	}

	// accessors must each address a distinct Field of the model
	probe := new(M)
	seen := make(map[fieldAccessor]string, len(props))

	for _, p := range props {
		d := p.desc
		if d == nil || d.name == "" {
			return nil, fmt.Errorf("field name must not be empty")
		}
		if d.key == "" {
			return nil, fmt.Errorf("field %s: wire key must not be empty", d.name)
		}
		if s.fields.Has(d.name) {
			return nil, fmt.Errorf("duplicate field %s", d.name)
		}
		if other, ok := s.byKey[d.key]; ok {
			return nil, fmt.Errorf("fields %s and %s share wire key %s", other.name, d.name, d.key)
		}
		if err := d.typ.checkStorage(d.storage); err != nil {
			return nil, fmt.Errorf("field %s: %w", d.name, err)
		}
		if p.get == nil {
			return nil, fmt.Errorf("field %s: missing accessor", d.name)
		}

		acc := p.get(probe)
		if acc == nil || reflect.ValueOf(acc).IsNil() {
			return nil, fmt.Errorf("field %s: accessor returned nil", d.name)
		}
		if other, ok := seen[acc]; ok {
			return nil, fmt.Errorf("fields %s and %s share an accessor", other, d.name)
		}
		seen[acc] = d.name

		get := p.get
		d.access = func(m Model) fieldAccessor {
			return get(any(m).(*M))
		}

		s.fields.Set(d.name, d)
		s.byKey[d.key] = d
	}

	return s, nil
}

func (s *Schema) Name() string {
	return s.name
}

// GoType returns the struct type the schema describes.
func (s *Schema) GoType() reflect.Type {
	return s.goType
}

// Len returns the number of declared fields.
func (s *Schema) Len() int {
	return s.fields.Len()
}

// Fields iterates the declared fields in declaration order.
func (s *Schema) Fields() iter.Seq2[string, *FieldDescriptor] {
	return s.fields.All()
}

// Field returns the declared field with the public name.
func (s *Schema) Field(name string) (*FieldDescriptor, bool) {
	return s.fields.Get(name)
}

// FieldByKey returns the declared field read from the wire key.
func (s *Schema) FieldByKey(key string) (*FieldDescriptor, bool) {
	f, ok := s.byKey[key]
	return f, ok
}

// FieldTypes returns the field schema: public name to rendered type.
func (s *Schema) FieldTypes() *sequencedmap.Map[string, string] {
	m := sequencedmap.NewWithCapacity[string, string](s.Len())
	for name, f := range s.Fields() {
		m.Set(name, f.typ.String())
	}
	return m
}

// AttributeMap returns the public name to wire key mapping.
func (s *Schema) AttributeMap() *sequencedmap.Map[string, string] {
	m := sequencedmap.NewWithCapacity[string, string](s.Len())
	for name, f := range s.Fields() {
		m.Set(name, f.key)
	}
	return m
}

// RequiredKeys returns the wire keys of required fields in declaration order.
func (s *Schema) RequiredKeys() []string {
	var keys []string
	for _, f := range s.Fields() {
		if f.required {
			keys = append(keys, f.key)
		}
	}
	return keys
}

// New returns a fresh instance with every field absent.
func (s *Schema) New() Model {
	return reflect.New(s.goType).Interface().(Model)
}

func (s *Schema) owns(m Model) bool {
	t := reflect.TypeOf(m)
	return t != nil && t.Kind() == reflect.Pointer && t.Elem() == s.goType
}
