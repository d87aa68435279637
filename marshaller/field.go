package marshaller

import (
	"iter"
	"reflect"

	"github.com/speakeasy-api/wes/values"
)

// Field holds one model attribute. The zero Field is absent.
//
// A wire value that does not fit the Go type V is kept verbatim as the raw
// value: the field is present, Get returns the zero value and serializing
// the model emits the raw value unchanged.
type Field[V any] struct {
	value   V
	present bool
	raw     *values.Value
}

// Get returns the stored value, the zero value when absent. nil safe.
func (f *Field[V]) Get() V {
	if f == nil {
		var zero V
		return zero
	}
	return f.value
}

// Set stores v and marks the field present, dropping any raw value.
func (f *Field[V]) Set(v V) {
	f.value = v
	f.present = true
	f.raw = nil
}

// IsPresent reports whether the field was set or decoded. nil safe.
func (f *Field[V]) IsPresent() bool {
	return f != nil && f.present
}

// Raw returns the verbatim wire value kept for a field whose value did not
// fit its Go type, nil otherwise.
func (f *Field[V]) Raw() *values.Value {
	if f == nil {
		return nil
	}
	return f.raw
}

// Clear makes the field absent again.
func (f *Field[V]) Clear() {
	*f = Field[V]{}
}

// fieldAccessor is the type erased view of a *Field[V] used by the schema engine.
type fieldAccessor interface {
	isPresent() bool
	rawValue() *values.Value
	reflectValue() reflect.Value
	setReflect(v reflect.Value)
	setRaw(raw *values.Value)
}

var _ fieldAccessor = (*Field[string])(nil)

func (f *Field[V]) isPresent() bool {
	return f.IsPresent()
}

func (f *Field[V]) rawValue() *values.Value {
	return f.Raw()
}

func (f *Field[V]) reflectValue() reflect.Value {
	return reflect.ValueOf(&f.value).Elem()
}

func (f *Field[V]) setReflect(v reflect.Value) {
	var value V
	reflect.ValueOf(&value).Elem().Set(v)
	f.Set(value)
}

func (f *Field[V]) setRaw(raw *values.Value) {
	var zero V
	f.value = zero
	f.present = true
	f.raw = raw
}

// untypedMap is implemented by *sequencedmap.Map and is how map typed fields
// are filled and walked without knowing their value type.
type untypedMap interface {
	Init()
	Len() int
	SetUntyped(key, value any) error
	AllUntyped() iter.Seq2[any, any]
	GetKeyType() reflect.Type
	GetValueType() reflect.Type
}
