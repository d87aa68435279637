package values

import (
	"encoding/json"
	"math"
	"reflect"
	"slices"
	"strconv"

	"github.com/speakeasy-api/wes/sequencedmap"
)

// FromAny converts a plain Go value into a Value. Supported inputs are nil,
// booleans, integer and float kinds, strings, json.Number, slices, string
// keyed maps (keys are sorted), ordered sequencedmap maps and *Value itself.
func FromAny(in any) (*Value, error) {
	switch t := in.(type) {
	case nil:
		return Null(), nil
	case *Value:
		return orNull(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, ErrUnsupportedType.Wrapf("json number %q: %w", t.String(), err)
		}
		return Float(f), nil
	case *sequencedmap.Map[string, any]:
		if t == nil {
			return Null(), nil
		}
		fields := sequencedmap.NewWithCapacity[string, *Value](t.Len())
		for k, e := range t.All() {
			v, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			fields.Set(k, v)
		}
		return &Value{kind: KindMap, fields: fields}, nil
	case *sequencedmap.Map[string, *Value]:
		if t == nil {
			return Null(), nil
		}
		return &Value{kind: KindMap, fields: cloneFields(t)}, nil
	}

	return fromReflect(reflect.ValueOf(in))
}

func fromReflect(rv reflect.Value) (*Value, error) {
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Float(float64(u)), nil
		}
		return Int(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return FromAny(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null(), nil
		}
		items := make([]*Value, rv.Len())
		for i := range items {
			item, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			items[i] = item
		}
		return &Value{kind: KindSequence, items: items}, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, ErrUnsupportedType.Wrapf("map key type %s", rv.Type().Key())
		}
		if rv.IsNil() {
			return Null(), nil
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		slices.Sort(keys)

		fields := sequencedmap.NewWithCapacity[string, *Value](len(keys))
		for _, k := range keys {
			v, err := FromAny(rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).Interface())
			if err != nil {
				return nil, err
			}
			fields.Set(k, v)
		}
		return &Value{kind: KindMap, fields: fields}, nil
	default:
		return nil, ErrUnsupportedType.Wrapf("%s", rv.Type())
	}
}

// Interface converts the value into plain Go values: nil, bool, int64,
// float64, string, []any and map[string]any.
func (v *Value) Interface() any {
	switch v.Kind() {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindSequence:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.Interface()
		}
		return out
	case KindMap:
		out := make(map[string]any, v.fields.Len())
		for k, item := range v.fields.All() {
			out[k] = item.Interface()
		}
		return out
	default:
		return nil
	}
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	for _, c := range s {
		if c == '.' || c == 'e' || c == 'E' {
			return s
		}
	}
	// keep the float-ness visible so a re-read yields a float again
	return s + ".0"
}
