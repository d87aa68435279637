package marshaller

import (
	"context"
	"reflect"
	"strconv"

	"github.com/speakeasy-api/wes/sequencedmap"
	"github.com/speakeasy-api/wes/values"
)

type fieldElem = sequencedmap.Element[string, *values.Value]

// Serialize converts in to a wire map holding its present fields in schema
// order under their wire keys. Raw pass-through values are emitted unchanged.
// A nil model serializes to null.
func Serialize(ctx context.Context, in Model) (*values.Value, error) {
	if isNilModel(in) {
		return values.Null(), nil
	}

	s := in.Schema()
	if s == nil {
		return nil, ErrMalformedSchema.Wrapf("%T has no schema", in)
	}
	if !s.owns(in) {
		return nil, ErrMalformedSchema.Wrapf("schema %s does not describe %T", s.name, in)
	}

	return encodeModel(ctx, in, s, nil)
}

func encodeModel(ctx context.Context, m Model, s *Schema, path []string) (*values.Value, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fields := make([]*fieldElem, 0, s.Len())

	for _, f := range s.Fields() {
		acc := f.access(m)
		if !acc.isPresent() {
			continue
		}

		if raw := acc.rawValue(); raw != nil {
			fields = append(fields, values.Field(f.key, raw.Clone()))
			continue
		}

		v, err := encodeValue(ctx, acc.reflectValue(), f.typ, append(path[:len(path):len(path)], f.key))
		if err != nil {
			return nil, err
		}
		fields = append(fields, values.Field(f.key, v))
	}

	return values.Mapping(fields...), nil
}

func encodeValue(ctx context.Context, rv reflect.Value, t Type, path []string) (*values.Value, error) {
	switch t.kind {
	case TypeKindString:
		return values.String(rv.String()), nil
	case TypeKindInteger:
		if isUintKind(rv.Kind()) {
			return values.FromAny(rv.Uint())
		}
		return values.Int(rv.Int()), nil
	case TypeKindNumber:
		return values.Float(rv.Float()), nil
	case TypeKindBoolean:
		return values.Bool(rv.Bool()), nil
	case TypeKindAny:
		v, _ := rv.Interface().(*values.Value)
		if v == nil {
			return values.Null(), nil
		}
		return v.Clone(), nil
	case TypeKindModel:
		if rv.IsNil() {
			return values.Null(), nil
		}
		m := rv.Interface().(Model)
		s := m.Schema()
		if s == nil {
			return nil, ErrMalformedSchema.Wrapf("%s: %T has no schema", pointerOf(path), m)
		}
		return encodeModel(ctx, m, s, path)
	case TypeKindList:
		if rv.IsNil() {
			return values.Null(), nil
		}
		items := make([]*values.Value, rv.Len())
		for i := range items {
			item, err := encodeValue(ctx, rv.Index(i), t.Elem(), append(path[:len(path):len(path)], strconv.Itoa(i)))
			if err != nil {
				return nil, err
			}
			items[i] = item
		}
		return values.Sequence(items...), nil
	case TypeKindMap:
		if rv.IsNil() {
			return values.Null(), nil
		}
		m := rv.Interface().(untypedMap)
		fields := make([]*fieldElem, 0, m.Len())
		for k, item := range m.AllUntyped() {
			key := k.(string)
			v, err := encodeValue(ctx, reflect.ValueOf(item), t.Elem(), append(path[:len(path):len(path)], key))
			if err != nil {
				return nil, err
			}
			fields = append(fields, values.Field(key, v))
		}
		return values.Mapping(fields...), nil
	default:
		return nil, ErrMalformedSchema.Wrapf("%s: invalid type", pointerOf(path))
	}
}
