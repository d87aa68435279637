package marshaller

import (
	"context"
	"log/slog"
	"reflect"
	"strconv"

	"github.com/speakeasy-api/wes/jsonpointer"
	"github.com/speakeasy-api/wes/values"
)

// Deserialize populates out from the wire map raw using out's schema.
//
// Every declared field whose wire key is present is converted per its declared
// type. Absent fields stay absent and keys the schema does not declare are
// ignored. out is replaced as a whole and only when no error is returned.
// The populated instance shares no mutable storage with raw.
// The returned findings are produced by a strict Validator and are empty in
// the default permissive mode.
func Deserialize(ctx context.Context, raw *values.Value, out Model, opts ...Option) ([]error, error) {
	if rv := reflect.ValueOf(out); out == nil || rv.Kind() != reflect.Pointer || rv.IsNil() {
		return nil, ErrMalformedSchema.Wrapf("deserialize target is nil")
	}

	s := out.Schema()
	if s == nil {
		return nil, ErrMalformedSchema.Wrapf("%T has no schema", out)
	}
	if !s.owns(out) {
		return nil, ErrMalformedSchema.Wrapf("schema %s does not describe %T", s.name, out)
	}
	if raw.Kind() != values.KindMap {
		return nil, ErrNotAMapping.Wrapf("cannot deserialize %s from %s", s.name, raw.Kind())
	}

	o := getOptions(opts)

	var findings []error
	if o.validator != nil {
		var err error
		findings, err = o.validator.Validate(ctx, s, raw)
		if err != nil {
			return nil, err
		}
	}

	d := &decoder{ctx: ctx, logger: o.logger}
	decoded, err := d.decodeModel(raw, s, nil)
	if err != nil {
		return nil, err
	}

	reflect.ValueOf(out).Elem().Set(reflect.ValueOf(decoded).Elem())

	return findings, nil
}

// DeserializeAs creates and populates an instance of the model registered under name.
func DeserializeAs(ctx context.Context, raw *values.Value, name string, opts ...Option) (Model, []error, error) {
	m, err := NewModel(name)
	if err != nil {
		return nil, nil, err
	}

	findings, err := Deserialize(ctx, raw, m, opts...)
	if err != nil {
		return nil, nil, err
	}

	return m, findings, nil
}

type decoder struct {
	ctx    context.Context
	logger *slog.Logger
}

func (d *decoder) decodeModel(raw *values.Value, s *Schema, path []string) (Model, error) {
	if err := d.ctx.Err(); err != nil {
		return nil, err
	}

	m := s.New()

	for name, f := range s.Fields() {
		wire, ok := raw.Get(f.key)
		if !ok {
			continue
		}

		fieldPath := append(path[:len(path):len(path)], f.key)

		v, fits, err := d.decodeValue(wire, f.typ, f.storage, fieldPath)
		if err != nil {
			return nil, err
		}

		acc := f.access(m)
		if !fits {
			d.logger.DebugContext(d.ctx, "keeping raw value for field",
				"model", s.name, "field", name, "pointer", pointerOf(fieldPath),
				"declared", f.typ.String(), "got", wire.Kind().String())
			acc.setRaw(wire.Clone())
			continue
		}
		acc.setReflect(v)
	}

	for key := range raw.Fields().Keys() {
		if _, ok := s.byKey[key]; !ok {
			d.logger.DebugContext(d.ctx, "ignoring undeclared key",
				"model", s.name, "key", key, "pointer", pointerOf(append(path[:len(path):len(path)], key)))
		}
	}

	return m, nil
}

// decodeValue converts wire into a value of storage. fits is false when the
// wire value does not have the shape of t, in which case the caller keeps it raw.
func (d *decoder) decodeValue(wire *values.Value, t Type, storage reflect.Type, path []string) (reflect.Value, bool, error) {
	out := reflect.New(storage).Elem()

	switch t.kind {
	case TypeKindString:
		s, ok := wire.AsString()
		if !ok {
			return out, false, nil
		}
		out.SetString(s)
	case TypeKindInteger:
		i, ok := wire.AsInt()
		if !ok {
			return out, false, nil
		}
		switch {
		case isUintKind(storage.Kind()):
			if i < 0 || out.OverflowUint(uint64(i)) {
				return out, false, nil
			}
			out.SetUint(uint64(i))
		default:
			if out.OverflowInt(i) {
				return out, false, nil
			}
			out.SetInt(i)
		}
	case TypeKindNumber:
		f, ok := wire.AsFloat()
		if !ok || out.OverflowFloat(f) {
			return out, false, nil
		}
		out.SetFloat(f)
	case TypeKindBoolean:
		b, ok := wire.AsBool()
		if !ok {
			return out, false, nil
		}
		out.SetBool(b)
	case TypeKindAny:
		out.Set(reflect.ValueOf(wire.Clone()))
	case TypeKindModel:
		if wire.Kind() != values.KindMap {
			return out, false, nil
		}
		s, err := lookupRef(t, storage, Lookup)
		if err != nil {
			return out, false, ErrMalformedSchema.Wrapf("%s: %w", pointerOf(path), err)
		}
		m, err := d.decodeModel(wire, s, path)
		if err != nil {
			return out, false, err
		}
		out.Set(reflect.ValueOf(m))
	case TypeKindList:
		if wire.Kind() != values.KindSequence {
			return out, false, nil
		}
		items := wire.Items()
		out.Set(reflect.MakeSlice(storage, len(items), len(items)))
		for i, item := range items {
			v, fits, err := d.decodeValue(item, t.Elem(), storage.Elem(), append(path[:len(path):len(path)], strconv.Itoa(i)))
			if err != nil || !fits {
				return out, false, err
			}
			out.Index(i).Set(v)
		}
	case TypeKindMap:
		if wire.Kind() != values.KindMap {
			return out, false, nil
		}
		out.Set(reflect.New(storage.Elem()))
		m := out.Interface().(untypedMap)
		m.Init()
		elemType := m.GetValueType()
		for key, item := range wire.Fields().All() {
			v, fits, err := d.decodeValue(item, t.Elem(), elemType, append(path[:len(path):len(path)], key))
			if err != nil || !fits {
				return out, false, err
			}
			if err := m.SetUntyped(key, v.Interface()); err != nil {
				return out, false, ErrMalformedSchema.Wrapf("%s: %w", pointerOf(path), err)
			}
		}
	default:
		return out, false, ErrMalformedSchema.Wrapf("%s: invalid type", pointerOf(path))
	}

	return out, true, nil
}

func pointerOf(path []string) string {
	return string(jsonpointer.PartsToJSONPointer(path))
}
