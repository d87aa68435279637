// Package jsonschema derives JSON Schema documents from registered model
// schemas and uses them to validate wire values in strict mode.
package jsonschema

import (
	"github.com/speakeasy-api/wes/marshaller"
	"github.com/speakeasy-api/wes/sequencedmap"
	"github.com/speakeasy-api/wes/values"
)

// Draft is the dialect of generated documents.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Generate returns a standalone JSON Schema document for s. The model and
// every model it references are emitted under $defs and the root refers to s.
// Undeclared properties are allowed since they are ignored when deserializing.
func Generate(s *marshaller.Schema) (*values.Value, error) {
	defs := sequencedmap.New[string, *values.Value]()
	if err := addDefinition(s, defs); err != nil {
		return nil, err
	}

	defFields := make([]*sequencedmap.Element[string, *values.Value], 0, defs.Len())
	for name, def := range defs.All() {
		defFields = append(defFields, values.Field(name, def))
	}

	return values.Mapping(
		values.Field("$schema", values.String(Draft)),
		values.Field("$ref", values.String(refTo(s.Name()))),
		values.Field("$defs", values.Mapping(defFields...)),
	), nil
}

func addDefinition(s *marshaller.Schema, defs *sequencedmap.Map[string, *values.Value]) error {
	if defs.Has(s.Name()) {
		return nil
	}
	// reserve the slot first so self references terminate
	defs.Set(s.Name(), nil)

	props := make([]*sequencedmap.Element[string, *values.Value], 0, s.Len())
	for _, f := range s.Fields() {
		prop, err := typeSchema(f.Type(), defs)
		if err != nil {
			return marshaller.ErrMalformedSchema.Wrapf("%s.%s: %w", s.Name(), f.Name(), err)
		}
		props = append(props, values.Field(f.Key(), prop))
	}

	def := []*sequencedmap.Element[string, *values.Value]{
		values.Field("title", values.String(s.Name())),
		values.Field("type", values.String("object")),
		values.Field("properties", values.Mapping(props...)),
	}

	if required := s.RequiredKeys(); len(required) > 0 {
		items := make([]*values.Value, len(required))
		for i, key := range required {
			items[i] = values.String(key)
		}
		def = append(def, values.Field("required", values.Sequence(items...)))
	}

	defs.Set(s.Name(), values.Mapping(def...))
	return nil
}

func typeSchema(t marshaller.Type, defs *sequencedmap.Map[string, *values.Value]) (*values.Value, error) {
	switch t.Kind() {
	case marshaller.TypeKindAny:
		return values.Mapping(), nil
	case marshaller.TypeKindModel:
		ref, ok := marshaller.Lookup(t.Model())
		if !ok {
			return nil, marshaller.ErrUnknownModel.Wrapf("%s", t.Model())
		}
		if err := addDefinition(ref, defs); err != nil {
			return nil, err
		}
		return values.Mapping(values.Field("$ref", values.String(refTo(t.Model())))), nil
	case marshaller.TypeKindList:
		items, err := typeSchema(t.Elem(), defs)
		if err != nil {
			return nil, err
		}
		return values.Mapping(
			values.Field("type", values.String(t.JSONType())),
			values.Field("items", items),
		), nil
	case marshaller.TypeKindMap:
		elem, err := typeSchema(t.Elem(), defs)
		if err != nil {
			return nil, err
		}
		return values.Mapping(
			values.Field("type", values.String(t.JSONType())),
			values.Field("additionalProperties", elem),
		), nil
	}

	fields := []*sequencedmap.Element[string, *values.Value]{
		values.Field("type", values.String(t.JSONType())),
	}
	if allowed := t.EnumValues(); len(allowed) > 0 {
		items := make([]*values.Value, len(allowed))
		for i, v := range allowed {
			items[i] = values.String(v)
		}
		fields = append(fields, values.Field("enum", values.Sequence(items...)))
	}
	return values.Mapping(fields...), nil
}

func refTo(name string) string {
	return "#/$defs/" + name
}
