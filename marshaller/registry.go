package marshaller

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/speakeasy-api/wes/errors"
)

const (
	// ErrMalformedSchema is returned when a model's schema is missing or references unknown models.
	ErrMalformedSchema = errors.Error("malformed schema")
	// ErrUnknownModel is returned when looking up a model name that was never registered.
	ErrUnknownModel = errors.Error("unknown model")
	// ErrNotAMapping is returned when deserializing a wire value that is not a map.
	ErrNotAMapping = errors.Error("not a mapping")
)

// Global schema registry keyed by model name. Written during package init only.
var schemas sync.Map

// Register makes the schema resolvable by name for nested references.
// It should be called in init() functions of packages that define models.
// Registering a different schema under a taken name panics.
func Register(s *Schema) {
	if s == nil {
		panic(ErrMalformedSchema.Wrapf("cannot register nil schema"))
	}

	existing, loaded := schemas.LoadOrStore(s.name, s)
	if loaded && existing.(*Schema) != s {
		panic(ErrMalformedSchema.Wrapf("model %s registered twice (%s and %s)", s.name, existing.(*Schema).goType, s.goType))
	}
}

// Lookup returns the schema registered under name.
func Lookup(name string) (*Schema, bool) {
	s, ok := schemas.Load(name)
	if !ok {
		return nil, false
	}
	return s.(*Schema), true
}

// NewModel returns a fresh instance of the model registered under name.
func NewModel(name string) (Model, error) {
	s, ok := Lookup(name)
	if !ok {
		return nil, ErrUnknownModel.Wrapf("%s", name)
	}
	return s.New(), nil
}

// Schemas returns all registered schemas sorted by name.
func Schemas() []*Schema {
	var all []*Schema
	schemas.Range(func(_, value any) bool {
		all = append(all, value.(*Schema))
		return true
	})
	slices.SortFunc(all, func(a, b *Schema) int {
		return strings.Compare(a.name, b.name)
	})
	return all
}

// CheckRegistry verifies that every nested reference resolves to a registered
// model of the Go type the field stores, and that no model reaches itself
// through single model references. Cycles through lists or maps are allowed
// since an empty collection ends them.
func CheckRegistry() error {
	return checkSchemas(Schemas(), Lookup)
}

type lookupFunc func(name string) (*Schema, bool)

func checkSchemas(all []*Schema, lookup lookupFunc) error {
	var errs []error
	for _, s := range all {
		for name, f := range s.Fields() {
			if err := checkRefs(f.typ, f.storage, lookup); err != nil {
				errs = append(errs, ErrMalformedSchema.Wrapf("%s.%s: %w", s.name, name, err))
			}
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(all))

	var visit func(name string, path []string) error
	visit = func(name string, path []string) error {
		switch state[name] {
		case visiting:
			return ErrMalformedSchema.Wrapf("reference cycle %s", strings.Join(append(path, name), " -> "))
		case done:
			return nil
		}

		state[name] = visiting
		s, _ := lookup(name)
		for _, f := range s.Fields() {
			if ref, ok := f.typ.directRef(); ok {
				if err := visit(ref, append(path, name)); err != nil {
					return err
				}
			}
		}
		state[name] = done
		return nil
	}

	for _, s := range all {
		if state[s.name] != unvisited {
			continue
		}
		if err := visit(s.name, nil); err != nil {
			return err
		}
	}

	return nil
}

func checkRefs(t Type, storage reflect.Type, lookup lookupFunc) error {
	switch t.kind {
	case TypeKindModel:
		_, err := lookupRef(t, storage, lookup)
		return err
	case TypeKindList:
		return checkRefs(t.Elem(), storage.Elem(), lookup)
	case TypeKindMap:
		return checkRefs(t.Elem(), mapValueType(storage), lookup)
	default:
		return nil
	}
}

// lookupRef returns the schema referenced by t, checking the field stores its Go type.
func lookupRef(t Type, storage reflect.Type, lookup lookupFunc) (*Schema, error) {
	s, ok := lookup(t.model)
	if !ok {
		return nil, fmt.Errorf("unresolved reference to model %s", t.model)
	}
	if storage.Elem() != s.goType {
		return nil, fmt.Errorf("reference to model %s stored as %s, want *%s", t.model, storage, s.goType)
	}
	return s, nil
}

func mapValueType(storage reflect.Type) reflect.Type {
	return reflect.New(storage.Elem()).Interface().(untypedMap).GetValueType()
}
