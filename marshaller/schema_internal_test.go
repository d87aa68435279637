package marshaller

import (
	"testing"

	"github.com/speakeasy-api/wes/sequencedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cycA struct {
	Name Field[string]
	B    Field[*cycB]
}

type cycB struct {
	A Field[*cycA]
}

var (
	cycASchema = NewSchema[cycA]("CycA",
		Prop("name", String(), func(m *cycA) *Field[string] { return &m.Name }),
		Prop("b", Ref("CycB"), func(m *cycA) *Field[*cycB] { return &m.B }),
	)
	cycBSchema = NewSchema[cycB]("CycB",
		Prop("a", Ref("CycA"), func(m *cycB) *Field[*cycA] { return &m.A }),
	)
)

func (*cycA) Schema() *Schema { return cycASchema }
func (*cycB) Schema() *Schema { return cycBSchema }

type listed struct {
	Items Field[[]*cycB]
	ByKey Field[*sequencedmap.Map[string, *cycA]]
}

var listedSchema = NewSchema[listed]("Listed",
	Prop("items", ListOf(Ref("CycB")), func(m *listed) *Field[[]*cycB] { return &m.Items }),
	Prop("by_key", MapOf(Ref("CycA")), func(m *listed) *Field[*sequencedmap.Map[string, *cycA]] { return &m.ByKey }, WithKey("byKey")),
)

func (*listed) Schema() *Schema { return listedSchema }

func lookupIn(all ...*Schema) lookupFunc {
	return func(name string) (*Schema, bool) {
		for _, s := range all {
			if s.name == name {
				return s, true
			}
		}
		return nil, false
	}
}

func TestCheckSchemas_Success(t *testing.T) {
	t.Parallel()

	// listed only reaches the cycle through a list and a map
	require.NoError(t, checkSchemas([]*Schema{listedSchema}, lookupIn(listedSchema, cycASchema, cycBSchema)))
}

func TestCheckSchemas_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		all      []*Schema
		lookup   lookupFunc
		contains string
	}{
		{
			name:     "direct reference cycle",
			all:      []*Schema{cycASchema, cycBSchema},
			lookup:   lookupIn(cycASchema, cycBSchema),
			contains: "reference cycle CycA -> CycB -> CycA",
		},
		{
			name:     "unresolved reference",
			all:      []*Schema{listedSchema},
			lookup:   lookupIn(listedSchema, cycBSchema),
			contains: "Listed.by_key: unresolved reference to model CycA",
		},
		{
			name:     "reference to a different go type",
			all:      []*Schema{cycBSchema},
			lookup:   func(string) (*Schema, bool) { return listedSchema, true },
			contains: "reference to model CycA stored as *marshaller.cycA",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := checkSchemas(tt.all, tt.lookup)
			require.ErrorIs(t, err, ErrMalformedSchema)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestSchema_Metadata_Success(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Listed", listedSchema.Name())
	assert.Equal(t, 2, listedSchema.Len())

	types := listedSchema.FieldTypes()
	assert.Equal(t, "list[CycB]", types.GetOrZero("items"))
	assert.Equal(t, "dict(str, CycA)", types.GetOrZero("by_key"))

	attrs := listedSchema.AttributeMap()
	assert.Equal(t, "items", attrs.GetOrZero("items"))
	assert.Equal(t, "byKey", attrs.GetOrZero("by_key"))

	f, ok := listedSchema.FieldByKey("byKey")
	require.True(t, ok)
	assert.Equal(t, "by_key", f.Name())

	_, ok = listedSchema.FieldByKey("by_key")
	assert.False(t, ok)

	_, ok = listedSchema.New().(*listed)
	assert.True(t, ok)
}

type bad struct {
	A Field[string]
	B Field[int]
	C Field[[]string]
	D Field[map[string]string]
}

func (*bad) Schema() *Schema { return nil }

type notAModel struct {
	A Field[string]
}

func TestNewSchema_Panics(t *testing.T) {
	t.Parallel()

	getA := func(m *bad) *Field[string] { return &m.A }
	getB := func(m *bad) *Field[int] { return &m.B }

	tests := []struct {
		name  string
		build func()
	}{
		{name: "empty model name", build: func() { NewSchema[bad]("", Prop("a", String(), getA)) }},
		{name: "duplicate field", build: func() { NewSchema[bad]("Bad", Prop("a", String(), getA), Prop("a", Integer(), getB)) }},
		{name: "duplicate wire key", build: func() {
			NewSchema[bad]("Bad", Prop("a", String(), getA), Prop("b", Integer(), getB, WithKey("a")))
		}},
		{name: "shared accessor", build: func() { NewSchema[bad]("Bad", Prop("a", String(), getA), Prop("b", String(), getA)) }},
		{name: "storage mismatch", build: func() { NewSchema[bad]("Bad", Prop("a", Integer(), getA)) }},
		{name: "enum on integer storage", build: func() { NewSchema[bad]("Bad", Prop("b", Enum("X"), getB)) }},
		{name: "list of wrong element", build: func() {
			NewSchema[bad]("Bad", Prop("c", ListOf(Integer()), func(m *bad) *Field[[]string] { return &m.C }))
		}},
		{name: "go map storage", build: func() {
			NewSchema[bad]("Bad", Prop("d", MapOf(String()), func(m *bad) *Field[map[string]string] { return &m.D }))
		}},
		{name: "zero type", build: func() { NewSchema[bad]("Bad", Prop("a", Type{}, getA)) }},
		{name: "nil accessor", build: func() { NewSchema[bad]("Bad", Prop[bad, string]("a", String(), nil)) }},
		{name: "accessor returns nil", build: func() {
			NewSchema[bad]("Bad", Prop("a", String(), func(*bad) *Field[string] { return nil }))
		}},
		{name: "not a model", build: func() {
			NewSchema[notAModel]("NotAModel", Prop("a", String(), func(m *notAModel) *Field[string] { return &m.A }))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, tt.build)
		})
	}
}

type probe struct {
	Name Field[string]
}

var probeSchema = NewSchema[probe]("RegisterProbe",
	Prop("name", String(), func(m *probe) *Field[string] { return &m.Name }),
)

func (*probe) Schema() *Schema { return probeSchema }

func TestRegister_Panics(t *testing.T) {
	t.Parallel()

	Register(probeSchema)
	assert.NotPanics(t, func() { Register(probeSchema) })

	s, ok := Lookup("RegisterProbe")
	require.True(t, ok)
	assert.Same(t, probeSchema, s)

	other := NewSchema[cycB]("RegisterProbe")
	assert.Panics(t, func() { Register(other) })
	assert.Panics(t, func() { Register(nil) })
}

func TestType_String_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ      Type
		expected string
		jsonType string
	}{
		{typ: String(), expected: "str", jsonType: "string"},
		{typ: Integer(), expected: "int", jsonType: "integer"},
		{typ: Number(), expected: "float", jsonType: "number"},
		{typ: Boolean(), expected: "bool", jsonType: "boolean"},
		{typ: Any(), expected: "object", jsonType: ""},
		{typ: Enum("A"), expected: "str", jsonType: "string"},
		{typ: Ref("Log"), expected: "Log", jsonType: "object"},
		{typ: ListOf(Ref("Log")), expected: "list[Log]", jsonType: "array"},
		{typ: MapOf(ListOf(String())), expected: "dict(str, list[str])", jsonType: "object"},
		{typ: Type{}, expected: "invalid", jsonType: ""},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.typ.String())
			assert.Equal(t, tt.jsonType, tt.typ.JSONType())
		})
	}
}
