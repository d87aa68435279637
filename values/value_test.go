package values_test

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/speakeasy-api/wes/sequencedmap"
	"github.com/speakeasy-api/wes/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParse_JSON_Success(t *testing.T) {
	t.Parallel()

	doc := `{
  "run_id": "abc-123",
  "exit_code": 0,
  "ratio": 2.5,
  "whole": 3.0,
  "done": true,
  "missing": null,
  "cmd": ["nextflow", "run"],
  "tags": {"b": "2", "a": "1"}
}`

	v, root, err := values.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.NotNil(t, root)
	require.Equal(t, values.KindMap, v.Kind())

	runID, ok := v.Get("run_id")
	require.True(t, ok)
	s, ok := runID.AsString()
	require.True(t, ok)
	assert.Equal(t, "abc-123", s)
	assert.Equal(t, 2, runID.Line())

	exitCode, _ := v.Get("exit_code")
	assert.Equal(t, values.KindInt, exitCode.Kind())

	ratio, _ := v.Get("ratio")
	f, ok := ratio.AsFloat()
	require.True(t, ok)
	assert.InDelta(t, 2.5, f, 0)

	whole, _ := v.Get("whole")
	assert.Equal(t, values.KindFloat, whole.Kind())
	i, ok := whole.AsInt()
	require.True(t, ok)
	assert.Equal(t, int64(3), i)

	missing, ok := v.Get("missing")
	require.True(t, ok)
	assert.True(t, missing.IsNull())

	cmd, _ := v.Get("cmd")
	require.Equal(t, 2, cmd.Len())
	second, ok := cmd.Index(1)
	require.True(t, ok)
	assert.Equal(t, `"run"`, second.String())

	tags, _ := v.Get("tags")
	assert.Equal(t, []string{"b", "a"}, collectKeys(tags.Fields()))
}

func TestParse_YAML_Success(t *testing.T) {
	t.Parallel()

	doc := `
defaults: &defaults
  type: string
params:
  - name: outdir
    <<: *defaults
  - *defaults
date: 2024-01-02
quoted: "42"
`

	v, err := values.ParseBytes([]byte(doc))
	require.NoError(t, err)

	params, _ := v.Get("params")
	second, _ := params.Index(1)
	typ, ok := second.Get("type")
	require.True(t, ok)
	assert.Equal(t, `"string"`, typ.String())

	date, _ := v.Get("date")
	assert.Equal(t, values.KindString, date.Kind())

	quoted, _ := v.Get("quoted")
	assert.Equal(t, values.KindString, quoted.Kind())
}

func TestParse_Error(t *testing.T) {
	t.Parallel()

	_, err := values.ParseBytes([]byte(""))
	require.ErrorIs(t, err, values.ErrEmptyDocument)

	_, err = values.ParseBytes([]byte("{\"a\": [1, 2"))
	require.Error(t, err)

	_, err = values.ParseBytes([]byte("? [a, b]\n: c\n"))
	require.ErrorIs(t, err, values.ErrUnsupportedNode)
}

func aliasBomb(levels int) string {
	var sb strings.Builder
	sb.WriteString(`l0: &l0 ["x","x","x","x","x","x","x","x","x","x"]` + "\n")
	for i := 1; i < levels; i++ {
		prev := "*l" + strconv.Itoa(i-1)
		refs := strings.TrimSuffix(strings.Repeat(prev+",", 10), ",")
		fmt.Fprintf(&sb, "l%d: &l%d [%s]\n", i, i, refs)
	}
	return sb.String()
}

func TestParse_AliasBomb_Error(t *testing.T) {
	t.Parallel()

	start := time.Now()
	_, err := values.ParseBytes([]byte(aliasBomb(9)))
	require.ErrorIs(t, err, values.ErrUnsupportedNode)
	assert.Contains(t, err.Error(), "excessive aliasing")
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestParse_AliasReuse_Success(t *testing.T) {
	t.Parallel()

	v, err := values.ParseBytes([]byte(aliasBomb(3)))
	require.NoError(t, err)

	l2, ok := v.Get("l2")
	require.True(t, ok)
	assert.Equal(t, 10, l2.Len())

	first, _ := l2.Index(0)
	second, _ := l2.Index(1)
	first.Items()[0] = values.Null()

	assert.Equal(t, 10, second.Len())
	inner, _ := second.Index(0)
	assert.Equal(t, values.KindSequence, inner.Kind())
}

func TestValue_Clone_Success(t *testing.T) {
	t.Parallel()

	orig, err := values.ParseBytes([]byte(`{"a": {"b": [1, {"c": "d"}]}, "e": null}`))
	require.NoError(t, err)

	c := orig.Clone()
	require.True(t, values.Equal(orig, c))
	assert.Equal(t, orig.Line(), c.Line())

	a, _ := c.Get("a")
	b, _ := a.Get("b")
	b.Items()[0] = values.Int(2)
	nested, _ := b.Index(1)
	nested.Fields().Set("c", values.String("changed"))
	a.Fields().Set("z", values.Bool(true))

	assert.Equal(t, `{"a":{"b":[1,{"c":"d"}]},"e":null}`, orig.String())
	assert.Nil(t, (*values.Value)(nil).Clone())
}

func TestFromAny_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       any
		expected string
	}{
		{name: "nil", in: nil, expected: "null"},
		{name: "bool", in: true, expected: "true"},
		{name: "int", in: 42, expected: "42"},
		{name: "uint8", in: uint8(7), expected: "7"},
		{name: "float", in: 1.5, expected: "1.5"},
		{name: "integral float", in: 2.0, expected: "2.0"},
		{name: "string", in: "a<b", expected: `"a<b"`},
		{name: "string slice", in: []string{"x", "y"}, expected: `["x","y"]`},
		{name: "nil slice", in: []string(nil), expected: "null"},
		{name: "map sorts keys", in: map[string]any{"b": 1, "a": []any{nil}}, expected: `{"a":[null],"b":1}`},
		{name: "ordered map keeps order", in: sequencedmap.New(sequencedmap.NewElem[string, any]("z", 1), sequencedmap.NewElem[string, any]("a", 2)), expected: `{"z":1,"a":2}`},
		{name: "pointer", in: ptr("p"), expected: `"p"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, err := values.FromAny(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v.String())
		})
	}
}

func TestFromAny_Error(t *testing.T) {
	t.Parallel()

	_, err := values.FromAny(map[int]string{1: "a"})
	require.ErrorIs(t, err, values.ErrUnsupportedType)

	_, err = values.FromAny(make(chan int))
	require.ErrorIs(t, err, values.ErrUnsupportedType)
}

func TestValue_MarshalJSON_NonFinite_Error(t *testing.T) {
	t.Parallel()

	_, err := values.Float(math.Inf(1)).MarshalJSON()
	require.ErrorIs(t, err, values.ErrUnsupportedType)
}

func TestValue_ToNode_RoundTrip_Success(t *testing.T) {
	t.Parallel()

	v := values.Mapping(
		values.Field("name", values.String("outdir")),
		values.Field("exit_code", values.Int(1)),
		values.Field("ratio", values.Float(0.25)),
		values.Field("whole", values.Float(4)),
		values.Field("ok", values.Bool(false)),
		values.Field("none", nil),
		values.Field("cmd", values.Sequence(values.String("a"), values.String("b"))),
	)

	out, err := yaml.Marshal(v.ToNode())
	require.NoError(t, err)

	back, err := values.ParseBytes(out)
	require.NoError(t, err)

	assert.True(t, values.Equal(v, back), "round trip through yaml should preserve the value, got %s", back)

	whole, _ := back.Get("whole")
	assert.Equal(t, values.KindFloat, whole.Kind())
}

func TestValue_Interface_Success(t *testing.T) {
	t.Parallel()

	v := values.Mapping(
		values.Field("a", values.Sequence(values.Int(1), values.Float(1.5), values.Null())),
		values.Field("b", values.Bool(true)),
	)

	assert.Equal(t, map[string]any{
		"a": []any{int64(1), 1.5, nil},
		"b": true,
	}, v.Interface())
}

func TestEqual_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        *values.Value
		b        *values.Value
		expected bool
	}{
		{name: "both nil", expected: true},
		{name: "nil vs null", a: nil, b: values.Null(), expected: false},
		{name: "int vs float", a: values.Int(2), b: values.Float(2), expected: true},
		{name: "int vs string", a: values.Int(2), b: values.String("2"), expected: false},
		{
			name:     "map order ignored",
			a:        values.Mapping(values.Field("a", values.Int(1)), values.Field("b", values.Int(2))),
			b:        values.Mapping(values.Field("b", values.Int(2)), values.Field("a", values.Int(1))),
			expected: true,
		},
		{
			name:     "sequence order matters",
			a:        values.Sequence(values.Int(1), values.Int(2)),
			b:        values.Sequence(values.Int(2), values.Int(1)),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, values.Equal(tt.a, tt.b))
		})
	}
}

func TestValue_NilAccessors_Success(t *testing.T) {
	t.Parallel()

	var v *values.Value

	assert.Equal(t, values.KindNull, v.Kind())
	assert.Equal(t, -1, v.Line())
	assert.Equal(t, 0, v.Len())
	assert.Nil(t, v.Items())
	_, ok := v.Get("x")
	assert.False(t, ok)
	_, ok = v.AsString()
	assert.False(t, ok)
	assert.Equal(t, "null", v.String())
}

func collectKeys(m *sequencedmap.Map[string, *values.Value]) []string {
	var keys []string
	for k := range m.Keys() {
		keys = append(keys, k)
	}
	return keys
}

func ptr[T any](v T) *T {
	return &v
}
