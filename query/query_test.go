package query_test

import (
	"testing"

	"github.com/speakeasy-api/wes/internal/testutils"
	"github.com/speakeasy-api/wes/query"
	"github.com/speakeasy-api/wes/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const runList = `
runs:
  - run_id: r-1
    state: RUNNING
  - run_id: r-2
    state: COMPLETE
next_page_token: t2
`

func TestValues_Success(t *testing.T) {
	t.Parallel()

	doc := testutils.ParseValue(t, runList)

	tests := []struct {
		name     string
		expr     string
		legacy   bool
		expected []string
	}{
		{name: "child", expr: "$.next_page_token", expected: []string{`"t2"`}},
		{name: "wildcard", expr: "$.runs[*].run_id", expected: []string{`"r-1"`, `"r-2"`}},
		{name: "index", expr: "$.runs[1]", expected: []string{`{"run_id":"r-2","state":"COMPLETE"}`}},
		{name: "filter", expr: "$.runs[?@.state=='COMPLETE'].run_id", expected: []string{`"r-2"`}},
		{name: "no match", expr: "$.missing", expected: []string{}},
		{name: "legacy child", expr: "$.next_page_token", legacy: true, expected: []string{`"t2"`}},
		{name: "legacy wildcard", expr: "$.runs[*].state", legacy: true, expected: []string{`"RUNNING"`, `"COMPLETE"`}},
		{name: "legacy recursive", expr: "$..run_id", legacy: true, expected: []string{`"r-1"`, `"r-2"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q, err := query.NewPath(tt.expr, tt.legacy)
			require.NoError(t, err)

			matches, err := query.Values(q, doc)
			require.NoError(t, err)

			actual := make([]string, 0, len(matches))
			for _, m := range matches {
				actual = append(actual, m.String())
			}
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestValues_SourceLocation_Success(t *testing.T) {
	t.Parallel()

	doc := testutils.ParseValue(t, runList)

	q, err := query.NewPath("$.runs[1].state", false)
	require.NoError(t, err)

	matches, err := query.Values(q, doc)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 6, matches[0].Line())
	assert.Equal(t, 12, matches[0].Column())
}

func TestValues_BuiltValue_Success(t *testing.T) {
	t.Parallel()

	doc := values.Mapping(values.Field("run_id", values.String("r-9")))

	q, err := query.NewPath("$.run_id", false)
	require.NoError(t, err)

	matches, err := query.Values(q, doc)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, `"r-9"`, matches[0].String())
}

func TestNewPath_Error(t *testing.T) {
	t.Parallel()

	for _, legacy := range []bool{false, true} {
		_, err := query.NewPath("$.runs[", legacy)
		require.Error(t, err)
	}
}
