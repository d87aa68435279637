package testutils

import (
	"testing"

	"github.com/speakeasy-api/wes/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeBuilders_Success(t *testing.T) {
	t.Parallel()

	node := Mapping(1, 1,
		Scalar("!!str", "run_id", 1, 1),
		Scalar("!!str", "r-1", 1, 9),
		Scalar("!!str", "exit_code", 2, 1),
		Scalar("!!int", "137", 2, 12),
		Scalar("!!str", "cached", 3, 1),
		Scalar("!!bool", "true", 3, 9),
		Scalar("!!str", "outputs", 4, 1),
		Scalar("!!null", "null", 4, 10),
		Scalar("!!str", "cmd", 5, 1),
		Sequence(5, 6, Scalar("!!str", "bwa", 5, 7)),
	)

	v, err := values.FromNode(node)
	require.NoError(t, err, "nodes should convert")
	assert.Equal(t, `{"run_id":"r-1","exit_code":137,"cached":true,"outputs":null,"cmd":["bwa"]}`, v.String())

	exitCode, ok := v.Get("exit_code")
	require.True(t, ok)
	assert.Equal(t, 2, exitCode.Line())
	assert.Equal(t, 12, exitCode.Column())
}

func TestParseValue_Success(t *testing.T) {
	t.Parallel()

	v := ParseValue(t, "run_id: r-1\n")
	assert.Equal(t, values.KindMap, v.Kind())
}
