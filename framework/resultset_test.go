package framework

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResultSet struct{}

func (stubResultSet) PrintAs(f Format) string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatPlain:
		return "plain\n"
	}
	return "default"
}

func (stubResultSet) Entities() any { return nil }

func TestNameFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, NameFormat("json"))
	assert.Equal(t, FormatJSON, NameFormat(" JSON "))
	assert.Equal(t, FormatTable, NameFormat("table"))
	assert.Equal(t, FormatPlain, NameFormat("line"))
	assert.Equal(t, FormatDefault, NameFormat(""))
	assert.Equal(t, FormatDefault, NameFormat("yaml"))
}

func TestFprint(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Fprint(buf, stubResultSet{}, FormatJSON))
	assert.Equal(t, "json\n", buf.String())

	buf.Reset()
	require.NoError(t, Fprint(buf, stubResultSet{}, FormatPlain))
	assert.Equal(t, "plain\n", buf.String())

	buf.Reset()
	require.NoError(t, Fprint(buf, stubResultSet{}, 0))
	assert.Equal(t, "default\n", buf.String())
}

func TestMarshalJSON(t *testing.T) {
	assert.Equal(t, "{\n  \"a\": 1\n}", MarshalJSON(map[string]int{"a": 1}))
	assert.Contains(t, MarshalJSON(func() {}), "unsupported type")
}
