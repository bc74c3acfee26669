package codec

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/go-kratos/kratos/v2/encoding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/go-tangra/go-tangra-sysindicator/internal/collector"
	"github.com/go-tangra/go-tangra-sysindicator/internal/report"
)

func sample() collector.Map {
	return collector.Map{
		collector.OSFamily:    "LINUX",
		collector.OSName:      "Linux 6.8.0 (#45-Ubuntu SMP)",
		collector.CPUExt:      "SSE, SSE2",
		collector.Processors:  "4",
		collector.L1Caches:    "8",
		collector.L1CacheSize: "32",
		collector.TotalMemory: "16309",
	}
}

func TestFormatsRegistered(t *testing.T) {
	assert.Equal(t, []string{"json", "text", "yaml"}, Formats())
	for _, f := range Formats() {
		c, err := Lookup(f)
		require.NoError(t, err, f)
		assert.Equal(t, f, c.Name())
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("xml")
	require.ErrorIs(t, err, ErrUnknownFormat)
	assert.Contains(t, err.Error(), `"xml"`)

	_, err = Marshal("toml", sample(), false)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestJSONMarshal(t *testing.T) {
	data, err := Marshal(JSON, sample(), false)
	require.NoError(t, err)

	want := `{
  "CPU_EXT": "SSE, SSE2",
  "L1CACHES": "8",
  "L1CACHE_SIZE": "32",
  "OS_FAMILY": "LINUX",
  "OS_NAME": "Linux 6.8.0 (#45-Ubuntu SMP)",
  "PROCESSORS": "4",
  "TOTAL_MEMORY": "16309"
}`
	assert.Equal(t, want, string(data))
}

func TestJSONRoundTrip(t *testing.T) {
	c := encoding.GetCodec(JSON)
	m := sample()

	data, err := c.Marshal(&m)
	require.NoError(t, err)

	var got collector.Map
	require.NoError(t, c.Unmarshal(data, &got))
	assert.Equal(t, m, got)
}

func TestJSONUnmarshalDropsUnknownAndEmpty(t *testing.T) {
	var got collector.Map
	err := encoding.GetCodec(JSON).Unmarshal([]byte(`{"OS_FAMILY":"WIN32","HOSTNAME":"box","CPU_NAME":""}`), &got)
	require.NoError(t, err)
	assert.Equal(t, collector.Map{collector.OSFamily: "WIN32"}, got)
}

func TestJSONUnmarshalRejectsNonString(t *testing.T) {
	var got collector.Map
	err := encoding.GetCodec(JSON).Unmarshal([]byte(`{"PROCESSORS":4}`), &got)
	assert.ErrorContains(t, err, "PROCESSORS")
}

func TestJSONProtoMessage(t *testing.T) {
	s, err := structpb.NewStruct(map[string]interface{}{"b": "2", "a": 1.5})
	require.NoError(t, err)

	data, err := encoding.GetCodec(JSON).Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1.5,\n  \"b\": \"2\"\n}", string(data))

	var back structpb.Struct
	require.NoError(t, encoding.GetCodec(JSON).Unmarshal(data, &back))
	assert.Equal(t, "2", back.GetFields()["b"].GetStringValue())
}

func TestJSONStableOutput(t *testing.T) {
	c := encoding.GetCodec(JSON)
	first, err := c.Marshal(sample())
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := c.Marshal(sample())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}

	v := structpb.NewStringValue("SSE, SSE2")
	data, err := c.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `"SSE, SSE2"`, string(data))
}

func TestJSONPlainValue(t *testing.T) {
	data, err := encoding.GetCodec(JSON).Marshal([]string{"x"})
	require.NoError(t, err)

	var back []string
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, []string{"x"}, back)
}

func TestYAMLRoundTrip(t *testing.T) {
	m := sample()
	data, err := Marshal(YAML, m, true)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(data), "CPU_EXT: SSE, SSE2\n"), string(data))

	var got collector.Map
	require.NoError(t, encoding.GetCodec(YAML).Unmarshal(data, &got))
	assert.Equal(t, m, got)
}

func TestTextMarshal(t *testing.T) {
	m := sample()
	data, err := Marshal(Text, m, false)
	require.NoError(t, err)
	assert.Equal(t, report.Format(m, report.Options{}), data)

	registered, err := encoding.GetCodec(Text).Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, data, registered)

	_, err = encoding.GetCodec(Text).Marshal(42)
	assert.Error(t, err)
	assert.Error(t, encoding.GetCodec(Text).Unmarshal(data, &m))
}

func TestTextMarshalColor(t *testing.T) {
	m := sample()
	data, err := Marshal(Text, m, true)
	require.NoError(t, err)

	assert.Equal(t, report.Format(m, report.Options{Color: true}), data)
	assert.Contains(t, string(data), "\x1b[")
}

func TestForOutput(t *testing.T) {
	c, err := ForOutput(Text, true)
	require.NoError(t, err)
	assert.Equal(t, Text, c.Name())

	c, err = ForOutput(JSON, true)
	require.NoError(t, err)
	assert.Equal(t, encoding.GetCodec(JSON), c)

	_, err = ForOutput("xml", false)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
