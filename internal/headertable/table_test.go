package headertable

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/map-protocol/strvals"
)

func strPtr(s string) *string { return &s }

func TestBuild(t *testing.T) {
	table, err := Build(Config{
		Charset: "ISO-8859-1",
		Headers: []HeaderConfig{
			{Name: "Cache-Control", Values: []string{"no-cache", "no-store"}},
			{Name: "Server", Value: strPtr("strvals"), Charset: "utf-8"},
			{Name: "cache-control", Value: strPtr("must-revalidate")},
			{Name: "X-Empty", Value: strPtr("")},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())

	cc, ok := table.Lookup("CACHE-CONTROL")
	require.True(t, ok)
	assert.Equal(t, "Cache-Control", cc.Name)
	assert.True(t, cc.Value.Values().EqualStrings([]string{"no-cache", "no-store", "must-revalidate"}))
	b, _, ok := cc.Value.TryGetPreEncoded()
	require.True(t, ok)
	assert.Equal(t, []byte("no-cache,no-store,must-revalidate"), b)
	assert.Equal(t, "ISO-8859-1", cc.Charset)

	server, ok := table.Lookup("server")
	require.True(t, ok)
	assert.Equal(t, "utf-8", server.Charset)

	empty, ok := table.Lookup("x-empty")
	require.True(t, ok)
	b, _, ok = empty.Value.TryGetPreEncoded()
	require.True(t, ok)
	assert.NotNil(t, b)
	assert.Empty(t, b)

	assert.Equal(t, len("no-cache,no-store,must-revalidate")+len("strvals"), table.Size())

	names := []string{}
	for _, e := range table.Entries() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"Cache-Control", "Server", "X-Empty"}, names)

	_, ok = table.Lookup("missing")
	assert.False(t, ok)
}

func TestBuildDefaultCharset(t *testing.T) {
	table, err := Build(Config{Headers: []HeaderConfig{{Name: "A", Value: strPtr("é")}}})
	require.NoError(t, err)
	e, _ := table.Lookup("a")
	assert.Equal(t, DefaultCharset, e.Charset)
	b, _, _ := e.Value.TryGetPreEncoded()
	assert.Equal(t, []byte("é"), b)
}

func TestBuildErrors(t *testing.T) {
	cases := map[string]Config{
		"missing name": {Headers: []HeaderConfig{{Value: strPtr("x")}}},
		"no values":    {Headers: []HeaderConfig{{Name: "A"}}},
		"bad charset":  {Headers: []HeaderConfig{{Name: "A", Value: strPtr("x"), Charset: "klingon"}}},
		"conflicting charsets": {Headers: []HeaderConfig{
			{Name: "A", Value: strPtr("x"), Charset: "utf-8"},
			{Name: "a", Value: strPtr("y"), Charset: "iso-8859-1"},
		}},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Build(cfg)
			assert.Error(t, err)
		})
	}

	_, err := Build(Config{Headers: []HeaderConfig{{Name: "A"}}})
	assert.ErrorIs(t, err, strvals.ErrRequiredValueMissing)
}

func TestWriteText(t *testing.T) {
	table, err := Build(Config{Headers: []HeaderConfig{
		{Name: "Vary", Values: []string{"Accept", "Origin"}},
	}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, table.WriteText(&buf, false))
	assert.Equal(t, "Vary: Accept,Origin\n", buf.String())

	buf.Reset()
	require.NoError(t, table.WriteText(&buf, true))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "  13 B UTF-8: 4163636570742c4f726967696e", lines[1])
}

func TestWriteJSON(t *testing.T) {
	table, err := Build(Config{Headers: []HeaderConfig{
		{Name: "Vary", Values: []string{"Accept", "Origin"}},
		{Name: "Server", Value: strPtr("strvals")},
	}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, table.WriteJSON(&buf))

	var got []struct {
		Name    string          `json:"name"`
		Values  json.RawMessage `json:"values"`
		Charset string          `json:"charset"`
		Size    int             `json:"size"`
		Hash    string          `json:"hash"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.JSONEq(t, `["Accept","Origin"]`, string(got[0].Values))
	assert.JSONEq(t, `"strvals"`, string(got[1].Values))
	assert.Equal(t, 13, got[0].Size)
	assert.Len(t, got[0].Hash, 16)

	v, err := strvals.ParseJSON(got[0].Values)
	require.NoError(t, err)
	assert.True(t, v.EqualStrings([]string{"Accept", "Origin"}))
}
