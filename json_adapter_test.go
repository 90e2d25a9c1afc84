package strvals_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/map-protocol/strvals"
)

func TestMarshalJSON(t *testing.T) {
	cases := []struct {
		v    strvals.Values
		want string
	}{
		{strvals.Empty, `null`},
		{strvals.FromString(""), `""`},
		{strvals.FromString("a\"b"), `"a\"b"`},
		{strvals.FromSlice([]string{"abc"}), `"abc"`},
		{strvals.New("abc", "bcd"), `["abc","bcd"]`},
	}
	for _, c := range cases {
		got, err := c.v.MarshalJSON()
		require.NoError(t, err)
		assert.JSONEq(t, c.want, string(got))
	}
}

func TestMarshalJSONEmbedded(t *testing.T) {
	type header struct {
		Name   string         `json:"name"`
		Values strvals.Values `json:"values"`
	}
	got, err := json.Marshal(header{Name: "Vary", Values: strvals.New("Accept", "Origin")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Vary","values":["Accept","Origin"]}`, string(got))
}

func TestParseJSON(t *testing.T) {
	v, err := strvals.ParseJSON([]byte(` ["a", "b"] `))
	require.NoError(t, err)
	assert.True(t, v.EqualStrings([]string{"a", "b"}))

	v, err = strvals.ParseJSON([]byte(`"a"`))
	require.NoError(t, err)
	assert.Equal(t, strvals.KindOne, v.Kind())

	v, err = strvals.ParseJSON([]byte(`null`))
	require.NoError(t, err)
	assert.Equal(t, strvals.KindEmpty, v.Kind())
}

func TestParseJSONErrors(t *testing.T) {
	cases := []struct {
		in   string
		code string
	}{
		{``, strvals.ErrCodeJSON},
		{`["a",`, strvals.ErrCodeJSON},
		{`true`, strvals.ErrCodeType},
		{`1.5`, strvals.ErrCodeType},
		{`{}`, strvals.ErrCodeType},
		{`[["a"]]`, strvals.ErrCodeType},
	}
	for _, c := range cases {
		_, err := strvals.ParseJSON([]byte(c.in))
		var se *strvals.Error
		require.ErrorAs(t, err, &se, c.in)
		assert.Equal(t, c.code, se.Code, c.in)
	}
}
