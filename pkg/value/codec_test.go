package value

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/steve02081504/char-tamplate/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"yml": FormatYAML, "YAML": FormatYAML, "json": FormatJSON, "toml": FormatTOML} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupported))

	f, err := FormatFromPath("/tmp/card.yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)
	_, err = FormatFromPath("Makefile")
	assert.Error(t, err)
}

func TestDecodeJSONKeepsOrder(t *testing.T) {
	v, err := DecodeJSON([]byte(`{"b": 1, "a": [true, null, "x", 2.5], "c": {}}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a", "c"}, v.Object().Keys())
	if diff := cmp.Diff(
		map[string]any{"b": 1.0, "a": []any{true, nil, "x", 2.5}, "c": map[string]any{}},
		ToNative(v),
	); diff != "" {
		t.Errorf("decoded JSON mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"truncated", `{"a": [1, 2`},
		{"trailing data", `{} {}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeJSON([]byte(tt.input))
			assert.True(t, errors.IsErrorCode(err, errors.ErrDecode), "got %v", err)
		})
	}
}

func TestDecodeYAMLAliasesBecomeShared(t *testing.T) {
	doc := `
base: &base
  greeting: hello
first: *base
second: *base
list: [1, two, 3.5, true, ~]
`
	v, err := DecodeYAML([]byte(doc))
	require.NoError(t, err)

	base, _ := v.Object().Get("base")
	first, _ := v.Object().Get("first")
	second, _ := v.Object().Get("second")
	assert.True(t, Same(base, first))
	assert.True(t, Same(first, second))

	list, _ := v.Object().Get("list")
	assert.True(t, Equal(NewArray(Number(1), String("two"), Number(3.5), Bool(true), Null()), list))
}

func TestDecodeYAMLMergeKey(t *testing.T) {
	doc := `
defaults: &d
  a: 1
  b: 2
item:
  <<: *d
  b: 3
`
	v, err := DecodeYAML([]byte(doc))
	require.NoError(t, err)

	item, _ := v.Object().Get("item")
	assert.Equal(t, map[string]any{"a": 1.0, "b": 3.0}, ToNative(item))
}

func TestDecodeYAMLEmpty(t *testing.T) {
	v, err := DecodeYAML(nil)
	require.NoError(t, err)
	assert.True(t, v.IsNull())
}

func TestDecodeTOML(t *testing.T) {
	doc := `
title = "card"
count = 3

[owner]
name = "x"
tags = ["a", "b"]
`
	v, err := DecodeTOML([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"title": "card",
		"count": 3.0,
		"owner": map[string]any{"name": "x", "tags": []any{"a", "b"}},
	}, ToNative(v))

	_, err = DecodeTOML([]byte("= nope"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrDecode))
}

func TestEncodeJSON(t *testing.T) {
	v := FromEntries(
		Entry{"b", NewArray(Number(1), String("x\"y"))},
		Entry{"a", NewObject()},
	)

	compact, err := EncodeJSON(v, "")
	require.NoError(t, err)
	assert.Equal(t, `{"b":[1,"x\"y"],"a":{}}`, string(compact))

	pretty, err := EncodeJSON(v, "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"b\": [\n    1,\n    \"x\\\"y\"\n  ],\n  \"a\": {}\n}\n", string(pretty))
}

func TestEncodeJSONSharedIsExpanded(t *testing.T) {
	shared := NewArray(Number(1))
	v := NewArray(shared, shared)

	out, err := EncodeJSON(v, "")
	require.NoError(t, err)
	assert.Equal(t, `[[1],[1]]`, string(out))
}

func TestEncodeJSONRejectsCyclesAndNaN(t *testing.T) {
	cyclic := NewArray()
	cyclic.Array().Append(cyclic)
	_, err := EncodeJSON(cyclic, "")
	assert.True(t, errors.IsErrorCode(err, errors.ErrCycle))

	_, err = EncodeJSON(Number(math.Inf(1)), "")
	assert.True(t, errors.IsErrorCode(err, errors.ErrEncode))
}

func TestEncodeYAMLRoundTripsAliases(t *testing.T) {
	shared := FromEntries(Entry{"k", String("v")})
	v := FromEntries(Entry{"one", shared}, Entry{"two", shared}, Entry{"n", Number(2)})

	out, err := EncodeYAML(v)
	require.NoError(t, err)
	assert.Contains(t, string(out), "&ref1")
	assert.Contains(t, string(out), "*ref1")

	back, err := DecodeYAML(out)
	require.NoError(t, err)
	assert.True(t, Equal(v, back))

	one, _ := back.Object().Get("one")
	two, _ := back.Object().Get("two")
	assert.True(t, Same(one, two))
}

func TestEncodeYAMLQuotesAmbiguousStrings(t *testing.T) {
	v := NewArray(String("true"), String("12"), Bool(true), Number(12))
	out, err := EncodeYAML(v)
	require.NoError(t, err)

	back, err := DecodeYAML(out)
	require.NoError(t, err)
	assert.True(t, Equal(v, back))
}
