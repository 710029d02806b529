package digest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCanonical(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"int", 42, `42`},
		{"negative_int64", int64(-7), `-7`},
		{"bool", true, `true`},
		{"string", "hello", `"hello"`},
		{"no_html_escape", "<a&b>", `"<a&b>"`},
		{"escapes", "a\"b\\c\nd\te", `"a\"b\\c\nd\te"`},
		{"control_char", "\x01", `"\u0001"`},
		{"line_separator_literal", "a\u2028b", "\"a\u2028b\""},
		{"array", []any{1, "x", false}, `[1,"x",false]`},
		{"sorted_keys", map[string]any{"b": 1, "a": 2, "c": 3}, `{"a":2,"b":1,"c":3}`},
		{"nested", map[string]any{"z": []any{map[string]any{"y": 1, "x": 2}}}, `{"z":[{"x":2,"y":1}]}`},
		{"empty_object", map[string]any{}, `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarshalCanonical(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestMarshalCanonical_NFC(t *testing.T) {
	// "e" + combining acute accent normalizes to the precomposed "\u00e9".
	got, err := MarshalCanonical("e\u0301")
	require.NoError(t, err)
	assert.Equal(t, "\"\u00e9\"", string(got))
}

func TestMarshalCanonical_KeysByUTF16(t *testing.T) {
	// U+FFFD sorts after U+10000 in UTF-8 but before it in UTF-16.
	got, err := MarshalCanonical(map[string]any{"\U00010000": 1, "\uFFFD": 2})
	require.NoError(t, err)
	assert.Equal(t, "{\"\U00010000\":1,\"\uFFFD\":2}", string(got))
}

func TestMarshalCanonical_Rejects(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "null is forbidden"},
		{"float", 1.5, "floats are forbidden"},
		{"nested_float", map[string]any{"a": []any{float32(2)}}, "floats are forbidden"},
		{"unsupported", struct{}{}, "unsupported type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MarshalCanonical(tt.in)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
