package typeexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		expectError bool
	}{
		{name: "plain", input: "u64", expected: "u64"},
		{name: "path", input: "std::fmt::Display", expected: "std::fmt::Display"},
		{name: "generic", input: "Vec<u8>", expected: "Vec<u8>"},
		{
			name:     "nested generics",
			input:    "HashMap<String, Vec<u8>>",
			expected: "HashMap<String, Vec<u8>>",
		},
		{
			name:     "whitespace normalized",
			input:    "HashMap< String ,Vec<u8> >",
			expected: "HashMap<String, Vec<u8>>",
		},
		{name: "reference", input: "&str", expected: "&str"},
		{name: "mutable reference", input: "&mut String", expected: "&mut String"},
		{name: "static lifetime", input: "&'static str", expected: "&'static str"},
		{name: "unit", input: "()", expected: "()"},
		{name: "tuple", input: "(i32, String)", expected: "(i32, String)"},
		{name: "slice", input: "[u8]", expected: "[u8]"},
		{name: "slice reference", input: "&[u8]", expected: "&[u8]"},
		{name: "array", input: "[u8; 16]", expected: "[u8; 16]"},
		{
			name:     "generic over reference",
			input:    "Option<&'a str>",
			expected: "Option<&'a str>",
		},
		{
			name:     "lifetime generic argument",
			input:    "Formatter<'_>",
			expected: "Formatter<'_>",
		},
		{name: "unbalanced angle bracket", input: "Vec<u8", expectError: true},
		{name: "empty", input: "", expectError: true},
		{name: "dangling path separator", input: "std::", expectError: true},
		{name: "bare lifetime", input: "'static", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ty, err := Parse(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ty.String())
		})
	}
}

func TestParseKeepsGenericsStructured(t *testing.T) {
	ty, err := Parse("Result<T, Error>")
	require.NoError(t, err)

	assert.Equal(t, "Result", ty.Name())
	assert.Equal(t, "Result<T, Error>", ty.String())
}
