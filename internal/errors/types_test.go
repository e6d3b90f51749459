package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorIncludesLocationAndCause(t *testing.T) {
	cause := stderrors.New("unexpected token")
	err := Wrap(SchemaErrorCode, "failed to decode schema", cause).
		WithLocation(SourceLocation{File: "types.toml", Line: 12})

	assert.Equal(t, "types.toml:12: failed to decode schema: unexpected token", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestErrorWithoutLocation(t *testing.T) {
	err := New(ValidationErrorCode, "name is required")
	assert.Equal(t, "name is required", err.Error())
	assert.Equal(t, ValidationErrorCode, err.ErrorCode())
}

func TestDetailedAppendsSuggestions(t *testing.T) {
	err := New(TypeExprErrorCode, "invalid type expression").
		WithSuggestion("check for unbalanced angle brackets")

	detailed := err.Detailed()
	require.Contains(t, detailed, "invalid type expression")
	assert.Contains(t, detailed, "hint: check for unbalanced angle brackets")
}

func TestSourceLocationString(t *testing.T) {
	assert.Equal(t, "unknown location", SourceLocation{}.String())
	assert.Equal(t, "types.toml", SourceLocation{File: "types.toml"}.String())
	assert.Equal(t, "types.toml:3", SourceLocation{File: "types.toml", Line: 3}.String())
}
