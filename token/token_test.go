package token

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{Undefined, "Undefined"},
		{Whitespace, "Whitespace"},
		{NewLine, "NewLine"},
		{Identifier, "Identifier"},
		{Integer, "Integer"},
		{String, "String"},
		{Comment, "Comment"},
		{Error, "Error"},
		{Type(42), "Type(42)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.typ.String())
	}
}

func TestTokenFormatting(t *testing.T) {
	assert := assert.New(t)

	tok := New(Identifier, "ab0c", 10)
	assert.True(tok.Is(Identifier))
	assert.False(tok.Is(Integer))
	assert.Equal(4, tok.Length())
	assert.Equal(`(10) Identifier "ab0c"`, tok.String())
	assert.Equal(`token.New(token.Identifier, "ab0c", 10)`, fmt.Sprintf("%#v", tok))
}

func TestLocate(t *testing.T) {
	text := "ab\ncd\n\nä"
	tests := []struct {
		offset int
		want   Position
	}{
		{0, Position{1, 1, 0}},
		{1, Position{1, 2, 1}},
		{2, Position{1, 3, 2}},
		{3, Position{2, 1, 3}},
		{6, Position{3, 1, 6}},
		{7, Position{4, 1, 7}},
		{8, Position{4, 2, 8}},
		{20, Position{4, 2, 20}},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, Locate(text, tt.offset), "offset %d", tt.offset)
	}
}
