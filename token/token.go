package token

import (
	"fmt"
)

// Token is a lexeme recognized by one of the rules.
type Token struct {
	Type  Type
	Value string
	// Offset is the 0-based rune offset of the first
	// character of the lexeme in the scanned text.
	Offset int
}

// New creates a new token from the given arguments.
func New(typ Type, value string, offset int) Token {
	return Token{
		Type:   typ,
		Value:  value,
		Offset: offset,
	}
}

// Is determines whether this token has the given type.
func (t Token) Is(typ Type) bool {
	return t.Type == typ
}

// Length returns the length of the token Value in runes.
func (t Token) Length() int {
	return len([]rune(t.Value))
}

func (t Token) String() string {
	return fmt.Sprintf("(%d) %s %q", t.Offset, t.Type, t.Value)
}

func (t Token) GoString() string {
	return fmt.Sprintf("token.New(token.%s, %q, %d)", t.Type, t.Value, t.Offset)
}

// Position describes the position of something in a text.
// Line and Col is 1-based, Offset is 0-based.
type Position struct {
	Line   int
	Col    int
	Offset int
}

// Locate computes the line and column of the given rune offset in text.
// Offsets past the end of text are located after the last character.
func Locate(text string, offset int) Position {
	pos := Position{
		Line:   1,
		Col:    1,
		Offset: offset,
	}
	i := 0
	for _, r := range text {
		if i >= offset {
			break
		}
		if r == '\n' {
			pos.Line++
			pos.Col = 1
		} else {
			pos.Col++
		}
		i++
	}
	return pos
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d,offset=%d", p.Line, p.Col, p.Offset)
}
