package token

//go:generate stringer -type=Type

// Type is a token type.
type Type uint8

// Known types.
const (
	// Undefined is the token type for a single character that no
	// rule recognized, including the end marker.
	Undefined Type = iota
	// Whitespace is the token type for a run of whitespace.
	Whitespace
	// NewLine is the token type for a single line feed.
	NewLine
	// Identifier is the token type for a letter, followed by any
	// number of letters and digits.
	Identifier
	// Integer is the token type for a run of decimal digits.
	Integer
	// String is the token type for a quoted string. The value of
	// the token is the unescaped content without quotes.
	String
	// Comment is the token type for a line comment.
	Comment

	// Error is a token type that indicates that this token represents
	// a corrupt or incorrect structure. The value of this token is the error message.
	Error
)

// Types returns all known types in declaration order.
func Types() []Type {
	return []Type{Undefined, Whitespace, NewLine, Identifier, Integer, String, Comment, Error}
}
