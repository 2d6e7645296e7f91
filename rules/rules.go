// Package rules provides a reference set of transforms for lex.Scanner,
// producing token.Token values.
package rules

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/tsatke/lex"
	"github.com/tsatke/lex/token"
)

// Rule is a transform that produces token.Token values.
type Rule = lex.Transform[token.Token]

// Standard returns the rule set used by Default, in the order in which
// the rules are tried.
func Standard() []Rule {
	return []Rule{
		LineComment("//"),
		String,
		NewLine,
		Whitespace,
		Identifier,
		Integer,
	}
}

// Compact is like Standard, but skips blanks instead of producing
// Whitespace tokens.
func Compact() []Rule {
	return []Rule{
		SkipBlanks,
		LineComment("//"),
		String,
		NewLine,
		Identifier,
		Integer,
	}
}

// New creates a scanner that uses the given rules and Undefined as fallback.
func New(set []Rule, opts ...lex.Option) *lex.Scanner[token.Token] {
	return lex.New(Undefined, set, opts...)
}

// Default creates a scanner with the Standard rule set.
func Default(opts ...lex.Option) *lex.Scanner[token.Token] {
	return New(Standard(), opts...)
}

// Undefined wraps the buffered character in an Undefined token.
// It is used as fallback, and produces the end marker as
// Undefined token once the input is exhausted.
func Undefined(buf *rune, r lex.Reader) token.Token {
	tok := token.New(token.Undefined, string(*buf), offset(r))
	*buf = r.Next()
	return tok
}

// IsEnd reports whether tok is the Undefined token that a scanner using
// the Undefined fallback produces once a text of length runes is exhausted.
// An end marker that occurs inside the text is not the end.
func IsEnd(tok token.Token, marker rune, length int) bool {
	return tok.Is(token.Undefined) && tok.Offset >= length && tok.Value == string(marker)
}

// UntilEnd returns a stop function for lex.Sequence.Until, which ends
// the sequence once text is exhausted.
func UntilEnd(text string, marker rune) func(token.Token) bool {
	length := utf8.RuneCountInString(text)
	return func(tok token.Token) bool {
		return IsEnd(tok, marker, length)
	}
}

// SkipBlanks consumes spaces, tabs and carriage returns, and then declines.
func SkipBlanks(buf *rune, r lex.Reader) (token.Token, bool) {
	accept(buf, r, isBlank)
	return token.Token{}, false
}

// Whitespace produces a Whitespace token for a run of whitespace
// other than line feeds.
func Whitespace(buf *rune, r lex.Reader) (token.Token, bool) {
	if !isWhitespace(*buf) {
		return token.Token{}, false
	}
	start := offset(r)
	return token.New(token.Whitespace, accept(buf, r, isWhitespace), start), true
}

// NewLine produces a NewLine token for a single line feed.
func NewLine(buf *rune, r lex.Reader) (token.Token, bool) {
	if *buf != '\n' {
		return token.Token{}, false
	}
	tok := token.New(token.NewLine, "\n", offset(r))
	*buf = r.Next()
	return tok, true
}

// Identifier produces an Identifier token for a letter followed
// by letters and digits.
func Identifier(buf *rune, r lex.Reader) (token.Token, bool) {
	if !unicode.IsLetter(*buf) {
		return token.Token{}, false
	}
	start := offset(r)
	return token.New(token.Identifier, accept(buf, r, isAlphanumeric), start), true
}

// Integer produces an Integer token for a run of digits.
func Integer(buf *rune, r lex.Reader) (token.Token, bool) {
	if !unicode.IsDigit(*buf) {
		return token.Token{}, false
	}
	start := offset(r)
	return token.New(token.Integer, accept(buf, r, unicode.IsDigit), start), true
}

// String produces a String token for a literal enclosed in double or
// single quotes. The token value is the unescaped content. If the literal
// is not terminated, or contains an invalid escape sequence, an Error
// token is produced instead.
func String(buf *rune, r lex.Reader) (token.Token, bool) {
	delimiter := *buf
	if delimiter != '"' && delimiter != '\'' {
		return token.Token{}, false
	}
	start := offset(r)

	var raw []rune
	*buf = r.Next()
	for *buf != delimiter {
		if *buf == r.EndMarker() {
			return token.New(token.Error, fmt.Sprintf("incomplete string %c%s<EOF>", delimiter, string(raw)), start), true
		}
		if *buf == '\\' {
			raw = append(raw, *buf)
			*buf = r.Next()
			if *buf == r.EndMarker() {
				continue
			}
		}
		raw = append(raw, *buf)
		*buf = r.Next()
	}
	*buf = r.Next() // closing delimiter

	value, err := unescape(string(raw))
	if err != nil {
		return token.New(token.Error, err.Error(), start), true
	}
	return token.New(token.String, value, start), true
}

// LineComment returns a rule that produces a Comment token for everything
// from prefix up to, but not including, the next line feed. The token
// value includes the prefix.
func LineComment(prefix string) Rule {
	marker := []rune(prefix)
	return func(buf *rune, r lex.Reader) (token.Token, bool) {
		if len(marker) == 0 || *buf != marker[0] {
			return token.Token{}, false
		}
		for i := 1; i < len(marker); i++ {
			if r.NextCharacter(true, i) != marker[i] {
				return token.Token{}, false
			}
		}
		start := offset(r)
		return token.New(token.Comment, accept(buf, r, func(ch rune) bool {
			return ch != '\n'
		}), start), true
	}
}

// accept consumes characters as long as they satisfy pred, and returns
// the consumed characters. It stops at the end marker.
func accept(buf *rune, r lex.Reader, pred func(rune) bool) string {
	var consumed []rune
	for *buf != r.EndMarker() && pred(*buf) {
		consumed = append(consumed, *buf)
		*buf = r.Next()
	}
	return string(consumed)
}

// offset returns the offset of the buffered character, which is
// the character right before the cursor position.
func offset(r lex.Reader) int {
	return r.Position() - 1
}

func isBlank(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r'
}

func isWhitespace(ch rune) bool {
	return ch != '\n' && unicode.IsSpace(ch)
}

func isAlphanumeric(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch)
}
