// Package grammar makes rule based scanners usable as lexer for
// github.com/alecthomas/participle/v2 parsers.
package grammar

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/tsatke/lex"
	"github.com/tsatke/lex/rules"
	"github.com/tsatke/lex/token"
)

// Definition is a lexer.Definition that scans with the given rules.
// Symbol names are the names of the token types, e.g. "Identifier".
type Definition struct {
	rules     []rules.Rule
	endMarker rune
}

var _ lexer.Definition = (*Definition)(nil)

// Option configures a Definition.
type Option func(*Definition)

// WithRules sets the rules that the definition scans with.
func WithRules(set ...rules.Rule) Option {
	return func(d *Definition) {
		d.rules = set
	}
}

// WithEndMarker sets the end marker of the underlying scanner.
// Occurrences of the marker inside the input are lexed as Undefined
// tokens and do not end the input.
func WithEndMarker(marker rune) Option {
	return func(d *Definition) {
		d.endMarker = marker
	}
}

// New creates a new definition, applying all given options.
// Without options, it scans with rules.Standard.
func New(opts ...Option) *Definition {
	d := &Definition{
		rules:     rules.Standard(),
		endMarker: lex.DefaultEndMarker,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Symbols returns the participle token type of every token type, plus EOF.
func (d *Definition) Symbols() map[string]lexer.TokenType {
	symbols := map[string]lexer.TokenType{
		"EOF": lexer.EOF,
	}
	for _, typ := range token.Types() {
		symbols[typ.String()] = lexer.TokenType(typ)
	}
	return symbols
}

// Lex reads all of r and returns a lexer over its content.
func (d *Definition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read all: %w", err)
	}
	text := string(data)
	return &scanningLexer{
		scanner: rules.New(d.rules,
			lex.WithText(text),
			lex.WithEndMarker(d.endMarker),
		),
		endMarker: d.endMarker,
		length:    utf8.RuneCountInString(text),
		locator:   newLocator(filename, text),
	}, nil
}

type scanningLexer struct {
	scanner   *lex.Scanner[token.Token]
	endMarker rune
	length    int
	locator   *locator
}

func (l *scanningLexer) Next() (lexer.Token, error) {
	tok := l.scanner.NextToken()
	pos := l.locator.locate(tok.Offset)
	if rules.IsEnd(tok, l.endMarker, l.length) {
		return lexer.Token{Type: lexer.EOF, Pos: pos}, nil
	}
	return lexer.Token{
		Type:  lexer.TokenType(tok.Type),
		Value: tok.Value,
		Pos:   pos,
	}, nil
}

// locator converts rune offsets into participle positions. Offsets must
// be requested in non-decreasing order.
type locator struct {
	filename string
	text     string

	runes  int
	bytes  int
	line   int
	column int
}

func newLocator(filename, text string) *locator {
	return &locator{
		filename: filename,
		text:     text,
		line:     1,
		column:   1,
	}
}

func (l *locator) locate(offset int) lexer.Position {
	for l.runes < offset && l.bytes < len(l.text) {
		r, size := utf8.DecodeRuneInString(l.text[l.bytes:])
		if r == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
		l.bytes += size
		l.runes++
	}
	return lexer.Position{
		Filename: l.filename,
		Offset:   l.bytes,
		Line:     l.line,
		Column:   l.column,
	}
}
