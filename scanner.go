// Package lex provides a small, embeddable scanning engine. A Scanner
// turns text into tokens by offering the current character to an ordered
// list of transforms. The first transform that recognizes a lexeme
// produces the token. If none does, a fallback produces it instead.
//
// The package does not define any token type. Embedders supply the token
// type and the transforms; see the rules package for a reference set.
package lex

// Transform attempts to recognize a lexeme that starts with the character
// in buf. The transform may consume more characters through r.
//
// Whether it matches or not, a transform must leave buf holding the next
// character that has not been examined yet, typically by assigning
// r.Next() to *buf after every consumed character. A transform that
// declines without having consumed anything leaves buf untouched.
// Violating this desynchronizes all following scans; the scanner does
// not detect it.
type Transform[T any] func(buf *rune, r Reader) (T, bool)

// Fallback is the transform that the scanner invokes if every Transform
// declined. It always produces a token, e.g. by wrapping the character
// in buf in some kind of "undefined" token. The buffer contract of
// Transform applies.
type Fallback[T any] func(buf *rune, r Reader) T

// Scanner produces tokens of type T from the text of its cursor.
// A Scanner is not safe for concurrent use. If independent inputs
// should be scanned concurrently, use one Scanner per input.
type Scanner[T any] struct {
	cursor   *Cursor
	possible []Transform[T]
	fallback Fallback[T]
}

// New creates a new scanner. The possible transforms are tried in the
// given order, and fallback is used if all of them decline. Options
// configure the scanner's cursor.
//
// New panics if fallback is nil.
func New[T any](fallback Fallback[T], possible []Transform[T], opts ...Option) *Scanner[T] {
	if fallback == nil {
		panic("lex: fallback transform must not be nil")
	}
	return &Scanner[T]{
		cursor:   NewCursor(opts...),
		possible: possible,
		fallback: fallback,
	}
}

// NextToken produces the next token. It never fails. Once the text is
// exhausted, the transforms see the end marker, so what is produced at
// the end of input is decided by the transforms, usually the fallback.
func (s *Scanner[T]) NextToken() T {
	buf := s.cursor.Next()

	result, ok := s.tryPossible(&buf)
	if !ok {
		result = s.fallback(&buf, s.cursor)
	}

	// Transforms leave the cursor one character past what buf holds,
	// so give that character back for the next call.
	s.cursor.unread()
	return result
}

func (s *Scanner[T]) tryPossible(buf *rune) (T, bool) {
	for _, transform := range s.possible {
		if tok, ok := transform(buf, s.cursor); ok {
			return tok, true
		}
	}
	var zero T
	return zero, false
}

// Cursor returns the cursor of this scanner as a Reader. Reading from it
// outside of a transform changes what the next call to NextToken sees.
func (s *Scanner[T]) Cursor() Reader {
	return s.cursor
}

// Reset replaces the scanned text and rewinds the cursor, so that the
// next token is produced from the start of text.
func (s *Scanner[T]) Reset(text string) {
	s.cursor.Reset(text)
}

// Rewind moves the cursor back to the start of the current text.
// Scanning the same text again produces the same tokens.
func (s *Scanner[T]) Rewind() {
	s.cursor.Rewind()
}

// Tokens returns a new sequence that pulls tokens from this scanner.
// The sequence never ends unless a stop rule is added with
// Sequence.Limit or Sequence.Until.
func (s *Scanner[T]) Tokens() *Sequence[T] {
	return &Sequence[T]{
		scanner: s,
		limit:   -1,
	}
}
