package lex

// DefaultEndMarker is the end marker that a cursor uses if
// none is configured with WithEndMarker.
const DefaultEndMarker rune = 0

// Reader is the part of a Cursor that transforms may use. It allows
// a transform to look at upcoming characters and to consume them,
// but not to replace the text that is being scanned.
type Reader interface {
	// NextCharacter returns the character stride-1 positions after the
	// current position. Unless peek is true, the position is advanced by
	// stride. If there is no such character, the end marker is returned.
	NextCharacter(peek bool, stride int) rune
	// Next is equivalent to NextCharacter(false, 1).
	Next() rune
	// Peek is equivalent to NextCharacter(true, 1).
	Peek() rune
	// EndMarker returns the character that signals exhausted input.
	EndMarker() rune
	// Position returns the index of the next character to be consumed.
	Position() int
}

// Cursor owns a text and a position within that text. It is not safe
// for concurrent use.
type Cursor struct {
	text      []rune
	position  int
	endMarker rune
}

var _ Reader = (*Cursor)(nil)

// NewCursor creates a new cursor at position 0, applying all given options.
// Without options, the cursor scans an empty text and uses
// DefaultEndMarker.
func NewCursor(opts ...Option) *Cursor {
	c := &Cursor{
		endMarker: DefaultEndMarker,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NextCharacter returns the character at position+stride-1. If that index
// is past the end of the text, the end marker is returned instead. Once
// the cursor is exhausted, every further call with a stride of 1 returns
// the end marker again.
//
// If peek is false, the position is advanced by stride, as long as the
// target index does not exceed len(text). This lets the position rest
// one past the end of the text after draining it, which Scanner relies on
// when it gives back one character of lookahead after each token.
//
// NextCharacter panics with a *StrideError if stride is smaller than 1.
func (c *Cursor) NextCharacter(peek bool, stride int) rune {
	if stride < 1 {
		panic(&StrideError{Stride: stride})
	}

	target := c.position + stride - 1

	ch := c.endMarker
	if target < len(c.text) {
		ch = c.text[target]
	}

	if !peek && target <= len(c.text) {
		c.position += stride
	}
	return ch
}

// Next consumes and returns the next character.
func (c *Cursor) Next() rune {
	return c.NextCharacter(false, 1)
}

// Peek returns the next character without consuming it.
func (c *Cursor) Peek() rune {
	return c.NextCharacter(true, 1)
}

func (c *Cursor) EndMarker() rune {
	return c.endMarker
}

func (c *Cursor) Position() int {
	return c.position
}

// Text returns the text that this cursor scans.
func (c *Cursor) Text() string {
	return string(c.text)
}

// Done reports whether all characters of the text have been consumed.
func (c *Cursor) Done() bool {
	return c.position >= len(c.text)
}

// Rewind moves the cursor back to the start of its text.
func (c *Cursor) Rewind() {
	c.position = 0
}

// Reset replaces the text of this cursor and rewinds it.
// The end marker is kept.
func (c *Cursor) Reset(text string) {
	c.text = []rune(text)
	c.Rewind()
}

// unread moves the position back by one character,
// but never before the start of the text.
func (c *Cursor) unread() {
	if c.position > 0 {
		c.position--
	}
}
