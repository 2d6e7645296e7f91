package lex

// Option configures a Cursor. Options are applied in the order
// they are given, so later options override earlier ones.
type Option func(*Cursor)

// WithText sets the text that the cursor scans.
func WithText(text string) Option {
	return func(c *Cursor) {
		c.text = []rune(text)
	}
}

// WithEndMarker sets the character that is returned once the cursor is
// exhausted. It should not occur in regular input, so that consumers can
// tell the end of input apart from real characters. Defaults to NUL.
func WithEndMarker(marker rune) Option {
	return func(c *Cursor) {
		c.endMarker = marker
	}
}
