package lex

import "fmt"

// StrideError is the value that Cursor.NextCharacter panics with if it is
// called with a stride smaller than one. This is a programming error and
// is never returned as a regular error.
type StrideError struct {
	Stride int
}

func (e *StrideError) Error() string {
	return fmt.Sprintf("stride must be at least 1, but got %d", e.Stride)
}
