package lex

// Sequence is a lazy, single-pass sequence of tokens. Every call to Next
// produces exactly one token from the underlying scanner; nothing is
// buffered ahead. A sequence is not restartable. To scan the text again,
// rewind the scanner and create a new sequence.
type Sequence[T any] struct {
	scanner *Scanner[T]

	limit int
	until []func(T) bool

	count int
	done  bool
}

// Limit makes the sequence end after n tokens.
// A negative n is treated as 0.
func (q *Sequence[T]) Limit(n int) *Sequence[T] {
	if n < 0 {
		n = 0
	}
	q.limit = n
	return q
}

// Until makes the sequence end at the first token for which stop returns
// true. That token is not yielded. Multiple stop functions may be added;
// the sequence ends as soon as any of them returns true.
func (q *Sequence[T]) Until(stop func(T) bool) *Sequence[T] {
	q.until = append(q.until, stop)
	return q
}

// Next returns the next token of the sequence. If the sequence has ended,
// the zero value and false are returned, and will be on every
// following call.
func (q *Sequence[T]) Next() (T, bool) {
	var zero T
	if q.done {
		return zero, false
	}
	if q.limit >= 0 && q.count >= q.limit {
		q.done = true
		return zero, false
	}

	tok := q.scanner.NextToken()
	for _, stop := range q.until {
		if stop(tok) {
			q.done = true
			return zero, false
		}
	}
	q.count++
	return tok, true
}

// Count returns the number of tokens that this sequence has yielded.
func (q *Sequence[T]) Count() int {
	return q.count
}

// Collect drains the sequence and returns all remaining tokens. Collect
// does not return for a sequence without a stop rule.
func (q *Sequence[T]) Collect() []T {
	var tokens []T
	for tok, ok := q.Next(); ok; tok, ok = q.Next() {
		tokens = append(tokens, tok)
	}
	return tokens
}
