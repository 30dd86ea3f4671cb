package token

import "github.com/nutlang/sqfront/dialect"

// Cursor is an immutable, value-type window onto a Stream: a contiguous
// [start, end) slice of item indices. Every method that "advances" the
// cursor returns a new Cursor rather than mutating the receiver, so a
// parser can save a Cursor value, try something speculative, and fall back
// to the saved value on failure without any explicit stack of marks.
type Cursor struct {
	stream     *Stream
	start, end int
}

// NewCursor returns a Cursor over the whole of a Stream.
func NewCursor(s *Stream) Cursor {
	return Cursor{stream: s, start: 0, end: len(s.Items)}
}

// Dialect reports which dialect the underlying stream was lexed under.
func (c Cursor) Dialect() dialect.Dialect { return c.stream.Dialect }

// Index returns this cursor's position as an absolute index into the
// owning Stream's Items, for use in diagnostic ranges.
func (c Cursor) Index() int { return c.start }

// IsEnded reports whether the cursor's window is empty.
func (c Cursor) IsEnded() bool { return c.start >= c.end }

// Peek returns the token at the front of the window without consuming it.
// The second result is false if the cursor is ended.
func (c Cursor) Peek() (Token, bool) {
	if c.IsEnded() {
		return Token{}, false
	}
	return c.stream.Items[c.start].Token, true
}

// PeekAt returns the token n positions ahead of the front of the window
// (PeekAt(0) is equivalent to Peek), without consuming anything.
func (c Cursor) PeekAt(n int) (Token, bool) {
	i := c.start + n
	if n < 0 || i >= c.end {
		return Token{}, false
	}
	return c.stream.Items[i].Token, true
}

// PeekPrev returns the token immediately before the front of this window,
// looking outside the window if necessary. Used to check whether a newline
// separates the previous token from the current position.
func (c Cursor) PeekPrev() (Token, bool) {
	if c.start <= 0 || c.start > len(c.stream.Items) {
		return Token{}, false
	}
	return c.stream.Items[c.start-1].Token, true
}

// IsNewline reports whether a newline appears between the previous token
// and the cursor's current position, i.e. whether PeekPrev has a Trailing
// marker. Used by statement-boundary rules that care about line breaks.
func (c Cursor) IsNewline() bool {
	prev, ok := c.PeekPrev()
	return ok && prev.Trailing != nil
}

// Pop consumes and returns the token at the front of the window, along with
// the Cursor positioned just after it. The second result is false (and the
// returned Cursor is identical to the receiver) if the cursor is ended.
func (c Cursor) Pop() (Token, Cursor, bool) {
	tok, ok := c.Peek()
	if !ok {
		return Token{}, c, false
	}
	return tok, Cursor{stream: c.stream, start: c.start + 1, end: c.end}, true
}

// SplitFirst is an alias of Pop kept for readability at call sites that
// read as "split off the first token", mirroring the vocabulary of
// separated-list parsing helpers.
func (c Cursor) SplitFirst() (Token, Cursor, bool) { return c.Pop() }

// SplitAt divides the window into two cursors at relative offset n: items
// [0, n) and [n, end). n is clamped to the window's bounds.
func (c Cursor) SplitAt(n int) (head, rest Cursor) {
	if n < 0 {
		n = 0
	}
	mid := c.start + n
	if mid > c.end {
		mid = c.end
	}
	head = Cursor{stream: c.stream, start: c.start, end: mid}
	rest = Cursor{stream: c.stream, start: mid, end: c.end}
	return head, rest
}

// SplitDelimited treats the token at the front of the window as an opening
// delimiter and, using its precomputed Close index, splits the remainder of
// the stream into the tokens strictly between the opener and its closer
// (inner), and everything from just after the closer onward (rest). ok is
// false if the front token is not a paired opener within this window.
func (c Cursor) SplitDelimited() (inner, rest Cursor, ok bool) {
	if c.IsEnded() {
		return Cursor{}, c, false
	}
	item := c.stream.Items[c.start]
	if item.Close < 0 || item.Close >= c.end {
		return Cursor{}, c, false
	}
	inner = Cursor{stream: c.stream, start: c.start + 1, end: item.Close}
	rest = Cursor{stream: c.stream, start: item.Close + 1, end: c.end}
	return inner, rest, true
}

// Stream returns the underlying stream this cursor windows over, for
// callers that need Stream.Text or Stream.Source.
func (c Cursor) Stream() *Stream { return c.stream }
