package token

import "github.com/nutlang/sqfront/dialect"

// Item is one entry in a Stream: a token plus, for an opening delimiter
// token, the index of its matching closer.
type Item struct {
	Token Token
	// Close is the index into the owning Stream's Items of this token's
	// matching closing delimiter, or -1 if Token is not an opening
	// delimiter (or the closer was never found, e.g. truncated input).
	Close int
}

// Stream is the lexer's output: every token scanned from one source text,
// in order, with delimiter pairs pre-resolved so the parser never has to
// rescan for a matching brace or bracket.
type Stream struct {
	Source  string
	Dialect dialect.Dialect
	Items   []Item
}

// Text returns the raw source text spanned by a token's range.
func (s *Stream) Text(t Token) string {
	return s.Source[t.Range.Start:t.Range.End]
}

// Len returns the number of items in the stream, including the trailing
// Empty sentinel token if one was appended.
func (s *Stream) Len() int { return len(s.Items) }
