package report

import "github.com/nutlang/sqfront/token"

// Span is a byte range inside a named source file, suitable for attaching
// to a diagnostic. Span itself carries no rendering logic -- turning a Span
// into a gutter-and-line-numbers display is a downstream renderer's job,
// not this package's.
type Span struct {
	File  string
	Range token.Range
}

// IsZero reports whether this is the zero Span.
func (s Span) IsZero() bool { return s.File == "" && s.Range == (token.Range{}) }
