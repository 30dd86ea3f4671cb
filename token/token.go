// Package token defines the lexical data model shared by the lexer and
// parser: positions and ranges, trivia (comments and blank lines), the
// Token type itself, the delimiter-paired Stream it lives in, and the
// Cursor the parser uses to walk that stream.
package token

import (
	"fmt"

	"github.com/nutlang/sqfront/token/keyword"
)

// Range is a half-open byte interval [Start, End) into the original source.
type Range struct {
	Start, End int
}

// Len returns the byte length of the range.
func (r Range) Len() int { return r.End - r.Start }

// String implements fmt.Stringer.
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

// Kind identifies what a Token fundamentally is.
type Kind uint8

const (
	// Empty is the zero-length sentinel token appended at EOF when trivia
	// remains that must still be attached to something (section 4.B "EOF
	// with trailing trivia").
	Empty Kind = iota
	// Terminal is a reserved word or symbol from the keyword table.
	Terminal
	// Literal is an int, char, float, or string literal.
	Literal
	// Identifier is a plain, non-reserved name.
	Identifier
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Terminal:
		return "Terminal"
	case Literal:
		return "Literal"
	case Identifier:
		return "Identifier"
	default:
		return "Kind(?)"
	}
}

// LiteralKind distinguishes the four literal shapes from spec section 3.
type LiteralKind uint8

const (
	Int LiteralKind = iota
	Char
	Float
	String
)

// IntBase records which numeral base an integer literal was written in.
// The parsed value is always normalized to a signed 64-bit integer; Base is
// preserved only so a round-tripping consumer can reprint the original
// spelling's radix.
type IntBase uint8

const (
	Decimal IntBase = iota
	Octal
	Hexadecimal
)

// StringKind distinguishes the three string sub-forms from section 4.B.
type StringKind uint8

const (
	StringPlain StringKind = iota
	StringVerbatim
	StringAsset
)

// Literal carries the kind-specific metadata for a Literal-kind Token. Only
// the fields relevant to Kind are meaningful; zero values elsewhere.
type Literal struct {
	Kind       LiteralKind
	Base       IntBase    // meaningful when Kind == Int
	StringKind StringKind // meaningful when Kind == String
	Int        int64      // parsed value, meaningful when Kind == Int
	Float      float64    // parsed value, meaningful when Kind == Float
}

// CommentKind distinguishes the three comment shapes from spec section 3.
type CommentKind uint8

const (
	BlockComment CommentKind = iota
	LineComment
	ScriptLineComment
)

// Comment is one comment, wrapping its inner text verbatim (the delimiters
// themselves -- "/*" "*/", "//", "#" -- are not included in Text).
type Comment struct {
	Kind  CommentKind
	Range Range
	Text  string
}

// TriviaLine is an ordered sequence of comments that share a logical line,
// i.e. appear between two physical newlines with no non-comment token
// between them. A TriviaLine with no comments records a blank line
// (spec section 4.B rule 3), preserved so a formatter can reproduce it.
type TriviaLine struct {
	Comments []Comment
}

// IsBlank reports whether this trivia line is just a blank-line marker.
func (l TriviaLine) IsBlank() bool { return len(l.Comments) == 0 }

// NewlineMarker records that a newline followed a token before the next
// token began, along with any comments that appeared between the token and
// that newline (its "trailing-line" comments).
type NewlineMarker struct {
	Comments []Comment
}

// Token is one lexical element: a kind, a source range, and the trivia that
// surrounds it. Every comment in a source file is attached to exactly one
// token, in exactly one of Leading, Attached, or Trailing.
type Token struct {
	Kind    Kind
	Range   Range
	Text    string // raw source slice for this token (identifier name, literal spelling including any delimiters, or keyword/symbol spelling)
	Term    keyword.Terminal
	Literal Literal

	// Leading is the sequence of trivia lines -- separated by blank lines --
	// that appeared before this token and were not attributed to the
	// previous token's trailing-line marker.
	Leading []TriviaLine
	// Attached is the trivia that appeared on the same logical line
	// immediately before this token.
	Attached []Comment
	// Trailing is present iff a newline appears after this token before the
	// next token. The last token of the input also gets one when comments
	// follow it on its line, so that those comments have a home.
	Trailing *NewlineMarker
}

// IsNil reports whether t is the zero Token.
func (t Token) IsNil() bool {
	return t.Kind == Empty && t.Range == Range{} && t.Text == ""
}
