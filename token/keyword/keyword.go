// Package keyword is the token vocabulary: the fixed table of reserved
// identifiers and symbols that the lexer consults to classify an
// identifier-shaped or symbol-shaped run of source text, gated by dialect.
package keyword

import "github.com/nutlang/sqfront/dialect"

// Terminal is a reserved word or symbol recognized by the lexer. The zero
// value, None, means "not a terminal" (i.e. a plain identifier, literal, or
// unrecognized byte).
type Terminal uint8

// IsWord returns whether this terminal is an identifier-shaped keyword
// (as opposed to a punctuation symbol).
func (t Terminal) IsWord() bool {
	return t.properties()&word != 0
}

// IsSymbol returns whether this terminal is a punctuation symbol.
func (t Terminal) IsSymbol() bool {
	return t.properties()&punct != 0
}

// IsSupported returns whether this terminal is recognized under the given
// dialect. Symbols are supported under every dialect; only word-shaped
// keywords are gated.
func (t Terminal) IsSupported(d dialect.Dialect) bool {
	p := t.properties()
	if p == 0 {
		return false
	}
	if p&punct != 0 {
		return true
	}
	switch d {
	case dialect.Squirrel3:
		return p&classic != 0
	case dialect.SquirrelRespawn:
		return p&extended != 0
	default:
		return false
	}
}

// Text returns the canonical source spelling of this terminal, e.g.
// "foreach" or "<=>". Returns "" for None or an out-of-range value.
func (t Terminal) Text() string {
	if int(t) < len(spellings) {
		return spellings[t]
	}
	return ""
}

// String implements fmt.Stringer.
func (t Terminal) String() string {
	if s := Text(t); s != "" {
		return s
	}
	return "Terminal(?)"
}

// Text is a free-function alias of Terminal.Text, handy in format strings.
func Text(t Terminal) string { return t.Text() }
