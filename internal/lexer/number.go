package lexer

import (
	"strconv"

	"github.com/nutlang/sqfront/token"
)

func digitRun(s string, pos int, valid func(byte) bool) int {
	end := pos
	for end < len(s) && valid(s[end]) {
		end++
	}
	return end
}

// tryInt scans an integer literal, choosing decimal, octal, or hexadecimal
// based on prefix, same as the reference lexer: "0x" forces hex, a leading
// "0" followed by another digit forces octal, anything else is decimal. If
// the chosen base turns out to have no valid digits following the prefix
// (e.g. "0x" with no hex digits, or "08" where 8 isn't an octal digit), the
// whole literal is rejected outright -- it does not fall back to another
// base or to a float.
func tryInt(s string, pos int) (lit token.Literal, end int, ok bool) {
	if pos >= len(s) || !isDigit(s[pos]) {
		return token.Literal{}, pos, false
	}

	base := token.Decimal
	digitsStart := pos
	valid := isDigit

	switch {
	case pos+1 < len(s) && s[pos] == '0' && (s[pos+1] == 'x' || s[pos+1] == 'X'):
		base = token.Hexadecimal
		digitsStart = pos + 2
		valid = isHexDigit
	case s[pos] == '0' && pos+1 < len(s) && isDigit(s[pos+1]):
		base = token.Octal
		digitsStart = pos + 1
		valid = isOctalDigit
	}

	digitsEnd := digitRun(s, digitsStart, valid)
	if digitsEnd == digitsStart {
		return token.Literal{}, pos, false
	}

	radix := 10
	switch base {
	case token.Hexadecimal:
		radix = 16
	case token.Octal:
		radix = 8
	}
	val, err := strconv.ParseInt(s[digitsStart:digitsEnd], radix, 64)
	if err != nil {
		return token.Literal{}, pos, false
	}

	return token.Literal{Kind: token.Int, Base: base, Int: val}, digitsEnd, true
}

// tryFloat scans a float literal: digits, an optional '.' and more digits,
// and an optional exponent. The reference lexer has a quirk where it then
// silently consumes (but discards) any further run of '.' or digit bytes
// immediately following a successfully parsed float -- so "1.2.3.4" lexes
// as a single float token spanning the whole run, worth just "1.2".
func tryFloat(s string, pos int) (lit token.Literal, end int, ok bool) {
	if pos >= len(s) || !(isDigit(s[pos]) || s[pos] == '.') {
		return token.Literal{}, pos, false
	}

	i := digitRun(s, pos, isDigit)
	hasDot := false
	if i < len(s) && s[i] == '.' {
		hasDot = true
		i++
		i = digitRun(s, i, isDigit)
	}
	if i == pos || (hasDot && i == pos+1 && s[pos] == '.') {
		return token.Literal{}, pos, false
	}

	mantissaEnd := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		digitsStart := j
		j = digitRun(s, j, isDigit)
		if j > digitsStart {
			mantissaEnd = j
		}
	}

	val, err := strconv.ParseFloat(s[pos:mantissaEnd], 64)
	if err != nil {
		return token.Literal{}, pos, false
	}

	end = mantissaEnd
	for end < len(s) && (s[end] == '.' || isDigit(s[end])) {
		end++
	}
	return token.Literal{Kind: token.Float, Float: val}, end, true
}

// tryNumber scans either an integer or a float, preferring an integer
// unless it's immediately followed by '.', in which case the whole thing is
// rescanned as a float from the start.
func tryNumber(s string, pos int) (lit token.Literal, end int, ok bool) {
	if pos < len(s) && isDigit(s[pos]) {
		intLit, intEnd, intOK := tryInt(s, pos)
		if !intOK {
			// A hex or octal prefix with no valid digits following it is a
			// dead end, same as the reference lexer: it does not fall back
			// to decimal or to a float.
			return token.Literal{}, pos, false
		}
		if intEnd >= len(s) || s[intEnd] != '.' {
			return intLit, intEnd, true
		}
		// An integer immediately followed by '.' is actually a float;
		// rescan the whole run from pos.
	}
	return tryFloat(s, pos)
}
