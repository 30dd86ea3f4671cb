package lexer

import (
	"github.com/nutlang/sqfront/dialect"
	"github.com/nutlang/sqfront/token/keyword"
)

func isHorizontalSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isOctalDigit(b byte) bool { return b >= '0' && b <= '7' }

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentifierStart(b byte) bool { return b == '_' || isAlpha(b) }

func isIdentifierChar(b byte) bool { return isIdentifierStart(b) || isDigit(b) }

// tryIdentifier scans the longest run of identifier characters starting at
// pos, provided the first one is identifier-start-shaped.
func tryIdentifier(s string, pos int) (text string, end int, ok bool) {
	if pos >= len(s) || !isIdentifierStart(s[pos]) {
		return "", pos, false
	}
	end = pos + 1
	for end < len(s) && isIdentifierChar(s[end]) {
		end++
	}
	return s[pos:end], end, true
}

// trySymbol greedily matches the longest known symbol spelling starting at
// pos, gated by dialect (symbols are always dialect-independent, but the
// lookup still goes through IsSupported for uniformity with keywords).
func trySymbol(s string, pos int, d dialect.Dialect) (keyword.Terminal, int, bool) {
	rest := s[pos:]
	for _, sym := range keyword.Symbols {
		if !sym.Terminal.IsSupported(d) {
			continue
		}
		if len(sym.Text) <= len(rest) && rest[:len(sym.Text)] == sym.Text {
			return sym.Terminal, pos + len(sym.Text), true
		}
	}
	return keyword.None, pos, false
}
