package lexer

import "github.com/nutlang/sqfront/token"

// scanQuoted scans a delimiter-quoted run starting at pos (s[pos] must be
// delim). Backslash escapes are skipped over without being interpreted --
// the inner text is returned byte-for-byte, escapes and all, since
// decoding them is a downstream concern, not the lexer's.
func scanQuoted(s string, pos int, delim byte, file string) (inner string, end int, lerr *Error, ok bool) {
	if pos >= len(s) || s[pos] != delim {
		return "", pos, nil, false
	}
	i := pos + 1
	for {
		if i >= len(s) {
			return "", 0, &Error{File: file, Offset: len(s), Kind: EndOfInputInsideString}, false
		}
		c := s[i]
		if c == '\n' {
			return "", 0, &Error{File: file, Offset: i, Kind: EndOfLineInsideString}, false
		}
		if c == '\\' {
			i++
			if i < len(s) {
				i++
			}
			continue
		}
		if c == delim {
			return s[pos+1 : i], i + 1, nil, true
		}
		i++
	}
}

// scanVerbatim scans a delimiter-quoted run the way a verbatim string
// works: it may span newlines, backslash has no escaping meaning, and a
// doubled delimiter ("" for delim '"') is literal content rather than the
// closing quote.
func scanVerbatim(s string, pos int, delim byte, file string) (inner string, end int, lerr *Error, ok bool) {
	if pos >= len(s) || s[pos] != delim {
		return "", pos, nil, false
	}
	i := pos + 1
	for {
		if i >= len(s) {
			return "", 0, &Error{File: file, Offset: len(s), Kind: EndOfInputInsideString}, false
		}
		c := s[i]
		if c == delim {
			if i+1 < len(s) && s[i+1] == delim {
				i += 2
				continue
			}
			return s[pos+1 : i], i + 1, nil, true
		}
		i++
	}
}

// tryString scans a string literal: plain "...", verbatim @"...", or asset
// $"...".
func tryString(s string, pos int, file string) (lit token.Literal, text string, end int, lerr *Error, ok bool) {
	if pos < len(s) && s[pos] == '@' && pos+1 < len(s) && s[pos+1] == '"' {
		_, e, err, matched := scanVerbatim(s, pos+1, '"', file)
		if err != nil {
			return token.Literal{}, "", 0, err, false
		}
		if !matched {
			return token.Literal{}, "", 0, nil, false
		}
		return token.Literal{Kind: token.String, StringKind: token.StringVerbatim}, s[pos:e], e, nil, true
	}
	if pos < len(s) && s[pos] == '$' && pos+1 < len(s) && s[pos+1] == '"' {
		_, e, err, matched := scanQuoted(s, pos+1, '"', file)
		if err != nil {
			return token.Literal{}, "", 0, err, false
		}
		if !matched {
			return token.Literal{}, "", 0, nil, false
		}
		return token.Literal{Kind: token.String, StringKind: token.StringAsset}, s[pos:e], e, nil, true
	}
	_, e, err, matched := scanQuoted(s, pos, '"', file)
	if err != nil {
		return token.Literal{}, "", 0, err, false
	}
	if !matched {
		return token.Literal{}, "", 0, nil, false
	}
	return token.Literal{Kind: token.String, StringKind: token.StringPlain}, s[pos:e], e, nil, true
}

// tryChar scans a character literal '...'.
func tryChar(s string, pos int, file string) (lit token.Literal, text string, end int, lerr *Error, ok bool) {
	_, e, err, matched := scanQuoted(s, pos, '\'', file)
	if err != nil {
		return token.Literal{}, "", 0, err, false
	}
	if !matched {
		return token.Literal{}, "", 0, nil, false
	}
	return token.Literal{Kind: token.Char}, s[pos:e], e, nil, true
}
