package lexer

import (
	"strings"

	"github.com/nutlang/sqfront/token"
)

// restOfLine returns the text from pos up to (but not including) the next
// newline, or to the end of input if there is none.
func restOfLine(s string, pos int) (text string, end int) {
	if idx := strings.IndexByte(s[pos:], '\n'); idx >= 0 {
		return s[pos : pos+idx], pos + idx
	}
	return s[pos:], len(s)
}

// tryComment scans one comment of any of the three kinds at pos. A block
// comment left unterminated at end of input is an error only under the
// Strict policy; under the default Lenient policy it is implicitly closed
// at end of input instead. Line comments always succeed since they're
// bounded by end of input if nothing else.
func tryComment(s string, pos int, file string, policy CommentPolicy) (tok token.Comment, end int, lerr *Error, ok bool) {
	switch {
	case strings.HasPrefix(s[pos:], "/*"):
		body := pos + 2
		idx := strings.Index(s[body:], "*/")
		if idx < 0 {
			if policy == Strict {
				return token.Comment{}, 0, &Error{File: file, Offset: len(s), Kind: EndOfInputInsideComment}, false
			}
			return token.Comment{Kind: token.BlockComment, Range: token.Range{Start: pos, End: len(s)}, Text: s[body:]}, len(s), nil, true
		}
		end = body + idx + 2
		return token.Comment{Kind: token.BlockComment, Range: token.Range{Start: pos, End: end}, Text: s[body : body+idx]}, end, nil, true

	case pos < len(s) && s[pos] == '#':
		text, e := restOfLine(s, pos+1)
		return token.Comment{Kind: token.ScriptLineComment, Range: token.Range{Start: pos, End: e}, Text: text}, e, nil, true

	case strings.HasPrefix(s[pos:], "//"):
		text, e := restOfLine(s, pos+2)
		return token.Comment{Kind: token.LineComment, Range: token.Range{Start: pos, End: e}, Text: text}, e, nil, true

	default:
		return token.Comment{}, pos, nil, false
	}
}
