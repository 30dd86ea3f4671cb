// Package lexer turns source text into a token.Stream. It never fails
// partway and discards work: on a fatal scanning error it still returns
// every token scanned up to that point, plus a report.Report holding one
// diagnostic describing what went wrong and where, followed by one
// diagnostic for each opening delimiter still unclosed at that point.
package lexer

import (
	"github.com/nutlang/sqfront/dialect"
	"github.com/nutlang/sqfront/report"
	"github.com/nutlang/sqfront/token"
	"github.com/nutlang/sqfront/token/keyword"
)

// CommentPolicy selects how a block comment left open at end of input is
// handled.
type CommentPolicy uint8

const (
	// Lenient implicitly closes an unterminated block comment at end of
	// input instead of raising an error. This is the default (the zero
	// value), matching the original implementation's default behavior.
	Lenient CommentPolicy = iota

	// Strict raises EndOfInputInsideComment for a block comment that is
	// never closed.
	Strict
)

// Options configures a single Lex call.
type Options struct {
	// File is the name reported in diagnostics; purely cosmetic.
	File string

	// Comments selects the block-comment-at-EOF policy. The zero value
	// is Lenient.
	Comments CommentPolicy
}

// Lex scans source under the given dialect and returns the resulting token
// stream along with a report of anything that went wrong. A non-empty
// Report does not necessarily mean Items is empty: everything scanned
// before the failure is still present.
func Lex(source string, d dialect.Dialect, opts Options) (*token.Stream, *report.Report) {
	rpt := &report.Report{}
	var items []token.Item
	var openStack []int

	var pendingComments []token.Comment
	var pendingLines []token.TriviaLine

	pushLine := func() {
		line := token.TriviaLine{Comments: pendingComments}
		pendingComments = nil
		if n := len(items); n > 0 && items[n-1].Token.Trailing == nil {
			items[n-1].Token.Trailing = &token.NewlineMarker{Comments: line.Comments}
		} else {
			pendingLines = append(pendingLines, line)
		}
	}

	pos := 0
	for pos < len(source) {
		for pos < len(source) && isHorizontalSpace(source[pos]) {
			pos++
		}
		if pos >= len(source) {
			break
		}

		if source[pos] == '\n' {
			pushLine()
			pos++
			continue
		}

		if comment, end, lerr, ok := tryComment(source, pos, opts.File, opts.Comments); lerr != nil {
			rpt.Add(lerr.Diagnose())
			pos = len(source)
			break
		} else if ok {
			pendingComments = append(pendingComments, comment)
			pos = end
			continue
		}

		tok, end, lerr, ok := tryToken(source, pos, d, opts.File)
		if lerr != nil {
			rpt.Add(lerr.Diagnose())
			pos = len(source)
			break
		}
		if !ok {
			rpt.Add((&Error{File: opts.File, Offset: pos, Kind: InvalidInput}).Diagnose())
			pos = len(source)
			break
		}

		tok.Range = token.Range{Start: pos, End: end}
		tok.Leading = pendingLines
		pendingLines = nil
		tok.Attached = pendingComments
		pendingComments = nil

		idx := len(items)
		item := token.Item{Token: tok, Close: -1}

		if tok.Kind == token.Terminal {
			switch {
			case tok.Term.IsOpenDelimiter():
				openStack = append(openStack, idx)
			case tok.Term.IsCloseDelimiter():
				if n := len(openStack); n > 0 {
					openIdx := openStack[n-1]
					if keyword.OpenToClose[items[openIdx].Token.Term] == tok.Term {
						items[openIdx].Close = idx
						openStack = openStack[:n-1]
					}
				}
			}
		}

		items = append(items, item)
		pos = end
	}

	if len(pendingComments) > 0 {
		pushLine()
	}
	if len(pendingLines) > 0 {
		items = append(items, token.Item{
			Token: token.Token{
				Kind:    token.Empty,
				Range:   token.Range{Start: len(source), End: len(source)},
				Leading: pendingLines,
			},
			Close: -1,
		})
	}

	for _, openIdx := range openStack {
		open := items[openIdx].Token
		rpt.Add((&Error{
			File:      opts.File,
			Kind:      UnmatchedOpener,
			OpenRange: open.Range,
			OpenTerm:  open.Term,
			CloseTerm: keyword.OpenToClose[open.Term],
		}).Diagnose())
	}

	checkNesting(items)

	return &token.Stream{Source: source, Dialect: d, Items: items}, rpt
}

// tryToken scans a single non-trivia token: a literal, a symbol, or an
// identifier (possibly reclassified as a keyword terminal).
func tryToken(s string, pos int, d dialect.Dialect, file string) (token.Token, int, *Error, bool) {
	if numLit, end, ok := tryNumber(s, pos); ok {
		return token.Token{Kind: token.Literal, Text: s[pos:end], Literal: numLit}, end, nil, true
	}
	if charLit, text, end, lerr, ok := tryChar(s, pos, file); lerr != nil {
		return token.Token{}, 0, lerr, false
	} else if ok {
		return token.Token{Kind: token.Literal, Text: text, Literal: charLit}, end, nil, true
	}
	if strLit, text, end, lerr, ok := tryString(s, pos, file); lerr != nil {
		return token.Token{}, 0, lerr, false
	} else if ok {
		return token.Token{Kind: token.Literal, Text: text, Literal: strLit}, end, nil, true
	}
	if term, end, ok := trySymbol(s, pos, d); ok {
		return token.Token{Kind: token.Terminal, Term: term, Text: s[pos:end]}, end, nil, true
	}
	if name, end, ok := tryIdentifier(s, pos); ok {
		if term, isKeyword := keyword.Lookup(name); isKeyword && term.IsSupported(d) {
			return token.Token{Kind: token.Terminal, Term: term, Text: name}, end, nil, true
		}
		return token.Token{Kind: token.Identifier, Text: name}, end, nil, true
	}
	return token.Token{}, pos, nil, false
}
