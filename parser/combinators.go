package parser

import (
	"github.com/nutlang/sqfront/internal/taxa"
	"github.com/nutlang/sqfront/token"
	"github.com/nutlang/sqfront/token/keyword"
)

// parseFn is the shape every production has: given a cursor, it either
// succeeds with a value and the cursor advanced past what it consumed, or
// fails with an Error that is tentative (the caller may try something
// else) unless Fatal is already set.
type parseFn[T any] func(token.Cursor) (T, token.Cursor, *Error)

func zero[T any]() T { var z T; return z }

// determines runs first; if it fails, the failure is tentative and
// propagates unchanged against the ORIGINAL cursor (first consumed nothing
// usable). If first succeeds, determines runs cont and commits: any error
// cont returns is marked Fatal, since a disambiguating token has now been
// read and no other alternative may be attempted.
func determines[T, U any](c token.Cursor, first parseFn[T], cont func(T, token.Cursor) (U, token.Cursor, *Error)) (U, token.Cursor, *Error) {
	v, c2, err := first(c)
	if err != nil {
		return zero[U](), c, err
	}
	u, c3, err := cont(v, c2)
	if err != nil {
		err.Fatal = true
		return zero[U](), c3, err
	}
	return u, c3, nil
}

// opens parses a delimited region: c must be positioned at a paired
// opening delimiter. It splits the cursor at the precomputed close index,
// runs inner over the interior, requires inner to consume it completely,
// and returns the value plus a cursor positioned just after the closer.
// Any failure -- inner's, or leftover unconsumed tokens -- is fatal and
// carries a context spanning the whole delimited region, labelled place.
func opens[T any](c token.Cursor, file string, place taxa.Place, inner parseFn[T]) (T, token.Token, token.Cursor, *Error) {
	open, ok := c.Peek()
	if !ok {
		return zero[T](), token.Token{}, c, &Error{File: file, Kind: ExpectedTerminal, Range: eofRange(c), Fatal: true}
	}
	innerCur, rest, ok := c.SplitDelimited()
	if !ok {
		return zero[T](), token.Token{}, c, &Error{File: file, Kind: ExpectedTerminal, Range: open.Range, Fatal: true}
	}
	closer, _ := rest.PeekPrev()

	ctx := &Context{Range: join(open.Range, closer.Range), Place: place}

	val, innerRest, err := inner(innerCur)
	if err != nil {
		err.Fatal = true
		if err.Context == nil {
			err.Context = ctx
		}
		return zero[T](), closer, rest, err
	}
	if !innerRest.IsEnded() {
		tok, _ := innerRest.Peek()
		return zero[T](), closer, rest, &Error{
			File: file, Kind: ExpectedTerminal, Term1: closer.Term, Range: tok.Range,
			Fatal: true, Context: ctx,
		}
	}
	return val, closer, rest, nil
}

// eofRange returns a zero-length range at the end of the cursor's window,
// for errors that occur with nothing left to point at.
func eofRange(c token.Cursor) token.Range {
	if prev, ok := c.PeekPrev(); ok {
		return token.Range{Start: prev.Range.End, End: prev.Range.End}
	}
	return token.Range{}
}

func join(a, b token.Range) token.Range { return token.Range{Start: a.Start, End: b.End} }

// expectTerm pops the cursor's front token if it's the given terminal,
// otherwise returns a tentative ExpectedTerminal error.
func expectTerm(c token.Cursor, file string, want keyword.Terminal) (token.Token, token.Cursor, *Error) {
	tok, c2, ok := c.Pop()
	if !ok || tok.Kind != token.Terminal || tok.Term != want {
		return token.Token{}, c, &Error{File: file, Kind: ExpectedTerminal, Term1: want, Range: peekRange(c)}
	}
	return tok, c2, nil
}

// peekRange is the range to blame when a production fails right where it
// stands: the next token if any, else a zero-length range at EOF.
func peekRange(c token.Cursor) token.Range {
	if tok, ok := c.Peek(); ok {
		return tok.Range
	}
	return eofRange(c)
}
