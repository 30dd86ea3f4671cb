package ast

import "github.com/nutlang/sqfront/token"

// List1 is one or more T, each pair separated by a token of kind S
// (S is not stored as a value -- only its presence between items matters --
// so the separator tokens themselves are kept in Seps for round-tripping).
type List1[T Node] struct {
	Items []T
	Seps  []token.Token // len(Seps) == len(Items) - 1, except as ListTrailing1 notes
}

// Range spans the first item to the last.
func (l List1[T]) Range() token.Range {
	if len(l.Items) == 0 {
		return token.Range{}
	}
	return join(l.Items[0].Range(), l.Items[len(l.Items)-1].Range())
}

// List0 is a possibly-empty List1.
type List0[T Node] struct {
	List1[T]
}

// ListTrailing1 is a List1 with an optional trailing separator. When the
// parser sets Trailing, it also appends that token to Seps, so that
// len(Seps) == len(Items); the arguments of a generic type are the one
// exception and keep a trailing ',' only in Trailing.
type ListTrailing1[T Node] struct {
	List1[T]
	Trailing *token.Token
}

// ListTrailing0 is a possibly-empty ListTrailing1.
type ListTrailing0[T Node] struct {
	ListTrailing1[T]
}
