// Package ast defines the syntax tree produced by the parser: a typed,
// reference-based tree whose nodes record every significant token they
// consumed, by reference into the token stream they were built from. The
// stream must outlive any tree built over it. Three tokens are consumed
// without being kept: the 'default' keyword of a switch case, a ';' ending
// a class field, and a ';' between an if's then-branch and its 'else'.
package ast

import "github.com/nutlang/sqfront/token"

// Node is implemented by every syntax tree node.
type Node interface {
	// Range spans from the first to the last token this node (and its
	// children) keep. A statement's closing ';' lies inside the range only
	// for EmptyStmt, BreakStmt, ContinueStmt, GlobalizeAllFunctionsStmt and
	// ExpressionStmt; the other statements' ranges end before it. A computed
	// key's '[' lies outside the range of a TableField, and of a
	// ClassFieldMember without 'static'.
	Range() token.Range
}

// Type is a type expression: local, var, plain, struct, array, generic,
// function-reference, reference, or nullable.
type Type interface {
	Node
	isType()
}

// Expr is an expression node.
type Expr interface {
	Node
	isExpr()
}

// Stmt is a statement node.
type Stmt interface {
	Node
	isStmt()
}

// span is an embeddable helper that stores a precomputed range, for nodes
// whose range isn't trivially derivable from a single token.
type span struct {
	R token.Range
}

func (s span) Range() token.Range { return s.R }

func join(a, b token.Range) token.Range {
	return token.Range{Start: a.Start, End: b.End}
}
