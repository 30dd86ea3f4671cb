// Package parser implements the recursive-descent, precedence-climbing
// parser that turns a lexed token.Stream into an ast.Program (or a bare
// ast.Expr for standalone expression parsing).
package parser

import (
	"github.com/nutlang/sqfront/ast"
	"github.com/nutlang/sqfront/report"
	"github.com/nutlang/sqfront/token"
)

// Parse parses a whole document as a sequence of top-level statements.
// It always returns a usable (possibly partial) *ast.Program; callers
// should check the returned Report for errors rather than a nil check.
func Parse(stream *token.Stream, file string) (*ast.Program, *report.Report) {
	rep := &report.Report{}
	c := token.NewCursor(stream)

	stmts, rest, err := parseStmtList(c, file)
	if err != nil {
		rep.Add(err.Diagnose())
	}

	eof, _ := lastToken(rest, stream)
	return &ast.Program{File: file, Stmts: stmts, EOF: eof}, rep
}

// ParseExpression parses a single standalone expression spanning the
// entire stream, useful for embedders that evaluate expression snippets
// (e.g. a REPL or a debugger watch expression) without a statement
// wrapper.
func ParseExpression(stream *token.Stream, file string) (ast.Expr, *report.Report) {
	rep := &report.Report{}
	c := token.NewCursor(stream)

	e, rest, err := parseExpr(c, file)
	if err != nil {
		rep.Add(err.Diagnose())
		return e, rep
	}
	if !rest.IsEnded() {
		tok, _ := rest.Peek()
		leftover := &Error{File: file, Kind: ExpectedEndOfStatement, Range: tok.Range, Fatal: true}
		rep.Add(leftover.Diagnose())
	}
	return e, rep
}

// lastToken returns the Empty sentinel (or final token) a cursor left
// pointing at, for use as a Program's EOF marker.
func lastToken(c token.Cursor, stream *token.Stream) (token.Token, bool) {
	if tok, ok := c.Peek(); ok {
		return tok, true
	}
	if len(stream.Items) == 0 {
		return token.Token{}, false
	}
	return stream.Items[len(stream.Items)-1].Token, true
}
