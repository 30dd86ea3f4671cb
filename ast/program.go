package ast

import "github.com/nutlang/sqfront/token"

// Program is a complete parsed source file: an ordered sequence of
// top-level statements plus any trivia hanging off the end of the token
// stream (trailing comments after the last statement).
type Program struct {
	File  string
	Stmts []Stmt
	EOF   token.Token
}

// Range spans the whole file.
func (p *Program) Range() token.Range {
	if len(p.Stmts) == 0 {
		return p.EOF.Range
	}
	return join(p.Stmts[0].Range(), p.EOF.Range)
}
