package ast

import "github.com/nutlang/sqfront/token"

// Operator is one operator occurrence: usually a single token, but some
// compound operators (<-, <<, >>, >>>) are synthesized from two or three
// adjacent single-character tokens rather than being pre-fused in the
// token table, so this keeps every token that makes up the operator.
type Operator struct {
	Toks []token.Token
}

// Range spans every token making up the operator.
func (o Operator) Range() token.Range {
	if len(o.Toks) == 0 {
		return token.Range{}
	}
	return join(o.Toks[0].Range, o.Toks[len(o.Toks)-1].Range)
}

// Text returns the concatenated source spelling of the operator.
func (o Operator) Text() string {
	out := ""
	for _, t := range o.Toks {
		out += t.Text
	}
	return out
}
