package parser

import (
	"github.com/nutlang/sqfront/ast"
	"github.com/nutlang/sqfront/token"
	"github.com/nutlang/sqfront/token/keyword"
)

// level is a precedence tier in the 16-level table, lowest first.
type level int

const (
	levelComma level = iota + 1
	levelAssignment
	levelTernary
	levelLogicalOr
	levelLogicalAnd
	levelBitwiseOr
	levelBitwiseXor
	levelBitwiseAnd
	levelEquality
	levelComparison
	levelBitshift
	levelAddSub
	levelMulDivMod
	levelPrefix
	levelPostfix
	levelProperty
)

// rightAssoc marks the two levels parsed with greater-or-equal precedence
// instead of strict-greater: assignment and ternary.
func (l level) rightAssoc() bool {
	return l == levelAssignment || l == levelTernary
}

var simpleBinaryOps = map[keyword.Terminal]level{
	keyword.Assign:    levelAssignment,
	keyword.PlusEq:    levelAssignment,
	keyword.MinusEq:   levelAssignment,
	keyword.StarEq:    levelAssignment,
	keyword.SlashEq:   levelAssignment,
	keyword.PercentEq: levelAssignment,

	keyword.OrOr:   levelLogicalOr,
	keyword.AndAnd: levelLogicalAnd,
	keyword.In:     levelLogicalAnd,

	keyword.Instanceof: levelLogicalAnd,

	keyword.Pipe:  levelBitwiseOr,
	keyword.Caret: levelBitwiseXor,
	keyword.Amp:   levelBitwiseAnd,

	keyword.EqEq: levelEquality,
	keyword.Ne:   levelEquality,

	keyword.Less:      levelComparison,
	keyword.Le:        levelComparison,
	keyword.Greater:   levelComparison,
	keyword.Ge:        levelComparison,
	keyword.Spaceship: levelComparison,

	keyword.Plus:  levelAddSub,
	keyword.Minus: levelAddSub,

	keyword.Star:    levelMulDivMod,
	keyword.Slash:   levelMulDivMod,
	keyword.Percent: levelMulDivMod,
}

// adjacent reports whether b begins exactly where a ends: the byte-level
// test used throughout the grammar to synthesize compound operators
// (<-, <<, >>, >>>) from separately-lexed single-character tokens, as
// opposed to symbols like <=> that are pre-fused in the symbol table.
func adjacent(a, b token.Token) bool { return a.Range.End == b.Range.Start }

// tryCompoundBinaryOp looks for a synthesized <- (assignment, "newslot"),
// << or >> or >>> (bitshift) at the front of c, each built from two or
// three adjacent single-character tokens. It does not consume anything on
// failure.
func tryCompoundBinaryOp(c token.Cursor) (ast.Operator, level, token.Cursor, bool) {
	t0, ok := c.Peek()
	if !ok || t0.Kind != token.Terminal {
		return ast.Operator{}, 0, c, false
	}
	t1, ok := c.PeekAt(1)
	if !ok || t1.Kind != token.Terminal || !adjacent(t0, t1) {
		return ast.Operator{}, 0, c, false
	}

	switch {
	case t0.Term == keyword.Less && t1.Term == keyword.Minus:
		_, c2, _ := c.Pop()
		_, c2, _ = c2.Pop()
		return ast.Operator{Toks: []token.Token{t0, t1}}, levelAssignment, c2, true

	case t0.Term == keyword.Less && t1.Term == keyword.Less:
		_, c2, _ := c.Pop()
		_, c2, _ = c2.Pop()
		return ast.Operator{Toks: []token.Token{t0, t1}}, levelBitshift, c2, true

	case t0.Term == keyword.Greater && t1.Term == keyword.Greater:
		// Look for a third adjacent '>' making >>> ; otherwise it's >>.
		if t2, ok := c.PeekAt(2); ok && t2.Kind == token.Terminal && t2.Term == keyword.Greater && adjacent(t1, t2) {
			_, c2, _ := c.Pop()
			_, c2, _ = c2.Pop()
			_, c2, _ = c2.Pop()
			return ast.Operator{Toks: []token.Token{t0, t1, t2}}, levelBitshift, c2, true
		}
		_, c2, _ := c.Pop()
		_, c2, _ = c2.Pop()
		return ast.Operator{Toks: []token.Token{t0, t1}}, levelBitshift, c2, true
	}
	return ast.Operator{}, 0, c, false
}

// tryPrefixOp matches a prefix operator at the front of c: -, !, ~,
// typeof, clone, delete, ++ or -- (the last two are single symbol tokens).
func tryPrefixOp(c token.Cursor) (ast.Operator, token.Cursor, bool) {
	tok, ok := c.Peek()
	if !ok || tok.Kind != token.Terminal {
		return ast.Operator{}, c, false
	}
	switch tok.Term {
	case keyword.Minus, keyword.Not, keyword.Tilde, keyword.Typeof, keyword.Clone, keyword.Delete:
		_, c2, _ := c.Pop()
		return ast.Operator{Toks: []token.Token{tok}}, c2, true
	case keyword.PlusPlus, keyword.MinusMinus:
		_, c2, _ := c.Pop()
		return ast.Operator{Toks: []token.Token{tok}}, c2, true
	}
	return ast.Operator{}, c, false
}

// tryPostfixOp matches a postfix ++ or -- at the front of c. Per the
// newline-sensitivity rule, the caller must check IsNewline() first: a
// postfix operator never applies across a line break.
func tryPostfixOp(c token.Cursor) (ast.Operator, token.Cursor, bool) {
	tok, ok := c.Peek()
	if !ok || tok.Kind != token.Terminal {
		return ast.Operator{}, c, false
	}
	if tok.Term == keyword.PlusPlus || tok.Term == keyword.MinusMinus {
		_, c2, _ := c.Pop()
		return ast.Operator{Toks: []token.Token{tok}}, c2, true
	}
	return ast.Operator{}, c, false
}
