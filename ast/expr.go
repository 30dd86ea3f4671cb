package ast

import "github.com/nutlang/sqfront/token"

// ParenExpr is a parenthesized expression, kept distinct from its inner
// expression so round-tripping preserves the original parens.
type ParenExpr struct {
	Open, Close token.Token
	Inner       Expr
}

func (*ParenExpr) isExpr()              {}
func (e *ParenExpr) Range() token.Range { return join(e.Open.Range, e.Close.Range) }

// LiteralExpr wraps a single int, char, float, or string literal token.
type LiteralExpr struct {
	Tok token.Token
}

func (*LiteralExpr) isExpr()              {}
func (e *LiteralExpr) Range() token.Range { return e.Tok.Range }

// VariableExpr is a bare identifier reference.
type VariableExpr struct {
	Name token.Token
}

func (*VariableExpr) isExpr()              {}
func (e *VariableExpr) Range() token.Range { return e.Name.Range }

// RootVariableExpr is `::name`, a reference rooted at the global table.
type RootVariableExpr struct {
	Root token.Token // the "::" token
	Name token.Token
}

func (*RootVariableExpr) isExpr()              {}
func (e *RootVariableExpr) Range() token.Range { return join(e.Root.Range, e.Name.Range) }

// IndexExpr is `Base[Index]`.
type IndexExpr struct {
	Base        Expr
	Open, Close token.Token
	Index       Expr
}

func (*IndexExpr) isExpr()              {}
func (e *IndexExpr) Range() token.Range { return join(e.Base.Range(), e.Close.Range) }

// PropertyExpr is `Base.Name` (Name may be an identifier or the
// `constructor` keyword, which is legal as a property name).
type PropertyExpr struct {
	Base Expr
	Dot  token.Token
	Name token.Token
}

func (*PropertyExpr) isExpr()              {}
func (e *PropertyExpr) Range() token.Range { return join(e.Base.Range(), e.Name.Range) }

// TernaryExpr is `Cond ? Then : Else`, right-associative.
type TernaryExpr struct {
	Cond             Expr
	Question         token.Token
	Then             Expr
	Colon            token.Token
	Else             Expr
}

func (*TernaryExpr) isExpr() {}
func (e *TernaryExpr) Range() token.Range {
	return join(e.Cond.Range(), e.Else.Range())
}

// BinaryExpr is `Left Op Right`, covering every infix and assignment
// operator in the precedence table.
type BinaryExpr struct {
	Left  Expr
	Op    Operator
	Right Expr
}

func (*BinaryExpr) isExpr()              {}
func (e *BinaryExpr) Range() token.Range { return join(e.Left.Range(), e.Right.Range()) }

// PrefixExpr is `Op Operand`: -, !, ~, typeof, clone, delete, ++, --.
type PrefixExpr struct {
	Op      Operator
	Operand Expr
}

func (*PrefixExpr) isExpr()              {}
func (e *PrefixExpr) Range() token.Range { return join(e.Op.Range(), e.Operand.Range()) }

// PostfixExpr is `Operand Op`: ++ or --.
type PostfixExpr struct {
	Operand Expr
	Op      Operator
}

func (*PostfixExpr) isExpr()              {}
func (e *PostfixExpr) Range() token.Range { return join(e.Operand.Range(), e.Op.Range()) }

// CommaExpr is a comma-separated sequence of expressions, evaluated for
// its last element (the lowest-precedence level in the table).
type CommaExpr struct {
	Exprs List1[ExprItem]
}

func (*CommaExpr) isExpr() {}
func (e *CommaExpr) Range() token.Range {
	return e.Exprs.Range()
}

// ExprItem adapts an Expr (an interface) to satisfy Node for use as a
// List1 element type, since Go generics can't parameterize List1 directly
// over an interface type with methods List1 itself doesn't need. Exported
// so other packages (the parser) can construct List1[ExprItem] values.
type ExprItem struct{ Expr }

// TableField is one `key = value` (or computed `[key] = value`) entry of a
// table literal.
type TableField struct {
	Open  *token.Token // non-nil iff the key is computed: "[" key "]"
	Close *token.Token
	Key   Expr
	Eq    token.Token
	Value Expr
}

func (f TableField) Range() token.Range { return join(f.Key.Range(), f.Value.Range()) }

// TableLiteral is `{ field, ... }` in expression position.
type TableLiteral struct {
	Open   token.Token
	Fields ListTrailing0[TableField]
	Spread *token.Token // the trailing "..." marker, if present
	Close  token.Token
}

func (*TableLiteral) isExpr()              {}
func (e *TableLiteral) Range() token.Range { return join(e.Open.Range, e.Close.Range) }

// ArrayLiteral is `[ elem, ... ]`.
type ArrayLiteral struct {
	Open   token.Token
	Elems  ListTrailing0[ExprItem]
	Spread *token.Token
	Close  token.Token
}

func (*ArrayLiteral) isExpr()              {}
func (e *ArrayLiteral) Range() token.Range { return join(e.Open.Range, e.Close.Range) }

// ClassMember is a field or method inside a class body.
type ClassMember interface {
	Node
	isClassMember()
}

// ClassFieldMember is `[static] Key = Value` inside a class body.
type ClassFieldMember struct {
	Static *token.Token
	Open   *token.Token // non-nil iff Key is computed: "[" Key "]"
	Close  *token.Token
	Key    Expr
	Eq     token.Token
	Value  Expr
}

func (*ClassFieldMember) isClassMember() {}
func (m *ClassFieldMember) Range() token.Range {
	start := m.Key.Range()
	if m.Static != nil {
		start = m.Static.Range
	}
	return join(start, m.Value.Range())
}

// ClassMethodMember is `[static] function Name(params) { body }` inside a
// class body.
type ClassMethodMember struct {
	Static *token.Token
	Fn     *FunctionLiteral
}

func (*ClassMethodMember) isClassMember() {}
func (m *ClassMethodMember) Range() token.Range {
	if m.Static != nil {
		return join(m.Static.Range, m.Fn.Range())
	}
	return m.Fn.Range()
}

// ClassLiteral is `class [extends Base] { members }` in expression
// position.
type ClassLiteral struct {
	Keyword token.Token
	Extends *token.Token
	Base    Expr // nil iff Extends is nil
	Open    token.Token
	Members []ClassMember
	Close   token.Token
}

func (*ClassLiteral) isExpr()              {}
func (e *ClassLiteral) Range() token.Range { return join(e.Keyword.Range, e.Close.Range) }

// Parameter is one function parameter: an optional type, a name, an
// optional default value, or the trailing variadic "..." marker.
type Parameter struct {
	ParamType Type // nil if untyped
	Name      token.Token
	Eq        *token.Token
	Default   Expr // nil iff Eq is nil
	Spread    *token.Token
}

func (p Parameter) Range() token.Range {
	if p.Spread != nil {
		return p.Spread.Range
	}
	r := p.Name.Range
	if p.ParamType != nil {
		r = join(p.ParamType.Range(), r)
	}
	if p.Default != nil {
		r = join(r, p.Default.Range())
	}
	return r
}

// FunctionLiteral is `[ReturnType] function [Name](params) { body }` in
// expression position (or adapted for a function-definition statement).
type FunctionLiteral struct {
	ReturnType Type // nil if untyped
	Keyword    token.Token
	Name       *token.Token // nil for an anonymous function expression
	Open       token.Token
	Params     ListTrailing0[Parameter]
	Close      token.Token
	Body       *BlockStmt
}

func (*FunctionLiteral) isExpr() {}
func (e *FunctionLiteral) Range() token.Range {
	start := e.Keyword.Range
	if e.ReturnType != nil {
		start = e.ReturnType.Range()
	}
	return join(start, e.Body.Range())
}

// CallExpr is `Callee(args)`, with an optional post-initializer table
// literal that's only parsed if it begins on the same source line as the
// closing paren.
type CallExpr struct {
	Callee      Expr
	Open, Close token.Token
	Args        ListTrailing0[ExprItem]
	PostInit    *TableLiteral // nil if absent
}

func (*CallExpr) isExpr() {}
func (e *CallExpr) Range() token.Range {
	if e.PostInit != nil {
		return join(e.Callee.Range(), e.PostInit.Range())
	}
	return join(e.Callee.Range(), e.Close.Range)
}

// DelegateExpr is `delegate Parent : Table`.
type DelegateExpr struct {
	Keyword token.Token
	Parent  Expr
	Colon   token.Token
	Table   Expr
}

func (*DelegateExpr) isExpr()              {}
func (e *DelegateExpr) Range() token.Range { return join(e.Keyword.Range, e.Table.Range()) }

// VectorExpr is `< x, y, z >`, a fixed small numeric-vector literal.
type VectorExpr struct {
	Open, Close token.Token
	Elems       List1[ExprItem]
}

func (*VectorExpr) isExpr()              {}
func (e *VectorExpr) Range() token.Range { return join(e.Open.Range, e.Close.Range) }

// ExpectExpr is `expect ExpectedType(Value)`, a typed runtime assertion.
type ExpectExpr struct {
	Keyword      token.Token
	ExpectedType Type
	Open, Close  token.Token
	Value        Expr
}

func (*ExpectExpr) isExpr()              {}
func (e *ExpectExpr) Range() token.Range { return join(e.Keyword.Range, e.Close.Range) }
