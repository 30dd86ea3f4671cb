package ast

import "github.com/nutlang/sqfront/token"

// EmptyStmt is a bare `;` with no body.
type EmptyStmt struct {
	Semi token.Token
}

func (*EmptyStmt) isStmt()              {}
func (s *EmptyStmt) Range() token.Range { return s.Semi.Range }

// BlockStmt is `{ stmts... }`.
type BlockStmt struct {
	Open, Close token.Token
	Stmts       []Stmt
}

func (*BlockStmt) isStmt()              {}
func (s *BlockStmt) Range() token.Range { return join(s.Open.Range, s.Close.Range) }

// IfStmt is `if (Cond) Then [else Else]`.
type IfStmt struct {
	Keyword     token.Token
	Open, Close token.Token
	Cond        Expr
	Then        Stmt
	ElseKeyword *token.Token
	Else        Stmt // nil iff ElseKeyword is nil
}

func (*IfStmt) isStmt() {}
func (s *IfStmt) Range() token.Range {
	if s.Else != nil {
		return join(s.Keyword.Range, s.Else.Range())
	}
	return join(s.Keyword.Range, s.Then.Range())
}

// WhileStmt is `while (Cond) Body`.
type WhileStmt struct {
	Keyword     token.Token
	Open, Close token.Token
	Cond        Expr
	Body        Stmt
}

func (*WhileStmt) isStmt()              {}
func (s *WhileStmt) Range() token.Range { return join(s.Keyword.Range, s.Body.Range()) }

// DoWhileStmt is `do Body while (Cond)`.
type DoWhileStmt struct {
	DoKeyword    token.Token
	Body         Stmt
	WhileKeyword token.Token
	Open, Close  token.Token
	Cond         Expr
	Semi         *token.Token
}

func (*DoWhileStmt) isStmt() {}
func (s *DoWhileStmt) Range() token.Range {
	return join(s.DoKeyword.Range, s.Close.Range)
}

// SwitchCase is one `case Value:` or `default:` arm of a switch.
type SwitchCase struct {
	CaseKeyword *token.Token // nil for default
	Value       Expr         // nil for default
	Colon       token.Token
	Stmts       []Stmt
}

func (c SwitchCase) Range() token.Range {
	start := c.Colon.Range
	if c.CaseKeyword != nil {
		start = c.CaseKeyword.Range
	}
	if len(c.Stmts) > 0 {
		return join(start, c.Stmts[len(c.Stmts)-1].Range())
	}
	return join(start, c.Colon.Range)
}

// SwitchStmt is `switch (Cond) { case ...: ... default: ... }`.
type SwitchStmt struct {
	Keyword           token.Token
	Open, Close       token.Token
	Cond              Expr
	BodyOpen          token.Token
	Cases             []SwitchCase
	BodyClose         token.Token
}

func (*SwitchStmt) isStmt()              {}
func (s *SwitchStmt) Range() token.Range { return join(s.Keyword.Range, s.BodyClose.Range) }

// ForStmt is `for (Init; Cond; Post) Body`. Init, Cond, and Post may each
// be nil (an omitted clause).
type ForStmt struct {
	Keyword     token.Token
	Open        token.Token
	Init        Stmt
	Semi1       token.Token
	Cond        Expr
	Semi2       token.Token
	Post        Expr
	Close       token.Token
	Body        Stmt
}

func (*ForStmt) isStmt()              {}
func (s *ForStmt) Range() token.Range { return join(s.Keyword.Range, s.Body.Range()) }

// ForeachStmt is `foreach ([Key,] Value in Iter) Body`.
type ForeachStmt struct {
	Keyword   token.Token
	Open      token.Token
	KeyName   *token.Token
	Comma     *token.Token
	ValueName token.Token
	InKeyword token.Token
	Iter      Expr
	Close     token.Token
	Body      Stmt
}

func (*ForeachStmt) isStmt()              {}
func (s *ForeachStmt) Range() token.Range { return join(s.Keyword.Range, s.Body.Range()) }

// BreakStmt is `break;`.
type BreakStmt struct {
	Keyword token.Token
	Semi    *token.Token
}

func (*BreakStmt) isStmt() {}
func (s *BreakStmt) Range() token.Range {
	if s.Semi != nil {
		return join(s.Keyword.Range, s.Semi.Range)
	}
	return s.Keyword.Range
}

// ContinueStmt is `continue;`.
type ContinueStmt struct {
	Keyword token.Token
	Semi    *token.Token
}

func (*ContinueStmt) isStmt() {}
func (s *ContinueStmt) Range() token.Range {
	if s.Semi != nil {
		return join(s.Keyword.Range, s.Semi.Range)
	}
	return s.Keyword.Range
}

// ReturnStmt is `return [Value];`. Value is only parsed if it's on the same
// source line as the `return` keyword.
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr // nil if omitted
	Semi    *token.Token
}

func (*ReturnStmt) isStmt() {}
func (s *ReturnStmt) Range() token.Range {
	if s.Value != nil {
		return join(s.Keyword.Range, s.Value.Range())
	}
	return s.Keyword.Range
}

// YieldStmt is `yield [Value];`, with the same same-line rule as return.
type YieldStmt struct {
	Keyword token.Token
	Value   Expr
	Semi    *token.Token
}

func (*YieldStmt) isStmt() {}
func (s *YieldStmt) Range() token.Range {
	if s.Value != nil {
		return join(s.Keyword.Range, s.Value.Range())
	}
	return s.Keyword.Range
}

// ThrowStmt is `throw Value;`.
type ThrowStmt struct {
	Keyword token.Token
	Value   Expr
	Semi    *token.Token
}

func (*ThrowStmt) isStmt()              {}
func (s *ThrowStmt) Range() token.Range { return join(s.Keyword.Range, s.Value.Range()) }

// VarDeclarator is one `Name [= Value]` entry in a variable definition.
type VarDeclarator struct {
	Name  token.Token
	Eq    *token.Token
	Value Expr // nil iff Eq is nil
}

func (d VarDeclarator) Range() token.Range {
	if d.Value != nil {
		return join(d.Name.Range, d.Value.Range())
	}
	return d.Name.Range
}

// VarDefinition is `[VarType] Name [= Value], ...;`.
type VarDefinition struct {
	VarType     Type // nil if untyped
	Declarators List1[VarDeclarator]
	Semi        *token.Token
}

func (*VarDefinition) isStmt() {}
func (s *VarDefinition) Range() token.Range {
	r := s.Declarators.Range()
	if s.VarType != nil {
		r = join(s.VarType.Range(), r)
	}
	return r
}

// ConstDefinition is `const [ConstType] Name = Value;`.
type ConstDefinition struct {
	Keyword   token.Token
	ConstType Type // nil if untyped
	Name      token.Token
	Eq        token.Token
	Value     Expr
	Semi      *token.Token
}

func (*ConstDefinition) isStmt()              {}
func (s *ConstDefinition) Range() token.Range { return join(s.Keyword.Range, s.Value.Range()) }

// EnumMember is one `Name [= Value]` entry of an enum.
type EnumMember struct {
	Name  token.Token
	Eq    *token.Token
	Value Expr
}

func (m EnumMember) Range() token.Range {
	if m.Value != nil {
		return join(m.Name.Range, m.Value.Range())
	}
	return m.Name.Range
}

// EnumDefinition is `enum Name { Member, ... }`.
type EnumDefinition struct {
	Keyword     token.Token
	Name        token.Token
	Open        token.Token
	Members     ListTrailing0[EnumMember]
	Close       token.Token
}

func (*EnumDefinition) isStmt()              {}
func (s *EnumDefinition) Range() token.Range { return join(s.Keyword.Range, s.Close.Range) }

// FunctionDefinition is `[ReturnType] function Name[::Name...](params) { body }`.
type FunctionDefinition struct {
	ReturnType  Type // nil if untyped
	Keyword     token.Token
	Name        List1[NameSeg]
	Open        token.Token
	Params      ListTrailing0[Parameter]
	Close       token.Token
	Body        *BlockStmt
}

// NameSeg adapts a token.Token to satisfy Node, for use as a List1 element
// in a "::"-separated name path (function/constructor/class definitions).
type NameSeg struct{ token.Token }

func (n NameSeg) Range() token.Range { return n.Token.Range }

func (*FunctionDefinition) isStmt() {}
func (s *FunctionDefinition) Range() token.Range {
	start := s.Keyword.Range
	if s.ReturnType != nil {
		start = s.ReturnType.Range()
	}
	return join(start, s.Body.Range())
}

// ConstructorDefinition is the out-of-band form
// `[ReturnType] function Ns::Ns::...::constructor(params) { body }`.
type ConstructorDefinition struct {
	ReturnType   Type
	Keyword      token.Token // "function"
	Namespace    List1[NameSeg]
	Trailing     token.Token // the final "::" before "constructor"
	CtorKeyword  token.Token
	Open         token.Token
	Params       ListTrailing0[Parameter]
	Close        token.Token
	Body         *BlockStmt
}

func (*ConstructorDefinition) isStmt() {}
func (s *ConstructorDefinition) Range() token.Range {
	start := s.Keyword.Range
	if s.ReturnType != nil {
		start = s.ReturnType.Range()
	}
	return join(start, s.Body.Range())
}

// StructDeclaration is `struct Name { field, ... }`.
type StructDeclaration struct {
	Keyword     token.Token
	Name        token.Token
	Open        token.Token
	Fields      ListTrailing0[StructField]
	Close       token.Token
}

func (*StructDeclaration) isStmt()              {}
func (s *StructDeclaration) Range() token.Range { return join(s.Keyword.Range, s.Close.Range) }

// TypedefDeclaration is `typedef Name = Aliased;`.
type TypedefDeclaration struct {
	Keyword token.Token
	Name    token.Token
	Eq      token.Token
	Aliased Type
	Semi    *token.Token
}

func (*TypedefDeclaration) isStmt()              {}
func (s *TypedefDeclaration) Range() token.Range { return join(s.Keyword.Range, s.Aliased.Range()) }

// ClassDefinition is `class Name[::Name...] [extends Base] { members }` as
// a statement (as opposed to ClassLiteral, the expression form).
type ClassDefinition struct {
	Keyword     token.Token
	Name        List1[NameSeg]
	Extends     *token.Token
	Base        Expr // nil iff Extends is nil
	Open        token.Token
	Members     []ClassMember
	Close       token.Token
}

func (*ClassDefinition) isStmt()              {}
func (s *ClassDefinition) Range() token.Range { return join(s.Keyword.Range, s.Close.Range) }

// TryCatchStmt is `try TryBody catch (ErrName) CatchBody`.
type TryCatchStmt struct {
	TryKeyword   token.Token
	TryBody      Stmt
	CatchKeyword token.Token
	Open, Close  token.Token
	ErrName      token.Token
	CatchBody    Stmt
}

func (*TryCatchStmt) isStmt()              {}
func (s *TryCatchStmt) Range() token.Range { return join(s.TryKeyword.Range, s.CatchBody.Range()) }

// ThreadStmt is `thread Call;`.
type ThreadStmt struct {
	Keyword token.Token
	Call    Expr
	Semi    *token.Token
}

func (*ThreadStmt) isStmt()              {}
func (s *ThreadStmt) Range() token.Range { return join(s.Keyword.Range, s.Call.Range()) }

// DelaythreadStmt is `delaythread (Delay) Call;`.
type DelaythreadStmt struct {
	Keyword     token.Token
	Open, Close token.Token
	Delay       Expr
	Call        Expr
	Semi        *token.Token
}

func (*DelaythreadStmt) isStmt()              {}
func (s *DelaythreadStmt) Range() token.Range { return join(s.Keyword.Range, s.Call.Range()) }

// WaitthreadStmt is `waitthread Call;`.
type WaitthreadStmt struct {
	Keyword token.Token
	Call    Expr
	Semi    *token.Token
}

func (*WaitthreadStmt) isStmt()              {}
func (s *WaitthreadStmt) Range() token.Range { return join(s.Keyword.Range, s.Call.Range()) }

// WaitthreadsoloStmt is `waitthreadsolo Call;`.
type WaitthreadsoloStmt struct {
	Keyword token.Token
	Call    Expr
	Semi    *token.Token
}

func (*WaitthreadsoloStmt) isStmt() {}
func (s *WaitthreadsoloStmt) Range() token.Range {
	return join(s.Keyword.Range, s.Call.Range())
}

// WaitStmt is `wait Value;`.
type WaitStmt struct {
	Keyword token.Token
	Value   Expr
	Semi    *token.Token
}

func (*WaitStmt) isStmt()              {}
func (s *WaitStmt) Range() token.Range { return join(s.Keyword.Range, s.Value.Range()) }

// GlobalStmt is `global Def`, wrapping another definition statement
// (function, class, var, const, enum, ...) to mark it as a global.
type GlobalStmt struct {
	Keyword token.Token
	Def     Stmt
}

func (*GlobalStmt) isStmt()              {}
func (s *GlobalStmt) Range() token.Range { return join(s.Keyword.Range, s.Def.Range()) }

// GlobalizeAllFunctionsStmt is `globalize_all_functions;`.
type GlobalizeAllFunctionsStmt struct {
	Keyword token.Token
	Semi    *token.Token
}

func (*GlobalizeAllFunctionsStmt) isStmt() {}
func (s *GlobalizeAllFunctionsStmt) Range() token.Range {
	if s.Semi != nil {
		return join(s.Keyword.Range, s.Semi.Range)
	}
	return s.Keyword.Range
}

// UntypedStmt is `untyped Inner`, wrapping a definition statement to
// suppress its (optional) static type.
type UntypedStmt struct {
	Keyword token.Token
	Inner   Stmt
}

func (*UntypedStmt) isStmt()              {}
func (s *UntypedStmt) Range() token.Range { return join(s.Keyword.Range, s.Inner.Range()) }

// ExpressionStmt is a bare expression used as a statement.
type ExpressionStmt struct {
	Expr Expr
	Semi *token.Token
}

func (*ExpressionStmt) isStmt() {}
func (s *ExpressionStmt) Range() token.Range {
	if s.Semi != nil {
		return join(s.Expr.Range(), s.Semi.Range)
	}
	return s.Expr.Range()
}
