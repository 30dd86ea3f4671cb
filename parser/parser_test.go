package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutlang/sqfront/ast"
	"github.com/nutlang/sqfront/dialect"
	"github.com/nutlang/sqfront/internal/lexer"
	"github.com/nutlang/sqfront/parser"
)

func mustParse(t *testing.T, src string, d dialect.Dialect) *ast.Program {
	t.Helper()
	stream, lexRep := lexer.Lex(src, d, lexer.Options{File: "t.nut"})
	require.Equal(t, 0, lexRep.Len(), "unexpected lex diagnostics: %v", lexRep.Diagnostics())
	prog, parseRep := parser.Parse(stream, "t.nut")
	require.Equal(t, 0, parseRep.Len(), "unexpected parse diagnostics: %v", parseRep.Diagnostics())
	return prog
}

func mustParseExpr(t *testing.T, src string, d dialect.Dialect) ast.Expr {
	t.Helper()
	stream, lexRep := lexer.Lex(src, d, lexer.Options{File: "t.nut"})
	require.Equal(t, 0, lexRep.Len())
	e, rep := parser.ParseExpression(stream, "t.nut")
	require.Equal(t, 0, rep.Len(), "unexpected parse diagnostics: %v", rep.Diagnostics())
	return e
}

func onlyStmt(t *testing.T, prog *ast.Program) ast.Stmt {
	t.Helper()
	require.Len(t, prog.Stmts, 1)
	return prog.Stmts[0]
}

// S1: an array expression with three values, no spread.
func TestScenarioArrayLiteral(t *testing.T) {
	t.Parallel()
	e := mustParseExpr(t, `["hello", "there", 1.2345]`, dialect.Squirrel3)
	arr, ok := e.(*ast.ArrayLiteral)
	require.True(t, ok, "%T", e)
	assert.Len(t, arr.Elems.Items, 3)
	assert.Nil(t, arr.Spread)
}

// S2: an array with one value and a trailing spread marker.
func TestScenarioArraySpread(t *testing.T) {
	t.Parallel()
	e := mustParseExpr(t, `["general", ...]`, dialect.Squirrel3)
	arr, ok := e.(*ast.ArrayLiteral)
	require.True(t, ok, "%T", e)
	assert.Len(t, arr.Elems.Items, 1)
	require.NotNil(t, arr.Spread)
}

// S3: an index expression over a plain variable.
func TestScenarioIndexExpr(t *testing.T) {
	t.Parallel()
	e := mustParseExpr(t, `some_var[5]`, dialect.Squirrel3)
	idx, ok := e.(*ast.IndexExpr)
	require.True(t, ok, "%T", e)
	v, ok := idx.Base.(*ast.VariableExpr)
	require.True(t, ok, "%T", idx.Base)
	assert.Equal(t, "some_var", v.Name.Text)
	lit, ok := idx.Index.(*ast.LiteralExpr)
	require.True(t, ok, "%T", idx.Index)
	assert.Equal(t, "5", lit.Tok.Text)
}

// S4: a three-level property expression, left-associative.
func TestScenarioPropertyChain(t *testing.T) {
	t.Parallel()
	e := mustParseExpr(t, `a.b.c`, dialect.Squirrel3)
	outer, ok := e.(*ast.PropertyExpr)
	require.True(t, ok, "%T", e)
	assert.Equal(t, "c", outer.Name.Text)
	mid, ok := outer.Base.(*ast.PropertyExpr)
	require.True(t, ok, "%T", outer.Base)
	assert.Equal(t, "b", mid.Name.Text)
	inner, ok := mid.Base.(*ast.VariableExpr)
	require.True(t, ok, "%T", mid.Base)
	assert.Equal(t, "a", inner.Name.Text)
}

// S5: ternary is right-associative: a ? b : (c ? d : e).
func TestScenarioTernaryRightAssoc(t *testing.T) {
	t.Parallel()
	e := mustParseExpr(t, `a ? b : c ? d : e`, dialect.Squirrel3)
	outer, ok := e.(*ast.TernaryExpr)
	require.True(t, ok, "%T", e)
	_, ok = outer.Then.(*ast.VariableExpr)
	require.True(t, ok)
	inner, ok := outer.Else.(*ast.TernaryExpr)
	require.True(t, ok, "%T, expected nested ternary in Else", outer.Else)
	cond, ok := inner.Cond.(*ast.VariableExpr)
	require.True(t, ok)
	assert.Equal(t, "c", cond.Name.Text)
}

// S7: a function whose "::"-path ends in "::constructor" parses as a
// constructor-definition, not a function-definition.
func TestScenarioConstructorDefinition(t *testing.T) {
	t.Parallel()
	prog := mustParse(t, `function MyClass::constructor() {}`, dialect.Squirrel3)
	stmt := onlyStmt(t, prog)
	ctor, ok := stmt.(*ast.ConstructorDefinition)
	require.True(t, ok, "%T", stmt)
	require.Len(t, ctor.Namespace.Items, 1)
	assert.Equal(t, "MyClass", ctor.Namespace.Items[0].Token.Text)
}

// S8: typed return, typed+defaulted params, and a variadic trailing "...".
func TestScenarioTypedFunctionDefinition(t *testing.T) {
	t.Parallel()
	prog := mustParse(t, `int function f(int x, string y = "z", ...) {}`, dialect.Squirrel3)
	stmt := onlyStmt(t, prog)
	fn, ok := stmt.(*ast.FunctionDefinition)
	require.True(t, ok, "%T", stmt)
	require.NotNil(t, fn.ReturnType)
	require.Len(t, fn.Params.Items, 3)
	assert.Equal(t, "x", fn.Params.Items[0].Name.Text)
	require.NotNil(t, fn.Params.Items[0].ParamType)
	assert.Equal(t, "y", fn.Params.Items[1].Name.Text)
	require.NotNil(t, fn.Params.Items[1].Default)
	require.NotNil(t, fn.Params.Items[2].Spread)
}

// S9: "table<vec<int>>" is a generic type nested inside a generic type;
// the closing ">>" is two separate '>' tokens closing two distinct generics.
func TestScenarioNestedGenericType(t *testing.T) {
	t.Parallel()
	prog := mustParse(t, `table<vec<int>> t`, dialect.Squirrel3)
	stmt := onlyStmt(t, prog)
	def, ok := stmt.(*ast.VarDefinition)
	require.True(t, ok, "%T", stmt)
	outer, ok := def.VarType.(*ast.GenericType)
	require.True(t, ok, "%T", def.VarType)
	base, ok := outer.Base.(*ast.PlainType)
	require.True(t, ok)
	assert.Equal(t, "table", base.Name.Text)
	require.Len(t, outer.Args.Items, 1)
	inner, ok := outer.Args.Items[0].(*ast.GenericType)
	require.True(t, ok, "%T", outer.Args.Items[0])
	innerBase, ok := inner.Base.(*ast.PlainType)
	require.True(t, ok)
	assert.Equal(t, "vec", innerBase.Name.Text)
}

// S10: "a\n++b" is two statements -- "a" then prefix "++b" -- since postfix
// "++" never applies across a newline.
func TestScenarioPostfixNotAcrossNewline(t *testing.T) {
	t.Parallel()
	prog := mustParse(t, "a\n++b", dialect.Squirrel3)
	require.Len(t, prog.Stmts, 2)

	first, ok := prog.Stmts[0].(*ast.ExpressionStmt)
	require.True(t, ok, "%T", prog.Stmts[0])
	_, ok = first.Expr.(*ast.VariableExpr)
	require.True(t, ok, "%T", first.Expr)

	second, ok := prog.Stmts[1].(*ast.ExpressionStmt)
	require.True(t, ok, "%T", prog.Stmts[1])
	pre, ok := second.Expr.(*ast.PrefixExpr)
	require.True(t, ok, "%T", second.Expr)
	_, ok = pre.Operand.(*ast.VariableExpr)
	require.True(t, ok)
}

// Boundary 7: empty source parses to an empty program, no error.
func TestBoundaryEmptySource(t *testing.T) {
	t.Parallel()
	prog := mustParse(t, "", dialect.Squirrel3)
	assert.Empty(t, prog.Stmts)
}

// Boundary 11: "return" followed by a newline then an expression parses
// "return" with no value; the expression becomes its own statement.
func TestBoundaryReturnAcrossNewline(t *testing.T) {
	t.Parallel()
	prog := mustParse(t, "function f() { return\n1; }", dialect.Squirrel3)
	fn := onlyStmt(t, prog).(*ast.FunctionDefinition)
	require.Len(t, fn.Body.Stmts, 2)
	ret, ok := fn.Body.Stmts[0].(*ast.ReturnStmt)
	require.True(t, ok, "%T", fn.Body.Stmts[0])
	assert.Nil(t, ret.Value)
	_, ok = fn.Body.Stmts[1].(*ast.ExpressionStmt)
	require.True(t, ok, "%T", fn.Body.Stmts[1])
}

// Boundary 6: an expression-parse leaves no trailing tokens.
func TestParseExpressionConsumesEverything(t *testing.T) {
	t.Parallel()
	stream, rep := lexer.Lex("1 + 2 * 3", dialect.Squirrel3, lexer.Options{File: "t.nut"})
	require.Equal(t, 0, rep.Len())
	e, rep2 := parser.ParseExpression(stream, "t.nut")
	require.Equal(t, 0, rep2.Len())
	bin, ok := e.(*ast.BinaryExpr)
	require.True(t, ok, "%T", e)
	_, ok = bin.Right.(*ast.BinaryExpr)
	require.True(t, ok, "multiplication should bind tighter than addition")
}

// An optional ';' before 'else' is not required.
func TestIfElseOptionalSemicolon(t *testing.T) {
	t.Parallel()
	prog := mustParse(t, `if (x) foo() else bar();`, dialect.Squirrel3)
	ifStmt := onlyStmt(t, prog).(*ast.IfStmt)
	require.NotNil(t, ifStmt.ElseKeyword)
	require.NotNil(t, ifStmt.Else)
}

// A ';' after a block-bodied then-branch, with no following 'else', is its
// own empty statement, not consumed by the if.
func TestIfWithoutElseLeavesSemicolonAsEmptyStmt(t *testing.T) {
	t.Parallel()
	prog := mustParse(t, `if (x) {};`, dialect.Squirrel3)
	require.Len(t, prog.Stmts, 2)
	ifStmt := prog.Stmts[0].(*ast.IfStmt)
	assert.Nil(t, ifStmt.ElseKeyword)
	_, ok := prog.Stmts[1].(*ast.EmptyStmt)
	assert.True(t, ok, "%T", prog.Stmts[1])
}

func TestForeachWithKeyAndValue(t *testing.T) {
	t.Parallel()
	prog := mustParse(t, `foreach (k, v in arr) { }`, dialect.Squirrel3)
	fe := onlyStmt(t, prog).(*ast.ForeachStmt)
	require.NotNil(t, fe.KeyName)
	assert.Equal(t, "k", fe.KeyName.Text)
	assert.Equal(t, "v", fe.ValueName.Text)
}

func TestSwitchWithDefault(t *testing.T) {
	t.Parallel()
	prog := mustParse(t, `switch (x) { case 1: break; default: break; }`, dialect.Squirrel3)
	sw := onlyStmt(t, prog).(*ast.SwitchStmt)
	require.Len(t, sw.Cases, 2)
	assert.NotNil(t, sw.Cases[0].CaseKeyword)
	assert.Nil(t, sw.Cases[1].CaseKeyword)
}

func TestGlobalWrapsVarDefinition(t *testing.T) {
	t.Parallel()
	prog := mustParse(t, `global int x = 1;`, dialect.SquirrelRespawn)
	g := onlyStmt(t, prog).(*ast.GlobalStmt)
	_, ok := g.Def.(*ast.VarDefinition)
	require.True(t, ok, "%T", g.Def)
}

func TestStructDeclaration(t *testing.T) {
	t.Parallel()
	prog := mustParse(t, `struct Point { int x, int y = 0 }`, dialect.SquirrelRespawn)
	s := onlyStmt(t, prog).(*ast.StructDeclaration)
	require.Len(t, s.Fields.Items, 2)
	assert.Equal(t, "x", s.Fields.Items[0].Name.Text)
	require.NotNil(t, s.Fields.Items[1].Default)
}

func TestThreadStatements(t *testing.T) {
	t.Parallel()
	prog := mustParse(t, `thread f(); waitthread g(); wait 1.0;`, dialect.SquirrelRespawn)
	require.Len(t, prog.Stmts, 3)
	_, ok := prog.Stmts[0].(*ast.ThreadStmt)
	require.True(t, ok)
	_, ok = prog.Stmts[1].(*ast.WaitthreadStmt)
	require.True(t, ok)
	_, ok = prog.Stmts[2].(*ast.WaitStmt)
	require.True(t, ok)
}

func TestPositionRangeCoversWholeProgram(t *testing.T) {
	t.Parallel()
	prog := mustParse(t, `local x = 1;`, dialect.Squirrel3)
	r := prog.Range()
	assert.Equal(t, 0, r.Start)
}
