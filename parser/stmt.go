package parser

import (
	"github.com/nutlang/sqfront/ast"
	"github.com/nutlang/sqfront/internal/taxa"
	"github.com/nutlang/sqfront/token"
	"github.com/nutlang/sqfront/token/keyword"
)

// parseBlock parses `{ stmts... }`.
func parseBlock(c token.Cursor, file string) (*ast.BlockStmt, token.Cursor, *Error) {
	open, ok := c.Peek()
	if !ok || open.Kind != token.Terminal || open.Term != keyword.OpenBrace {
		return nil, c, &Error{File: file, Kind: ExpectedTerminal, Term1: keyword.OpenBrace, Range: peekRange(c), Fatal: true}
	}
	stmts, closer, rest, err := opens(c, file, taxa.Block.In(), func(c token.Cursor) ([]ast.Stmt, token.Cursor, *Error) {
		return parseStmtList(c, file)
	})
	if err != nil {
		return nil, rest, err
	}
	return &ast.BlockStmt{Open: open, Stmts: stmts, Close: closer}, rest, nil
}

func parseStmtList(c token.Cursor, file string) ([]ast.Stmt, token.Cursor, *Error) {
	var stmts []ast.Stmt
	for !c.IsEnded() {
		if tok, ok := c.Peek(); ok && tok.Kind == token.Empty {
			break
		}
		s, rest, err := parseStmt(c, file)
		if err != nil {
			return stmts, rest, err
		}
		stmts = append(stmts, s)
		c = rest
	}
	return stmts, c, nil
}

// endOfStmt implements the statement-boundary rule: a trailing ';' is
// consumed if present; otherwise the statement ends implicitly at EOF, at
// a newline, right after a just-consumed '}', right before an 'else', or
// at the empty end-of-input sentinel. Anything else is a fatal error.
func endOfStmt(c token.Cursor, file string) (*token.Token, token.Cursor, *Error) {
	if tok, ok := c.Peek(); ok && tok.Kind == token.Terminal && tok.Term == keyword.Semi {
		_, c2, _ := c.Pop()
		return &tok, c2, nil
	}
	if c.IsEnded() {
		return nil, c, nil
	}
	if c.IsNewline() {
		return nil, c, nil
	}
	if prev, ok := c.PeekPrev(); ok && prev.Kind == token.Terminal && prev.Term == keyword.CloseBrace {
		return nil, c, nil
	}
	if tok, ok := c.Peek(); ok {
		if tok.Kind == token.Empty {
			return nil, c, nil
		}
		if tok.Kind == token.Terminal && tok.Term == keyword.Else {
			return nil, c, nil
		}
	}
	return nil, c, &Error{File: file, Kind: ExpectedEndOfStatement, Range: peekRange(c), Fatal: true}
}

// parseStmt dispatches on the next token to one of the statement
// productions, falling back to the typed-vs-untyped disambiguation for
// anything that isn't recognizable from its leading keyword alone.
func parseStmt(c token.Cursor, file string) (ast.Stmt, token.Cursor, *Error) {
	tok, ok := c.Peek()
	if !ok {
		return nil, c, &Error{File: file, Kind: ExpectedStatement, Range: eofRange(c), Fatal: true}
	}

	if tok.Kind == token.Terminal {
		switch tok.Term {
		case keyword.Semi:
			_, c2, _ := c.Pop()
			return &ast.EmptyStmt{Semi: tok}, c2, nil
		case keyword.OpenBrace:
			return parseBlockStmt(c, file)
		case keyword.If:
			return parseIfStmt(c, file)
		case keyword.While:
			return parseWhileStmt(c, file)
		case keyword.Do:
			return parseDoWhileStmt(c, file)
		case keyword.Switch:
			return parseSwitchStmt(c, file)
		case keyword.For:
			return parseForStmt(c, file)
		case keyword.Foreach:
			return parseForeachStmt(c, file)
		case keyword.Break:
			return parseBreakStmt(c, file)
		case keyword.Continue:
			return parseContinueStmt(c, file)
		case keyword.Return:
			return parseReturnStmt(c, file)
		case keyword.Yield:
			return parseYieldStmt(c, file)
		case keyword.Throw:
			return parseThrowStmt(c, file)
		case keyword.Const:
			return parseConstDefinition(c, file)
		case keyword.Enum:
			return parseEnumDefinition(c, file)
		case keyword.Typedef:
			return parseTypedefDeclaration(c, file)
		case keyword.Try:
			return parseTryCatchStmt(c, file)
		case keyword.Thread:
			return parseThreadStmt(c, file)
		case keyword.Delaythread:
			return parseDelaythreadStmt(c, file)
		case keyword.Waitthread:
			return parseWaitthreadStmt(c, file)
		case keyword.Waitthreadsolo:
			return parseWaitthreadsoloStmt(c, file)
		case keyword.Wait:
			return parseWaitStmt(c, file)
		case keyword.Global:
			return parseGlobalStmt(c, file)
		case keyword.GlobalizeAllFunctions:
			return parseGlobalizeAllFunctionsStmt(c, file)
		case keyword.Untyped:
			return parseUntypedStmt(c, file)
		case keyword.Function:
			if nxt, ok := c.PeekAt(1); ok && nxt.Kind == token.Identifier {
				return parseFunctionOrConstructorDefinition(nil, c, file)
			}
		case keyword.Class:
			if nxt, ok := c.PeekAt(1); ok && nxt.Kind == token.Identifier {
				return parseClassDefinition(c, file)
			}
		case keyword.Struct:
			if nxt, ok := c.PeekAt(1); ok && nxt.Kind == token.Identifier {
				if nxt2, ok := c.PeekAt(2); ok && nxt2.Kind == token.Terminal && nxt2.Term == keyword.OpenBrace {
					return parseStructDeclaration(c, file)
				}
			}
		}
	}

	return parseTypedOrExprStmt(c, file)
}

func parseBlockStmt(c token.Cursor, file string) (ast.Stmt, token.Cursor, *Error) {
	b, rest, err := parseBlock(c, file)
	if err != nil {
		return nil, rest, err
	}
	return b, rest, nil
}

// parseTypedOrExprStmt implements the typed-vs-untyped disambiguation:
// try a type, then "function" or a variable-definition; if neither
// matches, backtrack fully and parse an expression-statement instead.
func parseTypedOrExprStmt(c token.Cursor, file string) (ast.Stmt, token.Cursor, *Error) {
	orig := c
	if typ, rest, err := parseType(c, file); err == nil {
		if fnTok, ok := rest.Peek(); ok && fnTok.Kind == token.Terminal && fnTok.Term == keyword.Function {
			if rest.IsNewline() {
				return nil, rest, &Error{File: file, Kind: IllegalLineBreak, Range: fnTok.Range, Fatal: true}
			}
			return parseFunctionOrConstructorDefinition(typ, rest, file)
		}
		if def, rest2, err2, ok := tryVarDefinition(typ, rest, file); ok {
			if err2 != nil {
				return nil, rest2, err2
			}
			return def, rest2, nil
		}
	}
	return parseExprStmt(orig, file)
}

func tryVarDefinition(typ ast.Type, c token.Cursor, file string) (ast.Stmt, token.Cursor, *Error, bool) {
	if name, ok := c.Peek(); !ok || name.Kind != token.Identifier {
		return nil, c, nil, false
	}
	def, rest, err := parseVarDeclaratorsNoSemi(typ, c, file)
	if err != nil {
		return nil, rest, err, true
	}
	semi, rest2, err := endOfStmt(rest, file)
	if err != nil {
		return nil, rest2, err, true
	}
	def.(*ast.VarDefinition).Semi = semi
	return def, rest2, nil, true
}

func parseVarDeclaratorsNoSemi(typ ast.Type, c token.Cursor, file string) (ast.Stmt, token.Cursor, *Error) {
	var list ast.List1[ast.VarDeclarator]
	for {
		name, rest, ok := c.Pop()
		if !ok || name.Kind != token.Identifier {
			return nil, c, &Error{File: file, Kind: ExpectedIdentifier, Range: peekRange(c), Fatal: true}
		}
		decl := ast.VarDeclarator{Name: name}
		c = rest
		if eq, ok := c.Peek(); ok && eq.Kind == token.Terminal && eq.Term == keyword.Assign {
			_, c2, _ := c.Pop()
			val, c3, err := parseLevel(c2, file, levelAssignment)
			if err != nil {
				err.Fatal = true
				return nil, c3, err
			}
			decl.Eq = &eq
			decl.Value = val
			c = c3
		}
		list.Items = append(list.Items, decl)
		if comma, ok := c.Peek(); ok && comma.Kind == token.Terminal && comma.Term == keyword.Comma {
			_, c2, _ := c.Pop()
			list.Seps = append(list.Seps, comma)
			c = c2
			continue
		}
		break
	}
	return &ast.VarDefinition{VarType: typ, Declarators: list}, c, nil
}

func parseExprStmt(c token.Cursor, file string) (ast.Stmt, token.Cursor, *Error) {
	e, rest, err := parseExpr(c, file)
	if err != nil {
		if err.Fatal {
			return nil, rest, err
		}
		return nil, c, &Error{File: file, Kind: ExpectedStatement, Range: peekRange(c), Fatal: true}
	}
	semi, rest2, err := endOfStmt(rest, file)
	if err != nil {
		return nil, rest2, err
	}
	return &ast.ExpressionStmt{Expr: e, Semi: semi}, rest2, nil
}

func parseBreakStmt(c token.Cursor, file string) (ast.Stmt, token.Cursor, *Error) {
	kw, c2, _ := c.Pop()
	semi, rest, err := endOfStmt(c2, file)
	if err != nil {
		return nil, rest, err
	}
	return &ast.BreakStmt{Keyword: kw, Semi: semi}, rest, nil
}

func parseContinueStmt(c token.Cursor, file string) (ast.Stmt, token.Cursor, *Error) {
	kw, c2, _ := c.Pop()
	semi, rest, err := endOfStmt(c2, file)
	if err != nil {
		return nil, rest, err
	}
	return &ast.ContinueStmt{Keyword: kw, Semi: semi}, rest, nil
}

// sameLineValue parses an optional value expression after keywords like
// return/yield, only if it begins on the same source line and isn't
// immediately a statement terminator.
func sameLineValue(c token.Cursor, file string) (ast.Expr, token.Cursor, *Error) {
	if c.IsNewline() || c.IsEnded() {
		return nil, c, nil
	}
	tok, ok := c.Peek()
	if !ok {
		return nil, c, nil
	}
	if tok.Kind == token.Terminal && (tok.Term == keyword.Semi || tok.Term == keyword.CloseBrace) {
		return nil, c, nil
	}
	if tok.Kind == token.Empty {
		return nil, c, nil
	}
	v, rest, err := parseExpr(c, file)
	if err != nil {
		err.Fatal = true
		return nil, rest, err
	}
	return v, rest, nil
}

func parseReturnStmt(c token.Cursor, file string) (ast.Stmt, token.Cursor, *Error) {
	kw, c2, _ := c.Pop()
	val, rest, err := sameLineValue(c2, file)
	if err != nil {
		return nil, rest, err
	}
	semi, rest2, err := endOfStmt(rest, file)
	if err != nil {
		return nil, rest2, err
	}
	return &ast.ReturnStmt{Keyword: kw, Value: val, Semi: semi}, rest2, nil
}

func parseYieldStmt(c token.Cursor, file string) (ast.Stmt, token.Cursor, *Error) {
	kw, c2, _ := c.Pop()
	val, rest, err := sameLineValue(c2, file)
	if err != nil {
		return nil, rest, err
	}
	semi, rest2, err := endOfStmt(rest, file)
	if err != nil {
		return nil, rest2, err
	}
	return &ast.YieldStmt{Keyword: kw, Value: val, Semi: semi}, rest2, nil
}

func parseThrowStmt(c token.Cursor, file string) (ast.Stmt, token.Cursor, *Error) {
	kw, c2, _ := c.Pop()
	val, rest, err := parseExpr(c2, file)
	if err != nil {
		err.Fatal = true
		return nil, rest, err
	}
	semi, rest2, err := endOfStmt(rest, file)
	if err != nil {
		return nil, rest2, err
	}
	return &ast.ThrowStmt{Keyword: kw, Value: val, Semi: semi}, rest2, nil
}

func parseWaitStmt(c token.Cursor, file string) (ast.Stmt, token.Cursor, *Error) {
	kw, c2, _ := c.Pop()
	val, rest, err := parseExpr(c2, file)
	if err != nil {
		err.Fatal = true
		return nil, rest, err
	}
	semi, rest2, err := endOfStmt(rest, file)
	if err != nil {
		return nil, rest2, err
	}
	return &ast.WaitStmt{Keyword: kw, Value: val, Semi: semi}, rest2, nil
}

func parseThreadStmt(c token.Cursor, file string) (ast.Stmt, token.Cursor, *Error) {
	kw, c2, _ := c.Pop()
	call, rest, err := parseExpr(c2, file)
	if err != nil {
		err.Fatal = true
		return nil, rest, err
	}
	semi, rest2, err := endOfStmt(rest, file)
	if err != nil {
		return nil, rest2, err
	}
	return &ast.ThreadStmt{Keyword: kw, Call: call, Semi: semi}, rest2, nil
}

func parseWaitthreadStmt(c token.Cursor, file string) (ast.Stmt, token.Cursor, *Error) {
	kw, c2, _ := c.Pop()
	call, rest, err := parseExpr(c2, file)
	if err != nil {
		err.Fatal = true
		return nil, rest, err
	}
	semi, rest2, err := endOfStmt(rest, file)
	if err != nil {
		return nil, rest2, err
	}
	return &ast.WaitthreadStmt{Keyword: kw, Call: call, Semi: semi}, rest2, nil
}

func parseWaitthreadsoloStmt(c token.Cursor, file string) (ast.Stmt, token.Cursor, *Error) {
	kw, c2, _ := c.Pop()
	call, rest, err := parseExpr(c2, file)
	if err != nil {
		err.Fatal = true
		return nil, rest, err
	}
	semi, rest2, err := endOfStmt(rest, file)
	if err != nil {
		return nil, rest2, err
	}
	return &ast.WaitthreadsoloStmt{Keyword: kw, Call: call, Semi: semi}, rest2, nil
}

func parseDelaythreadStmt(c token.Cursor, file string) (ast.Stmt, token.Cursor, *Error) {
	kw, c2, _ := c.Pop()
	open, ok := c2.Peek()
	if !ok || open.Kind != token.Terminal || open.Term != keyword.OpenParen {
		return nil, c2, &Error{File: file, Kind: ExpectedTerminal, Term1: keyword.OpenParen, Range: peekRange(c2), Fatal: true}
	}
	delay, closer, rest, err := opens(c2, file, taxa.DelaythreadStatement.In(), func(c token.Cursor) (ast.Expr, token.Cursor, *Error) {
		return parseExpr(c, file)
	})
	if err != nil {
		return nil, rest, err
	}
	call, rest2, err := parseExpr(rest, file)
	if err != nil {
		err.Fatal = true
		return nil, rest2, err
	}
	semi, rest3, err := endOfStmt(rest2, file)
	if err != nil {
		return nil, rest3, err
	}
	return &ast.DelaythreadStmt{Keyword: kw, Open: open, Close: closer, Delay: delay, Call: call, Semi: semi}, rest3, nil
}

func parseGlobalStmt(c token.Cursor, file string) (ast.Stmt, token.Cursor, *Error) {
	kw, c2, _ := c.Pop()
	def, rest, err := parseStmt(c2, file)
	if err != nil {
		return nil, rest, &Error{File: file, Kind: ExpectedGlobalDefinition, Range: peekRange(c2), Fatal: true}
	}
	switch def.(type) {
	case *ast.FunctionDefinition, *ast.ConstructorDefinition, *ast.ClassDefinition,
		*ast.VarDefinition, *ast.ConstDefinition, *ast.EnumDefinition,
		*ast.StructDeclaration, *ast.TypedefDeclaration:
		return &ast.GlobalStmt{Keyword: kw, Def: def}, rest, nil
	default:
		return nil, c2, &Error{File: file, Kind: ExpectedGlobalDefinition, Range: peekRange(c2), Fatal: true}
	}
}

func parseGlobalizeAllFunctionsStmt(c token.Cursor, file string) (ast.Stmt, token.Cursor, *Error) {
	kw, c2, _ := c.Pop()
	semi, rest, err := endOfStmt(c2, file)
	if err != nil {
		return nil, rest, err
	}
	return &ast.GlobalizeAllFunctionsStmt{Keyword: kw, Semi: semi}, rest, nil
}

func parseUntypedStmt(c token.Cursor, file string) (ast.Stmt, token.Cursor, *Error) {
	kw, c2, _ := c.Pop()
	inner, rest, err := parseStmt(c2, file)
	if err != nil {
		err.Fatal = true
		return nil, rest, err
	}
	return &ast.UntypedStmt{Keyword: kw, Inner: inner}, rest, nil
}

// parseConstDefinition parses `const [ConstType] Name = Value;`. The type
// is optional and disambiguated the same way a struct field's is: parse it
// tentatively and only keep it if an identifier immediately follows.
func parseConstDefinition(c token.Cursor, file string) (ast.Stmt, token.Cursor, *Error) {
	kw, c2, _ := c.Pop()

	var constType ast.Type
	if typ, rest, err := parseType(c2, file); err == nil {
		if n, ok := rest.Peek(); ok && n.Kind == token.Identifier {
			constType = typ
			c2 = rest
		}
	}

	name, rest, ok := c2.Pop()
	if !ok || name.Kind != token.Identifier {
		return nil, c2, &Error{File: file, Kind: ExpectedIdentifier, Range: peekRange(c2), Fatal: true}
	}
	eq, rest2, err := expectTerm(rest, file, keyword.Assign)
	if err != nil {
		err.Fatal = true
		return nil, rest2, err
	}
	val, rest3, err := parseLevel(rest2, file, levelAssignment)
	if err != nil {
		err.Fatal = true
		return nil, rest3, err
	}
	semi, rest4, err := endOfStmt(rest3, file)
	if err != nil {
		return nil, rest4, err
	}
	return &ast.ConstDefinition{Keyword: kw, ConstType: constType, Name: name, Eq: eq, Value: val, Semi: semi}, rest4, nil
}

func parseEnumDefinition(c token.Cursor, file string) (ast.Stmt, token.Cursor, *Error) {
	kw, c2, _ := c.Pop()
	name, rest, ok := c2.Pop()
	if !ok || name.Kind != token.Identifier {
		return nil, c2, &Error{File: file, Kind: ExpectedIdentifier, Range: peekRange(c2), Fatal: true}
	}
	open, ok := rest.Peek()
	if !ok || open.Kind != token.Terminal || open.Term != keyword.OpenBrace {
		return nil, rest, &Error{File: file, Kind: ExpectedTerminal, Term1: keyword.OpenBrace, Range: peekRange(rest), Fatal: true}
	}
	members, closer, rest2, err := opens(rest, file, taxa.EnumDeclaration.In(), parseEnumMemberList)
	if err != nil {
		return nil, rest2, err
	}
	return &ast.EnumDefinition{Keyword: kw, Name: name, Open: open, Members: members, Close: closer}, rest2, nil
}

func parseEnumMemberList(c token.Cursor) (ast.ListTrailing0[ast.EnumMember], token.Cursor, *Error) {
	var list ast.ListTrailing0[ast.EnumMember]
	for {
		if c.IsEnded() {
			return list, c, nil
		}
		name, rest, ok := c.Pop()
		if !ok || name.Kind != token.Identifier {
			return list, c, &Error{Kind: ExpectedIdentifier, Range: peekRange(c), Fatal: true}
		}
		member := ast.EnumMember{Name: name}
		c = rest
		if eq, ok := c.Peek(); ok && eq.Kind == token.Terminal && eq.Term == keyword.Assign {
			_, c2, _ := c.Pop()
			val, c3, err := parseLevel(c2, "", levelAssignment)
			if err != nil {
				err.Fatal = true
				return list, c3, err
			}
			member.Eq = &eq
			member.Value = val
			c = c3
		}
		list.Items = append(list.Items, member)
		if c.IsEnded() {
			return list, c, nil
		}
		tok, rest2, ok := c.Pop()
		if !ok || tok.Kind != token.Terminal || tok.Term != keyword.Comma {
			return list, c, &Error{Kind: ExpectedSlot, Range: peekRange(c), Fatal: true}
		}
		list.Seps = append(list.Seps, tok)
		c = rest2
		if c.IsEnded() {
			list.Trailing = &tok
			return list, c, nil
		}
	}
}

func parseTypedefDeclaration(c token.Cursor, file string) (ast.Stmt, token.Cursor, *Error) {
	kw, c2, _ := c.Pop()
	name, rest, ok := c2.Pop()
	if !ok || name.Kind != token.Identifier {
		return nil, c2, &Error{File: file, Kind: ExpectedIdentifier, Range: peekRange(c2), Fatal: true}
	}
	eq, rest2, err := expectTerm(rest, file, keyword.Assign)
	if err != nil {
		err.Fatal = true
		return nil, rest2, err
	}
	aliased, rest3, err := parseType(rest2, file)
	if err != nil {
		err.Fatal = true
		return nil, rest3, err
	}
	semi, rest4, err := endOfStmt(rest3, file)
	if err != nil {
		return nil, rest4, err
	}
	return &ast.TypedefDeclaration{Keyword: kw, Name: name, Eq: eq, Aliased: aliased, Semi: semi}, rest4, nil
}

func parseStructDeclaration(c token.Cursor, file string) (ast.Stmt, token.Cursor, *Error) {
	kw, c2, _ := c.Pop()
	name, rest, ok := c2.Pop()
	if !ok || name.Kind != token.Identifier {
		return nil, c2, &Error{File: file, Kind: ExpectedIdentifier, Range: peekRange(c2), Fatal: true}
	}
	open, ok := rest.Peek()
	if !ok || open.Kind != token.Terminal || open.Term != keyword.OpenBrace {
		return nil, rest, &Error{File: file, Kind: ExpectedTerminal, Term1: keyword.OpenBrace, Range: peekRange(rest), Fatal: true}
	}
	fields, closer, rest2, err := opens(rest, file, taxa.StructDeclaration.In(), parseStructFieldList)
	if err != nil {
		return nil, rest2, err
	}
	return &ast.StructDeclaration{Keyword: kw, Name: name, Open: open, Fields: fields, Close: closer}, rest2, nil
}

// parseNameSegList parses a "::"-separated path of at least one
// identifier, used by class definitions (which have no out-of-band
// constructor ambiguity to worry about).
func parseNameSegList(c token.Cursor, file string) (ast.List1[ast.NameSeg], token.Cursor, *Error) {
	first, rest, ok := c.Pop()
	if !ok || first.Kind != token.Identifier {
		return ast.List1[ast.NameSeg]{}, c, &Error{File: file, Kind: ExpectedIdentifier, Range: peekRange(c), Fatal: true}
	}
	list := ast.List1[ast.NameSeg]{Items: []ast.NameSeg{{Token: first}}}
	for {
		sep, ok := rest.Peek()
		if !ok || sep.Kind != token.Terminal || sep.Term != keyword.ColonColon {
			return list, rest, nil
		}
		_, c2, _ := rest.Pop()
		name, c3, ok := c2.Pop()
		if !ok || name.Kind != token.Identifier {
			return list, c2, &Error{File: file, Kind: ExpectedIdentifier, Range: peekRange(c2), Fatal: true}
		}
		list.Seps = append(list.Seps, sep)
		list.Items = append(list.Items, ast.NameSeg{Token: name})
		rest = c3
	}
}

func parseClassDefinition(c token.Cursor, file string) (ast.Stmt, token.Cursor, *Error) {
	kw, c2, _ := c.Pop()
	names, rest, err := parseNameSegList(c2, file)
	if err != nil {
		err.Fatal = true
		return nil, rest, err
	}

	var extends *token.Token
	var base ast.Expr
	if tok, ok := rest.Peek(); ok && tok.Kind == token.Terminal && tok.Term == keyword.Extends {
		_, c3, _ := rest.Pop()
		b, c4, err := parseLevel(c3, file, levelAssignment)
		if err != nil {
			err.Fatal = true
			return nil, c4, err
		}
		extends = &tok
		base = b
		rest = c4
	}

	open, ok := rest.Peek()
	if !ok || open.Kind != token.Terminal || open.Term != keyword.OpenBrace {
		return nil, rest, &Error{File: file, Kind: ExpectedTerminal, Term1: keyword.OpenBrace, Range: peekRange(rest), Fatal: true}
	}
	members, closer, rest2, err := opens(rest, file, taxa.ClassBody.In(), parseClassMemberList)
	if err != nil {
		return nil, rest2, err
	}
	return &ast.ClassDefinition{Keyword: kw, Name: names, Extends: extends, Base: base, Open: open, Members: members, Close: closer}, rest2, nil
}

// parseFunctionOrConstructorDefinition parses the name-path following
// "function" and dispatches to a regular function-definition or, if the
// path ends in a trailing "::" before "constructor", the out-of-band
// constructor form.
func parseFunctionOrConstructorDefinition(ret ast.Type, c token.Cursor, file string) (ast.Stmt, token.Cursor, *Error) {
	kw, c2, err := expectTerm(c, file, keyword.Function)
	if err != nil {
		err.Fatal = ret != nil
		return nil, c2, err
	}

	first, rest, ok := c2.Pop()
	if !ok || first.Kind != token.Identifier {
		return nil, c2, &Error{File: file, Kind: ExpectedIdentifier, Range: peekRange(c2), Fatal: true}
	}
	names := ast.List1[ast.NameSeg]{Items: []ast.NameSeg{{Token: first}}}

	for {
		sep, ok := rest.Peek()
		if !ok || sep.Kind != token.Terminal || sep.Term != keyword.ColonColon {
			break
		}
		nxt, ok := rest.PeekAt(1)
		if ok && nxt.Kind == token.Terminal && nxt.Term == keyword.Constructor {
			_, c3, _ := rest.Pop()
			_, c4, _ := c3.Pop()
			return parseConstructorTail(ret, kw, names, sep, nxt, c4, file)
		}
		_, c3, _ := rest.Pop()
		name, c4, ok := c3.Pop()
		if !ok || name.Kind != token.Identifier {
			return nil, c3, &Error{File: file, Kind: ExpectedIdentifier, Range: peekRange(c3), Fatal: true}
		}
		names.Seps = append(names.Seps, sep)
		names.Items = append(names.Items, ast.NameSeg{Token: name})
		rest = c4
	}

	open, ok := rest.Peek()
	if !ok || open.Kind != token.Terminal || open.Term != keyword.OpenParen {
		return nil, rest, &Error{File: file, Kind: ExpectedTerminal, Term1: keyword.OpenParen, Range: peekRange(rest), Fatal: true}
	}
	params, closer, rest2, err := opens(rest, file, taxa.ParameterList.In(), parseParamList)
	if err != nil {
		return nil, rest2, err
	}
	body, rest3, err := parseBlock(rest2, file)
	if err != nil {
		return nil, rest3, err
	}
	return &ast.FunctionDefinition{
		ReturnType: ret, Keyword: kw, Name: names,
		Open: open, Params: params, Close: closer, Body: body,
	}, rest3, nil
}

func parseConstructorTail(ret ast.Type, kw token.Token, names ast.List1[ast.NameSeg], trailing, ctorKw token.Token, c token.Cursor, file string) (ast.Stmt, token.Cursor, *Error) {
	open, ok := c.Peek()
	if !ok || open.Kind != token.Terminal || open.Term != keyword.OpenParen {
		return nil, c, &Error{File: file, Kind: ExpectedTerminal, Term1: keyword.OpenParen, Range: peekRange(c), Fatal: true}
	}
	params, closer, rest, err := opens(c, file, taxa.ParameterList.In(), parseParamList)
	if err != nil {
		return nil, rest, err
	}
	body, rest2, err := parseBlock(rest, file)
	if err != nil {
		return nil, rest2, err
	}
	return &ast.ConstructorDefinition{
		ReturnType: ret, Keyword: kw, Namespace: names, Trailing: trailing,
		CtorKeyword: ctorKw, Open: open, Params: params, Close: closer, Body: body,
	}, rest2, nil
}

func parseIfStmt(c token.Cursor, file string) (ast.Stmt, token.Cursor, *Error) {
	kw, c2, _ := c.Pop()
	open, ok := c2.Peek()
	if !ok || open.Kind != token.Terminal || open.Term != keyword.OpenParen {
		return nil, c2, &Error{File: file, Kind: ExpectedTerminal, Term1: keyword.OpenParen, Range: peekRange(c2), Fatal: true}
	}
	cond, closer, rest, err := opens(c2, file, taxa.IfStatement.In(), func(c token.Cursor) (ast.Expr, token.Cursor, *Error) {
		return parseExpr(c, file)
	})
	if err != nil {
		return nil, rest, err
	}
	then, rest2, err := parseStmt(rest, file)
	if err != nil {
		err.Fatal = true
		return nil, rest2, err
	}

	// "if (..) stmt; else .." -- the ';' is consumed here only when an
	// 'else' actually follows it; otherwise it's left for the enclosing
	// block as its own empty statement.
	checkRest := rest2
	if semi, ok := checkRest.Peek(); ok && semi.Kind == token.Terminal && semi.Term == keyword.Semi {
		if nxt, ok := checkRest.PeekAt(1); ok && nxt.Kind == token.Terminal && nxt.Term == keyword.Else {
			_, checkRest, _ = checkRest.Pop()
		}
	}

	var elseKw *token.Token
	var elseStmt ast.Stmt
	if tok, ok := checkRest.Peek(); ok && tok.Kind == token.Terminal && tok.Term == keyword.Else {
		_, c3, _ := checkRest.Pop()
		body, c4, err := parseStmt(c3, file)
		if err != nil {
			err.Fatal = true
			return nil, c4, err
		}
		elseKw = &tok
		elseStmt = body
		rest2 = c4
	}

	return &ast.IfStmt{Keyword: kw, Open: open, Close: closer, Cond: cond, Then: then, ElseKeyword: elseKw, Else: elseStmt}, rest2, nil
}

func parseWhileStmt(c token.Cursor, file string) (ast.Stmt, token.Cursor, *Error) {
	kw, c2, _ := c.Pop()
	open, ok := c2.Peek()
	if !ok || open.Kind != token.Terminal || open.Term != keyword.OpenParen {
		return nil, c2, &Error{File: file, Kind: ExpectedTerminal, Term1: keyword.OpenParen, Range: peekRange(c2), Fatal: true}
	}
	cond, closer, rest, err := opens(c2, file, taxa.WhileStatement.In(), func(c token.Cursor) (ast.Expr, token.Cursor, *Error) {
		return parseExpr(c, file)
	})
	if err != nil {
		return nil, rest, err
	}
	body, rest2, err := parseStmt(rest, file)
	if err != nil {
		err.Fatal = true
		return nil, rest2, err
	}
	return &ast.WhileStmt{Keyword: kw, Open: open, Close: closer, Cond: cond, Body: body}, rest2, nil
}

func parseDoWhileStmt(c token.Cursor, file string) (ast.Stmt, token.Cursor, *Error) {
	doKw, c2, _ := c.Pop()
	body, rest, err := parseStmt(c2, file)
	if err != nil {
		err.Fatal = true
		return nil, rest, err
	}
	whileKw, rest2, err := expectTerm(rest, file, keyword.While)
	if err != nil {
		err.Fatal = true
		return nil, rest2, err
	}
	open, ok := rest2.Peek()
	if !ok || open.Kind != token.Terminal || open.Term != keyword.OpenParen {
		return nil, rest2, &Error{File: file, Kind: ExpectedTerminal, Term1: keyword.OpenParen, Range: peekRange(rest2), Fatal: true}
	}
	cond, closer, rest3, err := opens(rest2, file, taxa.DoWhileStatement.In(), func(c token.Cursor) (ast.Expr, token.Cursor, *Error) {
		return parseExpr(c, file)
	})
	if err != nil {
		return nil, rest3, err
	}
	semi, rest4, err := endOfStmt(rest3, file)
	if err != nil {
		return nil, rest4, err
	}
	return &ast.DoWhileStmt{DoKeyword: doKw, Body: body, WhileKeyword: whileKw, Open: open, Close: closer, Cond: cond, Semi: semi}, rest4, nil
}

func parseSwitchStmt(c token.Cursor, file string) (ast.Stmt, token.Cursor, *Error) {
	kw, c2, _ := c.Pop()
	open, ok := c2.Peek()
	if !ok || open.Kind != token.Terminal || open.Term != keyword.OpenParen {
		return nil, c2, &Error{File: file, Kind: ExpectedTerminal, Term1: keyword.OpenParen, Range: peekRange(c2), Fatal: true}
	}
	cond, closer, rest, err := opens(c2, file, taxa.SwitchStatement.In(), func(c token.Cursor) (ast.Expr, token.Cursor, *Error) {
		return parseExpr(c, file)
	})
	if err != nil {
		return nil, rest, err
	}
	bodyOpen, ok := rest.Peek()
	if !ok || bodyOpen.Kind != token.Terminal || bodyOpen.Term != keyword.OpenBrace {
		return nil, rest, &Error{File: file, Kind: ExpectedTerminal, Term1: keyword.OpenBrace, Range: peekRange(rest), Fatal: true}
	}
	cases, bodyClose, rest2, err := opens(rest, file, taxa.SwitchStatement.In(), func(c token.Cursor) ([]ast.SwitchCase, token.Cursor, *Error) {
		return parseSwitchCases(c, file)
	})
	if err != nil {
		return nil, rest2, err
	}
	return &ast.SwitchStmt{Keyword: kw, Open: open, Close: closer, Cond: cond, BodyOpen: bodyOpen, Cases: cases, BodyClose: bodyClose}, rest2, nil
}

func parseSwitchCases(c token.Cursor, file string) ([]ast.SwitchCase, token.Cursor, *Error) {
	var cases []ast.SwitchCase
	for !c.IsEnded() {
		tok, ok := c.Peek()
		if !ok || tok.Kind != token.Terminal || (tok.Term != keyword.Case && tok.Term != keyword.Default) {
			return cases, c, &Error{File: file, Kind: ExpectedStatement, Range: peekRange(c), Fatal: true}
		}
		var caseKw *token.Token
		var val ast.Expr
		_, c2, _ := c.Pop()
		if tok.Term == keyword.Case {
			caseKw = &tok
			v, c3, err := parseExpr(c2, file)
			if err != nil {
				err.Fatal = true
				return cases, c3, err
			}
			val = v
			c2 = c3
		}
		colon, c3, err := expectTerm(c2, file, keyword.Colon)
		if err != nil {
			err.Fatal = true
			return cases, c3, err
		}
		var stmts []ast.Stmt
		for !c3.IsEnded() {
			if nxt, ok := c3.Peek(); ok && nxt.Kind == token.Terminal && (nxt.Term == keyword.Case || nxt.Term == keyword.Default) {
				break
			}
			s, rest, err := parseStmt(c3, file)
			if err != nil {
				return cases, rest, err
			}
			stmts = append(stmts, s)
			c3 = rest
		}
		cases = append(cases, ast.SwitchCase{CaseKeyword: caseKw, Value: val, Colon: colon, Stmts: stmts})
		c = c3
	}
	return cases, c, nil
}

func parseForInit(c token.Cursor, file string) (ast.Stmt, token.Cursor, *Error) {
	if tok, ok := c.Peek(); ok && tok.Kind == token.Terminal && tok.Term == keyword.Semi {
		return nil, c, nil
	}
	if typ, rest, err := parseType(c, file); err == nil {
		if n, ok := rest.Peek(); ok && n.Kind == token.Identifier {
			return parseVarDeclaratorsNoSemi(typ, rest, file)
		}
	}
	e, rest, err := parseExpr(c, file)
	if err != nil {
		err.Fatal = true
		return nil, rest, err
	}
	return &ast.ExpressionStmt{Expr: e}, rest, nil
}

type forHead struct {
	Init  ast.Stmt
	Semi1 token.Token
	Cond  ast.Expr
	Semi2 token.Token
	Post  ast.Expr
}

func parseForStmt(c token.Cursor, file string) (ast.Stmt, token.Cursor, *Error) {
	kw, c2, _ := c.Pop()
	open, ok := c2.Peek()
	if !ok || open.Kind != token.Terminal || open.Term != keyword.OpenParen {
		return nil, c2, &Error{File: file, Kind: ExpectedTerminal, Term1: keyword.OpenParen, Range: peekRange(c2), Fatal: true}
	}
	head, closer, rest, err := opens(c2, file, taxa.ForStatement.In(), func(c token.Cursor) (forHead, token.Cursor, *Error) {
		return parseForHead(c, file)
	})
	if err != nil {
		return nil, rest, err
	}
	body, rest2, err := parseStmt(rest, file)
	if err != nil {
		err.Fatal = true
		return nil, rest2, err
	}
	return &ast.ForStmt{
		Keyword: kw, Open: open, Init: head.Init, Semi1: head.Semi1,
		Cond: head.Cond, Semi2: head.Semi2, Post: head.Post, Close: closer, Body: body,
	}, rest2, nil
}

func parseForHead(c token.Cursor, file string) (forHead, token.Cursor, *Error) {
	var h forHead
	init, rest, err := parseForInit(c, file)
	if err != nil {
		return h, rest, err
	}
	h.Init = init

	semi1, rest2, err := expectTerm(rest, file, keyword.Semi)
	if err != nil {
		err.Fatal = true
		return h, rest2, err
	}
	h.Semi1 = semi1

	if tok, ok := rest2.Peek(); !ok || !(tok.Kind == token.Terminal && tok.Term == keyword.Semi) {
		cond, rest3, err := parseExpr(rest2, file)
		if err != nil {
			err.Fatal = true
			return h, rest3, err
		}
		h.Cond = cond
		rest2 = rest3
	}

	semi2, rest4, err := expectTerm(rest2, file, keyword.Semi)
	if err != nil {
		err.Fatal = true
		return h, rest4, err
	}
	h.Semi2 = semi2

	if !rest4.IsEnded() {
		post, rest5, err := parseExpr(rest4, file)
		if err != nil {
			err.Fatal = true
			return h, rest5, err
		}
		h.Post = post
		rest4 = rest5
	}
	return h, rest4, nil
}

type foreachHead struct {
	KeyName   *token.Token
	Comma     *token.Token
	ValueName token.Token
	InKeyword token.Token
	Iter      ast.Expr
}

func parseForeachStmt(c token.Cursor, file string) (ast.Stmt, token.Cursor, *Error) {
	kw, c2, _ := c.Pop()
	open, ok := c2.Peek()
	if !ok || open.Kind != token.Terminal || open.Term != keyword.OpenParen {
		return nil, c2, &Error{File: file, Kind: ExpectedTerminal, Term1: keyword.OpenParen, Range: peekRange(c2), Fatal: true}
	}
	head, closer, rest, err := opens(c2, file, taxa.ForeachStatement.In(), func(c token.Cursor) (foreachHead, token.Cursor, *Error) {
		return parseForeachHead(c, file)
	})
	if err != nil {
		return nil, rest, err
	}
	body, rest2, err := parseStmt(rest, file)
	if err != nil {
		err.Fatal = true
		return nil, rest2, err
	}
	return &ast.ForeachStmt{
		Keyword: kw, Open: open, KeyName: head.KeyName, Comma: head.Comma,
		ValueName: head.ValueName, InKeyword: head.InKeyword, Iter: head.Iter,
		Close: closer, Body: body,
	}, rest2, nil
}

func parseForeachHead(c token.Cursor, file string) (foreachHead, token.Cursor, *Error) {
	var h foreachHead
	name1, rest, ok := c.Pop()
	if !ok || name1.Kind != token.Identifier {
		return h, c, &Error{File: file, Kind: ExpectedIdentifier, Range: peekRange(c)}
	}
	if comma, ok := rest.Peek(); ok && comma.Kind == token.Terminal && comma.Term == keyword.Comma {
		_, rest2, _ := rest.Pop()
		name2, rest3, ok := rest2.Pop()
		if !ok || name2.Kind != token.Identifier {
			return h, rest2, &Error{File: file, Kind: ExpectedIdentifier, Range: peekRange(rest2), Fatal: true}
		}
		h.KeyName = &name1
		h.Comma = &comma
		h.ValueName = name2
		rest = rest3
	} else {
		h.ValueName = name1
	}

	inKw, rest4, err := expectTerm(rest, file, keyword.In)
	if err != nil {
		err.Fatal = true
		return h, rest4, err
	}
	h.InKeyword = inKw

	iter, rest5, err := parseExpr(rest4, file)
	if err != nil {
		err.Fatal = true
		return h, rest5, err
	}
	h.Iter = iter
	return h, rest5, nil
}

func parseTryCatchStmt(c token.Cursor, file string) (ast.Stmt, token.Cursor, *Error) {
	tryKw, c2, _ := c.Pop()
	tryBody, rest, err := parseStmt(c2, file)
	if err != nil {
		err.Fatal = true
		return nil, rest, err
	}
	catchKw, rest2, err := expectTerm(rest, file, keyword.Catch)
	if err != nil {
		err.Fatal = true
		return nil, rest2, err
	}
	open, ok := rest2.Peek()
	if !ok || open.Kind != token.Terminal || open.Term != keyword.OpenParen {
		return nil, rest2, &Error{File: file, Kind: ExpectedTerminal, Term1: keyword.OpenParen, Range: peekRange(rest2), Fatal: true}
	}
	errName, closer, rest3, err := opens(rest2, file, taxa.TryCatchStatement.In(), func(c token.Cursor) (token.Token, token.Cursor, *Error) {
		name, rest, ok := c.Pop()
		if !ok || name.Kind != token.Identifier {
			return token.Token{}, c, &Error{Kind: ExpectedIdentifier, Range: peekRange(c), Fatal: true}
		}
		return name, rest, nil
	})
	if err != nil {
		return nil, rest3, err
	}
	catchBody, rest4, err := parseStmt(rest3, file)
	if err != nil {
		err.Fatal = true
		return nil, rest4, err
	}
	return &ast.TryCatchStmt{TryKeyword: tryKw, TryBody: tryBody, CatchKeyword: catchKw, Open: open, Close: closer, ErrName: errName, CatchBody: catchBody}, rest4, nil
}
