package parser

import (
	"github.com/nutlang/sqfront/ast"
	"github.com/nutlang/sqfront/internal/taxa"
	"github.com/nutlang/sqfront/token"
	"github.com/nutlang/sqfront/token/keyword"
)

// parseExpr parses a full expression, including the top-level comma
// operator (precedence level 1): one or more assignment-level expressions
// separated by ',', collapsing to a bare expression when there's only one.
func parseExpr(c token.Cursor, file string) (ast.Expr, token.Cursor, *Error) {
	first, c, err := parseLevel(c, file, levelAssignment)
	if err != nil {
		return nil, c, err
	}

	list := ast.List1[ast.ExprItem]{Items: []ast.ExprItem{{Expr: first}}}
	for {
		tok, ok := c.Peek()
		if !ok || tok.Kind != token.Terminal || tok.Term != keyword.Comma {
			break
		}
		_, c2, _ := c.Pop()
		next, c3, err := parseLevel(c2, file, levelAssignment)
		if err != nil {
			err.Fatal = true
			return nil, c3, err
		}
		list.Seps = append(list.Seps, tok)
		list.Items = append(list.Items, ast.ExprItem{Expr: next})
		c = c3
	}

	if len(list.Items) == 1 {
		return list.Items[0].Expr, c, nil
	}
	return &ast.CommaExpr{Exprs: list}, c, nil
}

// parseLevel parses a single expression whose outermost operator binds at
// least as tightly as minLevel: the classic precedence-climbing loop.
func parseLevel(c token.Cursor, file string, minLevel level) (ast.Expr, token.Cursor, *Error) {
	lhs, c, err := parseUnary(c, file)
	if err != nil {
		return nil, c, err
	}
	return parseContinuation(lhs, c, file, minLevel)
}

func parseUnary(c token.Cursor, file string) (ast.Expr, token.Cursor, *Error) {
	if op, c2, ok := tryPrefixOp(c); ok {
		operand, c3, err := parseLevel(c2, file, levelPrefix)
		if err != nil {
			err.Fatal = true
			return nil, c3, err
		}
		return &ast.PrefixExpr{Op: op, Operand: operand}, c3, nil
	}
	return parsePrimary(c, file)
}

func parseContinuation(lhs ast.Expr, c token.Cursor, file string, minLevel level) (ast.Expr, token.Cursor, *Error) {
	for {
		// Postfix ++ / -- (level 15): never across a newline.
		if levelPostfix >= minLevel && !c.IsNewline() {
			if op, c2, ok := tryPostfixOp(c); ok {
				lhs = &ast.PostfixExpr{Operand: lhs, Op: op}
				c = c2
				continue
			}
		}

		if tok, ok := c.Peek(); ok && tok.Kind == token.Terminal {
			switch {
			case levelPostfix >= minLevel && tok.Term == keyword.OpenParen:
				next, ok := tryCallExpr(lhs, c, file)
				if ok {
					lhs, c = next.expr, next.cur
					if next.err != nil {
						return nil, c, next.err
					}
					continue
				}

			case levelPostfix >= minLevel && tok.Term == keyword.OpenSquare:
				idx, closer, rest, err := opens(c, file, taxa.IndexExpr.In(), func(c token.Cursor) (ast.Expr, token.Cursor, *Error) {
					return parseExpr(c, file)
				})
				if err != nil {
					return nil, rest, err
				}
				open, _ := c.Peek()
				lhs = &ast.IndexExpr{Base: lhs, Open: open, Close: closer, Index: idx}
				c = rest
				continue

			case levelProperty >= minLevel && tok.Term == keyword.Dot:
				_, c2, _ := c.Pop()
				name, c3, ok := c2.Pop()
				if !ok || (name.Kind != token.Identifier && name.Term != keyword.Constructor) {
					return nil, c2, &Error{File: file, Kind: ExpectedIdentifier, Range: peekRange(c2), Fatal: true}
				}
				lhs = &ast.PropertyExpr{Base: lhs, Dot: tok, Name: name}
				c = c3
				continue

			case levelTernary >= minLevel && tok.Term == keyword.Question:
				_, c2, _ := c.Pop()
				then, c3, err := parseLevel(c2, file, levelAssignment)
				if err != nil {
					err.Fatal = true
					return nil, c3, err
				}
				colon, c4, err := expectTerm(c3, file, keyword.Colon)
				if err != nil {
					err.Fatal = true
					return nil, c4, err
				}
				els, c5, err := parseLevel(c4, file, levelTernary)
				if err != nil {
					err.Fatal = true
					return nil, c5, err
				}
				lhs = &ast.TernaryExpr{Cond: lhs, Question: tok, Then: then, Colon: colon, Else: els}
				c = c5
				continue
			}

			if lv, isRight, ok := simpleLevel(tok.Term); ok && lv >= minLevel {
				_, c2, _ := c.Pop()
				rhsMin := lv + 1
				if isRight {
					rhsMin = lv
				}
				rhs, c3, err := parseLevel(c2, file, rhsMin)
				if err != nil {
					err.Fatal = true
					return nil, c3, err
				}
				lhs = &ast.BinaryExpr{Left: lhs, Op: ast.Operator{Toks: []token.Token{tok}}, Right: rhs}
				c = c3
				continue
			}
		}

		if op, lv, c2, ok := tryCompoundBinaryOp(c); ok && lv >= minLevel {
			rhsMin := lv + 1
			if lv.rightAssoc() {
				rhsMin = lv
			}
			rhs, c3, err := parseLevel(c2, file, rhsMin)
			if err != nil {
				err.Fatal = true
				return nil, c3, err
			}
			lhs = &ast.BinaryExpr{Left: lhs, Op: op, Right: rhs}
			c = c3
			continue
		}

		return lhs, c, nil
	}
}

func simpleLevel(t keyword.Terminal) (level, bool, bool) {
	lv, ok := simpleBinaryOps[t]
	return lv, lv.rightAssoc(), ok
}

type callResult struct {
	expr ast.Expr
	cur  token.Cursor
	err  *Error
}

// tryCallExpr parses `callee(args)` with an optional post-initializer
// table literal, which is only attached if it starts on the same source
// line as the closing ')'.
func tryCallExpr(callee ast.Expr, c token.Cursor, file string) (callResult, bool) {
	args, closer, rest, err := opens(c, file, taxa.ArgumentList.In(), parseArgList)
	if err != nil {
		return callResult{cur: rest, err: err}, true
	}
	open, _ := c.Peek()
	call := &ast.CallExpr{Callee: callee, Open: open, Close: closer, Args: args}

	if !rest.IsNewline() {
		if tok, ok := rest.Peek(); ok && tok.Kind == token.Terminal && tok.Term == keyword.OpenBrace {
			body, closer2, rest2, err := opens(rest, file, taxa.TableLiteral.In(), parseTableFieldList)
			if err != nil {
				return callResult{cur: rest2, err: err}, true
			}
			call.PostInit = &ast.TableLiteral{Open: tok, Fields: body.List, Spread: body.Spread, Close: closer2}
			rest = rest2
		}
	}
	return callResult{expr: call, cur: rest}, true
}

// parsePrimary parses a value: literal, identifier, root-variable, parens,
// table/array/class/vector literal, function literal (optionally with a
// typed return), delegate, or expect.
func parsePrimary(c token.Cursor, file string) (ast.Expr, token.Cursor, *Error) {
	tok, ok := c.Peek()
	if !ok {
		return nil, c, &Error{File: file, Kind: ExpectedExpression, Range: eofRange(c)}
	}

	switch tok.Kind {
	case token.Literal:
		_, c2, _ := c.Pop()
		return &ast.LiteralExpr{Tok: tok}, c2, nil
	case token.Identifier:
		_, c2, _ := c.Pop()
		return &ast.VariableExpr{Name: tok}, c2, nil
	}

	if tok.Kind != token.Terminal {
		return nil, c, &Error{File: file, Kind: ExpectedExpression, Range: tok.Range}
	}

	switch tok.Term {
	case keyword.ColonColon:
		_, c2, _ := c.Pop()
		name, c3, ok := c2.Pop()
		if !ok || name.Kind != token.Identifier {
			return nil, c2, &Error{File: file, Kind: ExpectedIdentifier, Range: peekRange(c2), Fatal: true}
		}
		return &ast.RootVariableExpr{Root: tok, Name: name}, c3, nil

	case keyword.OpenParen:
		inner, closer, rest, err := opens(c, file, taxa.ParenExpr.In(), func(c token.Cursor) (ast.Expr, token.Cursor, *Error) {
			return parseExpr(c, file)
		})
		if err != nil {
			return nil, rest, err
		}
		return &ast.ParenExpr{Open: tok, Close: closer, Inner: inner}, rest, nil

	case keyword.OpenBrace:
		body, closer, rest, err := opens(c, file, taxa.TableLiteral.In(), parseTableFieldList)
		if err != nil {
			return nil, rest, err
		}
		return &ast.TableLiteral{Open: tok, Fields: body.List, Spread: body.Spread, Close: closer}, rest, nil

	case keyword.OpenSquare:
		body, closer, rest, err := opens(c, file, taxa.ArrayLiteral.In(), parseArrayElemList)
		if err != nil {
			return nil, rest, err
		}
		return &ast.ArrayLiteral{Open: tok, Close: closer, Elems: body.List, Spread: body.Spread}, rest, nil

	case keyword.Less:
		return parseVectorExpr(c, file)

	case keyword.Class:
		return parseClassLiteral(c, file)

	case keyword.Function:
		return parseFunctionLiteral(nil, c, file)

	case keyword.Delegate:
		_, c2, _ := c.Pop()
		parent, c3, err := parseLevel(c2, file, levelAssignment)
		if err != nil {
			err.Fatal = true
			return nil, c3, err
		}
		colon, c4, err := expectTerm(c3, file, keyword.Colon)
		if err != nil {
			err.Fatal = true
			return nil, c4, err
		}
		table, c5, err := parseLevel(c4, file, levelAssignment)
		if err != nil {
			err.Fatal = true
			return nil, c5, err
		}
		return &ast.DelegateExpr{Keyword: tok, Parent: parent, Colon: colon, Table: table}, c5, nil

	case keyword.Expect:
		_, c2, _ := c.Pop()
		typ, c3, err := parseType(c2, file)
		if err != nil {
			err.Fatal = true
			return nil, c3, err
		}
		open, ok := c3.Peek()
		if !ok || open.Kind != token.Terminal || open.Term != keyword.OpenParen {
			return nil, c3, &Error{File: file, Kind: ExpectedTerminal, Term1: keyword.OpenParen, Range: peekRange(c3), Fatal: true}
		}
		val, closer, rest, err := opens(c3, file, taxa.ExpectExpr.In(), func(c token.Cursor) (ast.Expr, token.Cursor, *Error) {
			return parseExpr(c, file)
		})
		if err != nil {
			return nil, rest, err
		}
		return &ast.ExpectExpr{Keyword: tok, ExpectedType: typ, Open: open, Close: closer, Value: val}, rest, nil
	}

	// A return-typed function literal: a type followed (same line) by
	// "function". Tried last since every base-type keyword/identifier
	// also overlaps with a plain value in expression position.
	if typ, rest, err := parseType(c, file); err == nil {
		if fnTok, ok := rest.Peek(); ok && fnTok.Kind == token.Terminal && fnTok.Term == keyword.Function {
			if rest.IsNewline() {
				return nil, rest, &Error{File: file, Kind: IllegalLineBreak, Range: fnTok.Range, Fatal: true}
			}
			return parseFunctionLiteral(typ, rest, file)
		}
	}

	return nil, c, &Error{File: file, Kind: ExpectedExpression, Range: tok.Range}
}

func parseFunctionLiteral(ret ast.Type, c token.Cursor, file string) (ast.Expr, token.Cursor, *Error) {
	kw, c2, err := expectTerm(c, file, keyword.Function)
	if err != nil {
		err.Fatal = ret != nil
		return nil, c2, err
	}

	var name *token.Token
	if tok, ok := c2.Peek(); ok && tok.Kind == token.Identifier {
		_, c3, _ := c2.Pop()
		name = &tok
		c2 = c3
	}

	open, ok := c2.Peek()
	if !ok || open.Kind != token.Terminal || open.Term != keyword.OpenParen {
		return nil, c2, &Error{File: file, Kind: ExpectedTerminal, Term1: keyword.OpenParen, Range: peekRange(c2), Fatal: true}
	}
	params, closer, rest, err := opens(c2, file, taxa.ParameterList.In(), parseParamList)
	if err != nil {
		return nil, rest, err
	}

	bodyOpen, ok := rest.Peek()
	if !ok || bodyOpen.Kind != token.Terminal || bodyOpen.Term != keyword.OpenBrace {
		return nil, rest, &Error{File: file, Kind: ExpectedTerminal, Term1: keyword.OpenBrace, Range: peekRange(rest), Fatal: true}
	}
	body, bodyRest, err := parseBlock(rest, file)
	if err != nil {
		return nil, bodyRest, err
	}

	return &ast.FunctionLiteral{
		ReturnType: ret, Keyword: kw, Name: name,
		Open: open, Close: closer, Params: params, Body: body,
	}, bodyRest, nil
}

func parseVectorExpr(c token.Cursor, file string) (ast.Expr, token.Cursor, *Error) {
	open, c2, err := expectTerm(c, file, keyword.Less)
	if err != nil {
		return nil, c, err
	}

	first, c3, err := parseLevel(c2, file, levelAssignment)
	if err != nil {
		err.Fatal = true
		return nil, c3, err
	}
	list := ast.List1[ast.ExprItem]{Items: []ast.ExprItem{{Expr: first}}}
	c2 = c3

	for {
		tok, ok := c2.Peek()
		if ok && tok.Kind == token.Terminal && tok.Term == keyword.Comma {
			_, c4, _ := c2.Pop()
			item, c5, err := parseLevel(c4, file, levelAssignment)
			if err != nil {
				err.Fatal = true
				return nil, c5, err
			}
			list.Seps = append(list.Seps, tok)
			list.Items = append(list.Items, ast.ExprItem{Expr: item})
			c2 = c5
			continue
		}
		break
	}

	closer, rest, err := consumeSingleGreater(c2, file)
	if err != nil {
		err.Fatal = true
		return nil, rest, err
	}
	return &ast.VectorExpr{Open: open, Close: closer, Elems: list}, rest, nil
}

func parseClassLiteral(c token.Cursor, file string) (ast.Expr, token.Cursor, *Error) {
	kw, c2, err := expectTerm(c, file, keyword.Class)
	if err != nil {
		return nil, c, err
	}

	var extends *token.Token
	var base ast.Expr
	if tok, ok := c2.Peek(); ok && tok.Kind == token.Terminal && tok.Term == keyword.Extends {
		_, c3, _ := c2.Pop()
		b, c4, err := parseLevel(c3, file, levelAssignment)
		if err != nil {
			err.Fatal = true
			return nil, c4, err
		}
		extends = &tok
		base = b
		c2 = c4
	}

	open, ok := c2.Peek()
	if !ok || open.Kind != token.Terminal || open.Term != keyword.OpenBrace {
		return nil, c2, &Error{File: file, Kind: ExpectedTerminal, Term1: keyword.OpenBrace, Range: peekRange(c2), Fatal: true}
	}
	members, closer, rest, err := opens(c2, file, taxa.ClassBody.In(), parseClassMemberList)
	if err != nil {
		return nil, rest, err
	}
	return &ast.ClassLiteral{Keyword: kw, Extends: extends, Base: base, Open: open, Close: closer, Members: members}, rest, nil
}
