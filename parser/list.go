package parser

import (
	"github.com/nutlang/sqfront/ast"
	"github.com/nutlang/sqfront/internal/taxa"
	"github.com/nutlang/sqfront/token"
	"github.com/nutlang/sqfront/token/keyword"
)

// These list parsers all follow the same shape: items separated by ',',
// an optional trailing ',', and (for table and array literal bodies and
// parameter lists) an optional spread marker "..." that must be the very
// last thing before the close delimiter. They're called from inside opens(), so they're
// handed the interior cursor of an already-matched delimiter pair and
// must consume all of it.

func parseArgList(c token.Cursor) (ast.ListTrailing0[ast.ExprItem], token.Cursor, *Error) {
	var list ast.ListTrailing0[ast.ExprItem]
	for {
		if c.IsEnded() {
			return list, c, nil
		}
		e, rest, err := parseLevel(c, "", levelAssignment)
		if err != nil {
			return list, rest, err
		}
		list.Items = append(list.Items, ast.ExprItem{Expr: e})
		c = rest
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

// arrayBody carries an array/vararg-style element list plus the trailing
// "..." spread marker, if any, through opens() -- which can only return a
// single value type, so the marker can't live on ast.ListTrailing0 itself.
type arrayBody struct {
	List   ast.ListTrailing0[ast.ExprItem]
	Spread *token.Token
}

func parseArrayElemList(c token.Cursor) (arrayBody, token.Cursor, *Error) {
	var body arrayBody
	for {
		if c.IsEnded() {
			return body, c, nil
		}
		if spread, rest, ok := trySpread(c); ok {
			body.Spread = &spread
			if !rest.IsEnded() {
				return body, rest, &Error{Kind: ExpectedSlot, Range: peekRange(rest), Fatal: true}
			}
			return body, rest, nil
		}
		e, rest, err := parseLevel(c, "", levelAssignment)
		if err != nil {
			return body, rest, err
		}
		body.List.Items = append(body.List.Items, ast.ExprItem{Expr: e})
		c = rest
		if c.IsEnded() {
			return body, c, nil
		}
		tok, rest2, ok := c.Pop()
		if !ok || tok.Kind != token.Terminal || tok.Term != keyword.Comma {
			return body, c, &Error{Kind: ExpectedSlot, Range: peekRange(c), Fatal: true}
		}
		body.List.Seps = append(body.List.Seps, tok)
		c = rest2
		if c.IsEnded() {
			body.List.Trailing = &tok
			return body, c, nil
		}
	}
}

// trySpread matches a trailing "..." marker (an Ellipsis terminal) at the
// front of c.
func trySpread(c token.Cursor) (token.Token, token.Cursor, bool) {
	tok, ok := c.Peek()
	if !ok || tok.Kind != token.Terminal || tok.Term != keyword.Ellipsis {
		return token.Token{}, c, false
	}
	_, c2, _ := c.Pop()
	return tok, c2, true
}

// tableBody mirrors arrayBody for table-literal field lists.
type tableBody struct {
	List   ast.ListTrailing0[ast.TableField]
	Spread *token.Token
}

func parseTableFieldList(c token.Cursor) (tableBody, token.Cursor, *Error) {
	var body tableBody
	for {
		if c.IsEnded() {
			return body, c, nil
		}
		if spread, rest, ok := trySpread(c); ok {
			body.Spread = &spread
			if !rest.IsEnded() {
				return body, rest, &Error{Kind: ExpectedTableSlot, Range: peekRange(rest), Fatal: true}
			}
			return body, rest, nil
		}
		field, rest, err := parseTableField(c)
		if err != nil {
			return body, rest, err
		}
		body.List.Items = append(body.List.Items, field)
		c = rest
		if c.IsEnded() {
			return body, c, nil
		}
		tok, rest2, ok := c.Pop()
		if !ok || tok.Kind != token.Terminal || tok.Term != keyword.Comma {
			return body, c, &Error{Kind: ExpectedTableSlot, Range: peekRange(c), Fatal: true}
		}
		body.List.Seps = append(body.List.Seps, tok)
		c = rest2
		if c.IsEnded() {
			body.List.Trailing = &tok
			return body, c, nil
		}
	}
}

func parseTableField(c token.Cursor) (ast.TableField, token.Cursor, *Error) {
	var field ast.TableField

	if tok, ok := c.Peek(); ok && tok.Kind == token.Terminal && tok.Term == keyword.OpenSquare {
		key, closer, rest, err := opens(c, "", taxa.TableField.In(), func(c token.Cursor) (ast.Expr, token.Cursor, *Error) {
			return parseExpr(c, "")
		})
		if err != nil {
			return field, rest, err
		}
		field.Open, field.Close = &tok, &closer
		field.Key = key
		c = rest
	} else {
		key, rest, err := parseLevel(c, "", levelAssignment)
		if err != nil {
			return field, rest, err
		}
		field.Key = key
		c = rest
	}

	eq, rest, err := expectTerm(c, "", keyword.Assign)
	if err != nil {
		err.Fatal = true
		return field, rest, err
	}
	field.Eq = eq

	val, rest2, err := parseLevel(rest, "", levelAssignment)
	if err != nil {
		err.Fatal = true
		return field, rest2, err
	}
	field.Value = val
	return field, rest2, nil
}

func parseParamList(c token.Cursor) (ast.ListTrailing0[ast.Parameter], token.Cursor, *Error) {
	var list ast.ListTrailing0[ast.Parameter]
	for {
		if c.IsEnded() {
			return list, c, nil
		}
		if spread, rest, ok := trySpread(c); ok {
			list.Items = append(list.Items, ast.Parameter{Spread: &spread})
			if !rest.IsEnded() {
				return list, rest, &Error{Kind: ExpectedSlot, Range: peekRange(rest), Fatal: true}
			}
			return list, rest, nil
		}
		p, rest, err := parseParameter(c)
		if err != nil {
			return list, rest, err
		}
		list.Items = append(list.Items, p)
		c = rest
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

func parseParameter(c token.Cursor) (ast.Parameter, token.Cursor, *Error) {
	var p ast.Parameter

	if typ, rest, err := parseType(c, ""); err == nil {
		if n, ok := rest.Peek(); ok && n.Kind == token.Identifier {
			p.ParamType = typ
			c = rest
		}
	}

	name, rest, ok := c.Pop()
	if !ok || name.Kind != token.Identifier {
		return p, c, &Error{Kind: ExpectedIdentifier, Range: peekRange(c)}
	}
	p.Name = name
	c = rest

	if tok, ok := c.Peek(); ok && tok.Kind == token.Terminal && tok.Term == keyword.Assign {
		_, c2, _ := c.Pop()
		def, rest2, err := parseLevel(c2, "", levelAssignment)
		if err != nil {
			err.Fatal = true
			return p, rest2, err
		}
		p.Eq = &tok
		p.Default = def
		c = rest2
	}
	return p, c, nil
}

func parseClassMemberList(c token.Cursor) ([]ast.ClassMember, token.Cursor, *Error) {
	var members []ast.ClassMember
	for !c.IsEnded() {
		m, rest, err := parseClassMember(c)
		if err != nil {
			return members, rest, err
		}
		members = append(members, m)
		c = rest
	}
	return members, c, nil
}

func parseClassMember(c token.Cursor) (ast.ClassMember, token.Cursor, *Error) {
	var static *token.Token
	if tok, ok := c.Peek(); ok && tok.Kind == token.Terminal && tok.Term == keyword.Static {
		_, c2, _ := c.Pop()
		static = &tok
		c = c2
	}

	if tok, ok := c.Peek(); ok && tok.Kind == token.Terminal && tok.Term == keyword.Function {
		fn, rest, err := parseFunctionLiteral(nil, c, "")
		if err != nil {
			return nil, rest, err
		}
		return &ast.ClassMethodMember{Static: static, Fn: fn.(*ast.FunctionLiteral)}, rest, nil
	}

	var field ast.ClassFieldMember
	field.Static = static

	if tok, ok := c.Peek(); ok && tok.Kind == token.Terminal && tok.Term == keyword.OpenSquare {
		key, closer, rest, err := opens(c, "", taxa.TableField.In(), func(c token.Cursor) (ast.Expr, token.Cursor, *Error) {
			return parseExpr(c, "")
		})
		if err != nil {
			return nil, rest, err
		}
		field.Open, field.Close = &tok, &closer
		field.Key = key
		c = rest
	} else {
		key, rest, err := parseLevel(c, "", levelProperty)
		if err != nil {
			return nil, rest, &Error{Kind: ExpectedClassMember, Range: peekRange(c)}
		}
		field.Key = key
		c = rest
	}

	eq, rest, err := expectTerm(c, "", keyword.Assign)
	if err != nil {
		err.Fatal = true
		return nil, rest, err
	}
	val, rest2, err := parseLevel(rest, "", levelAssignment)
	if err != nil {
		err.Fatal = true
		return nil, rest2, err
	}
	field.Eq = eq
	field.Value = val

	if semi, rest3, ok := peekSemi(rest2); ok {
		_ = semi
		rest2 = rest3
	}
	return &field, rest2, nil
}

func peekSemi(c token.Cursor) (token.Token, token.Cursor, bool) {
	tok, ok := c.Peek()
	if !ok || tok.Kind != token.Terminal || tok.Term != keyword.Semi {
		return token.Token{}, c, false
	}
	_, c2, _ := c.Pop()
	return tok, c2, true
}
