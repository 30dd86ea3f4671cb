package parser

import (
	"github.com/nutlang/sqfront/ast"
	"github.com/nutlang/sqfront/internal/taxa"
	"github.com/nutlang/sqfront/token"
	"github.com/nutlang/sqfront/token/keyword"
)

// parseType parses a base type followed by zero or more postfix modifiers,
// left-associatively: array ([expr]), generic (<type-list>), functionref
// (params) as a return-type modifier, reference (&), and nullable
// (ornull). A tentative error here means "this isn't the start of a type
// at all" -- callers use it for the typed-vs-untyped disambiguation.
func parseType(c token.Cursor, file string) (ast.Type, token.Cursor, *Error) {
	base, c, err := parseBaseType(c, file)
	if err != nil {
		return nil, c, err
	}
	return parseTypeModifiers(base, c, file)
}

func parseBaseType(c token.Cursor, file string) (ast.Type, token.Cursor, *Error) {
	tok, ok := c.Peek()
	if !ok {
		return nil, c, &Error{File: file, Kind: ExpectedType, Range: eofRange(c)}
	}

	switch {
	case tok.Kind == token.Terminal && tok.Term == keyword.Local:
		_, c2, _ := c.Pop()
		return &ast.LocalType{Keyword: tok}, c2, nil

	case tok.Kind == token.Terminal && tok.Term == keyword.Var:
		_, c2, _ := c.Pop()
		return &ast.VarType{Keyword: tok}, c2, nil

	case tok.Kind == token.Terminal && tok.Term == keyword.Struct:
		return parseStructType(c, file)

	case tok.Kind == token.Terminal && tok.Term == keyword.Functionref:
		return parseFunctionRefType(nil, c, file)

	case tok.Kind == token.Identifier:
		_, c2, _ := c.Pop()
		return &ast.PlainType{Name: tok}, c2, nil
	}

	return nil, c, &Error{File: file, Kind: ExpectedType, Range: tok.Range}
}

func parseStructType(c token.Cursor, file string) (ast.Type, token.Cursor, *Error) {
	kw, c2, err := expectTerm(c, file, keyword.Struct)
	if err != nil {
		return nil, c, err
	}
	open, _ := c2.Peek()
	fields, closer, rest, err := opens(c2, file, taxa.StructDeclaration.In(), parseStructFieldList)
	if err != nil {
		return nil, rest, err
	}
	return &ast.StructType{Keyword: kw, Open: open, Fields: fields, Close: closer}, rest, nil
}

func parseFunctionRefType(ret ast.Type, c token.Cursor, file string) (ast.Type, token.Cursor, *Error) {
	kw, c2, err := expectTerm(c, file, keyword.Functionref)
	if err != nil {
		return nil, c, err
	}
	open, ok := c2.Peek()
	if !ok || open.Kind != token.Terminal || open.Term != keyword.OpenParen {
		return nil, c2, &Error{File: file, Kind: ExpectedTerminal, Term1: keyword.OpenParen, Range: peekRange(c2), Fatal: true}
	}
	params, closer, rest, err := opens(c2, file, taxa.FunctionRefType.In(), parseTypeList)
	if err != nil {
		return nil, rest, err
	}
	return &ast.FunctionRefType{Return: ret, Keyword: kw, Open: open, Params: params, Close: closer}, rest, nil
}

// parseTypeModifiers greedily applies postfix type modifiers to base.
func parseTypeModifiers(base ast.Type, c token.Cursor, file string) (ast.Type, token.Cursor, *Error) {
	for {
		tok, ok := c.Peek()
		if !ok || tok.Kind != token.Terminal {
			return base, c, nil
		}

		switch tok.Term {
		case keyword.OpenSquare:
			lenExpr, closer, rest, err := opens(c, file, taxa.ArrayType.In(), func(c token.Cursor) (ast.Expr, token.Cursor, *Error) {
				return parseExpr(c, file)
			})
			if err != nil {
				return nil, rest, err
			}
			open, _ := c.Peek()
			base = &ast.ArrayType{Base: base, Open: open, Len: lenExpr, Close: closer}
			c = rest

		case keyword.Less:
			open := tok
			_, c2, _ := c.Pop()
			args, closer, rest, err := parseGenericArgs(c2, file)
			if err != nil {
				return nil, rest, err
			}
			base = &ast.GenericType{Base: base, Open: open, Args: args, Close: closer}
			c = rest

		case keyword.Functionref:
			t, rest, err := parseFunctionRefType(base, c, file)
			if err != nil {
				return nil, rest, err
			}
			base = t
			c = rest

		case keyword.Amp:
			_, c2, _ := c.Pop()
			base = &ast.ReferenceType{Base: base, Amp: tok}
			c = c2

		case keyword.Ornull:
			_, c2, _ := c.Pop()
			base = &ast.NullableType{Base: base, Keyword: tok}
			c = c2

		default:
			return base, c, nil
		}
	}
}

// parseGenericArgs parses the comma-separated argument list of a generic
// type, closed by a single '>' token, whatever follows it: in
// "table<vec<int>>" the two adjacent '>' tokens close the two generics one
// each (see isClosingGreater). c is positioned just after the opening '<'.
func parseGenericArgs(c token.Cursor, file string) (ast.ListTrailing1[ast.Type], token.Token, token.Cursor, *Error) {
	var list ast.ListTrailing1[ast.Type]

	first, rest, err := parseType(c, file)
	if err != nil {
		err.Fatal = true
		return list, token.Token{}, rest, err
	}
	list.Items = append(list.Items, first)
	c = rest

	for {
		tok, ok := c.Peek()
		if !ok {
			return list, token.Token{}, c, &Error{File: file, Kind: ExpectedTerminal, Term1: keyword.Greater, Range: eofRange(c), Fatal: true}
		}
		if tok.Kind == token.Terminal && tok.Term == keyword.Comma {
			_, c2, _ := c.Pop()
			nxt, ok := c2.Peek()
			if ok && nxt.Kind == token.Terminal && isClosingGreater(c2) {
				list.Trailing = &tok
				closer, rest2, err := consumeSingleGreater(c2, file)
				return list, closer, rest2, err
			}
			item, rest2, err := parseType(c2, file)
			if err != nil {
				err.Fatal = true
				return list, token.Token{}, rest2, err
			}
			list.Items = append(list.Items, item)
			list.Seps = append(list.Seps, tok)
			c = rest2
			continue
		}
		if isClosingGreater(c) {
			closer, rest2, err := consumeSingleGreater(c, file)
			return list, closer, rest2, err
		}
		return list, token.Token{}, c, &Error{File: file, Kind: ExpectedTerminal, Term1: keyword.Greater, Range: tok.Range, Fatal: true}
	}
}

// isClosingGreater reports whether the front of c is a '>' token usable as
// a generic's closer: any '>' works, since consumeSingleGreater only ever
// eats exactly one token regardless of what follows it, naturally
// disambiguating "table<vec<int>>" into two separate closes.
func isClosingGreater(c token.Cursor) bool {
	tok, ok := c.Peek()
	return ok && tok.Kind == token.Terminal && tok.Term == keyword.Greater
}

func consumeSingleGreater(c token.Cursor, file string) (token.Token, token.Cursor, *Error) {
	tok, c2, ok := c.Pop()
	if !ok || tok.Kind != token.Terminal || tok.Term != keyword.Greater {
		return token.Token{}, c, &Error{File: file, Kind: ExpectedTerminal, Term1: keyword.Greater, Range: peekRange(c), Fatal: true}
	}
	return tok, c2, nil
}

// parseTypeList parses a comma-separated, possibly-empty list of bare
// types (used for functionref parameter lists, where names are dropped).
func parseTypeList(c token.Cursor) (ast.ListTrailing0[ast.Type], token.Cursor, *Error) {
	var list ast.ListTrailing0[ast.Type]
	if c.IsEnded() {
		return list, c, nil
	}
	for {
		if c.IsEnded() {
			return list, c, nil
		}
		item, rest, err := parseType(c, "")
		if err != nil {
			return list, rest, err
		}
		list.Items = append(list.Items, item)
		c = rest
		if c.IsEnded() {
			return list, c, nil
		}
		tok, rest2, ok := c.Pop()
		if !ok || tok.Kind != token.Terminal || tok.Term != keyword.Comma {
			return list, c, &Error{Kind: ExpectedTerminal, Term1: keyword.Comma, Range: peekRange(c), Fatal: true}
		}
		list.Seps = append(list.Seps, tok)
		c = rest2
		if c.IsEnded() {
			list.Trailing = &tok
			return list, c, nil
		}
	}
}

func parseStructFieldList(c token.Cursor) (ast.ListTrailing0[ast.StructField], token.Cursor, *Error) {
	var list ast.ListTrailing0[ast.StructField]
	for {
		if c.IsEnded() {
			return list, c, nil
		}
		field, rest, err := parseStructField(c)
		if err != nil {
			return list, rest, err
		}
		list.Items = append(list.Items, field)
		c = rest
		if c.IsEnded() {
			return list, c, nil
		}
		tok, rest2, ok := c.Pop()
		if !ok || tok.Kind != token.Terminal || tok.Term != keyword.Comma {
			return list, c, &Error{Kind: ExpectedTerminal, Term1: keyword.Comma, Range: peekRange(c), Fatal: true}
		}
		list.Seps = append(list.Seps, tok)
		c = rest2
		if c.IsEnded() {
			list.Trailing = &tok
			return list, c, nil
		}
	}
}

func parseStructField(c token.Cursor) (ast.StructField, token.Cursor, *Error) {
	var field ast.StructField

	// A field is an optional type followed by a name: try the typed
	// reading first, and only keep it if a name actually follows.
	if typ, rest, typErr := parseType(c, ""); typErr == nil {
		if _, ok := rest.Peek(); ok {
			if n, ok := rest.Peek(); ok && n.Kind == token.Identifier {
				field.FieldType = typ
				c = rest
			}
		}
	}

	name, rest, ok := c.Pop()
	if !ok || name.Kind != token.Identifier {
		return field, c, &Error{Kind: ExpectedIdentifier, Range: peekRange(c)}
	}
	field.Name = name
	c = rest

	if tok, ok := c.Peek(); ok && tok.Kind == token.Terminal && tok.Term == keyword.Assign {
		_, c2, _ := c.Pop()
		def, rest2, err := parseLevel(c2, "", levelAssignment)
		if err != nil {
			err.Fatal = true
			return field, rest2, err
		}
		field.Eq = &tok
		field.Default = def
		c = rest2
	}
	return field, c, nil
}
