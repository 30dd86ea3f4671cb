package ast

import "github.com/nutlang/sqfront/token"

// LocalType is the bare `local` keyword used as a type.
type LocalType struct {
	Keyword token.Token
}

func (*LocalType) isType()              {}
func (t *LocalType) Range() token.Range { return t.Keyword.Range }

// VarType is the bare `var` keyword used as a type.
type VarType struct {
	Keyword token.Token
}

func (*VarType) isType()              {}
func (t *VarType) Range() token.Range { return t.Keyword.Range }

// PlainType is a type named by a plain identifier.
type PlainType struct {
	Name token.Token
}

func (*PlainType) isType()              {}
func (t *PlainType) Range() token.Range { return t.Name.Range }

// StructField is one field of a struct type or declaration: an optional
// type, a name, and an optional default value.
type StructField struct {
	FieldType Type // nil if untyped
	Name      token.Token
	Eq        *token.Token
	Default   Expr // nil if Eq is nil
}

func (f StructField) Range() token.Range {
	r := f.Name.Range
	if f.FieldType != nil {
		r = join(f.FieldType.Range(), r)
	}
	if f.Default != nil {
		r = join(r, f.Default.Range())
	}
	return r
}

// StructType is `struct { field, ... }` used as a type.
type StructType struct {
	Keyword token.Token
	Open    token.Token
	Fields  ListTrailing0[StructField]
	Close   token.Token
}

func (*StructType) isType()              {}
func (t *StructType) Range() token.Range { return join(t.Keyword.Range, t.Close.Range) }

// ArrayType is Base `[` Len `]`: a fixed-size array of Base.
type ArrayType struct {
	Base  Type
	Open  token.Token
	Len   Expr
	Close token.Token
}

func (*ArrayType) isType()              {}
func (t *ArrayType) Range() token.Range { return join(t.Base.Range(), t.Close.Range) }

// GenericType is Base `<` Args `>`: Base parameterized by Args.
type GenericType struct {
	Base  Type
	Open  token.Token
	Args  ListTrailing1[Type]
	Close token.Token
}

func (*GenericType) isType()              {}
func (t *GenericType) Range() token.Range { return join(t.Base.Range(), t.Close.Range) }

// FunctionRefType is a function-reference type: `functionref(T, ...)` when
// Return is nil (a void-returning reference used as a base type), or
// `Return functionref(T, ...)` when used as a postfix modifier on another
// type.
type FunctionRefType struct {
	Return  Type // nil for a bare (void-returning) functionref
	Keyword token.Token
	Open    token.Token
	Params  ListTrailing0[Type]
	Close   token.Token
}

func (*FunctionRefType) isType() {}
func (t *FunctionRefType) Range() token.Range {
	start := t.Keyword.Range
	if t.Return != nil {
		start = t.Return.Range()
	}
	return join(start, t.Close.Range)
}

// ReferenceType is Base `&`: a reference to Base.
type ReferenceType struct {
	Base Type
	Amp  token.Token
}

func (*ReferenceType) isType()              {}
func (t *ReferenceType) Range() token.Range { return join(t.Base.Range(), t.Amp.Range) }

// NullableType is Base `ornull`: Base or null.
type NullableType struct {
	Base    Type
	Keyword token.Token
}

func (*NullableType) isType()              {}
func (t *NullableType) Range() token.Range { return join(t.Base.Range(), t.Keyword.Range) }
