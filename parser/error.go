package parser

import (
	"fmt"

	"github.com/nutlang/sqfront/internal/taxa"
	"github.com/nutlang/sqfront/report"
	"github.com/nutlang/sqfront/token"
	"github.com/nutlang/sqfront/token/keyword"
)

// ErrorKind enumerates the reasons a production can fail to parse.
type ErrorKind uint8

const (
	ExpectedTerminal ErrorKind = iota
	ExpectedCompound2
	ExpectedCompound3
	ExpectedIdentifier
	ExpectedLiteral
	ExpectedExpression
	ExpectedOperator
	ExpectedPrefixOp
	ExpectedPostfixOp
	ExpectedBinaryOp
	ExpectedType
	ExpectedTypeModifier
	ExpectedTableSlot
	ExpectedClassMember
	ExpectedStatement
	ExpectedEndOfStatement
	ExpectedGlobalDefinition
	IllegalLineBreak
	Precedence
	ExpectedSlot
	ExpectedStringLiteral
)

func (k ErrorKind) String() string {
	switch k {
	case ExpectedTerminal:
		return "expected terminal"
	case ExpectedCompound2:
		return "expected compound operator"
	case ExpectedCompound3:
		return "expected compound operator"
	case ExpectedIdentifier:
		return "expected identifier"
	case ExpectedLiteral:
		return "expected literal"
	case ExpectedExpression:
		return "expected expression"
	case ExpectedOperator:
		return "expected operator"
	case ExpectedPrefixOp:
		return "expected prefix operator"
	case ExpectedPostfixOp:
		return "expected postfix operator"
	case ExpectedBinaryOp:
		return "expected binary operator"
	case ExpectedType:
		return "expected type"
	case ExpectedTypeModifier:
		return "expected type modifier"
	case ExpectedTableSlot:
		return "expected table slot"
	case ExpectedClassMember:
		return "expected class member"
	case ExpectedStatement:
		return "expected statement"
	case ExpectedEndOfStatement:
		return "expected end of statement"
	case ExpectedGlobalDefinition:
		return "expected a definition after 'global'"
	case IllegalLineBreak:
		return "illegal line break"
	case Precedence:
		return "operator does not bind here"
	case ExpectedSlot:
		return "expected a list element"
	case ExpectedStringLiteral:
		return "expected string literal"
	default:
		return "parse error"
	}
}

// Context names the enclosing construct an error occurred inside, so the
// message can say "in this if-statement's condition" instead of just
// pointing at a lone token. Set at most once per error, by the innermost
// opens() call that wraps the failure.
type Context struct {
	Range token.Range
	Place taxa.Place
}

// Error is a single parse failure. Fatal distinguishes a committed failure
// (parsing the whole tree aborts) from a tentative one (the caller may
// still try a different production).
type Error struct {
	File  string
	Kind  ErrorKind
	Range token.Range
	Fatal bool

	Term1, Term2, Term3 keyword.Terminal
	Context             *Context
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Context != nil {
		return fmt.Sprintf("%s (%s)", e.Kind, e.Context.Place)
	}
	return e.Kind.String()
}

// Diagnose implements report.Diagnose.
func (e *Error) Diagnose() *report.Diagnostic {
	d := &report.Diagnostic{
		Level:   report.Error,
		Tag:     e.tag(),
		Message: e.message(),
		Annotations: []report.Annotation{{
			Span:    report.Span{File: e.File, Range: e.Range},
			Primary: true,
		}},
	}
	if e.Context != nil {
		d.Annotations = append(d.Annotations, report.Annotation{
			Span:    report.Span{File: e.File, Range: e.Context.Range},
			Message: "while parsing " + e.Context.Place.String(),
		})
	}
	return d
}

func (e *Error) tag() string {
	switch e.Kind {
	case ExpectedTerminal, ExpectedCompound2, ExpectedCompound3:
		return "expected-token"
	case ExpectedIdentifier:
		return "expected-identifier"
	case ExpectedLiteral, ExpectedStringLiteral:
		return "expected-literal"
	case ExpectedExpression:
		return "expected-expression"
	case ExpectedOperator, ExpectedPrefixOp, ExpectedPostfixOp, ExpectedBinaryOp:
		return "expected-operator"
	case ExpectedType, ExpectedTypeModifier:
		return "expected-type"
	case ExpectedTableSlot, ExpectedSlot:
		return "expected-list-element"
	case ExpectedClassMember:
		return "expected-class-member"
	case ExpectedStatement:
		return "expected-statement"
	case ExpectedEndOfStatement:
		return "expected-end-of-statement"
	case ExpectedGlobalDefinition:
		return "expected-global-definition"
	case IllegalLineBreak:
		return "illegal-line-break"
	case Precedence:
		return "precedence"
	default:
		return "parse-error"
	}
}

func (e *Error) message() string {
	switch e.Kind {
	case ExpectedTerminal:
		return fmt.Sprintf("expected %q", e.Term1)
	case ExpectedCompound2:
		return fmt.Sprintf("expected %q%q", e.Term1, e.Term2)
	case ExpectedCompound3:
		return fmt.Sprintf("expected %q%q%q", e.Term1, e.Term2, e.Term3)
	default:
		return e.Kind.String()
	}
}
