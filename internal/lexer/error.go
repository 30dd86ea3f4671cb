package lexer

import (
	"fmt"

	"github.com/nutlang/sqfront/report"
	"github.com/nutlang/sqfront/token"
	"github.com/nutlang/sqfront/token/keyword"
)

// ErrorKind enumerates the ways scanning can fail. The first four are
// fatal the way a parse error never is: scanning stops at the offending
// byte and the stream built so far (plus this one diagnostic) is
// returned. UnmatchedOpener is different -- it's only discovered once
// the whole source has been scanned and some opener never found its
// closer, so it's reported against an otherwise-complete stream.
type ErrorKind uint8

const (
	EndOfInputInsideString ErrorKind = iota
	EndOfLineInsideString
	EndOfInputInsideComment
	InvalidInput
	UnmatchedOpener
)

func (k ErrorKind) String() string {
	switch k {
	case EndOfInputInsideString:
		return "end of input inside string literal"
	case EndOfLineInsideString:
		return "end of line inside string literal"
	case EndOfInputInsideComment:
		return "end of input inside block comment"
	case InvalidInput:
		return "invalid input"
	case UnmatchedOpener:
		return "unmatched delimiter"
	default:
		return "lexer error"
	}
}

func (k ErrorKind) tag() string {
	switch k {
	case EndOfInputInsideString:
		return "eof-in-string"
	case EndOfLineInsideString:
		return "eol-in-string"
	case EndOfInputInsideComment:
		return "eof-in-comment"
	case UnmatchedOpener:
		return "unmatched-opener"
	default:
		return "invalid-input"
	}
}

// Error is a lexer error, anchored either at a single byte offset (the
// fatal kinds) or at an opening delimiter's range (UnmatchedOpener).
type Error struct {
	File   string
	Offset int
	Kind   ErrorKind

	// Populated only for UnmatchedOpener.
	OpenRange  token.Range
	OpenTerm   keyword.Terminal
	CloseTerm  keyword.Terminal
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Kind == UnmatchedOpener {
		return fmt.Sprintf("%s %q never closed by %q", e.Kind, e.OpenTerm, e.CloseTerm)
	}
	return fmt.Sprintf("%s at byte %d", e.Kind, e.Offset)
}

// Diagnose implements report.Diagnose.
func (e *Error) Diagnose() *report.Diagnostic {
	if e.Kind == UnmatchedOpener {
		return &report.Diagnostic{
			Level:   report.Error,
			Tag:     e.Kind.tag(),
			Message: fmt.Sprintf("expected a matching %q for this %q", e.CloseTerm, e.OpenTerm),
			Annotations: []report.Annotation{{
				Span:    report.Span{File: e.File, Range: e.OpenRange},
				Primary: true,
			}},
		}
	}
	return &report.Diagnostic{
		Level:   report.Error,
		Tag:     e.Kind.tag(),
		Message: e.Kind.String(),
		Annotations: []report.Annotation{{
			Span:    report.Span{File: e.File, Range: token.Range{Start: e.Offset, End: e.Offset + 1}},
			Primary: true,
		}},
	}
}
