package keyword

// property is a bitset describing what a Terminal is and where it is valid,
// in the style of the teacher's dialect-gated keyword property table.
type property uint8

const (
	word property = 1 << iota
	punct
	classic  // valid under dialect.Squirrel3
	extended // valid under dialect.SquirrelRespawn
)

const both = classic | extended

// None is the zero Terminal: "not a terminal".
const None Terminal = 0

// Symbols, longest-first so a greedy scan finds the longest match. Three-
// character symbols first, then two-character, then one-character, per
// spec section 6's normative terminal table.
const (
	Spaceship Terminal = iota + 1 // <=>
	Ellipsis                      // ...

	Ne         // !=
	EqEq       // ==
	OrOr       // ||
	AndAnd     // &&
	Ge         // >=
	Le         // <=
	PlusEq     // +=
	MinusEq    // -=
	SlashEq    // /=
	StarEq     // *=
	PercentEq  // %=
	PlusPlus   // ++
	MinusMinus // --
	ColonColon // ::
	LessSlash  // </
	SlashGreater

	Not      // !
	Greater  // >
	Less     // <
	Plus     // +
	Minus    // -
	Slash    // /
	Star     // *
	Percent  // %
	Assign   // =
	Amp      // &
	Pipe     // |
	Caret    // ^
	Tilde    // ~
	OpenBrace
	CloseBrace
	OpenSquare
	CloseSquare
	OpenParen
	CloseParen
	Dot
	Comma
	Colon
	Question
	Semi

	// Identifier-keywords valid under both dialects.
	Break
	Case
	Catch
	Class
	Clone
	Continue
	Const
	Default
	Delegate
	Delete
	Do
	Else
	Enum
	Extends
	For
	Foreach
	Function
	If
	In
	Local
	Return
	Switch
	Throw
	Try
	Typeof
	While
	Yield
	Constructor
	Instanceof
	Static

	// Identifier-keywords valid only under dialect.SquirrelRespawn.
	Delaythread
	Expect
	Functionref
	Global
	GlobalizeAllFunctions
	Ornull
	Struct
	Thread
	Typedef
	Untyped
	Var
	Waitthread
	Wait
	Waitthreadsolo

	numTerminals
)

var properties = [numTerminals]property{
	Spaceship: punct,
	Ellipsis:  punct,

	Ne: punct, EqEq: punct, OrOr: punct, AndAnd: punct,
	Ge: punct, Le: punct, PlusEq: punct, MinusEq: punct,
	SlashEq: punct, StarEq: punct, PercentEq: punct,
	PlusPlus: punct, MinusMinus: punct, ColonColon: punct,
	LessSlash: punct, SlashGreater: punct,

	Not: punct, Greater: punct, Less: punct, Plus: punct, Minus: punct,
	Slash: punct, Star: punct, Percent: punct, Assign: punct, Amp: punct,
	Pipe: punct, Caret: punct, Tilde: punct, OpenBrace: punct, CloseBrace: punct,
	OpenSquare: punct, CloseSquare: punct, OpenParen: punct, CloseParen: punct,
	Dot: punct, Comma: punct, Colon: punct, Question: punct, Semi: punct,

	Break: word | both, Case: word | both, Catch: word | both, Class: word | both,
	Clone: word | both, Continue: word | both, Const: word | both, Default: word | both,
	Delegate: word | both, Delete: word | both, Do: word | both, Else: word | both,
	Enum: word | both, Extends: word | both, For: word | both, Foreach: word | both,
	Function: word | both, If: word | both, In: word | both, Local: word | both,
	Return: word | both, Switch: word | both, Throw: word | both, Try: word | both,
	Typeof: word | both, While: word | both, Yield: word | both, Constructor: word | both,
	Instanceof: word | both, Static: word | both,

	Delaythread: word | extended, Expect: word | extended, Functionref: word | extended,
	Global: word | extended, GlobalizeAllFunctions: word | extended, Ornull: word | extended,
	Struct: word | extended, Thread: word | extended, Typedef: word | extended,
	Untyped: word | extended, Var: word | extended, Waitthread: word | extended,
	Wait: word | extended, Waitthreadsolo: word | extended,
}

func (t Terminal) properties() property {
	if int(t) < len(properties) {
		return properties[t]
	}
	return 0
}

var spellings = [numTerminals]string{
	Spaceship: "<=>", Ellipsis: "...",

	Ne: "!=", EqEq: "==", OrOr: "||", AndAnd: "&&", Ge: ">=", Le: "<=",
	PlusEq: "+=", MinusEq: "-=", SlashEq: "/=", StarEq: "*=", PercentEq: "%=",
	PlusPlus: "++", MinusMinus: "--", ColonColon: "::", LessSlash: "</", SlashGreater: "/>",

	Not: "!", Greater: ">", Less: "<", Plus: "+", Minus: "-", Slash: "/",
	Star: "*", Percent: "%", Assign: "=", Amp: "&", Pipe: "|", Caret: "^",
	Tilde: "~", OpenBrace: "{", CloseBrace: "}", OpenSquare: "[", CloseSquare: "]",
	OpenParen: "(", CloseParen: ")", Dot: ".", Comma: ",", Colon: ":",
	Question: "?", Semi: ";",

	Break: "break", Case: "case", Catch: "catch", Class: "class", Clone: "clone",
	Continue: "continue", Const: "const", Default: "default", Delegate: "delegate",
	Delete: "delete", Do: "do", Else: "else", Enum: "enum", Extends: "extends",
	For: "for", Foreach: "foreach", Function: "function", If: "if", In: "in",
	Local: "local", Return: "return", Switch: "switch", Throw: "throw", Try: "try",
	Typeof: "typeof", While: "while", Yield: "yield", Constructor: "constructor",
	Instanceof: "instanceof", Static: "static",

	Delaythread: "delaythread", Expect: "expect", Functionref: "functionref",
	Global: "global", GlobalizeAllFunctions: "globalize_all_functions", Ornull: "ornull",
	Struct: "struct", Thread: "thread", Typedef: "typedef", Untyped: "untyped",
	Var: "var", Waitthread: "waitthread", Wait: "wait", Waitthreadsolo: "waitthreadsolo",
}

// OpenToClose maps an opening delimiter terminal to its closer. Used by the
// lexer's delimiter-pairing stack.
var OpenToClose = map[Terminal]Terminal{
	OpenBrace:  CloseBrace,
	OpenSquare: CloseSquare,
	OpenParen:  CloseParen,
	LessSlash:  SlashGreater,
}

// IsOpenDelimiter reports whether t opens a matched delimiter pair.
func (t Terminal) IsOpenDelimiter() bool {
	_, ok := OpenToClose[t]
	return ok
}

// IsCloseDelimiter reports whether t closes a matched delimiter pair.
func (t Terminal) IsCloseDelimiter() bool {
	switch t {
	case CloseBrace, CloseSquare, CloseParen, SlashGreater:
		return true
	default:
		return false
	}
}
