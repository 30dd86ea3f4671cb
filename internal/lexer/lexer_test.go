package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutlang/sqfront/dialect"
	"github.com/nutlang/sqfront/internal/lexer"
	"github.com/nutlang/sqfront/token"
	"github.com/nutlang/sqfront/token/keyword"
)

func lex(t *testing.T, src string, d dialect.Dialect) *token.Stream {
	t.Helper()
	s, rpt := lexer.Lex(src, d, lexer.Options{File: "t.nut"})
	require.Equal(t, 0, rpt.Len(), "unexpected diagnostics: %v", rpt.Diagnostics())
	return s
}

func kinds(s *token.Stream) []token.Kind {
	out := make([]token.Kind, len(s.Items))
	for i, it := range s.Items {
		out[i] = it.Token.Kind
	}
	return out
}

func TestLexIdentifiersAndKeywords(t *testing.T) {
	t.Parallel()

	s := lex(t, "local x = foo", dialect.Squirrel3)
	require.Len(t, s.Items, 4)
	assert.Equal(t, keyword.Local, s.Items[0].Token.Term)
	assert.Equal(t, token.Identifier, s.Items[1].Token.Kind)
	assert.Equal(t, "x", s.Items[1].Token.Text)
	assert.Equal(t, keyword.Assign, s.Items[2].Token.Term)
	assert.Equal(t, token.Identifier, s.Items[3].Token.Kind)
}

func TestDialectGatingMakesKeywordAnIdentifier(t *testing.T) {
	t.Parallel()

	s := lex(t, "struct", dialect.Squirrel3)
	require.Len(t, s.Items, 1)
	assert.Equal(t, token.Identifier, s.Items[0].Token.Kind)

	s = lex(t, "struct", dialect.SquirrelRespawn)
	require.Len(t, s.Items, 1)
	assert.Equal(t, token.Terminal, s.Items[0].Token.Kind)
	assert.Equal(t, keyword.Struct, s.Items[0].Token.Term)
}

func TestLexIntegerBases(t *testing.T) {
	t.Parallel()

	s := lex(t, "10 010 0x10", dialect.Squirrel3)
	require.Len(t, s.Items, 3)
	assert.Equal(t, int64(10), s.Items[0].Token.Literal.Int)
	assert.Equal(t, token.Decimal, s.Items[0].Token.Literal.Base)
	assert.Equal(t, int64(8), s.Items[1].Token.Literal.Int)
	assert.Equal(t, token.Octal, s.Items[1].Token.Literal.Base)
	assert.Equal(t, int64(16), s.Items[2].Token.Literal.Int)
	assert.Equal(t, token.Hexadecimal, s.Items[2].Token.Literal.Base)
}

func TestLexFloatQuirkConsumesTrailingDigitsAndDots(t *testing.T) {
	t.Parallel()

	s := lex(t, "1.2.3.4", dialect.Squirrel3)
	require.Len(t, s.Items, 1)
	tok := s.Items[0].Token
	assert.Equal(t, token.Float, tok.Literal.Kind)
	assert.InDelta(t, 1.2, tok.Literal.Float, 1e-9)
	assert.Equal(t, "1.2.3.4", tok.Text)
}

func TestLexOctalRejectsNonOctalDigit(t *testing.T) {
	t.Parallel()

	_, rpt := lexer.Lex("08", dialect.Squirrel3, lexer.Options{})
	require.Equal(t, 1, rpt.Len())
}

func TestLexStrings(t *testing.T) {
	t.Parallel()

	s := lex(t, `"a\"b" @"raw\n" $"asset"`, dialect.Squirrel3)
	require.Len(t, s.Items, 3)
	assert.Equal(t, token.StringPlain, s.Items[0].Token.Literal.StringKind)
	assert.Equal(t, token.StringVerbatim, s.Items[1].Token.Literal.StringKind)
	assert.Equal(t, token.StringAsset, s.Items[2].Token.Literal.StringKind)
}

func TestLexVerbatimStringWithDoubledDelimiter(t *testing.T) {
	t.Parallel()

	s := lex(t, `@"this verbatim string includes a "" delimiter"`, dialect.Squirrel3)
	require.Len(t, s.Items, 1)
	assert.Equal(t, token.StringVerbatim, s.Items[0].Token.Literal.StringKind)
	assert.Equal(t, `@"this verbatim string includes a "" delimiter"`, s.Items[0].Token.Text)
}

func TestLexVerbatimStringSpansNewlines(t *testing.T) {
	t.Parallel()

	s := lex(t, "@\"this verbatim string includes\na line break\"", dialect.Squirrel3)
	require.Len(t, s.Items, 1)
	assert.Equal(t, token.StringVerbatim, s.Items[0].Token.Literal.StringKind)
	assert.Equal(t, "@\"this verbatim string includes\na line break\"", s.Items[0].Token.Text)
}

func TestLexUnterminatedStringIsFatal(t *testing.T) {
	t.Parallel()

	_, rpt := lexer.Lex(`"unterminated`, dialect.Squirrel3, lexer.Options{})
	require.Equal(t, 1, rpt.Len())
	assert.Equal(t, "eof-in-string", rpt.Diagnostics()[0].Tag)
}

func TestLexNewlineInStringIsFatal(t *testing.T) {
	t.Parallel()

	_, rpt := lexer.Lex("\"abc\ndef\"", dialect.Squirrel3, lexer.Options{})
	require.Equal(t, 1, rpt.Len())
	assert.Equal(t, "eol-in-string", rpt.Diagnostics()[0].Tag)
}

func TestLexComments(t *testing.T) {
	t.Parallel()

	s := lex(t, "// line\nfoo /* block */ # script\nbar", dialect.Squirrel3)
	require.Len(t, s.Items, 2)

	foo := s.Items[0].Token
	require.Len(t, foo.Leading, 1)
	assert.Equal(t, " line", foo.Leading[0].Comments[0].Text)
	require.NotNil(t, foo.Trailing)
	require.Len(t, foo.Trailing.Comments, 2)
	assert.Equal(t, " block ", foo.Trailing.Comments[0].Text)
	assert.Equal(t, " script", foo.Trailing.Comments[1].Text)

	bar := s.Items[1].Token
	assert.Empty(t, bar.Leading)
	assert.Empty(t, bar.Attached)
}

func TestLexUnterminatedBlockCommentIsFatalUnderStrictPolicy(t *testing.T) {
	t.Parallel()

	_, rpt := lexer.Lex("/* oops", dialect.Squirrel3, lexer.Options{Comments: lexer.Strict})
	require.Equal(t, 1, rpt.Len())
	assert.Equal(t, "eof-in-comment", rpt.Diagnostics()[0].Tag)
}

func TestLexUnterminatedBlockCommentIsLenientByDefault(t *testing.T) {
	t.Parallel()

	s := lex(t, "/* nice", dialect.Squirrel3)
	require.Len(t, s.Items, 1)
	require.Len(t, s.Items[0].Token.Leading, 1)
	require.Len(t, s.Items[0].Token.Leading[0].Comments, 1)
	assert.Equal(t, " nice", s.Items[0].Token.Leading[0].Comments[0].Text)
	assert.Equal(t, token.Empty, s.Items[0].Token.Kind)
}

func TestLexDelimiterPairing(t *testing.T) {
	t.Parallel()

	s := lex(t, "{ [ ( ) ] }", dialect.Squirrel3)
	require.Len(t, s.Items, 6)
	assert.Equal(t, 5, s.Items[0].Close)
	assert.Equal(t, 4, s.Items[1].Close)
	assert.Equal(t, 3, s.Items[2].Close)
}

func TestLexInvalidByteIsFatal(t *testing.T) {
	t.Parallel()

	_, rpt := lexer.Lex("foo `", dialect.Squirrel3, lexer.Options{})
	require.Equal(t, 1, rpt.Len())
	assert.Equal(t, "invalid-input", rpt.Diagnostics()[0].Tag)
}

func TestLexUnmatchedOpenerIsReportedAtEOF(t *testing.T) {
	t.Parallel()

	s, rpt := lexer.Lex("{ [ 1 ]", dialect.Squirrel3, lexer.Options{File: "t.nut"})
	require.Len(t, s.Items, 4, "every token is still returned")
	require.Equal(t, 1, rpt.Len())
	assert.Equal(t, "unmatched-opener", rpt.Diagnostics()[0].Tag)
	assert.Equal(t, -1, s.Items[0].Close, "the unmatched '{' keeps its sentinel Close")
	assert.Equal(t, 3, s.Items[1].Close, "the matched '[' ']' pair is still paired")
}

func TestLexTrailingTriviaProducesEmptyToken(t *testing.T) {
	t.Parallel()

	s := lex(t, "foo\n// trailing", dialect.Squirrel3)
	require.Len(t, s.Items, 2)
	assert.Equal(t, token.Empty, s.Items[1].Token.Kind)
	assert.Equal(t, " trailing", s.Items[1].Token.Leading[0].Comments[0].Text)
}
