package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutlang/sqfront/dialect"
	"github.com/nutlang/sqfront/token"
	"github.com/nutlang/sqfront/token/keyword"
)

func build(src string, toks ...token.Token) *token.Stream {
	items := make([]token.Item, len(toks))
	for i, t := range toks {
		items[i] = token.Item{Token: t, Close: -1}
	}
	return &token.Stream{Source: src, Dialect: dialect.SquirrelRespawn, Items: items}
}

func TestCursorPopAdvances(t *testing.T) {
	t.Parallel()

	s := build("a b",
		token.Token{Kind: token.Identifier, Text: "a", Range: token.Range{Start: 0, End: 1}},
		token.Token{Kind: token.Identifier, Text: "b", Range: token.Range{Start: 2, End: 3}},
	)
	c := token.NewCursor(s)
	require.False(t, c.IsEnded())

	first, c, ok := c.Pop()
	require.True(t, ok)
	assert.Equal(t, "a", first.Text)

	second, c, ok := c.Pop()
	require.True(t, ok)
	assert.Equal(t, "b", second.Text)

	_, _, ok = c.Pop()
	assert.False(t, ok)
	assert.True(t, c.IsEnded())
}

func TestCursorIsNewline(t *testing.T) {
	t.Parallel()

	s := build("a\nb",
		token.Token{Kind: token.Identifier, Text: "a", Range: token.Range{Start: 0, End: 1}, Trailing: &token.NewlineMarker{}},
		token.Token{Kind: token.Identifier, Text: "b", Range: token.Range{Start: 2, End: 3}},
	)
	c := token.NewCursor(s)
	assert.False(t, c.IsNewline()) // nothing precedes the first token

	_, c, ok := c.Pop()
	require.True(t, ok)
	assert.True(t, c.IsNewline())
}

func TestCursorSplitDelimited(t *testing.T) {
	t.Parallel()

	s := &token.Stream{
		Source:  "{ a }",
		Dialect: dialect.Squirrel3,
		Items: []token.Item{
			{Token: token.Token{Kind: token.Terminal, Term: keyword.OpenBrace, Range: token.Range{Start: 0, End: 1}}, Close: 2},
			{Token: token.Token{Kind: token.Identifier, Text: "a", Range: token.Range{Start: 2, End: 3}}, Close: -1},
			{Token: token.Token{Kind: token.Terminal, Term: keyword.CloseBrace, Range: token.Range{Start: 4, End: 5}}, Close: -1},
		},
	}
	c := token.NewCursor(s)
	inner, rest, ok := c.SplitDelimited()
	require.True(t, ok)

	tok, _, ok := inner.SplitFirst()
	require.True(t, ok)
	assert.Equal(t, "a", tok.Text)
	assert.True(t, rest.IsEnded())
}

func TestStreamText(t *testing.T) {
	t.Parallel()

	s := build("hello", token.Token{Kind: token.Identifier, Text: "hello", Range: token.Range{Start: 0, End: 5}})
	tok, _ := token.NewCursor(s).Peek()
	assert.Equal(t, "hello", s.Text(tok))
}
