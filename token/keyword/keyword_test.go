package keyword_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutlang/sqfront/dialect"
	"github.com/nutlang/sqfront/token/keyword"
)

func TestDialectGating(t *testing.T) {
	t.Parallel()

	structTerm, ok := keyword.Lookup("struct")
	require.True(t, ok)
	assert.False(t, structTerm.IsSupported(dialect.Squirrel3))
	assert.True(t, structTerm.IsSupported(dialect.SquirrelRespawn))

	breakTerm, ok := keyword.Lookup("break")
	require.True(t, ok)
	assert.True(t, breakTerm.IsSupported(dialect.Squirrel3))
	assert.True(t, breakTerm.IsSupported(dialect.SquirrelRespawn))
}

func TestSymbolsAreDialectIndependent(t *testing.T) {
	t.Parallel()

	for _, sym := range keyword.Symbols {
		assert.True(t, sym.Terminal.IsSupported(dialect.Squirrel3), sym.Text)
		assert.True(t, sym.Terminal.IsSupported(dialect.SquirrelRespawn), sym.Text)
	}
}

func TestSymbolsAreLongestFirst(t *testing.T) {
	t.Parallel()

	for i := 1; i < len(keyword.Symbols); i++ {
		assert.LessOrEqual(t, len(keyword.Symbols[i].Text), len(keyword.Symbols[i-1].Text))
	}
}

func TestLookupUnknown(t *testing.T) {
	t.Parallel()

	_, ok := keyword.Lookup("not_a_keyword")
	assert.False(t, ok)
}
