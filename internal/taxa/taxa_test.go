package taxa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nutlang/sqfront/internal/taxa"
)

func TestPlaceString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "after operator", taxa.Operator.After().String())
	assert.Equal(t, "in if statement", taxa.IfStatement.In().String())
}

func TestUnknownNounFallsBack(t *testing.T) {
	t.Parallel()

	var n taxa.Noun = -1
	assert.Equal(t, taxa.Unknown.String(), n.String())
}

func TestAllCoversNamedNouns(t *testing.T) {
	t.Parallel()

	count := 0
	for n := range taxa.All() {
		assert.NotPanics(t, func() { _ = n.String() })
		count++
	}
	assert.Greater(t, count, 50)
}
