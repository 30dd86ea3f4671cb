package lexer

import (
	"github.com/nutlang/sqfront/internal/interval"
	"github.com/nutlang/sqfront/token"
	"github.com/nutlang/sqfront/token/keyword"
)

// checkNesting is a structural sanity pass over a freshly-built stream's
// matched delimiter pairs. The stack-based matching in Lex already
// guarantees these ranges nest correctly by construction; this walks them
// through an interval.Nesting set anyway so a future change to the pairing
// logic that broke that invariant would show up as a panic here during
// tests rather than as a silent corruption the parser trips over later.
func checkNesting(items []token.Item) {
	var nesting interval.Nesting[int, keyword.Terminal]
	// Insert longer intervals first (see interval.Nesting docs), so that
	// correctly nested pairs all land in one layer: walk openers by how far
	// away their closer is, largest span first. A second layer means two
	// pairs overlap without one containing the other.
	type pair struct{ start, end int }
	var pairs []pair
	for i, item := range items {
		if item.Close >= 0 {
			pairs = append(pairs, pair{i, item.Close})
		}
	}
	for a := 0; a < len(pairs); a++ {
		for b := a + 1; b < len(pairs); b++ {
			if pairs[b].end-pairs[b].start > pairs[a].end-pairs[a].start {
				pairs[a], pairs[b] = pairs[b], pairs[a]
			}
		}
	}
	for _, p := range pairs {
		nesting.Insert(p.start, p.end, items[p.start].Token.Term)
	}
	layers := 0
	for range nesting.Sets() {
		layers++
	}
	if layers > 1 {
		panic("lexer: matched delimiter pairs do not nest")
	}
}
