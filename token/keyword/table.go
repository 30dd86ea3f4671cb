package keyword

import (
	"iter"

	"github.com/tidwall/btree"
)

// Symbol is one entry of the ordered symbol table: a terminal plus its
// spelling, kept in longest-match-first order so a greedy scan finds the
// longest symbol starting at a given position before trying shorter ones.
type Symbol struct {
	Terminal Terminal
	Text     string
}

// Symbols is the greedy-longest-match-ordered symbol table (section 4.A).
// Dialect gating never applies to symbols (section 4.A, Design notes), so
// this table has no dialect parameter.
var Symbols = buildSymbols()

func buildSymbols() []Symbol {
	var out []Symbol
	for t := Terminal(1); t < numTerminals; t++ {
		if t.IsSymbol() {
			out = append(out, Symbol{Terminal: t, Text: t.Text()})
		}
	}
	// The const block above is already declared longest-first (3-char, then
	// 2-char, then 1-char), so out is already in the required order; this
	// loop only exists to make that invariant checkable, not to sort.
	return out
}

// keywords is an ordered map from identifier spelling to Terminal, backed by
// a B-tree so that iteration (used by All, and by documentation/test
// tooling that wants a deterministic listing) is alphabetical rather than
// hash-random.
var keywords = buildKeywords()

func buildKeywords() *btree.Map[string, Terminal] {
	m := &btree.Map[string, Terminal]{}
	for t := Terminal(1); t < numTerminals; t++ {
		if t.IsWord() {
			m.Set(t.Text(), t)
		}
	}
	return m
}

// Lookup finds the keyword terminal for an identifier-shaped run of text,
// such as "foreach". Returns None, false if val is not a reserved word
// under any dialect (dialect gating is applied separately by the caller via
// Terminal.IsSupported, per section 4.A: "a source word valid in one
// dialect becomes a plain identifier in the other").
func Lookup(val string) (Terminal, bool) {
	t, ok := keywords.Get(val)
	return t, ok
}

// All returns an iterator over every known keyword, in alphabetical order.
func All() iter.Seq[Terminal] {
	return func(yield func(Terminal) bool) {
		ok := true
		keywords.Scan(func(_ string, t Terminal) bool {
			ok = yield(t)
			return ok
		})
	}
}
