package interval

import (
	"iter"

	"github.com/tidwall/btree"
)

// Nesting buckets intervals into layers where, within a layer, no two
// intervals overlap except by strict containment. checkNesting in the
// lexer package uses this to sanity-check that matched delimiter pairs
// (braces, brackets, parens) nest correctly.
//
// Insertion order matters: an interval inserted after one it contains does
// not join that interval's layer, so a properly nested family ends up in a
// single layer only when longer intervals are inserted before the shorter
// ones they contain.
type Nesting[K Endpoint, V any] struct {
	// Keys in each tree are the ends of the intervals.
	sets []*btree.Map[K, *Entry[K, V]]
}

// Sets iterates over each nesting layer in the order the layers were
// created; within a layer the entries come back in ascending order of
// their end points.
func (n *Nesting[K, V]) Sets() iter.Seq[iter.Seq[Entry[K, V]]] {
	return func(yield func(iter.Seq[Entry[K, V]]) bool) {
		for _, set := range n.sets {
			if set.Len() == 0 {
				return
			}

			iter := func(yield func(Entry[K, V]) bool) {
				set.Scan(func(_ K, value *Entry[K, V]) bool { return yield(*value) })
			}

			if !yield(iter) {
				return
			}
		}
	}
}

// Insert adds a new interval to the collection.
func (n *Nesting[K, V]) Insert(start, end K, value V) {
	var found *btree.Map[K, *Entry[K, V]]
	for _, set := range n.sets {
		// Two cases under which we insert:
		//
		// 1. We do not intersect anything currently in the set.
		// 2. We overlap precisely one interval.

		iter := set.Iter()
		if !iter.Seek(end) {
			// This would be the greatest end in the set, so we need only
			// check we don't overlap with the greatest interval currently in
			// the set.
			if !iter.Last() || iter.Value().End < start {
				found = set
				break // We're done.
			}

			continue // Partial overlap with last.
		}

		// Check if we lie completely inside of the interval we found or
		// completely outside of it. If the found interval is [c, d], then
		// we want either a < b < c < d or c < a < b < d.
		//
		// Equivalently, the error condition is a <= c <= b
		if start <= iter.Value().Start && iter.Value().Start <= end {
			continue
		}

		// Finally, check that we don't overlap the previous interval. If
		// that interval is [c, d], then this is asking for c < d < a < b.
		//
		// Equivalently, the error condition is a <= d
		if iter.Prev() && start <= iter.Value().End {
			continue
		}

		found = set
		break // We're done.
	}

	if found == nil {
		found = new(btree.Map[K, *Entry[K, V]])
		n.sets = append(n.sets, found)
	}

	found.Set(end, &Entry[K, V]{Start: start, End: end, Value: value})
}
