package interval

import "golang.org/x/exp/constraints" //nolint:exptostd // Tries to replace w/ cmp.

// Endpoint is a type that may be used as an interval endpoint.
type Endpoint = constraints.Integer

// Entry is a single interval and its associated value, with both endpoints
// inclusive. It is shared by the interval collections in this package.
type Entry[K Endpoint, V any] struct {
	Start, End K
	Value      V
}

// Contains returns whether an entry contains a given point.
func (e Entry[K, V]) Contains(point K) bool {
	return e.Start <= point && point <= e.End
}
