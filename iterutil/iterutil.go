// Package iterutil provides small iterator helpers.
package iterutil

import "iter"

// WithPrevious pairs each item of a sequence with the item before it.
// The first pair is (nil, &first) and the last is (&last, nil), so
// every item appears once in each position:
//
//	seq := slices.Values([]int{1, 2, 3})
//	// yields (nil, &1), (&1, &2), (&2, &3), (&3, nil)
//
// An empty sequence yields the single pair (nil, nil).
func WithPrevious[T any](seq iter.Seq[T]) iter.Seq2[*T, *T] {
	return func(yield func(*T, *T) bool) {
		var prev *T
		for v := range seq {
			if !yield(prev, &v) {
				return
			}
			prev = &v
		}
		yield(prev, nil)
	}
}
