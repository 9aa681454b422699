package seqs

import (
	"iter"
	"slices"

	"github.com/go-softwarelab/common/pkg/types"
)

// CartesianProduct yields every pair (x, y) with x from a and y from b.
// The last input varies fastest; b is traversed once per element of a.
func CartesianProduct[A, B any](a iter.Seq[A], b iter.Seq[B]) iter.Seq[Pair[A, B]] {
	return func(yield func(Pair[A, B]) bool) {
		for x := range a {
			for y := range b {
				if !yield(Pair[A, B]{V1: x, V2: y}) {
					return
				}
			}
		}
	}
}

// CartesianProduct3 yields every tuple (x, y, z) in lexicographic nesting order.
func CartesianProduct3[A, B, C any](a iter.Seq[A], b iter.Seq[B], c iter.Seq[C]) iter.Seq[types.Tuple3[A, B, C]] {
	return func(yield func(types.Tuple3[A, B, C]) bool) {
		for x := range a {
			for y := range b {
				for z := range c {
					if !yield(types.NewTuple3(x, y, z)) {
						return
					}
				}
			}
		}
	}
}

// CartesianProductN yields the product of any number of same-typed inputs as slices.
// Inputs are materialized once per traversal. Each yielded slice is fresh.
// No inputs, or any empty input, yields nothing.
func CartesianProductN[T any](inputs ...iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if len(inputs) == 0 {
			return
		}
		pools := make([][]T, len(inputs))
		for i, in := range inputs {
			pools[i] = slices.Collect(in)
			if len(pools[i]) == 0 {
				return
			}
		}

		// odometer over pool indices, last position spins fastest
		idx := make([]int, len(pools))
		for {
			tuple := make([]T, len(pools))
			for i, p := range pools {
				tuple[i] = p[idx[i]]
			}
			if !yield(tuple) {
				return
			}

			pos := len(idx) - 1
			for pos >= 0 {
				idx[pos]++
				if idx[pos] < len(pools[pos]) {
					break
				}
				idx[pos] = 0
				pos--
			}
			if pos < 0 {
				return
			}
		}
	}
}
