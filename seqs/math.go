package seqs

import (
	"iter"
	"math"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

func Sum[T Number](seq iter.Seq[T]) T {
	var total T
	for v := range seq {
		total += v
	}
	return total
}

func Min[T constraints.Ordered](seq iter.Seq[T]) (T, bool) {
	var min T
	first := true
	for v := range seq {
		if first {
			min = v
			first = false
			continue
		}
		if v < min {
			min = v
		}
	}
	if first {
		var zero T
		return zero, false
	}
	return min, true
}

func Max[T constraints.Ordered](seq iter.Seq[T]) (T, bool) {
	var max T
	first := true
	for v := range seq {
		if first {
			max = v
			first = false
			continue
		}
		if v > max {
			max = v
		}
	}
	if first {
		var zero T
		return zero, false
	}
	return max, true
}

// InnerProduct returns seed + a[0]*b[0] + a[1]*b[1] + ..., stopping with the shorter input.
func InnerProduct[T Number](a, b iter.Seq[T], seed T) T {
	return InnerProductWith(a, b, seed,
		func(acc, v T) T { return acc + v },
		func(x, y T) T { return x * y },
	)
}

// InnerProductWith generalizes InnerProduct: pairs are merged with combine and the
// results folded into seed with reduce, left to right.
func InnerProductWith[A, B, C, R any](
	a iter.Seq[A],
	b iter.Seq[B],
	seed R,
	reduce func(R, C) R,
	combine func(A, B) C,
) R {
	return Reduce(ZipWith(a, b, combine), seed, reduce)
}

// ApproxEqual reports whether two float sequences have the same length and every
// pair of elements differs by at most tolerance.
func ApproxEqual[T constraints.Float](a, b iter.Seq[T], tolerance T) bool {
	return EqualFunc(a, b, func(x, y T) bool {
		return math.Abs(float64(x-y)) <= float64(tolerance)
	})
}
