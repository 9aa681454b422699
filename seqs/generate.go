package seqs

import (
	"iter"
	"math"
	"math/rand/v2"

	"golang.org/x/exp/constraints"
)

// RandomInts generates a sequence of random integers of the specified size.
// Every traversal draws fresh values.
func RandomInts(size int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < size; i++ {
			if !yield(rand.Int()) {
				return
			}
		}
	}
}

// Range yields start, start+step, ... up to but excluding end.
// A zero step yields nothing.
func Range(start, end, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if step == 0 {
			return
		}
		for i := start; step > 0 && i < end || step < 0 && i > end; i += step {
			if !yield(i) {
				return
			}
		}
	}
}

// Repeat yields value count times.
func Repeat[T any](value T, count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < count; i++ {
			if !yield(value) {
				return
			}
		}
	}
}

// Of yields the given values in order. The values slice is captured, not copied.
func Of[T any](values ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}

// Empty yields nothing.
func Empty[T any]() iter.Seq[T] {
	return func(func(T) bool) {}
}

// LinearDistribute yields n values evenly spaced from lo to hi, both inclusive.
// Point i is lo + (hi-lo)*i/(n-1), computed in float64 so that unsigned and narrow
// integer types neither wrap nor overflow. For integer types the offset from lo is
// truncated toward lo, and the last value is always exactly hi.
// n == 1 yields lo; n <= 0 yields nothing.
func LinearDistribute[T constraints.Integer | constraints.Float](lo, hi T, n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		if n == 1 {
			yield(lo)
			return
		}

		integral := T(1)/T(2) == 0
		from, span := float64(lo), float64(hi)-float64(lo)
		for i := 0; i < n-1; i++ {
			offset := span * float64(i) / float64(n-1)
			if integral {
				offset = math.Trunc(offset)
			}
			if !yield(T(from + offset)) {
				return
			}
		}
		yield(hi)
	}
}
