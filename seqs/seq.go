package seqs

import (
	"iter"

	"github.com/go-softwarelab/common/pkg/optional"
)

// Filter applies predicate to each element of seq, yielding only those that satisfy the predicate.
// The original order is preserved.
func Filter[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if predicate(v) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// TryFilter returns a sequence of elements that satisfy the predicate.
// The predicate function can return an error.
//
// The resulting sequence yields pairs of (element, error).
// If the predicate returns an error:
//   - The error is yielded to the consumer along with the element 'v' that caused it.
//   - The iteration CONTINUES if the consumer returns true (yield returns true).
//   - The iteration STOPS if the consumer returns false (yield returns false).
func TryFilter[T any](seq iter.Seq[T], predicate func(T) (bool, error)) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for v := range seq {
			keep, err := predicate(v)
			if err != nil {
				if !yield(v, err) {
					return
				}
				continue
			}

			if keep {
				if !yield(v, nil) {
					return
				}
			}
		}
	}
}

// Map applies transform to each element of seq, yielding the transformed elements.
// The output has the same length as the input.
func Map[T, R any](seq iter.Seq[T], transform func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// TryMap applies transform to each element of seq, yielding the transformed elements.
// The transform function can return an error.
// The resulting sequence yields pairs of (transformed element, error).
// If transform returns an error:
//   - The error is yielded to the consumer along with a zero-value of type R.
//   - The iteration CONTINUES if the consumer returns true (yield returns true).
//   - The iteration STOPS if the consumer returns false (yield returns false).
func TryMap[T, R any](seq iter.Seq[T], transform func(T) (R, error)) iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		for v := range seq {
			res, err := transform(v)
			if err != nil {
				var zero R
				res = zero
			}
			if !yield(res, err) {
				return
			}
		}
	}
}

// Reduce aggregates the elements of seq from left to right using the reducer function,
// starting from the initial value. The first element is combined with initial first.
func Reduce[T, R any](seq iter.Seq[T], initial R, reducer func(R, T) R) R {
	acc := initial
	for v := range seq {
		acc = reducer(acc, v)
	}
	return acc
}

// Accumulate is Reduce with the argument order of a classic accumulate(range, init, op).
func Accumulate[T, R any](seq iter.Seq[T], initial R, op func(R, T) R) R {
	return Reduce(seq, initial, op)
}

// Fold reduces seq without a seed: the first element becomes the accumulator.
// An empty sequence yields an empty optional.
func Fold[T any](seq iter.Seq[T], op func(T, T) T) optional.Value[T] {
	var acc T
	first := true
	for v := range seq {
		if first {
			acc = v
			first = false
			continue
		}
		acc = op(acc, v)
	}
	if first {
		return optional.Empty[T]()
	}
	return optional.Some(acc)
}

// TryReduce aggregates the elements of seq using the reducer function, starting from the initial value.
// If reducer returns an error, the accumulator built so far and the error are returned immediately.
func TryReduce[T, R any](seq iter.Seq[T], initial R, reducer func(R, T) (R, error)) (R, error) {
	acc := initial
	for v := range seq {
		next, err := reducer(acc, v)
		if err != nil {
			return acc, err
		}
		acc = next
	}
	return acc, nil
}
