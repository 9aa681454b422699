package seqs

import (
	"fmt"
	"iter"
	"strings"

	"github.com/go-softwarelab/common/pkg/optional"
)

func First[T any](seq iter.Seq[T]) (T, bool) {
	for v := range seq {
		return v, true
	}
	var zero T
	return zero, false
}

func Last[T any](seq iter.Seq[T]) (T, bool) {
	var last T
	found := false
	for v := range seq {
		last = v
		found = true
	}
	return last, found
}

func Any[T any](seq iter.Seq[T], predicate func(T) bool) bool {
	for v := range seq {
		if predicate(v) {
			return true
		}
	}
	return false
}

func All[T any](seq iter.Seq[T], predicate func(T) bool) bool {
	for v := range seq {
		if !predicate(v) {
			return false
		}
	}
	return true
}

func Count[T any](seq iter.Seq[T]) int {
	count := 0
	for range seq {
		count++
	}
	return count
}

// CountValue returns the number of elements equal to value.
func CountValue[T comparable](seq iter.Seq[T], value T) int {
	return CountFunc(seq, func(v T) bool { return v == value })
}

// CountFunc returns the number of elements satisfying predicate.
func CountFunc[T any](seq iter.Seq[T], predicate func(T) bool) int {
	count := 0
	for v := range seq {
		if predicate(v) {
			count++
		}
	}
	return count
}

// Find returns the 0-based position of the first element equal to value.
// The result is empty when there is no match.
func Find[T comparable](seq iter.Seq[T], value T) optional.Value[int] {
	return FindFunc(seq, func(v T) bool { return v == value })
}

// FindFunc returns the position of the first element satisfying predicate.
// Traversal stops at the match.
func FindFunc[T any](seq iter.Seq[T], predicate func(T) bool) optional.Value[int] {
	for i, v := range Enumerate(seq) {
		if predicate(v) {
			return optional.Some(i)
		}
	}
	return optional.Empty[int]()
}

// Equal reports whether a and b yield the same elements in the same order.
// It stops at the first mismatch or as soon as one input ends before the other.
func Equal[T comparable](a, b iter.Seq[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a custom element comparison.
func EqualFunc[T1, T2 any](a iter.Seq[T1], b iter.Seq[T2], eq func(T1, T2) bool) bool {
	nextB, stopB := iter.Pull(b)
	defer stopB()

	for va := range a {
		vb, ok := nextB()
		if !ok || !eq(va, vb) {
			return false
		}
	}
	_, more := nextB()
	return !more
}

// String materializes a sequence of runes into a string.
func String(seq iter.Seq[rune]) string {
	var sb strings.Builder
	for r := range seq {
		sb.WriteRune(r)
	}
	return sb.String()
}

// Runes yields the runes of s.
func Runes(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	}
}

// Format renders every element with the default fmt verb and joins them with sep.
func Format[T any](seq iter.Seq[T], sep string) string {
	var sb strings.Builder
	first := true
	for v := range seq {
		if !first {
			sb.WriteString(sep)
		}
		first = false
		fmt.Fprint(&sb, v)
	}
	return sb.String()
}
