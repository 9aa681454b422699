package seqs

import (
	"cmp"
	"iter"

	"rangeplay/queues"
)

// The set operations below merge two inputs that are already sorted by the same
// ordering. They run in a single lazy pass and keep multiset semantics: an element
// present m times in a and n times in b appears max(m,n) times in the union,
// min(m,n) times in the intersection and max(m-n,0) times in the difference.
// Unsorted input does not fail, but the output is unspecified.

// SetUnion yields the sorted union of a and b.
func SetUnion[T cmp.Ordered](a, b iter.Seq[T]) iter.Seq[T] {
	return SetUnionFunc(a, b, cmp.Compare[T])
}

// SetUnionFunc is SetUnion with a custom comparison.
func SetUnionFunc[T any](a, b iter.Seq[T], compare func(T, T) int) iter.Seq[T] {
	return mergeSorted(a, b, compare, mergeLeft|mergeRight|mergeBoth)
}

// SetIntersection yields the elements present in both a and b.
func SetIntersection[T cmp.Ordered](a, b iter.Seq[T]) iter.Seq[T] {
	return SetIntersectionFunc(a, b, cmp.Compare[T])
}

// SetIntersectionFunc is SetIntersection with a custom comparison.
func SetIntersectionFunc[T any](a, b iter.Seq[T], compare func(T, T) int) iter.Seq[T] {
	return mergeSorted(a, b, compare, mergeBoth)
}

// SetDifference yields the elements of a that are not in b.
func SetDifference[T cmp.Ordered](a, b iter.Seq[T]) iter.Seq[T] {
	return SetDifferenceFunc(a, b, cmp.Compare[T])
}

// SetDifferenceFunc is SetDifference with a custom comparison.
func SetDifferenceFunc[T any](a, b iter.Seq[T], compare func(T, T) int) iter.Seq[T] {
	return mergeSorted(a, b, compare, mergeLeft)
}

// SetSymmetricDifference yields the elements found in exactly one of a and b.
func SetSymmetricDifference[T cmp.Ordered](a, b iter.Seq[T]) iter.Seq[T] {
	return SetSymmetricDifferenceFunc(a, b, cmp.Compare[T])
}

// SetSymmetricDifferenceFunc is SetSymmetricDifference with a custom comparison.
func SetSymmetricDifferenceFunc[T any](a, b iter.Seq[T], compare func(T, T) int) iter.Seq[T] {
	return mergeSorted(a, b, compare, mergeLeft|mergeRight)
}

// Merge yields all elements of a and b in sorted order, keeping every duplicate.
func Merge[T cmp.Ordered](a, b iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		left := newCursor(a)
		defer left.stop()
		right := newCursor(b)
		defer right.stop()

		for left.ok && right.ok {
			if right.v < left.v {
				if !yield(right.v) {
					return
				}
				right.advance()
				continue
			}
			if !yield(left.v) {
				return
			}
			left.advance()
		}
		if !left.drain(yield) {
			return
		}
		right.drain(yield)
	}
}

// MergeN yields the elements of every sorted input as one sorted sequence,
// keeping duplicates. Equal elements come from earlier inputs first.
func MergeN[T cmp.Ordered](inputs ...iter.Seq[T]) iter.Seq[T] {
	return MergeNFunc(cmp.Compare[T], inputs...)
}

// MergeNFunc is MergeN with a custom comparison.
func MergeNFunc[T any](compare func(T, T) int, inputs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		heads := queues.NewHeap(len(inputs), func(a, b mergeHead[T]) int {
			if c := compare(a.cur.v, b.cur.v); c != 0 {
				return c
			}
			return cmp.Compare(a.input, b.input)
		})
		for i, in := range inputs {
			cur := newCursor(in)
			defer cur.stop()
			if cur.ok {
				heads.Push(mergeHead[T]{cur: cur, input: i})
			}
		}

		for {
			top, ok := heads.Pop()
			if !ok {
				return
			}
			if !yield(top.cur.v) {
				return
			}
			top.cur.advance()
			if top.cur.ok {
				heads.Push(top)
			}
		}
	}
}

// mergeHead is the current element of one MergeN input.
type mergeHead[T any] struct {
	cur   *cursor[T]
	input int
}

type mergeMode uint8

const (
	mergeLeft  mergeMode = 1 << iota // emit elements only in a
	mergeRight                       // emit elements only in b
	mergeBoth                        // emit matched elements
)

func mergeSorted[T any](a, b iter.Seq[T], compare func(T, T) int, mode mergeMode) iter.Seq[T] {
	return func(yield func(T) bool) {
		left := newCursor(a)
		defer left.stop()
		right := newCursor(b)
		defer right.stop()

		for left.ok && right.ok {
			switch c := compare(left.v, right.v); {
			case c < 0:
				if mode&mergeLeft != 0 && !yield(left.v) {
					return
				}
				left.advance()
			case c > 0:
				if mode&mergeRight != 0 && !yield(right.v) {
					return
				}
				right.advance()
			default:
				if mode&mergeBoth != 0 && !yield(left.v) {
					return
				}
				left.advance()
				right.advance()
			}
		}

		if mode&mergeLeft != 0 && !left.drain(yield) {
			return
		}
		if mode&mergeRight != 0 {
			right.drain(yield)
		}
	}
}

// cursor holds the current head of a pulled sequence.
type cursor[T any] struct {
	next func() (T, bool)
	stop func()
	v    T
	ok   bool
}

func newCursor[T any](seq iter.Seq[T]) *cursor[T] {
	next, stop := iter.Pull(seq)
	c := &cursor[T]{next: next, stop: stop}
	c.advance()
	return c
}

func (c *cursor[T]) advance() {
	c.v, c.ok = c.next()
}

// drain yields the current head and everything after it. It reports false if
// the consumer stopped early.
func (c *cursor[T]) drain(yield func(T) bool) bool {
	for c.ok {
		if !yield(c.v) {
			return false
		}
		c.advance()
	}
	return true
}
