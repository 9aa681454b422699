package seqs

import (
	"iter"

	"rangeplay/queues"
)

// Take yields the first n elements of seq, or fewer if seq is shorter.
// The upstream is not pulled again once n elements have been produced.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		count := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			count++
			if count >= n {
				return
			}
		}
	}
}

// Skip yields everything after the first n elements of seq.
func Skip[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		skipped := 0
		for v := range seq {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Drop is an alias of Skip.
func Drop[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return Skip(seq, n)
}

// Tail yields all elements but the first.
func Tail[T any](seq iter.Seq[T]) iter.Seq[T] {
	return Skip(seq, 1)
}

// TakeLast yields the last n elements of seq. Nothing is produced before seq
// is exhausted, and at most n elements are buffered.
func TakeLast[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		last := queues.NewRing[T](n)
		for v := range seq {
			if last.Len() == n {
				last.Pop()
			}
			last.Push(v)
		}
		for v := range last.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// DropLast yields all but the last n elements of seq, lagging n elements
// behind the upstream.
func DropLast[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
			return
		}
		pending := queues.NewRing[T](n)
		for v := range seq {
			pending.Push(v)
			if pending.Len() <= n {
				continue
			}
			head, _ := pending.Pop()
			if !yield(head) {
				return
			}
		}
	}
}

// TakeWhile continues to yield elements from the sequence
// as long as the predicate returns true.
func TakeWhile[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !predicate(v) {
				return // Condition not met, terminate the stream
			}
			if !yield(v) {
				return
			}
		}
	}
}

// DropWhile skips elements from the sequence
// as long as the predicate returns true, then yields the rest.
func DropWhile[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		dropping := true
		for v := range seq {
			if dropping {
				if predicate(v) {
					continue
				}
				dropping = false
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Stride yields every k-th element, starting with the first.
func Stride[T any](seq iter.Seq[T], k int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if k <= 0 {
			return
		}
		i := 0
		for v := range seq {
			if i%k == 0 {
				if !yield(v) {
					return
				}
			}
			i++
		}
	}
}
