package seqs

import (
	"iter"
	"slices"

	"github.com/go-softwarelab/common/pkg/types"

	"rangeplay/queues"
)

// FlatMap calls f for every element of source and yields the elements of each
// produced sub-sequence, in element order.
func FlatMap[S any, T any](source iter.Seq[S], f func(S) iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for s := range source {
			for t := range f(s) {
				if !yield(t) {
					return
				}
			}
		}
	}
}

// TryFlatMap is FlatMap over sub-sequences that can fail. Every (element, error)
// pair produced by f is passed through unchanged; the consumer decides whether an
// error ends the iteration by returning false.
func TryFlatMap[S any, T any](source iter.Seq[S], f func(S) iter.Seq2[T, error]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for s := range source {
			for v, err := range f(s) {
				if !yield(v, err) {
					return
				}
			}
		}
	}
}

// Concat yields the elements of each sequence in turn.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Flatten concatenates a sequence of sequences.
func Flatten[T any](seq iter.Seq[iter.Seq[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for inner := range seq {
			for v := range inner {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// FlattenSlices concatenates a sequence of slices, such as the output of Chunk or Split.
func FlattenSlices[T any](seq iter.Seq[[]T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for inner := range seq {
			for _, v := range inner {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Intersperse yields sep between consecutive elements of seq.
func Intersperse[T any](seq iter.Seq[T], sep T) iter.Seq[T] {
	return func(yield func(T) bool) {
		first := true
		for v := range seq {
			if !first {
				if !yield(sep) {
					return
				}
			}
			first = false
			if !yield(v) {
				return
			}
		}
	}
}

type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Zip pairs up elements of seq1 and seq2. It stops with the shorter input.
func Zip[T1, T2 any](seq1 iter.Seq[T1], seq2 iter.Seq[T2]) iter.Seq[Pair[T1, T2]] {
	return ZipWith(seq1, seq2, func(v1 T1, v2 T2) Pair[T1, T2] {
		return Pair[T1, T2]{v1, v2}
	})
}

// ZipWith combines elements of seq1 and seq2 pairwise with f. It stops with the shorter input.
func ZipWith[T1, T2, R any](seq1 iter.Seq[T1], seq2 iter.Seq[T2], f func(T1, T2) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		next2, stop2 := iter.Pull(seq2)
		defer stop2()

		for v1 := range seq1 {
			v2, ok := next2()
			if !ok {
				return
			}
			if !yield(f(v1, v2)) {
				return
			}
		}
	}
}

// Zip3 zips three sequences into tuples. It stops with the shortest input.
func Zip3[A, B, C any](a iter.Seq[A], b iter.Seq[B], c iter.Seq[C]) iter.Seq[types.Tuple3[A, B, C]] {
	return func(yield func(types.Tuple3[A, B, C]) bool) {
		nextB, stopB := iter.Pull(b)
		defer stopB()
		nextC, stopC := iter.Pull(c)
		defer stopC()

		for va := range a {
			vb, ok := nextB()
			if !ok {
				return
			}
			vc, ok := nextC()
			if !ok {
				return
			}
			if !yield(types.NewTuple3(va, vb, vc)) {
				return
			}
		}
	}
}

// ZipN zips any number of same-typed sequences into slices, one element from
// each input per slice. It stops with the shortest input; no inputs yields
// nothing. Each yielded slice is fresh.
func ZipN[T any](inputs ...iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if len(inputs) == 0 {
			return
		}
		nexts := make([]func() (T, bool), len(inputs))
		for i, in := range inputs {
			next, stop := iter.Pull(in)
			defer stop()
			nexts[i] = next
		}

		for {
			row := make([]T, len(nexts))
			for i, next := range nexts {
				v, ok := next()
				if !ok {
					return
				}
				row[i] = v
			}
			if !yield(row) {
				return
			}
		}
	}
}

// ZipLongest zips two sequences together.
// When one sequence is exhausted, it continues with the fill values.
// use fill1 and fill2 to fill in the missing values from seq1 and seq2 respectively.
func ZipLongest[T1, T2 any](
	seq1 iter.Seq[T1],
	seq2 iter.Seq[T2],
	fill1 T1,
	fill2 T2,
) iter.Seq[Pair[T1, T2]] {
	return func(yield func(Pair[T1, T2]) bool) {
		next1, stop1 := iter.Pull(seq1)
		defer stop1()
		next2, stop2 := iter.Pull(seq2)
		defer stop2()

		for {
			v1, ok1 := next1()
			v2, ok2 := next2()

			if !ok1 && !ok2 {
				return
			}

			if !ok1 {
				v1 = fill1
			}
			if !ok2 {
				v2 = fill2
			}
			if !yield(Pair[T1, T2]{V1: v1, V2: v2}) {
				return
			}
		}
	}
}

// Enumerate pairs every element with its 0-based position.
func Enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := 0
		for v := range seq {
			if !yield(index, v) {
				return
			}
			index++
		}
	}
}

// Chunk splits the input sequence into chunks of the specified size.
// The last chunk may be smaller if there are not enough elements.
func Chunk[T any](seq iter.Seq[T], size int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if size <= 0 {
			return
		}

		batch := make([]T, 0, size)

		for v := range seq {
			batch = append(batch, v)
			if len(batch) == size {
				if !yield(batch) {
					return
				}
				batch = make([]T, 0, size)
			}
		}
		if len(batch) > 0 {
			yield(batch)
		}
	}
}

// Window creates a sliding window over the input sequence.
// size: window size.
// step: step size for each slide.
//
// Scenario 1 (step < size): overlapping windows. For example, [1,2,3], [2,3,4] (size=3, step=1)
// Scenario 2 (step == size): equivalent to Chunk, except a short trailing group is dropped.
// Scenario 3 (step > size): gapped windows (some data is skipped in between).
func Window[T any](seq iter.Seq[T], size, step int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if size <= 0 || step <= 0 {
			return
		}

		buffer := queues.NewRing[T](size)

		// when step > size, we need to skip some elements after yielding
		skipCount := 0

		for v := range seq {
			if skipCount > 0 {
				skipCount--
				continue
			}

			buffer.Push(v)
			if buffer.Len() < size {
				continue
			}

			if !yield(buffer.Snapshot()) {
				return
			}

			if step < size {
				// overlapping: keep the tail, e.g. [1,2,3,4,5] step=2 => [3,4,5]
				buffer.Discard(step)
			} else {
				buffer.Clear()
				skipCount = step - size
			}
		}
	}
}

// Sliding yields every overlapping window of k consecutive elements.
// A sequence shorter than k yields nothing.
func Sliding[T any](seq iter.Seq[T], k int) iter.Seq[[]T] {
	return Window(seq, k, 1)
}

// Distinct returns a sequence that yields only unique elements.
// It maintains a map of seen elements, so memory usage is proportional to the number of unique elements.
func Distinct[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[T]struct{})
		for v := range seq {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Unique drops elements equal to their immediate predecessor.
// Only adjacent duplicates are removed: [1,1,2,1] => [1,2,1].
func Unique[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return UniqueFunc(seq, func(a, b T) bool { return a == b })
}

// UniqueFunc is Unique with a custom equality.
func UniqueFunc[T any](seq iter.Seq[T], eq func(a, b T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		var prev T
		first := true
		for v := range seq {
			if !first && eq(prev, v) {
				continue
			}
			first = false
			prev = v
			if !yield(v) {
				return
			}
		}
	}
}

// Peek performs the provided action on each element of the sequence without modifying it.
// It is useful for debugging (e.g., logging) or side effects.
func Peek[T any](seq iter.Seq[T], action func(T)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			action(v)
			if !yield(v) {
				return
			}
		}
	}
}

// Scan is similar to Reduce, but it yields the accumulated result at each step.
// The initial value itself is not yielded.
func Scan[T, R any](seq iter.Seq[T], initial R, reducer func(R, T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		acc := initial
		for v := range seq {
			acc = reducer(acc, v)
			if !yield(acc) {
				return
			}
		}
	}
}

// PartialSum yields running totals: out[0] = in[0], out[i] = op(out[i-1], in[i]).
func PartialSum[T any](seq iter.Seq[T], op func(T, T) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		var acc T
		first := true
		for v := range seq {
			if first {
				acc = v
				first = false
			} else {
				acc = op(acc, v)
			}
			if !yield(acc) {
				return
			}
		}
	}
}

// ExclusiveScan yields out[0] = seed, out[i] = op(out[i-1], in[i-1]).
// The output has the same length as the input; the last input element never
// contributes.
func ExclusiveScan[T, R any](seq iter.Seq[T], seed R, op func(R, T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		acc := seed
		for v := range seq {
			if !yield(acc) {
				return
			}
			acc = op(acc, v)
		}
	}
}

// Reverse yields the elements of a finite seq in reverse order.
// The whole input is buffered on the first pull.
func Reverse[T any](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		Backward(slices.Collect(seq))(yield)
	}
}

// Backward iterates a slice from the last element to the first without copying it.
func Backward[T any](s []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(s[i]) {
				return
			}
		}
	}
}

// Split yields the groups of elements between occurrences of delim.
//
// Consecutive delimiters produce an empty group and a leading delimiter produces
// an empty first group. A trailing delimiter does not produce a trailing empty
// group, and an empty input yields no groups.
func Split[T comparable](seq iter.Seq[T], delim T) iter.Seq[[]T] {
	return SplitFunc(seq, func(v T) bool { return v == delim })
}

// SplitFunc is Split with a predicate selecting the delimiters.
func SplitFunc[T any](seq iter.Seq[T], isDelim func(T) bool) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		group := []T{}
		for v := range seq {
			if isDelim(v) {
				if !yield(group) {
					return
				}
				group = []T{}
				continue
			}
			group = append(group, v)
		}
		if len(group) > 0 {
			yield(group)
		}
	}
}
