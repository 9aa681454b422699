// Package queues holds the small buffers that back the stateful views in seqs:
// a growable ring buffer for windows and trailing elements, and a binary heap
// for k-way merging.
//
// Neither type is safe for concurrent use.
package queues

import (
	"iter"
	"math/bits"
)

// Ring is a FIFO queue on a circular array whose capacity is always a power of two.
// Push and Pop are amortized O(1).
type Ring[T any] struct {
	buf  []T // backing array, length == capacity (power of two)
	head int // index of the first element
	size int // number of elements in the ring
	mask int // capacity - 1, used for fast modulo: idx & mask
}

// NewRing creates a ring able to hold at least initialCapacity elements before
// growing. A non-positive capacity defaults to 16.
func NewRing[T any](initialCapacity int) *Ring[T] {
	if initialCapacity <= 0 {
		initialCapacity = 16
	}
	capacity := 1 << uint(bits.Len(uint(initialCapacity-1)))
	return &Ring[T]{
		buf:  make([]T, capacity),
		mask: capacity - 1,
	}
}

// grow doubles the capacity until extra more elements fit, unwrapping the contents.
func (r *Ring[T]) grow(extra int) {
	capacity := 1 << uint(bits.Len(uint(r.size+extra-1)))
	buf := make([]T, capacity)

	if r.head+r.size <= len(r.buf) {
		copy(buf, r.buf[r.head:r.head+r.size])
	} else {
		// wrapped: head..end, then start..tail
		n := copy(buf, r.buf[r.head:])
		copy(buf[n:], r.buf[:(r.head+r.size)&r.mask])
	}

	clear(r.buf)
	r.buf = buf
	r.head = 0
	r.mask = capacity - 1
}

// Push appends v at the back.
func (r *Ring[T]) Push(v T) {
	if r.size == len(r.buf) {
		r.grow(1)
	}
	r.buf[(r.head+r.size)&r.mask] = v
	r.size++
}

// Pop removes and returns the front element.
func (r *Ring[T]) Pop() (v T, ok bool) {
	if r.size == 0 {
		return v, false
	}
	v = r.buf[r.head]
	var zero T
	r.buf[r.head] = zero // clear reference
	r.head = (r.head + 1) & r.mask
	r.size--
	return v, true
}

// Discard drops up to n elements from the front and returns how many were dropped.
func (r *Ring[T]) Discard(n int) int {
	n = min(max(n, 0), r.size)
	var zero T
	for i := 0; i < n; i++ {
		r.buf[(r.head+i)&r.mask] = zero
	}
	r.head = (r.head + n) & r.mask
	r.size -= n
	return n
}

// Peek returns the front element without removing it.
func (r *Ring[T]) Peek() (v T, ok bool) {
	if r.size == 0 {
		return v, false
	}
	return r.buf[r.head], true
}

// Len returns the number of buffered elements.
func (r *Ring[T]) Len() int {
	return r.size
}

// IsEmpty reports whether the ring holds no element.
func (r *Ring[T]) IsEmpty() bool {
	return r.size == 0
}

// Clear removes every element and keeps the capacity.
func (r *Ring[T]) Clear() {
	clear(r.buf)
	r.head = 0
	r.size = 0
}

// Snapshot copies the buffered elements, front first, into a new slice.
func (r *Ring[T]) Snapshot() []T {
	out := make([]T, r.size)
	if r.head+r.size <= len(r.buf) {
		copy(out, r.buf[r.head:r.head+r.size])
		return out
	}
	n := copy(out, r.buf[r.head:])
	copy(out[n:], r.buf[:r.size-n])
	return out
}

// All yields the buffered elements front first without removing them.
// The ring must not be modified during iteration.
func (r *Ring[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < r.size; i++ {
			if !yield(r.buf[(r.head+i)&r.mask]) {
				return
			}
		}
	}
}
