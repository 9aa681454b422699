package queues

import (
	"container/heap"
)

// Heap is a priority queue ordered by a three-way compare function: the element
// that compares lowest is popped first. Equal elements pop in insertion order.
type Heap[T any] struct {
	heap *internalHeap[T]
}

type heapItem[T any] struct {
	value T
	seq   uint64 // insertion counter, breaks ties
}

type internalHeap[T any] struct {
	data    []heapItem[T]
	compare func(a, b T) int
	pushed  uint64
}

func (ih *internalHeap[T]) Len() int {
	return len(ih.data)
}

func (ih *internalHeap[T]) Less(i, j int) bool {
	if c := ih.compare(ih.data[i].value, ih.data[j].value); c != 0 {
		return c < 0
	}
	return ih.data[i].seq < ih.data[j].seq
}

func (ih *internalHeap[T]) Swap(i, j int) {
	ih.data[i], ih.data[j] = ih.data[j], ih.data[i]
}

func (ih *internalHeap[T]) Push(x any) {
	ih.data = append(ih.data, x.(heapItem[T]))
}

func (ih *internalHeap[T]) Pop() any {
	old := ih.data
	n := len(old)
	last := old[n-1]

	// avoid memory leak
	old[n-1] = heapItem[T]{}

	ih.data = old[:n-1]
	return last
}

// NewHeap creates a heap with room for initCapacity elements.
// It panics if compare is nil.
func NewHeap[T any](initCapacity int, compare func(a, b T) int) *Heap[T] {
	if compare == nil {
		panic("queues.Heap: compare function cannot be nil")
	}
	return &Heap[T]{
		heap: &internalHeap[T]{
			data:    make([]heapItem[T], 0, max(initCapacity, 0)),
			compare: compare,
		},
	}
}

// Push adds v.
func (h *Heap[T]) Push(v T) {
	heap.Push(h.heap, heapItem[T]{value: v, seq: h.heap.pushed})
	h.heap.pushed++
}

// Pop removes and returns the lowest element.
func (h *Heap[T]) Pop() (v T, ok bool) {
	if h.heap.Len() == 0 {
		return v, false
	}
	return heap.Pop(h.heap).(heapItem[T]).value, true
}

// Peek returns the lowest element without removing it.
func (h *Heap[T]) Peek() (v T, ok bool) {
	if h.heap.Len() == 0 {
		return v, false
	}
	return h.heap.data[0].value, true
}

// Len returns the number of elements.
func (h *Heap[T]) Len() int {
	return h.heap.Len()
}

// IsEmpty reports whether the heap holds no element.
func (h *Heap[T]) IsEmpty() bool {
	return h.heap.Len() == 0
}
