package seqs

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Infinite is a sequence that never ends on its own.
//
// It is not an iter.Seq: terminals that traverse to completion do not
// accept it. Bound it with Take or TakeWhile, or call Unbounded when the caller
// guarantees termination some other way (a range loop with break, for example).
type Infinite[T any] iter.Seq[T]

// Take bounds the sequence to its first n elements.
func (s Infinite[T]) Take(n int) iter.Seq[T] {
	return Take(iter.Seq[T](s), n)
}

// TakeWhile bounds the sequence to its longest prefix satisfying predicate.
// If every element satisfies predicate the result is still infinite.
func (s Infinite[T]) TakeWhile(predicate func(T) bool) iter.Seq[T] {
	return TakeWhile(iter.Seq[T](s), predicate)
}

// Filter keeps the elements satisfying predicate. The result stays unbounded.
func (s Infinite[T]) Filter(predicate func(T) bool) Infinite[T] {
	return Infinite[T](Filter(iter.Seq[T](s), predicate))
}

// Skip drops the first n elements. The result stays unbounded.
func (s Infinite[T]) Skip(n int) Infinite[T] {
	return Infinite[T](Skip(iter.Seq[T](s), n))
}

// Unbounded returns the underlying iter.Seq without a bound.
func (s Infinite[T]) Unbounded() iter.Seq[T] {
	return iter.Seq[T](s)
}

// MapInfinite applies transform lazily to an unbounded sequence.
func MapInfinite[T, R any](s Infinite[T], transform func(T) R) Infinite[R] {
	return Infinite[R](Map(iter.Seq[T](s), transform))
}

// Iota counts up from start by one.
func Iota[T constraints.Integer](start T) Infinite[T] {
	return func(yield func(T) bool) {
		for i := start; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Iterate yields seed, f(seed), f(f(seed)), ...
// The state lives inside each traversal, so the sequence is restartable.
func Iterate[T any](seed T, f func(T) T) Infinite[T] {
	return func(yield func(T) bool) {
		for v := seed; ; v = f(v) {
			if !yield(v) {
				return
			}
		}
	}
}

// Generate yields fn() on every pull.
//
// fn usually closes over mutable state. Such a sequence is not restartable: a second
// traversal observes whatever state the first one left behind.
func Generate[T any](fn func() T) Infinite[T] {
	return func(yield func(T) bool) {
		for {
			if !yield(fn()) {
				return
			}
		}
	}
}

// Cycle repeats seq forever. seq is traversed again for every round, so it must be
// restartable. An empty seq yields nothing instead of spinning.
func Cycle[T any](seq iter.Seq[T]) Infinite[T] {
	return func(yield func(T) bool) {
		for {
			produced := false
			for v := range seq {
				produced = true
				if !yield(v) {
					return
				}
			}
			if !produced {
				return
			}
		}
	}
}

// Generator is an explicit stateful source: a state value and a step function
// that maps the current state to an output and the next state.
//
// A Generator has a single owner. Every pull, from any traversal of Seq, advances
// the same state, so Generators are neither restartable nor safe for concurrent use.
type Generator[S, T any] struct {
	state S
	step  func(S) (T, S)
	pulls int
}

// NewGenerator creates a Generator starting from initial.
func NewGenerator[S, T any](initial S, step func(S) (T, S)) *Generator[S, T] {
	return &Generator[S, T]{state: initial, step: step}
}

// Next produces the current value and advances the state.
func (g *Generator[S, T]) Next() T {
	v, next := g.step(g.state)
	g.state = next
	g.pulls++
	return v
}

// State returns the state the next pull will start from.
func (g *Generator[S, T]) State() S {
	return g.state
}

// Pulls reports how many values have been produced so far.
func (g *Generator[S, T]) Pulls() int {
	return g.pulls
}

// Seq exposes the generator as an unbounded sequence sharing the generator's state.
func (g *Generator[S, T]) Seq() Infinite[T] {
	return func(yield func(T) bool) {
		for {
			if !yield(g.Next()) {
				return
			}
		}
	}
}
