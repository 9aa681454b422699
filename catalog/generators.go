package catalog

import (
	"slices"

	"github.com/stretchr/testify/assert"

	"rangeplay/puzzles"
	"rangeplay/scenario"
	"rangeplay/seqs"
)

func registerGenerators(r *scenario.Registry) {
	r.MustRegister("fibonacci first ten", func(t *scenario.T) {
		fib10 := puzzles.Fibonacci().Take(10)
		assert.Equal(t, "0,1,1,2,3,5,8,13,21,34", seqs.Format(fib10, ","))
	})

	r.MustRegister("generator continues on second traversal", func(t *scenario.T) {
		fib := puzzles.Fibonacci()
		assert.Equal(t, []int{0, 1, 1}, slices.Collect(fib.Take(3)))
		assert.Equal(t, []int{2, 3, 5}, slices.Collect(fib.Take(3)))
	})

	r.MustRegister("iterate restarts on every traversal", func(t *scenario.T) {
		fib := puzzles.FibonacciRestartable()
		assert.Equal(t, []int{0, 1, 1, 2, 3}, slices.Collect(fib.Take(5)))
		assert.Equal(t, []int{0, 1, 1, 2, 3}, slices.Collect(fib.Take(5)))
	})

	r.MustRegister("generate from closure", func(t *scenario.T) {
		counter := 0
		evens := seqs.Generate(func() int {
			counter += 2
			return counter
		})
		assert.Equal(t, []int{2, 4, 6}, slices.Collect(evens.Take(3)))
	})

	r.MustRegister("cycle", func(t *scenario.T) {
		got := slices.Collect(seqs.Cycle(seqs.Of(1, 2, 3)).Take(7))
		assert.Equal(t, []int{1, 2, 3, 1, 2, 3, 1}, got)
	})

	r.MustRegister("iota bounded by take_while", func(t *scenario.T) {
		got := slices.Collect(seqs.Iota(1).TakeWhile(func(v int) bool { return v*v < 30 }))
		assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
	})

	r.MustRegister("linear distribute", func(t *scenario.T) {
		assert.Equal(t, []int{1, 5, 10}, slices.Collect(seqs.LinearDistribute(1, 10, 3)))
		assert.True(t, seqs.ApproxEqual(
			seqs.LinearDistribute(0.0, 1.0, 5),
			seqs.Of(0.0, 0.25, 0.5, 0.75, 1.0),
			1e-12,
		))
	})

	r.MustRegister("descending range", func(t *scenario.T) {
		assert.Equal(t, []int{10, 7, 4, 1}, slices.Collect(seqs.Range(10, 0, -3)))
	})
}
