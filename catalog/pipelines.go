package catalog

import (
	"slices"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rangeplay/scenario"
	"rangeplay/seqs"
)

func registerPipelines(r *scenario.Registry) {
	r.MustRegister("filter then accumulate", func(t *scenario.T) {
		rng := seqs.Filter(seqs.Of(8, 7, 3), gt(5))
		assert.Equal(t, 15, seqs.Accumulate(rng, 0, add))
	})

	r.MustRegister("transform to reciprocals", func(t *scenario.T) {
		inv := seqs.Map(seqs.Of(20, 10, 15), func(x int) float64 { return 1.0 / float64(x) })
		assert.True(t, seqs.ApproxEqual(inv, seqs.Of(0.05, 0.1, 0.0666667), 1e-6))
	})

	r.MustRegister("take and drop cover the input", func(t *scenario.T) {
		s := seqs.Range(1, 7, 1)
		assert.Equal(t, []int{1, 2, 3}, slices.Collect(seqs.Take(s, 3)))
		assert.Equal(t, []int{4, 5, 6}, slices.Collect(seqs.Drop(s, 3)))
		assert.True(t, seqs.Equal(s, seqs.Concat(seqs.Take(s, 3), seqs.Drop(s, 3))))
	})

	r.MustRegister("take bounds", func(t *scenario.T) {
		assert.Empty(t, slices.Collect(seqs.Take(seqs.Of(1, 2), 0)))
		assert.Equal(t, []int{1, 2}, slices.Collect(seqs.Take(seqs.Of(1, 2), 5)))
	})

	r.MustRegister("take_while and drop_while", func(t *scenario.T) {
		odd := func(v int) bool { return v%2 == 1 }
		s := seqs.Of(1, 3, 5, 6, 7)
		assert.Equal(t, []int{1, 3, 5}, slices.Collect(seqs.TakeWhile(s, odd)))
		assert.Equal(t, []int{6, 7}, slices.Collect(seqs.DropWhile(s, odd)))
	})

	r.MustRegister("take_last and drop_last", func(t *scenario.T) {
		s := seqs.Range(1, 8, 1)
		assert.Equal(t, []int{5, 6, 7}, slices.Collect(seqs.TakeLast(s, 3)))
		assert.Equal(t, []int{1, 2, 3, 4}, slices.Collect(seqs.DropLast(s, 3)))
	})

	r.MustRegister("reverse", func(t *scenario.T) {
		s := seqs.Of(1, 2, 3)
		assert.Equal(t, []int{3, 2, 1}, slices.Collect(seqs.Reverse(s)))
		assert.True(t, seqs.Equal(s, seqs.Reverse(seqs.Reverse(s))))
	})

	r.MustRegister("enumerate", func(t *scenario.T) {
		var got []string
		for i, v := range seqs.Enumerate(seqs.Of("a", "b", "c")) {
			got = append(got, seqs.Format(seqs.Of[any](i, v), ":"))
		}
		assert.Equal(t, []string{"0:a", "1:b", "2:c"}, got)
	})

	r.MustRegister("stride and tail", func(t *scenario.T) {
		assert.Equal(t, []int{0, 3, 6, 9}, slices.Collect(seqs.Stride(seqs.Range(0, 10, 1), 3)))
		assert.Equal(t, []int{2, 3}, slices.Collect(seqs.Tail(seqs.Of(1, 2, 3))))
	})

	r.MustRegister("stateless pipeline materializes identically twice", func(t *scenario.T) {
		p := seqs.Map(seqs.Filter(seqs.Range(0, 20, 1), gt(10)), func(v int) int { return v * v })
		first := slices.Collect(p)
		require.Len(t, first, 9)
		assert.Equal(t, first, slices.Collect(p))
	})
}
