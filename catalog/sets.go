package catalog

import (
	"slices"

	"github.com/stretchr/testify/assert"

	"rangeplay/scenario"
	"rangeplay/seqs"
)

func registerSets(r *scenario.Registry) {
	a := seqs.Of(1, 2, 4, 5)
	b := seqs.Of(2, 3, 5, 6)

	r.MustRegister("set union", func(t *scenario.T) {
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, slices.Collect(seqs.SetUnion(a, b)))
	})

	r.MustRegister("set intersection", func(t *scenario.T) {
		assert.Equal(t, []int{2, 5}, slices.Collect(seqs.SetIntersection(a, b)))
	})

	r.MustRegister("set difference", func(t *scenario.T) {
		assert.Equal(t, []int{1, 4}, slices.Collect(seqs.SetDifference(a, b)))
		assert.Equal(t, []int{1, 3, 4, 6}, slices.Collect(seqs.SetSymmetricDifference(a, b)))
	})

	r.MustRegister("set operations keep multiplicity", func(t *scenario.T) {
		x, y := seqs.Of(1, 1, 2), seqs.Of(1, 3)
		assert.Equal(t, []int{1, 1, 2, 3}, slices.Collect(seqs.SetUnion(x, y)))
		assert.Equal(t, []int{1}, slices.Collect(seqs.SetIntersection(x, y)))
		assert.Equal(t, []int{1, 2}, slices.Collect(seqs.SetDifference(x, y)))
	})

	r.MustRegister("merge", func(t *scenario.T) {
		got := seqs.Merge(seqs.Of(1, 3, 5), seqs.Of(2, 3, 4))
		assert.Equal(t, []int{1, 2, 3, 3, 4, 5}, slices.Collect(got))
	})

	r.MustRegister("k-way merge", func(t *scenario.T) {
		got := seqs.MergeN(seqs.Of(1, 7), seqs.Of(3, 4), seqs.Of(2, 7, 8))
		assert.Equal(t, []int{1, 2, 3, 4, 7, 7, 8}, slices.Collect(got))
	})
}
