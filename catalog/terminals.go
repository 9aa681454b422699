package catalog

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rangeplay/scenario"
	"rangeplay/seqs"
)

func registerTerminals(r *scenario.Registry) {
	r.MustRegister("count value", func(t *scenario.T) {
		assert.Equal(t, 3, seqs.CountValue(seqs.Of(1, 2, 1, 1), 1))
	})

	r.MustRegister("find", func(t *scenario.T) {
		pos := seqs.Find(seqs.Of(5, 6, 7), 7)
		require.True(t, pos.IsPresent())
		assert.Equal(t, 2, pos.MustGet())
		assert.True(t, seqs.Find(seqs.Of(5, 6, 7), 9).IsEmpty())
	})

	r.MustRegister("inner product", func(t *scenario.T) {
		assert.Equal(t, 32, seqs.InnerProduct(seqs.Of(1, 2, 3), seqs.Of(4, 5, 6), 0))
	})

	r.MustRegister("equality short-circuits on length", func(t *scenario.T) {
		assert.True(t, seqs.Equal(seqs.Of(1, 2, 3), seqs.Range(1, 4, 1)))
		assert.False(t, seqs.Equal(seqs.Of(1, 2), seqs.Of(1, 2, 3)))
		assert.False(t, seqs.Equal(seqs.Of(1, 9, 3), seqs.Of(1, 2, 3)))
	})

	r.MustRegister("fold without seed", func(t *scenario.T) {
		maxOf := func(a, b int) int { return max(a, b) }
		assert.Equal(t, 4, seqs.Fold(seqs.Of(3, 1, 4, 1), maxOf).OrElse(-1))
		assert.True(t, seqs.Fold(seqs.Empty[int](), maxOf).IsEmpty())
	})

	r.MustRegister("sum min max", func(t *scenario.T) {
		s := seqs.Of(4, -2, 9)
		assert.Equal(t, 11, seqs.Sum(s))
		lo, ok := seqs.Min(s)
		assert.True(t, ok)
		assert.Equal(t, -2, lo)
		hi, _ := seqs.Max(s)
		assert.Equal(t, 9, hi)
	})
}
