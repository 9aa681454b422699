package catalog

import (
	"iter"
	"regexp"
	"slices"

	"github.com/stretchr/testify/assert"

	"rangeplay/scenario"
	"rangeplay/seqs"
)

var wordPattern = regexp.MustCompile(`\w+`)

func registerCombinators(r *scenario.Registry) {
	r.MustRegister("zip_with plus", func(t *scenario.T) {
		got := seqs.ZipWith(seqs.Of(1, 3, 5), seqs.Of(2, 4, 6), add)
		assert.Equal(t, []int{3, 7, 11}, slices.Collect(got))
	})

	r.MustRegister("zip stops at shortest", func(t *scenario.T) {
		got := slices.Collect(seqs.Zip(seqs.Of(1, 2, 3), seqs.Of("a", "b")))
		assert.Equal(t, []seqs.Pair[int, string]{{V1: 1, V2: "a"}, {V1: 2, V2: "b"}}, got)
		assert.Equal(t, 1, seqs.Count(seqs.Zip3(seqs.Of(1, 2), seqs.Of("x"), seqs.Of(true, false))))
	})

	r.MustRegister("zip any number of sequences", func(t *scenario.T) {
		rows := seqs.ZipN(seqs.Of(1, 2), seqs.Of(3, 4), seqs.Of(5, 6, 7))
		assert.Equal(t, [][]int{{1, 3, 5}, {2, 4, 6}}, slices.Collect(rows))
	})

	r.MustRegister("flatten", func(t *scenario.T) {
		nested := seqs.Of(seqs.Of(1, 2), seqs.Empty[int](), seqs.Of(3))
		assert.Equal(t, []int{1, 2, 3}, slices.Collect(seqs.Flatten(nested)))
	})

	r.MustRegister("flat map", func(t *scenario.T) {
		got := seqs.FlatMap(seqs.Of(1, 2, 3), func(v int) iter.Seq[int] { return seqs.Repeat(v, v) })
		assert.Equal(t, []int{1, 2, 2, 3, 3, 3}, slices.Collect(got))
	})

	r.MustRegister("partial sum", func(t *scenario.T) {
		assert.Equal(t, []int{1, 3, 6, 10}, slices.Collect(seqs.PartialSum(seqs.Of(1, 2, 3, 4), add)))
	})

	r.MustRegister("exclusive scan", func(t *scenario.T) {
		assert.Equal(t, []int{0, 1, 3, 6}, slices.Collect(seqs.ExclusiveScan(seqs.Of(1, 2, 3, 4), 0, add)))
	})

	r.MustRegister("split keeps empty group between delimiters", func(t *scenario.T) {
		groups := seqs.Map(seqs.Split(seqs.Runes("a,,b"), ','), func(g []rune) string { return string(g) })
		assert.Equal(t, []string{"a", "", "b"}, slices.Collect(groups))
	})

	r.MustRegister("unique removes adjacent duplicates", func(t *scenario.T) {
		got := seqs.Unique(seqs.Of(1, 1, 2, 2, 1, 3, 3))
		assert.Equal(t, []int{1, 2, 1, 3}, slices.Collect(got))
	})

	r.MustRegister("sliding windows", func(t *scenario.T) {
		got := slices.Collect(seqs.Sliding(seqs.Of(1, 2, 3, 4), 2))
		assert.Equal(t, [][]int{{1, 2}, {2, 3}, {3, 4}}, got)
	})

	r.MustRegister("chunk leaves a short final group", func(t *scenario.T) {
		got := slices.Collect(seqs.Chunk(seqs.Range(1, 6, 1), 2))
		assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, got)
	})

	r.MustRegister("cartesian product", func(t *scenario.T) {
		got := seqs.Map(seqs.CartesianProduct(seqs.Of(1, 2), seqs.Runes("ab")), func(p seqs.Pair[int, rune]) string {
			return seqs.Format(seqs.Of[any](p.V1, string(p.V2)), "")
		})
		assert.Equal(t, []string{"1a", "1b", "2a", "2b"}, slices.Collect(got))

		bits := slices.Collect(seqs.CartesianProductN(seqs.Of(0, 1), seqs.Of(0, 1)))
		assert.Equal(t, [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, bits)
	})

	r.MustRegister("tokenize", func(t *scenario.T) {
		got := slices.Collect(seqs.Tokenize("feel the  force", wordPattern))
		assert.Equal(t, []string{"feel", "the", "force"}, got)
	})

	r.MustRegister("intersperse", func(t *scenario.T) {
		assert.Equal(t, []int{1, 0, 2, 0, 3}, slices.Collect(seqs.Intersperse(seqs.Of(1, 2, 3), 0)))
	})
}
