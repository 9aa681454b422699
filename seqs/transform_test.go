package seqs_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/go-softwarelab/common/pkg/types"
	"github.com/stretchr/testify/assert"

	"rangeplay/seqs"
)

func TestZip(t *testing.T) {
	sum := seqs.ZipWith(seqs.Of(1, 3, 5), seqs.Of(2, 4, 6), func(a, b int) int { return a + b })
	assert.Equal(t, []int{3, 7, 11}, slices.Collect(sum))

	pairs := slices.Collect(seqs.Zip(seqs.Of("a", "b", "c"), seqs.Range(0, 2, 1)))
	assert.Equal(t, []seqs.Pair[string, int]{{V1: "a", V2: 0}, {V1: "b", V2: 1}}, pairs)

	triples := slices.Collect(seqs.Zip3(seqs.Of(1, 2, 3), seqs.Of("x", "y", "z"), seqs.Of(true, false)))
	assert.Equal(t, []types.Tuple3[int, string, bool]{
		types.NewTuple3(1, "x", true),
		types.NewTuple3(2, "y", false),
	}, triples)

	assert.Empty(t, slices.Collect(seqs.Zip(seqs.Empty[int](), seqs.Of(1))))
}

func TestZipN(t *testing.T) {
	tests := []struct {
		name   string
		inputs [][]int
		want   [][]int
	}{
		{"Three", [][]int{{1, 2, 3}, {10, 20, 30}, {100, 200, 300}}, [][]int{{1, 10, 100}, {2, 20, 200}, {3, 30, 300}}},
		{"StopsAtShortest", [][]int{{1, 2, 3}, {10}, {100, 200}}, [][]int{{1, 10, 100}}},
		{"Single", [][]int{{1, 2}}, [][]int{{1}, {2}}},
		{"OneEmpty", [][]int{{1, 2}, {}}, nil},
		{"NoInputs", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inputs := make([]iter.Seq[int], len(tt.inputs))
			for i, in := range tt.inputs {
				inputs[i] = slices.Values(in)
			}
			assert.Equal(t, tt.want, slices.Collect(seqs.ZipN(inputs...)))
		})
	}

	// rows are fresh and unbounded inputs are fine under a bound
	rows := slices.Collect(seqs.Take(seqs.ZipN(seqs.Iota(0).Unbounded(), seqs.Iota(5).Unbounded()), 2))
	rows[0][0] = 99
	assert.Equal(t, [][]int{{99, 5}, {1, 6}}, rows)
}

func TestZipLongest(t *testing.T) {
	got := slices.Collect(seqs.ZipLongest(seqs.Of(1, 2, 3), seqs.Of("a"), 0, "-"))
	assert.Equal(t, []seqs.Pair[int, string]{
		{V1: 1, V2: "a"},
		{V1: 2, V2: "-"},
		{V1: 3, V2: "-"},
	}, got)
}

func TestEnumerate(t *testing.T) {
	var idx []int
	var vals []string
	for i, v := range seqs.Enumerate(seqs.Of("x", "y")) {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	assert.Equal(t, []int{0, 1}, idx)
	assert.Equal(t, []string{"x", "y"}, vals)
}

func TestFlatten(t *testing.T) {
	nested := seqs.Of(seqs.Of(1), seqs.Empty[int](), seqs.Of(2, 3))
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(seqs.Flatten(nested)))

	chunks := seqs.Chunk(seqs.Range(0, 5, 1), 2)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, slices.Collect(seqs.FlattenSlices(chunks)))

	spread := seqs.FlatMap(seqs.Of("ab", "", "c"), seqs.Runes)
	assert.Equal(t, "abc", seqs.String(spread))

	assert.Equal(t, []int{1, 2, 3}, slices.Collect(seqs.Concat(seqs.Of(1), seqs.Of(2, 3))))
	assert.Equal(t, []string{"a", ",", "b"}, slices.Collect(seqs.Intersperse(seqs.Of("a", "b"), ",")))
}

func TestChunk(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		size int
		want [][]int
	}{
		{"Even", []int{1, 2, 3, 4}, 2, [][]int{{1, 2}, {3, 4}}},
		{"ShortTail", []int{1, 2, 3, 4, 5}, 2, [][]int{{1, 2}, {3, 4}, {5}}},
		{"Larger", []int{1, 2}, 5, [][]int{{1, 2}}},
		{"Empty", nil, 3, nil},
		{"ZeroSize", []int{1, 2}, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slices.Collect(seqs.Chunk(slices.Values(tt.in), tt.size)))
		})
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name       string
		size, step int
		want       [][]int
	}{
		{"Sliding", 3, 1, [][]int{{1, 2, 3}, {2, 3, 4}, {3, 4, 5}}},
		{"Overlap", 3, 2, [][]int{{1, 2, 3}, {3, 4, 5}}},
		{"Tumbling", 2, 2, [][]int{{1, 2}, {3, 4}}},
		{"Gapped", 1, 2, [][]int{{1}, {3}, {5}}},
		{"TooLarge", 6, 1, nil},
		{"Invalid", 0, 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(seqs.Window(seqs.Range(1, 6, 1), tt.size, tt.step))
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, [][]int{{1, 2}, {2, 3}}, slices.Collect(seqs.Sliding(seqs.Of(1, 2, 3), 2)))
}

func TestUniqueAndDistinct(t *testing.T) {
	in := seqs.Of(1, 1, 2, 1, 1, 3)
	assert.Equal(t, []int{1, 2, 1, 3}, slices.Collect(seqs.Unique(in)))
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(seqs.Distinct(in)))

	sameParity := func(a, b int) bool { return a%2 == b%2 }
	assert.Equal(t, []int{1, 2, 1}, slices.Collect(seqs.UniqueFunc(seqs.Of(1, 3, 2, 4, 1), sameParity)))
}

func TestScans(t *testing.T) {
	add := func(a, b int) int { return a + b }
	in := seqs.Of(1, 2, 3, 4)

	assert.Equal(t, []int{1, 3, 6, 10}, slices.Collect(seqs.PartialSum(in, add)))
	assert.Equal(t, []int{0, 1, 3, 6}, slices.Collect(seqs.ExclusiveScan(in, 0, add)))
	assert.Equal(t, []int{11, 13, 16, 20}, slices.Collect(seqs.Scan(in, 10, add)))

	assert.Empty(t, slices.Collect(seqs.PartialSum(seqs.Empty[int](), add)))
	assert.Empty(t, slices.Collect(seqs.ExclusiveScan(seqs.Empty[int](), 0, add)))
}

func TestReverse(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, slices.Collect(seqs.Reverse(seqs.Of(1, 2, 3))))
	assert.Empty(t, slices.Collect(seqs.Reverse(seqs.Empty[int]())))
	assert.Equal(t, []string{"b", "a"}, slices.Collect(seqs.Backward([]string{"a", "b"})))

	// buffering happens on pull, not on construction
	pulled := 0
	rev := seqs.Reverse(seqs.Peek(seqs.Of(1, 2), func(int) { pulled++ }))
	assert.Zero(t, pulled)
	first, ok := seqs.First(rev)
	assert.True(t, ok)
	assert.Equal(t, 2, first)
	assert.Equal(t, 2, pulled)
}

func TestSplit(t *testing.T) {
	str := func(groups iter.Seq[[]rune]) []string {
		return slices.Collect(seqs.Map(groups, func(g []rune) string { return string(g) }))
	}

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"Words", "feel_the_force", []string{"feel", "the", "force"}},
		{"Consecutive", "a__b", []string{"a", "", "b"}},
		{"Leading", "_a", []string{"", "a"}},
		{"Trailing", "a_", []string{"a"}},
		{"OnlyDelimiter", "_", []string{""}},
		{"NoDelimiter", "abc", []string{"abc"}},
		{"Empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, str(seqs.Split(seqs.Runes(tt.in), '_')))
		})
	}
}
