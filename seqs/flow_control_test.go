package seqs_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"rangeplay/seqs"
)

func TestTake(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		n    int
		want []int
	}{
		{"Zero", []int{1, 2, 3}, 0, nil},
		{"Negative", []int{1, 2, 3}, -1, nil},
		{"Prefix", []int{1, 2, 3}, 2, []int{1, 2}},
		{"Exact", []int{1, 2, 3}, 3, []int{1, 2, 3}},
		{"BeyondLength", []int{1, 2, 3}, 10, []int{1, 2, 3}},
		{"EmptyInput", nil, 3, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slices.Collect(seqs.Take(slices.Values(tt.in), tt.n)))
		})
	}
}

func TestSkip(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		n    int
		want []int
	}{
		{"Zero", []int{1, 2, 3}, 0, []int{1, 2, 3}},
		{"Suffix", []int{1, 2, 3}, 1, []int{2, 3}},
		{"All", []int{1, 2, 3}, 3, nil},
		{"BeyondLength", []int{1, 2, 3}, 5, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slices.Collect(seqs.Skip(slices.Values(tt.in), tt.n)))
			assert.Equal(t, tt.want, slices.Collect(seqs.Drop(slices.Values(tt.in), tt.n)))
		})
	}
}

func TestTakeWhileDropWhile(t *testing.T) {
	small := func(v int) bool { return v < 3 }
	in := seqs.Of(1, 2, 3, 1, 2)

	assert.Equal(t, []int{1, 2}, slices.Collect(seqs.TakeWhile(in, small)))
	// only the prefix is dropped; later small values stay
	assert.Equal(t, []int{3, 1, 2}, slices.Collect(seqs.DropWhile(in, small)))

	assert.Empty(t, slices.Collect(seqs.TakeWhile(seqs.Empty[int](), small)))
	assert.Empty(t, slices.Collect(seqs.DropWhile(seqs.Of(1, 2), small)))
}

func TestTailAndStride(t *testing.T) {
	assert.Equal(t, []int{2, 3}, slices.Collect(seqs.Tail(seqs.Of(1, 2, 3))))
	assert.Empty(t, slices.Collect(seqs.Tail(seqs.Empty[int]())))

	assert.Equal(t, []int{0, 2, 4}, slices.Collect(seqs.Stride(seqs.Range(0, 6, 1), 2)))
	assert.Empty(t, slices.Collect(seqs.Stride(seqs.Of(1, 2), 0)))
}

func TestTakeLastDropLast(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		n        int
		takeLast []int
		dropLast []int
	}{
		{"Middle", []int{1, 2, 3, 4, 5}, 2, []int{4, 5}, []int{1, 2, 3}},
		{"Zero", []int{1, 2, 3}, 0, nil, []int{1, 2, 3}},
		{"Negative", []int{1, 2, 3}, -1, nil, []int{1, 2, 3}},
		{"Exact", []int{1, 2, 3}, 3, []int{1, 2, 3}, nil},
		{"Larger", []int{1, 2}, 5, []int{1, 2}, nil},
		{"Empty", nil, 2, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := slices.Values(tt.input)
			assert.Equal(t, tt.takeLast, slices.Collect(seqs.TakeLast(in, tt.n)))
			assert.Equal(t, tt.dropLast, slices.Collect(seqs.DropLast(in, tt.n)))
		})
	}

	// DropLast lags n elements behind, so it works on an unbounded source
	lagged := seqs.DropLast(seqs.Iota(0).Unbounded(), 3)
	assert.Equal(t, []int{0, 1, 2, 3}, slices.Collect(seqs.Take(lagged, 4)))
}
