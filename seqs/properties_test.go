package seqs_test

import (
	"slices"
	"testing"

	"github.com/go-softwarelab/common/pkg/seq"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"rangeplay/seqs"
)

func properties(t *testing.T) *gopter.Properties {
	t.Helper()
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	return gopter.NewProperties(params)
}

func TestLaws(t *testing.T) {
	props := properties(t)
	ints := gen.SliceOf(gen.IntRange(-50, 50))

	props.Property("filter never grows and keeps only matches", prop.ForAll(
		func(xs []int, pivot int) bool {
			pred := func(v int) bool { return v > pivot }
			out := slices.Collect(seqs.Filter(slices.Values(xs), pred))
			return len(out) <= len(xs) && seqs.All(slices.Values(out), pred)
		},
		ints, gen.IntRange(-50, 50),
	))

	props.Property("take(n) ++ drop(n) == s", prop.ForAll(
		func(xs []int, n int) bool {
			n = n % (len(xs) + 1)
			s := slices.Values(xs)
			return seqs.Equal(s, seqs.Concat(seqs.Take(s, n), seqs.Drop(s, n)))
		},
		ints, gen.IntRange(0, 100),
	))

	props.Property("take beyond length returns everything", prop.ForAll(
		func(xs []int, extra int) bool {
			s := slices.Values(xs)
			return seqs.Equal(s, seqs.Take(s, len(xs)+extra)) && seqs.Count(seqs.Take(s, 0)) == 0
		},
		ints, gen.IntRange(0, 10),
	))

	props.Property("reverse is an involution", prop.ForAll(
		func(xs []int) bool {
			s := slices.Values(xs)
			return seqs.Equal(s, seqs.Reverse(seqs.Reverse(s)))
		},
		ints,
	))

	props.Property("stateless pipelines materialize identically", prop.ForAll(
		func(xs []int) bool {
			p := seqs.PartialSum(seqs.Map(slices.Values(xs), func(v int) int { return v * 3 }), func(a, b int) int { return a + b })
			return slices.Equal(slices.Collect(p), slices.Collect(p))
		},
		ints,
	))

	props.Property("chunks concatenate back and only the last may be short", prop.ForAll(
		func(xs []int, k int) bool {
			chunks := slices.Collect(seqs.Chunk(slices.Values(xs), k))
			for i, c := range chunks {
				if len(c) == 0 || len(c) > k || (i < len(chunks)-1 && len(c) != k) {
					return false
				}
			}
			return slices.Equal(xs, slices.Collect(seqs.FlattenSlices(slices.Values(chunks))))
		},
		ints, gen.IntRange(1, 7),
	))

	props.Property("exclusive scan is partial sum shifted by the seed", prop.ForAll(
		func(xs []int) bool {
			add := func(a, b int) int { return a + b }
			s := slices.Values(xs)
			inclusive := slices.Collect(seqs.PartialSum(s, add))
			exclusive := slices.Collect(seqs.ExclusiveScan(s, 0, add))
			if len(exclusive) != len(xs) {
				return false
			}
			for i := 1; i < len(exclusive); i++ {
				if exclusive[i] != inclusive[i-1] {
					return false
				}
			}
			return true
		},
		ints,
	))

	props.TestingRun(t)
}

func TestSetLaws(t *testing.T) {
	props := properties(t)
	// small range so that runs of duplicates show up often
	sets := gen.SliceOf(gen.IntRange(0, 20))

	props.Property("union size is |a| + |b| - |a∩b|", prop.ForAll(
		func(a, b []int) bool {
			a, b = sorted(a), sorted(b)
			x, y := slices.Values(a), slices.Values(b)
			union := seqs.Count(seqs.SetUnion(x, y))
			inter := seqs.Count(seqs.SetIntersection(x, y))
			return union == len(a)+len(b)-inter
		},
		sets, sets,
	))

	props.Property("difference and intersection partition a", prop.ForAll(
		func(a, b []int) bool {
			a, b = sorted(a), sorted(b)
			x, y := slices.Values(a), slices.Values(b)
			parts := slices.Collect(seqs.Merge(seqs.SetDifference(x, y), seqs.SetIntersection(x, y)))
			return slices.Equal(a, parts)
		},
		sets, sets,
	))

	props.Property("set outputs stay sorted", prop.ForAll(
		func(a, b []int) bool {
			a, b = sorted(a), sorted(b)
			x, y := slices.Values(a), slices.Values(b)
			return slices.IsSorted(slices.Collect(seqs.SetUnion(x, y))) &&
				slices.IsSorted(slices.Collect(seqs.SetSymmetricDifference(x, y)))
		},
		sets, sets,
	))

	props.TestingRun(t)
}

// TestAgreesWithCommonSeq checks the views against the independent implementations
// in go-softwarelab/common.
func TestAgreesWithCommonSeq(t *testing.T) {
	props := properties(t)
	ints := gen.SliceOf(gen.IntRange(-10, 10))

	props.Property("filter, take, skip", prop.ForAll(
		func(xs []int, n int) bool {
			s := slices.Values(xs)
			neg := func(v int) bool { return v < 0 }
			return seqs.Equal(seqs.Filter(s, neg), seq.Filter(s, neg)) &&
				seqs.Equal(seqs.Take(s, n), seq.Take(s, n)) &&
				seqs.Equal(seqs.Skip(s, n), seq.Skip(s, n))
		},
		ints, gen.IntRange(0, 30),
	))

	props.Property("take_while and drop_while", prop.ForAll(
		func(xs []int, pivot int) bool {
			s := slices.Values(xs)
			below := func(v int) bool { return v < pivot }
			return seqs.Equal(seqs.TakeWhile(s, below), seq.TakeWhile(s, below)) &&
				seqs.Equal(seqs.DropWhile(s, below), seq.SkipWhile(s, below))
		},
		ints, gen.IntRange(-10, 10),
	))

	props.Property("distinct and concat", prop.ForAll(
		func(xs, ys []int) bool {
			a, b := slices.Values(xs), slices.Values(ys)
			return seqs.Equal(seqs.Distinct(a), seq.Distinct(a)) &&
				seqs.Equal(seqs.Concat(a, b), seq.Concat(a, b)) &&
				seqs.Count(a) == seq.Count(a)
		},
		ints, ints,
	))

	props.Property("chunk", prop.ForAll(
		func(xs []int, k int) bool {
			ours := slices.Collect(seqs.Chunk(slices.Values(xs), k))
			var theirs [][]int
			for c := range seq.Chunk(slices.Values(xs), k) {
				theirs = append(theirs, slices.Collect(c))
			}
			return slices.EqualFunc(ours, theirs, slices.Equal[[]int])
		},
		ints, gen.IntRange(1, 6),
	))

	props.TestingRun(t)
}

func sorted(xs []int) []int {
	out := slices.Clone(xs)
	slices.Sort(out)
	return out
}
