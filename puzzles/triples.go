package puzzles

import (
	"iter"

	"github.com/go-softwarelab/common/pkg/types"

	"rangeplay/seqs"
)

// Triple is a Pythagorean triple (A, B, C) with A <= B < C and A²+B² = C².
type Triple = types.Tuple3[int, int, int]

func isPythagorean(t Triple) bool {
	return t.A <= t.B && t.B < t.C && t.A*t.A+t.B*t.B == t.C*t.C
}

// PythagoreanTriples searches the cube [1,n]³ by filtering its full cartesian product.
// Triples come out ordered by A, then B, then C.
func PythagoreanTriples(n int) iter.Seq[Triple] {
	side := seqs.Range(1, n+1, 1)
	return seqs.Filter(seqs.CartesianProduct3(side, side, side), isPythagorean)
}

// PythagoreanTriplesNested yields the same triples as PythagoreanTriples, in the
// same order, but bounds each loop by the previous one instead of filtering the cube.
func PythagoreanTriplesNested(n int) iter.Seq[Triple] {
	return seqs.FlatMap(seqs.Range(1, n+1, 1), func(a int) iter.Seq[Triple] {
		return seqs.FlatMap(seqs.Range(a, n+1, 1), func(b int) iter.Seq[Triple] {
			return seqs.Filter(
				seqs.Map(seqs.Range(b+1, n+1, 1), func(c int) Triple {
					return types.NewTuple3(a, b, c)
				}),
				isPythagorean,
			)
		})
	})
}

// PythagoreanTriplesByHypotenuse enumerates every triple, ordered by C, then A.
func PythagoreanTriplesByHypotenuse() seqs.Infinite[Triple] {
	return seqs.Infinite[Triple](
		seqs.FlatMap(seqs.Iota(1).Unbounded(), func(c int) iter.Seq[Triple] {
			return seqs.FlatMap(seqs.Range(1, c, 1), func(a int) iter.Seq[Triple] {
				return seqs.Filter(
					seqs.Map(seqs.Range(a, c, 1), func(b int) Triple {
						return types.NewTuple3(a, b, c)
					}),
					isPythagorean,
				)
			})
		}),
	)
}
