package catalog

import (
	"slices"

	"github.com/go-softwarelab/common/pkg/types"
	"github.com/stretchr/testify/assert"

	"rangeplay/puzzles"
	"rangeplay/scenario"
)

func registerPuzzles(r *scenario.Registry) {
	r.MustRegister("caesar shift", func(t *scenario.T) {
		assert.Equal(t, "laawp", puzzles.Caesar("apple", 11))
		assert.Equal(t, "apple", puzzles.Caesar("laawp", -11))
	})

	r.MustRegister("pythagorean triples up to ten", func(t *scenario.T) {
		want := []puzzles.Triple{types.NewTuple3(3, 4, 5), types.NewTuple3(6, 8, 10)}
		assert.Equal(t, want, slices.Collect(puzzles.PythagoreanTriples(10)))
		assert.Equal(t, want, slices.Collect(puzzles.PythagoreanTriplesNested(10)))
	})

	r.MustRegister("pythagorean triples by hypotenuse", func(t *scenario.T) {
		got := slices.Collect(puzzles.PythagoreanTriplesByHypotenuse().Take(3))
		want := []puzzles.Triple{
			types.NewTuple3(3, 4, 5),
			types.NewTuple3(6, 8, 10),
			types.NewTuple3(5, 12, 13),
		}
		assert.Equal(t, want, got)
	})

	r.MustRegister("digits of i and i squared are unique", func(t *scenario.T) {
		assert.Equal(t, []int{567, 854}, slices.Collect(puzzles.UniqueDigitSquares(1, 1000)))
	})

	r.MustRegister("resistors in parallel", func(t *scenario.T) {
		assert.InDelta(t, 4.61538, puzzles.ParallelResistance(20, 10, 15), 1e-5)
	})

	r.MustRegister("binary to decimal", func(t *scenario.T) {
		assert.Equal(t, uint(14), puzzles.BinaryToDecimal([]uint8{1, 1, 1, 0}))
	})

	r.MustRegister("snake_case to CamelCase", func(t *scenario.T) {
		assert.Equal(t, "FeelTheForce", puzzles.SnakeToCamel("feel_the_force"))
	})
}
