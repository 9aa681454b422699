package puzzles

import (
	"iter"
	"slices"
	"unicode"

	"rangeplay/seqs"
)

type fibState = seqs.Pair[int, int]

func fibStep(s fibState) (int, fibState) {
	return s.V1, fibState{V1: s.V2, V2: s.V1 + s.V2}
}

// NewFibonacci returns a generator of 0, 1, 1, 2, 3, 5, ...
func NewFibonacci() *seqs.Generator[fibState, int] {
	return seqs.NewGenerator(fibState{V1: 0, V2: 1}, fibStep)
}

// Fibonacci is the Fibonacci sequence backed by a single generator.
// It is not restartable: a second traversal continues where the first stopped.
func Fibonacci() seqs.Infinite[int] {
	return NewFibonacci().Seq()
}

// FibonacciRestartable is the Fibonacci sequence with per-traversal state.
// Every traversal starts again from 0.
func FibonacciRestartable() seqs.Infinite[int] {
	pairs := seqs.Iterate(fibState{V1: 0, V2: 1}, func(s fibState) fibState {
		_, next := fibStep(s)
		return next
	})
	return seqs.MapInfinite(pairs, func(s fibState) int { return s.V1 })
}

// ParallelResistance returns the equivalent resistance of resistors wired in
// parallel: 1/R = 1/R1 + 1/R2 + ... No resistors gives +Inf.
func ParallelResistance(resistors ...float64) float64 {
	inverse := seqs.Map(slices.Values(resistors), func(r float64) float64 { return 1.0 / r })
	return 1.0 / seqs.Accumulate(inverse, 0.0, func(acc, v float64) float64 { return acc + v })
}

// BinaryToDecimal interprets bits, most significant first, as an unsigned number.
// {1,1,1,0} is 14.
func BinaryToDecimal(bits []uint8) uint {
	powers := seqs.Map(seqs.Range(0, len(bits), 1), func(x int) uint { return 1 << x })
	return seqs.InnerProductWith(
		seqs.Backward(bits),
		powers,
		uint(0),
		func(acc, v uint) uint { return acc + v },
		func(bit uint8, pow uint) uint { return uint(bit) * pow },
	)
}

// SnakeToCamel turns snake_case into CamelCase: every word between underscores
// gets an upper-case first letter and the underscores are dropped.
// Consecutive underscores contribute nothing.
func SnakeToCamel(s string) string {
	words := seqs.Split(seqs.Runes(s), '_')
	capitalized := seqs.Map(words, func(w []rune) iter.Seq[rune] {
		word := slices.Values(w)
		head := seqs.Map(seqs.Take(word, 1), unicode.ToUpper)
		return seqs.Concat(head, seqs.Tail(word))
	})
	return seqs.String(seqs.Flatten(capitalized))
}
