package puzzles

import (
	"iter"
	"strconv"

	"rangeplay/seqs"
)

// HasUniqueDigits reports whether the decimal digits of i followed by those of i*i
// contain each of 1..9 exactly once and no zero. 567 qualifies: 567 321489.
func HasUniqueDigits(i int) bool {
	if i <= 0 {
		return false
	}
	digits := strconv.Itoa(i) + strconv.Itoa(i*i)
	if len(digits) != 9 {
		return false
	}
	var seen [10]bool
	return seqs.All(seqs.Runes(digits), func(r rune) bool {
		d := r - '0'
		if d == 0 || seen[d] {
			return false
		}
		seen[d] = true
		return true
	})
}

// UniqueDigitSquares yields every i in [lo, hi] for which HasUniqueDigits holds.
func UniqueDigitSquares(lo, hi int) iter.Seq[int] {
	return seqs.Filter(seqs.Range(lo, hi+1, 1), HasUniqueDigits)
}
