package puzzles

import (
	"slices"

	"rangeplay/seqs"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Caesar rotates every letter of s by shift positions in the cyclic a-z alphabet.
// Negative shifts rotate backwards. Runes outside a-z pass through unchanged.
func Caesar(s string, shift int) string {
	n := len(alphabet)
	shift = (shift%n + n) % n

	// shifted[i] is the image of alphabet[i]
	shifted := slices.Collect(seqs.Cycle(seqs.Runes(alphabet)).Skip(shift).Take(n))

	return seqs.String(seqs.Map(seqs.Runes(s), func(r rune) rune {
		if r < 'a' || r > 'z' {
			return r
		}
		return shifted[r-'a']
	}))
}
