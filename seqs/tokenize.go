package seqs

import (
	"iter"
	"regexp"
)

// Tokenize yields the successive non-overlapping matches of re in s.
// Match positions are computed over the whole of s on the first pull, so anchors
// and word boundaries see the full text. Empty matches are skipped.
func Tokenize(s string, re *regexp.Regexp) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, loc := range re.FindAllStringIndex(s, -1) {
			if loc[0] == loc[1] {
				continue
			}
			if !yield(s[loc[0]:loc[1]]) {
				return
			}
		}
	}
}
