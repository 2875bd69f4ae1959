// Package levenshtein implements the Levenshtein edit distance.
//
// Scores are distances: 0 for equal strings, growing with every
// insertion, deletion or substitution needed. Results rank ascending.
//
// Edits are counted in runes. Invalid UTF-8 bytes decode to U+FFFD, so any
// two of them count as the same rune.
package levenshtein

import (
	"github.com/bottlerocketlabs/similarity/algo"
	"github.com/bottlerocketlabs/similarity/result"
)

// Levenshtein counts single rune edits between two strings
type Levenshtein struct{}

var _ algo.Algorithm = Levenshtein{}

// Distance returns the number of rune insertions, deletions and substitutions
// needed to turn a into b
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}
	// keep the row as short as possible
	if len(rb) > len(ra) {
		ra, rb = rb, ra
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,
				curr[j-1]+1,
				prev[j-1]+cost,
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// Compare returns Distance(a, b)
func (Levenshtein) Compare(a, b string) float64 {
	return float64(Distance(a, b))
}

// DefaultOrder is ascending: fewer edits is better
func (Levenshtein) DefaultOrder() result.Order {
	return result.Ascending
}

// CompareOneToMany scores target against every candidate
func (l Levenshtein) CompareOneToMany(target string, candidates []string, order result.Order) *result.Set {
	return algo.OneToMany(l, l.DefaultOrder(), target, candidates, order)
}

// CompareMany scores every target against every candidate
func (l Levenshtein) CompareMany(targets, candidates []string, order result.Order) *result.Set {
	return algo.Many(l, l.DefaultOrder(), targets, candidates, order)
}
