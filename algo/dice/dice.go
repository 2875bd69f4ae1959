// Package dice implements the Sørensen–Dice coefficient over rune bigrams.
//
// Invalid UTF-8 bytes decode to U+FFFD, so any two of them count as the
// same rune.
package dice

import (
	"slices"

	"github.com/bottlerocketlabs/similarity/algo"
	"github.com/bottlerocketlabs/similarity/result"
)

// Dice scores strings in [0,1] by the bigrams they share
type Dice struct{}

var _ algo.Algorithm = Dice{}

// Bigram is a pair of adjacent runes
type Bigram [2]rune

// Bigrams counts every pair of adjacent runes in s.
// Strings shorter than two runes have none.
func Bigrams(s string) map[Bigram]int {
	r := []rune(s)
	out := make(map[Bigram]int, max(len(r)-1, 0))
	for i := 0; i+1 < len(r); i++ {
		out[Bigram{r[i], r[i+1]}]++
	}
	return out
}

// Coefficient returns 2*shared / (bigrams(a) + bigrams(b)), counting repeated
// bigrams as many times as both strings contain them
func Coefficient(a, b string) float64 {
	if slices.Equal([]rune(a), []rune(b)) {
		return 1
	}
	ba, bb := Bigrams(a), Bigrams(b)
	total := 0
	for _, n := range ba {
		total += n
	}
	for _, n := range bb {
		total += n
	}
	if total == 0 {
		return 0
	}
	shared := 0
	for g, n := range ba {
		shared += min(n, bb[g])
	}
	return 2 * float64(shared) / float64(total)
}

// Compare returns Coefficient(a, b)
func (Dice) Compare(a, b string) float64 {
	return Coefficient(a, b)
}

// DefaultOrder is descending: more overlap is better
func (Dice) DefaultOrder() result.Order {
	return result.Descending
}

// CompareOneToMany scores target against every candidate
func (d Dice) CompareOneToMany(target string, candidates []string, order result.Order) *result.Set {
	return algo.OneToMany(d, d.DefaultOrder(), target, candidates, order)
}

// CompareMany scores every target against every candidate
func (d Dice) CompareMany(targets, candidates []string, order result.Order) *result.Set {
	return algo.Many(d, d.DefaultOrder(), targets, candidates, order)
}
