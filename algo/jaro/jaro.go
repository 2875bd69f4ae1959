// Package jaro implements the Jaro similarity ratio.
//
// Strings are compared rune by rune. Invalid UTF-8 bytes decode to U+FFFD,
// so any two of them count as the same rune.
package jaro

import (
	"slices"

	"github.com/bottlerocketlabs/similarity/algo"
	"github.com/bottlerocketlabs/similarity/result"
)

// Jaro scores strings in [0,1] from matching runes and transpositions
type Jaro struct{}

var _ algo.Algorithm = Jaro{}

// Similarity returns the Jaro similarity of a and b.
// Identical strings score 1, including two empty strings.
func Similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if slices.Equal(ra, rb) {
		return 1
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	window := max(0, max(len(ra), len(rb))/2-1)

	matchedA := make([]bool, len(ra))
	matchedB := make([]bool, len(rb))
	matches := 0
	for i, r := range ra {
		lo := max(0, i-window)
		hi := min(len(rb), i+window+1)
		for j := lo; j < hi; j++ {
			if matchedB[j] || rb[j] != r {
				continue
			}
			matchedA[i] = true
			matchedB[j] = true
			matches++
			break
		}
	}
	if matches == 0 {
		return 0
	}

	// count matched runes that appear in a different order
	outOfOrder := 0
	j := 0
	for i, r := range ra {
		if !matchedA[i] {
			continue
		}
		for !matchedB[j] {
			j++
		}
		if r != rb[j] {
			outOfOrder++
		}
		j++
	}

	m := float64(matches)
	t := float64(outOfOrder) / 2
	return (m/float64(len(ra)) + m/float64(len(rb)) + (m-t)/m) / 3
}

// Compare returns Similarity(a, b)
func (Jaro) Compare(a, b string) float64 {
	return Similarity(a, b)
}

// DefaultOrder is descending: higher similarity is better
func (Jaro) DefaultOrder() result.Order {
	return result.Descending
}

// CompareOneToMany scores target against every candidate
func (j Jaro) CompareOneToMany(target string, candidates []string, order result.Order) *result.Set {
	return algo.OneToMany(j, j.DefaultOrder(), target, candidates, order)
}

// CompareMany scores every target against every candidate
func (j Jaro) CompareMany(targets, candidates []string, order result.Order) *result.Set {
	return algo.Many(j, j.DefaultOrder(), targets, candidates, order)
}
