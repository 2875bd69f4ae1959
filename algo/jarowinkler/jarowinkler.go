// Package jarowinkler implements Jaro similarity with the Winkler prefix boost.
package jarowinkler

import (
	"github.com/bottlerocketlabs/similarity/algo"
	"github.com/bottlerocketlabs/similarity/algo/jaro"
	"github.com/bottlerocketlabs/similarity/result"
)

// JaroWinkler raises the Jaro score of strings sharing a common prefix.
// The boost applies only when the Jaro score is above Threshold and covers at
// most PrefixLength runes, each worth Scale of the remaining distance to 1.
type JaroWinkler struct {
	Threshold    float64
	Scale        float64
	PrefixLength int
}

var _ algo.Algorithm = JaroWinkler{}

// New returns the usual parameters: threshold 0.7, scale 0.1, prefix of 4
func New() JaroWinkler {
	return JaroWinkler{
		Threshold:    0.7,
		Scale:        0.1,
		PrefixLength: 4,
	}
}

// Compare returns the boosted similarity of a and b in [0,1]
func (jw JaroWinkler) Compare(a, b string) float64 {
	j := jaro.Similarity(a, b)
	if j <= jw.Threshold || jw.Scale <= 0 {
		return j
	}
	prefix := commonPrefix([]rune(a), []rune(b), jw.PrefixLength)
	boosted := j + float64(prefix)*jw.Scale*(1-j)
	if boosted > 1 {
		return 1
	}
	return boosted
}

func commonPrefix(a, b []rune, limit int) int {
	n := min(len(a), len(b), limit)
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return max(n, 0)
}

// DefaultOrder is descending: higher similarity is better
func (JaroWinkler) DefaultOrder() result.Order {
	return result.Descending
}

// CompareOneToMany scores target against every candidate
func (jw JaroWinkler) CompareOneToMany(target string, candidates []string, order result.Order) *result.Set {
	return algo.OneToMany(jw, jw.DefaultOrder(), target, candidates, order)
}

// CompareMany scores every target against every candidate
func (jw JaroWinkler) CompareMany(targets, candidates []string, order result.Order) *result.Set {
	return algo.Many(jw, jw.DefaultOrder(), targets, candidates, order)
}
