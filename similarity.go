// Package similarity scores strings against each other with interchangeable
// algorithms and ranks the results.
//
// Algorithms are looked up by name:
//
//	a, err := similarity.Lookup("jaro-winkler")
//	if err != nil {
//		return err
//	}
//	best := a.CompareOneToMany("aple", []string{"apple", "maple", "ample"}, result.Default).BestMatch()
//
// Similarity algorithms rank descending by default, edit distance ranks
// ascending. Pass result.Ascending or result.Descending to override.
//
// All algorithms compare runes. Invalid UTF-8 bytes decode to U+FFFD and so
// compare equal to each other.
package similarity

import (
	"errors"
	"fmt"

	"github.com/bottlerocketlabs/similarity/algo"
	"github.com/bottlerocketlabs/similarity/algo/dice"
	"github.com/bottlerocketlabs/similarity/algo/jaro"
	"github.com/bottlerocketlabs/similarity/algo/jarowinkler"
	"github.com/bottlerocketlabs/similarity/algo/levenshtein"
)

// ErrUnknownAlgorithm is returned by Lookup for names it does not know
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithm names
const (
	EditDistance    = "edit-distance"
	SimilarityRatio = "similarity-ratio"
	BoostedPrefix   = "boosted-prefix"
	BigramOverlap   = "bigram-overlap"

	Levenshtein     = "levenshtein"
	JaroSimilarity  = "jaro-similarity"
	JaroWinkler     = "jaro-winkler"
	DiceCoefficient = "dice-coefficient"
)

type algoMaker func() algo.Algorithm

var algoMakers = map[string]algoMaker{
	EditDistance:    func() algo.Algorithm { return levenshtein.Levenshtein{} },
	SimilarityRatio: func() algo.Algorithm { return jaro.Jaro{} },
	BoostedPrefix:   func() algo.Algorithm { return jarowinkler.New() },
	BigramOverlap:   func() algo.Algorithm { return dice.Dice{} },
}

var aliases = map[string]string{
	Levenshtein:     EditDistance,
	JaroSimilarity:  SimilarityRatio,
	JaroWinkler:     BoostedPrefix,
	DiceCoefficient: BigramOverlap,
}

// Lookup returns a new instance of the named algorithm
func Lookup(name string) (algo.Algorithm, error) {
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	newAlgo, ok := algoMakers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return newAlgo(), nil
}

// Names lists the canonical algorithm names
func Names() []string {
	return []string{EditDistance, SimilarityRatio, BoostedPrefix, BigramOverlap}
}
