package similarity

import (
	"testing"

	"github.com/bottlerocketlabs/similarity/algo/dice"
	"github.com/bottlerocketlabs/similarity/algo/jaro"
	"github.com/bottlerocketlabs/similarity/algo/jarowinkler"
	"github.com/bottlerocketlabs/similarity/algo/levenshtein"
	"github.com/bottlerocketlabs/similarity/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		expected any
		order    result.Order
	}{
		{EditDistance, levenshtein.Levenshtein{}, result.Ascending},
		{Levenshtein, levenshtein.Levenshtein{}, result.Ascending},
		{SimilarityRatio, jaro.Jaro{}, result.Descending},
		{JaroSimilarity, jaro.Jaro{}, result.Descending},
		{BoostedPrefix, jarowinkler.New(), result.Descending},
		{JaroWinkler, jarowinkler.New(), result.Descending},
		{BigramOverlap, dice.Dice{}, result.Descending},
		{DiceCoefficient, dice.Dice{}, result.Descending},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, err := Lookup(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, a)
			assert.Equal(t, tc.order, a.DefaultOrder())
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	for _, name := range []string{"foo", "", "Levenshtein", "cosine"} {
		t.Run(name, func(t *testing.T) {
			a, err := Lookup(name)
			assert.Nil(t, a)
			assert.ErrorIs(t, err, ErrUnknownAlgorithm)
		})
	}

	_, err := Lookup("foo")
	assert.EqualError(t, err, `unknown algorithm: "foo"`)
}

func TestNamesAreAllKnown(t *testing.T) {
	names := Names()
	assert.Len(t, names, 4)
	for _, name := range names {
		_, err := Lookup(name)
		assert.NoError(t, err, name)
	}
}

func TestScenarios(t *testing.T) {
	lev, err := Lookup(EditDistance)
	require.NoError(t, err)
	assert.Equal(t, 3.0, lev.Compare("kitten", "sitting"))

	best := lev.CompareOneToMany("test", []string{"test", "tent", "toast"}, result.Ascending).BestMatch()
	assert.Equal(t, map[string]result.Match{"test": {Candidate: "test", Score: 0}}, best)

	ratio, err := Lookup(SimilarityRatio)
	require.NoError(t, err)
	assert.InDelta(t, 0.944, ratio.Compare("MARTHA", "MARHTA"), 1e-3)

	overlap, err := Lookup(BigramOverlap)
	require.NoError(t, err)
	assert.Equal(t, 0.25, overlap.Compare("night", "nacht"))
}

func TestIdentityAcrossAlgorithms(t *testing.T) {
	words := []string{"ab", "kitten", "MARTHA", "日本語", "aaaa"}
	for _, name := range Names() {
		a, err := Lookup(name)
		require.NoError(t, err)
		want := 1.0
		if a.DefaultOrder() == result.Ascending {
			want = 0
		}
		for _, w := range words {
			assert.Equal(t, want, a.Compare(w, w), "%s(%q, %q)", name, w, w)
		}
	}
}

func TestBatchAgreesWithCompare(t *testing.T) {
	targets := []string{"", "a", "night", "MARTHA"}
	candidates := []string{"", "a", "nacht", "MARHTA", "night"}

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			a, err := Lookup(name)
			require.NoError(t, err)

			all := a.CompareMany(targets, candidates, result.Default).BestMatches(0)
			require.Len(t, all, len(targets))
			for _, target := range targets {
				require.Len(t, all[target], len(candidates))
				for _, m := range all[target] {
					assert.Equal(t, a.Compare(target, m.Candidate), m.Score)
				}

				one := a.CompareOneToMany(target, candidates, result.Default).BestMatches(0)
				assert.Equal(t, all[target], one[target])
			}
		})
	}
}
