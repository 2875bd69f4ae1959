package algo

import (
	"testing"

	"github.com/bottlerocketlabs/similarity/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lengthDiff scores by the absolute difference in byte length and counts calls
type lengthDiff struct {
	calls [][2]string
}

func (l *lengthDiff) Compare(a, b string) float64 {
	l.calls = append(l.calls, [2]string{a, b})
	d := len(a) - len(b)
	if d < 0 {
		d = -d
	}
	return float64(d)
}

func TestResolve(t *testing.T) {
	assert.Equal(t, result.Ascending, Resolve(result.Default, result.Ascending))
	assert.Equal(t, result.Descending, Resolve(result.Descending, result.Ascending))
	assert.Equal(t, result.Ascending, Resolve(result.Ascending, result.Descending))
}

func TestOneToMany(t *testing.T) {
	scorer := &lengthDiff{}
	set := OneToMany(scorer, result.Ascending, "abc", []string{"abcdef", "ab", "abc"}, result.Default)

	assert.Equal(t, result.Ascending, set.Order())
	assert.Equal(t, []string{"abc"}, set.Targets())

	got := set.BestMatches(0)["abc"]
	assert.Equal(t, result.Matches{{Candidate: "abc", Score: 0}, {Candidate: "ab", Score: 1}, {Candidate: "abcdef", Score: 3}}, got)
	assert.Equal(t, [][2]string{{"abc", "abcdef"}, {"abc", "ab"}, {"abc", "abc"}}, scorer.calls)
}

func TestOneToManyOrderOverride(t *testing.T) {
	set := OneToMany(&lengthDiff{}, result.Ascending, "a", []string{"a", "aaaa"}, result.Descending)
	assert.Equal(t, result.Descending, set.Order())
	assert.Equal(t, "aaaa", set.BestMatch()["a"].Candidate)
}

func TestMany(t *testing.T) {
	scorer := &lengthDiff{}
	set := Many(scorer, result.Descending, []string{"x", "yyy"}, []string{"zz", "wwww"}, result.Default)

	assert.Equal(t, result.Descending, set.Order())
	assert.Equal(t, []string{"x", "yyy"}, set.Targets())
	assert.Equal(t, [][2]string{{"x", "zz"}, {"yyy", "zz"}, {"x", "wwww"}, {"yyy", "wwww"}}, scorer.calls)

	all := set.BestMatches(0)
	require.Len(t, all, 2)
	assert.Equal(t, result.Matches{{Candidate: "wwww", Score: 3}, {Candidate: "zz", Score: 1}}, all["x"])
	assert.Equal(t, result.Matches{{Candidate: "zz", Score: 1}, {Candidate: "wwww", Score: 1}}, all["yyy"])
}

func TestManyWithoutCandidates(t *testing.T) {
	set := Many(&lengthDiff{}, result.Descending, []string{"a", "b"}, nil, result.Default)
	assert.Equal(t, 0, set.Len())
	assert.Empty(t, set.BestMatch())
}
