package algo

import "github.com/bottlerocketlabs/similarity/result"

// Resolve replaces result.Default with def
func Resolve(order, def result.Order) result.Order {
	if order == result.Default {
		return def
	}
	return order
}

// OneToMany records scorer.Compare(target, c) for each candidate, in order
func OneToMany(scorer TextScorer, def result.Order, target string, candidates []string, order result.Order) *result.Set {
	set := result.New(Resolve(order, def))
	for _, c := range candidates {
		set.Add(target, c, scorer.Compare(target, c))
	}
	return set
}

// Many records scorer.Compare(t, c) for every target and candidate.
// Candidates are the outer loop so each target sees them in input order.
func Many(scorer TextScorer, def result.Order, targets, candidates []string, order result.Order) *result.Set {
	set := result.New(Resolve(order, def))
	for _, c := range candidates {
		for _, t := range targets {
			set.Add(t, c, scorer.Compare(t, c))
		}
	}
	return set
}
