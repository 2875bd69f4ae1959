package algo

import "github.com/bottlerocketlabs/similarity/result"

// TextScorer is the interface for all algorithms to implement
type TextScorer interface {
	Compare(a, b string) float64
}

// Algorithm scores pairs and batches of strings.
// Implementations are stateless and never return NaN.
type Algorithm interface {
	TextScorer
	// DefaultOrder is the natural ranking of the algorithm's scores
	DefaultOrder() result.Order
	// CompareOneToMany scores target against every candidate
	CompareOneToMany(target string, candidates []string, order result.Order) *result.Set
	// CompareMany scores every target against every candidate
	CompareMany(targets, candidates []string, order result.Order) *result.Set
}
