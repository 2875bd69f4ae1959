// Package result collects scored string pairs and ranks them.
package result

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotFound is returned when a target has no recorded matches
var ErrNotFound = errors.New("result: target not found")

// Order decides which end of the score range is better
type Order int

const (
	// Default asks the caller (usually an algorithm) to pick its natural order
	Default Order = iota
	// Ascending ranks smaller scores first, as for distances
	Ascending
	// Descending ranks larger scores first, as for similarities
	Descending
)

func (o Order) String() string {
	switch o {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "default"
	}
}

// ParseOrder reads an Order from its String form. An empty string is Default.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "", "default":
		return Default, nil
	case "ascending", "asc":
		return Ascending, nil
	case "descending", "desc":
		return Descending, nil
	}
	return Default, fmt.Errorf("result: unknown order %q", s)
}

// Better reports whether score a is strictly better than b under o.
// Default behaves as Descending.
func (o Order) Better(a, b float64) bool {
	if o == Ascending {
		return a < b
	}
	return a > b
}

// Match is one scored comparison against a fixed target
type Match struct {
	Candidate string
	Score     float64
}

// Matches can be sorted by Score with byOrder
type Matches []Match

type byOrder struct {
	Matches
	order Order
}

func (m Matches) Len() int      { return len(m) }
func (m Matches) Swap(x, y int) { m[x], m[y] = m[y], m[x] }

func (b byOrder) Less(x, y int) bool { return b.order.Better(b.Matches[x].Score, b.Matches[y].Score) }

// Set holds every match recorded for each target during one comparison session.
// It is not safe for concurrent use.
type Set struct {
	order   Order
	targets []string
	matches map[string]Matches
}

// New creates an empty Set ranking by order. Default is treated as Descending.
func New(order Order) *Set {
	if order == Default {
		order = Descending
	}
	return &Set{
		order:   order,
		matches: make(map[string]Matches),
	}
}

// Order returns the ranking direction fixed at construction
func (s *Set) Order() Order {
	return s.order
}

// Add records a match for target, keeping duplicates as separate entries
func (s *Set) Add(target, candidate string, score float64) {
	m, ok := s.matches[target]
	if !ok {
		s.targets = append(s.targets, target)
	}
	s.matches[target] = append(m, Match{Candidate: candidate, Score: score})
}

// Targets returns the recorded targets in the order they were first added
func (s *Set) Targets() []string {
	out := make([]string, len(s.targets))
	copy(out, s.targets)
	return out
}

// Len is the number of distinct targets
func (s *Set) Len() int {
	return len(s.targets)
}

// BestMatches ranks the matches of every target and returns the first limit
// of each. A limit of zero or less returns all of them.
func (s *Set) BestMatches(limit int) map[string]Matches {
	out := make(map[string]Matches, len(s.targets))
	for _, target := range s.targets {
		m, ok := s.matches[target]
		if !ok {
			panic(fmt.Errorf("%w: %q listed but never stored", ErrNotFound, target))
		}
		out[target] = s.rank(m, limit)
	}
	return out
}

// BestMatch returns the single best match of every target
func (s *Set) BestMatch() map[string]Match {
	out := make(map[string]Match, len(s.targets))
	for target, m := range s.BestMatches(1) {
		out[target] = m[0]
	}
	return out
}

// BestMatchesFor ranks the matches of one target
func (s *Set) BestMatchesFor(target string, limit int) (Matches, error) {
	m, ok := s.matches[target]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, target)
	}
	return s.rank(m, limit), nil
}

// BestMatchFor returns the best match of one target
func (s *Set) BestMatchFor(target string) (Match, error) {
	m, err := s.BestMatchesFor(target, 1)
	if err != nil {
		return Match{}, err
	}
	return m[0], nil
}

// rank sorts m in place and returns a copy of its head. The sort is stable so
// a match only moves ahead of another when it is strictly better.
func (s *Set) rank(m Matches, limit int) Matches {
	sort.Stable(byOrder{Matches: m, order: s.order})
	if limit <= 0 || limit > len(m) {
		limit = len(m)
	}
	out := make(Matches, limit)
	copy(out, m[:limit])
	return out
}
