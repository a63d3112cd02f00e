package rules

import (
	"fmt"
	"math/rand/v2"
)

// The wild pool is kept inside this house-edge band so a random table is
// never absurdly generous or punishing.
const (
	WildEdgeMin = 0.4
	WildEdgeMax = 0.8
)

// Entry is one labelled RuleSet the wild profile may draw
type Entry struct {
	Label string
	Rules RuleSet
}

// Pool is the candidate list for the wild profile
type Pool []Entry

// Validate checks every entry and the edge band
func (p Pool) Validate() error {
	if len(p) == 0 {
		return fmt.Errorf("%w: pool is empty", ErrInvalidPool)
	}
	seen := make(map[RuleSet]string, len(p))
	labels := make(map[string]bool, len(p))
	for _, e := range p {
		if e.Label == "" {
			return fmt.Errorf("%w: entry without a label", ErrInvalidPool)
		}
		if labels[e.Label] {
			return fmt.Errorf("%w: duplicate label %q", ErrInvalidPool, e.Label)
		}
		labels[e.Label] = true

		if err := e.Rules.Validate(); err != nil {
			return fmt.Errorf("%w: entry %q: %w", ErrInvalidPool, e.Label, err)
		}
		if edge := e.Rules.ApproximateHouseEdge(); edge < WildEdgeMin || edge > WildEdgeMax {
			return fmt.Errorf("%w: entry %q has house edge %.2f outside %.1f-%.1f", ErrInvalidPool, e.Label, edge, WildEdgeMin, WildEdgeMax)
		}
		if other, dup := seen[e.Rules]; dup {
			return fmt.Errorf("%w: entries %q and %q are the same rule set", ErrInvalidPool, other, e.Label)
		}
		seen[e.Rules] = e.Label
	}
	return nil
}

// DefaultWildPool returns the built-in wild candidates
func DefaultWildPool() Pool {
	doubleDeck := Standard()
	doubleDeck.DeckCount = 2
	doubleDeck.DealerHitsSoft17 = true

	surrenderH17 := Standard()
	surrenderH17.DealerHitsSoft17 = true
	surrenderH17.Surrender = true

	eightNoDAS := Standard()
	eightNoDAS.DeckCount = 8
	eightNoDAS.DoubleAfterSplit = false

	pitch := Standard()
	pitch.DeckCount = 1
	pitch.DealerHitsSoft17 = true
	pitch.DoubleRestrictedTotals = Totals(10, 11)
	pitch.DoubleAfterSplit = false
	pitch.MaxHandsAfterSplit = 2

	freeSplits := Standard()
	freeSplits.DealerHitsSoft17 = true
	freeSplits.FreeSplits = true
	freeSplits.DoubleRestrictedTotals = Totals(9, 10, 11)

	resplitAces := Standard()
	resplitAces.DeckCount = 4
	resplitAces.DealerHitsSoft17 = true
	resplitAces.ResplitAces = true

	return Pool{
		{Label: "Double Deck H17", Rules: doubleDeck},
		{Label: "Six Deck Surrender", Rules: surrenderH17},
		{Label: "Eight Deck No DAS", Rules: eightNoDAS},
		{Label: "Single Deck Pitch", Rules: pitch},
		{Label: "Free Split Shoe", Rules: freeSplits},
		{Label: "Four Deck Resplit Aces", Rules: resplitAces},
	}
}

// Selector draws wild RuleSets uniformly, never repeating the previous draw
// when the pool offers a choice.
type Selector struct {
	pool Pool
	rng  *rand.Rand
	last int
}

// NewSelector validates pool and returns a selector over a copy of it
func NewSelector(pool Pool, rng *rand.Rand) (*Selector, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: selector needs a random source", ErrInvalidPool)
	}
	if err := pool.Validate(); err != nil {
		return nil, err
	}
	cp := make(Pool, len(pool))
	copy(cp, pool)
	return &Selector{pool: cp, rng: rng, last: -1}, nil
}

// Next draws the next entry
func (s *Selector) Next() (string, RuleSet) {
	idx := 0
	switch {
	case len(s.pool) == 1:
	case s.last < 0:
		idx = s.rng.IntN(len(s.pool))
	default:
		// Draw from the pool minus the last pick, then shift past it.
		idx = s.rng.IntN(len(s.pool) - 1)
		if idx >= s.last {
			idx++
		}
	}
	s.last = idx
	e := s.pool[idx]
	return e.Label, e.Rules
}

// Last returns the most recent draw, if any
func (s *Selector) Last() (Entry, bool) {
	if s.last < 0 {
		return Entry{}, false
	}
	return s.pool[s.last], true
}

// Pool returns a copy of the candidates
func (s *Selector) Pool() Pool {
	cp := make(Pool, len(s.pool))
	copy(cp, s.pool)
	return cp
}
