// Package rules holds the house-rule variants a round is played under.
//
// A RuleSet is a comparable value; profiles are named RuleSets with cosmetic
// metadata, and the wild profile draws its RuleSet from a Selector each time
// its shoe is rebuilt.
package rules

import (
	"errors"
	"fmt"
	"math"
)

const (
	MinDecks = 1
	MaxDecks = 8
)

var (
	ErrInvalidRuleSet = errors.New("invalid rule set")
	ErrInvalidPool    = errors.New("invalid wild rule pool")
)

// RuleSet describes one playable variant
type RuleSet struct {
	DeckCount        int
	DealerHitsSoft17 bool

	// DoubleRestrictedTotals limits doubling to hands whose total is in the
	// set. Empty means any two-card hand may double.
	DoubleRestrictedTotals TotalSet
	DoubleAfterSplit       bool

	MaxHandsAfterSplit int
	ResplitAces        bool
	SplitAcesOneCard   bool

	Surrender      bool
	EarlySurrender bool

	BlackjackPayout      float64
	MinimumBetMultiplier int

	FreeDoubles bool
	FreeSplits  bool
}

// Standard returns the reference six-deck game the house-edge heuristic is
// anchored on.
func Standard() RuleSet {
	return RuleSet{
		DeckCount:            6,
		DoubleAfterSplit:     true,
		MaxHandsAfterSplit:   4,
		SplitAcesOneCard:     true,
		BlackjackPayout:      1.5,
		MinimumBetMultiplier: 1,
	}
}

// Validate reports authoring defects. Invalid rule sets must be refused at
// startup rather than discovered mid-round.
func (r RuleSet) Validate() error {
	if r.DeckCount < MinDecks || r.DeckCount > MaxDecks {
		return fmt.Errorf("%w: deck count %d outside %d-%d", ErrInvalidRuleSet, r.DeckCount, MinDecks, MaxDecks)
	}
	if r.MaxHandsAfterSplit < 2 {
		return fmt.Errorf("%w: max hands after split %d is below 2", ErrInvalidRuleSet, r.MaxHandsAfterSplit)
	}
	if r.BlackjackPayout <= 0 || math.IsNaN(r.BlackjackPayout) || math.IsInf(r.BlackjackPayout, 0) {
		return fmt.Errorf("%w: blackjack payout %v must be positive", ErrInvalidRuleSet, r.BlackjackPayout)
	}
	if r.MinimumBetMultiplier < 1 {
		return fmt.Errorf("%w: minimum bet multiplier %d is below 1", ErrInvalidRuleSet, r.MinimumBetMultiplier)
	}
	for _, t := range r.DoubleRestrictedTotals.Values() {
		if t < 4 || t > 21 {
			return fmt.Errorf("%w: restricted double total %d outside 4-21", ErrInvalidRuleSet, t)
		}
	}
	if r.EarlySurrender && !r.Surrender {
		return fmt.Errorf("%w: early surrender requires surrender", ErrInvalidRuleSet)
	}
	return nil
}

// CanDoubleOn reports whether the restriction admits total
func (r RuleSet) CanDoubleOn(total int) bool {
	return r.DoubleRestrictedTotals.IsEmpty() || r.DoubleRestrictedTotals.Contains(total)
}

// PayoutLabel renders the blackjack payout as odds, e.g. "3:2"
func (r RuleSet) PayoutLabel() string {
	switch {
	case r.BlackjackPayout == 1.5:
		return "3:2"
	case r.BlackjackPayout == 1.2:
		return "6:5"
	case r.BlackjackPayout == 1:
		return "1:1"
	case r.BlackjackPayout == 2:
		return "2:1"
	default:
		return fmt.Sprintf("%.2f:1", r.BlackjackPayout)
	}
}

// Summary lists the active rules in display form
func (r RuleSet) Summary() []string {
	out := []string{}

	if r.DeckCount == 1 {
		out = append(out, "Single deck")
	} else {
		out = append(out, fmt.Sprintf("%d decks", r.DeckCount))
	}

	if r.DealerHitsSoft17 {
		out = append(out, "Dealer hits soft 17")
	} else {
		out = append(out, "Dealer stands on soft 17")
	}

	out = append(out, "Blackjack pays "+r.PayoutLabel())

	if r.DoubleRestrictedTotals.IsEmpty() {
		out = append(out, "Double on any two cards")
	} else {
		out = append(out, "Double on "+r.DoubleRestrictedTotals.String()+" only")
	}
	if r.DoubleAfterSplit {
		out = append(out, "Double after split")
	} else {
		out = append(out, "No double after split")
	}

	out = append(out, fmt.Sprintf("Split up to %d hands", r.MaxHandsAfterSplit))
	if r.ResplitAces {
		out = append(out, "Resplit aces")
	}
	if r.SplitAcesOneCard {
		out = append(out, "Split aces receive one card")
	}

	switch {
	case r.EarlySurrender:
		out = append(out, "Early surrender")
	case r.Surrender:
		out = append(out, "Late surrender")
	default:
		out = append(out, "No surrender")
	}

	if r.FreeDoubles {
		out = append(out, "Free doubles")
	}
	if r.FreeSplits {
		out = append(out, "Free splits")
	}
	if r.MinimumBetMultiplier > 1 {
		out = append(out, fmt.Sprintf("Minimum bet x%d", r.MinimumBetMultiplier))
	}
	return out
}
