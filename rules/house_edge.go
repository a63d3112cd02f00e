package rules

import "math"

// baseHouseEdge is the estimate for the Standard game, in percent.
const baseHouseEdge = 0.50

var deckCountDelta = map[int]float64{
	1: -0.48,
	2: -0.19,
	3: -0.10,
	4: -0.06,
	5: -0.03,
	6: 0,
	7: 0.01,
	8: 0.02,
}

// ApproximateHouseEdge returns a heuristic house edge in percentage points
// (0.5 means half a percent). It is a display estimate built from additive
// rule deltas, not a computed probability, and must never gate game logic.
func (r RuleSet) ApproximateHouseEdge() float64 {
	edge := baseHouseEdge

	if d, ok := deckCountDelta[r.DeckCount]; ok {
		edge += d
	} else if r.DeckCount > MaxDecks {
		edge += deckCountDelta[MaxDecks]
	}

	if r.DealerHitsSoft17 {
		edge += 0.22
	}

	// 3:2 is the anchor; each 0.1 of payout is worth about 0.45%.
	edge += (1.5 - r.BlackjackPayout) * 4.54

	if !r.DoubleRestrictedTotals.IsEmpty() {
		d := r.DoubleRestrictedTotals
		switch {
		case d.Contains(9) && d.Contains(10) && d.Contains(11):
			edge += 0.09
		case d.Contains(10) && d.Contains(11):
			edge += 0.18
		default:
			edge += 0.28
		}
	}
	if !r.DoubleAfterSplit {
		edge += 0.14
	}

	switch {
	case r.MaxHandsAfterSplit <= 2:
		edge += 0.10
	case r.MaxHandsAfterSplit == 3:
		edge += 0.03
	}
	if r.ResplitAces {
		edge -= 0.08
	}
	if !r.SplitAcesOneCard {
		edge -= 0.19
	}

	// Early surrender plays exactly like late surrender, so it earns the same
	// credit.
	if r.Surrender {
		edge -= 0.08
	}

	if r.FreeDoubles {
		edge -= 0.35
	}
	if r.FreeSplits {
		edge -= 0.25
	}

	return math.Round(edge*100) / 100
}
