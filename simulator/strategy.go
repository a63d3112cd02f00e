package simulator

import (
	"slices"

	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/game"
)

// BasicStrategy picks a move for the active hand from a multi-deck chart,
// falling back when the chart's choice is not on offer.
func BasicStrategy(v game.View) game.Action {
	if v.State != game.StatePlayerTurn || len(v.Hands) == 0 || len(v.DealerCards) == 0 {
		return game.ActionStand
	}
	h := v.Hands[v.CurrentHand]
	up := upValue(v.DealerCards[0])
	can := func(a game.Action) bool { return slices.Contains(v.AvailableActions, a) }

	if can(game.ActionSurrender) && !h.Soft && len(h.Cards) == 2 && !isPair(h.Cards) {
		if (h.Total == 16 && up >= 9) || (h.Total == 15 && up == 10) {
			return game.ActionSurrender
		}
	}

	if can(game.ActionSplit) && isPair(h.Cards) && splitPair(h.Cards[0].Value, up) {
		return game.ActionSplit
	}

	// Hands restricted to split-or-stand only get this far when the split
	// was refused.
	if !can(game.ActionHit) {
		return game.ActionStand
	}

	var want game.Action
	if h.Soft {
		want = soft(h.Total, up)
	} else {
		want = hard(h.Total, up)
	}

	if want == game.ActionDouble && !can(game.ActionDouble) {
		if h.Soft && h.Total >= 18 {
			return game.ActionStand
		}
		return game.ActionHit
	}
	return want
}

// upValue counts the dealer ace as 11
func upValue(c cards.Card) int {
	return c.Points()
}

func isPair(cs cards.Stack) bool {
	return len(cs) == 2 && cs[0].Value == cs[1].Value
}

func splitPair(v cards.Value, up int) bool {
	switch v {
	case cards.Ace, cards.Eight:
		return true
	case cards.Nine:
		return up <= 9 && up != 7
	case cards.Seven, cards.Two, cards.Three:
		return up <= 7
	case cards.Six:
		return up <= 6
	case cards.Four:
		return up == 5 || up == 6
	default:
		return false
	}
}

func soft(total, up int) game.Action {
	switch {
	case total >= 19:
		return game.ActionStand
	case total == 18:
		if up >= 3 && up <= 6 {
			return game.ActionDouble
		}
		if up <= 8 {
			return game.ActionStand
		}
		return game.ActionHit
	case total == 17:
		if up >= 3 && up <= 6 {
			return game.ActionDouble
		}
	case total == 15 || total == 16:
		if up >= 4 && up <= 6 {
			return game.ActionDouble
		}
	default:
		if up == 5 || up == 6 {
			return game.ActionDouble
		}
	}
	return game.ActionHit
}

func hard(total, up int) game.Action {
	switch {
	case total >= 17:
		return game.ActionStand
	case total >= 13:
		if up <= 6 {
			return game.ActionStand
		}
	case total == 12:
		if up >= 4 && up <= 6 {
			return game.ActionStand
		}
	case total == 11:
		if up <= 10 {
			return game.ActionDouble
		}
	case total == 10:
		if up <= 9 {
			return game.ActionDouble
		}
	case total == 9:
		if up >= 3 && up <= 6 {
			return game.ActionDouble
		}
	}
	return game.ActionHit
}
