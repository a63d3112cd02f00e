package tui

import (
	"testing"

	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/game"
	"github.com/lazharichir/blackjack/rules"
	"github.com/stretchr/testify/assert"
)

func TestViewHidesHoleCard(t *testing.T) {
	v := game.View{
		State:            game.StatePlayerTurn,
		ProfileName:      "Classic",
		Hands:            []game.HandView{{Cards: cards.MustParseCards("10s 6h"), Total: 16, Stake: 20, Wager: 20, Active: true}},
		DealerCards:      cards.MustParseCards("9c"),
		DealerTotal:      9,
		DealerHoleHidden: true,
		Bankroll:         980,
		MinimumBet:       10,
		AvailableActions: []game.Action{game.ActionHit, game.ActionStand},
	}

	out := View(v)
	assert.Contains(t, out, "9♣")
	assert.Contains(t, out, "??")
	assert.Contains(t, out, "10♠")
	assert.Contains(t, out, "bet 20")
	assert.Contains(t, out, "980")
	assert.Contains(t, out, "hit · stand")
	assert.NotContains(t, out, "hand 1")
}

func TestViewSettledSplitHands(t *testing.T) {
	v := game.View{
		State: game.StateResult,
		Hands: []game.HandView{
			{Cards: cards.MustParseCards("8s 10h"), Total: 18, Stake: 10, Wager: 10, Outcome: game.OutcomeWin, Net: 10},
			{Cards: cards.MustParseCards("8h 9d"), Total: 17, Stake: 0, Wager: 10, Outcome: game.OutcomeDealerBust, Net: 10},
		},
		DealerCards: cards.MustParseCards("6c 10c 10d"),
		DealerTotal: 26,
		Message:     "You win 20",
	}

	out := View(v)
	assert.Contains(t, out, "hand 1")
	assert.Contains(t, out, "hand 2")
	assert.Contains(t, out, "dealer bust")
	assert.Contains(t, out, "wager 10")
	assert.Contains(t, out, "+10")
	assert.Contains(t, out, "You win 20")
	assert.NotContains(t, out, "??")
}

func TestChips(t *testing.T) {
	assert.Contains(t, Chips(15), "+15")
	assert.Contains(t, Chips(-5), "-5")
	assert.Equal(t, "0", Chips(0))
}

func TestProfiles(t *testing.T) {
	out := Profiles(rules.Profiles(), rules.ClassicID)
	for _, p := range rules.Profiles() {
		assert.Contains(t, out, p.ID)
	}
	assert.Contains(t, out, "▶")
}
