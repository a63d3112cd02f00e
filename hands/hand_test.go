package hands

import (
	"testing"

	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hand(s string) *Hand {
	return New(cards.MustParseCards(s)...)
}

func TestHandEvaluation(t *testing.T) {
	tests := []struct {
		name      string
		cards     string
		total     int
		soft      bool
		bust      bool
		blackjack bool
		pair      bool
	}{
		{"hard 17", "10s 7h", 17, false, false, false, false},
		{"face cards", "Ks Qh", 20, false, false, false, false},
		{"soft 18", "As 7h", 18, true, false, false, false},
		{"ace lowered", "As 10h 5d", 16, false, false, false, false},
		{"natural", "As Kh", 21, true, false, true, false},
		{"two aces", "As Ah", 12, true, false, false, true},
		{"three card 21", "7s 7h 7d", 21, false, false, false, false},
		{"soft 21 three cards", "As 5h 5d", 21, true, false, false, false},
		{"bust", "Ks Qh 5d", 25, false, true, false, false},
		{"four aces", "As Ah Ad Ac", 14, true, false, false, false},
		{"many aces bust", "As Ah Ad Ac Ks Qs", 24, false, true, false, false},
		{"pair of eights", "8s 8h", 16, false, false, false, true},
		{"ten and king not a pair", "10s Kh", 20, false, false, false, false},
		{"soft 17", "As 6d", 17, true, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := hand(tt.cards)
			assert.Equal(t, tt.total, h.Total(), "total")
			assert.Equal(t, tt.soft, h.IsSoft(), "soft")
			assert.Equal(t, tt.bust, h.IsBust(), "bust")
			assert.Equal(t, tt.blackjack, h.IsBlackjack(), "blackjack")
			assert.Equal(t, tt.pair, h.IsPair(), "pair")
			assert.Equal(t, tt.pair, h.CanSplit(), "can split")
			assert.Equal(t, h.Len() == 2, h.CanDouble(), "can double")
		})
	}
}

// bestTotal enumerates every 1/11 assignment of the aces.
func bestTotal(cs cards.Stack) int {
	base, aces := 0, 0
	for _, c := range cs {
		if c.IsAce() {
			aces++
			continue
		}
		base += c.Points()
	}
	best, lowest := -1, base+aces
	for elevens := 0; elevens <= aces; elevens++ {
		total := base + aces + 10*elevens
		if total <= Blackjack && total > best {
			best = total
		}
	}
	if best < 0 {
		return lowest
	}
	return best
}

func TestTotalMatchesExhaustiveAceAssignment(t *testing.T) {
	rng := randutil.New(2024)
	deck := cards.NewDeck52()
	for range 5000 {
		n := 2 + rng.IntN(6)
		cs := make(cards.Stack, n)
		for i := range cs {
			cs[i] = deck[rng.IntN(len(deck))]
		}
		h := New(cs...)
		require.Equal(t, bestTotal(cs), h.Total(), "cards %s", cs)
	}
}

func TestAddCardAndSplit(t *testing.T) {
	h := hand("8s 8h")
	second, ok := h.Split()
	require.True(t, ok)
	assert.Equal(t, cards.Card{Suit: cards.Hearts, Value: cards.Eight}, second)
	assert.Equal(t, 1, h.Len())

	h.AddCard(cards.Card{Suit: cards.Clubs, Value: cards.Three})
	assert.Equal(t, 11, h.Total())
	assert.False(t, h.IsPair())

	_, ok = h.Split()
	assert.False(t, ok)
}

func TestCardsReturnsCopy(t *testing.T) {
	h := hand("As Kh")
	cs := h.Cards()
	cs[0] = cards.Card{Suit: cards.Clubs, Value: cards.Two}
	assert.True(t, h.IsBlackjack())
}

func TestIsPairOfAces(t *testing.T) {
	assert.True(t, hand("As Ad").IsPairOfAces())
	assert.False(t, hand("Ks Kd").IsPairOfAces())
	assert.False(t, hand("As Ad Ac").IsPairOfAces())
}
