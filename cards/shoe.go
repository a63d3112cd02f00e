package cards

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// DefaultPenetration is the remaining-cards ratio below which a shoe is due
// for a reshuffle.
const DefaultPenetration = 0.75

// ErrShoeExhausted is returned by Draw when no undealt cards remain.
var ErrShoeExhausted = errors.New("shoe exhausted")

// Shoe represents multiple shuffled decks dealt from a cursor
type Shoe struct {
	cards       Stack
	next        int
	deckCount   int
	penetration float64
	rng         *rand.Rand
}

// NewShoe creates a shuffled shoe of deckCount decks
func NewShoe(deckCount int, penetration float64, rng *rand.Rand) *Shoe {
	if rng == nil {
		panic("rng is required for shoe creation")
	}
	s := &Shoe{
		penetration: penetration,
		rng:         rng,
	}
	s.Build(deckCount)
	return s
}

// Build replaces the contents with deckCount freshly shuffled decks and
// resets the cursor.
func (s *Shoe) Build(deckCount int) {
	if deckCount < 1 {
		deckCount = 1
	}
	s.deckCount = deckCount
	s.cards = make(Stack, 0, deckCount*DeckSize)
	for range deckCount {
		s.cards.AddCards(NewDeck52()...)
	}
	ShuffleCards(s.cards, s.rng)
	s.next = 0
}

// Rebuild reshuffles a full shoe with the current deck count
func (s *Shoe) Rebuild() {
	s.Build(s.deckCount)
}

// Draw deals the next card
func (s *Shoe) Draw() (Card, error) {
	if s.next >= len(s.cards) {
		return Card{}, ErrShoeExhausted
	}
	card := s.cards[s.next]
	s.next++
	return card, nil
}

// NeedsReshuffle reports whether the remaining ratio fell below the
// penetration threshold.
func (s *Shoe) NeedsReshuffle() bool {
	if len(s.cards) == 0 {
		return true
	}
	return float64(s.Remaining())/float64(len(s.cards)) < s.penetration
}

// Remaining returns the number of undealt cards
func (s *Shoe) Remaining() int {
	return len(s.cards) - s.next
}

// Dealt returns the number of cards dealt since the last build
func (s *Shoe) Dealt() int {
	return s.next
}

// Size returns the total number of cards in the shoe
func (s *Shoe) Size() int {
	return len(s.cards)
}

// DeckCount returns the number of decks the shoe was built from
func (s *Shoe) DeckCount() int {
	return s.deckCount
}

// Penetration returns the reshuffle threshold
func (s *Shoe) Penetration() float64 {
	return s.penetration
}

// PlaceOnTop moves the given cards to the front of the undealt section, in
// order, by swapping them with whatever currently sits there. The shoe keeps
// exactly the same multiset of cards.
func (s *Shoe) PlaceOnTop(cards ...Card) error {
	if len(cards) > s.Remaining() {
		return fmt.Errorf("cannot stack %d cards on %d remaining: %w", len(cards), s.Remaining(), ErrShoeExhausted)
	}
	for i, want := range cards {
		pos := s.next + i
		found := -1
		for j := pos; j < len(s.cards); j++ {
			if s.cards[j].Equals(want) {
				found = j
				break
			}
		}
		if found < 0 {
			return fmt.Errorf("card %s not available in the undealt shoe", want)
		}
		s.cards[pos], s.cards[found] = s.cards[found], s.cards[pos]
	}
	return nil
}
