// Package hands evaluates blackjack hands. A Hand is an ordered list of
// cards with no owner or stake; callers attach those.
package hands

import (
	"github.com/lazharichir/blackjack/cards"
)

const (
	// Blackjack is the best possible total
	Blackjack = 21
	// aceReduction is the difference between an ace counted as 11 and as 1
	aceReduction = 10
)

// Hand is an ordered collection of cards
type Hand struct {
	cards cards.Stack
}

// New creates a hand holding the given cards
func New(cs ...cards.Card) *Hand {
	h := &Hand{cards: make(cards.Stack, 0, 4)}
	h.cards.AddCards(cs...)
	return h
}

// AddCard appends a card to the hand
func (h *Hand) AddCard(card cards.Card) {
	h.cards.AddCard(card)
}

// Cards returns a copy of the cards in the hand
func (h *Hand) Cards() cards.Stack {
	return h.cards.Clone()
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.cards)
}

// Card returns the card at index i
func (h *Hand) Card(i int) cards.Card {
	return h.cards[i]
}

// evaluate counts every ace as 11, then lowers aces to 1 one at a time while
// the total is over 21. The hand is soft when an ace is still worth 11.
func (h *Hand) evaluate() (total int, soft bool) {
	elevenAces := 0
	for _, c := range h.cards {
		total += c.Points()
		if c.IsAce() {
			elevenAces++
		}
	}
	for total > Blackjack && elevenAces > 0 {
		total -= aceReduction
		elevenAces--
	}
	return total, elevenAces > 0
}

// Total returns the best total of the hand
func (h *Hand) Total() int {
	total, _ := h.evaluate()
	return total
}

// IsSoft reports whether an ace is still counted as 11
func (h *Hand) IsSoft() bool {
	_, soft := h.evaluate()
	return soft
}

// IsBust reports whether the total is over 21
func (h *Hand) IsBust() bool {
	return h.Total() > Blackjack
}

// IsBlackjack reports a two-card 21. A hand reaching 21 with more cards is
// not a blackjack.
func (h *Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.Total() == Blackjack
}

// IsPair reports exactly two cards of equal rank. A king and a queen are
// worth the same but are not a pair.
func (h *Hand) IsPair() bool {
	return len(h.cards) == 2 && h.cards[0].Value == h.cards[1].Value
}

// CanDouble reports whether the hand has exactly two cards
func (h *Hand) CanDouble() bool {
	return len(h.cards) == 2
}

// CanSplit reports whether the hand is a two-card pair
func (h *Hand) CanSplit() bool {
	return h.IsPair()
}

// IsPairOfAces reports a two-card pair of aces
func (h *Hand) IsPairOfAces() bool {
	return h.IsPair() && h.cards[0].IsAce()
}

// Split removes the second card of a pair and returns it. The hand keeps the
// first card.
func (h *Hand) Split() (cards.Card, bool) {
	if !h.CanSplit() {
		return cards.Card{}, false
	}
	second := h.cards[1]
	h.cards = h.cards[:1]
	return second, true
}

func (h *Hand) String() string {
	return h.cards.String()
}
