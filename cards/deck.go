package cards

import (
	"math/rand/v2"
)

var (
	suits  = []Suit{Spades, Hearts, Diamonds, Clubs}
	values = []Value{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}
)

// DeckSize is the number of cards in one standard deck
const DeckSize = 52

// NewDeck52 creates a standard deck of 52 cards in suit order
func NewDeck52() Stack {
	deck := make(Stack, 0, DeckSize)
	for _, suit := range suits {
		for _, value := range values {
			deck.AddCard(Card{Suit: suit, Value: value})
		}
	}
	return deck
}

// ShuffleCards shuffles cards in place with a Fisher-Yates pass driven by rng
func ShuffleCards(cards Stack, rng *rand.Rand) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
