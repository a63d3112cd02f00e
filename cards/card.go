package cards

import (
	"fmt"
	"strings"
)

// ParseCard creates a card from a string representation
// e.g., "10♠" or "10s" or "Ts" -> Card{Suit: Spades, Value: Ten}
func ParseCard(s string) (Card, error) {
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card shorthand: %q", s)
	}

	var suit Suit
	var rest string
	switch {
	case strings.HasSuffix(s, string(Spades)), strings.HasSuffix(s, "s"), strings.HasSuffix(s, "S"):
		suit = Spades
	case strings.HasSuffix(s, string(Hearts)), strings.HasSuffix(s, "h"), strings.HasSuffix(s, "H"):
		suit = Hearts
	case strings.HasSuffix(s, string(Diamonds)), strings.HasSuffix(s, "d"), strings.HasSuffix(s, "D"):
		suit = Diamonds
	case strings.HasSuffix(s, string(Clubs)), strings.HasSuffix(s, "c"), strings.HasSuffix(s, "C"):
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("invalid card suit: %q", s)
	}

	if strings.HasSuffix(s, string(suit)) {
		rest = strings.TrimSuffix(s, string(suit))
	} else {
		rest = s[:len(s)-1]
	}

	var value Value
	switch strings.ToUpper(rest) {
	case "A":
		value = Ace
	case "K":
		value = King
	case "Q":
		value = Queen
	case "J":
		value = Jack
	case "10", "T":
		value = Ten
	case "9":
		value = Nine
	case "8":
		value = Eight
	case "7":
		value = Seven
	case "6":
		value = Six
	case "5":
		value = Five
	case "4":
		value = Four
	case "3":
		value = Three
	case "2":
		value = Two
	default:
		return Card{}, fmt.Errorf("invalid card value: %q", rest)
	}

	return Card{Suit: suit, Value: value}, nil
}

// ParseCards parses a whitespace or comma separated list of card shorthands.
func ParseCards(s string) (Stack, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})

	stack := make(Stack, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		stack = append(stack, c)
	}
	return stack, nil
}

// MustParseCards is like ParseCards but panics on invalid input.
func MustParseCards(s string) Stack {
	stack, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return stack
}

// Suit represents a card suit
type Suit string

const (
	Spades   Suit = "♠"
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Clubs    Suit = "♣"
)

// IsRed returns true for hearts and diamonds
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Value represents a card value
type Value string

const (
	Ace   Value = "A"
	King  Value = "K"
	Queen Value = "Q"
	Jack  Value = "J"
	Ten   Value = "10"
	Nine  Value = "9"
	Eight Value = "8"
	Seven Value = "7"
	Six   Value = "6"
	Five  Value = "5"
	Four  Value = "4"
	Three Value = "3"
	Two   Value = "2"
)

// Points returns the blackjack value of a card value. Aces report 11, their
// soft value; hand evaluation lowers them to 1 as needed.
func (v Value) Points() int {
	switch v {
	case Ace:
		return 11
	case King, Queen, Jack, Ten:
		return 10
	case Nine:
		return 9
	case Eight:
		return 8
	case Seven:
		return 7
	case Six:
		return 6
	case Five:
		return 5
	case Four:
		return 4
	case Three:
		return 3
	case Two:
		return 2
	default:
		return 0
	}
}

// Card represents a playing card
type Card struct {
	Suit  Suit
	Value Value
}

// String returns the string representation of a card
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Value, c.Suit)
}

// Points returns the blackjack value of the card
func (c Card) Points() int {
	return c.Value.Points()
}

// IsAce reports whether the card is an ace
func (c Card) IsAce() bool {
	return c.Value == Ace
}

// IsZero reports whether the card is the zero Card
func (c Card) IsZero() bool {
	return c.Suit == "" && c.Value == ""
}

// Equals checks if two cards are equal
func (c Card) Equals(other Card) bool {
	return c.Suit == other.Suit && c.Value == other.Value
}
