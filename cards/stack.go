package cards

import "strings"

// Stack represents an ordered run of cards
type Stack []Card

// NewStack creates a new stack from the given cards
func NewStack(cards ...Card) Stack {
	return Stack(cards)
}

// AddCard appends a card to the stack
func (s *Stack) AddCard(card Card) {
	*s = append(*s, card)
}

// AddCards appends several cards to the stack
func (s *Stack) AddCards(cards ...Card) {
	*s = append(*s, cards...)
}

// Clone returns a copy that shares no memory with s
func (s Stack) Clone() Stack {
	if s == nil {
		return nil
	}
	out := make(Stack, len(s))
	copy(out, s)
	return out
}

// Count returns how many cards in the stack equal card
func (s Stack) Count(card Card) int {
	n := 0
	for _, c := range s {
		if c.Equals(card) {
			n++
		}
	}
	return n
}

func (s Stack) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
