package cards

type CardVisibility string

const (
	FaceDown    CardVisibility = "down" // Only the engine knows the card
	FaceUpToAll CardVisibility = "all"  // Everyone can see
)

// HeldCard represents a card that's in play with visibility information
type HeldCard struct {
	Card
	Visibility CardVisibility
}

// NewHeldCard creates a new held card with the specified visibility
func NewHeldCard(card Card, visibility CardVisibility) HeldCard {
	return HeldCard{
		Card:       card,
		Visibility: visibility,
	}
}

// Hide sets the card as face down
func (c *HeldCard) Hide() {
	c.Visibility = FaceDown
}

// Reveal turns the card face up
func (c *HeldCard) Reveal() {
	c.Visibility = FaceUpToAll
}

// IsFaceUp reports whether the card is visible to everyone
func (c HeldCard) IsFaceUp() bool {
	return c.Visibility == FaceUpToAll
}
