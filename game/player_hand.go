package game

import (
	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/hands"
)

// Action is something the player can do
type Action string

const (
	ActionBet           Action = "bet"
	ActionHit           Action = "hit"
	ActionStand         Action = "stand"
	ActionDouble        Action = "double"
	ActionSplit         Action = "split"
	ActionSurrender     Action = "surrender"
	ActionNextHand      Action = "next_hand"
	ActionSwitchProfile Action = "switch_profile"
	ActionResetBankroll Action = "reset_bankroll"
)

// Outcome is the settlement category of one player hand
type Outcome string

const (
	OutcomeNone       Outcome = ""
	OutcomeBlackjack  Outcome = "blackjack"
	OutcomeWin        Outcome = "win"
	OutcomeDealerBust Outcome = "dealer_bust"
	OutcomePush       Outcome = "push"
	OutcomeLose       Outcome = "lose"
	OutcomeBust       Outcome = "bust"
	OutcomeSurrender  Outcome = "surrender"
)

// Bet is the money riding on one hand. Stake is what the player actually put
// up; Wager is what the hand is paid against. They only differ when a free
// double or free split added wager the house funded.
type Bet struct {
	Stake int
	Wager int
}

// PlayerHand is one betting unit of the round
type PlayerHand struct {
	Hand    *hands.Hand
	Bet     Bet
	Actions []Action

	// FromSplit hands never pay the blackjack bonus
	FromSplit bool
	// SplitAces marks hands created by splitting aces
	SplitAces bool
	// SplitOnly is a one-card split-ace hand that caught another ace and may
	// still be resplit or stood, nothing else.
	SplitOnly bool
	Done      bool

	Outcome Outcome
	Payout  int
}

func newPlayerHand(stake int) *PlayerHand {
	return &PlayerHand{
		Hand: hands.New(),
		Bet:  Bet{Stake: stake, Wager: stake},
	}
}

func (h *PlayerHand) addCard(c cards.Card) {
	h.Hand.AddCard(c)
}

func (h *PlayerHand) log(a Action) {
	h.Actions = append(h.Actions, a)
}

// IsBlackjack reports a natural; split hands never qualify
func (h *PlayerHand) IsBlackjack() bool {
	return !h.FromSplit && h.Hand.IsBlackjack()
}

// Net is the chips gained or lost on the hand once settled
func (h *PlayerHand) Net() int {
	return h.Payout - h.Bet.Stake
}

func actionStrings(actions []Action) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = string(a)
	}
	return out
}
