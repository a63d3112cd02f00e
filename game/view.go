package game

import (
	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/rules"
)

// HandView is the observable state of one player hand
type HandView struct {
	Cards     cards.Stack
	Total     int
	Soft      bool
	Bust      bool
	Blackjack bool
	Stake     int
	Wager     int
	Actions   []Action
	Active    bool
	Closed    bool
	Outcome   Outcome
	Payout    int
	Net       int
}

// View is everything a presentation layer needs after an action
type View struct {
	SessionID string
	RoundID   string
	State     State

	Hands       []HandView
	CurrentHand int

	// DealerCards holds only what is face up
	DealerCards      cards.Stack
	DealerTotal      int
	DealerHoleHidden bool

	Bankroll   int
	CurrentBet int
	MinimumBet int
	Message    string
	Payout     int
	Net        int

	ReshufflePending bool
	ShoeRemaining    int
	ShoeSize         int

	ProfileID   string
	ProfileName string
	Rules       rules.RuleSet
	RuleLabel   string
	RuleSummary []string
	// HouseEdgeEstimate is a heuristic in percent, for display only
	HouseEdgeEstimate float64

	AvailableActions []Action
}

// View builds the outbound state
func (e *Engine) View() View {
	v := View{
		SessionID:         e.sessionID,
		RoundID:           e.roundID,
		State:             e.state,
		CurrentHand:       e.current,
		Bankroll:          e.bankroll,
		MinimumBet:        e.MinimumBet(),
		Message:           e.message,
		Payout:            e.lastPayout,
		Net:               e.lastNet,
		ReshufflePending:  e.reshufflePending(),
		ShoeRemaining:     e.shoe.Remaining(),
		ShoeSize:          e.shoe.Size(),
		ProfileID:         e.profile.ID,
		ProfileName:       e.profile.Name,
		Rules:             e.rules,
		RuleLabel:         e.ruleLabel,
		RuleSummary:       e.rules.Summary(),
		HouseEdgeEstimate: e.rules.ApproximateHouseEdge(),
		AvailableActions:  e.AvailableActions(),
	}

	for i, h := range e.hands {
		v.CurrentBet += h.Bet.Stake
		v.Hands = append(v.Hands, HandView{
			Cards:     h.Hand.Cards(),
			Total:     h.Hand.Total(),
			Soft:      h.Hand.IsSoft(),
			Bust:      h.Hand.IsBust(),
			Blackjack: h.IsBlackjack(),
			Stake:     h.Bet.Stake,
			Wager:     h.Bet.Wager,
			Actions:   append([]Action(nil), h.Actions...),
			Active:    e.state == StatePlayerTurn && i == e.current,
			Closed:    h.Done,
			Outcome:   h.Outcome,
			Payout:    h.Payout,
			Net:       h.Net(),
		})
	}

	if e.dealer != nil {
		v.DealerCards = e.dealer.Cards()
		v.DealerTotal = e.dealer.Total()
		v.DealerHoleHidden = e.holeIn && !e.hole.IsFaceUp()
	}
	return v
}

// AvailableActions lists what would currently succeed
func (e *Engine) AvailableActions() []Action {
	var out []Action
	switch e.state {
	case StateBetting:
		if e.bankroll >= e.MinimumBet() {
			out = append(out, ActionBet)
		}
		out = append(out, ActionSwitchProfile, ActionResetBankroll)
	case StatePlayerTurn:
		h := e.hands[e.current]
		if !h.SplitOnly {
			out = append(out, ActionHit)
		}
		out = append(out, ActionStand)
		if e.checkDouble(h) == nil {
			out = append(out, ActionDouble)
		}
		if e.checkSplit(h) == nil {
			out = append(out, ActionSplit)
		}
		if e.checkSurrender(h) == nil {
			out = append(out, ActionSurrender)
		}
	case StateResult:
		out = append(out, ActionNextHand, ActionSwitchProfile, ActionResetBankroll)
	case StateGameOver:
		out = append(out, ActionSwitchProfile, ActionResetBankroll)
	}
	return out
}

// Can reports whether a is currently available
func (e *Engine) Can(a Action) bool {
	for _, x := range e.AvailableActions() {
		if x == a {
			return true
		}
	}
	return false
}
