package game

import (
	"fmt"

	"github.com/lazharichir/blackjack/events"
	"github.com/lazharichir/blackjack/rules"
)

// NextHand clears a finished round and returns to betting
func (e *Engine) NextHand() error {
	if e.state != StateResult {
		return fmt.Errorf("next hand in %s: %w", e.state, ErrIllegalState)
	}
	e.clearRound()
	e.transition(StateBetting)
	return nil
}

// SwitchProfile changes dealer between rounds. The shoe is rebuilt for the
// new rules, and a wild profile draws its rule set.
func (e *Engine) SwitchProfile(p rules.Profile) error {
	if !e.state.IsBetweenRounds() {
		return fmt.Errorf("switch profile in %s: %w", e.state, ErrRoundInProgress)
	}
	if !p.Wild {
		if err := p.Rules.Validate(); err != nil {
			return fmt.Errorf("profile %q: %w", p.ID, err)
		}
	}
	if required := e.baseMinimum * e.requiredMultiplier(p); e.state != StateGameOver && e.bankroll < required {
		return fmt.Errorf("profile %q needs %d, bankroll %d: %w", p.ID, required, e.bankroll, ErrInsufficientBankroll)
	}

	from := e.profile.ID
	if e.state == StateResult {
		e.clearRound()
		e.transition(StateBetting)
	}
	e.profile = p
	e.rebuildShoe(false)

	e.emit(events.ProfileSwitched{
		SessionID:   e.sessionID,
		FromProfile: from,
		ToProfile:   p.ID,
		MinimumBet:  e.MinimumBet(),
		At:          e.now(),
	})
	e.logger.Info("profile switched", "from", from, "to", p.ID, "rules", e.ruleLabel)
	return nil
}

// SwitchProfileByID looks up a built-in profile and switches to it
func (e *Engine) SwitchProfileByID(id string) error {
	p, ok := rules.Lookup(id)
	if !ok {
		return fmt.Errorf("profile %q: %w", id, ErrUnknownProfile)
	}
	return e.SwitchProfile(p)
}

// requiredMultiplier is the highest multiplier p could put in force. For the
// wild profile that is the highest in the pool.
func (e *Engine) requiredMultiplier(p rules.Profile) int {
	if !p.Wild {
		return p.Rules.MinimumBetMultiplier
	}
	m := 1
	for _, entry := range e.selector.Pool() {
		m = max(m, entry.Rules.MinimumBetMultiplier)
	}
	return m
}

// ResetBankroll replaces the bankroll between rounds. It is the only way out
// of GameOver.
func (e *Engine) ResetBankroll(amount int) error {
	if !e.state.IsBetweenRounds() {
		return fmt.Errorf("reset bankroll in %s: %w", e.state, ErrRoundInProgress)
	}
	if minimum := e.MinimumBet(); amount < minimum {
		return fmt.Errorf("bankroll %d below minimum bet %d: %w", amount, minimum, ErrInvalidAmount)
	}

	previous := e.bankroll
	e.bankroll = amount
	e.clearRound()
	if e.state != StateBetting {
		e.transition(StateBetting)
	}
	e.emit(events.BankrollReset{
		SessionID: e.sessionID,
		Previous:  previous,
		Amount:    amount,
		At:        e.now(),
	})
	e.logger.Info("bankroll reset", "from", previous, "to", amount)
	return nil
}
