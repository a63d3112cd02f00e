package game

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/events"
	"github.com/lazharichir/blackjack/hands"
)

const dealerStandsOn = 17

// PlaceBet stakes amount on a new round and deals it
func (e *Engine) PlaceBet(amount int) error {
	if e.state != StateBetting {
		return fmt.Errorf("place bet in %s: %w", e.state, ErrIllegalState)
	}
	if amount <= 0 {
		return fmt.Errorf("bet %d: %w", amount, ErrInvalidAmount)
	}
	if minimum := e.MinimumBet(); amount < minimum {
		return fmt.Errorf("bet %d, minimum %d: %w", amount, minimum, ErrBetBelowMinimum)
	}
	if amount > e.bankroll {
		return fmt.Errorf("bet %d, bankroll %d: %w", amount, e.bankroll, ErrInsufficientBankroll)
	}

	e.clearRound()
	e.bankroll -= amount
	e.roundID = uuid.NewString()
	e.hands = []*PlayerHand{newPlayerHand(amount)}

	e.emit(events.BetPlaced{
		SessionID: e.sessionID,
		RoundID:   e.roundID,
		Amount:    amount,
		Bankroll:  e.bankroll,
		At:        e.now(),
	})
	e.logger.Debug("bet placed", "round", e.roundID, "amount", amount)

	e.transition(StateDealing)
	return e.deal()
}

// deal runs the opening deal: player, dealer up, player, dealer hole
func (e *Engine) deal() error {
	if e.reshufflePending() {
		e.rebuildShoe(e.forceReshuffle)
	}

	player := e.hands[0]
	var dealt [4]cards.Card
	for i := range dealt {
		c, err := e.shoe.Draw()
		if err != nil {
			return e.abort(err)
		}
		dealt[i] = c
	}

	player.addCard(dealt[0])
	e.dealer = hands.New(dealt[1])
	player.addCard(dealt[2])
	e.hole = cards.NewHeldCard(dealt[3], cards.FaceDown)
	e.holeIn = true

	e.logger.Debug("dealt", "player", player.Hand, "up", dealt[1])

	dealerNatural := hands.New(dealt[1], dealt[3]).IsBlackjack()
	if player.IsBlackjack() || dealerNatural {
		e.revealHole()
		player.Done = true
		return e.settle()
	}

	e.transition(StatePlayerTurn)
	return nil
}

// Hit draws one card into the current hand
func (e *Engine) Hit() error {
	h, err := e.activeHand(ActionHit)
	if err != nil {
		return err
	}
	if h.SplitOnly {
		return fmt.Errorf("hit: %w", ErrHandClosed)
	}

	c, err := e.shoe.Draw()
	if err != nil {
		return e.abort(err)
	}
	h.addCard(c)
	h.log(ActionHit)
	e.acted(ActionHit, &c)

	if h.Hand.IsBust() || h.Hand.Total() == hands.Blackjack {
		h.Done = true
		return e.advance()
	}
	return nil
}

// Stand closes the current hand
func (e *Engine) Stand() error {
	h, err := e.activeHand(ActionStand)
	if err != nil {
		return err
	}
	h.log(ActionStand)
	e.acted(ActionStand, nil)
	h.Done = true
	return e.advance()
}

// DoubleDown doubles the wager, draws exactly one card and stands
func (e *Engine) DoubleDown() error {
	h, err := e.activeHand(ActionDouble)
	if err != nil {
		return err
	}
	if err := e.checkDouble(h); err != nil {
		return err
	}

	extra := h.Bet.Wager
	if !e.rules.FreeDoubles {
		e.bankroll -= extra
		h.Bet.Stake += extra
	}
	h.Bet.Wager += extra

	c, err := e.shoe.Draw()
	if err != nil {
		return e.abort(err)
	}
	h.addCard(c)
	h.log(ActionDouble)
	e.acted(ActionDouble, &c)
	h.Done = true
	return e.advance()
}

func (e *Engine) checkDouble(h *PlayerHand) error {
	switch {
	case h.SplitOnly:
		return fmt.Errorf("double: %w", ErrHandClosed)
	case !h.Hand.CanDouble():
		return fmt.Errorf("double on %d cards: %w", h.Hand.Len(), ErrCannotDouble)
	case h.FromSplit && !e.rules.DoubleAfterSplit:
		return fmt.Errorf("double: %w", ErrDoubleAfterSplit)
	case !e.rules.CanDoubleOn(h.Hand.Total()):
		return fmt.Errorf("double on %d, allowed %s: %w", h.Hand.Total(), e.rules.DoubleRestrictedTotals, ErrDoubleRestricted)
	case !e.rules.FreeDoubles && e.bankroll < h.Bet.Wager:
		return fmt.Errorf("double %d, bankroll %d: %w", h.Bet.Wager, e.bankroll, ErrInsufficientBankroll)
	}
	return nil
}

// Split breaks a pair into two hands with the same wager
func (e *Engine) Split() error {
	h, err := e.activeHand(ActionSplit)
	if err != nil {
		return err
	}
	if err := e.checkSplit(h); err != nil {
		return err
	}

	aces := h.Hand.IsPairOfAces()
	second, _ := h.Hand.Split()

	stake := h.Bet.Wager
	if e.rules.FreeSplits {
		stake = 0
	} else {
		e.bankroll -= stake
	}

	h.log(ActionSplit)
	h.FromSplit = true
	h.SplitAces = aces
	h.SplitOnly = false

	sibling := &PlayerHand{
		Hand:      hands.New(second),
		Bet:       Bet{Stake: stake, Wager: h.Bet.Wager},
		Actions:   append([]Action(nil), h.Actions...),
		FromSplit: true,
		SplitAces: aces,
	}
	idx := e.current + 1
	e.hands = append(e.hands[:idx], append([]*PlayerHand{sibling}, e.hands[idx:]...)...)
	e.acted(ActionSplit, nil)

	for _, target := range []*PlayerHand{h, sibling} {
		c, err := e.shoe.Draw()
		if err != nil {
			return e.abort(err)
		}
		target.addCard(c)
	}

	if aces && e.rules.SplitAcesOneCard {
		for _, target := range []*PlayerHand{h, sibling} {
			if target.Hand.IsPairOfAces() && e.rules.ResplitAces && len(e.hands) < e.rules.MaxHandsAfterSplit {
				target.SplitOnly = true
			} else {
				target.Done = true
			}
		}
	}
	return e.advance()
}

func (e *Engine) checkSplit(h *PlayerHand) error {
	switch {
	case !h.Hand.CanSplit():
		return fmt.Errorf("split %s: %w", h.Hand, ErrCannotSplit)
	case len(e.hands) >= e.rules.MaxHandsAfterSplit:
		return fmt.Errorf("split with %d hands, limit %d: %w", len(e.hands), e.rules.MaxHandsAfterSplit, ErrSplitLimit)
	case h.FromSplit && h.Hand.IsPairOfAces() && !e.rules.ResplitAces:
		return fmt.Errorf("split: %w", ErrResplitAces)
	case !e.rules.FreeSplits && e.bankroll < h.Bet.Wager:
		return fmt.Errorf("split %d, bankroll %d: %w", h.Bet.Wager, e.bankroll, ErrInsufficientBankroll)
	}
	return nil
}

// Surrender gives up the opening hand for half the stake
func (e *Engine) Surrender() error {
	h, err := e.activeHand(ActionSurrender)
	if err != nil {
		return err
	}
	if err := e.checkSurrender(h); err != nil {
		return err
	}

	h.log(ActionSurrender)
	e.acted(ActionSurrender, nil)
	h.Done = true
	h.Outcome = OutcomeSurrender
	h.Payout = surrenderRefund(h.Bet.Stake)

	// The dealer shows the hole card but plays nothing.
	e.revealHole()
	return e.finishRound()
}

// surrenderRefund returns half the stake, rounding an odd chip in the
// player's favour.
func surrenderRefund(stake int) int {
	return (stake + 1) / 2
}

// Late surrender only: naturals are resolved before the player may act, so
// EarlySurrender plays the same way.
func (e *Engine) checkSurrender(h *PlayerHand) error {
	switch {
	case !e.rules.Surrender:
		return fmt.Errorf("surrender: %w", ErrSurrenderNotAllowed)
	case len(e.hands) != 1 || h.Hand.Len() != 2 || len(h.Actions) > 0:
		return fmt.Errorf("surrender: %w", ErrCannotSurrender)
	}
	return nil
}

// activeHand returns the hand receiving actions during the player turn
func (e *Engine) activeHand(a Action) (*PlayerHand, error) {
	if e.state != StatePlayerTurn {
		return nil, fmt.Errorf("%s in %s: %w", a, e.state, ErrIllegalState)
	}
	return e.hands[e.current], nil
}

func (e *Engine) acted(a Action, c *cards.Card) {
	h := e.hands[e.current]
	e.emit(events.PlayerActed{
		SessionID: e.sessionID,
		RoundID:   e.roundID,
		HandIndex: e.current,
		Action:    string(a),
		Card:      c,
		Total:     h.Hand.Total(),
		At:        e.now(),
	})
	e.logger.Debug("player acted", "action", a, "hand", e.current, "cards", h.Hand, "total", h.Hand.Total())
}

// advance moves to the next open hand, standing automatically on 21, and
// hands over to the dealer once every hand is closed.
func (e *Engine) advance() error {
	for i := e.current; i < len(e.hands); i++ {
		h := e.hands[i]
		if h.Done {
			continue
		}
		if h.Hand.Total() == hands.Blackjack {
			h.Done = true
			continue
		}
		e.current = i
		return nil
	}
	return e.dealerTurn()
}

// dealerTurn reveals the hole card and draws to the house rule
func (e *Engine) dealerTurn() error {
	e.transition(StateDealerTurn)
	e.revealHole()

	allBust := true
	for _, h := range e.hands {
		if !h.Hand.IsBust() {
			allBust = false
			break
		}
	}
	if !allBust {
		for e.dealerShouldHit() {
			c, err := e.shoe.Draw()
			if err != nil {
				return e.abort(err)
			}
			e.dealer.AddCard(c)
		}
	}
	e.logger.Debug("dealer done", "cards", e.dealer, "total", e.dealer.Total())
	return e.settle()
}

func (e *Engine) dealerShouldHit() bool {
	total := e.dealer.Total()
	if total < dealerStandsOn {
		return true
	}
	return total == dealerStandsOn && e.dealer.IsSoft() && e.rules.DealerHitsSoft17
}

func (e *Engine) revealHole() {
	if !e.holeIn || e.hole.IsFaceUp() {
		return
	}
	e.hole.Reveal()
	e.dealer.AddCard(e.hole.Card)
}

// settle pays every hand against the dealer and closes the round
func (e *Engine) settle() error {
	for _, h := range e.hands {
		h.Outcome, h.Payout = e.settleHand(h)
	}
	return e.finishRound()
}

func (e *Engine) settleHand(h *PlayerHand) (Outcome, int) {
	stake, wager := h.Bet.Stake, h.Bet.Wager
	total, dealerTotal := h.Hand.Total(), e.dealer.Total()

	switch {
	case h.Hand.IsBust():
		return OutcomeBust, 0
	case e.dealer.IsBust():
		return OutcomeDealerBust, stake + wager
	case h.IsBlackjack() && !e.dealer.IsBlackjack():
		return OutcomeBlackjack, stake + blackjackWin(wager, e.rules.BlackjackPayout)
	case total > dealerTotal:
		return OutcomeWin, stake + wager
	case total == dealerTotal:
		return OutcomePush, stake
	default:
		return OutcomeLose, 0
	}
}

// blackjackWin rounds down to whole chips. The epsilon absorbs binary
// representation error such as 35*1.2 = 41.999...
func blackjackWin(wager int, payout float64) int {
	return int(math.Floor(float64(wager)*payout + 1e-9))
}

// finishRound credits payouts, records outcomes and leaves the round in
// Result or GameOver.
func (e *Engine) finishRound() error {
	payout, staked := 0, 0
	for _, h := range e.hands {
		payout += h.Payout
		staked += h.Bet.Stake
	}
	e.bankroll += payout
	e.lastPayout = payout
	e.lastNet = payout - staked
	e.roundsPlayed++

	dealerCards := e.dealer.Cards()
	for i, h := range e.hands {
		e.emit(events.HandSettled{
			SessionID:   e.sessionID,
			RoundID:     e.roundID,
			HandIndex:   i,
			Cards:       h.Hand.Cards(),
			Total:       h.Hand.Total(),
			DealerCards: dealerCards,
			DealerTotal: e.dealer.Total(),
			Stake:       h.Bet.Stake,
			Wager:       h.Bet.Wager,
			Payout:      h.Payout,
			Net:         h.Net(),
			Outcome:     string(h.Outcome),
			Actions:     actionStrings(h.Actions),
			At:          e.now(),
		})
	}

	gameOver := e.bankroll < e.MinimumBet()
	e.emit(events.RoundSettled{
		SessionID: e.sessionID,
		RoundID:   e.roundID,
		Hands:     len(e.hands),
		Payout:    payout,
		Net:       e.lastNet,
		Bankroll:  e.bankroll,
		GameOver:  gameOver,
		At:        e.now(),
	})
	e.logger.Debug("round settled", "round", e.roundID, "payout", payout, "net", e.lastNet, "bankroll", e.bankroll)

	e.message = e.resultMessage()
	if gameOver {
		e.message += ". Game over: bankroll below the minimum bet"
		e.transition(StateGameOver)
		return nil
	}
	e.transition(StateResult)
	return nil
}

// abort refunds every stake still on the table after the shoe ran dry
func (e *Engine) abort(cause error) error {
	refund := 0
	for _, h := range e.hands {
		refund += h.Bet.Stake
	}
	e.bankroll += refund
	roundID := e.roundID

	e.emit(events.RoundAborted{
		SessionID: e.sessionID,
		RoundID:   roundID,
		Refunded:  refund,
		Reason:    cause.Error(),
		At:        e.now(),
	})
	e.logger.Warn("round aborted", "round", roundID, "refunded", refund, "err", cause)

	e.clearRound()
	e.forceReshuffle = true
	e.message = "Shoe exhausted, bets returned"

	next := StateBetting
	if e.bankroll < e.MinimumBet() {
		next = StateGameOver
	}
	e.transition(next)
	return fmt.Errorf("round %s aborted: %w", roundID, cause)
}

// clearRound discards hands and per-round messages
func (e *Engine) clearRound() {
	e.hands = nil
	e.current = 0
	e.dealer = nil
	e.hole = cards.HeldCard{}
	e.holeIn = false
	e.message = ""
	e.lastPayout = 0
	e.lastNet = 0
	e.roundID = ""
}

func (e *Engine) resultMessage() string {
	if len(e.hands) == 1 {
		h := e.hands[0]
		switch h.Outcome {
		case OutcomeBlackjack:
			return fmt.Sprintf("Blackjack! %+d", h.Net())
		case OutcomeDealerBust:
			return fmt.Sprintf("Dealer busts, you win %+d", h.Net())
		case OutcomeWin:
			return fmt.Sprintf("You win %+d", h.Net())
		case OutcomePush:
			return "Push"
		case OutcomeSurrender:
			return fmt.Sprintf("Surrendered %+d", h.Net())
		case OutcomeBust:
			return fmt.Sprintf("Bust %+d", h.Net())
		default:
			return fmt.Sprintf("Dealer wins %+d", h.Net())
		}
	}
	return fmt.Sprintf("Net %+d over %d hands", e.lastNet, len(e.hands))
}
