// Package game is the blackjack round engine: it owns the shoe, deals,
// enforces the active rules and settles bets.
//
// The Engine is synchronous and not reentrant. Every operation validates its
// preconditions, then runs its whole effect (dealer play and settlement
// included) before returning. Callers serialise access; see table.Session.
package game

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/events"
	"github.com/lazharichir/blackjack/hands"
	"github.com/lazharichir/blackjack/randutil"
	"github.com/lazharichir/blackjack/rules"
)

// Engine runs rounds of single-player blackjack
type Engine struct {
	sessionID string
	logger    *log.Logger
	clock     quartz.Clock
	rng       *rand.Rand
	store     events.EventStore
	handlers  []events.EventHandler

	profile     rules.Profile
	rules       rules.RuleSet
	ruleLabel   string
	selector    *rules.Selector
	baseMinimum int

	shoe           *cards.Shoe
	forceReshuffle bool

	state    State
	bankroll int

	roundID string
	hands   []*PlayerHand
	current int
	dealer  *hands.Hand
	hole    cards.HeldCard
	holeIn  bool

	message      string
	lastPayout   int
	lastNet      int
	roundsPlayed int
	ended        bool
}

// NewEngine creates an engine in the betting state
func NewEngine(opts ...EngineOption) (*Engine, error) {
	cfg := &engineConfig{
		bankroll:    DefaultBankroll,
		baseMinimum: DefaultBaseMinimumBet,
		penetration: cards.DefaultPenetration,
		profile:     rules.Default(),
		wildPool:    rules.DefaultWildPool(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.bankroll < 0 {
		return nil, fmt.Errorf("starting bankroll %d: %w", cfg.bankroll, ErrInvalidAmount)
	}
	if cfg.baseMinimum < 1 {
		return nil, fmt.Errorf("base minimum bet %d: %w", cfg.baseMinimum, ErrInvalidAmount)
	}
	if cfg.penetration < 0 || cfg.penetration >= 1 {
		return nil, fmt.Errorf("penetration %v must be in [0, 1): %w", cfg.penetration, ErrInvalidAmount)
	}
	if !cfg.profile.Wild {
		if err := cfg.profile.Rules.Validate(); err != nil {
			return nil, fmt.Errorf("profile %q: %w", cfg.profile.ID, err)
		}
	}
	if cfg.rng == nil {
		cfg.rng = randutil.NewFromSeed(0)
	}
	if cfg.clock == nil {
		cfg.clock = quartz.NewReal()
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}
	if cfg.sessionID == "" {
		cfg.sessionID = uuid.NewString()
	}

	selector, err := rules.NewSelector(cfg.wildPool, cfg.rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create wild selector: %w", err)
	}

	e := &Engine{
		sessionID:   cfg.sessionID,
		logger:      cfg.logger,
		clock:       cfg.clock,
		rng:         cfg.rng,
		store:       cfg.store,
		handlers:    cfg.handlers,
		selector:    selector,
		baseMinimum: cfg.baseMinimum,
		bankroll:    cfg.bankroll,
		state:       StateBetting,
	}

	e.loadProfile(cfg.profile)
	if cfg.shoe != nil {
		e.shoe = cfg.shoe
		if e.shoe.DeckCount() != e.rules.DeckCount {
			e.shoe.Build(e.rules.DeckCount)
		}
	} else {
		e.shoe = cards.NewShoe(e.rules.DeckCount, cfg.penetration, e.rng)
	}

	if e.bankroll < e.MinimumBet() {
		e.state = StateGameOver
	}

	e.emit(events.SessionStarted{
		SessionID: e.sessionID,
		ProfileID: e.profile.ID,
		Bankroll:  e.bankroll,
		At:        e.now(),
	})
	e.logger.Info("session started", "session", e.sessionID, "profile", e.profile.ID, "bankroll", e.bankroll)
	return e, nil
}

// SessionID identifies this engine's session in emitted events
func (e *Engine) SessionID() string { return e.sessionID }

// State returns the current state machine state
func (e *Engine) State() State { return e.state }

// Bankroll returns the chips not currently on the table
func (e *Engine) Bankroll() int { return e.bankroll }

// Rules returns the active rule set
func (e *Engine) Rules() rules.RuleSet { return e.rules }

// Profile returns the active profile
func (e *Engine) Profile() rules.Profile { return e.profile }

// MinimumBet is the base minimum times the active multiplier
func (e *Engine) MinimumBet() int {
	return e.baseMinimum * e.rules.MinimumBetMultiplier
}

// Shoe exposes the shoe for inspection. Callers must not draw from it.
func (e *Engine) Shoe() *cards.Shoe { return e.shoe }

// RoundsPlayed counts settled rounds
func (e *Engine) RoundsPlayed() int { return e.roundsPlayed }

// HandBets returns one Bet per player hand, in hand order
func (e *Engine) HandBets() []Bet {
	out := make([]Bet, len(e.hands))
	for i, h := range e.hands {
		out[i] = h.Bet
	}
	return out
}

// End emits the session-end signal once
func (e *Engine) End() {
	if e.ended {
		return
	}
	e.ended = true
	e.emit(events.SessionEnded{
		SessionID:     e.sessionID,
		RoundsPlayed:  e.roundsPlayed,
		FinalBankroll: e.bankroll,
		At:            e.now(),
	})
	e.logger.Info("session ended", "session", e.sessionID, "rounds", e.roundsPlayed, "bankroll", e.bankroll)
}

func (e *Engine) now() time.Time {
	return e.clock.Now()
}

// emit appends the event to the store and notifies all handlers
func (e *Engine) emit(event events.Event) {
	if e.store != nil {
		if err := e.store.Append(event); err != nil {
			e.logger.Warn("failed to append event", "event", event.Name(), "err", err)
		}
	}
	for _, handler := range e.handlers {
		handler(event)
	}
}

func (e *Engine) transition(to State) {
	from := e.state
	e.state = to
	e.logger.Debug("state", "from", from, "to", to)
	e.emit(events.StateChanged{
		SessionID:     e.sessionID,
		RoundID:       e.roundID,
		PreviousState: string(from),
		NewState:      string(to),
		At:            e.now(),
	})
}

// loadProfile activates p; wild profiles draw their rules
func (e *Engine) loadProfile(p rules.Profile) {
	e.profile = p
	if !p.Wild {
		e.rules = p.Rules
		e.ruleLabel = p.Name
		return
	}
	label, rs := e.selector.Next()
	e.rules = rs
	e.ruleLabel = label
	e.emit(events.RuleSetDrawn{
		SessionID:         e.sessionID,
		Label:             label,
		HouseEdgeEstimate: rs.ApproximateHouseEdge(),
		Summary:           rs.Summary(),
		At:                e.now(),
	})
	e.logger.Info("wild rules drawn", "label", label, "edge", rs.ApproximateHouseEdge())
}

// rebuildShoe reshuffles a full shoe for the active profile, drawing new wild
// rules first when needed.
func (e *Engine) rebuildShoe(forced bool) {
	e.loadProfile(e.profile)
	e.shoe.Build(e.rules.DeckCount)
	e.forceReshuffle = false
	e.emit(events.ShoeShuffled{
		SessionID: e.sessionID,
		DeckCount: e.rules.DeckCount,
		Cards:     e.shoe.Size(),
		Forced:    forced,
		At:        e.now(),
	})
	e.logger.Info("shoe shuffled", "decks", e.rules.DeckCount, "forced", forced)
}

func (e *Engine) reshufflePending() bool {
	return e.forceReshuffle || e.shoe.NeedsReshuffle()
}
