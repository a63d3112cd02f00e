package game

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/events"
	"github.com/lazharichir/blackjack/rules"
)

const (
	DefaultBankroll       = 1000
	DefaultBaseMinimumBet = 10
)

// EngineOption configures an Engine during creation.
type EngineOption func(*engineConfig)

// engineConfig holds all configuration for creating an engine.
type engineConfig struct {
	rng         *rand.Rand
	clock       quartz.Clock
	logger      *log.Logger
	store       events.EventStore
	handlers    []events.EventHandler
	bankroll    int
	baseMinimum int
	penetration float64
	profile     rules.Profile
	wildPool    rules.Pool
	shoe        *cards.Shoe
	sessionID   string
}

// WithRNG sets the source used for shuffling and wild draws. Default is a
// time-seeded source.
func WithRNG(rng *rand.Rand) EngineOption {
	return func(c *engineConfig) {
		c.rng = rng
	}
}

// WithClock sets the clock used to timestamp events
func WithClock(clock quartz.Clock) EngineOption {
	return func(c *engineConfig) {
		c.clock = clock
	}
}

// WithLogger sets the engine logger. Default discards everything.
func WithLogger(logger *log.Logger) EngineOption {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithEventStore appends every emitted event to store
func WithEventStore(store events.EventStore) EngineOption {
	return func(c *engineConfig) {
		c.store = store
	}
}

// WithEventHandler registers a handler called for every emitted event
func WithEventHandler(handler events.EventHandler) EngineOption {
	return func(c *engineConfig) {
		c.handlers = append(c.handlers, handler)
	}
}

// WithBankroll sets the starting bankroll. Default is 1000.
func WithBankroll(chips int) EngineOption {
	return func(c *engineConfig) {
		c.bankroll = chips
	}
}

// WithBaseMinimumBet sets the minimum bet before the profile multiplier.
// Default is 10.
func WithBaseMinimumBet(chips int) EngineOption {
	return func(c *engineConfig) {
		c.baseMinimum = chips
	}
}

// WithPenetration sets the shoe reshuffle threshold
func WithPenetration(p float64) EngineOption {
	return func(c *engineConfig) {
		c.penetration = p
	}
}

// WithProfile sets the starting profile. Default is classic.
func WithProfile(p rules.Profile) EngineOption {
	return func(c *engineConfig) {
		c.profile = p
	}
}

// WithWildPool replaces the built-in wild rule pool
func WithWildPool(pool rules.Pool) EngineOption {
	return func(c *engineConfig) {
		c.wildPool = pool
	}
}

// WithShoe uses a specific shoe. The engine rebuilds it if its deck count
// does not match the starting rules, so tests stack cards after NewEngine.
func WithShoe(shoe *cards.Shoe) EngineOption {
	return func(c *engineConfig) {
		c.shoe = shoe
	}
}

// WithSessionID overrides the generated session ID
func WithSessionID(id string) EngineOption {
	return func(c *engineConfig) {
		c.sessionID = id
	}
}
