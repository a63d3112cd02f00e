// Package config loads the blackjack settings file (HCL).
//
//	bankroll    = 1000
//	minimum_bet = 10
//	penetration = 0.75
//	profile     = "classic"
//	seed        = 42
//	log_level   = "info"
//
//	wild_ruleset "Double Deck H17" {
//	  decks               = 2
//	  dealer_hits_soft_17 = true
//	}
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/game"
	"github.com/lazharichir/blackjack/randutil"
	"github.com/lazharichir/blackjack/rules"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the whole settings file
type Config struct {
	Bankroll    int     `hcl:"bankroll,optional"`
	MinimumBet  int     `hcl:"minimum_bet,optional"`
	Penetration *float64 `hcl:"penetration,optional"` // 0 never reshuffles early
	Profile     string  `hcl:"profile,optional"`
	Seed        int64   `hcl:"seed,optional"`
	LogLevel    string  `hcl:"log_level,optional"`

	WildRuleSets []WildRuleSet `hcl:"wild_ruleset,block"`
}

// WildRuleSet is one wild pool entry. Unset fields take the standard game's
// values.
type WildRuleSet struct {
	Label                string  `hcl:"label,label"`
	Decks                int     `hcl:"decks"`
	DealerHitsSoft17     bool    `hcl:"dealer_hits_soft_17,optional"`
	DoubleOn             []int   `hcl:"double_on,optional"`
	DoubleAfterSplit     *bool   `hcl:"double_after_split,optional"`
	MaxHands             int     `hcl:"max_hands,optional"`
	ResplitAces          bool    `hcl:"resplit_aces,optional"`
	SplitAcesOneCard     *bool   `hcl:"split_aces_one_card,optional"`
	Surrender            bool    `hcl:"surrender,optional"`
	EarlySurrender       bool    `hcl:"early_surrender,optional"`
	BlackjackPayout      float64 `hcl:"blackjack_payout,optional"`
	MinimumBetMultiplier int     `hcl:"minimum_bet_multiplier,optional"`
	FreeDoubles          bool    `hcl:"free_doubles,optional"`
	FreeSplits           bool    `hcl:"free_splits,optional"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads filename. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source, applies defaults and validates
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Bankroll == 0 {
		c.Bankroll = game.DefaultBankroll
	}
	if c.MinimumBet == 0 {
		c.MinimumBet = game.DefaultBaseMinimumBet
	}
	if c.Penetration == nil {
		p := cards.DefaultPenetration
		c.Penetration = &p
	}
	if c.Profile == "" {
		c.Profile = rules.ClassicID
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate reports the first invalid setting
func (c *Config) Validate() error {
	if c.Bankroll < 0 {
		return fmt.Errorf("%w: bankroll %d is negative", ErrInvalidConfig, c.Bankroll)
	}
	if c.MinimumBet < 1 {
		return fmt.Errorf("%w: minimum_bet %d must be at least 1", ErrInvalidConfig, c.MinimumBet)
	}
	if p := c.ShoePenetration(); p < 0 || p >= 1 {
		return fmt.Errorf("%w: penetration %v must be in [0, 1)", ErrInvalidConfig, p)
	}
	if _, ok := rules.Lookup(c.Profile); !ok {
		return fmt.Errorf("%w: unknown profile %q", ErrInvalidConfig, c.Profile)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}
	if len(c.WildRuleSets) > 0 {
		if err := c.WildPool().Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// Level returns the parsed log level
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// ShoePenetration returns the configured penetration, or the default when
// unset
func (c *Config) ShoePenetration() float64 {
	if c.Penetration == nil {
		return cards.DefaultPenetration
	}
	return *c.Penetration
}

// StartingProfile returns the configured profile
func (c *Config) StartingProfile() rules.Profile {
	p, ok := rules.Lookup(c.Profile)
	if !ok {
		return rules.Default()
	}
	return p
}

// WildPool converts the wild_ruleset blocks, or returns the built-in pool
// when there are none.
func (c *Config) WildPool() rules.Pool {
	if len(c.WildRuleSets) == 0 {
		return rules.DefaultWildPool()
	}
	pool := make(rules.Pool, 0, len(c.WildRuleSets))
	for _, w := range c.WildRuleSets {
		pool = append(pool, rules.Entry{Label: strings.TrimSpace(w.Label), Rules: w.RuleSet()})
	}
	return pool
}

// RuleSet fills unset fields from rules.Standard
func (w WildRuleSet) RuleSet() rules.RuleSet {
	r := rules.Standard()
	r.DeckCount = w.Decks
	r.DealerHitsSoft17 = w.DealerHitsSoft17
	r.DoubleRestrictedTotals = rules.Totals(w.DoubleOn...)
	if w.DoubleAfterSplit != nil {
		r.DoubleAfterSplit = *w.DoubleAfterSplit
	}
	if w.MaxHands != 0 {
		r.MaxHandsAfterSplit = w.MaxHands
	}
	r.ResplitAces = w.ResplitAces
	if w.SplitAcesOneCard != nil {
		r.SplitAcesOneCard = *w.SplitAcesOneCard
	}
	r.Surrender = w.Surrender || w.EarlySurrender
	r.EarlySurrender = w.EarlySurrender
	if w.BlackjackPayout != 0 {
		r.BlackjackPayout = w.BlackjackPayout
	}
	if w.MinimumBetMultiplier != 0 {
		r.MinimumBetMultiplier = w.MinimumBetMultiplier
	}
	r.FreeDoubles = w.FreeDoubles
	r.FreeSplits = w.FreeSplits
	return r
}

// EngineOptions turns the settings into engine options. Seed 0 means a
// time-seeded source.
func (c *Config) EngineOptions() []game.EngineOption {
	return []game.EngineOption{
		game.WithRNG(randutil.NewFromSeed(c.Seed)),
		game.WithBankroll(c.Bankroll),
		game.WithBaseMinimumBet(c.MinimumBet),
		game.WithPenetration(c.ShoePenetration()),
		game.WithProfile(c.StartingProfile()),
		game.WithWildPool(c.WildPool()),
	}
}
