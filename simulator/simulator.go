// Package simulator plays whole sessions with a basic-strategy player.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/events"
	"github.com/lazharichir/blackjack/game"
	"github.com/lazharichir/blackjack/randutil"
	"github.com/lazharichir/blackjack/rules"
	"github.com/lazharichir/blackjack/table"
	"golang.org/x/sync/errgroup"
)

// Config holds configuration for running simulations
type Config struct {
	Sessions    int
	Rounds      int
	Bankroll    int
	MinimumBet  int
	Bet         int // flat bet; 0 bets the table minimum
	Penetration *float64 // nil uses the shoe default
	Profile     rules.Profile
	WildPool    rules.Pool
	Seed        int64
	Workers     int
	Logger      *log.Logger
}

// SessionResult is the tally of one simulated session
type SessionResult struct {
	Index         int
	SessionID     string
	RoundsPlayed  int
	HandsSettled  int
	Aborted       int
	Net           int
	FinalBankroll int
	Busted        bool
	Outcomes      map[game.Outcome]int
}

// Summary aggregates all sessions
type Summary struct {
	Sessions []SessionResult
	Rounds   int
	Hands    int
	Aborted  int
	Net      int
	Busted   int
	Outcomes map[game.Outcome]int
}

// Simulator runs blackjack sessions in parallel
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.Profile.ID == "" {
		config.Profile = rules.Default()
	}
	if config.Bankroll == 0 {
		config.Bankroll = game.DefaultBankroll
	}
	if config.MinimumBet == 0 {
		config.MinimumBet = game.DefaultBaseMinimumBet
	}
	if config.WildPool == nil {
		config.WildPool = rules.DefaultWildPool()
	}
	return &Simulator{config: config}
}

// Run plays every session and returns the totals
func (s *Simulator) Run(ctx context.Context) (*Summary, error) {
	if s.config.Sessions < 1 || s.config.Rounds < 1 {
		return nil, fmt.Errorf("need at least one session and one round, got %d x %d", s.config.Sessions, s.config.Rounds)
	}

	results := make([]SessionResult, s.config.Sessions)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for i := 0; i < s.config.Sessions; i++ {
		g.Go(func() error {
			r, err := s.playSession(ctx, i)
			if err != nil {
				return fmt.Errorf("session %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &Summary{Sessions: results, Outcomes: map[game.Outcome]int{}}
	for _, r := range results {
		summary.Rounds += r.RoundsPlayed
		summary.Hands += r.HandsSettled
		summary.Aborted += r.Aborted
		summary.Net += r.Net
		if r.Busted {
			summary.Busted++
		}
		for o, n := range r.Outcomes {
			summary.Outcomes[o] += n
		}
	}
	s.config.Logger.Info("simulation finished", "sessions", len(results), "rounds", summary.Rounds, "net", summary.Net)
	return summary, nil
}

func (s *Simulator) playSession(ctx context.Context, index int) (SessionResult, error) {
	result := SessionResult{Index: index, Outcomes: map[game.Outcome]int{}}
	var mu sync.Mutex

	opts := []game.EngineOption{
		game.WithRNG(randutil.New(s.config.Seed+int64(index))),
		game.WithBankroll(s.config.Bankroll),
		game.WithBaseMinimumBet(s.config.MinimumBet),
		game.WithProfile(s.config.Profile),
		game.WithWildPool(s.config.WildPool),
		game.WithLogger(s.config.Logger.With("session", index)),
		game.WithEventHandler(func(e events.Event) {
			mu.Lock()
			defer mu.Unlock()
			switch ev := e.(type) {
			case events.HandSettled:
				result.HandsSettled++
				result.Outcomes[game.Outcome(ev.Outcome)]++
			case events.RoundSettled:
				result.RoundsPlayed++
			case events.RoundAborted:
				result.Aborted++
			}
		}),
	}
	if s.config.Penetration != nil {
		opts = append(opts, game.WithPenetration(*s.config.Penetration))
	}
	engine, err := game.NewEngine(opts...)
	if err != nil {
		return result, err
	}
	result.SessionID = engine.SessionID()

	session := table.NewSession(engine, s.config.Logger)
	session.Start()
	defer session.Stop()

	rounds := func() int {
		mu.Lock()
		defer mu.Unlock()
		return result.RoundsPlayed
	}

	v := session.View()
	for v.State != game.StateGameOver && rounds() < s.config.Rounds {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		var cmd game.Command
		switch v.State {
		case game.StateBetting:
			cmd = game.PlaceBetCommand{Amount: s.betFor(v)}
		case game.StatePlayerTurn:
			cmd = commandFor(BasicStrategy(v))
		case game.StateResult:
			cmd = game.NextHandCommand{}
		default:
			return result, fmt.Errorf("engine at rest in %s", v.State)
		}
		v, err = session.Submit(ctx, cmd)
		if errors.Is(err, cards.ErrShoeExhausted) {
			s.config.Logger.Debug("round aborted", "session", index, "err", err)
			continue
		}
		if err != nil {
			return result, err
		}
	}

	session.Stop()
	mu.Lock()
	defer mu.Unlock()
	result.FinalBankroll = v.Bankroll
	result.Net = v.Bankroll - s.config.Bankroll
	result.Busted = v.State == game.StateGameOver
	return result, nil
}

// betFor stakes the flat bet, clamped to the table minimum and bankroll
func (s *Simulator) betFor(v game.View) int {
	bet := max(s.config.Bet, v.MinimumBet)
	return min(bet, v.Bankroll)
}

func commandFor(a game.Action) game.Command {
	switch a {
	case game.ActionHit:
		return game.HitCommand{}
	case game.ActionDouble:
		return game.DoubleDownCommand{}
	case game.ActionSplit:
		return game.SplitCommand{}
	case game.ActionSurrender:
		return game.SurrenderCommand{}
	default:
		return game.StandCommand{}
	}
}
