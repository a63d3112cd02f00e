package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"time"

	"github.com/lazharichir/blackjack/game"
	"github.com/lazharichir/blackjack/rules"
	"github.com/lazharichir/blackjack/simulator"
	"github.com/lazharichir/blackjack/tui"
)

// SimulateCmd plays sessions with the basic-strategy player
type SimulateCmd struct {
	Sessions int           `default:"100" help:"Number of sessions"`
	Rounds   int           `default:"1000" help:"Rounds per session"`
	Bet      int           `help:"Flat bet (defaults to the table minimum)"`
	Profile  string        `short:"p" help:"Profile to simulate (overrides the config file)"`
	Seed     *int64        `help:"Base seed; session i uses seed+i"`
	Workers  int           `help:"Parallel sessions (defaults to GOMAXPROCS)"`
	Timeout  time.Duration `default:"5m" help:"Give up after this long"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	profile := g.Config.StartingProfile()
	if c.Profile != "" {
		p, ok := rules.Lookup(c.Profile)
		if !ok {
			return fmt.Errorf("profile %q: %w", c.Profile, game.ErrUnknownProfile)
		}
		profile = p
	}
	seed := g.Config.Seed
	if c.Seed != nil {
		seed = *c.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	g.Logger.Info("simulating", "profile", profile.ID, "sessions", c.Sessions, "rounds", c.Rounds, "seed", seed)
	start := time.Now()
	summary, err := simulator.New(simulator.Config{
		Sessions:    c.Sessions,
		Rounds:      c.Rounds,
		Bankroll:    g.Config.Bankroll,
		MinimumBet:  g.Config.MinimumBet,
		Bet:         c.Bet,
		Penetration: g.Config.Penetration,
		Profile:     profile,
		WildPool:    g.Config.WildPool(),
		Seed:        seed,
		Workers:     c.Workers,
		Logger:      g.Logger.WithPrefix("simulator"),
	}).Run(ctx)
	if err != nil {
		return err
	}

	fmt.Println(tui.HeaderStyle.Render(fmt.Sprintf("%s · %d sessions", profile.Name, len(summary.Sessions))))
	fmt.Printf("rounds   %d\n", summary.Rounds)
	fmt.Printf("hands    %d\n", summary.Hands)
	fmt.Printf("aborted  %d\n", summary.Aborted)
	fmt.Printf("busted   %d\n", summary.Busted)
	fmt.Printf("net      %s\n", tui.Chips(summary.Net))
	if summary.Rounds > 0 {
		fmt.Printf("per round %.3f\n", float64(summary.Net)/float64(summary.Rounds))
	}

	outcomes := make([]game.Outcome, 0, len(summary.Outcomes))
	for o := range summary.Outcomes {
		outcomes = append(outcomes, o)
	}
	slices.Sort(outcomes)
	for _, o := range outcomes {
		n := summary.Outcomes[o]
		fmt.Printf("  %-12s %7d  %5.1f%%\n", o, n, 100*float64(n)/float64(max(summary.Hands, 1)))
	}
	g.Logger.Info("simulation done", "elapsed", time.Since(start))
	return nil
}
