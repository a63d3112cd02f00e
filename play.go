package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lazharichir/blackjack/events"
	"github.com/lazharichir/blackjack/game"
	"github.com/lazharichir/blackjack/rules"
	"github.com/lazharichir/blackjack/table"
	"github.com/lazharichir/blackjack/tui"
)

// PlayCmd runs an interactive table on stdin/stdout
type PlayCmd struct {
	Profile  string `short:"p" help:"Starting profile (overrides the config file)"`
	Bankroll int    `help:"Starting bankroll (overrides the config file)"`
	Seed     *int64 `help:"Deterministic shuffle seed"`
}

const playHelp = `commands:
  bet N | b N      place a bet
  hit | h          take a card
  stand | s        stand
  double | d       double down
  split | p        split a pair
  surrender | r    surrender
  next | n         start the next round
  profile ID       switch profile (between rounds)
  reset N          reset the bankroll (between rounds)
  profiles         list profiles
  help             this text
  quit             leave the table`

func (c *PlayCmd) Run(g *Globals) error {
	cfg := *g.Config
	if c.Profile != "" {
		if _, ok := rules.Lookup(c.Profile); !ok {
			return fmt.Errorf("profile %q: %w", c.Profile, game.ErrUnknownProfile)
		}
		cfg.Profile = c.Profile
	}
	if c.Bankroll != 0 {
		cfg.Bankroll = c.Bankroll
	}
	if c.Seed != nil {
		cfg.Seed = *c.Seed
	}

	store := events.NewInMemoryEventStore()
	opts := append(cfg.EngineOptions(),
		game.WithLogger(g.Logger.WithPrefix("engine")),
		game.WithEventStore(store),
		game.WithEventHandler(events.LogHandler(g.Logger.WithPrefix("events"))),
	)
	engine, err := game.NewEngine(opts...)
	if err != nil {
		return err
	}

	session := table.NewSession(engine, g.Logger)
	session.Start()
	defer session.Stop()

	return play(context.Background(), session, os.Stdin, os.Stdout)
}

// play is the read-eval-render loop of the table
func play(ctx context.Context, session *table.Session, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, tui.View(session.View()))

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(line) {
		case "":
			continue
		case "help", "?":
			fmt.Fprintln(out, playHelp)
			continue
		case "profiles":
			fmt.Fprintln(out, tui.Profiles(rules.Profiles(), session.View().ProfileID))
			continue
		}

		cmd, err := game.ParseCommand(line)
		if err != nil {
			fmt.Fprintln(out, tui.LossStyle.Render(err.Error()))
			continue
		}
		if _, ok := cmd.(game.EndSessionCommand); ok {
			v := session.View()
			fmt.Fprintf(out, "Leaving with %d chips.\n", v.Bankroll)
			return nil
		}

		v, err := session.Submit(ctx, cmd)
		switch {
		case err == nil:
		case game.IsRejection(err):
			fmt.Fprintln(out, tui.LossStyle.Render(err.Error()))
			continue
		case errors.Is(err, table.ErrSessionClosed):
			return err
		default:
			// aborted rounds still leave a playable table
			fmt.Fprintln(out, tui.LossStyle.Render(err.Error()))
		}
		fmt.Fprintln(out, tui.View(v))
	}
}
