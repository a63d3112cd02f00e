package main

import (
	"fmt"
	"strings"

	"github.com/lazharichir/blackjack/rules"
	"github.com/lazharichir/blackjack/tui"
)

// ProfilesCmd lists every table profile
type ProfilesCmd struct {
	Verbose bool `short:"V" help:"Show each profile's full rules and the wild pool"`
}

func (c *ProfilesCmd) Run(g *Globals) error {
	fmt.Println(tui.Profiles(rules.Profiles(), g.Config.StartingProfile().ID))
	if !c.Verbose {
		return nil
	}

	for _, p := range rules.Profiles() {
		if p.Wild {
			continue
		}
		fmt.Printf("\n%s\n  %s\n", tui.HeaderStyle.Render(p.Name), strings.Join(p.Rules.Summary(), "\n  "))
	}
	fmt.Printf("\n%s\n", tui.HeaderStyle.Render("Wild pool"))
	for _, e := range g.Config.WildPool() {
		fmt.Printf("  %-24s %.2f%%\n", e.Label, e.Rules.ApproximateHouseEdge())
	}
	return nil
}
