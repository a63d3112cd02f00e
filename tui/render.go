// Package tui renders engine views for a terminal.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/game"
	"github.com/lazharichir/blackjack/rules"
)

// Card renders one card in its suit colour
func Card(c cards.Card) string {
	if c.Suit.IsRed() {
		return RedCardStyle.Render(c.String())
	}
	return BlackCardStyle.Render(c.String())
}

// Cards renders a stack separated by spaces
func Cards(cs cards.Stack) string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = Card(c)
	}
	return strings.Join(out, " ")
}

// Chips formats a signed chip amount
func Chips(n int) string {
	switch {
	case n > 0:
		return WinStyle.Render(fmt.Sprintf("+%d", n))
	case n < 0:
		return LossStyle.Render(fmt.Sprintf("%d", n))
	default:
		return fmt.Sprintf("%d", n)
	}
}

// View renders the whole table
func View(v game.View) string {
	var b strings.Builder

	header := fmt.Sprintf("%s · %s", v.ProfileName, v.RuleLabel)
	if v.RuleLabel == "" {
		header = v.ProfileName
	}
	b.WriteString(HeaderStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(LabelStyle.Render(strings.Join(v.RuleSummary, " · ")))
	b.WriteString("\n\n")

	b.WriteString(dealer(v))
	b.WriteString("\n")
	for i, h := range v.Hands {
		b.WriteString(hand(i, h, len(v.Hands) > 1))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %d   %s %d   %s %d/%d",
		LabelStyle.Render("bankroll"), v.Bankroll,
		LabelStyle.Render("min bet"), v.MinimumBet,
		LabelStyle.Render("shoe"), v.ShoeRemaining, v.ShoeSize)
	if v.ReshufflePending {
		b.WriteString(LabelStyle.Render("  (reshuffle next round)"))
	}
	b.WriteString("\n")

	if v.Message != "" {
		b.WriteString(MessageStyle.Render(v.Message))
		b.WriteString("\n")
	}
	if len(v.AvailableActions) > 0 {
		b.WriteString(ActionsStyle.Render("> " + actionList(v.AvailableActions)))
		b.WriteString("\n")
	}

	return BoxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func dealer(v game.View) string {
	if len(v.DealerCards) == 0 {
		return LabelStyle.Render("dealer  -")
	}
	s := fmt.Sprintf("%s  %s", LabelStyle.Render("dealer"), Cards(v.DealerCards))
	if v.DealerHoleHidden {
		return s + " " + HiddenCardStyle.Render("??") + fmt.Sprintf("  (%d)", v.DealerTotal)
	}
	return s + fmt.Sprintf("  (%d)", v.DealerTotal)
}

func hand(i int, h game.HandView, numbered bool) string {
	label := "you"
	if numbered {
		label = fmt.Sprintf("hand %d", i+1)
	}

	total := fmt.Sprintf("%d", h.Total)
	if h.Soft && !h.Bust {
		total = "soft " + total
	}

	line := fmt.Sprintf("%s  %s  (%s)  bet %d", LabelStyle.Render(label), Cards(h.Cards), total, h.Stake)
	if h.Wager != h.Stake {
		line += fmt.Sprintf(" / wager %d", h.Wager)
	}
	if h.Outcome != game.OutcomeNone {
		line += fmt.Sprintf("  %s %s", strings.ReplaceAll(string(h.Outcome), "_", " "), Chips(h.Net))
	}
	if h.Active {
		return ActiveHandStyle.Render("▶ ") + line
	}
	return "  " + line
}

func actionList(actions []game.Action) string {
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = string(a)
	}
	return strings.Join(names, " · ")
}

// Profiles renders the profile catalogue as a table
func Profiles(ps []rules.Profile, current string) string {
	rows := make([]string, 0, len(ps))
	for _, p := range ps {
		marker := "  "
		if p.ID == current {
			marker = ActiveHandStyle.Render("▶ ")
		}
		edge := fmt.Sprintf("%.2f%%", p.Rules.ApproximateHouseEdge())
		if p.Wild {
			edge = fmt.Sprintf("%.1f-%.1f%%", rules.WildEdgeMin, rules.WildEdgeMax)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			marker,
			lipgloss.NewStyle().Width(14).Render(p.ID),
			lipgloss.NewStyle().Width(8).Render(string(p.Difficulty)),
			lipgloss.NewStyle().Width(12).Render(edge),
			LabelStyle.Render(p.Tagline),
		))
	}
	return strings.Join(rows, "\n")
}
