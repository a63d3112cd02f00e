package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Command represents a player action that can be executed by the engine
type Command interface {
	CommandName() string
}

// PlaceBetCommand starts a round with the given stake
type PlaceBetCommand struct {
	Amount int
}

func (c PlaceBetCommand) CommandName() string { return "place-bet" }

type HitCommand struct{}

func (c HitCommand) CommandName() string { return "hit" }

type StandCommand struct{}

func (c StandCommand) CommandName() string { return "stand" }

type DoubleDownCommand struct{}

func (c DoubleDownCommand) CommandName() string { return "double-down" }

type SplitCommand struct{}

func (c SplitCommand) CommandName() string { return "split" }

type SurrenderCommand struct{}

func (c SurrenderCommand) CommandName() string { return "surrender" }

type NextHandCommand struct{}

func (c NextHandCommand) CommandName() string { return "next-hand" }

// SwitchProfileCommand changes dealer by profile ID
type SwitchProfileCommand struct {
	ProfileID string
}

func (c SwitchProfileCommand) CommandName() string { return "switch-profile" }

// ResetBankrollCommand replaces the bankroll
type ResetBankrollCommand struct {
	Amount int
}

func (c ResetBankrollCommand) CommandName() string { return "reset-bankroll" }

// EndSessionCommand emits the session-end signal
type EndSessionCommand struct{}

func (c EndSessionCommand) CommandName() string { return "end-session" }

// Execute dispatches a command onto the matching operation
func (e *Engine) Execute(cmd Command) error {
	switch c := cmd.(type) {
	case PlaceBetCommand:
		return e.PlaceBet(c.Amount)
	case HitCommand:
		return e.Hit()
	case StandCommand:
		return e.Stand()
	case DoubleDownCommand:
		return e.DoubleDown()
	case SplitCommand:
		return e.Split()
	case SurrenderCommand:
		return e.Surrender()
	case NextHandCommand:
		return e.NextHand()
	case SwitchProfileCommand:
		return e.SwitchProfileByID(c.ProfileID)
	case ResetBankrollCommand:
		return e.ResetBankroll(c.Amount)
	case EndSessionCommand:
		e.End()
		return nil
	default:
		return fmt.Errorf("%T: %w", cmd, ErrUnknownCommand)
	}
}

// ParseCommand reads the line syntax of the play shell, e.g. "bet 100",
// "hit", "profile wild", "reset 500".
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty command: %w", ErrUnknownCommand)
	}

	amount := func() (int, error) {
		if len(fields) != 2 {
			return 0, fmt.Errorf("%s needs an amount: %w", fields[0], ErrInvalidAmount)
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return 0, fmt.Errorf("amount %q: %w", fields[1], ErrInvalidAmount)
		}
		return n, nil
	}

	switch fields[0] {
	case "bet", "b":
		n, err := amount()
		if err != nil {
			return nil, err
		}
		return PlaceBetCommand{Amount: n}, nil
	case "hit", "h":
		return HitCommand{}, nil
	case "stand", "s":
		return StandCommand{}, nil
	case "double", "d":
		return DoubleDownCommand{}, nil
	case "split", "p":
		return SplitCommand{}, nil
	case "surrender", "r":
		return SurrenderCommand{}, nil
	case "next", "n":
		return NextHandCommand{}, nil
	case "profile":
		if len(fields) != 2 {
			return nil, fmt.Errorf("profile needs an id: %w", ErrUnknownProfile)
		}
		return SwitchProfileCommand{ProfileID: fields[1]}, nil
	case "reset":
		n, err := amount()
		if err != nil {
			return nil, err
		}
		return ResetBankrollCommand{Amount: n}, nil
	case "quit", "exit":
		return EndSessionCommand{}, nil
	default:
		return nil, fmt.Errorf("%q: %w", fields[0], ErrUnknownCommand)
	}
}
