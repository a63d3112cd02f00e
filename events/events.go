package events

import (
	"time"

	"github.com/lazharichir/blackjack/cards"
)

// Session boundary events

type SessionStarted struct {
	SessionID string
	ProfileID string
	Bankroll  int
	At        time.Time
}

func (e SessionStarted) Name() string          { return "SESSION_STARTED" }
func (e SessionStarted) OccurredAt() time.Time { return e.At }

type SessionEnded struct {
	SessionID     string
	RoundsPlayed  int
	FinalBankroll int
	At            time.Time
}

func (e SessionEnded) Name() string          { return "SESSION_ENDED" }
func (e SessionEnded) OccurredAt() time.Time { return e.At }

// StateChanged is emitted on every state machine transition
type StateChanged struct {
	SessionID     string
	RoundID       string
	PreviousState string
	NewState      string
	At            time.Time
}

func (e StateChanged) Name() string          { return "STATE_CHANGED" }
func (e StateChanged) OccurredAt() time.Time { return e.At }

// Shoe and rules

type ShoeShuffled struct {
	SessionID string
	DeckCount int
	Cards     int
	Forced    bool // after an exhausted shoe
	At        time.Time
}

func (e ShoeShuffled) Name() string          { return "SHOE_SHUFFLED" }
func (e ShoeShuffled) OccurredAt() time.Time { return e.At }

// RuleSetDrawn records a wild profile draw
type RuleSetDrawn struct {
	SessionID         string
	Label             string
	HouseEdgeEstimate float64
	Summary           []string
	At                time.Time
}

func (e RuleSetDrawn) Name() string          { return "RULE_SET_DRAWN" }
func (e RuleSetDrawn) OccurredAt() time.Time { return e.At }

type ProfileSwitched struct {
	SessionID   string
	FromProfile string
	ToProfile   string
	MinimumBet  int
	At          time.Time
}

func (e ProfileSwitched) Name() string          { return "PROFILE_SWITCHED" }
func (e ProfileSwitched) OccurredAt() time.Time { return e.At }

type BankrollReset struct {
	SessionID string
	Previous  int
	Amount    int
	At        time.Time
}

func (e BankrollReset) Name() string          { return "BANKROLL_RESET" }
func (e BankrollReset) OccurredAt() time.Time { return e.At }

// Round events

type BetPlaced struct {
	SessionID string
	RoundID   string
	Amount    int
	Bankroll  int
	At        time.Time
}

func (e BetPlaced) Name() string          { return "BET_PLACED" }
func (e BetPlaced) OccurredAt() time.Time { return e.At }

type PlayerActed struct {
	SessionID string
	RoundID   string
	HandIndex int
	Action    string
	Card      *cards.Card // drawn card, if any
	Total     int
	At        time.Time
}

func (e PlayerActed) Name() string          { return "PLAYER_ACTED" }
func (e PlayerActed) OccurredAt() time.Time { return e.At }

// HandSettled is the outcome record of one player hand
type HandSettled struct {
	SessionID   string
	RoundID     string
	HandIndex   int
	Cards       cards.Stack
	Total       int
	DealerCards cards.Stack
	DealerTotal int
	Stake       int
	Wager       int
	Payout      int
	Net         int
	Outcome     string
	Actions     []string
	At          time.Time
}

func (e HandSettled) Name() string          { return "HAND_SETTLED" }
func (e HandSettled) OccurredAt() time.Time { return e.At }

type RoundSettled struct {
	SessionID string
	RoundID   string
	Hands     int
	Payout    int
	Net       int
	Bankroll  int
	GameOver  bool
	At        time.Time
}

func (e RoundSettled) Name() string          { return "ROUND_SETTLED" }
func (e RoundSettled) OccurredAt() time.Time { return e.At }

// RoundAborted is emitted when the shoe runs dry mid-round
type RoundAborted struct {
	SessionID string
	RoundID   string
	Refunded  int
	Reason    string
	At        time.Time
}

func (e RoundAborted) Name() string          { return "ROUND_ABORTED" }
func (e RoundAborted) OccurredAt() time.Time { return e.At }
