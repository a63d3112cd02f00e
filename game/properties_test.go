package game

import (
	"math/rand/v2"
	"testing"

	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/events"
	"github.com/lazharichir/blackjack/randutil"
	"github.com/lazharichir/blackjack/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// playRandomly picks uniformly among the available actions, checking
// invariants after every step.
func playRandomly(t *testing.T, e *Engine, rng *rand.Rand, steps int) {
	t.Helper()
	for i := 0; i < steps; i++ {
		var err error
		switch e.State() {
		case StateBetting:
			if e.Bankroll() < e.MinimumBet() {
				err = e.ResetBankroll(1000)
				break
			}
			err = e.PlaceBet(e.MinimumBet() + rng.IntN(e.Bankroll()-e.MinimumBet()+1))
		case StatePlayerTurn:
			actions := e.AvailableActions()
			switch actions[rng.IntN(len(actions))] {
			case ActionHit:
				err = e.Hit()
			case ActionStand:
				err = e.Stand()
			case ActionDouble:
				err = e.DoubleDown()
			case ActionSplit:
				err = e.Split()
			case ActionSurrender:
				err = e.Surrender()
			}
		case StateResult:
			if rng.IntN(10) == 0 {
				profiles := rules.Profiles()
				err = e.SwitchProfile(profiles[rng.IntN(len(profiles))])
				if IsRejection(err) {
					err = e.NextHand()
				}
				break
			}
			err = e.NextHand()
		case StateGameOver:
			err = e.ResetBankroll(1000)
		default:
			t.Fatalf("engine at rest in %s", e.State())
		}
		require.NoError(t, err, "step %d in %s", i, e.State())

		shoe := e.Shoe()
		require.Equal(t, shoe.DeckCount()*cards.DeckSize, shoe.Remaining()+shoe.Dealt(), "card conservation")
		require.GreaterOrEqual(t, e.Bankroll(), 0, "bankroll went negative")
	}
}

func TestRandomPlayInvariants(t *testing.T) {
	for _, p := range rules.Profiles() {
		t.Run(p.ID, func(t *testing.T) {
			store := events.NewInMemoryEventStore()
			e, err := NewEngine(
				WithRNG(randutil.New(11)),
				WithEventStore(store),
				WithProfile(p),
				WithBankroll(1000),
			)
			require.NoError(t, err)

			playRandomly(t, e, randutil.New(29), 3000)

			records, err := events.Filter[events.HandSettled](store, e.SessionID())
			require.NoError(t, err)
			require.NotEmpty(t, records)
			checkSettlements(t, records)
		})
	}
}

// checkSettlements verifies every payout against its outcome category
func checkSettlements(t *testing.T, records []events.HandSettled) {
	t.Helper()
	for _, r := range records {
		switch Outcome(r.Outcome) {
		case OutcomePush:
			assert.Equal(t, r.Stake, r.Payout)
		case OutcomeLose, OutcomeBust:
			assert.Zero(t, r.Payout)
		case OutcomeWin, OutcomeDealerBust:
			assert.Equal(t, r.Stake+r.Wager, r.Payout)
		case OutcomeBlackjack:
			assert.Greater(t, r.Payout, r.Stake)
			assert.NotContains(t, r.Actions, string(ActionSplit))
		case OutcomeSurrender:
			assert.Equal(t, (r.Stake+1)/2, r.Payout)
		default:
			t.Errorf("unexpected outcome %q", r.Outcome)
		}
		assert.Equal(t, r.Payout-r.Stake, r.Net)
		assert.GreaterOrEqual(t, r.Wager, r.Stake)
	}
}

func TestSplitStakeIndependence(t *testing.T) {
	tests := []struct {
		name      string
		profileID string
		bets      []Bet
	}{
		{"paid split", rules.ClassicID, []Bet{{100, 100}, {100, 100}}},
		{"free split", rules.FreeBetID, []Bet{{100, 100}, {0, 100}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, ok := rules.Lookup(tc.profileID)
			require.True(t, ok)
			e, _ := newTestEngine(t, "8s 10h 8d 7c 3h 2d", WithProfile(p))
			require.NoError(t, e.PlaceBet(100))
			before := e.Bankroll()
			require.NoError(t, e.Split())

			assert.Equal(t, tc.bets, e.HandBets())
			staked := 0
			for _, b := range e.HandBets() {
				staked += b.Stake
				assert.Equal(t, 100, b.Wager)
			}
			assert.Equal(t, before-(staked-100), e.Bankroll())
		})
	}
}

func TestBlackjackPayoutTable(t *testing.T) {
	tests := []struct {
		wager  int
		payout float64
		want   int
	}{
		{100, 1.5, 150},
		{15, 1.5, 22},
		{100, 1.2, 120},
		{35, 1.2, 42},
		{25, 1.2, 30},
		{10, 1.0, 10},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, blackjackWin(tc.wager, tc.payout), "%d at %v", tc.wager, tc.payout)
	}
}
