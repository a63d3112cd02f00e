package simulator

import (
	"context"
	"testing"

	"github.com/lazharichir/blackjack/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunIsReproducible(t *testing.T) {
	cfg := Config{Sessions: 4, Rounds: 50, Seed: 7, Workers: 2}

	first, err := New(cfg).Run(context.Background())
	require.NoError(t, err)
	second, err := New(cfg).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.Net, second.Net)
	assert.Equal(t, first.Rounds, second.Rounds)
	assert.Equal(t, first.Outcomes, second.Outcomes)
	for i := range first.Sessions {
		assert.Equal(t, first.Sessions[i].FinalBankroll, second.Sessions[i].FinalBankroll)
		assert.NotEqual(t, first.Sessions[i].SessionID, second.Sessions[i].SessionID)
	}
}

func TestRunTotals(t *testing.T) {
	summary, err := New(Config{Sessions: 3, Rounds: 40, Seed: 99}).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, summary.Sessions, 3)

	rounds, hands, net, outcomes := 0, 0, 0, 0
	for i, r := range summary.Sessions {
		assert.Equal(t, i, r.Index)
		assert.LessOrEqual(t, r.RoundsPlayed, 40)
		assert.GreaterOrEqual(t, r.HandsSettled, r.RoundsPlayed)
		assert.Equal(t, 1000+r.Net, r.FinalBankroll)
		if !r.Busted {
			assert.Equal(t, 40, r.RoundsPlayed)
		}
		rounds += r.RoundsPlayed
		hands += r.HandsSettled
		net += r.Net
	}
	for _, n := range summary.Outcomes {
		outcomes += n
	}
	assert.Equal(t, rounds, summary.Rounds)
	assert.Equal(t, hands, summary.Hands)
	assert.Equal(t, hands, outcomes)
	assert.Equal(t, net, summary.Net)
}

func TestRunEveryProfile(t *testing.T) {
	for _, p := range rules.Profiles() {
		t.Run(p.ID, func(t *testing.T) {
			summary, err := New(Config{Sessions: 2, Rounds: 30, Seed: 3, Profile: p, Bankroll: 5000}).Run(context.Background())
			require.NoError(t, err)
			assert.Positive(t, summary.Rounds)
		})
	}
}

func TestRunRejectsEmptyConfig(t *testing.T) {
	_, err := New(Config{}).Run(context.Background())
	assert.Error(t, err)
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(Config{Sessions: 2, Rounds: 1000, Seed: 1}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunWithoutEarlyReshuffle(t *testing.T) {
	never := 0.0
	summary, err := New(Config{Sessions: 1, Rounds: 200, Seed: 5, Penetration: &never}).Run(context.Background())
	require.NoError(t, err)
	// A six-deck shoe runs dry well within 200 rounds; with no early
	// reshuffle every exhaustion aborts a round.
	assert.Positive(t, summary.Aborted)
}
