package table

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/events"
	"github.com/lazharichir/blackjack/game"
	"github.com/lazharichir/blackjack/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, deal string) (*Session, *events.InMemoryEventStore) {
	t.Helper()
	store := events.NewInMemoryEventStore()
	engine, err := game.NewEngine(
		game.WithRNG(randutil.New(5)),
		game.WithEventStore(store),
		game.WithBankroll(1000),
	)
	require.NoError(t, err)
	if deal != "" {
		require.NoError(t, engine.Shoe().PlaceOnTop(cards.MustParseCards(deal)...))
	}
	s := NewSession(engine, nil)
	s.Start()
	t.Cleanup(s.Stop)
	return s, store
}

func TestSessionFlow(t *testing.T) {
	s, store := newTestSession(t, "10s 10h 8d 6c 7h")
	ctx := context.Background()

	v, err := s.Submit(ctx, game.PlaceBetCommand{Amount: 100})
	require.NoError(t, err)
	assert.Equal(t, game.StatePlayerTurn, v.State)
	assert.Equal(t, 900, v.Bankroll)

	v, err = s.Submit(ctx, game.SplitCommand{})
	require.ErrorIs(t, err, game.ErrCannotSplit)
	assert.Equal(t, game.StatePlayerTurn, v.State)
	assert.Equal(t, 900, v.Bankroll)

	v, err = s.Submit(ctx, game.StandCommand{})
	require.NoError(t, err)
	assert.Equal(t, game.StateResult, v.State)
	assert.Equal(t, 1100, v.Bankroll)
	assert.Equal(t, 23, v.DealerTotal)

	assert.Equal(t, v, s.View())

	s.Stop()
	ended, err := events.Filter[events.SessionEnded](store, s.SessionID())
	require.NoError(t, err)
	assert.Len(t, ended, 1)
}

func TestSessionSerialisesConcurrentSubmits(t *testing.T) {
	s, store := newTestSession(t, "")
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 40)
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var cmd game.Command = game.StandCommand{}
			switch i % 3 {
			case 0:
				cmd = game.PlaceBetCommand{Amount: 10}
			case 1:
				cmd = game.NextHandCommand{}
			}
			_, err := s.Submit(ctx, cmd)
			if err != nil && !game.IsRejection(err) {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("unexpected failure: %v", err)
	}

	v := s.View()
	assert.GreaterOrEqual(t, v.Bankroll, 0)
	all, err := store.LoadEvents(s.SessionID())
	require.NoError(t, err)
	assert.NotEmpty(t, all)
}

func TestSessionSubmitAfterStop(t *testing.T) {
	s, _ := newTestSession(t, "")
	s.Stop()
	s.Stop()

	_, err := s.Submit(context.Background(), game.HitCommand{})
	require.ErrorIs(t, err, ErrSessionClosed)
}

func TestSessionSubmitHonoursContext(t *testing.T) {
	engine, err := game.NewEngine(game.WithRNG(randutil.New(1)))
	require.NoError(t, err)
	// Not started: nothing drains the queue.
	s := NewSession(engine, nil)
	s.requests = make(chan *request)
	defer s.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = s.Submit(ctx, game.HitCommand{})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSessionCancelledSubmitIsNeverApplied(t *testing.T) {
	for i := 0; i < 50; i++ {
		store := events.NewInMemoryEventStore()
		engine, err := game.NewEngine(game.WithRNG(randutil.New(int64(i))), game.WithEventStore(store), game.WithBankroll(1000))
		require.NoError(t, err)
		s := NewSession(engine, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err = s.Submit(ctx, game.PlaceBetCommand{Amount: 100})
		require.ErrorIs(t, err, context.Canceled)

		s.Start()
		s.Stop()
		assert.Equal(t, 1000, engine.Bankroll())
		assert.Equal(t, game.StateBetting, engine.State())
		bets, err := events.Filter[events.BetPlaced](store, engine.SessionID())
		require.NoError(t, err)
		assert.Empty(t, bets)
	}
}

func TestSessionAbandonedRequestIsSkipped(t *testing.T) {
	engine, err := game.NewEngine(game.WithRNG(randutil.New(3)), game.WithBankroll(1000))
	require.NoError(t, err)
	// Not started yet, so the bet waits in the queue until its deadline.
	s := NewSession(engine, nil)
	defer s.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = s.Submit(ctx, game.PlaceBetCommand{Amount: 100})
	require.ErrorIs(t, err, context.DeadlineExceeded)

	s.Start()
	// Queued behind the abandoned bet, so it runs after the loop has passed it.
	v, err := s.Submit(context.Background(), game.NextHandCommand{})
	require.ErrorIs(t, err, game.ErrIllegalState)
	assert.Equal(t, 1000, v.Bankroll)
	assert.Equal(t, game.StateBetting, v.State)
	assert.Empty(t, v.RoundID)
}
