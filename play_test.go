package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/game"
	"github.com/lazharichir/blackjack/randutil"
	"github.com/lazharichir/blackjack/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayLoop(t *testing.T) {
	engine, err := game.NewEngine(game.WithBankroll(1000), game.WithRNG(randutil.New(1)))
	require.NoError(t, err)
	// player 10 7, dealer 6 10 then bust on the king
	require.NoError(t, engine.Shoe().PlaceOnTop(cards.MustParseCards("10s 6h 7d 10c Ks")...))

	session := table.NewSession(engine, nil)
	session.Start()
	defer session.Stop()

	in := strings.NewReader("help\nbet 100\n\nstand\nsplit\nfly\nquit\nbet 10\n")
	var out bytes.Buffer
	require.NoError(t, play(context.Background(), session, in, &out))

	text := out.String()
	assert.Contains(t, text, "double down")
	assert.Contains(t, text, "dealer bust")
	assert.Contains(t, text, "Leaving with 1100 chips.")
	assert.Equal(t, game.StateResult, session.View().State)
}

func TestPlayEndsOnEOF(t *testing.T) {
	engine, err := game.NewEngine(game.WithRNG(randutil.New(2)))
	require.NoError(t, err)
	session := table.NewSession(engine, nil)
	session.Start()
	defer session.Stop()

	var out bytes.Buffer
	require.NoError(t, play(context.Background(), session, strings.NewReader("profiles\n"), &out))
	assert.Contains(t, out.String(), "high-roller")
}
