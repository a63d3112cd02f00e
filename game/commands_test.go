package game

import (
	"testing"

	"github.com/lazharichir/blackjack/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line    string
		want    Command
		wantErr error
	}{
		{"bet 100", PlaceBetCommand{Amount: 100}, nil},
		{"  B 25 ", PlaceBetCommand{Amount: 25}, nil},
		{"hit", HitCommand{}, nil},
		{"s", StandCommand{}, nil},
		{"double", DoubleDownCommand{}, nil},
		{"split", SplitCommand{}, nil},
		{"surrender", SurrenderCommand{}, nil},
		{"next", NextHandCommand{}, nil},
		{"profile Wild", SwitchProfileCommand{ProfileID: "wild"}, nil},
		{"reset 500", ResetBankrollCommand{Amount: 500}, nil},
		{"quit", EndSessionCommand{}, nil},
		{"bet", nil, ErrInvalidAmount},
		{"bet ten", nil, ErrInvalidAmount},
		{"profile", nil, ErrUnknownProfile},
		{"", nil, ErrUnknownCommand},
		{"insurance", nil, ErrUnknownCommand},
	}
	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			cmd, err := ParseCommand(tc.line)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, cmd)
		})
	}
}

type unknownCommand struct{}

func (unknownCommand) CommandName() string { return "unknown" }

func TestExecute(t *testing.T) {
	e, _ := newTestEngine(t, "8s 10h 8d 7c 3h 2d 9c")

	require.NoError(t, e.Execute(PlaceBetCommand{Amount: 100}))
	require.NoError(t, e.Execute(SplitCommand{}))
	require.NoError(t, e.Execute(DoubleDownCommand{}))
	require.NoError(t, e.Execute(StandCommand{}))
	require.Equal(t, StateResult, e.State())

	require.ErrorIs(t, e.Execute(HitCommand{}), ErrIllegalState)
	require.ErrorIs(t, e.Execute(SurrenderCommand{}), ErrIllegalState)
	require.NoError(t, e.Execute(SwitchProfileCommand{ProfileID: rules.HardEightID}))
	require.NoError(t, e.Execute(ResetBankrollCommand{Amount: 2000}))
	require.ErrorIs(t, e.Execute(NextHandCommand{}), ErrIllegalState)
	require.NoError(t, e.Execute(EndSessionCommand{}))
	require.ErrorIs(t, e.Execute(unknownCommand{}), ErrUnknownCommand)

	assert.Equal(t, 2000, e.Bankroll())
	assert.Equal(t, rules.HardEightID, e.Profile().ID)
}

func TestIsRejection(t *testing.T) {
	assert.True(t, IsRejection(ErrSplitLimit))
	assert.False(t, IsRejection(nil))
	assert.False(t, IsRejection(assert.AnError))
}
