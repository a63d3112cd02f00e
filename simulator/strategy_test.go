package simulator

import (
	"testing"

	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/game"
	"github.com/stretchr/testify/assert"
)

func view(player string, total int, soft bool, up string, available ...game.Action) game.View {
	return game.View{
		State:            game.StatePlayerTurn,
		Hands:            []game.HandView{{Cards: cards.MustParseCards(player), Total: total, Soft: soft}},
		DealerCards:      cards.MustParseCards(up),
		AvailableActions: available,
	}
}

var all = []game.Action{game.ActionHit, game.ActionStand, game.ActionDouble, game.ActionSplit, game.ActionSurrender}

func TestBasicStrategy(t *testing.T) {
	tests := []struct {
		name string
		v    game.View
		want game.Action
	}{
		{"hard 17 stands", view("10h 7c", 17, false, "Ah", all...), game.ActionStand},
		{"hard 12 v 2 hits", view("10h 2c", 12, false, "2h", all...), game.ActionHit},
		{"hard 12 v 5 stands", view("10h 2c", 12, false, "5h", all...), game.ActionStand},
		{"11 doubles", view("6h 5c", 11, false, "9d", all...), game.ActionDouble},
		{"11 without double hits", view("6h 5c", 11, false, "9d", game.ActionHit, game.ActionStand), game.ActionHit},
		{"16 v 10 surrenders", view("10h 6c", 16, false, "Kd", all...), game.ActionSurrender},
		{"16 v 10 without surrender hits", view("10h 6c", 16, false, "Kd", game.ActionHit, game.ActionStand), game.ActionHit},
		{"aces split", view("Ah As", 12, true, "10d", all...), game.ActionSplit},
		{"eights split", view("8h 8s", 16, false, "9d", all...), game.ActionSplit},
		{"tens stand", view("10h Ks", 20, false, "6d", all...), game.ActionStand},
		{"soft 18 v 9 hits", view("Ah 7s", 18, true, "9d", all...), game.ActionHit},
		{"soft 18 v 5 without double stands", view("Ah 7s", 18, true, "5d", game.ActionHit, game.ActionStand), game.ActionStand},
		{"split-only hand stands when split refused", view("Ah As", 12, true, "6d", game.ActionStand), game.ActionStand},
		{"not player turn", game.View{State: game.StateBetting}, game.ActionStand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BasicStrategy(tt.v))
		})
	}
}
