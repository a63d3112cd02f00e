package game

// State represents the current phase of the round state machine
type State string

const (
	StateBetting    State = "betting"
	StateDealing    State = "dealing"
	StatePlayerTurn State = "player_turn"
	StateDealerTurn State = "dealer_turn"
	StateResult     State = "result"
	StateGameOver   State = "game_over"
)

func (s State) Equal(other State) bool {
	return s == other
}

// IsBetweenRounds reports whether no cards are in play
func (s State) IsBetweenRounds() bool {
	return s == StateBetting || s == StateResult || s == StateGameOver
}
