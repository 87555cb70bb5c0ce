package texasholdem

import (
	"encoding/json"
	"fmt"
)

// GameState represents the state of the table
type GameState int

// constants for GameState
const (
	GameStateWaiting GameState = iota
	GameStatePreFlop
	GameStateFlop
	GameStateTurn
	GameStateRiver
	GameStateShowdown
)

func (s GameState) String() string {
	switch s {
	case GameStateWaiting:
		return "waiting"
	case GameStatePreFlop:
		return "pre_flop"
	case GameStateFlop:
		return "flop"
	case GameStateTurn:
		return "turn"
	case GameStateRiver:
		return "river"
	case GameStateShowdown:
		return "showdown"
	}

	return ""
}

// Next returns the state that follows s
func (s GameState) Next() GameState {
	switch s {
	case GameStateWaiting:
		return GameStatePreFlop
	case GameStatePreFlop:
		return GameStateFlop
	case GameStateFlop:
		return GameStateTurn
	case GameStateTurn:
		return GameStateRiver
	case GameStateRiver:
		return GameStateShowdown
	case GameStateShowdown:
		return GameStateWaiting
	}

	panic(fmt.Sprintf("unknown game state: %d", s))
}

// InBettingRound returns true if the state is a betting street
func (s GameState) InBettingRound() bool {
	return s >= GameStatePreFlop && s <= GameStateRiver
}

// MarshalJSON encodes JSON
func (s GameState) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(s),
		Name: s.String(),
	})
}
