package texasholdem

import (
	"pokerroom-server/pkg/deck"
	"pokerroom-server/pkg/playable"
)

// Event identifies a table event sent to the sinks
type Event string

// Event constants
const (
	EventClearBetting  Event = "clear_betting"
	EventPlayerBet     Event = "player_bet"
	EventPlayerFolded  Event = "player_folded"
	EventPlayerChecked Event = "player_checked"
	EventDealtCards    Event = "dealt_cards"
	EventBoardCards    Event = "board_cards"
	EventYourTurn      Event = "your_turn"
	EventPlayerTurn    Event = "player_turn"
	EventGameState     Event = "game_state"
	EventShowdown      Event = "showdown"
	EventLog           Event = "log"
)

// BroadcastFunc sends an event to everyone at the table
type BroadcastFunc func(event Event, payload interface{})

// NotifyFunc sends an event to a single player
type NotifyFunc func(username string, event Event, payload interface{})

// Sinks receive every event the table produces
// Sinks are called while the table is locked and must not call back into the Game.
type Sinks struct {
	Broadcast BroadcastFunc
	Notify    NotifyFunc
}

// PlayerBetPayload is sent when chips are committed
type PlayerBetPayload struct {
	Position  int `json:"position"`
	Amount    int `json:"amount"`
	ChipCount int `json:"chipCount"`
	Pot       int `json:"pot"`
}

// PositionPayload identifies the seat an event is about
type PositionPayload struct {
	Position int `json:"position"`
}

// DealtCardsPayload is sent privately with a player's hole cards
type DealtCardsPayload struct {
	Cards           deck.Hand `json:"cards"`
	ActivePositions []int     `json:"activePositions"`
}

// BoardCardsPayload carries the community cards
type BoardCardsPayload struct {
	Cards deck.Hand `json:"cards"`
}

// YourTurnPayload is sent privately to the player the table is waiting on
type YourTurnPayload struct {
	CurrentBet int `json:"currentBet"`
	PlayerBet  int `json:"playerBet"`
	ChipCount  int `json:"chipCount"`
	Pot        int `json:"pot"`
}

// PlayerTurnPayload announces whose turn it is
type PlayerTurnPayload struct {
	Username string `json:"username"`
}

// GameStatePayload is sent on every transition
type GameStatePayload struct {
	State GameState `json:"state"`
}

// LogPayload carries new hand log messages
type LogPayload struct {
	Messages []*playable.LogMessage `json:"messages"`
}

func (g *Game) broadcast(event Event, payload interface{}) {
	if g.sinks.Broadcast != nil {
		g.sinks.Broadcast(event, payload)
	}
}

func (g *Game) notify(username string, event Event, payload interface{}) {
	if g.sinks.Notify != nil {
		g.sinks.Notify(username, event, payload)
	}
}

func (g *Game) notifyBet(seat int) {
	p := g.players[seat]
	if p == nil {
		return
	}

	g.broadcast(EventPlayerBet, &PlayerBetPayload{
		Position:  seat,
		Amount:    p.currentBet,
		ChipCount: p.chipCount,
		Pot:       g.pot,
	})
}
