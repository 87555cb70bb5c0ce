package texasholdem

import (
	"pokerroom-server/pkg/deck"
)

// TableView is the table as seen by one player
// Hole cards of every other player are hidden.
type TableView struct {
	ID                    string             `json:"id"`
	State                 GameState          `json:"state"`
	BigBlind              int                `json:"bigBlind"`
	SmallBlind            int                `json:"smallBlind"`
	Pot                   int                `json:"pot"`
	CurrentMaxBet         int                `json:"currentMaxBet"`
	DealerPosition        int                `json:"dealerPosition"`
	CurrentPlayerPosition int                `json:"currentPlayerPosition"`
	WaitingForPlayer      bool               `json:"waitingForPlayer"`
	ReadyForNewRound      bool               `json:"readyForNewRound"`
	Community             deck.Hand          `json:"community"`
	CardsInDeck           int                `json:"cardsInDeck"`
	Seats                 []*participantJSON `json:"seats"`
}

// View returns the table as seen by viewer
// An empty viewer returns the public view. Empty seats are nil.
func (g *Game) View(viewer string) *TableView {
	g.mu.Lock()
	defer g.mu.Unlock()

	seats := make([]*participantJSON, len(g.players))
	for seat, p := range g.players {
		if p != nil {
			seats[seat] = p.participantJSON(seat, viewer != "" && p.Username == viewer)
		}
	}

	cardsInDeck := 0
	if g.deck != nil {
		cardsInDeck = g.deck.CardsLeft()
	}

	return &TableView{
		ID:                    g.id,
		State:                 g.gameState,
		BigBlind:              g.bigBlind,
		SmallBlind:            g.SmallBlind(),
		Pot:                   g.pot,
		CurrentMaxBet:         g.currentMaxBet,
		DealerPosition:        g.dealerPosition,
		CurrentPlayerPosition: g.currentPlayerPosition,
		WaitingForPlayer:      g.waitingForPlayer,
		ReadyForNewRound:      g.readyForNewRound,
		Community:             g.community.Clone(),
		CardsInDeck:           cardsInDeck,
		Seats:                 seats,
	}
}
