package texasholdem

import "context"

// waitForPlayer tells the player it is their turn and blocks until they act or are removed
// The lock is released while waiting.
func (g *Game) waitForPlayer(ctx context.Context, seat int) error {
	if g.waitingForPlayer {
		panic("already waiting for a player")
	}

	p := g.players[seat]
	turn := make(chan struct{})
	g.currentPlayerPosition = seat
	g.waitingForPlayer = true
	g.turn = turn

	g.notify(p.Username, EventYourTurn, &YourTurnPayload{
		CurrentBet: g.currentMaxBet,
		PlayerBet:  p.currentBet,
		ChipCount:  p.chipCount,
		Pot:        g.pot,
	})
	g.broadcast(EventPlayerTurn, &PlayerTurnPayload{Username: p.Username})

	g.mu.Unlock()
	defer g.mu.Lock()

	select {
	case <-turn:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// releaseTurn wakes the betting round
// It is a no-op unless the table is waiting on a player.
func (g *Game) releaseTurn() {
	if !g.waitingForPlayer {
		return
	}

	g.waitingForPlayer = false
	close(g.turn)
}
