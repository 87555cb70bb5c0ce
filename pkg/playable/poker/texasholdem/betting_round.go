package texasholdem

import "context"

type roundOutcome int

const (
	outcomeNextState roundOutcome = iota
	outcomeWaiting
	outcomeAborted
)

// bettingRound asks each eligible player to act until every bet has been matched
// It starts with the player at currentPlayerPosition and must be called with the lock held.
func (g *Game) bettingRound(ctx context.Context) roundOutcome {
	order := g.actingOrder()
	if len(order) < 2 {
		if g.gameState == GameStatePreFlop {
			return outcomeWaiting
		}

		return outcomeNextState
	}

	n := len(order)
	skipped := 0
	for i := 0; ; i++ {
		if len(g.notFoldedSeats()) <= 1 {
			return outcomeNextState
		}

		seat := order[i%n]
		if i >= n && g.roundComplete(order, seat) {
			return outcomeNextState
		}

		p := g.players[seat]
		if p == nil || !p.canAct() {
			skipped++

			// nobody left who can respond to the last bet
			if skipped >= n {
				return outcomeNextState
			}

			continue
		}

		skipped = 0
		if err := g.waitForPlayer(ctx, seat); err != nil {
			return outcomeAborted
		}
	}
}

// actingOrder returns the seats that can act, starting at currentPlayerPosition
// If that seat cannot act, the order starts with the next seat clockwise that can.
func (g *Game) actingOrder() []int {
	seats := g.activeSeats()
	start := 0
	for i, seat := range seats {
		if seat >= g.currentPlayerPosition {
			start = i
			break
		}
	}

	order := make([]int, 0, len(seats))
	order = append(order, seats[start:]...)
	return append(order, seats[:start]...)
}

// roundComplete is checked once every player in the order has had a chance to act
func (g *Game) roundComplete(order []int, seat int) bool {
	// the big blind was not raised
	if g.gameState == GameStatePreFlop && g.currentMaxBet == g.bigBlind {
		return true
	}

	if g.lastRaiserPosition == NoPosition {
		return true
	}

	// the bet was made by a player who had already stopped acting, i.e., an all-in blind
	if !containsSeat(order, g.lastRaiserPosition) {
		return true
	}

	if seat == g.lastRaiserPosition {
		p := g.players[seat]
		return p == nil || !p.active || p.currentBet == g.currentMaxBet
	}

	return false
}

func containsSeat(seats []int, seat int) bool {
	for _, s := range seats {
		if s == seat {
			return true
		}
	}

	return false
}
