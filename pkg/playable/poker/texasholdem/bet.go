package texasholdem

import "fmt"

// applyBet moves amount chips from the seat's stack into the pot
// The amount is clamped to the stack, which puts the player all-in. A bet that would leave the
// player's commitment below the current max bet is rejected without changing anything.
// The number of chips moved is returned.
func (g *Game) applyBet(seat, amount int) (int, bool) {
	if amount < 0 {
		panic(fmt.Sprintf("cannot bet a negative amount: %d", amount))
	}

	p := g.players[seat]
	if p == nil || p.folded || p.allIn || g.gameState == GameStateWaiting {
		return 0, false
	}

	allIn := false
	if amount >= p.chipCount {
		amount = p.chipCount
		allIn = true
	}

	commitment := p.currentBet + amount
	if commitment < g.currentMaxBet {
		return 0, false
	}

	p.chipCount -= amount
	p.currentBet = commitment
	p.allIn = allIn
	g.pot += amount

	if commitment > g.currentMaxBet {
		g.currentMaxBet = commitment
		g.lastRaiserPosition = seat
	}

	return amount, true
}

// refundBets returns every chip committed this street
func (g *Game) refundBets() {
	for _, p := range g.players {
		if p == nil || p.currentBet == 0 {
			continue
		}

		p.chipCount += p.currentBet
		g.pot -= p.currentBet
		p.currentBet = 0
		p.allIn = false
	}

	if g.pot != 0 {
		g.logger.WithField("pot", g.pot).Warn("chips left in the pot after refunding every bet")
		g.pot = 0
	}
}
