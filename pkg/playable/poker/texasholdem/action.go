package texasholdem

import (
	"pokerroom-server/pkg/playable"
	"pokerroom-server/pkg/playable/poker/action"
)

// Act performs the action for the player the table is waiting on
// For a raise, amount is the number of chips added to the player's current bet.
func (g *Game) Act(username string, a action.Action, amount int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	seat, p := g.playerByUsername(username)
	if p == nil {
		return newActionError(a, "player not found")
	}

	if seat != g.currentPlayerPosition {
		return newActionError(a, "it is not your turn")
	}

	if !g.waitingForPlayer {
		return newActionError(a, "action not expected")
	}

	if p.folded || p.allIn {
		return newActionError(a, "you cannot act")
	}

	var applied int
	switch a {
	case action.Fold:
		p.folded = true
		g.broadcast(EventPlayerFolded, &PositionPayload{Position: seat})
	case action.Check, action.Call:
		owed := g.currentMaxBet - p.currentBet
		if a == action.Check && owed > 0 {
			return newActionError(a, "cannot check, there is a bet to call")
		}

		var ok bool
		if applied, ok = g.applyBet(seat, owed); !ok {
			return newActionError(a, "cannot call")
		}

		if applied == 0 {
			g.broadcast(EventPlayerChecked, &PositionPayload{Position: seat})
		} else {
			g.notifyBet(seat)
		}
	case action.Raise:
		if amount <= 0 {
			return newActionError(a, "raise amount must be positive")
		}

		if p.currentBet+amount <= g.currentMaxBet {
			return newActionError(a, "raise must be greater than the current bet")
		}

		var ok bool
		if applied, ok = g.applyBet(seat, amount); !ok {
			return newActionError(a, "you do not have enough chips to raise")
		}

		g.notifyBet(seat)
	default:
		return newActionError(a, "invalid action")
	}

	g.addLog(playable.SimpleLogMessage(username, "{} %s", a.LogMessage(applied)))
	g.releaseTurn()

	return nil
}
