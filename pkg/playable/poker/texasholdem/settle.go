package texasholdem

import (
	"fmt"
	"sort"

	"pokerroom-server/pkg/deck"
	"pokerroom-server/pkg/playable"
	"pokerroom-server/pkg/poker"
)

// ErrNothingToSettle is returned when Settle is called before the showdown
var ErrNothingToSettle = UserError("there is no hand to settle")

// Settlement describes how the pot was paid out
type Settlement struct {
	Pot     int             `json:"pot"`
	Winners []*Winner       `json:"winners"`
	Hands   []*RevealedHand `json:"hands"`
}

// Winner is a player who took some or all of the pot
type Winner struct {
	Position int    `json:"position"`
	Username string `json:"username"`
	Amount   int    `json:"amount"`
}

// RevealedHand is a hand shown down
type RevealedHand struct {
	Position int           `json:"position"`
	Username string        `json:"username"`
	Cards    deck.Hand     `json:"cards"`
	Result   *poker.Result `json:"result"`
	Name     string        `json:"name"`
}

// Settle pays the pot to the best hand(s) and returns the table to waiting
// An uncontested pot goes to the last player who did not fold. A split pot's odd chips go to the
// winners closest to the left of the dealer.
func (g *Game) Settle() (*Settlement, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.gameState != GameStateShowdown {
		return nil, ErrNothingToSettle
	}

	settlement := &Settlement{
		Pot:     g.pot,
		Winners: []*Winner{},
		Hands:   []*RevealedHand{},
	}

	contenders := g.notFoldedSeats()
	var winners []int
	switch len(contenders) {
	case 0:
		g.logger.WithField("pot", g.pot).Warn("nobody left to take the pot")
	case 1:
		winners = contenders
	default:
		var best *poker.Result
		for _, seat := range g.seatsFromDealer(contenders) {
			p := g.players[seat]
			cards := append(p.cards.Clone(), g.community...)
			result, ok := poker.Evaluate(cards)
			if !ok {
				panic(fmt.Sprintf("could not evaluate %d cards for seat %d", len(cards), seat))
			}

			settlement.Hands = append(settlement.Hands, &RevealedHand{
				Position: seat,
				Username: p.Username,
				Cards:    p.cards.Clone(),
				Result:   result,
				Name:     result.String(),
			})

			cmp := 1
			if best != nil {
				cmp = poker.Compare(result, best)
			}

			if cmp > 0 {
				best = result
				winners = []int{seat}
			} else if cmp == 0 {
				winners = append(winners, seat)
			}
		}
	}

	logs := make([]*playable.LogMessage, 0, len(winners))
	if n := len(winners); n > 0 {
		share, odd := g.pot/n, g.pot%n
		for i, seat := range winners {
			amount := share
			if i < odd {
				amount++
			}

			p := g.players[seat]
			p.chipCount += amount
			settlement.Winners = append(settlement.Winners, &Winner{
				Position: seat,
				Username: p.Username,
				Amount:   amount,
			})

			logs = append(logs, playable.SimpleLogMessage(p.Username, "{} won ${%d}", amount))
		}
	}

	g.pot = 0
	g.broadcast(EventShowdown, settlement)
	if len(logs) > 0 {
		g.addLog(logs...)
	}

	g.transition(GameStateWaiting)
	g.readyForNewRound = true

	return settlement, nil
}

// seatsFromDealer orders seats clockwise starting with the seat after the dealer
func (g *Game) seatsFromDealer(seats []int) []int {
	n := len(g.players)
	ordered := make([]int, len(seats))
	copy(ordered, seats)

	distance := func(seat int) int {
		return (seat - g.dealerPosition - 1 + n) % n
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return distance(ordered[i]) < distance(ordered[j])
	})

	return ordered
}
