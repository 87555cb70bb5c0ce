package texasholdem

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"pokerroom-server/pkg/deck"
	"pokerroom-server/pkg/playable"
)

// ErrHandInProgress is returned when a hand is started before the last one finished
var ErrHandInProgress = UserError("a hand is already in progress")

// ErrNotEnoughPlayers is returned when a hand is started with fewer than two players
var ErrNotEnoughPlayers = UserError("at least two players are required")

var errTableClosed = errors.New("table is closed")

const holeCards = 2

// community cards dealt on each street
var streetCards = map[GameState]int{
	GameStateFlop:  3,
	GameStateTurn:  1,
	GameStateRiver: 1,
}

// CanStart returns true if the table is waiting and at least two seats are occupied
func (g *Game) CanStart() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.canStart() == nil
}

func (g *Game) canStart() error {
	if g.ctx.Err() != nil {
		return errTableClosed
	}

	if g.gameState != GameStateWaiting || g.handDone != nil {
		return ErrHandInProgress
	}

	if len(g.seatsWhere(occupied)) < MinPlayers {
		return ErrNotEnoughPlayers
	}

	return nil
}

// Start moves the dealer button and begins a new hand
// The hand is played on its own goroutine, Start returns once the table is in the pre-flop state.
func (g *Game) Start() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.canStart(); err != nil {
		return err
	}

	if g.dealerPosition == NoPosition {
		g.dealerPosition = g.seatsWhere(occupied)[0]
	} else {
		g.dealerPosition = g.nextSeat(g.dealerPosition, occupied)
	}

	g.readyForNewRound = false
	g.handLog = nil
	g.transition(GameStatePreFlop)

	done := make(chan struct{})
	g.handDone = done
	go g.playHand(g.ctx, done)

	return nil
}

// transition resets the betting for the street and moves to the new state
func (g *Game) transition(state GameState) {
	g.currentMaxBet = 0
	g.lastRaiserPosition = NoPosition
	g.currentPlayerPosition = NoPosition
	for _, p := range g.players {
		if p != nil {
			p.currentBet = 0
		}
	}

	g.broadcast(EventClearBetting, struct{}{})

	g.gameState = state
	g.logger.WithFields(logrus.Fields{
		"state":  state.String(),
		"dealer": g.dealerPosition,
		"pot":    g.pot,
	}).Debug("transition")

	g.broadcast(EventGameState, &GameStatePayload{State: state})
}

// playHand drives a hand from the pre-flop to the showdown
func (g *Game) playHand(ctx context.Context, done chan struct{}) {
	g.mu.Lock()
	defer func() {
		g.handDone = nil
		g.mu.Unlock()
		close(done)
	}()

	switch g.setupPreFlop(ctx) {
	case outcomeAborted:
		return
	case outcomeWaiting:
		g.refundBets()
		g.transition(GameStateWaiting)
		g.readyForNewRound = true
		g.addLog(playable.SimpleLogMessage("", "not enough players to continue the hand"))
		return
	}

	state := GameStatePreFlop.Next()
	for ; state.InBettingRound(); state = state.Next() {
		g.transition(state)
		if g.setupStreet(ctx, streetCards[state]) == outcomeAborted {
			return
		}
	}

	// the caller settles the pot
	g.transition(state)
}

func (g *Game) setupPreFlop(ctx context.Context) roundOutcome {
	g.deck = g.newDeck()
	g.logger.WithField("deck", g.deck.HashCode()).Debug("new deck")
	g.community = make(deck.Hand, 0, 5)
	g.pot = 0
	g.currentMaxBet = 0

	for _, p := range g.players {
		if p != nil {
			p.newHand()
		}
	}

	active := g.seatsWhere(isActive)
	if len(active) < MinPlayers {
		return outcomeWaiting
	}

	var smallBlind, bigBlind, firstToAct int
	if len(active) == 2 {
		// heads up: the dealer posts the small blind and acts first
		smallBlind = g.dealerPosition
		if p := g.players[smallBlind]; p == nil || !p.active {
			smallBlind = g.nextSeat(g.dealerPosition, isActive)
		}

		bigBlind = g.nextSeat(smallBlind, isActive)
		firstToAct = smallBlind
	} else {
		smallBlind = g.nextSeat(g.dealerPosition, isActive)
		bigBlind = g.nextSeat(smallBlind, isActive)
		firstToAct = g.nextSeat(bigBlind, isActive)
	}

	g.postBlind(smallBlind, g.SmallBlind())
	g.postBlind(bigBlind, g.bigBlind)
	g.currentPlayerPosition = firstToAct

	n := len(g.players)
	for i := 1; i <= n; i++ {
		seat := (g.dealerPosition + i) % n
		p := g.players[seat]
		if p == nil || !p.active {
			continue
		}

		cards, err := g.deck.Deal(holeCards)
		if err != nil {
			panic(fmt.Sprintf("could not deal hole cards: %v", err))
		}

		p.cards = cards
		g.notify(p.Username, EventDealtCards, &DealtCardsPayload{
			Cards:           p.cards.Clone(),
			ActivePositions: active,
		})
	}

	return g.bettingRound(ctx)
}

func (g *Game) postBlind(seat, amount int) {
	p := g.players[seat]
	if _, ok := g.applyBet(seat, amount); !ok {
		g.logger.WithField("seat", seat).WithField("amount", amount).Warn("could not post blind")
		return
	}

	g.notifyBet(seat)
	g.addLog(playable.SimpleLogMessage(p.Username, "{} posted a blind of ${%d}", p.currentBet))
}

func (g *Game) setupStreet(ctx context.Context, nCards int) roundOutcome {
	cards, err := g.deck.Deal(nCards)
	if err != nil {
		panic(fmt.Sprintf("could not deal community cards: %v", err))
	}

	g.community.AddCards(cards)
	g.broadcast(EventBoardCards, &BoardCardsPayload{Cards: g.community.Clone()})

	g.currentPlayerPosition = (g.dealerPosition + 1) % len(g.players)

	return g.bettingRound(ctx)
}
