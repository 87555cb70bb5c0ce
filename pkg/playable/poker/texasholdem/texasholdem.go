package texasholdem

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"pokerroom-server/internal/rng"
	"pokerroom-server/pkg/deck"
	"pokerroom-server/pkg/playable"
)

// NoPosition is used for a seat position that has not been set
const NoPosition = -1

// seat limits of a table
const (
	MinPlayers = 2
	MaxPlayers = 8
)

// Game is a single table of No-Limit Texas Hold'em
type Game struct {
	logger logrus.FieldLogger
	sinks  Sinks

	id               string
	bigBlind         int
	defaultChipCount int
	newDeck          func() *deck.Deck

	mu                    sync.Mutex
	players               []*Participant
	gameState             GameState
	deck                  *deck.Deck
	community             deck.Hand
	pot                   int
	currentMaxBet         int
	dealerPosition        int
	currentPlayerPosition int
	lastRaiserPosition    int
	readyForNewRound      bool
	handLog               []*playable.LogMessage

	// the turn rendezvous
	waitingForPlayer bool
	turn             chan struct{}

	ctx      context.Context
	cancel   context.CancelFunc
	handDone chan struct{}
}

// Options configures the table
type Options struct {
	BigBlind   int
	MaxPlayers int

	// NewDeck returns the deck for each hand
	// If nil, a full deck shuffled with Generator is used
	NewDeck func() *deck.Deck

	// Generator shuffles the deck, a crypto-backed generator is used if nil
	Generator rng.Generator
}

// DefaultOptions returns the default options for a table
func DefaultOptions() Options {
	return Options{
		BigBlind:   10,
		MaxPlayers: MaxPlayers,
	}
}

// NewGame returns a new table in the waiting state
func NewGame(logger logrus.FieldLogger, id string, opts Options, sinks Sinks) (*Game, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	if id == "" {
		return nil, errors.New("table id is required")
	}

	newDeck := opts.NewDeck
	if newDeck == nil {
		newDeck = shuffledDeck(opts.Generator)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Game{
		logger:                logger.WithField("table", id),
		sinks:                 sinks,
		id:                    id,
		bigBlind:              opts.BigBlind,
		defaultChipCount:      opts.BigBlind * 100,
		newDeck:               newDeck,
		players:               make([]*Participant, opts.MaxPlayers),
		gameState:             GameStateWaiting,
		community:             make(deck.Hand, 0, 5),
		dealerPosition:        NoPosition,
		currentPlayerPosition: NoPosition,
		lastRaiserPosition:    NoPosition,
		readyForNewRound:      true,
		ctx:                   ctx,
		cancel:                cancel,
	}, nil
}

func validateOptions(opts Options) error {
	if opts.BigBlind <= 0 {
		return UserError("big blind must be greater than zero")
	}

	if opts.MaxPlayers < MinPlayers || opts.MaxPlayers > MaxPlayers {
		return UserError(fmt.Sprintf("max players must be between %d and %d", MinPlayers, MaxPlayers))
	}

	return nil
}

func shuffledDeck(gen rng.Generator) func() *deck.Deck {
	if gen == nil {
		gen = rng.Crypto{}
	}

	return func() *deck.Deck {
		d := deck.New()
		d.Shuffle(gen)

		return d
	}
}

// ID returns the table identifier
func (g *Game) ID() string {
	return g.id
}

// BigBlind returns the big blind
func (g *Game) BigBlind() int {
	return g.bigBlind
}

// SmallBlind returns the small blind, half the big blind rounded down
func (g *Game) SmallBlind() int {
	return g.bigBlind / 2
}

// MaxPlayers returns the number of seats at the table
func (g *Game) MaxPlayers() int {
	return len(g.players)
}

// State returns the current game state
func (g *Game) State() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.gameState
}

// Pot returns the number of chips in the pot
func (g *Game) Pot() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.pot
}

// ReadyForNewRound returns true once a hand has been settled and the table is waiting
func (g *Game) ReadyForNewRound() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.readyForNewRound
}

// CurrentTurn returns the seat and username the table is waiting on
// NoPosition is returned if the table is not waiting for an action
func (g *Game) CurrentTurn() (int, string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.waitingForPlayer {
		return NoPosition, ""
	}

	if p := g.players[g.currentPlayerPosition]; p != nil {
		return g.currentPlayerPosition, p.Username
	}

	return NoPosition, ""
}

// Close stops a hand that is in progress
// It blocks until the hand's goroutine has exited.
func (g *Game) Close() {
	g.mu.Lock()
	g.cancel()
	done := g.handDone
	g.mu.Unlock()

	if done != nil {
		<-done
	}
}
