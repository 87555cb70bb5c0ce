package texasholdem

import (
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"pokerroom-server/pkg/deck"
	"pokerroom-server/pkg/playable/poker/action"
)

const turnTimeout = 2 * time.Second

type recordedEvent struct {
	Username string
	Event    Event
	Payload  interface{}
}

// recorder is a pair of sinks that keeps every event
type recorder struct {
	mu         sync.Mutex
	broadcasts []recordedEvent
	notices    []recordedEvent
	turns      chan string
}

func newRecorder() *recorder {
	return &recorder{
		turns: make(chan string, 256),
	}
}

func (r *recorder) sinks() Sinks {
	return Sinks{
		Broadcast: func(event Event, payload interface{}) {
			r.mu.Lock()
			defer r.mu.Unlock()

			r.broadcasts = append(r.broadcasts, recordedEvent{Event: event, Payload: payload})
		},
		Notify: func(username string, event Event, payload interface{}) {
			r.mu.Lock()
			r.notices = append(r.notices, recordedEvent{Username: username, Event: event, Payload: payload})
			r.mu.Unlock()

			if event == EventYourTurn {
				r.turns <- username
			}
		},
	}
}

func (r *recorder) broadcastsOf(event Event) []recordedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	events := make([]recordedEvent, 0)
	for _, e := range r.broadcasts {
		if e.Event == event {
			events = append(events, e)
		}
	}

	return events
}

func (r *recorder) allBroadcasts() []recordedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	events := make([]recordedEvent, len(r.broadcasts))
	copy(events, r.broadcasts)

	return events
}

func (r *recorder) noticesFor(username string, event Event) []recordedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	events := make([]recordedEvent, 0)
	for _, e := range r.notices {
		if e.Username == username && e.Event == event {
			events = append(events, e)
		}
	}

	return events
}

// stackedDeck deals the cards in the order given
func stackedDeck(cards string) func() *deck.Deck {
	return func() *deck.Deck {
		return deck.NewWithCards(deck.CardsFromString(cards))
	}
}

func setupGame(t *testing.T, rec *recorder, opts Options, usernames ...string) *Game {
	t.Helper()

	game, err := NewGame(logrus.StandardLogger(), "test-table", opts, rec.sinks())
	if err != nil {
		t.Fatalf("could not create game: %v", err)
	}

	t.Cleanup(game.Close)

	for _, username := range usernames {
		if _, ok := game.AddPlayer(username); !ok {
			t.Fatalf("could not seat %s", username)
		}
	}

	return game
}

func testOptions(newDeck func() *deck.Deck) Options {
	return Options{
		BigBlind:   10,
		MaxPlayers: 8,
		NewDeck:    newDeck,
	}
}

// nextTurn returns the username of the next player asked to act
func nextTurn(t *testing.T, rec *recorder) string {
	t.Helper()

	select {
	case username := <-rec.turns:
		return username
	case <-time.After(turnTimeout):
		t.Fatal("timed out waiting for a turn")
	}

	return ""
}

func waitForTurn(t *testing.T, rec *recorder, username string) {
	t.Helper()

	if got := nextTurn(t, rec); !assert.Equal(t, username, got, "unexpected turn") {
		t.FailNow()
	}
}

func waitForState(t *testing.T, game *Game, state GameState) {
	t.Helper()

	if !assert.Eventually(t, func() bool {
		return game.State() == state
	}, turnTimeout, time.Millisecond, "waiting for %s", state) {
		t.FailNow()
	}
}

func assertAct(t *testing.T, game *Game, username string, a action.Action, amount int, msgAndArgs ...interface{}) {
	t.Helper()
	assert.NoError(t, game.Act(username, a, amount), msgAndArgs...)
}

func assertActFailed(t *testing.T, game *Game, username string, a action.Action, amount int, expectedErr string, msgAndArgs ...interface{}) {
	t.Helper()

	err := game.Act(username, a, amount)
	assert.EqualError(t, err, expectedErr, msgAndArgs...)
	assert.IsType(t, &ActionError{}, err, msgAndArgs...)
}

// checkDown plays a street where each player checks in turn
func checkDown(t *testing.T, game *Game, rec *recorder, usernames ...string) {
	t.Helper()

	for _, username := range usernames {
		waitForTurn(t, rec, username)
		assertAct(t, game, username, action.Check, 0)
	}
}

func totalChips(game *Game) int {
	game.mu.Lock()
	defer game.mu.Unlock()

	total := game.pot
	for _, p := range game.players {
		if p != nil {
			total += p.chipCount
		}
	}

	return total
}

func chipCount(t *testing.T, game *Game, username string) int {
	t.Helper()

	_, p := game.PlayerByUsername(username)
	if p == nil {
		t.Fatalf("%s is not seated", username)
	}

	return p.ChipCount()
}
