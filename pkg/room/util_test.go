package room

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"pokerroom-server/pkg/deck"
	"pokerroom-server/pkg/playable"
	"pokerroom-server/pkg/playable/poker/texasholdem"
)

const testTimeout = 2 * time.Second

// bob is dealt trip aces against alice's seven high
const headsUpDeck = "14c,14d,2c,7d,14h,9s,5c,3d,11h"

func newTestPitBoss(t *testing.T, settings Settings) *PitBoss {
	t.Helper()

	p := NewPitBoss(logrus.StandardLogger(), settings)
	t.Cleanup(p.EndShift)

	return p
}

var tableNumber int32

// tableOptions returns the options of a public table with a unique name
func tableOptions(cards string) TableOptions {
	opts := TableOptions{
		Name: fmt.Sprintf("Table %d", atomic.AddInt32(&tableNumber, 1)),
		Host: "alice",
		Game: texasholdem.DefaultOptions(),
	}

	if cards != "" {
		opts.Game.NewDeck = func() *deck.Deck {
			return deck.NewWithCards(deck.CardsFromString(cards))
		}
	}

	return opts
}

// setupTable opens a table and connects a client for each username
func setupTable(t *testing.T, settings Settings, cards string, usernames ...string) (*Dealer, map[string]*Client) {
	t.Helper()

	p := newTestPitBoss(t, settings)
	d, err := p.CreateTable(tableOptions(cards))
	if err != nil {
		t.Fatalf("could not create table: %v", err)
	}

	clients := make(map[string]*Client)
	for _, username := range usernames {
		c := NewClient(nil, username, d.ID())
		if err := p.ClientConnected(c); err != nil {
			t.Fatalf("could not connect %s: %v", username, err)
		}

		clients[username] = c
	}

	return d, clients
}

// nextResponse reads from the client until a response with the key arrives
func nextResponse(t *testing.T, c *Client, key string) *playable.Response {
	t.Helper()

	timeout := time.After(testTimeout)
	for {
		select {
		case msg := <-c.SendChan():
			if res, ok := msg.(*playable.Response); ok && res.Key == key {
				return res
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %s", key)
			return nil
		}
	}
}

// sendMessage sends an action on behalf of the client and returns the status or error reply
func sendMessage(t *testing.T, d *Dealer, c *Client, act string, amount int) *playable.Response {
	t.Helper()

	ctx := fmt.Sprintf("%s-%s-%d", c.username, act, time.Now().UnixNano())
	d.ReceivedMessage(c, &playable.PayloadIn{
		Action:         act,
		AdditionalData: playable.AdditionalData{"amount": float64(amount)},
		Context:        ctx,
	})

	timeout := time.After(testTimeout)
	for {
		select {
		case msg := <-c.SendChan():
			res, ok := msg.(*playable.Response)
			if ok && res.Context == ctx && (res.Key == "status" || res.Key == "error") {
				return res
			}
		case <-timeout:
			t.Fatalf("timed out waiting for a reply to %s", act)
			return nil
		}
	}
}

func waitForTurn(t *testing.T, d *Dealer, username string) {
	t.Helper()

	if !assert.Eventually(t, func() bool {
		_, current := d.Game().CurrentTurn()
		return current == username
	}, testTimeout, time.Millisecond, "waiting for %s to act", username) {
		t.FailNow()
	}
}

// play waits for the client's turn and sends the action
func play(t *testing.T, d *Dealer, c *Client, act string, amount int) {
	t.Helper()

	waitForTurn(t, d, c.username)
	res := sendMessage(t, d, c, act, amount)
	if !assert.Equal(t, "status", res.Key, "%s %s: %s", c.username, act, res.Value) {
		t.FailNow()
	}
}

func chipCount(t *testing.T, d *Dealer, username string) int {
	t.Helper()

	_, p := d.Game().PlayerByUsername(username)
	if p == nil {
		t.Fatalf("%s is not seated", username)
	}

	return p.ChipCount()
}
