package room

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/synacor/argon2id"
	"pokerroom-server/pkg/playable"
	"pokerroom-server/pkg/playable/poker/action"
	"pokerroom-server/pkg/playable/poker/texasholdem"
)

// ErrNoSeat is returned when a client cannot be seated at the table
var ErrNoSeat = texasholdem.UserError("there is no seat available for you at this table")

// Settings controls how a dealer runs its table
type Settings struct {
	// ActionTimeout is how long a player has to act before they are folded
	// Zero disables the timer.
	ActionTimeout time.Duration

	// StartGameDelay is the pause between a settled hand and the next one
	// Zero disables starting hands automatically.
	StartGameDelay time.Duration
}

// Dealer is responsible for controlling the game at a single table
type Dealer struct {
	logger   logrus.FieldLogger
	settings Settings
	game     *texasholdem.Game

	name         string
	host         string
	passwordHash string

	lock        sync.RWMutex
	clients     map[string]*Client
	logMessages []*playable.LogMessage

	execInRunLoop chan func()
	close         chan bool

	// only accessed from the run loop
	turnID      int
	actionTimer *time.Timer
	startTimer  *time.Timer
}

// NewDealer creates a dealer and the table it runs
func NewDealer(pitBoss *PitBoss, id string, opts TableOptions) (*Dealer, error) {
	if err := validateTableOptions(opts); err != nil {
		return nil, err
	}

	d := &Dealer{
		logger:        pitBoss.logger.WithField("table", id),
		settings:      pitBoss.settings,
		name:          opts.Name,
		host:          opts.Host,
		clients:       make(map[string]*Client),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
	}

	if opts.Private {
		hash, err := argon2id.DefaultHashPassword(opts.Password)
		if err != nil {
			return nil, err
		}

		d.passwordHash = hash
	}

	game, err := texasholdem.NewGame(pitBoss.logger, id, opts.Game, texasholdem.Sinks{
		Broadcast: d.broadcast,
		Notify:    d.notify,
	})
	if err != nil {
		return nil, err
	}

	d.game = game
	return d, nil
}

// ID returns the table identifier
func (d *Dealer) ID() string {
	return d.game.ID()
}

// Game returns the table the dealer runs
func (d *Dealer) Game() *texasholdem.Game {
	return d.game
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for _, client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

func (d *Dealer) runLoop() {
	d.logger.Debug("creating dealer run loop")
	for {
		select {
		case fn := <-d.execInRunLoop:
			fn()
		case <-d.close:
			d.stopTimer(d.actionTimer)
			d.stopTimer(d.startTimer)
			d.logger.Debug("terminating dealer run loop")
			return
		}
	}
}

// EndShift is called when the dealer is no longer needed
// Any hand in progress is abandoned and connected clients are asked to leave.
func (d *Dealer) EndShift() {
	close(d.close)
	d.game.Close()

	for _, client := range d.Clients() {
		client.requestClose("table closed")
	}
}

// schedule runs fn on the run loop
// Order is preserved unless the queue is full.
func (d *Dealer) schedule(fn func()) {
	select {
	case d.execInRunLoop <- fn:
	default:
		go func() {
			select {
			case d.execInRunLoop <- fn:
			case <-d.close:
			}
		}()
	}
}

// AddClient seats the client at the table
// This method must return quickly
func (d *Dealer) AddClient(client *Client) error {
	seat, ok := d.game.AddPlayer(client.username)
	if !ok {
		return ErrNoSeat
	}

	d.lock.Lock()
	client.dealer = d
	d.clients[client.username] = client
	d.lock.Unlock()

	d.logger.WithFields(logrus.Fields{
		"seat":   seat,
		"client": client.String(),
	}).Info("client seated")

	client.Send(&playable.Response{
		Key:  string(texasholdem.EventLog),
		Data: &texasholdem.LogPayload{Messages: d.LogMessages()},
	})
	d.sendTableViews()

	return nil
}

// RemoveClient removes the client and frees their seat
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	seated := d.clients[client.username] == client
	if seated {
		delete(d.clients, client.username)
	}
	nClients := len(d.clients)
	d.lock.Unlock()

	if seated {
		d.game.RemovePlayer(client.username)
	}

	if nClients > 0 {
		if seated {
			d.sendTableViews()
		}

		return false
	}

	return true
}

// sendTableViews sends every client their own view of the table
func (d *Dealer) sendTableViews() {
	for _, client := range d.Clients() {
		d.send(client, &playable.Response{
			Key:  "table",
			Data: d.game.View(client.username),
		})
	}
}

func (d *Dealer) send(client *Client, msg *playable.Response) {
	if !client.Send(msg) {
		d.logger.WithField("client", client.String()).WithField("key", msg.Key).Warn("client buffer is full, dropping message")
	}
}

// broadcast is the table's broadcast sink
// The table is locked, so nothing here may call into the game directly.
func (d *Dealer) broadcast(event texasholdem.Event, payload interface{}) {
	msg := &playable.Response{
		Key:  string(event),
		Data: payload,
	}

	for _, client := range d.Clients() {
		d.send(client, msg)
	}

	switch event {
	case texasholdem.EventLog:
		d.addLogMessages(payload.(*texasholdem.LogPayload).Messages)
	case texasholdem.EventGameState:
		switch payload.(*texasholdem.GameStatePayload).State {
		case texasholdem.GameStateShowdown:
			d.schedule(d.settle)
		case texasholdem.GameStateWaiting:
			d.schedule(d.scheduleNextHand)
		case texasholdem.GameStatePreFlop:
			d.schedule(func() {
				d.stopTimer(d.startTimer)
			})
		}
	}
}

// notify is the table's private message sink
func (d *Dealer) notify(username string, event texasholdem.Event, payload interface{}) {
	d.lock.RLock()
	client, ok := d.clients[username]
	d.lock.RUnlock()

	if ok {
		d.send(client, &playable.Response{
			Key:  string(event),
			Data: payload,
		})
	}

	if event == texasholdem.EventYourTurn {
		d.schedule(func() {
			d.startActionTimer(username)
		})
	}
}

// ReceivedMessage is called when a client sends a message to the server
func (d *Dealer) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	d.schedule(func() {
		if err := d.handleMessage(c, msg); err != nil {
			var ae *texasholdem.ActionError
			var ue texasholdem.UserError
			if !errors.As(err, &ae) && !errors.As(err, &ue) {
				d.logger.WithError(err).WithField("client", c.String()).Error("could not perform action")
			}

			d.send(c, playable.ErrorResponse(msg.Context, err))
			return
		}

		d.send(c, playable.OK(msg.Context))
	})
}

// NOTE: must only be called from the run loop
func (d *Dealer) handleMessage(c *Client, msg *playable.PayloadIn) error {
	switch msg.Action {
	case "start":
		return d.game.Start()
	case "table":
		d.send(c, &playable.Response{
			Key:     "table",
			Data:    d.game.View(c.username),
			Context: msg.Context,
		})
		return nil
	}

	a, err := action.FromString(msg.Action)
	if err != nil {
		return texasholdem.UserError(fmt.Sprintf("unknown action: %s", msg.Action))
	}

	amount, _ := msg.AdditionalData.GetInt("amount")
	return d.game.Act(c.username, a, amount)
}

// NOTE: must only be called from the run loop
func (d *Dealer) settle() {
	settlement, err := d.game.Settle()
	if err != nil {
		if !errors.Is(err, texasholdem.ErrNothingToSettle) {
			d.logger.WithError(err).Error("could not settle the hand")
		}

		return
	}

	d.logger.WithField("pot", settlement.Pot).Info("hand settled")
}

// NOTE: must only be called from the run loop
func (d *Dealer) scheduleNextHand() {
	d.stopTimer(d.actionTimer)
	d.stopTimer(d.startTimer)
	if d.settings.StartGameDelay <= 0 {
		return
	}

	d.startTimer = time.AfterFunc(d.settings.StartGameDelay, func() {
		d.schedule(d.startHand)
	})
}

// NOTE: must only be called from the run loop
func (d *Dealer) startHand() {
	if !d.game.CanStart() {
		return
	}

	if err := d.game.Start(); err != nil {
		d.logger.WithError(err).Warn("could not start the next hand")
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) startActionTimer(username string) {
	d.turnID++
	d.stopTimer(d.actionTimer)
	if d.settings.ActionTimeout <= 0 {
		return
	}

	turnID := d.turnID
	d.actionTimer = time.AfterFunc(d.settings.ActionTimeout, func() {
		d.schedule(func() {
			d.actionTimedOut(turnID, username)
		})
	})
}

// NOTE: must only be called from the run loop
func (d *Dealer) actionTimedOut(turnID int, username string) {
	if turnID != d.turnID {
		return
	}

	if _, current := d.game.CurrentTurn(); current != username {
		return
	}

	d.logger.WithField("username", username).Info("player took too long to act, folding")
	if err := d.game.Act(username, action.Fold, 0); err != nil {
		d.logger.WithError(err).WithField("username", username).Warn("could not fold inactive player")
	}
}

func (d *Dealer) stopTimer(timer *time.Timer) {
	if timer != nil {
		timer.Stop()
	}
}
