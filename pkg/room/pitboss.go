package room

import (
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"pokerroom-server/pkg/playable/poker/texasholdem"
)

// ErrTableNotFound is returned when a client connects to a table that does not exist
var ErrTableNotFound = texasholdem.UserError("table not found")

// PitBoss is responsible for dispatching players to tables
type PitBoss struct {
	logger   logrus.FieldLogger
	settings Settings

	lock    sync.Mutex
	dealers map[string]*Dealer
}

// NewPitBoss returns a new dispatch object
func NewPitBoss(logger logrus.FieldLogger, settings Settings) *PitBoss {
	return &PitBoss{
		logger:   logger,
		settings: settings,
		dealers:  make(map[string]*Dealer),
	}
}

// CreateTable opens a new table and starts its dealer
// Table names are unique among open tables, ignoring case.
func (p *PitBoss) CreateTable(opts TableOptions) (*Dealer, error) {
	dealer, err := NewDealer(p, uuid.New().String(), opts)
	if err != nil {
		return nil, err
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	for _, other := range p.dealers {
		if strings.EqualFold(other.name, opts.Name) {
			dealer.game.Close()
			return nil, errTableNameTaken(opts.Name)
		}
	}

	p.dealers[dealer.ID()] = dealer
	dealer.StartShift()
	p.logger.WithFields(logrus.Fields{
		"table":   dealer.ID(),
		"name":    dealer.Name(),
		"host":    dealer.Host(),
		"private": dealer.Private(),
	}).Info("table created")

	return dealer, nil
}

// Dealer returns the dealer running the table
func (p *PitBoss) Dealer(tableID string) (*Dealer, bool) {
	p.lock.Lock()
	defer p.lock.Unlock()

	dealer, found := p.dealers[tableID]
	return dealer, found
}

// Dealers returns the dealer of every open table, ordered by table id
func (p *PitBoss) Dealers() []*Dealer {
	return p.Search("")
}

// Search returns the dealer of every open table whose name or host contains query, ordered by table id
// An empty query matches every table.
func (p *PitBoss) Search(query string) []*Dealer {
	p.lock.Lock()
	defer p.lock.Unlock()

	dealers := make([]*Dealer, 0, len(p.dealers))
	for _, dealer := range p.dealers {
		if query == "" || dealer.matches(query) {
			dealers = append(dealers, dealer)
		}
	}

	sort.Slice(dealers, func(i, j int) bool {
		return dealers[i].ID() < dealers[j].ID()
	})

	return dealers
}

// ClientConnected is called when a client connects to the server
// An error is returned if the client could not be seated.
func (p *PitBoss) ClientConnected(client *Client) error {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.logger.WithField("player", client.String()).Debug("client connected")
	dealer, found := p.dealers[client.tableID]
	if !found {
		return ErrTableNotFound
	}

	return dealer.AddClient(client)
}

// ClientDisconnected is called when a client disconnects from the server
// The table is closed once its last client has left.
func (p *PitBoss) ClientDisconnected(client *Client) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.logger.WithField("player", client.String()).Debug("client disconnected")
	dealer, found := p.dealers[client.tableID]
	if !found {
		p.logger.WithField("table", client.tableID).WithField("type", "exception").Error("table not found")
		return
	}

	if dealer.RemoveClient(client) {
		dealer.EndShift()
		delete(p.dealers, client.tableID)
		p.logger.WithField("table", client.tableID).Info("table closed")
	}
}

// EndShift closes every table
func (p *PitBoss) EndShift() {
	p.lock.Lock()
	defer p.lock.Unlock()

	for id, dealer := range p.dealers {
		dealer.EndShift()
		delete(p.dealers, id)
	}
}
