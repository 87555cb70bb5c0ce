package texasholdem

import (
	"pokerroom-server/pkg/deck"
)

// Participant is the player occupying a seat
type Participant struct {
	Username string

	chipCount  int
	cards      deck.Hand
	folded     bool
	allIn      bool
	active     bool
	currentBet int
}

type participantJSON struct {
	Position   int       `json:"position"`
	Username   string    `json:"username"`
	ChipCount  int       `json:"chipCount"`
	CurrentBet int       `json:"currentBet"`
	Folded     bool      `json:"folded"`
	AllIn      bool      `json:"allIn"`
	Active     bool      `json:"active"`
	HasCards   bool      `json:"hasCards"`
	Cards      deck.Hand `json:"cards,omitempty"`
}

func newParticipant(username string, chipCount int) *Participant {
	return &Participant{
		Username:  username,
		chipCount: chipCount,
	}
}

// ChipCount returns the chips in front of the player
func (p *Participant) ChipCount() int {
	return p.chipCount
}

// CurrentBet returns what the player has committed this street
func (p *Participant) CurrentBet() int {
	return p.currentBet
}

// Folded returns true if the player folded this hand
func (p *Participant) Folded() bool {
	return p.folded
}

// AllIn returns true if the player has committed their entire stack
func (p *Participant) AllIn() bool {
	return p.allIn
}

// Active returns true if the player was dealt into a hand
func (p *Participant) Active() bool {
	return p.active
}

// Cards returns a copy of the player's hole cards
func (p *Participant) Cards() deck.Hand {
	return p.cards.Clone()
}

// canAct returns true if the player can still make betting decisions
func (p *Participant) canAct() bool {
	return p.active && !p.folded && !p.allIn
}

// newHand clears everything left over from the previous hand
func (p *Participant) newHand() {
	p.cards = nil
	p.folded = false
	p.allIn = false
	p.currentBet = 0
	p.active = p.chipCount > 0
}

func (p *Participant) participantJSON(position int, reveal bool) *participantJSON {
	var cards deck.Hand
	if reveal {
		cards = p.cards.Clone()
	}

	return &participantJSON{
		Position:   position,
		Username:   p.Username,
		ChipCount:  p.chipCount,
		CurrentBet: p.currentBet,
		Folded:     p.folded,
		AllIn:      p.allIn,
		Active:     p.active,
		HasCards:   len(p.cards) > 0,
		Cards:      cards,
	}
}

func (p *Participant) clone() *Participant {
	c := *p
	c.cards = p.cards.Clone()

	return &c
}
