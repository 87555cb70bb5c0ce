package texasholdem

// AddPlayer seats the player in the first empty seat with the default chip count
// False is returned if the username is already seated or the table is full.
func (g *Game) AddPlayer(username string) (int, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if seat, _ := g.playerByUsername(username); seat != NoPosition {
		return NoPosition, false
	}

	for seat, p := range g.players {
		if p == nil {
			g.players[seat] = newParticipant(username, g.defaultChipCount)
			g.logger.WithField("seat", seat).WithField("username", username).Debug("player seated")
			return seat, true
		}
	}

	return NoPosition, false
}

// RemovePlayer empties the player's seat
// If the table is waiting on the player, the betting round is released and continues without them.
// If the player held the button, it moves to the previous occupied seat.
func (g *Game) RemovePlayer(username string) (int, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	seat, p := g.playerByUsername(username)
	if p == nil {
		return NoPosition, false
	}

	if seat == g.currentPlayerPosition {
		g.releaseTurn()
	}

	g.players[seat] = nil
	if seat == g.dealerPosition {
		// the button steps back so the next hand still deals from the seat after this one
		g.dealerPosition = g.previousSeat(seat, occupied)
	}

	g.logger.WithField("seat", seat).WithField("username", username).Debug("player left")

	return seat, true
}

// GetPlayer looks up a player by username (string) or seat (int)
// A copy of the player is returned. (NoPosition, nil) is returned if the player could not be found.
func (g *Game) GetPlayer(id interface{}) (int, *Participant) {
	switch v := id.(type) {
	case string:
		return g.PlayerByUsername(v)
	case int:
		return g.PlayerBySeat(v)
	}

	return NoPosition, nil
}

// PlayerByUsername returns a copy of the player with the username
func (g *Game) PlayerByUsername(username string) (int, *Participant) {
	g.mu.Lock()
	defer g.mu.Unlock()

	seat, p := g.playerByUsername(username)
	if p == nil {
		return NoPosition, nil
	}

	return seat, p.clone()
}

// PlayerBySeat returns a copy of the player in the seat
func (g *Game) PlayerBySeat(seat int) (int, *Participant) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if seat < 0 || seat >= len(g.players) || g.players[seat] == nil {
		return NoPosition, nil
	}

	return seat, g.players[seat].clone()
}

// Players returns every occupied seat
func (g *Game) Players() []int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.seatsWhere(occupied)
}

// ActivePlayers returns the seats that can still act this hand
func (g *Game) ActivePlayers() []int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.activeSeats()
}

// NotFoldedPlayers returns the seats still contesting the pot
func (g *Game) NotFoldedPlayers() []int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.notFoldedSeats()
}

func (g *Game) playerByUsername(username string) (int, *Participant) {
	for seat, p := range g.players {
		if p != nil && p.Username == username {
			return seat, p
		}
	}

	return NoPosition, nil
}

func (g *Game) seatsWhere(fn func(p *Participant) bool) []int {
	seats := make([]int, 0, len(g.players))
	for seat, p := range g.players {
		if p != nil && fn(p) {
			seats = append(seats, seat)
		}
	}

	return seats
}

func (g *Game) activeSeats() []int {
	return g.seatsWhere((*Participant).canAct)
}

func (g *Game) notFoldedSeats() []int {
	return g.seatsWhere(func(p *Participant) bool {
		return p.active && !p.folded
	})
}

// nextSeat returns the first seat clockwise after from whose player matches fn
func (g *Game) nextSeat(from int, fn func(p *Participant) bool) int {
	n := len(g.players)
	for i := 1; i <= n; i++ {
		seat := (from + i) % n
		if seat < 0 {
			seat += n
		}

		if p := g.players[seat]; p != nil && fn(p) {
			return seat
		}
	}

	return NoPosition
}

// previousSeat returns the first seat counter-clockwise before from whose player matches fn
func (g *Game) previousSeat(from int, fn func(p *Participant) bool) int {
	n := len(g.players)
	for i := 1; i <= n; i++ {
		seat := ((from-i)%n + n) % n
		if p := g.players[seat]; p != nil && fn(p) {
			return seat
		}
	}

	return NoPosition
}

func occupied(*Participant) bool {
	return true
}

func isActive(p *Participant) bool {
	return p.active
}
