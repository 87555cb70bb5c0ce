package texasholdem

import (
	"pokerroom-server/pkg/playable"
)

// addLog records messages for the current hand and broadcasts them
func (g *Game) addLog(messages ...*playable.LogMessage) {
	g.handLog = append(g.handLog, messages...)
	g.broadcast(EventLog, &LogPayload{Messages: messages})
}

// HandLog returns every log message of the current (or last) hand
func (g *Game) HandLog() []*playable.LogMessage {
	g.mu.Lock()
	defer g.mu.Unlock()

	log := make([]*playable.LogMessage, len(g.handLog))
	copy(log, g.handLog)

	return log
}
