package room

import (
	"pokerroom-server/pkg/playable"
)

const logMessageLimit = 25

// addLogMessages keeps the most recent log messages for clients that join mid-hand
func (d *Dealer) addLogMessages(messages []*playable.LogMessage) {
	d.lock.Lock()
	defer d.lock.Unlock()

	m := append(d.logMessages, messages...)
	count := len(m)
	if count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	d.logMessages = m
}

// LogMessages returns the most recent log messages
func (d *Dealer) LogMessages() []*playable.LogMessage {
	d.lock.RLock()
	defer d.lock.RUnlock()

	m := make([]*playable.LogMessage, len(d.logMessages))
	copy(m, d.logMessages)

	return m
}
