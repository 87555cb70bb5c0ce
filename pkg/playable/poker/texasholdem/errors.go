package texasholdem

import "pokerroom-server/pkg/playable/poker/action"

// UserError is an error that is safe to return in a response
type UserError string

func (u UserError) Error() string {
	return string(u)
}

// ActionError is returned when a player's action is rejected
// The table is left unchanged.
type ActionError struct {
	Action action.Action
	Reason string
}

func (a *ActionError) Error() string {
	return a.Reason
}

func newActionError(a action.Action, reason string) *ActionError {
	return &ActionError{
		Action: a,
		Reason: reason,
	}
}
