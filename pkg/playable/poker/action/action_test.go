package action

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromString(t *testing.T) {
	a := assert.New(t)

	for _, s := range []string{"fold", "check", "call", "raise"} {
		act, err := FromString(s)
		a.NoError(err)
		a.Equal(Action(s), act)
		a.True(act.IsValid())
	}

	act, err := FromString("bet")
	a.EqualError(err, "unknown action for identifier: bet")
	a.Equal(Action(""), act)
	a.False(Action("discard").IsValid())
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "Raise", Raise.String())
	assert.PanicsWithValue(t, "unknown action", func() {
		_ = Action("bogus").String()
	})
}

func TestAction_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Call)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"id":"call","name":"Call"}`, string(b))
}

func TestAction_LogMessage(t *testing.T) {
	a := assert.New(t)
	a.Equal("folded", Fold.LogMessage(0))
	a.Equal("checked", Check.LogMessage(0))
	a.Equal("checked", Call.LogMessage(0))
	a.Equal("called ${25}", Call.LogMessage(25))
	a.Equal("raised ${50}", Raise.LogMessage(50))
	a.Equal("", Action("bogus").LogMessage(5))
}
