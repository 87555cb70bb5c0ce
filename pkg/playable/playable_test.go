package playable

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSimpleLogMessage(t *testing.T) {
	before := time.Now()
	lm := SimpleLogMessage("", "test %d", 5)
	assert.Equal(t, "test 5", lm.Message)
	assert.Nil(t, lm.Usernames)
	assert.False(t, lm.Time.Before(before))
	assert.False(t, time.Now().Before(lm.Time))
	assert.Nil(t, lm.Cards)
	assert.NotEmpty(t, lm.UUID)
}

func TestSimpleLogMessage_withUsername(t *testing.T) {
	lm := SimpleLogMessage("alice", "test %d", 4)
	assert.Equal(t, "test 4", lm.Message)
	assert.Equal(t, []string{"alice"}, lm.Usernames)
}

func TestOK(t *testing.T) {
	a := assert.New(t)
	a.Equal(&Response{Key: "status", Value: "OK"}, OK())
	a.Equal(&Response{Key: "status", Value: "OK", Context: "abc"}, OK("abc"))
}

func TestErrorResponse(t *testing.T) {
	res := ErrorResponse("ctx", errors.New("it is not your turn"))
	assert.Equal(t, &Response{Key: "error", Value: "it is not your turn", Context: "ctx"}, res)
}

func TestAdditionalData(t *testing.T) {
	a := assert.New(t)

	var payload PayloadIn
	a.NoError(json.Unmarshal([]byte(`{"action":"raise","additionalData":{"amount":40,"note":"hi"},"context":"x"}`), &payload))
	a.Equal("raise", payload.Action)
	a.Equal("x", payload.Context)

	amount, ok := payload.AdditionalData.GetInt("amount")
	a.True(ok)
	a.Equal(40, amount)

	_, ok = payload.AdditionalData.GetInt("note")
	a.False(ok)

	note, ok := payload.AdditionalData.GetString("note")
	a.True(ok)
	a.Equal("hi", note)

	_, ok = payload.AdditionalData.GetString("missing")
	a.False(ok)
}
