package mux

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"pokerroom-server/internal/jwt"
	"pokerroom-server/pkg/room"
)

func Test_authRouter(t *testing.T) {
	jwt.LoadKey()
	m := NewMux("", room.NewPitBoss(logrus.StandardLogger(), room.Settings{}))

	m.authRouter.Path("/test").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, usernameFromContext(r.Context()))
	})

	ts := httptest.NewServer(m)
	defer ts.Close()

	var errObj errorResponse
	assertGet(t, ts, "/test", &errObj, 401)
	assert.Equal(t, "Unauthorized", errObj.Message)

	assertGet(t, ts, "/test", &errObj, 401, "not-a-token")

	token := player(t, "alice")

	// test using auth header
	var str string
	resp := assertGet(t, ts, "/test", &str, 200, token)
	assert.Equal(t, "alice", str)
	assert.Equal(t, "alice", resp.Header.Get("PokerRoom-Username"))

	// test using query parameter
	resp = assertGet(t, ts, "/test?access_token="+url.QueryEscape(token), &str, 200)
	assert.Equal(t, "alice", str)
	assert.Equal(t, "alice", resp.Header.Get("PokerRoom-Username"))
}
