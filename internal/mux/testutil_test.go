package mux

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"pokerroom-server/internal/jwt"
	"pokerroom-server/pkg/playable/poker/texasholdem"
	"pokerroom-server/pkg/room"
)

func setupServer(t *testing.T) (*httptest.Server, *room.PitBoss) {
	t.Helper()

	jwt.LoadKey()
	pitBoss := room.NewPitBoss(logrus.StandardLogger(), room.Settings{})
	t.Cleanup(pitBoss.EndShift)

	ts := httptest.NewServer(NewMux("v1.2.3", pitBoss))
	t.Cleanup(ts.Close)

	return ts, pitBoss
}

// createTable opens a public table hosted by alice
func createTable(t *testing.T, pitBoss *room.PitBoss, name string) *room.Dealer {
	t.Helper()

	d, err := pitBoss.CreateTable(room.TableOptions{
		Name: name,
		Host: "alice",
		Game: texasholdem.DefaultOptions(),
	})
	if err != nil {
		t.Fatalf("could not create table: %v", err)
	}

	return d
}

func player(t *testing.T, username string) string {
	t.Helper()

	token, err := jwt.Sign(username)
	if err != nil {
		t.Fatal(err)
	}

	return token
}

func assertDo(t *testing.T, req *http.Request, respObj interface{}, statusCode int, signedJWT ...string) *http.Response {
	t.Helper()

	if len(signedJWT) > 0 {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", signedJWT[0]))
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Error(err)
		return nil
	}
	defer resp.Body.Close()

	if statusCode != resp.StatusCode {
		b, _ := ioutil.ReadAll(resp.Body)
		t.Log(string(b))
		assert.Equal(t, statusCode, resp.StatusCode)
		return nil
	}

	if respObj != nil {
		if err := json.NewDecoder(resp.Body).Decode(respObj); err != nil {
			t.Error(err)
			return nil
		}
	}

	return resp
}

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int, signedJWT ...string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return nil
	}

	return assertDo(t, req, respObj, statusCode, signedJWT...)
}

func assertPost(t *testing.T, ts *httptest.Server, path string, payload interface{}, respObj interface{}, statusCode int, signedJWT ...string) *http.Response {
	t.Helper()

	var body io.Reader
	switch val := payload.(type) {
	case string:
		body = strings.NewReader(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			t.Error(err)
			return nil
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, body)
	if err != nil {
		t.Error(err)
		return nil
	}
	req.Header.Set("Content-Type", "application/json")

	return assertDo(t, req, respObj, statusCode, signedJWT...)
}
