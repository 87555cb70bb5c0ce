package mux

import (
	"errors"
	"net/http"
	"regexp"

	"pokerroom-server/internal/jwt"
	"pokerroom-server/internal/util"
)

type playerAuthPayload struct {
	Username string `json:"username"`
}

type playerAuthResponse struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

var validUsernameRx = regexp.MustCompile(`^[\p{L}\p{N}_]{3,20}\z`)

// postPlayerAuth issues a token for the username
// A random username is picked if none is provided.
func (m *Mux) postPlayerAuth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp playerAuthPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		username := pp.Username
		if username == "" {
			username = util.GetRandomName()
		}

		if !validUsernameRx.MatchString(username) {
			writeJSONError(w, http.StatusBadRequest, errors.New("username must be 3-20 letters, numbers, or underscores"))
			return
		}

		token, err := jwt.Sign(username)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, playerAuthResponse{
			Username: username,
			Token:    token,
		})
	}
}
