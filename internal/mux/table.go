package mux

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"pokerroom-server/internal/config"
	"pokerroom-server/internal/rng"
	"pokerroom-server/pkg/playable/poker/texasholdem"
	"pokerroom-server/pkg/room"
)

type tableSummary struct {
	ID         string                `json:"id"`
	Name       string                `json:"name"`
	Host       string                `json:"host"`
	Private    bool                  `json:"private"`
	State      texasholdem.GameState `json:"state"`
	BigBlind   int                   `json:"bigBlind"`
	Players    int                   `json:"players"`
	MaxPlayers int                   `json:"maxPlayers"`
}

func newTableSummary(d *room.Dealer) *tableSummary {
	game := d.Game()
	return &tableSummary{
		ID:         d.ID(),
		Name:       d.Name(),
		Host:       d.Host(),
		Private:    d.Private(),
		State:      game.State(),
		BigBlind:   game.BigBlind(),
		Players:    len(game.Players()),
		MaxPlayers: game.MaxPlayers(),
	}
}

func (m *Mux) getTable() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start, rows, err := parsePaginationOptions(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		dealers := m.pitBoss.Search(r.FormValue("query"))
		tables := make([]*tableSummary, 0, rows)
		for i := int(start); i < len(dealers) && len(tables) < rows; i++ {
			tables = append(tables, newTableSummary(dealers[i]))
		}

		writeJSON(w, http.StatusOK, tables)
	})
}

type postTablePayload struct {
	Name       string `json:"name"`
	BigBlind   int    `json:"bigBlind"`
	MaxPlayers int    `json:"maxPlayers"`
	Private    bool   `json:"private"`
	Password   string `json:"password"`
}

func (m *Mux) postTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postTablePayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		cfg := config.Instance().Table
		opts := room.TableOptions{
			Name:     pp.Name,
			Host:     usernameFromContext(r.Context()),
			Private:  pp.Private,
			Password: pp.Password,
			Game: texasholdem.Options{
				BigBlind:   cfg.DefaultBigBlind,
				MaxPlayers: cfg.DefaultMaxPlayers,
				Generator:  rng.Default(cfg.ShuffleSeed),
			},
		}

		if pp.BigBlind != 0 {
			opts.Game.BigBlind = pp.BigBlind
		}

		if pp.MaxPlayers != 0 {
			opts.Game.MaxPlayers = pp.MaxPlayers
		}

		dealer, err := m.pitBoss.CreateTable(opts)
		if err != nil {
			var ue texasholdem.UserError
			if errors.As(err, &ue) {
				writeJSONError(w, http.StatusBadRequest, err)
			} else {
				writeJSONError(w, http.StatusInternalServerError, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, newTableSummary(dealer))
	}
}

func (m *Mux) getTableUUID() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dealer := dealerFromContext(r.Context())
		writeJSON(w, http.StatusOK, dealer.Game().View(usernameFromContext(r.Context())))
	})
}

func (m *Mux) tableMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uuid := mux.Vars(r)["uuid"]
		dealer, found := m.pitBoss.Dealer(uuid)
		if !found {
			writeJSONError(w, http.StatusNotFound, errors.New("table not found"))
			return
		}

		newCtx := context.WithValue(r.Context(), ctxDealerKey, dealer)

		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
