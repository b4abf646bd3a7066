package mux

import (
	"errors"
	"net/http"

	"holdem-server/pkg/holdem"
	"holdem-server/pkg/room"
)

func (m *Mux) getSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, rows, err := parsePaginationOptions(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		sessions := m.pitBoss.Sessions(start, rows)
		summaries := make([]room.Summary, len(sessions))
		for i, s := range sessions {
			summaries[i] = s.Summary()
		}

		writeJSON(w, http.StatusOK, summaries)
	}
}

func (m *Mux) postSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := m.pitBoss.OpenSession()
		if err != nil {
			if errors.Is(err, room.ErrTooManySessions) {
				writeJSONError(w, http.StatusServiceUnavailable, err)
			} else {
				writeJSONError(w, http.StatusInternalServerError, err)
			}

			return
		}

		writeJSON(w, http.StatusCreated, session.State())
	}
}

func (m *Mux) getSessionUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, sessionFromContext(r).State())
	}
}

func (m *Mux) deleteSessionUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := m.pitBoss.CloseSession(sessionFromContext(r).UUID); err != nil {
			writeMaybeNotFoundError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

type postSessionUUIDActionPayload struct {
	Action string `json:"action"`
}

func (m *Mux) postSessionUUIDAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postSessionUUIDActionPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		state, err := sessionFromContext(r).ActionFromString(pp.Action)
		if err != nil {
			if isGameError(err) {
				writeJSONError(w, http.StatusBadRequest, err)
			} else {
				writeJSONError(w, http.StatusInternalServerError, err)
			}

			return
		}

		writeJSON(w, http.StatusOK, state)
	}
}

// isGameError returns true if the error was caused by the request rather than the server
func isGameError(err error) bool {
	var ue holdem.UserError
	if errors.As(err, &ue) {
		return true
	}

	for _, target := range []error{
		holdem.ErrRoundOver,
		holdem.ErrRoundInProgress,
		holdem.ErrInsufficientFunds,
		holdem.ErrOutOfMoney,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
