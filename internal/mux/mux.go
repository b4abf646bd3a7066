package mux

import (
	"context"
	"net/http"

	gmux "github.com/gorilla/mux"
	"holdem-server/pkg/room"
)

type ctxKey int

const (
	ctxSessionKey ctxKey = iota
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	pitBoss *room.PitBoss

	// store for testing purposes
	sessionRouter *gmux.Router
}

// NewMux returns a new HTTP mux
func NewMux(version string, pitBoss *room.PitBoss) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		pitBoss: pitBoss,
	}

	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodPost).Path("/hand/evaluate").Handler(this.postHandEvaluate())
		r.Methods(http.MethodPost).Path("/hand/compare").Handler(this.postHandCompare())
		r.Methods(http.MethodGet).Path("/session").Handler(this.getSession())
		r.Methods(http.MethodPost).Path("/session").Handler(this.postSession())
	}

	// requires an open session
	{
		this.sessionRouter = this.Router.PathPrefix("/session/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
		this.sessionRouter.Use(this.sessionMiddleware)

		r := this.sessionRouter
		r.Methods(http.MethodGet).Path("").Handler(this.getSessionUUID())
		r.Methods(http.MethodDelete).Path("").Handler(this.deleteSessionUUID())
		r.Methods(http.MethodPost).Path("/action").Handler(this.postSessionUUIDAction())
		r.Methods(http.MethodGet).Path("/ws").Handler(this.getSessionUUIDWS())
	}

	return this
}

func (m *Mux) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uuid := gmux.Vars(r)["uuid"]
		session, err := m.pitBoss.GetSession(uuid)
		if err != nil {
			writeMaybeNotFoundError(w, err)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxSessionKey, session)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func sessionFromContext(r *http.Request) *room.Session {
	return r.Context().Value(ctxSessionKey).(*room.Session)
}
