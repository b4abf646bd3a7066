package main

import (
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"holdem-server/internal/config"
	"holdem-server/internal/mux"
	"holdem-server/pkg/holdem"
	"holdem-server/pkg/room"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", ":5000", "the listen address")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()
	pitBoss, err := room.NewPitBoss(logrus.StandardLogger(), room.Options{
		Game: holdem.Options{
			Ante:    cfg.Game.Ante,
			BetStep: cfg.Game.BetStep,
		},
		StartingBalance: cfg.Game.StartingBalance,
		MaxSessions:     cfg.Room.MaxSessions,
	})
	if err != nil {
		logrus.WithError(err).Fatal("invalid game configuration")
	}

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
	})

	srv := &http.Server{
		Addr:         *addr,
		Handler:      loggingHandler(c.Handler(mux.NewMux(Version, pitBoss))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithFields(logrus.Fields{
		"addr":            srv.Addr,
		"version":         Version,
		"ante":            cfg.Game.Ante,
		"startingBalance": cfg.Game.StartingBalance,
	}).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	// logs collected from a pipe are easier to ingest as JSON
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" || !term.IsTerminal(int(os.Stdout.Fd())) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
