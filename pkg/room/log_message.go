package room

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const logMessageLimit = 25

// LogMessage is an entry in the history of a session
type LogMessage struct {
	UUID    string    `json:"uuid"`
	Round   int       `json:"round"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

func newLogMessage(round int, format string, a ...interface{}) *LogMessage {
	return &LogMessage{
		UUID:    uuid.New().String(),
		Round:   round,
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}

// addLogMessages adds log messages, only the most recent ones are kept
// Note: the session lock must be held
func (s *Session) addLogMessages(messages ...*LogMessage) {
	m := append(s.logMessages, messages...)
	count := len(m)
	if count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	s.logMessages = m
}
