package mux

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"holdem-server/pkg/room"
)

const maxRows = 100
const defaultRows = 100

func parsePaginationOptions(r *http.Request) (int, int, error) {
	start := 0
	rows := defaultRows

	if startStr := r.FormValue("start"); startStr != "" {
		val, err := strconv.Atoi(startStr)
		if err != nil {
			return 0, 0, err
		}

		if val < 0 {
			return 0, 0, errors.New("start cannot be less than zero")
		}

		start = val
	}

	if rowsStr := r.FormValue("rows"); rowsStr != "" {
		val, err := strconv.Atoi(rowsStr)
		if err != nil {
			return 0, 0, err
		}

		if val <= 0 {
			return 0, 0, errors.New("rows must be greater than zero")
		}

		if val > maxRows {
			return 0, 0, fmt.Errorf("rows cannot be greater than %d", maxRows)
		}

		rows = val
	}

	return start, rows, nil
}

func decodeRequest(w http.ResponseWriter, r *http.Request, payload interface{}) bool {
	if ct := r.Header.Get("Content-Type"); ct != "application/json" && ct != "text/json" {
		writeJSONError(w, http.StatusUnsupportedMediaType, nil)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("could not write JSON response")
	}
}

type errorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// if err is room.ErrSessionNotFound, treat as 404, otherwise treat as a 500
func writeMaybeNotFoundError(w http.ResponseWriter, err error) {
	if errors.Is(err, room.ErrSessionNotFound) {
		writeJSONError(w, http.StatusNotFound, nil)
		return
	}

	writeJSONError(w, http.StatusInternalServerError, err)
}

func writeJSONError(w http.ResponseWriter, statusCode int, err error) {
	var msg string

	if statusCode < 500 && err != nil {
		msg = err.Error()
	} else {
		msg = http.StatusText(statusCode)
	}

	if statusCode >= 500 {
		logrus.WithField("statusCode", statusCode).Error(err)
	}

	writeJSON(w, statusCode, errorResponse{
		Message:    msg,
		StatusCode: statusCode,
	})
}
