package mux

import (
	"errors"
	"net/http"

	"holdem-server/pkg/deck"
	"holdem-server/pkg/poker"
)

type postHandEvaluatePayload struct {
	Cards []int `json:"cards"`
}

type postHandEvaluateResponse struct {
	Category string   `json:"category"`
	Label    string   `json:"label"`
	Cards    []string `json:"cards"`
}

func (m *Mux) postHandEvaluate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postHandEvaluatePayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		cards := make(deck.Hand, len(pp.Cards))
		for i, id := range pp.Cards {
			cards[i] = deck.Card(id)
		}

		ranking, err := poker.Evaluate(cards)
		if err != nil {
			if errors.Is(err, poker.ErrInvalidHandSize) || errors.Is(err, poker.ErrDuplicateCard) || errors.Is(err, deck.ErrOutOfRange) {
				writeJSONError(w, http.StatusBadRequest, err)
			} else {
				writeJSONError(w, http.StatusInternalServerError, err)
			}

			return
		}

		writeJSON(w, http.StatusOK, postHandEvaluateResponse{
			Category: ranking.Hand.String(),
			Label:    ranking.String(),
			Cards:    cards.Strings(),
		})
	}
}

type postHandComparePayload struct {
	First  string `json:"first"`
	Second string `json:"second"`
}

type postHandCompareResponse struct {
	Outcome poker.Outcome `json:"outcome"`
}

func (m *Mux) postHandCompare() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postHandComparePayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		outcome, err := poker.CompareLabels(pp.First, pp.Second)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusOK, postHandCompareResponse{Outcome: outcome})
	}
}
