package holdem

import "encoding/json"

// DealerState represents the state of the round
type DealerState int

// constants for DealerState
const (
	DealerStateFlopBettingRound DealerState = iota
	DealerStateTurnBettingRound
	DealerStateRevealWinner
)

func (d DealerState) String() string {
	switch d {
	case DealerStateFlopBettingRound:
		return "flop-betting-round"
	case DealerStateTurnBettingRound:
		return "turn-betting-round"
	case DealerStateRevealWinner:
		return "reveal-winner"
	}

	return ""
}

// MarshalJSON encodes JSON
func (d DealerState) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(d),
		Name: d.String(),
	})
}

// UnmarshalJSON decodes the JSON produced by MarshalJSON
func (d *DealerState) UnmarshalJSON(b []byte) error {
	var v struct {
		ID int `json:"id"`
	}

	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	*d = DealerState(v.ID)
	return nil
}
