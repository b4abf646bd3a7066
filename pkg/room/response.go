package room

import "holdem-server/pkg/holdem"

// PayloadIn is the format we expect from a websocket client
type PayloadIn struct {
	Action string `json:"action"`

	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// Response is a message sent to a websocket client
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data"`
	Context string      `json:"context"`
}

// SessionState is the state of a session
type SessionState struct {
	UUID     string            `json:"uuid"`
	Opponent string            `json:"opponent"`
	Game     *holdem.GameState `json:"game"`
	Log      []*LogMessage     `json:"log"`
}

func newStateResponse(ctx string, state *SessionState) *Response {
	return &Response{
		Key:     "state",
		Value:   state.Game.DealerState.String(),
		Data:    state,
		Context: ctx,
	}
}

func newErrorResponse(ctx string, err error) *Response {
	return &Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}
