package websocket

import "encoding/json"

const (
	// ActionConnected is the first frame a client receives.
	ActionConnected = "feed.connected"
	// ActionMessageCreated announces a newly posted board message.
	ActionMessageCreated = "message.created"
)

// Message defines the structure for websocket messages.
type Message struct {
	Action  string      `json:"action"`
	Payload interface{} `json:"payload"`
}

// Encode marshals an action and its payload into a websocket frame body.
func Encode(action string, payload interface{}) ([]byte, error) {
	return json.Marshal(Message{Action: action, Payload: payload})
}
