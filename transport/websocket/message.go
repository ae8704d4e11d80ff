package websocket

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

var (
	errMalformedPayload = errors.New("malformed payload")
	errUnknownAction    = errors.New("unknown action")
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type PlayerRef struct {
	ID string `json:"id"`
}

type ConnectPayload struct {
	Player PlayerRef `json:"player"`
}

type RoomPayload struct {
	RoomCode string `json:"room_code,omitempty"`
	Name     string `json:"name,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	TestMode bool   `json:"test_mode,omitempty"`
}

type BidPayload struct {
	Amount *int `json:"amount"`
}

type PropertyPayload struct {
	PropertyIndex *int `json:"property_index"`
}

type TradePayload struct {
	Trade *entity.TradeOffer `json:"trade"`
}

type ErrorPayload struct {
	Action string `json:"action,omitempty"`
	Error  string `json:"error"`
}

// decode - unmarshals an optional payload. An absent payload leaves dst zeroed.
func decode(raw json.RawMessage, dst any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %s", errMalformedPayload, err.Error())
	}

	return nil
}
