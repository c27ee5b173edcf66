package events

import (
	"encoding/json"
	"time"
)

// EventType identifies the kind of event flowing through the system.
type EventType string

const (
	TurnDispatched       EventType = "turn.dispatched"
	SlotRejected         EventType = "slot.rejected"
	PriceQuoted          EventType = "price.quoted"
	ReservationConfirmed EventType = "reservation.confirmed"
	ReservationSuggested EventType = "reservation.suggested"
	SystemError          EventType = "error"
)

// Envelope is the standard event wrapper published to the event bus.
type Envelope struct {
	ID        string            `json:"id"`
	Type      EventType         `json:"type"`
	Source    string            `json:"source"`
	SessionID string            `json:"session_id"`
	Timestamp time.Time         `json:"timestamp"`
	Data      json.RawMessage   `json:"data"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// TurnDispatchedData is the payload for turn.dispatched events.
type TurnDispatchedData struct {
	IntentName        string `json:"intent_name"`
	InvocationSource  string `json:"invocation_source"`
	ConfirmationState string `json:"confirmation_state,omitempty"`
}

// SlotRejectedData is the payload for slot.rejected events.
type SlotRejectedData struct {
	IntentName string `json:"intent_name"`
	Slot       string `json:"slot"`
	Message    string `json:"message"`
}

// PriceQuotedData is the payload for price.quoted events.
type PriceQuotedData struct {
	ReservationType string  `json:"reservation_type"`
	Location        string  `json:"location"`
	Price           float64 `json:"price"`
}

// ReservationConfirmedData is the payload for reservation.confirmed events.
type ReservationConfirmedData struct {
	ReservationType string            `json:"reservation_type"`
	Attributes      map[string]string `json:"attributes"`
	Price           float64           `json:"price"`
}

// ReservationSuggestedData is the payload for reservation.suggested events,
// emitted when a completed hotel booking seeds a car-rental suggestion.
type ReservationSuggestedData struct {
	PickUpCity string `json:"pick_up_city"`
	PickUpDate string `json:"pick_up_date"`
	ReturnDate string `json:"return_date"`
}
