// Package lexmodel defines the Lex V2 code-hook wire contract: the turn
// payload the platform posts each conversation turn and the dialog-directive
// response the hook returns. The payload is decoded once at the boundary;
// everything past this package works on typed values.
package lexmodel

import "errors"

// Intent names served by this hook.
const (
	IntentBookHotel = "BookHotel"
	IntentBookCar   = "BookCar"
)

// Confirmation states of an intent.
const (
	ConfirmationNone      = "None"
	ConfirmationConfirmed = "Confirmed"
	ConfirmationDenied    = "Denied"
)

// Intent lifecycle states.
const (
	StateInProgress = "InProgress"
	StateFulfilled  = "Fulfilled"
)

// InvocationDialogCodeHook marks a validation-only pass; any other value is
// a fulfillment pass.
const InvocationDialogCodeHook = "DialogCodeHook"

// Dialog action types.
const (
	ActionElicitSlot    = "ElicitSlot"
	ActionConfirmIntent = "ConfirmIntent"
	ActionDelegate      = "Delegate"
	ActionClose         = "Close"
)

// Slot names of the BookHotel intent.
const (
	SlotLocation    = "Location"
	SlotCheckInDate = "CheckInDate"
	SlotNights      = "Nights"
	SlotRoomType    = "RoomType"
)

// Slot names of the BookCar intent.
const (
	SlotPickUpCity = "PickUpCity"
	SlotPickUpDate = "PickUpDate"
	SlotReturnDate = "ReturnDate"
	SlotDriverAge  = "DriverAge"
	SlotCarType    = "CarType"
)

// ErrUnsupportedIntent signals a configuration mismatch between the bot and
// this hook. It terminates the invocation; no directive is produced.
var ErrUnsupportedIntent = errors.New("unsupported intent")

// SlotValue carries the interpreted and raw forms of a filled slot.
type SlotValue struct {
	InterpretedValue string   `json:"interpretedValue"`
	OriginalValue    string   `json:"originalValue,omitempty"`
	ResolvedValues   []string `json:"resolvedValues,omitempty"`
}

// Slot is a single named field of the conversation. A nil map entry and an
// absent entry both mean "not yet provided"; a Slot with a nil Value does
// too.
type Slot struct {
	Shape string     `json:"shape,omitempty"`
	Value *SlotValue `json:"value,omitempty"`
}

// Intent is the user's goal for the turn together with its slot values.
type Intent struct {
	Name              string           `json:"name"`
	Slots             map[string]*Slot `json:"slots,omitempty"`
	State             string           `json:"state,omitempty"`
	ConfirmationState string           `json:"confirmationState,omitempty"`
}

// TimeToLive bounds how long an active context survives.
type TimeToLive struct {
	TimeToLiveInSeconds int `json:"timeToLiveInSeconds"`
	TurnsToLive         int `json:"turnsToLive"`
}

// ActiveContext is short-lived carryover state the platform passes back on
// subsequent turns.
type ActiveContext struct {
	Name              string            `json:"name"`
	ContextAttributes map[string]string `json:"contextAttributes"`
	TimeToLive        TimeToLive        `json:"timeToLive"`
}

// SessionState is the conversation snapshot inside a turn payload, and the
// mutated snapshot inside a response.
type SessionState struct {
	ActiveContexts    []ActiveContext   `json:"activeContexts,omitempty"`
	SessionAttributes map[string]string `json:"sessionAttributes,omitempty"`
	DialogAction      *DialogAction     `json:"dialogAction,omitempty"`
	Intent            *Intent           `json:"intent,omitempty"`
}

// DialogAction instructs the platform what to do next.
type DialogAction struct {
	Type         string `json:"type"`
	SlotToElicit string `json:"slotToElicit,omitempty"`
}

// Message is a prompt shown or spoken to the user.
type Message struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

// PlainText is the only content type this hook emits.
const PlainText = "PlainText"

// Event is the turn payload posted by the platform on every turn.
type Event struct {
	SessionID        string       `json:"sessionId"`
	InvocationSource string       `json:"invocationSource"`
	SessionState     SessionState `json:"sessionState"`
}

// Response is the single dialog directive returned per invocation.
type Response struct {
	SessionState SessionState `json:"sessionState"`
	Messages     []Message    `json:"messages,omitempty"`
}
