package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/tripdesk/tripdesk/pkg/events"
	"github.com/tripdesk/tripdesk/pkg/lexmodel"
)

// A confirmed suggestion should survive the rest of the conversation, not
// just the next turn.
const suggestionTurnsToLive = 20

// ErrMissingIntent reports a turn payload without an intent, which the
// platform contract never produces.
var ErrMissingIntent = errors.New("turn payload has no intent")

// Dispatcher routes each turn payload to the matching intent handler, or
// synthesizes a car-rental suggestion from a completed hotel booking's
// carryover context, or opens a fresh conversation.
type Dispatcher struct {
	catalog CatalogSource
	clock   Clock
	pub     *events.Publisher
}

// NewDispatcher creates a dispatcher. pub may be nil to disable event
// publishing.
func NewDispatcher(catalog CatalogSource, clock Clock, pub *events.Publisher) *Dispatcher {
	return &Dispatcher{catalog: catalog, clock: clock, pub: pub}
}

// Dispatch produces exactly one dialog directive for the turn, or an error
// when no directive applies (malformed payload, unsupported intent).
func (d *Dispatcher) Dispatch(ctx context.Context, ev *lexmodel.Event) (*lexmodel.Response, error) {
	intent := ev.SessionState.Intent
	if intent == nil {
		return nil, ErrMissingIntent
	}

	_ = d.pub.Emit(ctx, events.TurnDispatched, ev.SessionID, &events.TurnDispatchedData{
		IntentName:        intent.Name,
		InvocationSource:  ev.InvocationSource,
		ConfirmationState: intent.ConfirmationState,
	})

	// A filled opening slot is the signal that dialog has already begun.
	if intent.HasSlot(lexmodel.SlotLocation) || intent.HasSlot(lexmodel.SlotPickUpCity) {
		slog.DebugContext(ctx, "dispatching turn",
			slog.String("session_id", ev.SessionID),
			slog.String("intent", intent.Name),
			slog.String("invocation_source", ev.InvocationSource))

		switch intent.Name {
		case lexmodel.IntentBookHotel:
			return d.bookHotel(ctx, ev)
		case lexmodel.IntentBookCar:
			return d.bookCar(ctx, ev)
		default:
			return nil, fmt.Errorf("intent %q: %w", intent.Name, lexmodel.ErrUnsupportedIntent)
		}
	}

	if len(ev.SessionState.ActiveContexts) > 0 {
		if resp := d.suggestCarFromContext(ctx, ev); resp != nil {
			return resp, nil
		}
	}

	slog.DebugContext(ctx, "conversation initiated",
		slog.String("session_id", ev.SessionID), slog.String("intent", intent.Name))
	return lexmodel.InitialElicit(intent.Name)
}

// suggestCarFromContext pre-fills a car-rental intent from the first active
// context of a prior hotel booking and asks the user to confirm reusing
// those values. Returns nil when the context lacks usable attributes, in
// which case the conversation starts fresh.
func (d *Dispatcher) suggestCarFromContext(ctx context.Context, ev *lexmodel.Event) *lexmodel.Response {
	carry := ev.SessionState.ActiveContexts[0]
	attrs := carry.ContextAttributes

	location := attrs[ctxLocation]
	checkIn := attrs[ctxCheckInDate]
	nights, err := strconv.Atoi(attrs[ctxNights])
	if err != nil || location == "" || checkIn == "" {
		return nil
	}

	returnDate, err := AddDays(checkIn, nights)
	if err != nil {
		return nil
	}

	// Let the suggestion survive further turns.
	carry.TimeToLive.TurnsToLive = suggestionTurnsToLive

	intent := ev.SessionState.Intent
	intent.Slots = map[string]*lexmodel.Slot{
		lexmodel.SlotPickUpCity: lexmodel.NewScalarSlot(location),
		lexmodel.SlotPickUpDate: lexmodel.NewScalarSlot(checkIn),
		lexmodel.SlotReturnDate: lexmodel.NewScalarSlot(returnDate),
	}

	_ = d.pub.Emit(ctx, events.ReservationSuggested, ev.SessionID, &events.ReservationSuggestedData{
		PickUpCity: location,
		PickUpDate: checkIn,
		ReturnDate: returnDate,
	})
	slog.DebugContext(ctx, "suggesting car rental from hotel context",
		slog.String("session_id", ev.SessionID),
		slog.String("pick_up_city", location),
		slog.String("return_date", returnDate))

	return lexmodel.ConfirmIntent(carry, ev.SessionState.SessionAttributes, intent)
}
