package booking

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/pitabwire/util"

	"github.com/tripdesk/tripdesk/pkg/events"
	"github.com/tripdesk/tripdesk/pkg/lexmodel"
)

// Session attribute carrying the current quote across turns.
const attrReservationPrice = "currentReservationPrice"

const (
	msgConfirmHotel = "Confirm hotel reservation"
	msgHotelBooked  = "Thanks, I have placed your reservation.   " +
		"Please let me know if you would like to book a car, rental, or another hotel."
)

// bookHotel runs the BookHotel state machine for one turn. Invalid slots
// re-elicit the violated slot; a fully valid set delegates, closes, or
// restarts depending on the confirmation status.
func (d *Dispatcher) bookHotel(ctx context.Context, ev *lexmodel.Event) (*lexmodel.Response, error) {
	intent := ev.SessionState.Intent
	sessionAttrs := map[string]string{"sessionId": ev.SessionID}
	contextAttrs := map[string]string{}
	cat := d.catalog.Catalog()

	if res := ValidateHotel(cat, d.clock.Today(), intent); !res.Valid {
		intent.ClearSlot(res.Slot)
		_ = d.pub.Emit(ctx, events.SlotRejected, ev.SessionID, &events.SlotRejectedData{
			IntentName: intent.Name,
			Slot:       res.Slot,
			Message:    res.Message,
		})
		slog.DebugContext(ctx, "hotel slot rejected",
			slog.String("slot", res.Slot), slog.String("reason", res.Message))
		return lexmodel.ElicitSlot(sessionAttrs, contextAttrs, intent, res.Slot), nil
	}

	location := intent.SlotValue(lexmodel.SlotLocation)
	checkIn := intent.SlotValue(lexmodel.SlotCheckInDate)
	nightsVal := intent.SlotValue(lexmodel.SlotNights)
	roomType := intent.SlotValue(lexmodel.SlotRoomType)

	// Location passes validation while still absent; hold the turn open
	// until the platform has elicited all four fields.
	if location == "" || checkIn == "" || nightsVal == "" || roomType == "" {
		return lexmodel.Delegate(sessionAttrs, contextAttrs, intent, msgConfirmHotel), nil
	}

	nights, _ := strconv.Atoi(nightsVal)
	draft := HotelReservation(location, roomType, checkIn, nights)
	contextAttrs = draft.ContextAttributes()

	price := cat.HotelPrice(location, nights, roomType)
	sessionAttrs[attrReservationPrice] = strconv.Itoa(price)
	_ = d.pub.Emit(ctx, events.PriceQuoted, ev.SessionID, &events.PriceQuotedData{
		ReservationType: string(ReservationHotel),
		Location:        location,
		Price:           float64(price),
	})

	switch intent.ConfirmationState {
	case lexmodel.ConfirmationConfirmed:
		util.Log(ctx).Debug("placing hotel reservation " + draft.String())
		intent.ConfirmationState = lexmodel.ConfirmationConfirmed
		intent.State = lexmodel.StateFulfilled
		_ = d.pub.Emit(ctx, events.ReservationConfirmed, ev.SessionID, &events.ReservationConfirmedData{
			ReservationType: string(ReservationHotel),
			Attributes:      contextAttrs,
			Price:           float64(price),
		})
		return lexmodel.Close(sessionAttrs, contextAttrs, lexmodel.StateFulfilled, intent, msgHotelBooked), nil

	case lexmodel.ConfirmationDenied:
		// Denied slot values restart the hotel flow from the top.
		intent.ResetSlots()
		intent.ConfirmationState = lexmodel.ConfirmationNone
		intent.State = lexmodel.StateInProgress
		return lexmodel.ElicitSlot(sessionAttrs, map[string]string{}, intent, lexmodel.SlotLocation), nil

	default:
		return lexmodel.Delegate(sessionAttrs, contextAttrs, intent, msgConfirmHotel), nil
	}
}
