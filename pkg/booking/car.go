package booking

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/pitabwire/util"

	"github.com/tripdesk/tripdesk/pkg/events"
	"github.com/tripdesk/tripdesk/pkg/lexmodel"
)

const (
	msgConfirmCar = "Confirm car reservation"
	msgCarBooked  = "Thanks, I have placed your reservation."
)

// bookCar runs the BookCar state machine for one turn. The validation-only
// code-hook pass re-elicits on the first violated slot; once all five
// required fields are present the price is stashed in session attributes
// and the confirmation status decides between delegate and close.
func (d *Dispatcher) bookCar(ctx context.Context, ev *lexmodel.Event) (*lexmodel.Response, error) {
	intent := ev.SessionState.Intent
	sessionAttrs := ev.SessionState.SessionAttributes
	if sessionAttrs == nil {
		sessionAttrs = map[string]string{}
	}
	contextAttrs := map[string]string{}
	cat := d.catalog.Catalog()

	if ev.InvocationSource == lexmodel.InvocationDialogCodeHook {
		if res := ValidateCar(cat, d.clock.Today(), intent); !res.Valid {
			if res.Slot == lexmodel.SlotDriverAge && intent.ConfirmationState == lexmodel.ConfirmationDenied {
				// A denied auto-filled suggestion means the user wants a
				// different rental, not a different driver age. Start the
				// car flow over from the city.
				res.Slot = lexmodel.SlotPickUpCity
				intent.ResetSlots()
			}
			intent.ClearSlot(res.Slot)
			_ = d.pub.Emit(ctx, events.SlotRejected, ev.SessionID, &events.SlotRejectedData{
				IntentName: intent.Name,
				Slot:       res.Slot,
				Message:    res.Message,
			})
			slog.DebugContext(ctx, "car slot rejected",
				slog.String("slot", res.Slot), slog.String("reason", res.Message))
			return lexmodel.ElicitSlot(sessionAttrs, contextAttrs, intent, res.Slot), nil
		}
	}

	pickUpCity := intent.SlotValue(lexmodel.SlotPickUpCity)
	pickUpDate := intent.SlotValue(lexmodel.SlotPickUpDate)
	returnDate := intent.SlotValue(lexmodel.SlotReturnDate)
	driverAge := intent.SlotValue(lexmodel.SlotDriverAge)
	carType := intent.SlotValue(lexmodel.SlotCarType)

	// Await further input; the platform resumes its own elicitation.
	if pickUpCity == "" || pickUpDate == "" || returnDate == "" || driverAge == "" || carType == "" {
		return lexmodel.Delegate(sessionAttrs, contextAttrs, intent, msgConfirmCar), nil
	}

	days, err := DayDiff(pickUpDate, returnDate)
	if err != nil {
		intent.ClearSlot(lexmodel.SlotReturnDate)
		return lexmodel.ElicitSlot(sessionAttrs, contextAttrs, intent, lexmodel.SlotReturnDate), nil
	}
	age, err := strconv.Atoi(driverAge)
	if err != nil {
		intent.ClearSlot(lexmodel.SlotDriverAge)
		return lexmodel.ElicitSlot(sessionAttrs, contextAttrs, intent, lexmodel.SlotDriverAge), nil
	}

	draft := CarReservation(pickUpCity, pickUpDate, returnDate, driverAge, carType)

	// The quote is recomputed every turn the slot set is complete so it
	// stays available and consistent regardless of confirmation status.
	price := cat.CarPrice(pickUpCity, days, age, carType)
	sessionAttrs[attrReservationPrice] = strconv.FormatFloat(price, 'f', -1, 64)
	_ = d.pub.Emit(ctx, events.PriceQuoted, ev.SessionID, &events.PriceQuotedData{
		ReservationType: string(ReservationCar),
		Location:        pickUpCity,
		Price:           price,
	})

	switch intent.ConfirmationState {
	case lexmodel.ConfirmationConfirmed:
		util.Log(ctx).Debug("placing car reservation " + draft.String())
		intent.ConfirmationState = lexmodel.ConfirmationConfirmed
		intent.State = lexmodel.StateFulfilled
		_ = d.pub.Emit(ctx, events.ReservationConfirmed, ev.SessionID, &events.ReservationConfirmedData{
			ReservationType: string(ReservationCar),
			Attributes:      draft.ContextAttributes(),
			Price:           price,
		})
		return lexmodel.Close(sessionAttrs, contextAttrs, lexmodel.StateFulfilled, intent, msgCarBooked), nil

	default:
		// None and Denied both re-enter the platform-managed confirmation
		// flow.
		return lexmodel.Delegate(sessionAttrs, contextAttrs, intent, msgConfirmCar), nil
	}
}
