package booking

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tripdesk/tripdesk/pkg/lexmodel"
)

// Result is the outcome of validating one slot set. At most one violation
// is reported per call: the first offending slot in the intent's fixed
// priority order.
type Result struct {
	Valid   bool
	Slot    string
	Message string
}

func valid() Result {
	return Result{Valid: true}
}

func invalid(slot, message string) Result {
	return Result{Slot: slot, Message: message}
}

// elicitMessage marks a slot that is simply not provided yet, as opposed to
// provided with a bad value.
func elicitMessage(slot string) string {
	return "Elicit " + slot
}

const (
	msgUnsupportedCity = "We currently do not support %s as a valid destination.  Can you try a different city?"
	msgPastDate        = "Reservations must be scheduled at least one day in advance.  Can you try a different date?"
	msgBadCheckIn      = "I did not understand your check in date.  When would you like to check in?"
	msgNightsRange     = "You can make a reservations from one to thirty nights.  How many nights would you like to stay for?"
	msgBadRoomType     = "I did not recognize that room type.  Would you like to stay in a queen, king, or deluxe room?"
	msgBadPickUpDate   = "I did not understand your departure date.  When would you like to pick up your car rental?"
	msgBadReturnDate   = "I did not understand your return date.  When would you like to return your car rental?"
	msgReturnOrder     = "Your return date must be after your pick up date.  Can you try a different return date?"
	msgRentalSpan      = "You can reserve a car for up to thirty days.  Can you try a different return date?"
	msgDriverAge       = "Your driver must be at least eighteen to rent a car.  Can you provide the age of a different driver?"
	msgBadCarType      = "I did not recognize that model.  What type of car would you like to rent?  " +
		"Popular cars are economy, midsize, or luxury"
)

// ValidateHotel checks the BookHotel slot set in strict order, stopping at
// the first violation: Location membership when provided, then CheckInDate
// (present, parseable, strictly after today), then Nights (present, 1-30),
// then RoomType (present, supported). A missing Location is not flagged
// here; the handler holds the turn open until all four fields exist.
func ValidateHotel(cat *Catalog, today time.Time, intent *lexmodel.Intent) Result {
	location := intent.SlotValue(lexmodel.SlotLocation)
	checkIn := intent.SlotValue(lexmodel.SlotCheckInDate)
	nights := intent.SlotValue(lexmodel.SlotNights)
	roomType := intent.SlotValue(lexmodel.SlotRoomType)

	if location != "" && !cat.ValidCity(location) {
		return invalid(lexmodel.SlotLocation, fmt.Sprintf(msgUnsupportedCity, location))
	}

	if checkIn == "" {
		return invalid(lexmodel.SlotCheckInDate, elicitMessage(lexmodel.SlotCheckInDate))
	}
	checkInDate, err := ParseDate(checkIn)
	if err != nil {
		return invalid(lexmodel.SlotCheckInDate, msgBadCheckIn)
	}
	if !checkInDate.After(today) {
		return invalid(lexmodel.SlotCheckInDate, msgPastDate)
	}

	if nights == "" {
		return invalid(lexmodel.SlotNights, elicitMessage(lexmodel.SlotNights))
	}
	n, err := strconv.Atoi(nights)
	if err != nil {
		return invalid(lexmodel.SlotNights, elicitMessage(lexmodel.SlotNights))
	}
	if n < 1 || n > 30 {
		return invalid(lexmodel.SlotNights, msgNightsRange)
	}

	if roomType == "" {
		return invalid(lexmodel.SlotRoomType, elicitMessage(lexmodel.SlotRoomType))
	}
	if !cat.ValidRoomType(roomType) {
		return invalid(lexmodel.SlotRoomType, msgBadRoomType)
	}

	return valid()
}

// ValidateCar checks the BookCar slot set in strict order, stopping at the
// first violation: PickUpCity membership when provided, PickUpDate
// (present, parseable, strictly after today), ReturnDate (present,
// parseable, after PickUpDate, span at most thirty days), DriverAge
// (present, numeric, at least eighteen), CarType (present, in the validity
// list including Spanish synonyms).
func ValidateCar(cat *Catalog, today time.Time, intent *lexmodel.Intent) Result {
	pickUpCity := intent.SlotValue(lexmodel.SlotPickUpCity)
	pickUpDate := intent.SlotValue(lexmodel.SlotPickUpDate)
	returnDate := intent.SlotValue(lexmodel.SlotReturnDate)
	driverAge := intent.SlotValue(lexmodel.SlotDriverAge)
	carType := intent.SlotValue(lexmodel.SlotCarType)

	if pickUpCity != "" && !cat.ValidCity(pickUpCity) {
		return invalid(lexmodel.SlotPickUpCity, fmt.Sprintf(msgUnsupportedCity, pickUpCity))
	}

	if pickUpDate == "" {
		return invalid(lexmodel.SlotPickUpDate, elicitMessage(lexmodel.SlotPickUpDate))
	}
	pickUp, err := ParseDate(pickUpDate)
	if err != nil {
		return invalid(lexmodel.SlotPickUpDate, msgBadPickUpDate)
	}
	if !pickUp.After(today) {
		return invalid(lexmodel.SlotPickUpDate, msgPastDate)
	}

	if returnDate == "" {
		return invalid(lexmodel.SlotReturnDate, elicitMessage(lexmodel.SlotReturnDate))
	}
	ret, err := ParseDate(returnDate)
	if err != nil {
		return invalid(lexmodel.SlotReturnDate, msgBadReturnDate)
	}

	if !ret.After(pickUp) {
		return invalid(lexmodel.SlotReturnDate, msgReturnOrder)
	}
	if int(ret.Sub(pickUp).Hours()/24) > 30 {
		return invalid(lexmodel.SlotReturnDate, msgRentalSpan)
	}

	if driverAge == "" {
		return invalid(lexmodel.SlotDriverAge, elicitMessage(lexmodel.SlotDriverAge))
	}
	age, err := strconv.Atoi(driverAge)
	if err != nil {
		return invalid(lexmodel.SlotDriverAge, elicitMessage(lexmodel.SlotDriverAge))
	}
	if age < 18 {
		return invalid(lexmodel.SlotDriverAge, msgDriverAge)
	}

	if carType == "" {
		return invalid(lexmodel.SlotCarType, elicitMessage(lexmodel.SlotCarType))
	}
	if !cat.ValidCarType(carType) {
		return invalid(lexmodel.SlotCarType, msgBadCarType)
	}

	return valid()
}
