package booking

import (
	"encoding/json"
	"strconv"
)

// ReservationType tags a reservation draft.
type ReservationType string

const (
	ReservationHotel ReservationType = "Hotel"
	ReservationCar   ReservationType = "Car"
)

// Context attribute keys used for hotel-to-car carryover.
const (
	ctxReservationType = "ReservationType"
	ctxLocation        = "Location"
	ctxRoomType        = "RoomType"
	ctxCheckInDate     = "CheckInDate"
	ctxNights          = "Nights"
)

// Reservation is the ephemeral draft assembled from validated slots. It is
// logged and carried in context attributes for the current response only;
// nothing persists it.
type Reservation struct {
	Type        ReservationType `json:"ReservationType"`
	Location    string          `json:"Location,omitempty"`
	RoomType    string          `json:"RoomType,omitempty"`
	CheckInDate string          `json:"CheckInDate,omitempty"`
	Nights      int             `json:"Nights,omitempty"`
	PickUpCity  string          `json:"PickUpCity,omitempty"`
	PickUpDate  string          `json:"PickUpDate,omitempty"`
	ReturnDate  string          `json:"ReturnDate,omitempty"`
	DriverAge   string          `json:"DriverAge,omitempty"`
	CarType     string          `json:"CarType,omitempty"`
}

// HotelReservation builds a hotel draft from validated slot values.
func HotelReservation(location, roomType, checkInDate string, nights int) Reservation {
	return Reservation{
		Type:        ReservationHotel,
		Location:    location,
		RoomType:    roomType,
		CheckInDate: checkInDate,
		Nights:      nights,
	}
}

// CarReservation builds a car draft from the turn's slot values.
func CarReservation(pickUpCity, pickUpDate, returnDate, driverAge, carType string) Reservation {
	return Reservation{
		Type:       ReservationCar,
		PickUpCity: pickUpCity,
		PickUpDate: pickUpDate,
		ReturnDate: returnDate,
		DriverAge:  driverAge,
		CarType:    carType,
	}
}

// ContextAttributes renders the draft as carryover context attributes so a
// follow-up intent can reuse the booking's details.
func (r Reservation) ContextAttributes() map[string]string {
	switch r.Type {
	case ReservationHotel:
		return map[string]string{
			ctxReservationType: string(r.Type),
			ctxLocation:        r.Location,
			ctxRoomType:        r.RoomType,
			ctxCheckInDate:     r.CheckInDate,
			ctxNights:          strconv.Itoa(r.Nights),
		}
	case ReservationCar:
		return map[string]string{
			ctxReservationType: string(r.Type),
			"PickUpCity":       r.PickUpCity,
			"PickUpDate":       r.PickUpDate,
			"ReturnDate":       r.ReturnDate,
			"DriverAge":        r.DriverAge,
			"CarType":          r.CarType,
		}
	}
	return map[string]string{}
}

// String renders the draft as compact JSON for log records.
func (r Reservation) String() string {
	b, err := json.Marshal(r)
	if err != nil {
		return string(r.Type)
	}
	return string(b)
}
