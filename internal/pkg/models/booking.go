package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the state of a seat reservation
type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is a passenger's reservation of one seat on a trip. It is an
// independent ledger row referenced by both the trip (seat counter) and
// the passenger (personal list) but owned by neither.
type Booking struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	TripID      uuid.UUID     `json:"trip_id" db:"trip_id"`
	PassengerID int64         `json:"passenger_id" db:"passenger_id"`
	Status      BookingStatus `json:"status" db:"status"`
	Reminded    bool          `json:"reminded" db:"reminded"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
}

// TripContext is returned by booking cancellation paths so the caller can
// notify the other party.
type TripContext struct {
	TripID        uuid.UUID `json:"trip_id" db:"trip_id"`
	DriverID      int64     `json:"driver_id" db:"driver_id"`
	PassengerID   int64     `json:"passenger_id" db:"passenger_id"`
	PassengerName string    `json:"passenger_name" db:"passenger_name"`
	Origin        string    `json:"origin" db:"origin"`
	Destination   string    `json:"destination" db:"destination"`
	Date          string    `json:"date" db:"date"`
	Time          string    `json:"time" db:"time"`
}

// PassengerBooking is a passenger's active booking joined with trip and driver info
type PassengerBooking struct {
	BookingID   uuid.UUID `json:"booking_id" db:"booking_id"`
	TripID      uuid.UUID `json:"trip_id" db:"trip_id"`
	Origin      string    `json:"origin" db:"origin"`
	Destination string    `json:"destination" db:"destination"`
	Date        string    `json:"date" db:"date"`
	Time        string    `json:"time" db:"time"`
	Price       int       `json:"price" db:"price"`
	DriverID    int64     `json:"driver_id" db:"driver_id"`
	DriverName  string    `json:"driver_name" db:"driver_name"`
	DriverPhone string    `json:"driver_phone" db:"driver_phone"`
}

// TripPassenger is one active passenger on a trip, from the driver's view
type TripPassenger struct {
	UserID    int64     `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Username  string    `json:"username" db:"username"`
	Phone     string    `json:"phone" db:"phone"`
	BookingID uuid.UUID `json:"booking_id" db:"booking_id"`
}

// ReminderCandidate is an unreminded active booking with its trip departure,
// evaluated by the lifecycle worker against the reminder window.
type ReminderCandidate struct {
	BookingID   uuid.UUID `json:"booking_id" db:"booking_id"`
	TripID      uuid.UUID `json:"trip_id" db:"trip_id"`
	PassengerID int64     `json:"passenger_id" db:"passenger_id"`
	Origin      string    `json:"origin" db:"origin"`
	Destination string    `json:"destination" db:"destination"`
	Date        string    `json:"date" db:"date"`
	Time        string    `json:"time" db:"time"`
}
