package models

import "github.com/google/uuid"

// Cancellation reasons carried on BookingCancelledEvent
const (
	CancelReasonPassenger = "passenger_cancelled"
	CancelReasonKicked    = "removed_by_driver"
	CancelReasonTrip      = "trip_cancelled"
	CancelReasonBan       = "user_banned"
)

// BookingCreatedEvent is published after a seat was reserved
type BookingCreatedEvent struct {
	TripID      uuid.UUID `json:"trip_id"`
	BookingID   uuid.UUID `json:"booking_id"`
	PassengerID int64     `json:"passenger_id"`
	DriverID    int64     `json:"driver_id"`
}

// BookingCancelledEvent is published after a seat was released
type BookingCancelledEvent struct {
	TripID      uuid.UUID `json:"trip_id"`
	BookingID   uuid.UUID `json:"booking_id"`
	PassengerID int64     `json:"passenger_id"`
	DriverID    int64     `json:"driver_id"`
	Reason      string    `json:"reason"`
}

// TripCancelledEvent is published after a trip and its bookings were cancelled
type TripCancelledEvent struct {
	TripID       uuid.UUID `json:"trip_id"`
	DriverID     int64     `json:"driver_id"`
	PassengerIDs []int64   `json:"passenger_ids"`
}

// TripFinishedEvent is published when a trip ages out of the active state.
// The dispatcher fans it out as rating requests to the driver and passengers.
type TripFinishedEvent struct {
	TripID       uuid.UUID `json:"trip_id"`
	DriverID     int64     `json:"driver_id"`
	PassengerIDs []int64   `json:"passenger_ids"`
}

// BanCascade collects everything a ban knocked over, so the caller can
// publish one event per affected party.
type BanCascade struct {
	CancelledTrips    []TripCancelledEvent    `json:"cancelled_trips"`
	CancelledBookings []BookingCancelledEvent `json:"cancelled_bookings"`
}

// ReminderDueEvent is published for bookings approaching departure
type ReminderDueEvent struct {
	BookingID   uuid.UUID `json:"booking_id"`
	TripID      uuid.UUID `json:"trip_id"`
	PassengerID int64     `json:"passenger_id"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
}
