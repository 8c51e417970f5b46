package models

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus represents the lifecycle state of a trip offer
type TripStatus string

const (
	TripStatusActive    TripStatus = "active"
	TripStatusFinished  TripStatus = "finished"
	TripStatusCancelled TripStatus = "cancelled"
)

// Trip is a driver's published offer: route, departure, capacity and price.
// Departure is stored the way drivers enter it, a day-month date ("02.01")
// plus a wall clock time ("18:30"); the year is inferred at evaluation time.
type Trip struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	DriverID    int64      `json:"driver_id" db:"driver_id"`
	Origin      string     `json:"origin" db:"origin"`
	Destination string     `json:"destination" db:"destination"`
	Date        string     `json:"date" db:"date"`
	Time        string     `json:"time" db:"time"`
	SeatsTotal  int        `json:"seats_total" db:"seats_total"`
	SeatsTaken  int        `json:"seats_taken" db:"seats_taken"`
	Price       int        `json:"price" db:"price"`
	Description string     `json:"description" db:"description"`
	Status      TripStatus `json:"status" db:"status"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

// SeatsFree returns the number of seats still available.
func (t *Trip) SeatsFree() int {
	return t.SeatsTotal - t.SeatsTaken
}

// TripDetails is the joined read of a trip with its driver's public profile
type TripDetails struct {
	Trip
	DriverName     string  `json:"driver_name" db:"driver_name"`
	DriverUsername string  `json:"driver_username" db:"driver_username"`
	DriverPhone    string  `json:"driver_phone" db:"driver_phone"`
	DriverRating   float64 `json:"driver_rating" db:"driver_rating"`
	VehicleModel   string  `json:"vehicle_model" db:"vehicle_model"`
	VehicleColor   string  `json:"vehicle_color" db:"vehicle_color"`
}

// TripSchedule is the minimal departure view used for overlap checks
type TripSchedule struct {
	Date string `json:"date" db:"date"`
	Time string `json:"time" db:"time"`
}

// CreateTripRequest is the driver's trip offer input
type CreateTripRequest struct {
	DriverID    int64  `json:"-"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	SeatsTotal  int    `json:"seats_total"`
	Price       int    `json:"price"`
	Description string `json:"description"`
}

// TripSearchQuery selects active joinable trips for a passenger
type TripSearchQuery struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	ViewerID    int64  `json:"-"`
	Limit       int    `json:"limit"`
	Offset      int    `json:"offset"`
}

// TripSearchResult is one page entry of a trip search
type TripSearchResult struct {
	Trip
	DriverName   string  `json:"driver_name" db:"driver_name"`
	DriverRating float64 `json:"driver_rating" db:"driver_rating"`
	VehicleModel string  `json:"vehicle_model" db:"vehicle_model"`
	VehicleColor string  `json:"vehicle_color" db:"vehicle_color"`
}

// TripSearchPage bundles a search page with the total match count
type TripSearchPage struct {
	Trips []TripSearchResult `json:"trips"`
	Total int                `json:"total"`
}
