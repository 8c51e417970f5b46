package handler

import (
	"github.com/pidsadka/pidsadka/services/trips"
)

// TripHandler handles HTTP requests for the trip registry
type TripHandler struct {
	tripUC trips.TripUC
}

// NewTripHandler creates a new trip handler
func NewTripHandler(tripUC trips.TripUC) *TripHandler {
	return &TripHandler{tripUC: tripUC}
}
