package handler

import (
	"github.com/pidsadka/pidsadka/services/bookings"
)

// BookingHandler handles HTTP requests for the booking ledger
type BookingHandler struct {
	bookingUC bookings.BookingUC
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingUC bookings.BookingUC) *BookingHandler {
	return &BookingHandler{bookingUC: bookingUC}
}
