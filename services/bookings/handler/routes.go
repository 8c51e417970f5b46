package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the booking ledger routes
func (h *BookingHandler) RegisterRoutes(protected *echo.Group) {
	protected.POST("/trips/:id/bookings", h.AddBooking)
	protected.GET("/trips/:id/passengers", h.ListTripPassengers)
	protected.GET("/bookings/mine", h.ListMyBookings)
	protected.POST("/bookings/:id/cancel", h.CancelBooking)
	protected.POST("/bookings/:id/kick", h.KickPassenger)
}
