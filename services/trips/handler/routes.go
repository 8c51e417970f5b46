package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the trip registry routes
func (h *TripHandler) RegisterRoutes(protected *echo.Group, admin *echo.Group) {
	protected.POST("/trips", h.CreateTrip)
	protected.GET("/trips/search", h.SearchTrips)
	protected.GET("/trips/mine", h.ListMyTrips)
	protected.GET("/trips/:id", h.GetTrip)
	protected.POST("/trips/:id/cancel", h.CancelTrip)
	protected.POST("/trips/:id/finish", h.FinishTrip)

	admin.POST("/trips/:id/cancel", h.CancelTripAdmin)
}
