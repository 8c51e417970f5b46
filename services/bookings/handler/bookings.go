package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/pidsadka/pidsadka/internal/pkg/middleware"
	"github.com/pidsadka/pidsadka/internal/utils"
)

// AddBooking handles seat reservation on a trip
func (h *BookingHandler) AddBooking(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	passengerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	booking, err := h.bookingUC.AddBooking(c.Request().Context(), tripID, passengerID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Booking created", booking)
}

// CancelBooking handles seat release by the booking's passenger
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	passengerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.bookingUC.CancelBooking(c.Request().Context(), bookingID, passengerID); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking cancelled", nil)
}

// KickPassenger handles passenger removal by the trip's driver
func (h *BookingHandler) KickPassenger(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.bookingUC.KickPassenger(c.Request().Context(), bookingID, driverID); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Passenger removed", nil)
}

// ListMyBookings handles the passenger's own booking list
func (h *BookingHandler) ListMyBookings(c echo.Context) error {
	passengerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	bookings, err := h.bookingUC.ListMyBookings(c.Request().Context(), passengerID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", bookings)
}

// ListTripPassengers handles the driver's passenger roster lookup
func (h *BookingHandler) ListTripPassengers(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	passengers, err := h.bookingUC.ListTripPassengers(c.Request().Context(), tripID, driverID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", passengers)
}
