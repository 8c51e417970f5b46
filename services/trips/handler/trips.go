package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/pidsadka/pidsadka/internal/pkg/middleware"
	"github.com/pidsadka/pidsadka/internal/pkg/models"
	"github.com/pidsadka/pidsadka/internal/utils"
)

// CreateTrip handles trip offer creation
func (h *TripHandler) CreateTrip(c echo.Context) error {
	var req models.CreateTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	req.DriverID = driverID

	trip, err := h.tripUC.CreateTrip(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Trip created", trip)
}

// GetTrip handles trip detail lookups
func (h *TripHandler) GetTrip(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	details, err := h.tripUC.GetTripDetails(c.Request().Context(), tripID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", details)
}

// ListMyTrips handles the driver's own trip list
func (h *TripHandler) ListMyTrips(c echo.Context) error {
	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	trips, err := h.tripUC.ListMyTrips(c.Request().Context(), driverID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", trips)
}

// SearchTrips handles passenger trip searches
func (h *TripHandler) SearchTrips(c echo.Context) error {
	viewerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	query := &models.TripSearchQuery{
		Origin:      c.QueryParam("origin"),
		Destination: c.QueryParam("destination"),
		Date:        c.QueryParam("date"),
		ViewerID:    viewerID,
		Limit:       limit,
		Offset:      offset,
	}

	page, err := h.tripUC.SearchTrips(c.Request().Context(), query)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", page)
}

// CancelTrip handles trip cancellation by the owning driver
func (h *TripHandler) CancelTrip(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.tripUC.CancelTrip(c.Request().Context(), tripID, driverID); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip cancelled", nil)
}

// CancelTripAdmin handles the privileged cancellation path
func (h *TripHandler) CancelTripAdmin(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	if err := h.tripUC.CancelTripAdmin(c.Request().Context(), tripID); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip cancelled", nil)
}

// FinishTrip handles early trip completion by the owning driver
func (h *TripHandler) FinishTrip(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.tripUC.FinishTrip(c.Request().Context(), tripID, driverID); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip finished", nil)
}
