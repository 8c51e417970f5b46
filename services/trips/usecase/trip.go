package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pidsadka/pidsadka/internal/pkg/apperrors"
	"github.com/pidsadka/pidsadka/internal/pkg/logger"
	"github.com/pidsadka/pidsadka/internal/pkg/models"
	"github.com/pidsadka/pidsadka/internal/utils"
	"github.com/pidsadka/pidsadka/services/trips"
)

const (
	minSeats = 1
	maxSeats = 8

	// two trips by the same driver may not depart within this window
	overlapWindow = 2 * time.Hour

	defaultSearchLimit = 10
	maxSearchLimit     = 50
)

type tripUC struct {
	cfg      *models.Config
	tripRepo trips.TripRepo
	tripGW   trips.TripGW
	drivers  trips.DriverDirectory
	now      func() time.Time
}

// NewTripUC creates a new trip use case
func NewTripUC(
	cfg *models.Config,
	tripRepo trips.TripRepo,
	tripGW trips.TripGW,
	drivers trips.DriverDirectory,
) trips.TripUC {
	return &tripUC{
		cfg:      cfg,
		tripRepo: tripRepo,
		tripGW:   tripGW,
		drivers:  drivers,
		now:      time.Now,
	}
}

// CreateTrip validates and publishes a driver's trip offer
func (uc *tripUC) CreateTrip(ctx context.Context, req *models.CreateTripRequest) (*models.Trip, error) {
	req.Origin = strings.TrimSpace(req.Origin)
	req.Destination = strings.TrimSpace(req.Destination)
	if req.Origin == "" || req.Destination == "" {
		return nil, apperrors.Validationf("origin and destination are required")
	}
	if strings.EqualFold(req.Origin, req.Destination) {
		return nil, apperrors.Validationf("origin and destination must differ")
	}
	if req.SeatsTotal < minSeats || req.SeatsTotal > maxSeats {
		return nil, apperrors.Validationf("seats must be between %d and %d", minSeats, maxSeats)
	}
	if req.Price <= 0 {
		return nil, apperrors.Validationf("price must be positive")
	}

	now := uc.now()
	departure, err := utils.ResolveDepartureInstant(req.Date, req.Time, now)
	if err != nil {
		return nil, apperrors.Validationf("invalid departure: %v", err)
	}
	if departure.Before(now) {
		return nil, apperrors.Validationf("departure is in the past")
	}

	driver, err := uc.drivers.GetUser(ctx, req.DriverID)
	if err != nil {
		return nil, err
	}
	if driver.IsBanned {
		return nil, apperrors.ErrForbidden
	}
	if !driver.HasVehicle() {
		return nil, apperrors.Validationf("vehicle profile is incomplete")
	}
	if !driver.HasPhone() {
		return nil, apperrors.Validationf("phone number is required to offer trips")
	}

	schedules, err := uc.tripRepo.ActiveSchedules(ctx, req.DriverID)
	if err != nil {
		return nil, err
	}
	for _, s := range schedules {
		existing, err := utils.ResolveDepartureInstant(s.Date, s.Time, now)
		if err != nil {
			continue
		}
		gap := departure.Sub(existing)
		if gap < 0 {
			gap = -gap
		}
		if gap < overlapWindow {
			return nil, apperrors.ErrConflict
		}
	}

	trip := &models.Trip{
		DriverID:    req.DriverID,
		Origin:      req.Origin,
		Destination: req.Destination,
		Date:        req.Date,
		Time:        req.Time,
		SeatsTotal:  req.SeatsTotal,
		Price:       req.Price,
		Description: strings.TrimSpace(req.Description),
	}
	if err := uc.tripRepo.CreateTrip(ctx, trip); err != nil {
		return nil, err
	}

	logger.Info("Trip created", logger.Fields{
		"trip_id":   trip.ID,
		"driver_id": trip.DriverID,
		"departure": trip.Date + " " + trip.Time,
	})

	return trip, nil
}

// GetTripDetails retrieves a trip with its driver profile
func (uc *tripUC) GetTripDetails(ctx context.Context, tripID uuid.UUID) (*models.TripDetails, error) {
	return uc.tripRepo.GetTripDetails(ctx, tripID)
}

// ListMyTrips lists the caller's open trip offers
func (uc *tripUC) ListMyTrips(ctx context.Context, driverID int64) ([]models.Trip, error) {
	return uc.tripRepo.ListActiveByDriver(ctx, driverID)
}

// SearchTrips returns a page of joinable trips and records the search
func (uc *tripUC) SearchTrips(ctx context.Context, query *models.TripSearchQuery) (*models.TripSearchPage, error) {
	query.Origin = strings.TrimSpace(query.Origin)
	query.Destination = strings.TrimSpace(query.Destination)
	if query.Origin == "" && query.Destination == "" {
		return nil, apperrors.Validationf("origin or destination is required")
	}
	if query.Date != "" {
		if err := utils.ParseTripDate(query.Date); err != nil {
			return nil, apperrors.Validationf("%v", err)
		}
	}
	if query.Limit <= 0 {
		query.Limit = defaultSearchLimit
	}
	if query.Limit > maxSearchLimit {
		query.Limit = maxSearchLimit
	}
	if query.Offset < 0 {
		query.Offset = 0
	}

	page, err := uc.tripRepo.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	// Search history feeds the retention sweep's trend log, never the response
	if err := uc.tripRepo.SaveSearchHistory(ctx, query.ViewerID, query); err != nil {
		logger.Warn("Failed to save search history", logger.Fields{
			"user_id": query.ViewerID,
			"error":   err.Error(),
		})
	}

	return page, nil
}

// CancelTrip cancels the caller's own trip with its bookings
func (uc *tripUC) CancelTrip(ctx context.Context, tripID uuid.UUID, requesterID int64) error {
	return uc.cancelTrip(ctx, tripID, requesterID, false)
}

// CancelTripAdmin cancels any trip regardless of ownership
func (uc *tripUC) CancelTripAdmin(ctx context.Context, tripID uuid.UUID) error {
	return uc.cancelTrip(ctx, tripID, 0, true)
}

func (uc *tripUC) cancelTrip(ctx context.Context, tripID uuid.UUID, requesterID int64, admin bool) error {
	event, err := uc.tripRepo.CancelCascade(ctx, tripID, requesterID, admin)
	if err != nil {
		return err
	}
	if event == nil {
		// Already cancelled, nothing changed and nothing to announce
		return nil
	}

	// Published even with no passengers aboard, the dispatcher hears about
	// every state change
	if err := uc.tripGW.PublishTripCancelled(ctx, *event); err != nil {
		logger.Warn("Failed to publish trip cancelled event", logger.Fields{
			"trip_id": event.TripID,
			"error":   err.Error(),
		})
	}

	logger.Info("Trip cancelled", logger.Fields{
		"trip_id":    tripID,
		"driver_id":  event.DriverID,
		"passengers": len(event.PassengerIDs),
		"admin":      admin,
	})

	return nil
}

// FinishTrip retires the caller's own trip ahead of the lifecycle sweep
func (uc *tripUC) FinishTrip(ctx context.Context, tripID uuid.UUID, driverID int64) error {
	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return err
	}
	if trip.DriverID != driverID {
		return apperrors.ErrForbidden
	}

	event, err := uc.tripRepo.FinishTrip(ctx, tripID)
	if err != nil {
		return err
	}
	if event == nil {
		// Already settled, nothing changed and nothing to announce
		return nil
	}

	if err := uc.tripGW.PublishTripFinished(ctx, *event); err != nil {
		logger.Warn("Failed to publish trip finished event", logger.Fields{
			"trip_id": tripID,
			"error":   err.Error(),
		})
	}

	return nil
}
