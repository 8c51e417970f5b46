package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/pidsadka/pidsadka/internal/pkg/apperrors"
	"github.com/pidsadka/pidsadka/internal/pkg/logger"
	"github.com/pidsadka/pidsadka/internal/pkg/models"
	"github.com/pidsadka/pidsadka/services/bookings"
)

type bookingUC struct {
	cfg         *models.Config
	bookingRepo bookings.BookingRepo
	penalties   bookings.PenaltyStore
	passengers  bookings.PassengerDirectory
	bookingGW   bookings.BookingGW
}

// NewBookingUC creates a new booking use case
func NewBookingUC(
	cfg *models.Config,
	bookingRepo bookings.BookingRepo,
	penalties bookings.PenaltyStore,
	passengers bookings.PassengerDirectory,
	bookingGW bookings.BookingGW,
) bookings.BookingUC {
	return &bookingUC{
		cfg:         cfg,
		bookingRepo: bookingRepo,
		penalties:   penalties,
		passengers:  passengers,
		bookingGW:   bookingGW,
	}
}

// AddBooking reserves a seat for the passenger after the eligibility checks
func (uc *bookingUC) AddBooking(ctx context.Context, tripID uuid.UUID, passengerID int64) (*models.Booking, error) {
	passenger, err := uc.passengers.GetUser(ctx, passengerID)
	if err != nil {
		return nil, err
	}
	if passenger.IsBanned {
		return nil, apperrors.ErrForbidden
	}

	cancellations, err := uc.penalties.CancellationCount(ctx, passengerID)
	if err != nil {
		return nil, err
	}
	if cancellations >= int64(uc.cfg.Booking.PenaltyThreshold) {
		return nil, apperrors.ErrRateLimited
	}

	active, err := uc.bookingRepo.CountActiveByPassenger(ctx, passengerID)
	if err != nil {
		return nil, err
	}
	if active >= uc.cfg.Booking.MaxActiveBookings {
		return nil, apperrors.ErrRateLimited
	}

	booking, driverID, err := uc.bookingRepo.AddBooking(ctx, tripID, passengerID)
	if err != nil {
		return nil, err
	}

	event := models.BookingCreatedEvent{
		TripID:      booking.TripID,
		BookingID:   booking.ID,
		PassengerID: booking.PassengerID,
		DriverID:    driverID,
	}
	if err := uc.bookingGW.PublishBookingCreated(ctx, event); err != nil {
		logger.Warn("Failed to publish booking created event", logger.Fields{
			"booking_id": booking.ID,
			"error":      err.Error(),
		})
	}

	logger.Info("Booking created", logger.Fields{
		"booking_id":   booking.ID,
		"trip_id":      booking.TripID,
		"passenger_id": booking.PassengerID,
	})

	return booking, nil
}

// CancelBooking releases the passenger's own seat and counts it against
// the cancellation penalty window.
func (uc *bookingUC) CancelBooking(ctx context.Context, bookingID uuid.UUID, passengerID int64) error {
	tctx, err := uc.bookingRepo.CancelBooking(ctx, bookingID, passengerID)
	if err != nil {
		return err
	}

	// The penalty counts even when the publish fails. Losing a counter
	// bump on Redis error is acceptable, blocking the cancellation is not.
	if _, err := uc.penalties.RegisterCancellation(ctx, passengerID, uc.cfg.Booking.PenaltyWindow); err != nil {
		logger.Warn("Failed to register cancellation penalty", logger.Fields{
			"passenger_id": passengerID,
			"error":        err.Error(),
		})
	}

	uc.publishCancelled(ctx, bookingID, tctx, models.CancelReasonPassenger)

	logger.Info("Booking cancelled", logger.Fields{
		"booking_id":   bookingID,
		"trip_id":      tctx.TripID,
		"passenger_id": passengerID,
	})

	return nil
}

// KickPassenger removes a passenger from the driver's own trip. No penalty
// is charged to the passenger, it was not their cancellation.
func (uc *bookingUC) KickPassenger(ctx context.Context, bookingID uuid.UUID, driverID int64) error {
	tctx, err := uc.bookingRepo.KickPassenger(ctx, bookingID, driverID)
	if err != nil {
		return err
	}

	uc.publishCancelled(ctx, bookingID, tctx, models.CancelReasonKicked)

	logger.Info("Passenger removed from trip", logger.Fields{
		"booking_id":   bookingID,
		"trip_id":      tctx.TripID,
		"passenger_id": tctx.PassengerID,
		"driver_id":    driverID,
	})

	return nil
}

func (uc *bookingUC) publishCancelled(ctx context.Context, bookingID uuid.UUID, tctx *models.TripContext, reason string) {
	event := models.BookingCancelledEvent{
		TripID:      tctx.TripID,
		BookingID:   bookingID,
		PassengerID: tctx.PassengerID,
		DriverID:    tctx.DriverID,
		Reason:      reason,
	}
	if err := uc.bookingGW.PublishBookingCancelled(ctx, event); err != nil {
		logger.Warn("Failed to publish booking cancelled event", logger.Fields{
			"booking_id": bookingID,
			"reason":     reason,
			"error":      err.Error(),
		})
	}
}

// ListMyBookings lists the passenger's active bookings
func (uc *bookingUC) ListMyBookings(ctx context.Context, passengerID int64) ([]models.PassengerBooking, error) {
	return uc.bookingRepo.ListByPassenger(ctx, passengerID)
}

// ListTripPassengers lists the active passengers on the driver's own trip
func (uc *bookingUC) ListTripPassengers(ctx context.Context, tripID uuid.UUID, driverID int64) ([]models.TripPassenger, error) {
	return uc.bookingRepo.ListTripPassengers(ctx, tripID, driverID)
}
