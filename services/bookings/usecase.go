package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/pidsadka/pidsadka/internal/pkg/models"
)

// BookingUC defines the interface for booking business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/pidsadka/pidsadka/services/bookings BookingUC
type BookingUC interface {
	AddBooking(ctx context.Context, tripID uuid.UUID, passengerID int64) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID, passengerID int64) error
	KickPassenger(ctx context.Context, bookingID uuid.UUID, driverID int64) error
	ListMyBookings(ctx context.Context, passengerID int64) ([]models.PassengerBooking, error)
	ListTripPassengers(ctx context.Context, tripID uuid.UUID, driverID int64) ([]models.TripPassenger, error)
}
