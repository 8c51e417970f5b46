package bookings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pidsadka/pidsadka/internal/pkg/models"
)

// BookingRepo defines the interface for booking data access operations.
// The seat-affecting methods run their checks inside one transaction
// holding a row lock on the trip, so the seat counter can never oversell.
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/pidsadka/pidsadka/services/bookings BookingRepo,PassengerDirectory
type BookingRepo interface {
	AddBooking(ctx context.Context, tripID uuid.UUID, passengerID int64) (*models.Booking, int64, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID, passengerID int64) (*models.TripContext, error)
	KickPassenger(ctx context.Context, bookingID uuid.UUID, driverID int64) (*models.TripContext, error)
	CountActiveByPassenger(ctx context.Context, passengerID int64) (int, error)
	ListByPassenger(ctx context.Context, passengerID int64) ([]models.PassengerBooking, error)
	ListTripPassengers(ctx context.Context, tripID uuid.UUID, driverID int64) ([]models.TripPassenger, error)
	ListUnreminded(ctx context.Context) ([]models.ReminderCandidate, error)
	MarkReminded(ctx context.Context, bookingID uuid.UUID) (bool, error)
}

// PenaltyStore tracks recent cancellations per user in a rolling window
// go:generate mockgen -destination=mocks/mock_penalty.go -package=mocks github.com/pidsadka/pidsadka/services/bookings PenaltyStore
type PenaltyStore interface {
	RegisterCancellation(ctx context.Context, userID int64, window time.Duration) (int64, error)
	CancellationCount(ctx context.Context, userID int64) (int64, error)
}

// PassengerDirectory is the narrow read surface the booking service needs
// from the user directory.
type PassengerDirectory interface {
	GetUser(ctx context.Context, userID int64) (*models.User, error)
}
