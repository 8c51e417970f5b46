package trips

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pidsadka/pidsadka/internal/pkg/models"
)

// TripRepo defines the interface for trip data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/pidsadka/pidsadka/services/trips TripRepo,DriverDirectory
type TripRepo interface {
	CreateTrip(ctx context.Context, trip *models.Trip) error
	GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)
	GetTripDetails(ctx context.Context, tripID uuid.UUID) (*models.TripDetails, error)
	ListActiveByDriver(ctx context.Context, driverID int64) ([]models.Trip, error)
	ActiveSchedules(ctx context.Context, driverID int64) ([]models.TripSchedule, error)
	ListActive(ctx context.Context) ([]models.Trip, error)
	Search(ctx context.Context, query *models.TripSearchQuery) (*models.TripSearchPage, error)
	SaveSearchHistory(ctx context.Context, viewerID int64, query *models.TripSearchQuery) error
	CancelCascade(ctx context.Context, tripID uuid.UUID, requesterID int64, admin bool) (*models.TripCancelledEvent, error)
	FinishTrip(ctx context.Context, tripID uuid.UUID) (*models.TripFinishedEvent, error)
	PurgeOldTrips(ctx context.Context, cutoff time.Time) (int64, error)
	PruneSearchHistory(ctx context.Context, cutoff time.Time) (int64, error)
}

// DriverDirectory is the narrow read surface the trip service needs from
// the user directory.
type DriverDirectory interface {
	GetUser(ctx context.Context, userID int64) (*models.User, error)
}
