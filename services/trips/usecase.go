package trips

import (
	"context"

	"github.com/google/uuid"

	"github.com/pidsadka/pidsadka/internal/pkg/models"
)

// TripUC defines the interface for trip business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/pidsadka/pidsadka/services/trips TripUC
type TripUC interface {
	CreateTrip(ctx context.Context, req *models.CreateTripRequest) (*models.Trip, error)
	GetTripDetails(ctx context.Context, tripID uuid.UUID) (*models.TripDetails, error)
	ListMyTrips(ctx context.Context, driverID int64) ([]models.Trip, error)
	SearchTrips(ctx context.Context, query *models.TripSearchQuery) (*models.TripSearchPage, error)
	CancelTrip(ctx context.Context, tripID uuid.UUID, requesterID int64) error
	CancelTripAdmin(ctx context.Context, tripID uuid.UUID) error
	FinishTrip(ctx context.Context, tripID uuid.UUID, driverID int64) error
}
