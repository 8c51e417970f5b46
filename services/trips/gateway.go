package trips

import (
	"context"

	"github.com/pidsadka/pidsadka/internal/pkg/models"
)

// TripGW defines the interface for trip gateway operations
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/pidsadka/pidsadka/services/trips TripGW
type TripGW interface {
	PublishTripCancelled(ctx context.Context, event models.TripCancelledEvent) error
	PublishTripFinished(ctx context.Context, event models.TripFinishedEvent) error
}
