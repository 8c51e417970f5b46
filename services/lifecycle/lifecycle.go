package lifecycle

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pidsadka/pidsadka/internal/pkg/models"
)

// TripStore is the narrow trip surface the sweeps need
// go:generate mockgen -destination=mocks/mock_stores.go -package=mocks github.com/pidsadka/pidsadka/services/lifecycle TripStore,BookingStore,Publisher
type TripStore interface {
	ListActive(ctx context.Context) ([]models.Trip, error)
	FinishTrip(ctx context.Context, tripID uuid.UUID) (*models.TripFinishedEvent, error)
	PurgeOldTrips(ctx context.Context, cutoff time.Time) (int64, error)
	PruneSearchHistory(ctx context.Context, cutoff time.Time) (int64, error)
}

// BookingStore is the narrow booking surface the reminder sweep needs
type BookingStore interface {
	ListUnreminded(ctx context.Context) ([]models.ReminderCandidate, error)
	MarkReminded(ctx context.Context, bookingID uuid.UUID) (bool, error)
}

// Publisher emits the events the sweeps produce
type Publisher interface {
	PublishTripFinished(ctx context.Context, event models.TripFinishedEvent) error
	PublishReminderDue(ctx context.Context, event models.ReminderDueEvent) error
}
