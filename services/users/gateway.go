package users

import (
	"context"

	"github.com/pidsadka/pidsadka/internal/pkg/models"
)

// UserGW defines the interface for user gateway operations
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/pidsadka/pidsadka/services/users UserGW
type UserGW interface {
	PublishTripCancelled(ctx context.Context, event models.TripCancelledEvent) error
	PublishBookingCancelled(ctx context.Context, event models.BookingCancelledEvent) error
}
