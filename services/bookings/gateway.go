package bookings

import (
	"context"

	"github.com/pidsadka/pidsadka/internal/pkg/models"
)

// BookingGW defines the interface for booking gateway operations
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/pidsadka/pidsadka/services/bookings BookingGW
type BookingGW interface {
	PublishBookingCreated(ctx context.Context, event models.BookingCreatedEvent) error
	PublishBookingCancelled(ctx context.Context, event models.BookingCancelledEvent) error
}
