package gateway

import (
	"context"

	"github.com/pidsadka/pidsadka/internal/pkg/constants"
	"github.com/pidsadka/pidsadka/internal/pkg/models"
	"github.com/pidsadka/pidsadka/internal/pkg/nsq"
)

// UserGW publishes user events to NSQ
type UserGW struct {
	producer *nsq.Producer
}

// NewUserGW creates a new user gateway
func NewUserGW(producer *nsq.Producer) *UserGW {
	return &UserGW{producer: producer}
}

// PublishTripCancelled publishes a trip cancellation event
func (g *UserGW) PublishTripCancelled(ctx context.Context, event models.TripCancelledEvent) error {
	return g.producer.Publish(constants.TopicTripCancelled, event)
}

// PublishBookingCancelled publishes a booking cancellation event
func (g *UserGW) PublishBookingCancelled(ctx context.Context, event models.BookingCancelledEvent) error {
	return g.producer.Publish(constants.TopicBookingCancelled, event)
}
