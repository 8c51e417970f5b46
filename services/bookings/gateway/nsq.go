package gateway

import (
	"context"

	"github.com/pidsadka/pidsadka/internal/pkg/constants"
	"github.com/pidsadka/pidsadka/internal/pkg/models"
	"github.com/pidsadka/pidsadka/internal/pkg/nsq"
)

// BookingGW publishes booking events to NSQ
type BookingGW struct {
	producer *nsq.Producer
}

// NewBookingGW creates a new booking gateway
func NewBookingGW(producer *nsq.Producer) *BookingGW {
	return &BookingGW{producer: producer}
}

// PublishBookingCreated publishes a booking created event
func (g *BookingGW) PublishBookingCreated(ctx context.Context, event models.BookingCreatedEvent) error {
	return g.producer.Publish(constants.TopicBookingCreated, event)
}

// PublishBookingCancelled publishes a booking cancellation event
func (g *BookingGW) PublishBookingCancelled(ctx context.Context, event models.BookingCancelledEvent) error {
	return g.producer.Publish(constants.TopicBookingCancelled, event)
}
