package gateway

import (
	"context"

	"github.com/pidsadka/pidsadka/internal/pkg/constants"
	"github.com/pidsadka/pidsadka/internal/pkg/models"
	"github.com/pidsadka/pidsadka/internal/pkg/nsq"
)

// TripGW publishes trip events to NSQ
type TripGW struct {
	producer *nsq.Producer
}

// NewTripGW creates a new trip gateway
func NewTripGW(producer *nsq.Producer) *TripGW {
	return &TripGW{producer: producer}
}

// PublishTripCancelled publishes a trip cancellation event
func (g *TripGW) PublishTripCancelled(ctx context.Context, event models.TripCancelledEvent) error {
	return g.producer.Publish(constants.TopicTripCancelled, event)
}

// PublishTripFinished publishes a trip finished event
func (g *TripGW) PublishTripFinished(ctx context.Context, event models.TripFinishedEvent) error {
	return g.producer.Publish(constants.TopicTripFinished, event)
}
