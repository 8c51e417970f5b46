package gateway

import (
	"context"

	"github.com/pidsadka/pidsadka/internal/pkg/constants"
	"github.com/pidsadka/pidsadka/internal/pkg/models"
	"github.com/pidsadka/pidsadka/internal/pkg/nsq"
)

// LifecycleGW publishes lifecycle sweep events to NSQ
type LifecycleGW struct {
	producer *nsq.Producer
}

// NewLifecycleGW creates a new lifecycle gateway
func NewLifecycleGW(producer *nsq.Producer) *LifecycleGW {
	return &LifecycleGW{producer: producer}
}

// PublishTripFinished publishes a trip finished event
func (g *LifecycleGW) PublishTripFinished(ctx context.Context, event models.TripFinishedEvent) error {
	return g.producer.Publish(constants.TopicTripFinished, event)
}

// PublishReminderDue publishes a departure reminder event
func (g *LifecycleGW) PublishReminderDue(ctx context.Context, event models.ReminderDueEvent) error {
	return g.producer.Publish(constants.TopicReminderDue, event)
}
