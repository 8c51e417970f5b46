package notifier

import (
	"fmt"

	"github.com/pidsadka/pidsadka/internal/pkg/logger"
	"github.com/pidsadka/pidsadka/internal/pkg/models"
	"github.com/pidsadka/pidsadka/internal/pkg/nsq"
)

// Dispatcher turns ledger events into per-user notification deliveries.
// Delivery is a log line handed to whatever transport fronts the service,
// the dispatcher itself only decides who hears about what.
type Dispatcher struct{}

// NewDispatcher creates a new notification dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

func (d *Dispatcher) notify(userID int64, kind, text string) {
	logger.Info("Notification dispatched", logger.Fields{
		"user_id": userID,
		"kind":    kind,
		"text":    text,
	})
}

// HandleBookingCreated notifies the driver about a new passenger
func (d *Dispatcher) HandleBookingCreated(message []byte) error {
	var event models.BookingCreatedEvent
	if err := nsq.UnmarshalMessage(message, &event); err != nil {
		return err
	}

	d.notify(event.DriverID, "booking_created",
		fmt.Sprintf("New passenger on your trip %s", event.TripID))
	return nil
}

// HandleBookingCancelled notifies the party that did not initiate the release
func (d *Dispatcher) HandleBookingCancelled(message []byte) error {
	var event models.BookingCancelledEvent
	if err := nsq.UnmarshalMessage(message, &event); err != nil {
		return err
	}

	switch event.Reason {
	case models.CancelReasonPassenger:
		d.notify(event.DriverID, "booking_cancelled",
			fmt.Sprintf("A passenger left your trip %s", event.TripID))
	case models.CancelReasonKicked:
		d.notify(event.PassengerID, "booking_cancelled",
			fmt.Sprintf("The driver removed you from trip %s", event.TripID))
	default:
		d.notify(event.PassengerID, "booking_cancelled",
			fmt.Sprintf("Your booking on trip %s was cancelled", event.TripID))
	}
	return nil
}

// HandleTripCancelled fans the cancellation out to every booked passenger
func (d *Dispatcher) HandleTripCancelled(message []byte) error {
	var event models.TripCancelledEvent
	if err := nsq.UnmarshalMessage(message, &event); err != nil {
		return err
	}

	for _, passengerID := range event.PassengerIDs {
		d.notify(passengerID, "trip_cancelled",
			fmt.Sprintf("Trip %s was cancelled by the driver", event.TripID))
	}
	return nil
}

// HandleTripFinished asks everyone aboard to rate the other side
func (d *Dispatcher) HandleTripFinished(message []byte) error {
	var event models.TripFinishedEvent
	if err := nsq.UnmarshalMessage(message, &event); err != nil {
		return err
	}

	for _, passengerID := range event.PassengerIDs {
		d.notify(passengerID, "rate_driver",
			fmt.Sprintf("Trip %s is over, rate your driver", event.TripID))
		d.notify(event.DriverID, "rate_passenger",
			fmt.Sprintf("Trip %s is over, rate your passenger", event.TripID))
	}
	return nil
}

// HandleReminderDue reminds the passenger about an upcoming departure
func (d *Dispatcher) HandleReminderDue(message []byte) error {
	var event models.ReminderDueEvent
	if err := nsq.UnmarshalMessage(message, &event); err != nil {
		return err
	}

	d.notify(event.PassengerID, "departure_reminder",
		fmt.Sprintf("Your trip %s to %s departs at %s", event.Origin, event.Destination, event.Time))
	return nil
}
