package constants

// NSQ topics consumed by the notification dispatcher
const (
	TopicBookingCreated   = "booking.created"
	TopicBookingCancelled = "booking.cancelled"
	TopicTripCancelled    = "trip.cancelled"
	TopicTripFinished     = "trip.finished"
	TopicReminderDue      = "booking.reminder"
)
