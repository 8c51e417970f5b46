package lifecycle

import (
	"context"
	"time"

	"github.com/pidsadka/pidsadka/internal/pkg/logger"
	"github.com/pidsadka/pidsadka/internal/pkg/models"
	"github.com/pidsadka/pidsadka/internal/utils"
)

// Worker drives the background sweeps that age trips out of the active
// state, send departure reminders and purge stale rows. Every sweep is
// written to be safe to rerun, a crashed or doubled worker only repeats
// no-ops.
type Worker struct {
	cfg      *models.Config
	trips    TripStore
	bookings BookingStore
	pub      Publisher
	now      func() time.Time
}

// NewWorker creates a new lifecycle worker
func NewWorker(
	cfg *models.Config,
	trips TripStore,
	bookings BookingStore,
	pub Publisher,
) *Worker {
	return &Worker{
		cfg:      cfg,
		trips:    trips,
		bookings: bookings,
		pub:      pub,
		now:      time.Now,
	}
}

// Run blocks until the context is cancelled, firing the sweeps on their
// configured intervals.
func (w *Worker) Run(ctx context.Context) {
	finishTicker := time.NewTicker(w.cfg.Scheduler.FinishInterval)
	reminderTicker := time.NewTicker(w.cfg.Scheduler.ReminderInterval)
	retentionTicker := time.NewTicker(w.cfg.Scheduler.RetentionInterval)
	defer finishTicker.Stop()
	defer reminderTicker.Stop()
	defer retentionTicker.Stop()

	logger.Info("Lifecycle worker started", logger.Fields{
		"finish_interval":    w.cfg.Scheduler.FinishInterval.String(),
		"reminder_interval":  w.cfg.Scheduler.ReminderInterval.String(),
		"retention_interval": w.cfg.Scheduler.RetentionInterval.String(),
	})

	for {
		select {
		case <-ctx.Done():
			logger.Info("Lifecycle worker stopped", nil)
			return
		case <-finishTicker.C:
			w.FinishSweep(ctx)
		case <-reminderTicker.C:
			w.ReminderSweep(ctx)
		case <-retentionTicker.C:
			w.RetentionSweep(ctx)
		}
	}
}

// FinishSweep retires active trips whose departure has passed. Departures
// are day.month strings, so the comparison has to happen here rather than
// in SQL.
func (w *Worker) FinishSweep(ctx context.Context) {
	trips, err := w.trips.ListActive(ctx)
	if err != nil {
		logger.Error("Finish sweep failed to list active trips", logger.Fields{
			"error": err.Error(),
		})
		return
	}

	now := w.now()
	finished := 0
	for _, trip := range trips {
		departure, err := utils.ResolveDepartureInstant(trip.Date, trip.Time, now)
		if err != nil {
			logger.Warn("Skipping trip with unparseable departure", logger.Fields{
				"trip_id": trip.ID,
				"error":   err.Error(),
			})
			continue
		}
		if !departure.Before(now) {
			continue
		}

		event, err := w.trips.FinishTrip(ctx, trip.ID)
		if err != nil {
			logger.Warn("Failed to finish trip", logger.Fields{
				"trip_id": trip.ID,
				"error":   err.Error(),
			})
			continue
		}
		if event == nil {
			// Another sweep or the driver finished it first
			continue
		}
		finished++

		if err := w.pub.PublishTripFinished(ctx, *event); err != nil {
			logger.Warn("Failed to publish trip finished event", logger.Fields{
				"trip_id": trip.ID,
				"error":   err.Error(),
			})
		}
	}

	if finished > 0 {
		logger.Info("Finish sweep retired trips", logger.Fields{
			"finished": finished,
		})
	}
}

// ReminderSweep publishes departure reminders for bookings entering the
// reminder window. MarkReminded is the idempotency guard, only the sweep
// that flips the flag gets to publish.
func (w *Worker) ReminderSweep(ctx context.Context) {
	candidates, err := w.bookings.ListUnreminded(ctx)
	if err != nil {
		logger.Error("Reminder sweep failed to list bookings", logger.Fields{
			"error": err.Error(),
		})
		return
	}

	now := w.now()
	for _, c := range candidates {
		departure, err := utils.ResolveDepartureInstant(c.Date, c.Time, now)
		if err != nil {
			continue
		}

		lead := departure.Sub(now)
		if lead < w.cfg.Scheduler.ReminderMinLead || lead > w.cfg.Scheduler.ReminderMaxLead {
			continue
		}

		marked, err := w.bookings.MarkReminded(ctx, c.BookingID)
		if err != nil {
			logger.Warn("Failed to mark booking reminded", logger.Fields{
				"booking_id": c.BookingID,
				"error":      err.Error(),
			})
			continue
		}
		if !marked {
			continue
		}

		event := models.ReminderDueEvent{
			BookingID:   c.BookingID,
			TripID:      c.TripID,
			PassengerID: c.PassengerID,
			Origin:      c.Origin,
			Destination: c.Destination,
			Date:        c.Date,
			Time:        c.Time,
		}
		if err := w.pub.PublishReminderDue(ctx, event); err != nil {
			logger.Warn("Failed to publish reminder event", logger.Fields{
				"booking_id": c.BookingID,
				"error":      err.Error(),
			})
		}
	}
}

// RetentionSweep purges finished and cancelled trips past the retention
// horizon, and trims the search history trend log.
func (w *Worker) RetentionSweep(ctx context.Context) {
	now := w.now()

	tripCutoff := now.AddDate(0, 0, -w.cfg.Scheduler.TripRetentionDays)
	purged, err := w.trips.PurgeOldTrips(ctx, tripCutoff)
	if err != nil {
		logger.Error("Retention sweep failed to purge trips", logger.Fields{
			"error": err.Error(),
		})
	}

	searchCutoff := now.AddDate(0, 0, -w.cfg.Scheduler.SearchHistoryDays)
	pruned, err := w.trips.PruneSearchHistory(ctx, searchCutoff)
	if err != nil {
		logger.Error("Retention sweep failed to prune search history", logger.Fields{
			"error": err.Error(),
		})
	}

	if purged > 0 || pruned > 0 {
		logger.Info("Retention sweep completed", logger.Fields{
			"trips_purged":    purged,
			"searches_pruned": pruned,
		})
	}
}
