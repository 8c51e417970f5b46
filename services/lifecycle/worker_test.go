package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/pidsadka/pidsadka/internal/pkg/models"
	"github.com/pidsadka/pidsadka/services/lifecycle/mocks"
)

type workerFixture struct {
	trips    *mocks.MockTripStore
	bookings *mocks.MockBookingStore
	pub      *mocks.MockPublisher
	worker   *Worker
}

func newWorkerFixture(t *testing.T) *workerFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &workerFixture{
		trips:    mocks.NewMockTripStore(ctrl),
		bookings: mocks.NewMockBookingStore(ctrl),
		pub:      mocks.NewMockPublisher(ctrl),
	}
	cfg := &models.Config{
		Scheduler: models.SchedulerConfig{
			ReminderMinLead:   30 * time.Minute,
			ReminderMaxLead:   90 * time.Minute,
			TripRetentionDays: 60,
			SearchHistoryDays: 2,
		},
	}
	f.worker = NewWorker(cfg, f.trips, f.bookings, f.pub)
	f.worker.now = func() time.Time {
		return time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	}
	return f
}

func TestFinishSweep_RetiresPastTrips(t *testing.T) {
	f := newWorkerFixture(t)

	past := models.Trip{ID: uuid.New(), Date: "15.06", Time: "09:00"}
	future := models.Trip{ID: uuid.New(), Date: "15.06", Time: "18:00"}
	f.trips.EXPECT().ListActive(gomock.Any()).Return([]models.Trip{past, future}, nil)

	event := &models.TripFinishedEvent{TripID: past.ID, DriverID: 10, PassengerIDs: []int64{20}}
	f.trips.EXPECT().FinishTrip(gomock.Any(), past.ID).Return(event, nil)
	f.pub.EXPECT().PublishTripFinished(gomock.Any(), *event).Return(nil)

	f.worker.FinishSweep(context.Background())
}

func TestFinishSweep_SkipsTripsFinishedElsewhere(t *testing.T) {
	f := newWorkerFixture(t)

	past := models.Trip{ID: uuid.New(), Date: "14.06", Time: "09:00"}
	f.trips.EXPECT().ListActive(gomock.Any()).Return([]models.Trip{past}, nil)
	// Driver finished it between the list and the update, no publish
	f.trips.EXPECT().FinishTrip(gomock.Any(), past.ID).Return(nil, nil)

	f.worker.FinishSweep(context.Background())
}

func TestFinishSweep_FinishFailureSkipsTrip(t *testing.T) {
	f := newWorkerFixture(t)

	past := models.Trip{ID: uuid.New(), Date: "14.06", Time: "09:00"}
	f.trips.EXPECT().ListActive(gomock.Any()).Return([]models.Trip{past}, nil)
	f.trips.EXPECT().FinishTrip(gomock.Any(), past.ID).Return(nil, errors.New("db down"))

	f.worker.FinishSweep(context.Background())
}

func TestFinishSweep_ListFailureStopsSweep(t *testing.T) {
	f := newWorkerFixture(t)

	f.trips.EXPECT().ListActive(gomock.Any()).Return(nil, errors.New("db down"))

	f.worker.FinishSweep(context.Background())
}

func TestReminderSweep_PublishesWithinWindow(t *testing.T) {
	f := newWorkerFixture(t)

	// 13:00 departure at 12:00 now, 60 minutes lead, inside 30..90
	due := models.ReminderCandidate{
		BookingID:   uuid.New(),
		TripID:      uuid.New(),
		PassengerID: 20,
		Origin:      "Kyiv",
		Destination: "Lviv",
		Date:        "15.06",
		Time:        "13:00",
	}
	// 10 minutes lead, too close to bother
	tooClose := models.ReminderCandidate{BookingID: uuid.New(), Date: "15.06", Time: "12:10"}
	// 5 hours lead, not yet
	tooFar := models.ReminderCandidate{BookingID: uuid.New(), Date: "15.06", Time: "17:00"}

	f.bookings.EXPECT().ListUnreminded(gomock.Any()).
		Return([]models.ReminderCandidate{due, tooClose, tooFar}, nil)
	f.bookings.EXPECT().MarkReminded(gomock.Any(), due.BookingID).Return(true, nil)
	f.pub.EXPECT().
		PublishReminderDue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.ReminderDueEvent) error {
			assert.Equal(t, due.BookingID, event.BookingID)
			assert.Equal(t, "Kyiv", event.Origin)
			return nil
		})

	f.worker.ReminderSweep(context.Background())
}

func TestReminderSweep_AlreadyMarkedIsNotPublished(t *testing.T) {
	f := newWorkerFixture(t)

	due := models.ReminderCandidate{BookingID: uuid.New(), Date: "15.06", Time: "13:00"}
	f.bookings.EXPECT().ListUnreminded(gomock.Any()).Return([]models.ReminderCandidate{due}, nil)
	f.bookings.EXPECT().MarkReminded(gomock.Any(), due.BookingID).Return(false, nil)

	f.worker.ReminderSweep(context.Background())
}

func TestRetentionSweep_UsesConfiguredCutoffs(t *testing.T) {
	f := newWorkerFixture(t)

	now := f.worker.now()
	f.trips.EXPECT().PurgeOldTrips(gomock.Any(), now.AddDate(0, 0, -60)).Return(int64(3), nil)
	f.trips.EXPECT().PruneSearchHistory(gomock.Any(), now.AddDate(0, 0, -2)).Return(int64(40), nil)

	f.worker.RetentionSweep(context.Background())
}

func TestRetentionSweep_PurgeFailureStillPrunes(t *testing.T) {
	f := newWorkerFixture(t)

	f.trips.EXPECT().PurgeOldTrips(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db down"))
	f.trips.EXPECT().PruneSearchHistory(gomock.Any(), gomock.Any()).Return(int64(0), nil)

	f.worker.RetentionSweep(context.Background())
}
