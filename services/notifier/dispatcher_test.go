package notifier

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pidsadka/pidsadka/internal/pkg/logger"
	"github.com/pidsadka/pidsadka/internal/pkg/models"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	appLogger, err := logger.NewAppLogger(models.LoggerConfig{Level: "info"})
	require.NoError(t, err)

	var buf bytes.Buffer
	appLogger.SetOutput(&buf)
	logger.SetGlobalLogger(appLogger)
	return &buf
}

func marshal(t *testing.T, v interface{}) []byte {
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestHandleBookingCreated_NotifiesDriver(t *testing.T) {
	buf := captureLogs(t)
	d := NewDispatcher()

	event := models.BookingCreatedEvent{
		TripID:      uuid.New(),
		BookingID:   uuid.New(),
		PassengerID: 20,
		DriverID:    10,
	}

	err := d.HandleBookingCreated(marshal(t, event))

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"user_id":10`)
	assert.Contains(t, buf.String(), "booking_created")
}

func TestHandleBookingCancelled_RoutesByReason(t *testing.T) {
	tests := []struct {
		name           string
		reason         string
		expectedUserID string
	}{
		{"Passenger cancelled notifies driver", models.CancelReasonPassenger, `"user_id":10`},
		{"Kick notifies passenger", models.CancelReasonKicked, `"user_id":20`},
		{"Ban notifies passenger", models.CancelReasonBan, `"user_id":20`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)
			d := NewDispatcher()

			event := models.BookingCancelledEvent{
				TripID:      uuid.New(),
				BookingID:   uuid.New(),
				PassengerID: 20,
				DriverID:    10,
				Reason:      tt.reason,
			}

			err := d.HandleBookingCancelled(marshal(t, event))

			require.NoError(t, err)
			assert.Contains(t, buf.String(), tt.expectedUserID)
		})
	}
}

func TestHandleTripFinished_AsksBothSidesToRate(t *testing.T) {
	buf := captureLogs(t)
	d := NewDispatcher()

	event := models.TripFinishedEvent{
		TripID:       uuid.New(),
		DriverID:     10,
		PassengerIDs: []int64{20, 21},
	}

	err := d.HandleTripFinished(marshal(t, event))

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, `"user_id":20`)
	assert.Contains(t, out, `"user_id":21`)
	assert.Contains(t, out, "rate_driver")
	assert.Contains(t, out, "rate_passenger")
}

func TestHandlers_RejectGarbage(t *testing.T) {
	captureLogs(t)
	d := NewDispatcher()

	assert.Error(t, d.HandleBookingCreated([]byte("not json")))
	assert.Error(t, d.HandleTripCancelled([]byte("{")))
	assert.Error(t, d.HandleReminderDue([]byte("")))
}
