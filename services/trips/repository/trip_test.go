package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pidsadka/pidsadka/internal/pkg/apperrors"
	"github.com/pidsadka/pidsadka/internal/pkg/models"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func tripColumns() []string {
	return []string{
		"id", "driver_id", "origin", "destination", "date", "time",
		"seats_total", "seats_taken", "price", "description", "status", "created_at",
	}
}

func TestCreateTrip(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTripRepository(&models.Config{}, db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO trips")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	trip := &models.Trip{
		DriverID:    10,
		Origin:      "Kyiv",
		Destination: "Lviv",
		Date:        "20.06",
		Time:        "08:30",
		SeatsTotal:  3,
		Price:       450,
	}

	err := repo.CreateTrip(context.Background(), trip)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, trip.ID)
	assert.Equal(t, models.TripStatusActive, trip.Status)
	assert.Equal(t, 0, trip.SeatsTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTrip_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTripRepository(&models.Config{}, db)

	tripID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, driver_id")).
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows(tripColumns()))

	_, err := repo.GetTrip(context.Background(), tripID)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearch(t *testing.T) {
	db, mock := setupMockDB(t)
	// The page and the count run concurrently, so their order is not fixed
	mock.MatchExpectationsInOrder(false)
	repo := NewTripRepository(&models.Config{}, db)

	tripID := uuid.New()
	searchColumns := append(tripColumns(),
		"driver_name", "driver_rating", "vehicle_model", "vehicle_color")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WithArgs(int64(1), "Kyiv", "Lviv", "20.06").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT t.id, t.driver_id")).
		WithArgs(int64(1), "Kyiv", "Lviv", "20.06", 10, 0).
		WillReturnRows(sqlmock.NewRows(searchColumns).AddRow(
			tripID, int64(10), "Kyiv", "Lviv", "20.06", "08:30",
			3, 1, 450, "", "active", time.Now(),
			"Ivan", 4.8, "Lanos", "blue",
		))

	page, err := repo.Search(context.Background(), &models.TripSearchQuery{
		Origin:      "Kyiv",
		Destination: "Lviv",
		Date:        "20.06",
		ViewerID:    1,
		Limit:       10,
		Offset:      0,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	require.Len(t, page.Trips, 1)
	assert.Equal(t, tripID, page.Trips[0].ID)
	assert.Equal(t, "Ivan", page.Trips[0].DriverName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelCascade_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTripRepository(&models.Config{}, db)

	tripID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT driver_id, status FROM trips WHERE id = $1 FOR UPDATE")).
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows([]string{"driver_id", "status"}).AddRow(int64(10), "active"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT passenger_id FROM bookings")).
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows([]string{"passenger_id"}).AddRow(int64(21)).AddRow(int64(22)))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status = 'cancelled'")).
		WithArgs(tripID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE trips SET status = 'cancelled'")).
		WithArgs(tripID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	event, err := repo.CancelCascade(context.Background(), tripID, 10, false)

	require.NoError(t, err)
	assert.Equal(t, tripID, event.TripID)
	assert.Equal(t, []int64{21, 22}, event.PassengerIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelCascade_Forbidden(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTripRepository(&models.Config{}, db)

	tripID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT driver_id, status")).
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows([]string{"driver_id", "status"}).AddRow(int64(10), "active"))
	mock.ExpectRollback()

	_, err := repo.CancelCascade(context.Background(), tripID, 99, false)

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelCascade_AlreadyCancelledIsIdempotent(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTripRepository(&models.Config{}, db)

	tripID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT driver_id, status")).
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows([]string{"driver_id", "status"}).AddRow(int64(10), "cancelled"))
	mock.ExpectRollback()

	event, err := repo.CancelCascade(context.Background(), tripID, 10, false)

	require.NoError(t, err)
	assert.Nil(t, event)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelCascade_FinishedTrip(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTripRepository(&models.Config{}, db)

	tripID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT driver_id, status")).
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows([]string{"driver_id", "status"}).AddRow(int64(10), "finished"))
	mock.ExpectRollback()

	_, err := repo.CancelCascade(context.Background(), tripID, 10, false)

	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinishTrip_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTripRepository(&models.Config{}, db)

	tripID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE trips SET status = 'finished'")).
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows([]string{"driver_id"}).AddRow(int64(10)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT passenger_id FROM bookings")).
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows([]string{"passenger_id"}).AddRow(int64(21)))
	mock.ExpectCommit()

	event, err := repo.FinishTrip(context.Background(), tripID)

	require.NoError(t, err)
	assert.Equal(t, int64(10), event.DriverID)
	assert.Equal(t, []int64{21}, event.PassengerIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinishTrip_AlreadySettledIsNoOp(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTripRepository(&models.Config{}, db)

	tripID := uuid.New()

	// A retry after the sweep got there first succeeds without an event
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE trips SET status = 'finished'")).
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows([]string{"driver_id"}))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM trips")).
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("finished"))
	mock.ExpectRollback()

	event, err := repo.FinishTrip(context.Background(), tripID)

	require.NoError(t, err)
	assert.Nil(t, event)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinishTrip_Missing(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTripRepository(&models.Config{}, db)

	tripID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE trips SET status = 'finished'")).
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows([]string{"driver_id"}))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM trips")).
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows([]string{"status"}))
	mock.ExpectRollback()

	_, err := repo.FinishTrip(context.Background(), tripID)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPurgeOldTrips(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTripRepository(&models.Config{}, db)

	cutoff := time.Now().AddDate(0, 0, -60)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM trips")).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 12))

	purged, err := repo.PurgeOldTrips(context.Background(), cutoff)

	assert.NoError(t, err)
	assert.Equal(t, int64(12), purged)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSearchHistory_TrimsToLimit(t *testing.T) {
	db, mock := setupMockDB(t)
	cfg := &models.Config{Booking: models.BookingConfig{SearchHistoryLimit: 5}}
	repo := NewTripRepository(cfg, db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO search_history")).
		WithArgs(int64(20), "Kyiv", "Lviv", "").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM search_history")).
		WithArgs(int64(20), 5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveSearchHistory(context.Background(), 20, &models.TripSearchQuery{
		Origin:      "Kyiv",
		Destination: "Lviv",
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
