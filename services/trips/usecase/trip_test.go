package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pidsadka/pidsadka/internal/pkg/apperrors"
	"github.com/pidsadka/pidsadka/internal/pkg/models"
	"github.com/pidsadka/pidsadka/services/trips/mocks"
)

type tripUCFixture struct {
	repo    *mocks.MockTripRepo
	gw      *mocks.MockTripGW
	drivers *mocks.MockDriverDirectory
	uc      *tripUC
}

func newTripUCFixture(t *testing.T) *tripUCFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &tripUCFixture{
		repo:    mocks.NewMockTripRepo(ctrl),
		gw:      mocks.NewMockTripGW(ctrl),
		drivers: mocks.NewMockDriverDirectory(ctrl),
	}
	f.uc = NewTripUC(&models.Config{}, f.repo, f.gw, f.drivers).(*tripUC)
	f.uc.now = func() time.Time {
		return time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	}
	return f
}

func completeDriver() *models.User {
	return &models.User{
		ID:           10,
		Name:         "Ivan",
		Phone:        "+380501112233",
		VehicleModel: "Lanos",
		VehiclePlate: "AA1234BB",
		VehicleColor: "blue",
	}
}

func validCreateRequest() *models.CreateTripRequest {
	return &models.CreateTripRequest{
		DriverID:    10,
		Origin:      "Kyiv",
		Destination: "Lviv",
		Date:        "20.06",
		Time:        "08:30",
		SeatsTotal:  3,
		Price:       450,
	}
}

func TestCreateTrip_Success(t *testing.T) {
	f := newTripUCFixture(t)

	f.drivers.EXPECT().GetUser(gomock.Any(), int64(10)).Return(completeDriver(), nil)
	f.repo.EXPECT().ActiveSchedules(gomock.Any(), int64(10)).Return(nil, nil)
	f.repo.EXPECT().
		CreateTrip(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, trip *models.Trip) error {
			assert.Equal(t, int64(10), trip.DriverID)
			assert.Equal(t, "Kyiv", trip.Origin)
			trip.ID = uuid.New()
			return nil
		})

	trip, err := f.uc.CreateTrip(context.Background(), validCreateRequest())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, trip.ID)
}

func TestCreateTrip_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *models.CreateTripRequest)
	}{
		{"Empty origin", func(r *models.CreateTripRequest) { r.Origin = " " }},
		{"Same origin and destination", func(r *models.CreateTripRequest) { r.Destination = "kyiv" }},
		{"Zero seats", func(r *models.CreateTripRequest) { r.SeatsTotal = 0 }},
		{"Too many seats", func(r *models.CreateTripRequest) { r.SeatsTotal = 9 }},
		{"Free ride", func(r *models.CreateTripRequest) { r.Price = 0 }},
		{"Bad date", func(r *models.CreateTripRequest) { r.Date = "2026-06-20" }},
		{"Bad time", func(r *models.CreateTripRequest) { r.Time = "8am" }},
		{"Past departure", func(r *models.CreateTripRequest) { r.Date = "14.06" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTripUCFixture(t)
			req := validCreateRequest()
			tt.mutate(req)

			_, err := f.uc.CreateTrip(context.Background(), req)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestCreateTrip_BannedDriver(t *testing.T) {
	f := newTripUCFixture(t)

	driver := completeDriver()
	driver.IsBanned = true
	f.drivers.EXPECT().GetUser(gomock.Any(), int64(10)).Return(driver, nil)

	_, err := f.uc.CreateTrip(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestCreateTrip_IncompleteProfile(t *testing.T) {
	f := newTripUCFixture(t)

	driver := completeDriver()
	driver.VehicleModel = models.FieldUnset
	f.drivers.EXPECT().GetUser(gomock.Any(), int64(10)).Return(driver, nil)

	_, err := f.uc.CreateTrip(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateTrip_NoPhone(t *testing.T) {
	f := newTripUCFixture(t)

	driver := completeDriver()
	driver.Phone = models.FieldUnset
	f.drivers.EXPECT().GetUser(gomock.Any(), int64(10)).Return(driver, nil)

	_, err := f.uc.CreateTrip(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateTrip_OverlapConflict(t *testing.T) {
	f := newTripUCFixture(t)

	f.drivers.EXPECT().GetUser(gomock.Any(), int64(10)).Return(completeDriver(), nil)
	// Existing trip departs 90 minutes before the new one
	f.repo.EXPECT().ActiveSchedules(gomock.Any(), int64(10)).
		Return([]models.TripSchedule{{Date: "20.06", Time: "07:00"}}, nil)

	_, err := f.uc.CreateTrip(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestCreateTrip_DistantTripsDoNotConflict(t *testing.T) {
	f := newTripUCFixture(t)

	f.drivers.EXPECT().GetUser(gomock.Any(), int64(10)).Return(completeDriver(), nil)
	f.repo.EXPECT().ActiveSchedules(gomock.Any(), int64(10)).
		Return([]models.TripSchedule{{Date: "20.06", Time: "18:00"}}, nil)
	f.repo.EXPECT().CreateTrip(gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.uc.CreateTrip(context.Background(), validCreateRequest())
	assert.NoError(t, err)
}

func TestSearchTrips_Validation(t *testing.T) {
	f := newTripUCFixture(t)

	_, err := f.uc.SearchTrips(context.Background(), &models.TripSearchQuery{ViewerID: 1})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSearchTrips_DefaultsAndHistory(t *testing.T) {
	f := newTripUCFixture(t)

	query := &models.TripSearchQuery{Origin: "Kyiv", ViewerID: 1}
	page := &models.TripSearchPage{Total: 0}

	f.repo.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q *models.TripSearchQuery) (*models.TripSearchPage, error) {
			assert.Equal(t, defaultSearchLimit, q.Limit)
			return page, nil
		})
	f.repo.EXPECT().SaveSearchHistory(gomock.Any(), int64(1), gomock.Any()).Return(nil)

	got, err := f.uc.SearchTrips(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, page, got)
}

func TestSearchTrips_HistoryFailureIsSwallowed(t *testing.T) {
	f := newTripUCFixture(t)

	f.repo.EXPECT().Search(gomock.Any(), gomock.Any()).Return(&models.TripSearchPage{}, nil)
	f.repo.EXPECT().SaveSearchHistory(gomock.Any(), int64(1), gomock.Any()).
		Return(errors.New("insert failed"))

	_, err := f.uc.SearchTrips(context.Background(), &models.TripSearchQuery{Origin: "Kyiv", ViewerID: 1})
	assert.NoError(t, err)
}

func TestCancelTrip_PublishesWhenPassengersAffected(t *testing.T) {
	f := newTripUCFixture(t)

	tripID := uuid.New()
	event := &models.TripCancelledEvent{TripID: tripID, DriverID: 10, PassengerIDs: []int64{21, 22}}

	f.repo.EXPECT().CancelCascade(gomock.Any(), tripID, int64(10), false).Return(event, nil)
	f.gw.EXPECT().PublishTripCancelled(gomock.Any(), *event).Return(nil)

	err := f.uc.CancelTrip(context.Background(), tripID, 10)
	assert.NoError(t, err)
}

func TestCancelTrip_EmptyTripStillPublishes(t *testing.T) {
	f := newTripUCFixture(t)

	tripID := uuid.New()
	event := &models.TripCancelledEvent{TripID: tripID, DriverID: 10}

	f.repo.EXPECT().CancelCascade(gomock.Any(), tripID, int64(10), false).Return(event, nil)
	f.gw.EXPECT().PublishTripCancelled(gomock.Any(), *event).Return(nil)

	err := f.uc.CancelTrip(context.Background(), tripID, 10)
	assert.NoError(t, err)
}

func TestCancelTrip_RetryPublishesNothing(t *testing.T) {
	f := newTripUCFixture(t)

	tripID := uuid.New()
	f.repo.EXPECT().CancelCascade(gomock.Any(), tripID, int64(10), false).Return(nil, nil)

	err := f.uc.CancelTrip(context.Background(), tripID, 10)
	assert.NoError(t, err)
}

func TestCancelTripAdmin_BypassesOwnership(t *testing.T) {
	f := newTripUCFixture(t)

	tripID := uuid.New()
	event := &models.TripCancelledEvent{TripID: tripID, DriverID: 10, PassengerIDs: []int64{21}}

	f.repo.EXPECT().CancelCascade(gomock.Any(), tripID, int64(0), true).Return(event, nil)
	f.gw.EXPECT().PublishTripCancelled(gomock.Any(), *event).Return(nil)

	err := f.uc.CancelTripAdmin(context.Background(), tripID)
	assert.NoError(t, err)
}

func TestFinishTrip_Forbidden(t *testing.T) {
	f := newTripUCFixture(t)

	tripID := uuid.New()
	f.repo.EXPECT().GetTrip(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, DriverID: 99}, nil)

	err := f.uc.FinishTrip(context.Background(), tripID, 10)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestFinishTrip_Success(t *testing.T) {
	f := newTripUCFixture(t)

	tripID := uuid.New()
	event := &models.TripFinishedEvent{TripID: tripID, DriverID: 10, PassengerIDs: []int64{21}}

	f.repo.EXPECT().GetTrip(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, DriverID: 10}, nil)
	f.repo.EXPECT().FinishTrip(gomock.Any(), tripID).Return(event, nil)
	f.gw.EXPECT().PublishTripFinished(gomock.Any(), *event).Return(nil)

	err := f.uc.FinishTrip(context.Background(), tripID, 10)
	assert.NoError(t, err)
}

func TestFinishTrip_RetryIsNoOp(t *testing.T) {
	f := newTripUCFixture(t)

	tripID := uuid.New()
	f.repo.EXPECT().GetTrip(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID, DriverID: 10}, nil)
	// Nil event means the trip was already settled, no publish and no error
	f.repo.EXPECT().FinishTrip(gomock.Any(), tripID).Return(nil, nil)

	err := f.uc.FinishTrip(context.Background(), tripID, 10)
	assert.NoError(t, err)
}
