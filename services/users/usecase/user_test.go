package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/pidsadka/pidsadka/internal/pkg/apperrors"
	"github.com/pidsadka/pidsadka/internal/pkg/models"
	"github.com/pidsadka/pidsadka/services/users/mocks"
)

func TestUpsertUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)

	uc := NewUserUC(&models.Config{}, mockRepo, mockGW)

	req := &models.UpsertUserRequest{
		UserID:   123456,
		Username: "driver_ivan",
		Name:     "Ivan",
	}

	mockRepo.EXPECT().
		UpsertUser(gomock.Any(), req).
		Return(&models.User{ID: 123456, Name: "Ivan"}, nil)

	user, err := uc.UpsertUser(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, int64(123456), user.ID)
}

func TestUpsertUser_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)

	uc := NewUserUC(&models.Config{}, mockRepo, mockGW)

	tests := []struct {
		name string
		req  *models.UpsertUserRequest
	}{
		{"Missing user id", &models.UpsertUserRequest{Name: "Ivan"}},
		{"Missing name", &models.UpsertUserRequest{UserID: 1}},
		{"Blank name", &models.UpsertUserRequest{UserID: 1, Name: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.UpsertUser(context.Background(), tt.req)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestUpdateVehicle_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)

	uc := NewUserUC(&models.Config{}, mockRepo, mockGW)

	err := uc.UpdateVehicle(context.Background(), 1, &models.UpdateVehicleRequest{
		Model: "Lanos",
		Plate: "",
		Color: "blue",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestUpdateVehicle_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)

	uc := NewUserUC(&models.Config{}, mockRepo, mockGW)

	mockRepo.EXPECT().
		UpdateVehicle(gomock.Any(), int64(1), gomock.Any()).
		Return(nil)

	err := uc.UpdateVehicle(context.Background(), 1, &models.UpdateVehicleRequest{
		Model: " Lanos ",
		Plate: "AA1234BB",
		Color: "blue",
	})
	assert.NoError(t, err)
}

func TestBanUser_PublishesCascadeEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)

	uc := NewUserUC(&models.Config{}, mockRepo, mockGW)

	tripID := uuid.New()
	bookingID := uuid.New()
	cascade := &models.BanCascade{
		CancelledTrips: []models.TripCancelledEvent{
			{TripID: tripID, DriverID: 7, PassengerIDs: []int64{11, 12}},
		},
		CancelledBookings: []models.BookingCancelledEvent{
			{TripID: uuid.New(), BookingID: bookingID, PassengerID: 7, DriverID: 99, Reason: models.CancelReasonBan},
		},
	}

	mockRepo.EXPECT().
		BanUserCascade(gomock.Any(), int64(7)).
		Return(cascade, nil)
	mockGW.EXPECT().
		PublishTripCancelled(gomock.Any(), cascade.CancelledTrips[0]).
		Return(nil)
	mockGW.EXPECT().
		PublishBookingCancelled(gomock.Any(), cascade.CancelledBookings[0]).
		Return(nil)

	err := uc.BanUser(context.Background(), 7)
	assert.NoError(t, err)
}

func TestBanUser_PublishFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)

	uc := NewUserUC(&models.Config{}, mockRepo, mockGW)

	cascade := &models.BanCascade{
		CancelledTrips: []models.TripCancelledEvent{{TripID: uuid.New(), DriverID: 7}},
	}

	mockRepo.EXPECT().
		BanUserCascade(gomock.Any(), int64(7)).
		Return(cascade, nil)
	mockGW.EXPECT().
		PublishTripCancelled(gomock.Any(), gomock.Any()).
		Return(errors.New("nsqd unreachable"))

	err := uc.BanUser(context.Background(), 7)
	assert.NoError(t, err)
}

func TestBanUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)

	uc := NewUserUC(&models.Config{}, mockRepo, mockGW)

	mockRepo.EXPECT().
		BanUserCascade(gomock.Any(), int64(404)).
		Return(nil, apperrors.ErrNotFound)

	err := uc.BanUser(context.Background(), 404)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
