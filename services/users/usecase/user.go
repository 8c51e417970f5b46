package usecase

import (
	"context"
	"strings"

	"github.com/pidsadka/pidsadka/internal/pkg/apperrors"
	"github.com/pidsadka/pidsadka/internal/pkg/logger"
	"github.com/pidsadka/pidsadka/internal/pkg/models"
	"github.com/pidsadka/pidsadka/services/users"
)

type userUC struct {
	cfg      *models.Config
	userRepo users.UserRepo
	userGW   users.UserGW
}

// NewUserUC creates a new user use case
func NewUserUC(
	cfg *models.Config,
	userRepo users.UserRepo,
	userGW users.UserGW,
) users.UserUC {
	return &userUC{
		cfg:      cfg,
		userRepo: userRepo,
		userGW:   userGW,
	}
}

// UpsertUser registers the caller or refreshes their profile
func (uc *userUC) UpsertUser(ctx context.Context, req *models.UpsertUserRequest) (*models.User, error) {
	if req.UserID == 0 {
		return nil, apperrors.Validationf("user id is required")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, apperrors.Validationf("name is required")
	}

	return uc.userRepo.UpsertUser(ctx, req)
}

// UpdateVehicle completes the driver side of the caller's profile
func (uc *userUC) UpdateVehicle(ctx context.Context, userID int64, req *models.UpdateVehicleRequest) error {
	req.Model = strings.TrimSpace(req.Model)
	req.Plate = strings.TrimSpace(req.Plate)
	req.Color = strings.TrimSpace(req.Color)
	if req.Model == "" || req.Plate == "" || req.Color == "" {
		return apperrors.Validationf("vehicle model, plate and color are all required")
	}

	return uc.userRepo.UpdateVehicle(ctx, userID, req)
}

// GetUser retrieves a user's profile
func (uc *userUC) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	return uc.userRepo.GetUser(ctx, userID)
}

// BanUser flags the user and cancels everything they hold open. Events for
// the affected parties are published best effort: a publish failure never
// rolls the ban back.
func (uc *userUC) BanUser(ctx context.Context, userID int64) error {
	cascade, err := uc.userRepo.BanUserCascade(ctx, userID)
	if err != nil {
		return err
	}

	for _, event := range cascade.CancelledTrips {
		if err := uc.userGW.PublishTripCancelled(ctx, event); err != nil {
			logger.Warn("Failed to publish trip cancelled event", logger.Fields{
				"trip_id": event.TripID,
				"error":   err.Error(),
			})
		}
	}
	for _, event := range cascade.CancelledBookings {
		if err := uc.userGW.PublishBookingCancelled(ctx, event); err != nil {
			logger.Warn("Failed to publish booking cancelled event", logger.Fields{
				"booking_id": event.BookingID,
				"error":      err.Error(),
			})
		}
	}

	logger.Info("User banned", logger.Fields{
		"user_id":            userID,
		"cancelled_trips":    len(cascade.CancelledTrips),
		"cancelled_bookings": len(cascade.CancelledBookings),
	})

	return nil
}
