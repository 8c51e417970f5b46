package users

import (
	"context"

	"github.com/pidsadka/pidsadka/internal/pkg/models"
)

// UserRepo defines the interface for user data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/pidsadka/pidsadka/services/users UserRepo
type UserRepo interface {
	UpsertUser(ctx context.Context, req *models.UpsertUserRequest) (*models.User, error)
	UpdateVehicle(ctx context.Context, userID int64, req *models.UpdateVehicleRequest) error
	GetUser(ctx context.Context, userID int64) (*models.User, error)
	TouchLastActive(ctx context.Context, userID int64) error
	BanUserCascade(ctx context.Context, userID int64) (*models.BanCascade, error)
}
