package users

import (
	"context"

	"github.com/pidsadka/pidsadka/internal/pkg/models"
)

// UserUC defines the interface for user business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/pidsadka/pidsadka/services/users UserUC
type UserUC interface {
	Register(ctx context.Context, req *models.UpsertUserRequest) (*models.AuthResponse, error)
	UpsertUser(ctx context.Context, req *models.UpsertUserRequest) (*models.User, error)
	UpdateVehicle(ctx context.Context, userID int64, req *models.UpdateVehicleRequest) error
	GetUser(ctx context.Context, userID int64) (*models.User, error)
	BanUser(ctx context.Context, userID int64) error
}
