package usecase

import (
	"context"

	"github.com/pidsadka/pidsadka/internal/pkg/apperrors"
	jwtpkg "github.com/pidsadka/pidsadka/internal/pkg/jwt"
	"github.com/pidsadka/pidsadka/internal/pkg/logger"
	"github.com/pidsadka/pidsadka/internal/pkg/models"
)

// Register upserts the caller's profile and issues a bearer token bound to
// their id. Identity verification belongs to the UI layer that fronts this
// API, the asserted id is taken at face value here.
func (uc *userUC) Register(ctx context.Context, req *models.UpsertUserRequest) (*models.AuthResponse, error) {
	user, err := uc.UpsertUser(ctx, req)
	if err != nil {
		return nil, err
	}
	if user.IsBanned {
		return nil, apperrors.ErrForbidden
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Username, uc.cfg)
	if err != nil {
		return nil, err
	}

	logger.Info("User registered", logger.Fields{
		"user_id":  user.ID,
		"username": user.Username,
	})

	return &models.AuthResponse{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}
