package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pidsadka/pidsadka/internal/pkg/apperrors"
	jwtpkg "github.com/pidsadka/pidsadka/internal/pkg/jwt"
	"github.com/pidsadka/pidsadka/internal/pkg/models"
	"github.com/pidsadka/pidsadka/services/users/mocks"
)

func authTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "register-test-secret",
			Expiration: 60,
			Issuer:     "ledger-test",
		},
	}
}

func TestRegister_IssuesVerifiableToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockUserRepo(ctrl)
	gw := mocks.NewMockUserGW(ctrl)
	cfg := authTestConfig()
	uc := NewUserUC(cfg, repo, gw).(*userUC)

	req := &models.UpsertUserRequest{UserID: 42, Username: "olena", Name: "Olena"}
	repo.EXPECT().UpsertUser(gomock.Any(), req).
		Return(&models.User{ID: 42, Username: "olena", Name: "Olena"}, nil)

	auth, err := uc.Register(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(42), auth.UserID)
	assert.NotEmpty(t, auth.Token)

	claims, err := jwtpkg.ValidateToken(auth.Token, cfg.JWT.Secret)
	require.NoError(t, err)
	userID, err := jwtpkg.UserIDFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestRegister_BannedUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockUserRepo(ctrl)
	gw := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(authTestConfig(), repo, gw).(*userUC)

	req := &models.UpsertUserRequest{UserID: 42, Username: "olena", Name: "Olena"}
	repo.EXPECT().UpsertUser(gomock.Any(), req).
		Return(&models.User{ID: 42, IsBanned: true}, nil)

	_, err := uc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestRegister_ValidationPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockUserRepo(ctrl)
	gw := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(authTestConfig(), repo, gw).(*userUC)

	_, err := uc.Register(context.Background(), &models.UpsertUserRequest{UserID: 0, Name: "Olena"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
