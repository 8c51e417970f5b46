package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pidsadka/pidsadka/internal/pkg/models"
)

func getTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key-for-jwt-signing",
			Expiration: 60, // 60 minutes
			Issuer:     "ledger-test",
		},
	}
}

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name     string
		userID   int64
		username string
		config   *models.Config
	}{
		{
			name:     "Valid token generation",
			userID:   123456789,
			username: "driver_ivan",
			config:   getTestConfig(),
		},
		{
			name:     "Empty username",
			userID:   42,
			username: "",
			config:   getTestConfig(),
		},
		{
			name:     "Zero user id",
			userID:   0,
			username: "nobody",
			config:   getTestConfig(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenString, expiresAt, err := GenerateToken(tt.userID, tt.username, tt.config)
			assert.NoError(t, err)
			assert.NotEmpty(t, tokenString)
			assert.Greater(t, expiresAt, time.Now().Unix())

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				return []byte(tt.config.JWT.Secret), nil
			})
			require.NoError(t, err)
			require.True(t, token.Valid)

			claims, ok := token.Claims.(jwt.MapClaims)
			require.True(t, ok)

			assert.Equal(t, float64(tt.userID), claims["user_id"])
			assert.Equal(t, tt.username, claims["username"])
			assert.Equal(t, tt.config.JWT.Issuer, claims["iss"])
			assert.Equal(t, float64(expiresAt), claims["exp"])
		})
	}
}

func TestGenerateToken_ExpirationTime(t *testing.T) {
	config := getTestConfig()
	config.JWT.Expiration = 30 // 30 minutes

	beforeGeneration := time.Now()
	tokenString, expiresAt, err := GenerateToken(123, "driver_ivan", config)
	afterGeneration := time.Now()

	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	expectedMin := beforeGeneration.Add(30 * time.Minute).Unix()
	expectedMax := afterGeneration.Add(30 * time.Minute).Unix()

	assert.GreaterOrEqual(t, expiresAt, expectedMin)
	assert.LessOrEqual(t, expiresAt, expectedMax)
}

func TestValidateToken(t *testing.T) {
	config := getTestConfig()
	userID := int64(987654321)

	validToken, _, err := GenerateToken(userID, "passenger_olha", config)
	require.NoError(t, err)

	tests := []struct {
		name        string
		tokenString string
		secret      string
		expectError bool
		setupToken  func() string
	}{
		{
			name:        "Valid token",
			tokenString: validToken,
			secret:      config.JWT.Secret,
			expectError: false,
		},
		{
			name:        "Invalid secret",
			tokenString: validToken,
			secret:      "wrong-secret",
			expectError: true,
		},
		{
			name:        "Malformed token",
			tokenString: "invalid.token.string",
			secret:      config.JWT.Secret,
			expectError: true,
		},
		{
			name:        "Empty token",
			tokenString: "",
			secret:      config.JWT.Secret,
			expectError: true,
		},
		{
			name: "Expired token",
			setupToken: func() string {
				expiredConfig := *config
				expiredConfig.JWT.Expiration = -1
				token, _, _ := GenerateToken(userID, "passenger_olha", &expiredConfig)
				return token
			},
			secret:      config.JWT.Secret,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenToTest := tt.tokenString
			if tt.setupToken != nil {
				tokenToTest = tt.setupToken()
			}

			claims, err := ValidateToken(tokenToTest, tt.secret)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, claims)
				assert.Equal(t, float64(userID), claims["user_id"])
				assert.Equal(t, "passenger_olha", claims["username"])
				assert.Equal(t, config.JWT.Issuer, claims["iss"])
			}
		})
	}
}

func TestUserIDFromClaims(t *testing.T) {
	config := getTestConfig()
	userID := int64(555000111)

	tokenString, _, err := GenerateToken(userID, "driver_ivan", config)
	require.NoError(t, err)

	claims, err := ValidateToken(tokenString, config.JWT.Secret)
	require.NoError(t, err)

	got, err := UserIDFromClaims(claims)
	assert.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestUserIDFromClaims_Missing(t *testing.T) {
	_, err := UserIDFromClaims(jwt.MapClaims{})
	assert.Error(t, err)
}

func TestUserIDFromClaims_WrongType(t *testing.T) {
	_, err := UserIDFromClaims(jwt.MapClaims{"user_id": "not-a-number"})
	assert.Error(t, err)
}

func BenchmarkGenerateToken(b *testing.B) {
	config := getTestConfig()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = GenerateToken(123, "driver_ivan", config)
	}
}

func BenchmarkValidateToken(b *testing.B) {
	config := getTestConfig()

	tokenString, _, err := GenerateToken(123, "driver_ivan", config)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ValidateToken(tokenString, config.JWT.Secret)
	}
}
