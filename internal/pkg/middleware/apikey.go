package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"

	"github.com/pidsadka/pidsadka/internal/pkg/models"
	"github.com/pidsadka/pidsadka/internal/utils"
)

const (
	APIKeyHeader = "X-API-Key"
)

// ValidateAPIKey middleware guards privileged admin routes with the
// configured admin key.
func ValidateAPIKey(config models.APIKeyConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.UnauthorizedResponse(c, "API key is required")
			}

			if config.AdminKey == "" ||
				subtle.ConstantTimeCompare([]byte(apiKey), []byte(config.AdminKey)) != 1 {
				return utils.UnauthorizedResponse(c, "Invalid API key")
			}

			return next(c)
		}
	}
}
