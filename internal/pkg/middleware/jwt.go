package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/pidsadka/pidsadka/internal/pkg/jwt"
	"github.com/pidsadka/pidsadka/internal/pkg/models"
	"github.com/pidsadka/pidsadka/internal/utils"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			tokenString := parts[1]

			claims, err := jwtpkg.ValidateToken(tokenString, config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userID, err := jwtpkg.UserIDFromClaims(claims)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			c.Set("user_id", userID)

			return next(c)
		}
	}
}

// UserIDFromContext returns the authenticated user id set by JWTAuthMiddleware.
func UserIDFromContext(c echo.Context) (int64, bool) {
	userID, ok := c.Get("user_id").(int64)
	return userID, ok
}
