package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// EchoMiddleware creates request logging middleware for Echo.
func EchoMiddleware(logger *AppLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status
			method := c.Request().Method

			if raw != "" {
				path = path + "?" + raw
			}

			userIDStr := "anonymous"
			if userID := c.Get("user_id"); userID != nil {
				userIDStr = fmt.Sprintf("%v", userID)
			}

			fields := logrus.Fields{
				"method":     method,
				"path":       path,
				"status":     statusCode,
				"latency_ms": latency.Milliseconds(),
				"client_ip":  c.RealIP(),
				"user_id":    userIDStr,
				"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
			}

			entry := logger.WithFields(fields)
			switch {
			case err != nil:
				entry.WithError(err).Warn("request failed")
			case statusCode >= 500:
				entry.Error("request completed")
			default:
				entry.Info("request completed")
			}

			return err
		}
	}
}
