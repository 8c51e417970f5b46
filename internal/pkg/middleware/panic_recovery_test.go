package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pidsadka/pidsadka/internal/pkg/logger"
	"github.com/pidsadka/pidsadka/internal/pkg/models"
)

func newBufferedLogger(t *testing.T) (*logger.AppLogger, *bytes.Buffer) {
	t.Helper()
	appLogger, err := logger.NewAppLogger(models.LoggerConfig{Level: "debug"})
	require.NoError(t, err)

	var buf bytes.Buffer
	appLogger.SetOutput(&buf)
	return appLogger, &buf
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		panicValue   interface{}
		expectInLogs []string
		setupContext func(c echo.Context)
	}{
		{
			name:       "string panic",
			panicValue: "test panic message",
			expectInLogs: []string{
				"test panic message",
				"stack_trace",
				"panic_type",
				"Panic recovered during request processing",
			},
		},
		{
			name:       "panic with user context",
			panicValue: "user context panic",
			expectInLogs: []string{
				"user context panic",
				"12345",
			},
			setupContext: func(c echo.Context) {
				c.Set("user_id", int64(12345))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appLogger, buf := newBufferedLogger(t)

			e := echo.New()
			e.Use(PanicRecoveryMiddleware(appLogger))
			e.GET("/panic", func(c echo.Context) error {
				if tt.setupContext != nil {
					tt.setupContext(c)
				}
				panic(tt.panicValue)
			})

			req := httptest.NewRequest(http.MethodGet, "/panic", nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "Internal Server Error", resp["error"])

			logs := buf.String()
			for _, want := range tt.expectInLogs {
				assert.Contains(t, logs, want)
			}
		})
	}
}

func TestPanicRecoveryMiddleware_NoPanicPassesThrough(t *testing.T) {
	appLogger, buf := newBufferedLogger(t)

	e := echo.New()
	e.Use(PanicRecoveryMiddleware(appLogger))
	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.NotContains(t, buf.String(), "Panic recovered")
}
