package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pidsadka/pidsadka/internal/pkg/apperrors"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newTestContext()

	err := SuccessResponse(c, http.StatusOK, "ok", map[string]string{"key": "value"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "ok", resp.Message)
}

func TestErrorResponseHandler(t *testing.T) {
	c, rec := newTestContext()

	err := ErrorResponseHandler(c, http.StatusBadRequest, "bad input")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "bad input", resp.Error)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestAppErrorResponse(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"Not found", apperrors.ErrNotFound, http.StatusNotFound},
		{"Forbidden", apperrors.ErrForbidden, http.StatusForbidden},
		{"Invalid state", apperrors.ErrInvalidState, http.StatusConflict},
		{"Conflict", apperrors.ErrConflict, http.StatusConflict},
		{"No seats", apperrors.ErrNoSeatsAvailable, http.StatusConflict},
		{"Self booking", apperrors.ErrSelfBooking, http.StatusUnprocessableEntity},
		{"Rate limited", apperrors.ErrRateLimited, http.StatusTooManyRequests},
		{"Validation", apperrors.Validationf("seats must be between 1 and 8"), http.StatusBadRequest},
		{"Storage", apperrors.Storage("insert trip", errors.New("connection reset")), http.StatusInternalServerError},
		{"Unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()

			err := AppErrorResponse(c, tt.err)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAppErrorResponse_WrappedError(t *testing.T) {
	c, rec := newTestContext()

	wrapped := apperrors.Validationf("price must be positive")
	err := AppErrorResponse(c, wrapped)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "price must be positive")
}

func TestAppErrorResponse_DoesNotLeakInternalDetail(t *testing.T) {
	c, rec := newTestContext()

	err := AppErrorResponse(c, apperrors.Storage("query trips", errors.New("dial tcp: password leaked")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotContains(t, resp.Error, "password")
}
