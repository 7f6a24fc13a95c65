package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/hidolabs/hido/internal/errors"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest("GET", "/", nil)
	return c, recorder
}

func TestHandleErrorGin(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "NotFound",
			err:        apperrors.Wrap(apperrors.ErrNotFound, "did not registered"),
			wantStatus: http.StatusNotFound,
			wantError:  "not_found",
		},
		{
			name:       "InvalidInput",
			err:        apperrors.Wrap(apperrors.ErrInvalidInput, "action cannot be empty"),
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "invalid_input",
		},
		{
			name:       "InvalidKey",
			err:        apperrors.ErrInvalidKey,
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "invalid_key",
		},
		{
			name:       "InvalidSignatureFormat",
			err:        apperrors.ErrInvalidSignatureFormat,
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "invalid_signature_format",
		},
		{
			name:       "BackendUnavailable",
			err:        apperrors.Wrap(apperrors.ErrBackendUnavailable, "anchor health check failed"),
			wantStatus: http.StatusServiceUnavailable,
			wantError:  "backend_unavailable",
		},
		{
			name:       "UnknownError",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, recorder := newTestContext(t)
			HandleErrorGin(c, tt.err, logger)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
			assert.Equal(t, tt.wantError, response.Error)
		})
	}

	t.Run("NilErrorWritesNothing", func(t *testing.T) {
		c, recorder := newTestContext(t)
		HandleErrorGin(c, nil, logger)
		assert.Empty(t, recorder.Body.String())
	})

	t.Run("InternalErrorHidesDetails", func(t *testing.T) {
		c, recorder := newTestContext(t)
		HandleErrorGin(c, errors.New("connection string with password"), logger)

		assert.NotContains(t, recorder.Body.String(), "password")
	})
}

func TestHandleBadRequestGin(t *testing.T) {
	c, recorder := newTestContext(t)
	HandleBadRequestGin(c, errors.New("invalid JSON"), slog.New(slog.DiscardHandler))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "bad_request", response.Error)
	assert.Equal(t, "invalid JSON", response.Message)
}

func TestHandleValidationErrorGin(t *testing.T) {
	c, recorder := newTestContext(t)
	HandleValidationErrorGin(c, errors.New("actor: cannot be blank"), slog.New(slog.DiscardHandler))

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "validation_error", response.Error)
}
