package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	auditDomain "github.com/hidolabs/hido/internal/audit/domain"
	"github.com/hidolabs/hido/internal/audit/http/dto"
	auditUseCase "github.com/hidolabs/hido/internal/audit/usecase"
	apperrors "github.com/hidolabs/hido/internal/errors"
)

// mockLedgerUseCase is a testify mock for the LedgerUseCase interface.
type mockLedgerUseCase struct {
	mock.Mock
}

func (m *mockLedgerUseCase) Record(ctx context.Context, actor, action, target string) (*auditUseCase.RecordReceipt, error) {
	args := m.Called(ctx, actor, action, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auditUseCase.RecordReceipt), args.Error(1)
}

func (m *mockLedgerUseCase) List(ctx context.Context, filter auditDomain.Filter) ([]*auditDomain.Entry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*auditDomain.Entry), args.Error(1)
}

func (m *mockLedgerUseCase) BackendType() string {
	args := m.Called()
	return args.String(0)
}

const testActor = "did:hido:0a1b2c3d4e5f6071"

func setupTestAuditHandler(t *testing.T) (*AuditHandler, *mockLedgerUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := &mockLedgerUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewAuditHandler(mockUseCase, logger)

	return handler, mockUseCase
}

func createTestContext(method, path string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}

	c.Request = httptest.NewRequest(method, path, reader)
	c.Request.Header.Set("Content-Type", "application/json")

	return c, recorder
}

func TestAuditHandler_RecordHandler(t *testing.T) {
	t.Run("Success_RecordEntry", func(t *testing.T) {
		handler, mockUseCase := setupTestAuditHandler(t)

		receipt := &auditUseCase.RecordReceipt{EntryID: "42", BackendType: "mock"}
		mockUseCase.On("Record", mock.Anything, testActor, "analyze_data", "s3://lake/x.parquet").
			Return(receipt, nil).Once()

		request := dto.RecordEntryRequest{
			Actor:  testActor,
			Action: "analyze_data",
			Target: "s3://lake/x.parquet",
		}
		c, recorder := createTestContext(http.MethodPost, "/v1/audit/entries", request)
		handler.RecordHandler(c)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response dto.RecordEntryResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, "42", response.EntryID)
		assert.Equal(t, "mock", response.BackendType)

		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_MissingActor", func(t *testing.T) {
		handler, mockUseCase := setupTestAuditHandler(t)

		request := dto.RecordEntryRequest{
			Action: "analyze_data",
			Target: "s3://lake/x.parquet",
		}
		c, recorder := createTestContext(http.MethodPost, "/v1/audit/entries", request)
		handler.RecordHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		mockUseCase.AssertNotCalled(t, "Record")
	})

	t.Run("Error_ActorNotADID", func(t *testing.T) {
		handler, mockUseCase := setupTestAuditHandler(t)

		request := dto.RecordEntryRequest{
			Actor:  "agent-7",
			Action: "analyze_data",
			Target: "s3://lake/x.parquet",
		}
		c, recorder := createTestContext(http.MethodPost, "/v1/audit/entries", request)
		handler.RecordHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		mockUseCase.AssertNotCalled(t, "Record")
	})

	t.Run("Error_BackendUnavailable", func(t *testing.T) {
		handler, mockUseCase := setupTestAuditHandler(t)

		mockUseCase.On("Record", mock.Anything, testActor, "analyze_data", "s3://lake/x.parquet").
			Return(nil, apperrors.Wrap(apperrors.ErrBackendUnavailable, "anchor unreachable")).Once()

		request := dto.RecordEntryRequest{
			Actor:  testActor,
			Action: "analyze_data",
			Target: "s3://lake/x.parquet",
		}
		c, recorder := createTestContext(http.MethodPost, "/v1/audit/entries", request)
		handler.RecordHandler(c)

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
		mockUseCase.AssertExpectations(t)
	})
}

func TestAuditHandler_ListHandler(t *testing.T) {
	t.Run("Success_ListWithFilters", func(t *testing.T) {
		handler, mockUseCase := setupTestAuditHandler(t)

		entry := auditDomain.NewEntry(testActor, "analyze_data", "s3://lake/x.parquet")
		entry.EntryID = "1"

		expectedFilter := auditDomain.Filter{}.
			ByActor(testActor).
			ByAction("analyze_data").
			WithPagination(0, 50)

		mockUseCase.On("List", mock.Anything, expectedFilter).
			Return([]*auditDomain.Entry{entry}, nil).Once()

		c, recorder := createTestContext(
			http.MethodGet,
			"/v1/audit/entries?actor="+testActor+"&action=analyze_data",
			nil,
		)
		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response dto.ListEntriesResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		require.Len(t, response.Data, 1)
		assert.Equal(t, testActor, response.Data[0].Actor)
		assert.Equal(t, entry.ContentHash, response.Data[0].ContentHash)
		assert.Equal(t, "1", response.Data[0].EntryID)

		mockUseCase.AssertExpectations(t)
	})

	t.Run("Success_EmptyResult", func(t *testing.T) {
		handler, mockUseCase := setupTestAuditHandler(t)

		mockUseCase.On("List", mock.Anything, mock.Anything).
			Return([]*auditDomain.Entry{}, nil).Once()

		c, recorder := createTestContext(http.MethodGet, "/v1/audit/entries", nil)
		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response dto.ListEntriesResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Empty(t, response.Data)

		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_InvalidPagination", func(t *testing.T) {
		handler, mockUseCase := setupTestAuditHandler(t)

		c, recorder := createTestContext(http.MethodGet, "/v1/audit/entries?limit=0", nil)
		handler.ListHandler(c)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockUseCase.AssertNotCalled(t, "List")
	})
}
