package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	auditBackend "github.com/hidolabs/hido/internal/audit/backend"
	auditDomain "github.com/hidolabs/hido/internal/audit/domain"
)

type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(
	ctx context.Context,
	domain, operation, status string,
) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func setupDecoratedLedger() (LedgerUseCase, *mockBusinessMetrics) {
	businessMetrics := new(mockBusinessMetrics)
	businessMetrics.On("RecordOperation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	businessMetrics.On(
		"RecordDuration",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything,
	)

	useCase := NewLedgerUseCaseWithMetrics(
		NewLedgerUseCase(auditBackend.NewMemoryBackend()),
		businessMetrics,
	)
	return useCase, businessMetrics
}

func TestLedgerUseCaseWithMetrics_Record(t *testing.T) {
	t.Run("Success_RecordsSuccessStatus", func(t *testing.T) {
		useCase, businessMetrics := setupDecoratedLedger()

		_, err := useCase.Record(
			context.Background(),
			testActor,
			"analyze_data",
			"s3://lake/x.parquet",
		)
		require.NoError(t, err)

		businessMetrics.AssertCalled(
			t, "RecordOperation", mock.Anything, "audit", "record", "success",
		)
		businessMetrics.AssertCalled(
			t, "RecordDuration", mock.Anything, "audit", "record", mock.Anything, "success",
		)
	})

	t.Run("Error_RecordsErrorStatus", func(t *testing.T) {
		useCase, businessMetrics := setupDecoratedLedger()

		_, err := useCase.Record(context.Background(), "", "analyze_data", "s3://lake/x.parquet")
		require.ErrorIs(t, err, auditDomain.ErrEmptyActor)

		businessMetrics.AssertCalled(
			t, "RecordOperation", mock.Anything, "audit", "record", "error",
		)
	})
}

func TestLedgerUseCaseWithMetrics_List(t *testing.T) {
	useCase, businessMetrics := setupDecoratedLedger()

	entries, err := useCase.List(context.Background(), auditDomain.Filter{})
	require.NoError(t, err)
	assert.Empty(t, entries)

	businessMetrics.AssertCalled(t, "RecordOperation", mock.Anything, "audit", "list", "success")
	businessMetrics.AssertCalled(
		t, "RecordDuration", mock.Anything, "audit", "list", mock.Anything, "success",
	)
}

func TestLedgerUseCaseWithMetrics_BackendType(t *testing.T) {
	useCase, _ := setupDecoratedLedger()
	assert.Equal(t, "mock", useCase.BackendType())
}
