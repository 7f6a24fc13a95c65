package backend

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	auditDomain "github.com/hidolabs/hido/internal/audit/domain"
	apperrors "github.com/hidolabs/hido/internal/errors"
)

func TestMySQLBackend_Record(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		entry := auditDomain.NewEntry(testActor, "analyze_data", "s3://lake/x.parquet")

		mock.ExpectExec("INSERT INTO audit_entries").
			WithArgs(
				entry.ID.String(),
				entry.Actor,
				entry.Action,
				entry.Target,
				entry.ContentHash,
				entry.CreatedAt,
			).
			WillReturnResult(sqlmock.NewResult(9, 1))

		backend := NewMySQLBackend(db)
		entryID, err := backend.Record(context.Background(), entry)
		require.NoError(t, err)
		assert.Equal(t, "9", entryID)
		assert.Equal(t, "9", entry.EntryID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_InsertFails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("INSERT INTO audit_entries").
			WillReturnError(assert.AnError)

		backend := NewMySQLBackend(db)
		entry := auditDomain.NewEntry(testActor, "analyze_data", "s3://lake/x.parquet")

		_, err = backend.Record(context.Background(), entry)
		require.ErrorIs(t, err, apperrors.ErrBackendUnavailable)
		assert.Empty(t, entry.EntryID)
	})
}

func TestMySQLBackend_List(t *testing.T) {
	t.Run("Success_QuestionPlaceholders", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		stored := auditDomain.NewEntry(testActor, "analyze_data", "s3://lake/x.parquet")

		rows := sqlmock.NewRows([]string{
			"entry_id", "id", "actor", "action", "target", "content_hash", "created_at",
		}).AddRow(
			int64(4),
			stored.ID.String(),
			stored.Actor,
			stored.Action,
			stored.Target,
			stored.ContentHash,
			stored.CreatedAt,
		)

		mock.ExpectQuery(`SELECT (.+) FROM audit_entries WHERE action = \? ORDER BY entry_id ASC`).
			WithArgs("analyze_data").
			WillReturnRows(rows)

		backend := NewMySQLBackend(db)

		entries, err := backend.List(context.Background(), auditDomain.Filter{}.ByAction("analyze_data"))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "4", entries[0].EntryID)
		assert.True(t, entries[0].VerifyHash())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_QueryFails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT (.+) FROM audit_entries").
			WillReturnError(assert.AnError)

		backend := NewMySQLBackend(db)

		_, err = backend.List(context.Background(), auditDomain.Filter{})
		assert.ErrorIs(t, err, apperrors.ErrBackendUnavailable)
	})
}

func TestMySQLBackend_Type(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	backend := NewMySQLBackend(db)
	assert.Equal(t, auditDomain.BackendMySQL, backend.Type())
	assert.NoError(t, backend.Close())
}
