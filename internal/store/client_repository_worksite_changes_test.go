// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/crisiscleanup/worksite-sync/internal/logger"
	"github.com/crisiscleanup/worksite-sync/models"
	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL создаёт DB из существующего *sql.DB (для тестов) с быстрыми ретраями.
func newDBFromSQL(db *sql.DB) *DB {
	storeDB := newDB(db, logger.Nop())
	storeDB.retryDelay = time.Millisecond
	return storeDB
}

func newTestChangeRepo(t *testing.T, db *sql.DB) WorksiteChangeRepository {
	t.Helper()
	return NewWorksiteChangeRepository(newDBFromSQL(db), logger.Nop())
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func busyErr() error {
	return sqlite3.Error{Code: sqlite3.ErrBusy}
}

// ── SaveChange ──────────────────────────────────────────────────────────────

func TestSaveChange(t *testing.T) {
	change := models.QueuedWorksiteChange{
		WorksiteID:   42,
		SyncUUID:     "uuid-1",
		CreatedAt:    time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		ModelVersion: 2,
		Payload:      `{}`,
	}
	insertSQL := regexp.QuoteMeta("INSERT INTO worksite_changes")

	tests := []struct {
		name    string
		change  models.QueuedWorksiteChange
		setup   func(mock sqlmock.Sqlmock)
		wantID  int64
		wantErr error
	}{
		{
			name:   "success",
			change: change,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(insertSQL).WillReturnResult(sqlmock.NewResult(7, 1))
			},
			wantID: 7,
		},
		{
			name:   "busy then success",
			change: change,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(insertSQL).WillReturnError(busyErr())
				mock.ExpectExec(insertSQL).WillReturnResult(sqlmock.NewResult(8, 1))
			},
			wantID: 8,
		},
		{
			name:   "non-retryable error",
			change: change,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(insertSQL).WillReturnError(errors.New("constraint failed"))
			},
			wantErr: ErrExecutingStatement,
		},
		{
			name:   "busy on every attempt",
			change: change,
			setup: func(mock sqlmock.Sqlmock) {
				for range defaultRetryAttempts {
					mock.ExpectExec(insertSQL).WillReturnError(busyErr())
				}
			},
			wantErr: ErrExecutingStatement,
		},
		{
			name:   "no row id",
			change: change,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(insertSQL).WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrChangeNotSaved,
		},
		{
			name:    "invalid worksite id",
			change:  models.QueuedWorksiteChange{WorksiteID: 0},
			setup:   func(sqlmock.Sqlmock) {},
			wantErr: ErrInvalidWorksiteID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			db, mock := newTestDB(t)
			tt.setup(mock)
			repo := newTestChangeRepo(t, db)

			// Act
			id, err := repo.SaveChange(testContext(), tt.change)

			// Assert
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// ── GetQueuedChanges ────────────────────────────────────────────────────────

func TestGetQueuedChanges(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	attemptAt := createdAt.Add(time.Hour)

	t.Run("success: rows scanned in order", func(t *testing.T) {
		// Arrange
		db, mock := newTestDB(t)
		rows := sqlmock.NewRows(changeColumns).
			AddRow(int64(1), int64(42), "uuid-1", createdAt, int64(2), `{"a":1}`, false, int64(0), nil, "").
			AddRow(int64(2), int64(42), "uuid-2", createdAt, int64(2), `{"b":2}`, true, int64(3), attemptAt, "")
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, worksite_id, sync_uuid")).
			WithArgs(int64(42), models.ArchiveActionNone).
			WillReturnRows(rows)
		repo := newTestChangeRepo(t, db)

		// Act
		changes, err := repo.GetQueuedChanges(testContext(), 42)

		// Assert
		require.NoError(t, err)
		require.Len(t, changes, 2)
		assert.Equal(t, int64(1), changes[0].ID)
		assert.Nil(t, changes[0].LastSyncAttemptAt)
		assert.Equal(t, `{"b":2}`, changes[1].Payload)
		assert.True(t, changes[1].IsPartiallySynced)
		assert.Equal(t, 3, changes[1].SyncAttempt)
		require.NotNil(t, changes[1].LastSyncAttemptAt)
		assert.Equal(t, attemptAt, *changes[1].LastSyncAttemptAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id")).WillReturnError(errors.New("boom"))
		repo := newTestChangeRepo(t, db)

		_, err := repo.GetQueuedChanges(testContext(), 42)

		require.ErrorIs(t, err, ErrExecutingQuery)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("row error", func(t *testing.T) {
		db, mock := newTestDB(t)
		rows := sqlmock.NewRows(changeColumns).
			AddRow(int64(1), int64(42), "uuid-1", createdAt, int64(2), `{}`, false, int64(0), nil, "").
			RowError(0, errors.New("row broken"))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id")).WillReturnRows(rows)
		repo := newTestChangeRepo(t, db)

		_, err := repo.GetQueuedChanges(testContext(), 42)

		require.ErrorIs(t, err, ErrScanningRows)
	})
}

// ── GetLatestSyncedChange / HasSkippedChangesAfter ─────────────────────────

func TestGetLatestSyncedChange(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		db, mock := newTestDB(t)
		rows := sqlmock.NewRows(changeColumns).
			AddRow(int64(9), int64(42), "uuid-9", createdAt, int64(2), `{}`, true, int64(1), createdAt, models.ArchiveActionSynced)
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY id DESC LIMIT 1")).
			WithArgs(int64(42), models.ArchiveActionSynced).
			WillReturnRows(rows)
		repo := newTestChangeRepo(t, db)

		change, err := repo.GetLatestSyncedChange(testContext(), 42)

		require.NoError(t, err)
		require.NotNil(t, change)
		assert.Equal(t, int64(9), change.ID)
		assert.Equal(t, models.ArchiveActionSynced, change.ArchiveAction)
	})

	t.Run("none", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY id DESC LIMIT 1")).
			WillReturnRows(sqlmock.NewRows(changeColumns))
		repo := newTestChangeRepo(t, db)

		change, err := repo.GetLatestSyncedChange(testContext(), 42)

		require.NoError(t, err)
		assert.Nil(t, change)
	})
}

func TestHasSkippedChangesAfter(t *testing.T) {
	tests := []struct {
		name  string
		count int64
		want  bool
	}{
		{name: "some skipped", count: 2, want: true},
		{name: "none skipped", count: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM worksite_changes")).
				WithArgs(int64(42), models.ArchiveActionSkipped, int64(5)).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))
			repo := newTestChangeRepo(t, db)

			got, err := repo.HasSkippedChangesAfter(testContext(), 42, 5)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("query error", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).WillReturnError(errors.New("boom"))
		repo := newTestChangeRepo(t, db)

		_, err := repo.HasSkippedChangesAfter(testContext(), 42, 5)

		require.ErrorIs(t, err, ErrExecutingQuery)
	})
}

// ── GetWorksitesPendingSync ─────────────────────────────────────────────────

func TestGetWorksitesPendingSync(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT worksite_id FROM worksite_changes")).
			WithArgs(models.ArchiveActionNone).
			WillReturnRows(sqlmock.NewRows([]string{"worksite_id"}).AddRow(int64(3)).AddRow(int64(1)))
		repo := newTestChangeRepo(t, db)

		ids, err := repo.GetWorksitesPendingSync(testContext(), 10)

		require.NoError(t, err)
		assert.Equal(t, []int64{3, 1}, ids)
	})

	t.Run("invalid limit", func(t *testing.T) {
		db, _ := newTestDB(t)
		repo := newTestChangeRepo(t, db)

		_, err := repo.GetWorksitesPendingSync(testContext(), 0)

		require.ErrorIs(t, err, ErrBuildingSQLQuery)
	})
}

// ── UpdateSyncStatus ────────────────────────────────────────────────────────

func TestUpdateSyncStatus(t *testing.T) {
	attemptedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	updateSQL := regexp.QuoteMeta("UPDATE worksite_changes SET archive_action = ?")
	updates := []models.ChangeSyncUpdate{
		{ID: 1, IsAttempt: true, ArchiveAction: models.ArchiveActionSynced, AttemptedAt: attemptedAt, SyncUUID: "u"},
		{ID: 2, ArchiveAction: models.ArchiveActionSkipped},
	}

	t.Run("success: all rows in one transaction", func(t *testing.T) {
		// Arrange
		db, mock := newTestDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(updateSQL).
			WithArgs(models.ArchiveActionSynced, attemptedAt, "u", int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(updateSQL).
			WithArgs(models.ArchiveActionSkipped, int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()
		repo := newTestChangeRepo(t, db)

		// Act
		err := repo.UpdateSyncStatus(testContext(), updates...)

		// Assert
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row rolls back", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(updateSQL).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()
		repo := newTestChangeRepo(t, db)

		err := repo.UpdateSyncStatus(testContext(), updates...)

		require.ErrorIs(t, err, ErrChangeNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("busy transaction is retried", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(updateSQL).WillReturnError(busyErr())
		mock.ExpectRollback()
		mock.ExpectBegin()
		mock.ExpectExec(updateSQL).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()
		repo := newTestChangeRepo(t, db)

		err := repo.UpdateSyncStatus(testContext(), updates[0])

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin error", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin().WillReturnError(errors.New("no tx"))
		repo := newTestChangeRepo(t, db)

		err := repo.UpdateSyncStatus(testContext(), updates[0])

		require.ErrorIs(t, err, ErrBeginningTransaction)
	})

	t.Run("no updates is a no-op", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestChangeRepo(t, db)

		require.NoError(t, repo.UpdateSyncStatus(testContext()))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

// ── DeleteSyncedBefore ──────────────────────────────────────────────────────

func TestDeleteSyncedBefore(t *testing.T) {
	deleteSQL := regexp.QuoteMeta("DELETE FROM worksite_changes")

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectExec(deleteSQL).
			WithArgs(int64(42), models.ArchiveActionSynced, int64(10)).
			WillReturnResult(sqlmock.NewResult(0, 4))
		repo := newTestChangeRepo(t, db)

		deleted, err := repo.DeleteSyncedBefore(testContext(), 42, 10)

		require.NoError(t, err)
		assert.Equal(t, int64(4), deleted)
	})

	t.Run("error", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectExec(deleteSQL).WillReturnError(errors.New("boom"))
		repo := newTestChangeRepo(t, db)

		_, err := repo.DeleteSyncedBefore(testContext(), 42, 10)

		require.ErrorIs(t, err, ErrExecutingStatement)
	})
}
