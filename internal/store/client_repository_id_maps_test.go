// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/crisiscleanup/worksite-sync/internal/logger"
	"github.com/crisiscleanup/worksite-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIDMapRepo(t *testing.T, db *sql.DB) WorksiteIDMapRepository {
	t.Helper()
	return NewWorksiteIDMapRepository(newDBFromSQL(db), logger.Nop())
}

var idMapColumns = []string{"entity_type", "local_key", "network_id"}

func TestGetIDMaps(t *testing.T) {
	selectSQL := regexp.QuoteMeta("SELECT entity_type, local_key, network_id FROM worksite_id_maps")

	t.Run("success: rows distributed by entity type", func(t *testing.T) {
		// Arrange
		db, mock := newTestDB(t)
		rows := sqlmock.NewRows(idMapColumns).
			AddRow(models.IDMapFlag, "1", int64(11)).
			AddRow(models.IDMapNote, "2", int64(22)).
			AddRow(models.IDMapWorkType, "3", int64(33)).
			AddRow(models.IDMapWorkTypeRequest, "trees", int64(44)).
			AddRow(models.IDMapWorksite, "42", int64(900))
		mock.ExpectQuery(selectSQL).WithArgs(int64(42)).WillReturnRows(rows)
		repo := newTestIDMapRepo(t, db)

		// Act
		idMaps, err := repo.GetIDMaps(testContext(), 42)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(900), idMaps.NetworkWorksiteID)
		assert.Equal(t, map[int64]int64{1: 11}, idMaps.Flags)
		assert.Equal(t, map[int64]int64{2: 22}, idMaps.Notes)
		assert.Equal(t, map[int64]int64{3: 33}, idMaps.WorkTypes)
		assert.Equal(t, map[string]int64{"trees": 44}, idMaps.WorkTypeRequests)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("malformed rows are skipped", func(t *testing.T) {
		db, mock := newTestDB(t)
		rows := sqlmock.NewRows(idMapColumns).
			AddRow(models.IDMapFlag, "not-a-number", int64(11)).
			AddRow("unknown", "1", int64(12)).
			AddRow(models.IDMapFlag, "2", int64(21))
		mock.ExpectQuery(selectSQL).WillReturnRows(rows)
		repo := newTestIDMapRepo(t, db)

		idMaps, err := repo.GetIDMaps(testContext(), 42)

		require.NoError(t, err)
		assert.Equal(t, map[int64]int64{2: 21}, idMaps.Flags)
	})

	t.Run("empty result gives writable maps", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(selectSQL).WillReturnRows(sqlmock.NewRows(idMapColumns))
		repo := newTestIDMapRepo(t, db)

		idMaps, err := repo.GetIDMaps(testContext(), 42)

		require.NoError(t, err)
		require.NotNil(t, idMaps.Flags)
		idMaps.Flags[1] = 1
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(selectSQL).WillReturnError(errors.New("boom"))
		repo := newTestIDMapRepo(t, db)

		_, err := repo.GetIDMaps(testContext(), 42)

		require.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestSaveIDMaps(t *testing.T) {
	upsertSQL := regexp.QuoteMeta("INSERT INTO worksite_id_maps")

	idMaps := models.NewIDMaps()
	idMaps.NetworkWorksiteID = 900
	idMaps.Flags[1] = 11

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectExec(upsertSQL).
			WithArgs(
				int64(42), models.IDMapWorksite, "42", int64(900),
				int64(42), models.IDMapFlag, "1", int64(11),
			).
			WillReturnResult(sqlmock.NewResult(0, 2))
		repo := newTestIDMapRepo(t, db)

		require.NoError(t, repo.SaveIDMaps(testContext(), 42, idMaps))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("busy then success", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectExec(upsertSQL).WillReturnError(busyErr())
		mock.ExpectExec(upsertSQL).WillReturnResult(sqlmock.NewResult(0, 2))
		repo := newTestIDMapRepo(t, db)

		require.NoError(t, repo.SaveIDMaps(testContext(), 42, idMaps))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing confirmed is a no-op", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestIDMapRepo(t, db)

		require.NoError(t, repo.SaveIDMaps(testContext(), 42, models.NewIDMaps()))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid worksite id", func(t *testing.T) {
		db, _ := newTestDB(t)
		repo := newTestIDMapRepo(t, db)

		err := repo.SaveIDMaps(testContext(), 0, idMaps)

		require.ErrorIs(t, err, ErrInvalidWorksiteID)
	})

	t.Run("exec error", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectExec(upsertSQL).WillReturnError(errors.New("boom"))
		repo := newTestIDMapRepo(t, db)

		err := repo.SaveIDMaps(testContext(), 42, idMaps)

		require.ErrorIs(t, err, ErrExecutingStatement)
	})
}
