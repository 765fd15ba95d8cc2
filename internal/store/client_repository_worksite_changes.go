// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/crisiscleanup/worksite-sync/internal/logger"
	"github.com/crisiscleanup/worksite-sync/models"
)

type worksiteChangeRepository struct {
	*DB
	logger *logger.Logger
}

func NewWorksiteChangeRepository(db *DB, logger *logger.Logger) WorksiteChangeRepository {
	return &worksiteChangeRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *worksiteChangeRepository) SaveChange(ctx context.Context, change models.QueuedWorksiteChange) (int64, error) {
	log := logger.FromContext(ctx)

	if change.WorksiteID <= 0 {
		return 0, ErrInvalidWorksiteID
	}

	query, args, err := buildInsertChangeQuery(change)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	err = r.withRetry(ctx, func() error {
		res, execErr := r.DB.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		id, execErr = res.LastInsertId()
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "worksiteChangeRepository.SaveChange").
			Int64("worksite_id", change.WorksiteID).
			Msg("failed to insert worksite change")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if id <= 0 {
		return 0, ErrChangeNotSaved
	}

	return id, nil
}

func (r *worksiteChangeRepository) GetQueuedChanges(ctx context.Context, worksiteID int64) ([]models.QueuedWorksiteChange, error) {
	query, args, err := buildSelectQueuedChangesQuery(worksiteID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	changes, err := r.queryChanges(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "worksiteChangeRepository.GetQueuedChanges").
			Int64("worksite_id", worksiteID).
			Msg("failed to query queued changes")
		return nil, err
	}
	return changes, nil
}

func (r *worksiteChangeRepository) GetLatestSyncedChange(ctx context.Context, worksiteID int64) (*models.QueuedWorksiteChange, error) {
	query, args, err := buildSelectLatestSyncedChangeQuery(worksiteID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	changes, err := r.queryChanges(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "worksiteChangeRepository.GetLatestSyncedChange").
			Int64("worksite_id", worksiteID).
			Msg("failed to query latest synced change")
		return nil, err
	}
	if len(changes) == 0 {
		return nil, nil
	}
	return &changes[0], nil
}

func (r *worksiteChangeRepository) HasSkippedChangesAfter(ctx context.Context, worksiteID, changeID int64) (bool, error) {
	query, args, err := buildCountSkippedAfterQuery(worksiteID, changeID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "worksiteChangeRepository.HasSkippedChangesAfter").
			Int64("worksite_id", worksiteID).
			Int64("change_id", changeID).
			Msg("failed to count skipped changes")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return count > 0, nil
}

func (r *worksiteChangeRepository) GetWorksitesPendingSync(ctx context.Context, limit int) ([]int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPendingWorksitesQuery(limit)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "worksiteChangeRepository.GetWorksitesPendingSync").
			Msg("failed to query pending worksites")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}

func (r *worksiteChangeRepository) UpdateSyncStatus(ctx context.Context, updates ...models.ChangeSyncUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	type statement struct {
		id    int64
		query string
		args  []any
	}
	statements := make([]statement, 0, len(updates))
	for _, u := range updates {
		query, args, err := buildUpdateSyncStatusQuery(u)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		statements = append(statements, statement{id: u.ID, query: query, args: args})
	}

	err := r.withRetry(ctx, func() error {
		tx, err := r.DB.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
		}
		defer func() { _ = tx.Rollback() }()

		for _, st := range statements {
			res, err := tx.ExecContext(ctx, st.query, st.args...)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			affected, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			if affected == 0 {
				return fmt.Errorf("%w: id %d", ErrChangeNotFound, st.id)
			}
		}

		if err = tx.Commit(); err != nil {
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "worksiteChangeRepository.UpdateSyncStatus").
			Int("updates", len(updates)).
			Msg("failed to update sync status")
		return err
	}

	return nil
}

func (r *worksiteChangeRepository) DeleteSyncedBefore(ctx context.Context, worksiteID, changeID int64) (int64, error) {
	query, args, err := buildDeleteSyncedBeforeQuery(worksiteID, changeID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var deleted int64
	err = r.withRetry(ctx, func() error {
		res, execErr := r.DB.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		deleted, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "worksiteChangeRepository.DeleteSyncedBefore").
			Int64("worksite_id", worksiteID).
			Int64("change_id", changeID).
			Msg("failed to prune synced changes")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}

func (r *worksiteChangeRepository) queryChanges(ctx context.Context, query string, args ...any) ([]models.QueuedWorksiteChange, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var changes []models.QueuedWorksiteChange
	for rows.Next() {
		var (
			c             models.QueuedWorksiteChange
			lastAttemptAt sql.NullTime
		)
		err = rows.Scan(
			&c.ID,
			&c.WorksiteID,
			&c.SyncUUID,
			&c.CreatedAt,
			&c.ModelVersion,
			&c.Payload,
			&c.IsPartiallySynced,
			&c.SyncAttempt,
			&lastAttemptAt,
			&c.ArchiveAction,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if lastAttemptAt.Valid {
			t := lastAttemptAt.Time
			c.LastSyncAttemptAt = &t
		}
		changes = append(changes, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return changes, nil
}
