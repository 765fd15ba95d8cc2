// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strconv"

	"github.com/crisiscleanup/worksite-sync/internal/logger"
	"github.com/crisiscleanup/worksite-sync/models"
)

type worksiteIDMapRepository struct {
	*DB
	logger *logger.Logger
}

func NewWorksiteIDMapRepository(db *DB, logger *logger.Logger) WorksiteIDMapRepository {
	return &worksiteIDMapRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *worksiteIDMapRepository) GetIDMaps(ctx context.Context, worksiteID int64) (models.IDMaps, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectIDMapsQuery(worksiteID)
	if err != nil {
		return models.IDMaps{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "worksiteIDMapRepository.GetIDMaps").
			Int64("worksite_id", worksiteID).
			Msg("failed to query id maps")
		return models.IDMaps{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	idMaps := models.NewIDMaps()
	for rows.Next() {
		var e idMapEntry
		if err = rows.Scan(&e.entityType, &e.localKey, &e.networkID); err != nil {
			return models.IDMaps{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if err = putIDMapEntry(&idMaps, e); err != nil {
			// строка с битым ключом не должна ломать весь sync
			log.Warn().Err(err).
				Str("func", "worksiteIDMapRepository.GetIDMaps").
				Int64("worksite_id", worksiteID).
				Str("entity_type", e.entityType).
				Str("local_key", e.localKey).
				Msg("skipping malformed id map row")
		}
	}
	if err = rows.Err(); err != nil {
		return models.IDMaps{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return idMaps, nil
}

func (r *worksiteIDMapRepository) SaveIDMaps(ctx context.Context, worksiteID int64, idMaps models.IDMaps) error {
	if worksiteID <= 0 {
		return ErrInvalidWorksiteID
	}

	entries := idMapEntries(worksiteID, idMaps)
	if len(entries) == 0 {
		return nil
	}

	query, args, err := buildUpsertIDMapsQuery(worksiteID, entries)
	if err != nil {
		return err
	}

	err = r.withRetry(ctx, func() error {
		_, execErr := r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "worksiteIDMapRepository.SaveIDMaps").
			Int64("worksite_id", worksiteID).
			Int("entries", len(entries)).
			Msg("failed to upsert id maps")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func putIDMapEntry(idMaps *models.IDMaps, e idMapEntry) error {
	if e.entityType == models.IDMapWorkTypeRequest {
		idMaps.WorkTypeRequests[e.localKey] = e.networkID
		return nil
	}

	localID, err := strconv.ParseInt(e.localKey, 10, 64)
	if err != nil {
		return fmt.Errorf("parse local key: %w", err)
	}

	switch e.entityType {
	case models.IDMapWorksite:
		idMaps.NetworkWorksiteID = e.networkID
	case models.IDMapFlag:
		idMaps.Flags[localID] = e.networkID
	case models.IDMapNote:
		idMaps.Notes[localID] = e.networkID
	case models.IDMapWorkType:
		idMaps.WorkTypes[localID] = e.networkID
	default:
		return fmt.Errorf("unknown entity type %q", e.entityType)
	}
	return nil
}
