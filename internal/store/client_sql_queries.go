// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/crisiscleanup/worksite-sync/models"
)

const (
	worksiteChangesTable = "worksite_changes"
	worksiteIDMapsTable  = "worksite_id_maps"
)

// SQLite uses "?" placeholders.
var sqlb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var changeColumns = []string{
	"id",
	"worksite_id",
	"sync_uuid",
	"created_at",
	"model_version",
	"payload",
	"is_partially_synced",
	"sync_attempt",
	"last_sync_attempt_at",
	"archive_action",
}

func buildInsertChangeQuery(change models.QueuedWorksiteChange) (string, []any, error) {
	return sqlb.Insert(worksiteChangesTable).
		Columns(
			"worksite_id",
			"sync_uuid",
			"created_at",
			"model_version",
			"payload",
			"is_partially_synced",
			"sync_attempt",
			"archive_action",
		).
		Values(
			change.WorksiteID,
			change.SyncUUID,
			change.CreatedAt,
			change.ModelVersion,
			change.Payload,
			change.IsPartiallySynced,
			change.SyncAttempt,
			models.ArchiveActionNone,
		).
		ToSql()
}

func buildSelectQueuedChangesQuery(worksiteID int64) (string, []any, error) {
	return sqlb.Select(changeColumns...).
		From(worksiteChangesTable).
		Where(sq.Eq{"worksite_id": worksiteID}).
		Where(sq.Eq{"archive_action": models.ArchiveActionNone}).
		OrderBy("id ASC").
		ToSql()
}

func buildSelectLatestSyncedChangeQuery(worksiteID int64) (string, []any, error) {
	return sqlb.Select(changeColumns...).
		From(worksiteChangesTable).
		Where(sq.Eq{"worksite_id": worksiteID}).
		Where(sq.Eq{"archive_action": models.ArchiveActionSynced}).
		OrderBy("id DESC").
		Limit(1).
		ToSql()
}

func buildCountSkippedAfterQuery(worksiteID, changeID int64) (string, []any, error) {
	return sqlb.Select("COUNT(*)").
		From(worksiteChangesTable).
		Where(sq.Eq{"worksite_id": worksiteID}).
		Where(sq.Eq{"archive_action": models.ArchiveActionSkipped}).
		Where(sq.Gt{"id": changeID}).
		ToSql()
}

func buildSelectPendingWorksitesQuery(limit int) (string, []any, error) {
	if limit <= 0 {
		return "", nil, fmt.Errorf("%w: limit must be positive, got %d", ErrBuildingSQLQuery, limit)
	}
	return sqlb.Select("worksite_id").
		From(worksiteChangesTable).
		Where(sq.Eq{"archive_action": models.ArchiveActionNone}).
		GroupBy("worksite_id").
		OrderBy("MIN(id) ASC").
		Limit(uint64(limit)).
		ToSql()
}

// buildUpdateSyncStatusQuery never clears is_partially_synced: once the
// remote knows the worksite, it keeps knowing it.
func buildUpdateSyncStatusQuery(update models.ChangeSyncUpdate) (string, []any, error) {
	b := sqlb.Update(worksiteChangesTable).
		Set("archive_action", update.ArchiveAction)

	if update.IsPartiallySynced {
		b = b.Set("is_partially_synced", true)
	}
	if update.IsAttempt {
		b = b.Set("sync_attempt", sq.Expr("sync_attempt + 1")).
			Set("last_sync_attempt_at", update.AttemptedAt)
	}
	if update.SyncUUID != "" {
		b = b.Set("sync_uuid", update.SyncUUID)
	}

	return b.Where(sq.Eq{"id": update.ID}).ToSql()
}

func buildDeleteSyncedBeforeQuery(worksiteID, changeID int64) (string, []any, error) {
	return sqlb.Delete(worksiteChangesTable).
		Where(sq.Eq{"worksite_id": worksiteID}).
		Where(sq.Eq{"archive_action": models.ArchiveActionSynced}).
		Where(sq.Lt{"id": changeID}).
		ToSql()
}

func buildSelectIDMapsQuery(worksiteID int64) (string, []any, error) {
	return sqlb.Select("entity_type", "local_key", "network_id").
		From(worksiteIDMapsTable).
		Where(sq.Eq{"worksite_id": worksiteID}).
		OrderBy("entity_type ASC", "local_key ASC").
		ToSql()
}

// idMapEntry is one persisted row of worksite_id_maps.
type idMapEntry struct {
	entityType string
	localKey   string
	networkID  int64
}

// idMapEntries flattens the positive entries of idMaps in a stable order.
func idMapEntries(worksiteID int64, idMaps models.IDMaps) []idMapEntry {
	var entries []idMapEntry
	if idMaps.NetworkWorksiteID > 0 {
		entries = append(entries, idMapEntry{models.IDMapWorksite, strconv.FormatInt(worksiteID, 10), idMaps.NetworkWorksiteID})
	}

	appendLocal := func(entityType string, m map[int64]int64) {
		for _, localID := range slices.Sorted(maps.Keys(m)) {
			if m[localID] > 0 {
				entries = append(entries, idMapEntry{entityType, strconv.FormatInt(localID, 10), m[localID]})
			}
		}
	}
	appendLocal(models.IDMapFlag, idMaps.Flags)
	appendLocal(models.IDMapNote, idMaps.Notes)
	appendLocal(models.IDMapWorkType, idMaps.WorkTypes)

	for _, code := range slices.Sorted(maps.Keys(idMaps.WorkTypeRequests)) {
		if id := idMaps.WorkTypeRequests[code]; id > 0 {
			entries = append(entries, idMapEntry{models.IDMapWorkTypeRequest, code, id})
		}
	}

	return entries
}

func buildUpsertIDMapsQuery(worksiteID int64, entries []idMapEntry) (string, []any, error) {
	if len(entries) == 0 {
		return "", nil, fmt.Errorf("%w: no id map entries", ErrBuildingSQLQuery)
	}

	b := sqlb.Insert(worksiteIDMapsTable).
		Columns("worksite_id", "entity_type", "local_key", "network_id")
	for _, e := range entries {
		b = b.Values(worksiteID, e.entityType, e.localKey, e.networkID)
	}

	return b.Suffix("ON CONFLICT (worksite_id, entity_type, local_key) DO UPDATE SET network_id = excluded.network_id").
		ToSql()
}
