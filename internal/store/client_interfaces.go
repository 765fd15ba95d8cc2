// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/crisiscleanup/worksite-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// WorksiteChangeRepository is the persisted queue of local worksite changes.
// A row is queued while its archive action is empty.
type WorksiteChangeRepository interface {
	// SaveChange enqueues change and returns the id assigned to it.
	SaveChange(ctx context.Context, change models.QueuedWorksiteChange) (int64, error)

	// GetQueuedChanges returns the queued changes of the worksite in
	// creation order.
	GetQueuedChanges(ctx context.Context, worksiteID int64) ([]models.QueuedWorksiteChange, error)

	// GetLatestSyncedChange returns the newest change archived as synced, or
	// nil when the worksite has none.
	GetLatestSyncedChange(ctx context.Context, worksiteID int64) (*models.QueuedWorksiteChange, error)

	// HasSkippedChangesAfter reports whether a change newer than changeID was
	// archived as skipped.
	HasSkippedChangesAfter(ctx context.Context, worksiteID, changeID int64) (bool, error)

	// GetWorksitesPendingSync returns up to limit worksite ids with queued
	// changes, oldest queued change first.
	GetWorksitesPendingSync(ctx context.Context, limit int) ([]int64, error)

	// UpdateSyncStatus applies the outcome of a sync pass in one transaction.
	UpdateSyncStatus(ctx context.Context, updates ...models.ChangeSyncUpdate) error

	// DeleteSyncedBefore removes synced rows of the worksite older than
	// changeID and returns how many were removed.
	DeleteSyncedBefore(ctx context.Context, worksiteID, changeID int64) (int64, error)
}

// WorksiteIDMapRepository persists the local to network id maps of worksites.
type WorksiteIDMapRepository interface {
	// GetIDMaps returns the maps of the worksite; empty maps when none exist.
	GetIDMaps(ctx context.Context, worksiteID int64) (models.IDMaps, error)

	// SaveIDMaps upserts every positive entry of idMaps.
	SaveIDMaps(ctx context.Context, worksiteID int64, idMaps models.IDMaps) error
}
