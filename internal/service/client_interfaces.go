// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/crisiscleanup/worksite-sync/models"
)

// ClientWorksiteSyncService queues local worksite changes and replays them
// against the remote.
type ClientWorksiteSyncService interface {
	// EnqueueChange serializes change with the worksite's known network ids
	// and appends it to the queue. Returns the id of the queued row.
	EnqueueChange(ctx context.Context, worksiteID int64, change models.WorksiteChange) (int64, error)

	// SyncWorksite replays every queued change of worksiteID in creation
	// order and records the outcome in the queue. Returns
	// ErrConcurrentProcessing when a pass over the same worksite is in
	// flight. Connectivity and authorization failures end the pass early and
	// are reported through the result, not the error.
	SyncWorksite(ctx context.Context, worksiteID int64) (WorksiteSyncResult, error)

	// SyncWorksites syncs several worksites concurrently. Worksites that fail
	// are missing from the map and their errors are joined.
	SyncWorksites(ctx context.Context, worksiteIDs []int64) (map[int64]WorksiteSyncResult, error)

	// SyncPending syncs up to limit worksites with queued changes, oldest
	// change first.
	SyncPending(ctx context.Context, limit int) (map[int64]WorksiteSyncResult, error)
}

// ClientSyncJob defines the contract for a background sync worker that
// periodically calls SyncPending.
type ClientSyncJob interface {
	// Start launches the background sync goroutine. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
