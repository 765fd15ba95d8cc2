// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/crisiscleanup/worksite-sync/internal/logger"
)

// PendingBatchSize is how many worksites one job tick syncs at most.
const PendingBatchSize = 100

type clientSyncJob struct {
	syncService ClientWorksiteSyncService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a clientSyncJob that calls syncService.SyncPending
// on a ticker. The job is idle until Start is called.
func NewClientSyncJob(syncService ClientWorksiteSyncService) ClientSyncJob {
	return &clientSyncJob{syncService: syncService}
}

// Start implements ClientSyncJob. It stops any previously running job, then
// launches a background goroutine that calls SyncPending every interval. If
// interval is zero or negative it defaults to 5 minutes. The goroutine exits
// when ctx is cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

func (j *clientSyncJob) tick(ctx context.Context) {
	log := logger.FromContext(ctx)

	results, err := j.syncService.SyncPending(ctx, PendingBatchSize)
	if err != nil {
		log.Err(err).Str("func", "clientSyncJob.tick").Msg("sync pass finished with errors")
	}

	for worksiteID, result := range results {
		if alert := result.Alert(); alert != SyncAlertNone {
			log.Warn().
				Str("func", "clientSyncJob.tick").
				Int64("worksite_id", worksiteID).
				Msg(alert.String())
		}
	}
}

// Stop implements ClientSyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
