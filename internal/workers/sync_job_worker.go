// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/crisiscleanup/worksite-sync/internal/logger"
	"github.com/crisiscleanup/worksite-sync/internal/service"
)

// SyncJobWorker runs the periodic pending-queue sync as a [Worker].
type SyncJobWorker struct {
	job      service.ClientSyncJob
	interval time.Duration
}

func NewSyncJobWorker(job service.ClientSyncJob, interval time.Duration) *SyncJobWorker {
	return &SyncJobWorker{job: job, interval: interval}
}

// Run implements Worker.
func (w *SyncJobWorker) Run(ctx context.Context) {
	logger.FromContext(ctx).Info().
		Str("func", "SyncJobWorker.Run").
		Dur("interval", w.interval).
		Msg("starting sync job")
	w.job.Start(ctx, w.interval)
}

// Stop implements Worker.
func (w *SyncJobWorker) Stop() {
	w.job.Stop()
}
