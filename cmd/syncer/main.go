// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/crisiscleanup/worksite-sync/internal/adapter"
	"github.com/crisiscleanup/worksite-sync/internal/config"
	"github.com/crisiscleanup/worksite-sync/internal/logger"
	"github.com/crisiscleanup/worksite-sync/internal/report"
	"github.com/crisiscleanup/worksite-sync/internal/service"
	"github.com/crisiscleanup/worksite-sync/internal/store"
	"github.com/crisiscleanup/worksite-sync/internal/workers"
	"github.com/crisiscleanup/worksite-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(report.RenderBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)))

	log := logger.NewClientLogger("worksite-syncer")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	gateway, err := adapter.NewHTTPWorksiteGateway(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create worksite gateway")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	services := service.NewClientServices(storages, gateway, *cfg)

	if cfg.Workers.RunOnce {
		results, err := services.SyncService.SyncPending(ctx, service.PendingBatchSize)
		fmt.Println(report.RenderSyncReport(results, err))
		if err != nil {
			log.Error().Err(err).Msg("sync pass finished with errors")
		}
		return
	}

	w := workers.NewWorkers(workers.NewSyncJobWorker(services.SyncJob, cfg.Workers.SyncInterval))
	w.Run(ctx)
	log.Info().Dur("interval", cfg.Workers.SyncInterval).Msg("sync job started")

	<-ctx.Done()
	w.Stop()
	log.Info().Msg("sync job stopped")
}
