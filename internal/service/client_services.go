// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/crisiscleanup/worksite-sync/internal/adapter"
	"github.com/crisiscleanup/worksite-sync/internal/config"
	"github.com/crisiscleanup/worksite-sync/internal/store"
	"github.com/crisiscleanup/worksite-sync/internal/utils"
)

type ClientServices struct {
	TokenService     TokenService
	ChangeSetService ChangeSetOperator
	Serializer       ChangeSerializer
	SyncService      ClientWorksiteSyncService
	SyncJob          ClientSyncJob
}

func NewClientServices(storages *store.ClientStorages, gateway adapter.WorksiteGateway, cfg config.ClientConfig) *ClientServices {
	tokenSvc := NewTokenService(gateway, cfg.App.AccessToken, cfg.App.RefreshToken)
	operator := NewChangeSetOperator(cfg.Sync.NoteDuplicateWindow)
	serializer := NewChangeSerializer()

	syncSvc := NewClientWorksiteSyncService(WorksiteSyncDeps{
		Changes:    storages.ChangeRepository,
		IDMaps:     storages.IDMapRepository,
		Gateway:    gateway,
		Operator:   operator,
		Serializer: serializer,
		Tokens:     tokenSvc,
		SessionIDs: utils.NewUUIDGenerator(),
	}, WorksiteSyncOptions{
		AffiliateOrganizationIDs: cfg.App.AffiliateOrganizationIDs,
		MaxSyncAttempts:          cfg.Sync.MaxSyncAttempts,
		Concurrency:              cfg.Workers.Concurrency,
	})

	return &ClientServices{
		TokenService:     tokenSvc,
		ChangeSetService: operator,
		Serializer:       serializer,
		SyncService:      syncSvc,
		SyncJob:          NewClientSyncJob(syncSvc),
	}
}
