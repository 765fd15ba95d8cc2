// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
	"time"
)

// Defaults applied by [GetClientConfig] to unset fields.
const (
	DefaultNoteDuplicateWindow = 12 * time.Hour
	DefaultMaxSyncAttempts     = 5
	DefaultConcurrency         = 4
)

// ClientApp holds the identity the engine syncs as.
type ClientApp struct {
	// AccessToken is the bearer token installed on the HTTP gateway.
	AccessToken string
	// RefreshToken is exchanged for a new access token on expiry.
	RefreshToken string
	// AffiliateOrganizationIDs is the user's organization and its affiliates.
	AffiliateOrganizationIDs []int64
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the Crisis Cleanup API.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the sync job runs.
	SyncInterval time.Duration
	// Concurrency limits the worksites synced in parallel.
	Concurrency int
	// RunOnce runs a single pass instead of the periodic job.
	RunOnce bool
}

// ClientSync contains the change replay settings.
type ClientSync struct {
	NoteDuplicateWindow time.Duration
	MaxSyncAttempts     int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains the credentials and organization scope.
	App ClientApp
	// Adapter contains the API address and timeout.
	Adapter ClientAdapter
	// Storage contains local storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
	// Sync contains change replay settings.
	Sync ClientSync
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// newClientConfig projects cfg to the client view and fills defaults.
func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			AccessToken:              cfg.App.AccessToken,
			RefreshToken:             cfg.App.RefreshToken,
			AffiliateOrganizationIDs: slices.Clone(cfg.App.AffiliateOrganizationIDs),
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			SyncInterval: cfg.Workers.SyncInterval,
			Concurrency:  cfg.Workers.Concurrency,
			RunOnce:      cfg.Workers.RunOnce,
		},
		Sync: ClientSync{
			NoteDuplicateWindow: cfg.Sync.NoteDuplicateWindow,
			MaxSyncAttempts:     cfg.Sync.MaxSyncAttempts,
		},
	}

	if clientCfg.Workers.Concurrency == 0 {
		clientCfg.Workers.Concurrency = DefaultConcurrency
	}
	if clientCfg.Sync.NoteDuplicateWindow == 0 {
		clientCfg.Sync.NoteDuplicateWindow = DefaultNoteDuplicateWindow
	}
	if clientCfg.Sync.MaxSyncAttempts == 0 {
		clientCfg.Sync.MaxSyncAttempts = DefaultMaxSyncAttempts
	}

	return clientCfg
}
