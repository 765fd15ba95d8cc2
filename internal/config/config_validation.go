// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] is usable.
// Only values that no source could ever make valid are rejected here; the
// per-runtime rules live in [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.Concurrency < 0 {
		return ErrInvalidWorkerConfigs
	}
	if cfg.Sync.MaxSyncAttempts < 0 || cfg.Sync.NoteDuplicateWindow < 0 {
		return ErrInvalidSyncConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.Concurrency <= 0 || (!cfg.Workers.RunOnce && cfg.Workers.SyncInterval <= 0) {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.AccessToken == "" && cfg.App.RefreshToken == "" {
		return ErrInvalidAppConfigs
	}
	for _, id := range cfg.App.AffiliateOrganizationIDs {
		if id <= 0 {
			return ErrInvalidAppConfigs
		}
	}

	if cfg.Sync.MaxSyncAttempts <= 0 || cfg.Sync.NoteDuplicateWindow <= 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
