// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the worksite
// sync engine. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the credentials and organization scope of the syncing user.
	App App `envPrefix:"APP_"`

	// Storage holds the local change queue database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the Crisis Cleanup API address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the background sync job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Sync holds the change replay tuning knobs.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration of the local persistence backend.
type Storage struct {
	// DB holds the SQLite database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds the identity the engine syncs as.
type App struct {
	// AccessToken is the bearer token sent with every API request.
	// Env: APP_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`

	// RefreshToken is exchanged for a new access token once the current one
	// expires.
	// Env: APP_REFRESH_TOKEN
	RefreshToken string `env:"REFRESH_TOKEN"`

	// AffiliateOrganizationIDs lists the user's organization and its
	// affiliates. Claims held by these organizations are never the target of
	// a transfer request or release.
	// Env: APP_AFFILIATE_ORG_IDS (comma separated)
	AffiliateOrganizationIDs []int64 `env:"AFFILIATE_ORG_IDS" envSeparator:","`
}

// DB holds connection settings for the local database.
type DB struct {
	// DSN is the SQLite data source name, usually a file path
	// (e.g. "file:worksite-sync.db?_foreign_keys=on").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the settings of the outbound HTTP client.
type Adapter struct {
	// HTTPAddress is the base URL of the Crisis Cleanup API
	// (e.g. "https://api.crisiscleanup.org"). A missing scheme means https.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is the period of the background sync job.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// Concurrency limits how many worksites sync at the same time.
	// Env: WORKERS_CONCURRENCY
	Concurrency int `env:"CONCURRENCY"`

	// RunOnce makes the syncer run one pass over the pending queue and exit
	// instead of starting the periodic job.
	// Env: WORKERS_RUN_ONCE
	RunOnce bool `env:"RUN_ONCE"`
}

// Sync holds the change replay settings.
type Sync struct {
	// NoteDuplicateWindow is how close in time a remote note with the same
	// text must be for a local note to count as already synced.
	// Env: SYNC_NOTE_DUPLICATE_WINDOW
	NoteDuplicateWindow time.Duration `env:"NOTE_DUPLICATE_WINDOW"`

	// MaxSyncAttempts is how many failed passes a change survives before it
	// is skipped.
	// Env: SYNC_MAX_ATTEMPTS
	MaxSyncAttempts int `env:"MAX_ATTEMPTS"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources. For every field the first source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
