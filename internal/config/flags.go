// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// IDList is a comma separated list of positive ids.
// It implements the flag.Value interface.
type IDList []int64

// ParseFlags parses all configuration flags from os.Args.
//
// Flags:
//
//	-a remote API base URL
//	-d database DSN
//	-c/-config json file path with configs
//	-access-token API access token
//	-refresh-token API refresh token
//	-affiliate-orgs comma separated affiliate organization ids
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-sync-interval background sync period (e.g., "5m")
//	-concurrency worksites synced in parallel
//	-once run one sync pass and exit
//	-note-window note duplicate window (e.g., "12h")
//	-max-attempts failed passes before a change is skipped
func ParseFlags() (*StructuredConfig, error) {
	var remoteAddress string
	var databaseDSN string
	var jsonConfigPath string
	var accessToken, refreshToken string
	var affiliates IDList
	var requestTimeout, syncInterval, noteWindow time.Duration
	var concurrency, maxAttempts int
	var runOnce bool

	flag.StringVar(&remoteAddress, "a", "", "Remote API base URL")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&accessToken, "access-token", "", "API access token")
	flag.StringVar(&refreshToken, "refresh-token", "", "API refresh token")
	flag.Var(&affiliates, "affiliate-orgs", "Comma separated affiliate organization ids")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync period (e.g., 5m)")
	flag.IntVar(&concurrency, "concurrency", 0, "Worksites synced in parallel")
	flag.BoolVar(&runOnce, "once", false, "Run one sync pass and exit")
	flag.DurationVar(&noteWindow, "note-window", 0, "Note duplicate window (e.g., 12h)")
	flag.IntVar(&maxAttempts, "max-attempts", 0, "Failed passes before a change is skipped")

	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			AccessToken:              accessToken,
			RefreshToken:             refreshToken,
			AffiliateOrganizationIDs: affiliates,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
			Concurrency:  concurrency,
			RunOnce:      runOnce,
		},
		Sync: Sync{
			NoteDuplicateWindow: noteWindow,
			MaxSyncAttempts:     maxAttempts,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns the ids joined by commas.
func (l *IDList) String() string {
	if l == nil {
		return ""
	}
	parts := make([]string, 0, len(*l))
	for _, id := range *l {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	return strings.Join(parts, ",")
}

// Set parses a comma separated list of positive ids and appends them.
// Blank entries are ignored.
func (l *IDList) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return err
		}
		if id < 1 {
			return errors.New("organization id is a positive integer")
		}
		*l = append(*l, id)
	}
	return nil
}
