// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package report renders the outcome of sync passes for the terminal.
package report

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/crisiscleanup/worksite-sync/internal/service"
)

// Counts tallies the change results of one worksite pass.
type Counts struct {
	Synced  int
	Partial int
	Failed  int
	Aborted int
}

// CountResults tallies result. An aborted change is counted as aborted only.
func CountResults(result service.WorksiteSyncResult) Counts {
	var c Counts
	for _, r := range result.ChangeResults {
		switch {
		case r.IsAborted:
			c.Aborted++
		case r.IsSuccessful:
			c.Synced++
		case r.IsPartiallySuccessful:
			c.Partial++
		default:
			c.Failed++
		}
	}
	return c
}

// RenderSyncReport renders one line per worksite in id order, the first
// error of each worksite that did not fully sync, and the banner of the
// whole batch. passErr is the error returned next to results, if any.
func RenderSyncReport(results map[int64]service.WorksiteSyncResult, passErr error) string {
	var b strings.Builder

	var noInternet, expiredToken bool
	for _, id := range slices.Sorted(maps.Keys(results)) {
		result := results[id]
		c := CountResults(result)
		fmt.Fprintf(&b, "worksite %d: synced %d, partial %d, failed %d, aborted %d\n",
			id, c.Synced, c.Partial, c.Failed, c.Aborted)

		if err := firstError(result); err != nil {
			b.WriteString("    ")
			b.WriteString(errorStyle.Render(err.Error()))
			b.WriteString("\n")
		}

		switch result.Alert() {
		case service.SyncAlertNoInternet:
			noInternet = true
		case service.SyncAlertExpiredToken:
			expiredToken = true
		}
	}

	if passErr != nil {
		for _, line := range strings.Split(passErr.Error(), "\n") {
			b.WriteString(errorStyle.Render("error: " + line))
			b.WriteString("\n")
		}
	}

	page := renderPage(
		"SYNC REPORT",
		strings.TrimRight(b.String(), "\n"),
		fmt.Sprintf("%d worksite(s) processed", len(results)),
	)

	if alert := batchAlert(noInternet, expiredToken); alert != service.SyncAlertNone {
		page += "\n\n" + alertBoxStyle.Render(alert.String())
	}
	return page
}

// batchAlert keeps the per-worksite precedence: no internet wins.
func batchAlert(noInternet, expiredToken bool) service.SyncAlert {
	switch {
	case noInternet:
		return service.SyncAlertNoInternet
	case expiredToken:
		return service.SyncAlertExpiredToken
	default:
		return service.SyncAlertNone
	}
}

func firstError(result service.WorksiteSyncResult) error {
	for _, r := range result.ChangeResults {
		if r.Error != nil {
			return r.Error
		}
	}
	return nil
}
