// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// WorksiteChange is one local edit session waiting to be synced.
// A nil Start marks the creation of a new worksite.
type WorksiteChange struct {
	Start                *WorksiteSnapshot
	Change               WorksiteSnapshot
	RequestWorkTypes     *WorkTypeTransfer
	ReleaseWorkTypes     *WorkTypeTransfer
	IsWorksiteDataChange bool
}

// WorkTypeTransfer asks the remote to transfer (request) or give up
// (release) the claims on the listed work type codes.
type WorkTypeTransfer struct {
	Reason    string   `json:"reason"`
	WorkTypes []string `json:"work_types"`
}

// HasValue reports whether the transfer names a reason and at least one code.
func (t *WorkTypeTransfer) HasValue() bool {
	return t != nil && strings.TrimSpace(t.Reason) != "" && len(t.WorkTypes) > 0
}

// IsWorkTypeTransferChange reports whether the change requests or releases
// work types.
func (c WorksiteChange) IsWorkTypeTransferChange() bool {
	return c.RequestWorkTypes.HasValue() || c.ReleaseWorkTypes.HasValue()
}

// IsNew reports whether the change creates the worksite.
func (c WorksiteChange) IsNew() bool {
	return c.Start == nil
}

// Change queue archive actions.
const (
	ArchiveActionNone    = ""
	ArchiveActionSynced  = "synced"
	ArchiveActionSkipped = "skipped"
)

// QueuedWorksiteChange is a persisted change row. Payload holds the
// serialized WorksiteChange in format ModelVersion; Change is populated
// once the payload is deserialized.
type QueuedWorksiteChange struct {
	ID                int64
	WorksiteID        int64
	SyncUUID          string
	CreatedAt         time.Time
	ModelVersion      int
	Payload           string
	IsPartiallySynced bool
	SyncAttempt       int
	LastSyncAttemptAt *time.Time
	ArchiveAction     string

	Change WorksiteChange
}

// ChangeSyncUpdate records the outcome of one sync attempt for a queued row.
// IsAttempt is false for rows archived without being sent (skipped).
type ChangeSyncUpdate struct {
	ID                int64
	SyncUUID          string
	IsPartiallySynced bool
	IsAttempt         bool
	ArchiveAction     string
	AttemptedAt       time.Time
}
