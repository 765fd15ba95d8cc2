// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// WorksiteChangeSet is the computed set of remote writes that moves the
// remote worksite toward a local snapshot. A nil Worksite means the core
// fields did not change; a nil IsOrgMember means the favorite is untouched.
type WorksiteChangeSet struct {
	UpdatedAtFallback time.Time
	Worksite          *NetworkWorksitePush
	IsOrgMember       *bool
	ExtraNotes        []LocalNote
	NewFlags          []LocalFlag
	DeleteFlagIDs     []int64
	DeleteWorkTypeIDs []int64
	WorkTypeChanges   []WorkTypeChange
}

// LocalFlag pairs a flag to create with the local id it is tracked by.
type LocalFlag struct {
	LocalID int64
	Flag    NetworkFlag
}

// LocalNote pairs a note to create with the local id it is tracked by.
type LocalNote struct {
	LocalID int64
	Note    NetworkNote
}

// WorkTypeChange describes a claim and/or status write for one work type.
// NetworkID <= 0 means the remote does not know the work type yet.
type WorkTypeChange struct {
	LocalID        int64
	NetworkID      int64
	WorkType       WorkType
	ChangedAt      time.Time
	IsClaimChange  bool
	IsStatusChange bool
}

// HasChange reports whether the work type needs any write.
func (c WorkTypeChange) HasChange() bool {
	return c.IsClaimChange || c.IsStatusChange
}

// IsEmpty reports whether the change set requires no remote write.
func (s WorksiteChangeSet) IsEmpty() bool {
	return s.Worksite == nil &&
		s.IsOrgMember == nil &&
		len(s.ExtraNotes) == 0 &&
		len(s.NewFlags) == 0 &&
		len(s.DeleteFlagIDs) == 0 &&
		len(s.DeleteWorkTypeIDs) == 0 &&
		len(s.WorkTypeChanges) == 0
}
