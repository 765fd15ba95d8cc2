// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "maps"

// ID map entity types as persisted by the local store.
const (
	IDMapWorksite        = "worksite"
	IDMapFlag            = "flag"
	IDMapNote            = "note"
	IDMapWorkType        = "work_type"
	IDMapWorkTypeRequest = "work_type_request"
)

// IDMaps bridges local ids to remote ids for one worksite. Flags, Notes and
// WorkTypes map local id to network id; WorkTypeRequests maps a work type
// code to the id of the pending transfer request. A missing or non-positive
// entry means the remote has not confirmed the entity.
type IDMaps struct {
	NetworkWorksiteID int64
	Flags             map[int64]int64
	Notes             map[int64]int64
	WorkTypes         map[int64]int64
	WorkTypeRequests  map[string]int64
}

// NewIDMaps returns empty, writable id maps.
func NewIDMaps() IDMaps {
	return IDMaps{
		Flags:            make(map[int64]int64),
		Notes:            make(map[int64]int64),
		WorkTypes:        make(map[int64]int64),
		WorkTypeRequests: make(map[string]int64),
	}
}

// Clone returns a deep copy so the caller may mutate it independently.
func (m IDMaps) Clone() IDMaps {
	c := NewIDMaps()
	c.NetworkWorksiteID = m.NetworkWorksiteID
	maps.Copy(c.Flags, m.Flags)
	maps.Copy(c.Notes, m.Notes)
	maps.Copy(c.WorkTypes, m.WorkTypes)
	maps.Copy(c.WorkTypeRequests, m.WorkTypeRequests)
	return c
}

// FlagID returns the confirmed network id of a local flag, or 0.
func (m IDMaps) FlagID(localID int64) int64 {
	return positive(m.Flags[localID])
}

// NoteID returns the confirmed network id of a local note, or 0.
func (m IDMaps) NoteID(localID int64) int64 {
	return positive(m.Notes[localID])
}

// WorkTypeID returns the confirmed network id of a local work type, or 0.
func (m IDMaps) WorkTypeID(localID int64) int64 {
	return positive(m.WorkTypes[localID])
}

func positive(id int64) int64 {
	if id > 0 {
		return id
	}
	return 0
}
