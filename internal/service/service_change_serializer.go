// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/crisiscleanup/worksite-sync/models"
)

// Change payload format versions.
const (
	// ChangeModelVersionDataOnly holds start and change snapshots only.
	ChangeModelVersionDataOnly = 1
	// ChangeModelVersionTransfers adds the data change discriminator and
	// work type transfers.
	ChangeModelVersionTransfers = 2

	CurrentChangeModelVersion = ChangeModelVersionTransfers
)

type changeRecordV1 struct {
	Start  *models.WorksiteSnapshot `json:"start"`
	Change models.WorksiteSnapshot  `json:"change"`
}

type changeRecordV2 struct {
	IsWorksiteDataChange bool                     `json:"is_worksite_data_change"`
	Start                *models.WorksiteSnapshot `json:"start"`
	Change               models.WorksiteSnapshot  `json:"change"`
	RequestWorkTypes     *models.WorkTypeTransfer `json:"request_work_types,omitempty"`
	ReleaseWorkTypes     *models.WorkTypeTransfer `json:"release_work_types,omitempty"`
}

type changeSerializer struct{}

// NewChangeSerializer returns the serializer of queued worksite changes.
func NewChangeSerializer() ChangeSerializer {
	return &changeSerializer{}
}

// Serialize implements ChangeSerializer.
func (s *changeSerializer) Serialize(change models.WorksiteChange, idMaps models.IDMaps) (int, string, error) {
	record := changeRecordV2{
		IsWorksiteDataChange: change.IsWorksiteDataChange,
		Change:               withNetworkIDs(change.Change, idMaps),
		RequestWorkTypes:     change.RequestWorkTypes,
		ReleaseWorkTypes:     change.ReleaseWorkTypes,
	}
	if change.Start != nil {
		start := withNetworkIDs(*change.Start, idMaps)
		record.Start = &start
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return 0, "", fmt.Errorf("marshal worksite change: %w", err)
	}
	return CurrentChangeModelVersion, string(payload), nil
}

// Deserialize implements ChangeSerializer.
func (s *changeSerializer) Deserialize(version int, payload string) (models.WorksiteChange, error) {
	switch version {
	case ChangeModelVersionDataOnly:
		var record changeRecordV1
		if err := json.Unmarshal([]byte(payload), &record); err != nil {
			return models.WorksiteChange{}, fmt.Errorf("%w: %w", ErrInvalidChangePayload, err)
		}
		return models.WorksiteChange{
			Start:                record.Start,
			Change:               record.Change,
			IsWorksiteDataChange: true,
		}, nil

	case ChangeModelVersionTransfers:
		var record changeRecordV2
		if err := json.Unmarshal([]byte(payload), &record); err != nil {
			return models.WorksiteChange{}, fmt.Errorf("%w: %w", ErrInvalidChangePayload, err)
		}
		return models.WorksiteChange{
			Start:                record.Start,
			Change:               record.Change,
			RequestWorkTypes:     record.RequestWorkTypes,
			ReleaseWorkTypes:     record.ReleaseWorkTypes,
			IsWorksiteDataChange: record.IsWorksiteDataChange,
		}, nil
	}

	return models.WorksiteChange{}, fmt.Errorf("%w: %d", ErrUnsupportedChangeVersion, version)
}

// withNetworkIDs returns a copy of snapshot with unconfirmed network ids
// filled from idMaps.
func withNetworkIDs(snapshot models.WorksiteSnapshot, idMaps models.IDMaps) models.WorksiteSnapshot {
	if snapshot.Core.NetworkID <= 0 && idMaps.NetworkWorksiteID > 0 {
		snapshot.Core.NetworkID = idMaps.NetworkWorksiteID
	}

	snapshot.Flags = slices.Clone(snapshot.Flags)
	for i := range snapshot.Flags {
		if snapshot.Flags[i].Flag.ID <= 0 {
			snapshot.Flags[i].Flag.ID = idMaps.FlagID(snapshot.Flags[i].LocalID)
		}
	}

	snapshot.Notes = slices.Clone(snapshot.Notes)
	for i := range snapshot.Notes {
		if snapshot.Notes[i].Note.ID <= 0 {
			snapshot.Notes[i].Note.ID = idMaps.NoteID(snapshot.Notes[i].LocalID)
		}
	}

	snapshot.WorkTypes = slices.Clone(snapshot.WorkTypes)
	for i := range snapshot.WorkTypes {
		if snapshot.WorkTypes[i].WorkType.ID <= 0 {
			snapshot.WorkTypes[i].WorkType.ID = idMaps.WorkTypeID(snapshot.WorkTypes[i].LocalID)
		}
	}

	return snapshot
}
