// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/crisiscleanup/worksite-sync/models"
)

var fixtureTime = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

// newTestSnapshot собирает снимок worksite с заполненными базовыми полями
func newTestSnapshot(networkID int64) models.WorksiteSnapshot {
	updatedAt := fixtureTime
	return models.WorksiteSnapshot{
		Core: models.CoreSnapshot{
			ID:                    1,
			Address:               "123 Main St",
			AutoContactFrequencyT: "formOptions.often",
			City:                  "Springfield",
			County:                "Greene",
			FormData:              map[string]models.WorksiteFormValue{},
			IncidentID:            8,
			Latitude:              37.2,
			Longitude:             -93.3,
			Name:                  "Jane Doe",
			NetworkID:             networkID,
			Phone1:                "555-0100",
			PostalCode:            "65801",
			State:                 "MO",
			UpdatedAt:             &updatedAt,
		},
	}
}

// newTestRemote returns the remote record matching newTestSnapshot.
func newTestRemote(networkID int64) models.NetworkWorksiteFull {
	return models.NetworkWorksiteFull{
		ID:                    networkID,
		Address:               "123 Main St",
		AutoContactFrequencyT: "formOptions.often",
		City:                  "Springfield",
		County:                ptr("Greene"),
		Incident:              8,
		Location:              models.NewLocationPoint(37.2, -93.3),
		Name:                  "Jane Doe",
		Phone1:                "555-0100",
		PostalCode:            ptr("65801"),
		State:                 "MO",
		UpdatedAt:             fixtureTime,
	}
}

func flagSnapshot(localID, networkID int64, reason string) models.FlagSnapshot {
	return models.FlagSnapshot{
		LocalID: localID,
		Flag:    models.Flag{ID: networkID, ReasonT: reason, CreatedAt: fixtureTime},
	}
}

func noteSnapshot(localID, networkID int64, text string, createdAt time.Time) models.NoteSnapshot {
	return models.NoteSnapshot{
		LocalID: localID,
		Note:    models.Note{ID: networkID, Note: text, CreatedAt: createdAt},
	}
}

func workTypeSnapshot(localID, networkID int64, code, status string, orgClaim *int64) models.WorkTypeSnapshot {
	return models.WorkTypeSnapshot{
		LocalID: localID,
		WorkType: models.WorkType{
			ID:       networkID,
			OrgClaim: orgClaim,
			Status:   status,
			WorkType: code,
		},
	}
}

func remoteWorkType(networkID int64, code, status string, orgClaim *int64) models.NetworkWorkType {
	return models.NetworkWorkType{
		ID:       ptr(networkID),
		OrgClaim: orgClaim,
		Status:   status,
		WorkType: code,
	}
}

func remoteFlag(networkID int64, reason string) models.NetworkFlag {
	return models.NetworkFlag{ID: ptr(networkID), ReasonT: reason, CreatedAt: fixtureTime}
}
