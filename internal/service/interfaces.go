// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/crisiscleanup/worksite-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ChangeSetOperator computes the remote writes needed to realize a local
// change. Implementations are pure: no I/O, no mutation of the inputs.
type ChangeSetOperator interface {
	// NewChangeSet builds the change set of a worksite that does not exist
	// on the remote yet. The core payload is always complete and marked to
	// skip the duplicate check. Only claimed work types produce changes.
	NewChangeSet(change models.WorksiteSnapshot) models.WorksiteChangeSet

	// ChangeSet computes the three-way diff of start and change against the
	// authoritative remote record base. idMaps resolves local ids of
	// sub-entities to remote ids.
	ChangeSet(base models.NetworkWorksiteFull, start, change models.WorksiteSnapshot, idMaps models.IDMaps) models.WorksiteChangeSet

	// FilterExisting drops entries of a creation change set that base
	// already holds, for a worksite the remote created in an earlier pass.
	FilterExisting(base models.NetworkWorksiteFull, set models.WorksiteChangeSet) models.WorksiteChangeSet
}

// ChangeSerializer converts a queued change to and from its persisted,
// versioned representation.
type ChangeSerializer interface {
	// Serialize encodes the change in the current format. Embedded network
	// ids of sub-entities are filled from idMaps where known.
	Serialize(change models.WorksiteChange, idMaps models.IDMaps) (version int, payload string, err error)

	// Deserialize decodes a payload written in format version. Returns
	// ErrUnsupportedChangeVersion for unknown versions.
	Deserialize(version int, payload string) (models.WorksiteChange, error)
}

// TokenService keeps the access token used by the gateways valid.
type TokenService interface {
	// IsTokenValid reports whether the current access token is present and
	// not expired.
	IsTokenValid() bool

	// RefreshToken exchanges the refresh token for a new access token and
	// installs it on the gateway. Returns ErrExpiredToken when the remote
	// refuses the refresh.
	RefreshToken(ctx context.Context) error
}
