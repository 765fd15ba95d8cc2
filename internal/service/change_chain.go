// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/crisiscleanup/worksite-sync/models"
)

// ChangeChain is the ordered queue of one worksite's changes together with
// the last change the remote confirmed. Each change is applied on top of
// the previous one, so the chain must be in creation order with no holes.
type ChangeChain struct {
	worksiteID              int64
	reference               *models.WorksiteChange
	changes                 []models.QueuedWorksiteChange
	hasPriorUnsyncedChanges bool
}

// NewChangeChain validates queued and builds the chain. reference is the
// latest synced change of the worksite, or nil when none was synced.
// hasPriorUnsyncedChanges is true when a change older than queued was
// abandoned, so the first change's own start can no longer be trusted.
func NewChangeChain(
	worksiteID int64,
	reference *models.WorksiteChange,
	queued []models.QueuedWorksiteChange,
	hasPriorUnsyncedChanges bool,
) (*ChangeChain, error) {
	if worksiteID <= 0 {
		return nil, fmt.Errorf("%w: worksite id %d", ErrInvalidChangeChain, worksiteID)
	}

	for i, q := range queued {
		if q.WorksiteID != worksiteID {
			return nil, fmt.Errorf("%w: change %d belongs to worksite %d", ErrInvalidChangeChain, q.ID, q.WorksiteID)
		}
		if i == 0 {
			continue
		}

		prev := queued[i-1]
		if q.ID <= prev.ID || q.CreatedAt.Before(prev.CreatedAt) {
			return nil, fmt.Errorf("%w: change %d is out of order after %d", ErrInvalidChangeChain, q.ID, prev.ID)
		}
		if q.Change.Start == nil {
			return nil, fmt.Errorf("%w: change %d creates a worksite after change %d", ErrChangeChainGap, q.ID, prev.ID)
		}
	}

	return &ChangeChain{
		worksiteID:              worksiteID,
		reference:               reference,
		changes:                 queued,
		hasPriorUnsyncedChanges: hasPriorUnsyncedChanges,
	}, nil
}

// WorksiteID returns the local id of the worksite.
func (c *ChangeChain) WorksiteID() int64 { return c.worksiteID }

// Reference returns the latest confirmed change, or nil.
func (c *ChangeChain) Reference() *models.WorksiteChange { return c.reference }

// Changes returns the queued changes in application order.
func (c *ChangeChain) Changes() []models.QueuedWorksiteChange { return c.changes }

// HasPriorUnsyncedChanges reports whether the first change must be rebased.
func (c *ChangeChain) HasPriorUnsyncedChanges() bool { return c.hasPriorUnsyncedChanges }

// Len returns the number of queued changes.
func (c *ChangeChain) Len() int { return len(c.changes) }
