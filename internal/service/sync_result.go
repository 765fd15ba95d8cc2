// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/crisiscleanup/worksite-sync/models"
)

// SyncChangeSetResult is the outcome of applying one change to the remote.
// Sub-resource failures are kept here instead of being returned.
type SyncChangeSetResult struct {
	// IsPartiallySynced is true once the core record is known to the remote.
	IsPartiallySynced bool
	// IsFullySynced is true when every sub-step ran without an abort.
	IsFullySynced bool

	// Worksite is the latest authoritative record, if one was obtained.
	Worksite *models.NetworkWorksiteFull

	DataException     error
	FavoriteException error

	// AddFlagExceptions and NoteExceptions are keyed by local id,
	// DeleteFlagExceptions and DeleteWorkTypeExceptions by network id,
	// WorkTypeStatusExceptions by local work type id.
	AddFlagExceptions        map[int64]error
	DeleteFlagExceptions     map[int64]error
	NoteExceptions           map[int64]error
	WorkTypeStatusExceptions map[int64]error
	DeleteWorkTypeExceptions map[int64]error

	WorkTypeClaimException   error
	WorkTypeUnclaimException error
	WorkTypeRequestException error
	WorkTypeReleaseException error

	// HasClaimChange is set after a claim-affecting write so the cached
	// remote record is refetched before the next diff.
	HasClaimChange bool
}

func newSyncChangeSetResult() *SyncChangeSetResult {
	return &SyncChangeSetResult{
		AddFlagExceptions:        make(map[int64]error),
		DeleteFlagExceptions:     make(map[int64]error),
		NoteExceptions:           make(map[int64]error),
		WorkTypeStatusExceptions: make(map[int64]error),
		DeleteWorkTypeExceptions: make(map[int64]error),
	}
}

// PrimaryException returns the error that best explains the result:
// connectivity loss, then an invalid token, then the first populated
// exception in field order.
func (r *SyncChangeSetResult) PrimaryException() error {
	all := r.exceptions()
	for _, target := range []error{ErrNoInternetConnection, ErrExpiredToken} {
		for _, err := range all {
			if errors.Is(err, target) {
				return err
			}
		}
	}
	if len(all) > 0 {
		return all[0]
	}
	return nil
}

// CanContinueSyncing is false when the sync loop must stop.
func (r *SyncChangeSetResult) CanContinueSyncing() bool {
	return !isAbortError(r.PrimaryException())
}

// HasError reports whether any sub-step failed.
func (r *SyncChangeSetResult) HasError() bool {
	return len(r.exceptions()) > 0
}

// ExceptionSummary renders every recorded failure, one per line.
// Intended for diagnostics only.
func (r *SyncChangeSetResult) ExceptionSummary() string {
	var b strings.Builder
	line := func(name string, err error) {
		if err != nil {
			fmt.Fprintf(&b, "%s: %v\n", name, err)
		}
	}
	lines := func(name string, errs map[int64]error) {
		for _, id := range slices.Sorted(maps.Keys(errs)) {
			fmt.Fprintf(&b, "%s %d: %v\n", name, id, errs[id])
		}
	}

	line("data", r.DataException)
	line("favorite", r.FavoriteException)
	lines("add flag", r.AddFlagExceptions)
	lines("delete flag", r.DeleteFlagExceptions)
	lines("note", r.NoteExceptions)
	lines("work type status", r.WorkTypeStatusExceptions)
	lines("delete work type", r.DeleteWorkTypeExceptions)
	line("claim", r.WorkTypeClaimException)
	line("unclaim", r.WorkTypeUnclaimException)
	line("request", r.WorkTypeRequestException)
	line("release", r.WorkTypeReleaseException)

	return strings.TrimRight(b.String(), "\n")
}

func (r *SyncChangeSetResult) exceptions() []error {
	var errs []error
	appendErr := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}
	appendMap := func(m map[int64]error) {
		for _, id := range slices.Sorted(maps.Keys(m)) {
			appendErr(m[id])
		}
	}

	appendErr(r.DataException)
	appendErr(r.FavoriteException)
	appendMap(r.AddFlagExceptions)
	appendMap(r.DeleteFlagExceptions)
	appendMap(r.NoteExceptions)
	appendMap(r.WorkTypeStatusExceptions)
	appendMap(r.DeleteWorkTypeExceptions)
	appendErr(r.WorkTypeClaimException)
	appendErr(r.WorkTypeUnclaimException)
	appendErr(r.WorkTypeRequestException)
	appendErr(r.WorkTypeReleaseException)

	return errs
}

// ChangeResult is the per queued change outcome of a sync pass.
type ChangeResult struct {
	ID int64
	// IsSuccessful means every sub-step completed without error.
	IsSuccessful bool
	// IsPartiallySuccessful means the core record synced but something
	// downstream failed.
	IsPartiallySuccessful bool
	// IsFail means the core record did not sync or the loop aborted.
	IsFail bool
	// IsAborted means the loop stopped on this change; the queue keeps it
	// untouched.
	IsAborted bool
	Error     error
}

func newChangeResult(id int64, r *SyncChangeSetResult) ChangeResult {
	err := r.PrimaryException()
	isSuccessful := r.IsFullySynced && err == nil
	return ChangeResult{
		ID:                    id,
		IsSuccessful:          isSuccessful,
		IsPartiallySuccessful: !isSuccessful && r.IsPartiallySynced,
		IsFail:                !isSuccessful && !r.IsPartiallySynced,
		IsAborted:             isAbortError(err),
		Error:                 err,
	}
}

// WorksiteSyncResult is the outcome of one sync pass over a worksite's queue.
// ChangeIDs holds the id maps as updated by the pass.
type WorksiteSyncResult struct {
	ChangeResults []ChangeResult
	ChangeIDs     models.IDMaps
}

// SyncAlert is the banner a caller shows after a pass.
type SyncAlert int

const (
	SyncAlertNone SyncAlert = iota
	SyncAlertNoInternet
	SyncAlertExpiredToken
)

// String returns the banner text.
func (a SyncAlert) String() string {
	switch a {
	case SyncAlertNoInternet:
		return "No internet connection. Changes will sync when online."
	case SyncAlertExpiredToken:
		return "Login expired. Sign in again to sync changes."
	default:
		return ""
	}
}

// Alert selects the banner for the pass. No internet wins over an expired
// token.
func (r WorksiteSyncResult) Alert() SyncAlert {
	var noInternet, expiredToken bool
	for _, c := range r.ChangeResults {
		noInternet = noInternet || errors.Is(c.Error, ErrNoInternetConnection)
		expiredToken = expiredToken || errors.Is(c.Error, ErrExpiredToken)
	}
	return alertFor(noInternet, expiredToken)
}

func alertFor(noInternet, expiredToken bool) SyncAlert {
	switch {
	case noInternet:
		return SyncAlertNoInternet
	case expiredToken:
		return SyncAlertExpiredToken
	default:
		return SyncAlertNone
	}
}
