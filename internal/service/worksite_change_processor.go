// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/crisiscleanup/worksite-sync/internal/adapter"
	"github.com/crisiscleanup/worksite-sync/internal/logger"
	"github.com/crisiscleanup/worksite-sync/models"
)

// processorDeps are the collaborators shared by every processor a sync
// service builds.
type processorDeps struct {
	writer     adapter.WorksiteWriteGateway
	reader     adapter.WorksiteReadGateway
	operator   ChangeSetOperator
	tokens     TokenService
	affiliates map[int64]struct{}
}

// worksiteChangeProcessor replays one worksite's change chain against the
// remote. It owns its id maps and the cached remote record; a processor is
// used for a single pass and never shared.
type worksiteChangeProcessor struct {
	processorDeps

	chain  *ChangeChain
	idMaps models.IDMaps

	// worksite is the memoized authoritative record, nil until fetched or
	// after a claim-affecting write.
	worksite *models.NetworkWorksiteFull
}

func newWorksiteChangeProcessor(deps processorDeps, chain *ChangeChain, idMaps models.IDMaps) *worksiteChangeProcessor {
	return &worksiteChangeProcessor{
		processorDeps: deps,
		chain:         chain,
		idMaps:        idMaps.Clone(),
	}
}

// Process applies the queued changes in order. It stops after the first
// change that lost connectivity or authorization; later changes get no
// result.
func (p *worksiteChangeProcessor) Process(ctx context.Context) WorksiteSyncResult {
	log := logger.FromContext(ctx)

	var lastApplied *models.WorksiteSnapshot
	if ref := p.chain.Reference(); ref != nil {
		lastApplied = &ref.Change
	}
	rebase := p.chain.HasPriorUnsyncedChanges()

	results := make([]ChangeResult, 0, p.chain.Len())
	for _, queued := range p.chain.Changes() {
		change := queued.Change
		start := change.Start
		if rebase && start != nil {
			start = lastApplied
		}

		setResult := p.syncChange(ctx, start, change)
		result := newChangeResult(queued.ID, setResult)
		results = append(results, result)

		if setResult.HasClaimChange {
			p.worksite = nil
		}

		if result.IsSuccessful {
			snapshot := change.Change
			lastApplied = &snapshot
		} else {
			rebase = true
			log.Warn().Err(result.Error).
				Str("func", "worksiteChangeProcessor.Process").
				Int64("change_id", queued.ID).
				Bool("partially_synced", setResult.IsPartiallySynced).
				Str("exceptions", setResult.ExceptionSummary()).
				Msg("change not fully synced")
		}

		if !setResult.CanContinueSyncing() {
			break
		}
	}

	return WorksiteSyncResult{
		ChangeResults: results,
		ChangeIDs:     p.idMaps.Clone(),
	}
}

func (p *worksiteChangeProcessor) syncChange(ctx context.Context, start *models.WorksiteSnapshot, change models.WorksiteChange) *SyncChangeSetResult {
	result := newSyncChangeSetResult()

	if err := p.ensureToken(ctx); err != nil {
		result.DataException = err
		return result
	}

	switch {
	case change.IsWorksiteDataChange:
		p.syncData(ctx, start, change.Change, result)
		// the transfer runs only once the data change is fully applied
		if change.IsWorkTypeTransferChange() && result.IsFullySynced {
			result.IsFullySynced = false
			p.syncTransfer(ctx, change, result)
		}
	case change.IsWorkTypeTransferChange():
		p.syncTransfer(ctx, change, result)
	default:
		p.syncData(ctx, start, change.Change, result)
	}
	result.Worksite = p.worksite

	return result
}

// ensureToken refreshes an invalid token once per change.
func (p *worksiteChangeProcessor) ensureToken(ctx context.Context) error {
	if p.tokens == nil || p.tokens.IsTokenValid() {
		return nil
	}
	if err := p.tokens.RefreshToken(ctx); err != nil {
		if isAbortError(err) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrExpiredToken, err)
	}
	return nil
}

func (p *worksiteChangeProcessor) syncData(ctx context.Context, start *models.WorksiteSnapshot, change models.WorksiteSnapshot, result *SyncChangeSetResult) {
	networkID := p.networkWorksiteID(start, change)

	var set models.WorksiteChangeSet
	switch {
	case start == nil:
		set = p.operator.NewChangeSet(change)
		if networkID > 0 {
			// created remotely by an earlier, partially synced attempt
			base, err := p.fetchWorksite(ctx, networkID)
			if err != nil {
				result.DataException = err
				return
			}
			set = p.operator.FilterExisting(base, set)
		}
	case networkID <= 0:
		result.DataException = fmt.Errorf("%w: local worksite %d has no network id", ErrWorksiteNotFound, change.Core.ID)
		return
	default:
		base, err := p.fetchWorksite(ctx, networkID)
		if err != nil {
			result.DataException = err
			return
		}
		set = p.operator.ChangeSet(base, *start, change, p.idMaps)
	}

	p.applyChangeSet(ctx, networkID, change, set, result)
}

func (p *worksiteChangeProcessor) applyChangeSet(
	ctx context.Context,
	networkID int64,
	change models.WorksiteSnapshot,
	set models.WorksiteChangeSet,
	result *SyncChangeSetResult,
) {
	log := logger.FromContext(ctx)

	if set.Worksite != nil {
		saved, err := p.writer.SaveWorksite(ctx, *set.Worksite)
		if err != nil {
			log.Err(err).
				Str("func", "worksiteChangeProcessor.applyChangeSet").
				Int64("network_worksite_id", networkID).
				Msg("failed to push worksite core")
			result.DataException = mapAdapterError(err)
			return
		}
		networkID = saved.ID
		p.idMaps.NetworkWorksiteID = saved.ID
		p.worksite = &saved
		p.refreshWorkTypeIDs(change, saved)
	}
	if networkID <= 0 {
		result.DataException = fmt.Errorf("%w: local worksite %d has no network id", ErrWorksiteNotFound, change.Core.ID)
		return
	}
	result.IsPartiallySynced = true

	if set.IsOrgMember != nil {
		result.FavoriteException = p.syncFavorite(ctx, networkID, *set.IsOrgMember)
		if isAbortError(result.FavoriteException) {
			return
		}
	}

	if !p.syncFlags(ctx, networkID, set, result) {
		return
	}
	if !p.syncNotes(ctx, networkID, set.ExtraNotes, result) {
		return
	}
	if !p.syncWorkTypes(ctx, networkID, change, set, result) {
		return
	}

	result.IsFullySynced = true
}

func (p *worksiteChangeProcessor) syncFavorite(ctx context.Context, networkID int64, isOrgMember bool) error {
	if isOrgMember {
		favorite, err := p.writer.FavoriteWorksite(ctx, networkID)
		if err != nil {
			return mapAdapterError(err)
		}
		if p.worksite != nil {
			p.worksite.Favorite = &favorite
		}
		return nil
	}

	base, err := p.fetchWorksite(ctx, networkID)
	if err != nil {
		return err
	}
	if base.Favorite == nil {
		return nil
	}
	if err = p.writer.UnfavoriteWorksite(ctx, networkID, base.Favorite.ID); err != nil {
		return mapAdapterError(err)
	}
	p.worksite.Favorite = nil
	return nil
}

// syncFlags deletes before adding so a re-added reason gets a fresh flag.
// It returns false when the loop must abort.
func (p *worksiteChangeProcessor) syncFlags(ctx context.Context, networkID int64, set models.WorksiteChangeSet, result *SyncChangeSetResult) bool {
	for _, flagID := range set.DeleteFlagIDs {
		if err := p.writer.DeleteFlag(ctx, networkID, flagID); err != nil {
			err = mapAdapterError(err)
			result.DeleteFlagExceptions[flagID] = err
			if isAbortError(err) {
				return false
			}
		}
	}

	for _, f := range set.NewFlags {
		saved, err := p.writer.AddFlag(ctx, networkID, f.Flag)
		if err != nil {
			err = mapAdapterError(err)
			result.AddFlagExceptions[f.LocalID] = err
			if isAbortError(err) {
				return false
			}
			continue
		}
		p.idMaps.Flags[f.LocalID] = saved.NetworkID()
	}

	return true
}

func (p *worksiteChangeProcessor) syncNotes(ctx context.Context, networkID int64, notes []models.LocalNote, result *SyncChangeSetResult) bool {
	for _, n := range notes {
		saved, err := p.writer.AddNote(ctx, networkID, n.Note)
		if err != nil {
			err = mapAdapterError(err)
			result.NoteExceptions[n.LocalID] = err
			if isAbortError(err) {
				return false
			}
			continue
		}
		p.idMaps.Notes[n.LocalID] = saved.NetworkID()
	}
	return true
}

// syncWorkTypes claims, then updates statuses, then unclaims, then deletes.
// Claiming first lets a status write land on a work type the org now owns.
func (p *worksiteChangeProcessor) syncWorkTypes(
	ctx context.Context,
	networkID int64,
	change models.WorksiteSnapshot,
	set models.WorksiteChangeSet,
	result *SyncChangeSetResult,
) bool {
	var claims, unclaims []string
	var statusChanges []models.WorkTypeChange
	for _, wt := range set.WorkTypeChanges {
		if wt.IsClaimChange {
			if wt.WorkType.IsClaimed() {
				claims = append(claims, wt.WorkType.WorkType)
			} else {
				unclaims = append(unclaims, wt.WorkType.WorkType)
			}
		}
		if wt.IsStatusChange {
			statusChanges = append(statusChanges, wt)
		}
	}

	if len(claims) > 0 {
		if err := p.writer.ClaimWorkTypes(ctx, networkID, claims); err != nil {
			result.WorkTypeClaimException = mapAdapterError(err)
			if isAbortError(result.WorkTypeClaimException) {
				return false
			}
		} else {
			result.HasClaimChange = true
			p.worksite = nil
		}
	}

	for _, wt := range statusChanges {
		err := p.syncWorkTypeStatus(ctx, networkID, wt)
		if err != nil {
			result.WorkTypeStatusExceptions[wt.LocalID] = err
			if isAbortError(err) {
				return false
			}
		}
	}

	if len(unclaims) > 0 {
		if err := p.writer.UnclaimWorkTypes(ctx, networkID, unclaims); err != nil {
			result.WorkTypeUnclaimException = mapAdapterError(err)
			if isAbortError(result.WorkTypeUnclaimException) {
				return false
			}
		} else {
			result.HasClaimChange = true
			p.worksite = nil
		}
	}

	for _, workTypeID := range set.DeleteWorkTypeIDs {
		if err := p.writer.DeleteWorkType(ctx, networkID, workTypeID); err != nil {
			err = mapAdapterError(err)
			result.DeleteWorkTypeExceptions[workTypeID] = err
			if isAbortError(err) {
				return false
			}
		}
	}

	if result.HasClaimChange {
		if base, err := p.fetchWorksite(ctx, networkID); err == nil {
			p.refreshWorkTypeIDs(change, base)
		}
	}

	return true
}

func (p *worksiteChangeProcessor) syncWorkTypeStatus(ctx context.Context, networkID int64, wt models.WorkTypeChange) error {
	workTypeID := wt.NetworkID
	if workTypeID <= 0 {
		workTypeID = p.idMaps.WorkTypeID(wt.LocalID)
	}
	if workTypeID <= 0 {
		base, err := p.fetchWorksite(ctx, networkID)
		if err != nil {
			return err
		}
		if remote, ok := models.NewestWorkTypes(base.WorkTypes)[wt.WorkType.WorkType]; ok {
			workTypeID = remote.NetworkID()
		}
	}
	if workTypeID <= 0 {
		return fmt.Errorf("%w: code %q", ErrWorkTypeNotFound, wt.WorkType.WorkType)
	}

	saved, err := p.writer.UpdateWorkTypeStatus(ctx, workTypeID, wt.WorkType.Status)
	if err != nil {
		return mapAdapterError(err)
	}
	if id := saved.NetworkID(); id > 0 {
		workTypeID = id
	}
	p.idMaps.WorkTypes[wt.LocalID] = workTypeID
	return nil
}

// syncTransfer requests or releases work types claimed by organizations
// outside the affiliate set. Codes the caller's own side claims are dropped;
// nothing is sent when no code is left.
func (p *worksiteChangeProcessor) syncTransfer(ctx context.Context, change models.WorksiteChange, result *SyncChangeSetResult) {
	networkID := p.networkWorksiteID(change.Start, change.Change)
	if networkID <= 0 {
		result.DataException = fmt.Errorf("%w: local worksite %d has no network id", ErrWorksiteNotFound, change.Change.Core.ID)
		return
	}

	base, err := p.fetchWorksite(ctx, networkID)
	if err != nil {
		result.DataException = err
		return
	}
	result.IsPartiallySynced = true

	if t := change.RequestWorkTypes; t.HasValue() {
		if codes := p.transferableCodes(base, t.WorkTypes); len(codes) > 0 {
			result.WorkTypeRequestException = p.requestWorkTypes(ctx, networkID, codes, t.Reason)
			if isAbortError(result.WorkTypeRequestException) {
				return
			}
		}
	}

	if t := change.ReleaseWorkTypes; t.HasValue() {
		if codes := p.transferableCodes(base, t.WorkTypes); len(codes) > 0 {
			if err = p.writer.ReleaseWorkTypes(ctx, networkID, codes, t.Reason); err != nil {
				result.WorkTypeReleaseException = mapAdapterError(err)
				if isAbortError(result.WorkTypeReleaseException) {
					return
				}
			} else {
				result.HasClaimChange = true
				p.worksite = nil
				refreshed, err := p.fetchWorksite(ctx, networkID)
				if err != nil {
					result.WorkTypeReleaseException = err
					if isAbortError(err) {
						return
					}
				} else {
					p.refreshWorkTypeIDs(change.Change, refreshed)
				}
			}
		}
	}

	result.IsFullySynced = true
}

func (p *worksiteChangeProcessor) requestWorkTypes(ctx context.Context, networkID int64, codes []string, reason string) error {
	if err := p.writer.RequestWorkTypes(ctx, networkID, codes, reason); err != nil {
		return mapAdapterError(err)
	}

	requests, err := p.reader.GetWorkTypeRequests(ctx, networkID)
	if err != nil {
		return mapAdapterError(err)
	}
	for _, r := range requests {
		if r.ID > 0 && r.WorkType.WorkType != "" {
			p.idMaps.WorkTypeRequests[r.WorkType.WorkType] = r.ID
		}
	}
	return nil
}

func (p *worksiteChangeProcessor) transferableCodes(base models.NetworkWorksiteFull, codes []string) []string {
	newest := models.NewestWorkTypes(base.WorkTypes)
	seen := make(map[string]struct{}, len(codes))

	var transferable []string
	for _, code := range codes {
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}

		remote, ok := newest[code]
		if !ok || remote.OrgClaim == nil {
			continue
		}
		if _, affiliated := p.affiliates[*remote.OrgClaim]; affiliated {
			continue
		}
		transferable = append(transferable, code)
	}
	return transferable
}

// fetchWorksite returns the cached record of networkID, fetching it when the
// cache is empty or holds another worksite.
func (p *worksiteChangeProcessor) fetchWorksite(ctx context.Context, networkID int64) (models.NetworkWorksiteFull, error) {
	if p.worksite != nil && p.worksite.ID == networkID {
		return *p.worksite, nil
	}

	worksite, err := p.reader.GetWorksite(ctx, networkID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "worksiteChangeProcessor.fetchWorksite").
			Int64("network_worksite_id", networkID).
			Msg("failed to fetch worksite")
		return models.NetworkWorksiteFull{}, mapWorksiteFetchError(err)
	}
	p.worksite = &worksite
	return worksite, nil
}

// refreshWorkTypeIDs maps the local work types of snapshot to the remote
// work types of the same code.
func (p *worksiteChangeProcessor) refreshWorkTypeIDs(snapshot models.WorksiteSnapshot, worksite models.NetworkWorksiteFull) {
	newest := models.NewestWorkTypes(worksite.WorkTypes)
	for _, wt := range snapshot.WorkTypes {
		if remote, ok := newest[wt.WorkType.WorkType]; ok && remote.NetworkID() > 0 {
			p.idMaps.WorkTypes[wt.LocalID] = remote.NetworkID()
		}
	}
}

func (p *worksiteChangeProcessor) networkWorksiteID(start *models.WorksiteSnapshot, change models.WorksiteSnapshot) int64 {
	id := max(p.idMaps.NetworkWorksiteID, change.Core.NetworkID)
	if start != nil {
		id = max(id, start.Core.NetworkID)
	}
	return max(id, 0)
}
