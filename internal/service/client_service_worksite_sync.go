// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/crisiscleanup/worksite-sync/internal/adapter"
	"github.com/crisiscleanup/worksite-sync/internal/logger"
	"github.com/crisiscleanup/worksite-sync/internal/store"
	"github.com/crisiscleanup/worksite-sync/models"
)

// SessionIDGenerator issues the id of one sync pass.
type SessionIDGenerator interface {
	Generate() string
}

// WorksiteSyncDeps are the collaborators of [NewClientWorksiteSyncService].
type WorksiteSyncDeps struct {
	Changes    store.WorksiteChangeRepository
	IDMaps     store.WorksiteIDMapRepository
	Gateway    adapter.WorksiteGateway
	Operator   ChangeSetOperator
	Serializer ChangeSerializer
	Tokens     TokenService
	SessionIDs SessionIDGenerator
}

// WorksiteSyncOptions tune a [ClientWorksiteSyncService].
type WorksiteSyncOptions struct {
	AffiliateOrganizationIDs []int64
	// MaxSyncAttempts is how many failed passes the oldest queued change
	// gets before it is skipped. Zero or less never skips.
	MaxSyncAttempts int
	// Concurrency limits SyncWorksites. Zero or less means one at a time.
	Concurrency int
}

type clientWorksiteSyncService struct {
	changes    store.WorksiteChangeRepository
	idMaps     store.WorksiteIDMapRepository
	serializer ChangeSerializer
	sessionIDs SessionIDGenerator

	processorDeps processorDeps
	guard         *worksiteGuard

	maxSyncAttempts int
	concurrency     int
	now             func() time.Time
}

func NewClientWorksiteSyncService(deps WorksiteSyncDeps, opts WorksiteSyncOptions) ClientWorksiteSyncService {
	affiliates := make(map[int64]struct{}, len(opts.AffiliateOrganizationIDs))
	for _, id := range opts.AffiliateOrganizationIDs {
		affiliates[id] = struct{}{}
	}

	return &clientWorksiteSyncService{
		changes:    deps.Changes,
		idMaps:     deps.IDMaps,
		serializer: deps.Serializer,
		sessionIDs: deps.SessionIDs,
		processorDeps: processorDeps{
			writer:     deps.Gateway,
			reader:     deps.Gateway,
			operator:   deps.Operator,
			tokens:     deps.Tokens,
			affiliates: affiliates,
		},
		guard:           newWorksiteGuard(),
		maxSyncAttempts: opts.MaxSyncAttempts,
		concurrency:     max(opts.Concurrency, 1),
		now:             time.Now,
	}
}

// EnqueueChange implements ClientWorksiteSyncService.
func (s *clientWorksiteSyncService) EnqueueChange(ctx context.Context, worksiteID int64, change models.WorksiteChange) (int64, error) {
	log := logger.FromContext(ctx)

	idMaps, err := s.idMaps.GetIDMaps(ctx, worksiteID)
	if err != nil {
		return 0, err
	}

	version, payload, err := s.serializer.Serialize(change, idMaps)
	if err != nil {
		log.Err(err).
			Str("func", "clientWorksiteSyncService.EnqueueChange").
			Int64("worksite_id", worksiteID).
			Msg("failed to serialize change")
		return 0, err
	}

	return s.changes.SaveChange(ctx, models.QueuedWorksiteChange{
		WorksiteID:   worksiteID,
		SyncUUID:     s.sessionIDs.Generate(),
		CreatedAt:    s.now().UTC(),
		ModelVersion: version,
		Payload:      payload,
	})
}

// SyncWorksite implements ClientWorksiteSyncService.
func (s *clientWorksiteSyncService) SyncWorksite(ctx context.Context, worksiteID int64) (WorksiteSyncResult, error) {
	release, err := s.guard.acquire(worksiteID)
	if err != nil {
		return WorksiteSyncResult{}, err
	}
	defer release()

	sessionID := s.sessionIDs.Generate()
	ctx = logger.WithSyncSession(ctx, worksiteID, sessionID)
	log := logger.FromContext(ctx)

	queued, err := s.changes.GetQueuedChanges(ctx, worksiteID)
	if err != nil {
		return WorksiteSyncResult{}, err
	}
	idMaps, err := s.idMaps.GetIDMaps(ctx, worksiteID)
	if err != nil {
		return WorksiteSyncResult{}, err
	}
	if len(queued) == 0 {
		return WorksiteSyncResult{ChangeIDs: idMaps}, nil
	}

	valid, unreadable := s.deserializeQueue(ctx, queued)

	reference, referenceID, err := s.reference(ctx, worksiteID)
	if err != nil {
		return WorksiteSyncResult{}, err
	}
	hasSkipped, err := s.changes.HasSkippedChangesAfter(ctx, worksiteID, referenceID)
	if err != nil {
		return WorksiteSyncResult{}, err
	}

	chain, err := NewChangeChain(worksiteID, reference, valid, hasSkipped || len(unreadable) > 0)
	if err != nil {
		log.Err(err).
			Str("func", "clientWorksiteSyncService.SyncWorksite").
			Int("queued", len(queued)).
			Msg("invalid change chain")
		return WorksiteSyncResult{}, err
	}

	result := newWorksiteChangeProcessor(s.processorDeps, chain, idMaps).Process(ctx)

	updates := append(unreadable, s.syncUpdates(chain, result, sessionID)...)
	if err = s.changes.UpdateSyncStatus(ctx, updates...); err != nil {
		return result, err
	}
	if err = s.idMaps.SaveIDMaps(ctx, worksiteID, result.ChangeIDs); err != nil {
		return result, err
	}
	s.pruneSynced(ctx, worksiteID, updates)

	log.Info().
		Str("func", "clientWorksiteSyncService.SyncWorksite").
		Int("queued", len(queued)).
		Int("processed", len(result.ChangeResults)).
		Msg("worksite sync pass finished")

	return result, nil
}

// SyncWorksites implements ClientWorksiteSyncService.
func (s *clientWorksiteSyncService) SyncWorksites(ctx context.Context, worksiteIDs []int64) (map[int64]WorksiteSyncResult, error) {
	var (
		mu      sync.Mutex
		results = make(map[int64]WorksiteSyncResult, len(worksiteIDs))
		errs    []error
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, id := range worksiteIDs {
		g.Go(func() error {
			result, err := s.SyncWorksite(gCtx, id)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("worksite %d: %w", id, err))
				return nil
			}
			results[id] = result
			return nil
		})
	}
	_ = g.Wait()

	return results, errors.Join(errs...)
}

// SyncPending implements ClientWorksiteSyncService.
func (s *clientWorksiteSyncService) SyncPending(ctx context.Context, limit int) (map[int64]WorksiteSyncResult, error) {
	ids, err := s.changes.GetWorksitesPendingSync(ctx, limit)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return map[int64]WorksiteSyncResult{}, nil
	}
	return s.SyncWorksites(ctx, ids)
}

// deserializeQueue decodes the payload of every queued change. Changes that
// cannot be decoded are returned as skip updates.
func (s *clientWorksiteSyncService) deserializeQueue(ctx context.Context, queued []models.QueuedWorksiteChange) ([]models.QueuedWorksiteChange, []models.ChangeSyncUpdate) {
	log := logger.FromContext(ctx)

	valid := make([]models.QueuedWorksiteChange, 0, len(queued))
	var unreadable []models.ChangeSyncUpdate
	for _, q := range queued {
		change, err := s.serializer.Deserialize(q.ModelVersion, q.Payload)
		if err != nil {
			log.Err(err).
				Str("func", "clientWorksiteSyncService.deserializeQueue").
				Int64("change_id", q.ID).
				Int("model_version", q.ModelVersion).
				Msg("skipping unreadable change")
			unreadable = append(unreadable, models.ChangeSyncUpdate{
				ID:            q.ID,
				ArchiveAction: models.ArchiveActionSkipped,
			})
			continue
		}
		q.Change = change
		valid = append(valid, q)
	}
	return valid, unreadable
}

// reference loads the latest synced change as the chain reference. An
// unreadable reference is dropped; the chain then rebases from nothing.
func (s *clientWorksiteSyncService) reference(ctx context.Context, worksiteID int64) (*models.WorksiteChange, int64, error) {
	latest, err := s.changes.GetLatestSyncedChange(ctx, worksiteID)
	if err != nil {
		return nil, 0, err
	}
	if latest == nil {
		return nil, 0, nil
	}

	change, err := s.serializer.Deserialize(latest.ModelVersion, latest.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "clientWorksiteSyncService.reference").
			Int64("change_id", latest.ID).
			Msg("ignoring unreadable reference change")
		return nil, latest.ID, nil
	}
	return &change, latest.ID, nil
}

// syncUpdates maps the pass result onto queue rows. Only the leading run of
// successful changes is archived, so the queue never has a synced change
// after an unsynced one. The first unsuccessful change is skipped once it
// has used up its attempts. Aborted and unprocessed changes are left as
// they are.
func (s *clientWorksiteSyncService) syncUpdates(chain *ChangeChain, result WorksiteSyncResult, sessionID string) []models.ChangeSyncUpdate {
	attemptedAt := s.now().UTC()
	queued := chain.Changes()

	updates := make([]models.ChangeSyncUpdate, 0, len(result.ChangeResults))
	inPrefix := true
	for i, r := range result.ChangeResults {
		if r.IsAborted {
			break
		}

		update := models.ChangeSyncUpdate{
			ID:                r.ID,
			SyncUUID:          sessionID,
			IsPartiallySynced: r.IsSuccessful || r.IsPartiallySuccessful,
			IsAttempt:         true,
			AttemptedAt:       attemptedAt,
		}

		switch {
		case inPrefix && r.IsSuccessful:
			update.ArchiveAction = models.ArchiveActionSynced
		case inPrefix:
			inPrefix = false
			if s.maxSyncAttempts > 0 && queued[i].SyncAttempt+1 >= s.maxSyncAttempts {
				update.ArchiveAction = models.ArchiveActionSkipped
			}
		}
		updates = append(updates, update)
	}
	return updates
}

// pruneSynced drops synced rows older than the newest one archived in this
// pass; the newest stays as the next chain reference.
func (s *clientWorksiteSyncService) pruneSynced(ctx context.Context, worksiteID int64, updates []models.ChangeSyncUpdate) {
	var newest int64
	for _, u := range updates {
		if u.ArchiveAction == models.ArchiveActionSynced {
			newest = max(newest, u.ID)
		}
	}
	if newest == 0 {
		return
	}

	log := logger.FromContext(ctx)

	deleted, err := s.changes.DeleteSyncedBefore(ctx, worksiteID, newest)
	if err != nil {
		// не критично: строки удалятся на следующем проходе
		log.Warn().Err(err).
			Str("func", "clientWorksiteSyncService.pruneSynced").
			Int64("change_id", newest).
			Msg("failed to prune synced changes")
		return
	}
	log.Debug().
		Str("func", "clientWorksiteSyncService.pruneSynced").
		Int64("deleted", deleted).
		Msg("pruned synced changes")
}
