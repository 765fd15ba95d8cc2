// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/crisiscleanup/worksite-sync/internal/adapter"
	"github.com/crisiscleanup/worksite-sync/internal/mock"
	"github.com/crisiscleanup/worksite-sync/models"
)

type sequenceIDs struct{ n atomic.Int64 }

func (s *sequenceIDs) Generate() string {
	return fmt.Sprintf("session-%d", s.n.Add(1))
}

type syncMocks struct {
	changes  *mock.MockWorksiteChangeRepository
	idMaps   *mock.MockWorksiteIDMapRepository
	gateway  *mock.MockWorksiteGateway
	operator *mock.MockChangeSetOperator
}

func newSyncTestService(t *testing.T, opts WorksiteSyncOptions) (*clientWorksiteSyncService, syncMocks) {
	ctrl := gomock.NewController(t)
	m := syncMocks{
		changes:  mock.NewMockWorksiteChangeRepository(ctrl),
		idMaps:   mock.NewMockWorksiteIDMapRepository(ctrl),
		gateway:  mock.NewMockWorksiteGateway(ctrl),
		operator: mock.NewMockChangeSetOperator(ctrl),
	}

	svc := NewClientWorksiteSyncService(WorksiteSyncDeps{
		Changes:    m.changes,
		IDMaps:     m.idMaps,
		Gateway:    m.gateway,
		Operator:   m.operator,
		Serializer: NewChangeSerializer(),
		SessionIDs: &sequenceIDs{},
	}, opts).(*clientWorksiteSyncService)
	svc.now = func() time.Time { return fixtureTime }

	return svc, m
}

func syncContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// queuedRow serializes a data change into a queue row of testWorksiteID.
func queuedRow(t *testing.T, id int64, attempts int, start *models.WorksiteSnapshot, change models.WorksiteSnapshot) models.QueuedWorksiteChange {
	t.Helper()
	version, payload, err := NewChangeSerializer().Serialize(models.WorksiteChange{
		Start:                start,
		Change:               change,
		IsWorksiteDataChange: true,
	}, models.NewIDMaps())
	require.NoError(t, err)

	return models.QueuedWorksiteChange{
		ID:           id,
		WorksiteID:   testWorksiteID,
		CreatedAt:    fixtureTime.Add(time.Duration(id) * time.Second),
		ModelVersion: version,
		Payload:      payload,
		SyncAttempt:  attempts,
	}
}

func captureUpdates(target *[]models.ChangeSyncUpdate) func(context.Context, ...models.ChangeSyncUpdate) error {
	return func(_ context.Context, updates ...models.ChangeSyncUpdate) error {
		*target = append(*target, updates...)
		return nil
	}
}

// ── EnqueueChange ───────────────────────────────────────────────────────────

func TestEnqueueChange(t *testing.T) {
	// Arrange
	svc, m := newSyncTestService(t, WorksiteSyncOptions{})
	ctx := syncContext()

	idMaps := models.NewIDMaps()
	idMaps.NetworkWorksiteID = 100
	change := models.WorksiteChange{Change: newTestSnapshot(0), IsWorksiteDataChange: true}

	m.idMaps.EXPECT().GetIDMaps(gomock.Any(), testWorksiteID).Return(idMaps, nil)
	m.changes.EXPECT().SaveChange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q models.QueuedWorksiteChange) (int64, error) {
			assert.Equal(t, testWorksiteID, q.WorksiteID)
			assert.Equal(t, CurrentChangeModelVersion, q.ModelVersion)
			assert.Equal(t, "session-1", q.SyncUUID)
			assert.Equal(t, fixtureTime, q.CreatedAt)

			decoded, err := NewChangeSerializer().Deserialize(q.ModelVersion, q.Payload)
			require.NoError(t, err)
			assert.Equal(t, int64(100), decoded.Change.Core.NetworkID)
			return 42, nil
		})

	// Act
	id, err := svc.EnqueueChange(ctx, testWorksiteID, change)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestEnqueueChange_IDMapError(t *testing.T) {
	svc, m := newSyncTestService(t, WorksiteSyncOptions{})
	m.idMaps.EXPECT().GetIDMaps(gomock.Any(), testWorksiteID).Return(models.IDMaps{}, assert.AnError)

	_, err := svc.EnqueueChange(syncContext(), testWorksiteID, models.WorksiteChange{})

	assert.ErrorIs(t, err, assert.AnError)
}

// ── SyncWorksite ────────────────────────────────────────────────────────────

func TestSyncWorksite_EmptyQueue(t *testing.T) {
	svc, m := newSyncTestService(t, WorksiteSyncOptions{})
	idMaps := models.NewIDMaps()
	idMaps.NetworkWorksiteID = 100

	m.changes.EXPECT().GetQueuedChanges(gomock.Any(), testWorksiteID).Return(nil, nil)
	m.idMaps.EXPECT().GetIDMaps(gomock.Any(), testWorksiteID).Return(idMaps, nil)

	result, err := svc.SyncWorksite(syncContext(), testWorksiteID)

	require.NoError(t, err)
	assert.Empty(t, result.ChangeResults)
	assert.Equal(t, idMaps, result.ChangeIDs)
}

func TestSyncWorksite_ArchivesSyncedAndPrunes(t *testing.T) {
	// Arrange
	svc, m := newSyncTestService(t, WorksiteSyncOptions{MaxSyncAttempts: 3})
	start := newTestSnapshot(100)
	queued := []models.QueuedWorksiteChange{
		queuedRow(t, 5, 0, &start, newTestSnapshot(100)),
		queuedRow(t, 6, 0, &start, newTestSnapshot(100)),
	}

	var updates []models.ChangeSyncUpdate
	m.changes.EXPECT().GetQueuedChanges(gomock.Any(), testWorksiteID).Return(queued, nil)
	m.idMaps.EXPECT().GetIDMaps(gomock.Any(), testWorksiteID).Return(models.NewIDMaps(), nil)
	m.changes.EXPECT().GetLatestSyncedChange(gomock.Any(), testWorksiteID).Return(nil, nil)
	m.changes.EXPECT().HasSkippedChangesAfter(gomock.Any(), testWorksiteID, int64(0)).Return(false, nil)
	m.gateway.EXPECT().GetWorksite(gomock.Any(), int64(100)).Return(newTestRemote(100), nil)
	m.operator.EXPECT().ChangeSet(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.WorksiteChangeSet{}).Times(2)

	gomock.InOrder(
		m.changes.EXPECT().UpdateSyncStatus(gomock.Any(), gomock.Any()).DoAndReturn(captureUpdates(&updates)),
		m.idMaps.EXPECT().SaveIDMaps(gomock.Any(), testWorksiteID, gomock.Any()).Return(nil),
		m.changes.EXPECT().DeleteSyncedBefore(gomock.Any(), testWorksiteID, int64(6)).Return(int64(1), nil),
	)

	// Act
	result, err := svc.SyncWorksite(syncContext(), testWorksiteID)

	// Assert
	require.NoError(t, err)
	require.Len(t, result.ChangeResults, 2)
	require.Len(t, updates, 2)
	for i, id := range []int64{5, 6} {
		assert.Equal(t, id, updates[i].ID)
		assert.Equal(t, models.ArchiveActionSynced, updates[i].ArchiveAction)
		assert.True(t, updates[i].IsAttempt)
		assert.True(t, updates[i].IsPartiallySynced)
		assert.Equal(t, "session-1", updates[i].SyncUUID)
		assert.Equal(t, fixtureTime, updates[i].AttemptedAt)
	}
	assert.False(t, svc.guard.isActive(testWorksiteID))
}

func TestSyncWorksite_PruneFailureIsLoggedWithSession(t *testing.T) {
	// Arrange
	svc, m := newSyncTestService(t, WorksiteSyncOptions{})
	start := newTestSnapshot(100)
	queued := []models.QueuedWorksiteChange{queuedRow(t, 5, 0, &start, newTestSnapshot(100))}

	var buf bytes.Buffer
	l := zerolog.New(&buf)
	ctx := l.WithContext(context.Background())

	m.changes.EXPECT().GetQueuedChanges(gomock.Any(), testWorksiteID).Return(queued, nil)
	m.idMaps.EXPECT().GetIDMaps(gomock.Any(), testWorksiteID).Return(models.NewIDMaps(), nil)
	m.changes.EXPECT().GetLatestSyncedChange(gomock.Any(), testWorksiteID).Return(nil, nil)
	m.changes.EXPECT().HasSkippedChangesAfter(gomock.Any(), testWorksiteID, int64(0)).Return(false, nil)
	m.gateway.EXPECT().GetWorksite(gomock.Any(), int64(100)).Return(newTestRemote(100), nil)
	m.operator.EXPECT().ChangeSet(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.WorksiteChangeSet{})
	m.changes.EXPECT().UpdateSyncStatus(gomock.Any(), gomock.Any()).Return(nil)
	m.idMaps.EXPECT().SaveIDMaps(gomock.Any(), testWorksiteID, gomock.Any()).Return(nil)
	m.changes.EXPECT().DeleteSyncedBefore(gomock.Any(), testWorksiteID, int64(5)).Return(int64(0), assert.AnError)

	// Act
	result, err := svc.SyncWorksite(ctx, testWorksiteID)

	// Assert
	// ошибка очистки не ломает проход
	require.NoError(t, err)
	require.Len(t, result.ChangeResults, 1)
	out := buf.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, "clientWorksiteSyncService.pruneSynced")
	assert.Contains(t, out, "failed to prune synced changes")
	assert.Contains(t, out, `"sync_session":"session-1"`)
	assert.Contains(t, out, assert.AnError.Error())
}

func TestSyncWorksite_SkipsAfterMaxAttempts(t *testing.T) {
	// Arrange
	svc, m := newSyncTestService(t, WorksiteSyncOptions{MaxSyncAttempts: 3})
	start := newTestSnapshot(100)
	first := newTestSnapshot(100)
	first.Core.Name = "first"
	second := newTestSnapshot(100)
	second.Core.Name = "second"

	queued := []models.QueuedWorksiteChange{
		queuedRow(t, 5, 2, &start, first),
		queuedRow(t, 6, 0, &first, second),
	}
	push := models.NetworkWorksitePush{Name: "first"}

	var updates []models.ChangeSyncUpdate
	m.changes.EXPECT().GetQueuedChanges(gomock.Any(), testWorksiteID).Return(queued, nil)
	m.idMaps.EXPECT().GetIDMaps(gomock.Any(), testWorksiteID).Return(models.NewIDMaps(), nil)
	m.changes.EXPECT().GetLatestSyncedChange(gomock.Any(), testWorksiteID).Return(nil, nil)
	m.changes.EXPECT().HasSkippedChangesAfter(gomock.Any(), testWorksiteID, int64(0)).Return(false, nil)
	m.gateway.EXPECT().GetWorksite(gomock.Any(), int64(100)).Return(newTestRemote(100), nil).AnyTimes()
	gomock.InOrder(
		m.operator.EXPECT().ChangeSet(gomock.Any(), gomock.Any(), first, gomock.Any()).
			Return(models.WorksiteChangeSet{Worksite: &push}),
		m.gateway.EXPECT().SaveWorksite(gomock.Any(), push).
			Return(models.NetworkWorksiteFull{}, fmt.Errorf("save worksite: %w", adapter.ErrBadRequest)),
	)
	// второй change без опорного снимка становится созданием
	m.operator.EXPECT().NewChangeSet(second).Return(models.WorksiteChangeSet{})
	m.operator.EXPECT().FilterExisting(gomock.Any(), gomock.Any()).Return(models.WorksiteChangeSet{})
	m.changes.EXPECT().UpdateSyncStatus(gomock.Any(), gomock.Any()).DoAndReturn(captureUpdates(&updates))
	m.idMaps.EXPECT().SaveIDMaps(gomock.Any(), testWorksiteID, gomock.Any()).Return(nil)

	// Act
	result, err := svc.SyncWorksite(syncContext(), testWorksiteID)

	// Assert
	require.NoError(t, err)
	require.Len(t, result.ChangeResults, 2)
	require.Len(t, updates, 2)

	assert.Equal(t, int64(5), updates[0].ID)
	assert.Equal(t, models.ArchiveActionSkipped, updates[0].ArchiveAction)
	assert.False(t, updates[0].IsPartiallySynced)

	// успешный change после неудачи не архивируется
	assert.Equal(t, int64(6), updates[1].ID)
	assert.Equal(t, models.ArchiveActionNone, updates[1].ArchiveAction)
	assert.True(t, updates[1].IsAttempt)
	assert.True(t, updates[1].IsPartiallySynced)
}

func TestSyncWorksite_UnreadableRowsAreSkipped(t *testing.T) {
	svc, m := newSyncTestService(t, WorksiteSyncOptions{})
	start := newTestSnapshot(100)
	broken := queuedRow(t, 5, 0, &start, newTestSnapshot(100))
	broken.ModelVersion = 99
	valid := queuedRow(t, 6, 0, &start, newTestSnapshot(100))

	reference := &models.WorksiteChange{Change: newTestSnapshot(100)}
	reference.Change.Core.Name = "confirmed"
	version, payload, err := NewChangeSerializer().Serialize(*reference, models.NewIDMaps())
	require.NoError(t, err)
	latest := &models.QueuedWorksiteChange{ID: 4, WorksiteID: testWorksiteID, ModelVersion: version, Payload: payload}

	var updates []models.ChangeSyncUpdate
	m.changes.EXPECT().GetQueuedChanges(gomock.Any(), testWorksiteID).Return([]models.QueuedWorksiteChange{broken, valid}, nil)
	m.idMaps.EXPECT().GetIDMaps(gomock.Any(), testWorksiteID).Return(models.NewIDMaps(), nil)
	m.changes.EXPECT().GetLatestSyncedChange(gomock.Any(), testWorksiteID).Return(latest, nil)
	m.changes.EXPECT().HasSkippedChangesAfter(gomock.Any(), testWorksiteID, int64(4)).Return(false, nil)
	m.gateway.EXPECT().GetWorksite(gomock.Any(), int64(100)).Return(newTestRemote(100), nil)
	// цепочка перебазирована на подтверждённый снимок
	m.operator.EXPECT().ChangeSet(gomock.Any(), reference.Change, gomock.Any(), gomock.Any()).
		Return(models.WorksiteChangeSet{})
	m.changes.EXPECT().UpdateSyncStatus(gomock.Any(), gomock.Any()).DoAndReturn(captureUpdates(&updates))
	m.idMaps.EXPECT().SaveIDMaps(gomock.Any(), testWorksiteID, gomock.Any()).Return(nil)
	m.changes.EXPECT().DeleteSyncedBefore(gomock.Any(), testWorksiteID, int64(6)).Return(int64(1), nil)

	_, err = svc.SyncWorksite(syncContext(), testWorksiteID)

	require.NoError(t, err)
	require.Len(t, updates, 2)
	assert.Equal(t, models.ChangeSyncUpdate{ID: 5, ArchiveAction: models.ArchiveActionSkipped}, updates[0])
	assert.Equal(t, int64(6), updates[1].ID)
	assert.Equal(t, models.ArchiveActionSynced, updates[1].ArchiveAction)
}

func TestSyncWorksite_AbortLeavesQueueUntouched(t *testing.T) {
	svc, m := newSyncTestService(t, WorksiteSyncOptions{MaxSyncAttempts: 1})
	start := newTestSnapshot(100)
	queued := []models.QueuedWorksiteChange{
		queuedRow(t, 5, 0, &start, newTestSnapshot(100)),
		queuedRow(t, 6, 0, &start, newTestSnapshot(100)),
	}

	var updates []models.ChangeSyncUpdate
	m.changes.EXPECT().GetQueuedChanges(gomock.Any(), testWorksiteID).Return(queued, nil)
	m.idMaps.EXPECT().GetIDMaps(gomock.Any(), testWorksiteID).Return(models.NewIDMaps(), nil)
	m.changes.EXPECT().GetLatestSyncedChange(gomock.Any(), testWorksiteID).Return(nil, nil)
	m.changes.EXPECT().HasSkippedChangesAfter(gomock.Any(), testWorksiteID, int64(0)).Return(false, nil)
	m.gateway.EXPECT().GetWorksite(gomock.Any(), int64(100)).
		Return(models.NetworkWorksiteFull{}, adapter.ErrNoConnection)
	m.changes.EXPECT().UpdateSyncStatus(gomock.Any(), gomock.Any()).DoAndReturn(captureUpdates(&updates))
	m.idMaps.EXPECT().SaveIDMaps(gomock.Any(), testWorksiteID, gomock.Any()).Return(nil)

	result, err := svc.SyncWorksite(syncContext(), testWorksiteID)

	require.NoError(t, err)
	require.Len(t, result.ChangeResults, 1)
	assert.True(t, result.ChangeResults[0].IsAborted)
	assert.Empty(t, updates)
	assert.Equal(t, SyncAlertNoInternet, result.Alert())
}

func TestSyncWorksite_InvalidChain(t *testing.T) {
	svc, m := newSyncTestService(t, WorksiteSyncOptions{})
	queued := []models.QueuedWorksiteChange{
		queuedRow(t, 5, 0, nil, newTestSnapshot(0)),
		queuedRow(t, 6, 0, nil, newTestSnapshot(0)),
	}

	m.changes.EXPECT().GetQueuedChanges(gomock.Any(), testWorksiteID).Return(queued, nil)
	m.idMaps.EXPECT().GetIDMaps(gomock.Any(), testWorksiteID).Return(models.NewIDMaps(), nil)
	m.changes.EXPECT().GetLatestSyncedChange(gomock.Any(), testWorksiteID).Return(nil, nil)
	m.changes.EXPECT().HasSkippedChangesAfter(gomock.Any(), testWorksiteID, int64(0)).Return(false, nil)

	_, err := svc.SyncWorksite(syncContext(), testWorksiteID)

	assert.ErrorIs(t, err, ErrChangeChainGap)
}

func TestSyncWorksite_StoreErrors(t *testing.T) {
	t.Run("queue", func(t *testing.T) {
		svc, m := newSyncTestService(t, WorksiteSyncOptions{})
		m.changes.EXPECT().GetQueuedChanges(gomock.Any(), testWorksiteID).Return(nil, assert.AnError)

		_, err := svc.SyncWorksite(syncContext(), testWorksiteID)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("status update", func(t *testing.T) {
		svc, m := newSyncTestService(t, WorksiteSyncOptions{})
		start := newTestSnapshot(100)
		queued := []models.QueuedWorksiteChange{queuedRow(t, 5, 0, &start, newTestSnapshot(100))}

		m.changes.EXPECT().GetQueuedChanges(gomock.Any(), testWorksiteID).Return(queued, nil)
		m.idMaps.EXPECT().GetIDMaps(gomock.Any(), testWorksiteID).Return(models.NewIDMaps(), nil)
		m.changes.EXPECT().GetLatestSyncedChange(gomock.Any(), testWorksiteID).Return(nil, nil)
		m.changes.EXPECT().HasSkippedChangesAfter(gomock.Any(), testWorksiteID, int64(0)).Return(false, nil)
		m.gateway.EXPECT().GetWorksite(gomock.Any(), int64(100)).Return(newTestRemote(100), nil)
		m.operator.EXPECT().ChangeSet(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(models.WorksiteChangeSet{})
		m.changes.EXPECT().UpdateSyncStatus(gomock.Any(), gomock.Any()).Return(assert.AnError)

		result, err := svc.SyncWorksite(syncContext(), testWorksiteID)
		assert.ErrorIs(t, err, assert.AnError)
		assert.Len(t, result.ChangeResults, 1)
	})
}

func TestSyncWorksite_ConcurrentPassRejected(t *testing.T) {
	svc, _ := newSyncTestService(t, WorksiteSyncOptions{})
	release, err := svc.guard.acquire(testWorksiteID)
	require.NoError(t, err)
	defer release()

	_, err = svc.SyncWorksite(syncContext(), testWorksiteID)

	assert.ErrorIs(t, err, ErrConcurrentProcessing)
}

// ── SyncWorksites / SyncPending ─────────────────────────────────────────────

func TestSyncWorksites_CollectsResultsAndErrors(t *testing.T) {
	svc, m := newSyncTestService(t, WorksiteSyncOptions{Concurrency: 2})

	for _, id := range []int64{1, 2} {
		m.changes.EXPECT().GetQueuedChanges(gomock.Any(), id).Return(nil, nil)
		m.idMaps.EXPECT().GetIDMaps(gomock.Any(), id).Return(models.NewIDMaps(), nil)
	}
	m.changes.EXPECT().GetQueuedChanges(gomock.Any(), int64(3)).Return(nil, assert.AnError)

	results, err := svc.SyncWorksites(syncContext(), []int64{1, 2, 3})

	require.Error(t, err)
	assert.True(t, errors.Is(err, assert.AnError))
	assert.Contains(t, err.Error(), "worksite 3")

	ids := make([]int64, 0, len(results))
	for id := range results {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	assert.Equal(t, []int64{1, 2}, ids)
}

func TestSyncPending(t *testing.T) {
	t.Run("nothing pending", func(t *testing.T) {
		svc, m := newSyncTestService(t, WorksiteSyncOptions{})
		m.changes.EXPECT().GetWorksitesPendingSync(gomock.Any(), 10).Return(nil, nil)

		results, err := svc.SyncPending(syncContext(), 10)

		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("syncs each pending worksite", func(t *testing.T) {
		svc, m := newSyncTestService(t, WorksiteSyncOptions{})
		m.changes.EXPECT().GetWorksitesPendingSync(gomock.Any(), 10).Return([]int64{7}, nil)
		m.changes.EXPECT().GetQueuedChanges(gomock.Any(), int64(7)).Return(nil, nil)
		m.idMaps.EXPECT().GetIDMaps(gomock.Any(), int64(7)).Return(models.NewIDMaps(), nil)

		results, err := svc.SyncPending(syncContext(), 10)

		require.NoError(t, err)
		assert.Contains(t, results, int64(7))
	})

	t.Run("store error", func(t *testing.T) {
		svc, m := newSyncTestService(t, WorksiteSyncOptions{})
		m.changes.EXPECT().GetWorksitesPendingSync(gomock.Any(), 10).Return(nil, assert.AnError)

		_, err := svc.SyncPending(syncContext(), 10)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
