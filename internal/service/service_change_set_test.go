// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/crisiscleanup/worksite-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOperator() *changeSetOperator {
	op := NewChangeSetOperator(0).(*changeSetOperator)
	op.now = func() time.Time { return fixtureTime }
	return op
}

// ── NewChangeSet ────────────────────────────────────────────────────────────

func TestNewChangeSet_ClaimedWorkTypesOnly(t *testing.T) {
	// Arrange
	change := newTestSnapshot(0)
	change.WorkTypes = []models.WorkTypeSnapshot{
		workTypeSnapshot(11, 0, "debris", "open_unassigned", ptr(int64(52))),
		workTypeSnapshot(12, 0, "trees", "open_unassigned", nil),
	}
	change.Flags = []models.FlagSnapshot{flagSnapshot(21, 0, "flag.worksite_high_priority")}
	change.Notes = []models.NoteSnapshot{noteSnapshot(31, 0, "call first", fixtureTime)}

	// Act
	set := newTestOperator().NewChangeSet(change)

	// Assert
	require.NotNil(t, set.Worksite)
	assert.Nil(t, set.Worksite.ID)
	require.NotNil(t, set.Worksite.SkipDuplicateCheck)
	assert.True(t, *set.Worksite.SkipDuplicateCheck)
	require.NotNil(t, set.Worksite.SendSMS)
	assert.True(t, *set.Worksite.SendSMS)
	assert.Equal(t, "123 Main St", set.Worksite.Address)
	assert.Equal(t, models.NewLocationPoint(37.2, -93.3), set.Worksite.Location)

	require.Len(t, set.WorkTypeChanges, 1)
	wt := set.WorkTypeChanges[0]
	assert.Equal(t, "debris", wt.WorkType.WorkType)
	assert.True(t, wt.IsClaimChange)
	assert.True(t, wt.IsStatusChange)
	assert.Equal(t, int64(-1), wt.NetworkID)

	require.Len(t, set.NewFlags, 1)
	assert.Equal(t, int64(21), set.NewFlags[0].LocalID)
	require.Len(t, set.ExtraNotes, 1)
	assert.Equal(t, int64(31), set.ExtraNotes[0].LocalID)

	// не назначен на участника организации: favorite не трогаем
	assert.Nil(t, set.IsOrgMember)
}

func TestNewChangeSet_AssignedToOrgMember(t *testing.T) {
	change := newTestSnapshot(0)
	change.Core.IsAssignedToOrgMember = true

	set := newTestOperator().NewChangeSet(change)

	require.NotNil(t, set.IsOrgMember)
	assert.True(t, *set.IsOrgMember)
}

// ── ChangeSet: no-op ────────────────────────────────────────────────────────

func TestChangeSet_SameSnapshotIsNoOp(t *testing.T) {
	snapshot := newTestSnapshot(100)
	snapshot.Flags = []models.FlagSnapshot{flagSnapshot(21, 0, "flag.a")}
	snapshot.Notes = []models.NoteSnapshot{noteSnapshot(31, 0, "hello", fixtureTime)}
	snapshot.WorkTypes = []models.WorkTypeSnapshot{workTypeSnapshot(11, 71, "debris", "open_assigned", ptr(int64(52)))}
	snapshot.Core.FormData = map[string]models.WorksiteFormValue{"tarps_needed": {IsBoolean: true, ValueBoolean: true}}

	set := newTestOperator().ChangeSet(newTestRemote(100), snapshot, snapshot, models.NewIDMaps())

	assert.Nil(t, set.Worksite)
	assert.Nil(t, set.IsOrgMember)
	assert.Empty(t, set.NewFlags)
	assert.Empty(t, set.DeleteFlagIDs)
	assert.Empty(t, set.ExtraNotes)
	assert.Empty(t, set.WorkTypeChanges)
	assert.Empty(t, set.DeleteWorkTypeIDs)
	assert.True(t, set.IsEmpty())
}

func TestChangeSet_UpdatedAtAloneIsNoOp(t *testing.T) {
	start := newTestSnapshot(100)
	change := newTestSnapshot(100)
	later := fixtureTime.Add(time.Hour)
	change.Core.UpdatedAt = &later
	change.Core.IsAssignedToOrgMember = false

	set := newTestOperator().ChangeSet(newTestRemote(100), start, change, models.NewIDMaps())

	assert.Nil(t, set.Worksite)
}

// ── ChangeSet: core merge policies ─────────────────────────────────────────

func TestChangeSet_DeferToRemoteForUntouchedOptionalFields(t *testing.T) {
	// Arrange: локально county не менялся (отличается только пробелами), на сервере другое значение
	start := newTestSnapshot(100)
	start.Core.County = "Greene"
	start.Core.Email = ptr("a@example.com")
	start.Core.Phone2 = "555-0101"
	start.Core.PlusCode = ptr("86C7+2X")
	start.Core.What3Words = ptr("one.two.three")
	start.Core.PhoneNotes = "evenings"
	start.Core.PostalCode = "65801"

	change := start
	change.Core.County = " Greene "
	change.Core.Name = "Jane Q Doe"

	remote := newTestRemote(100)
	remote.County = ptr("Christian")
	remote.Email = ptr("remote@example.com")
	remote.Phone2 = ptr("555-0199")
	remote.PlusCode = nil
	remote.What3Words = ptr("four.five.six")
	remote.PhoneNotes = ptr("mornings")
	remote.PostalCode = ptr("65802")

	// Act
	set := newTestOperator().ChangeSet(remote, start, change, models.NewIDMaps())

	// Assert
	require.NotNil(t, set.Worksite)
	push := set.Worksite
	assert.Equal(t, "Jane Q Doe", push.Name)
	assert.Equal(t, ptr("Christian"), push.County)
	assert.Equal(t, ptr("remote@example.com"), push.Email)
	assert.Equal(t, ptr("555-0199"), push.Phone2)
	assert.Nil(t, push.PlusCode)
	assert.Equal(t, ptr("four.five.six"), push.What3Words)
	assert.Equal(t, ptr("mornings"), push.PhoneNotes)
	assert.Equal(t, ptr("65802"), push.PostalCode)
	require.NotNil(t, push.ID)
	assert.Equal(t, int64(100), *push.ID)
}

func TestChangeSet_ChangedFieldsTakeChange(t *testing.T) {
	start := newTestSnapshot(100)
	change := newTestSnapshot(100)
	change.Core.City = "Branson"
	change.Core.Email = ptr("")
	start.Core.Email = ptr("old@example.com")

	remote := newTestRemote(100)
	remote.City = "Ozark"
	remote.Email = ptr("old@example.com")

	set := newTestOperator().ChangeSet(remote, start, change, models.NewIDMaps())

	require.NotNil(t, set.Worksite)
	assert.Equal(t, "Branson", set.Worksite.City)
	// явно очищенное поле уходит пустой строкой, а не nil
	assert.Equal(t, ptr(""), set.Worksite.Email)
}

func TestChangeSet_Location(t *testing.T) {
	start := newTestSnapshot(100)
	remote := newTestRemote(100)
	remote.Location = models.NewLocationPoint(1, 2)

	t.Run("unchanged keeps remote location", func(t *testing.T) {
		change := start
		change.Core.Name = "other"
		set := newTestOperator().ChangeSet(remote, start, change, models.NewIDMaps())
		require.NotNil(t, set.Worksite)
		assert.Equal(t, models.NewLocationPoint(1, 2), set.Worksite.Location)
	})

	t.Run("moved pushes local location", func(t *testing.T) {
		change := start
		change.Core.Latitude = 40
		set := newTestOperator().ChangeSet(remote, start, change, models.NewIDMaps())
		require.NotNil(t, set.Worksite)
		assert.Equal(t, models.NewLocationPoint(40, -93.3), set.Worksite.Location)
	})
}

func TestMergePolicy_MergeText(t *testing.T) {
	tests := []struct {
		name                  string
		policy                MergePolicy
		start, change, remote *string
		want                  *string
	}{
		{name: "take: changed", policy: TakeChangeIfDiffers, start: ptr("a"), change: ptr("b"), remote: ptr("c"), want: ptr("b")},
		{name: "take: unchanged keeps remote", policy: TakeChangeIfDiffers, start: ptr("a"), change: ptr(" a"), remote: ptr("c"), want: ptr("c")},
		{name: "take: unchanged, remote absent", policy: TakeChangeIfDiffers, start: ptr("a"), change: ptr("a"), remote: nil, want: ptr("a")},
		{name: "defer: unchanged, remote absent", policy: DeferToRemoteIfUnchanged, start: ptr("a"), change: ptr("a"), remote: nil, want: nil},
		{name: "defer: cleared", policy: DeferToRemoteIfUnchanged, start: ptr("a"), change: nil, remote: ptr("a"), want: ptr("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.policy.MergeText(tt.start, tt.change, tt.remote))
		})
	}
}

// ── ChangeSet: favorite ─────────────────────────────────────────────────────

func TestChangeSet_Favorite(t *testing.T) {
	tests := []struct {
		name          string
		startAssigned bool
		assigned      bool
		remoteFav     bool
		want          *bool
	}{
		{name: "unchanged", startAssigned: true, assigned: true, want: nil},
		{name: "assigned, remote not favorite", assigned: true, want: ptr(true)},
		{name: "assigned, remote already favorite", assigned: true, remoteFav: true, want: nil},
		{name: "unassigned, remote favorite", startAssigned: true, remoteFav: true, want: ptr(false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := newTestSnapshot(100)
			start.Core.IsAssignedToOrgMember = tt.startAssigned
			change := newTestSnapshot(100)
			change.Core.IsAssignedToOrgMember = tt.assigned
			remote := newTestRemote(100)
			if tt.remoteFav {
				remote.Favorite = &models.NetworkFavorite{ID: 5}
			}

			set := newTestOperator().ChangeSet(remote, start, change, models.NewIDMaps())

			assert.Equal(t, tt.want, set.IsOrgMember)
		})
	}
}

// ── ChangeSet: flags ────────────────────────────────────────────────────────

func TestChangeSet_FlagReasonDedup(t *testing.T) {
	start := newTestSnapshot(100)
	change := newTestSnapshot(100)
	change.Flags = []models.FlagSnapshot{flagSnapshot(21, 0, "reasonA")}
	remote := newTestRemote(100)
	remote.Flags = []models.NetworkFlag{remoteFlag(501, "reasonA")}

	set := newTestOperator().ChangeSet(remote, start, change, models.NewIDMaps())

	assert.Empty(t, set.NewFlags)
}

func TestChangeSet_FlagAddAndDeleteByReason(t *testing.T) {
	start := newTestSnapshot(100)
	start.Flags = []models.FlagSnapshot{flagSnapshot(1, 0, "A"), flagSnapshot(2, 0, "B")}
	change := newTestSnapshot(100)
	change.Flags = []models.FlagSnapshot{flagSnapshot(2, 0, "B"), flagSnapshot(3, 0, "C")}

	t.Run("remote has no flags", func(t *testing.T) {
		set := newTestOperator().ChangeSet(newTestRemote(100), start, change, models.NewIDMaps())

		require.Len(t, set.NewFlags, 1)
		assert.Equal(t, "C", set.NewFlags[0].Flag.ReasonT)
		assert.Empty(t, set.DeleteFlagIDs)
	})

	t.Run("remote has A", func(t *testing.T) {
		remote := newTestRemote(100)
		remote.Flags = []models.NetworkFlag{remoteFlag(501, "A"), remoteFlag(502, "B")}

		set := newTestOperator().ChangeSet(remote, start, change, models.NewIDMaps())

		require.Len(t, set.NewFlags, 1)
		assert.Equal(t, int64(3), set.NewFlags[0].LocalID)
		assert.Equal(t, []int64{501}, set.DeleteFlagIDs)
	})
}

func TestChangeSet_FlagResolvedThroughIDMap(t *testing.T) {
	start := newTestSnapshot(100)
	change := newTestSnapshot(100)
	change.Flags = []models.FlagSnapshot{flagSnapshot(21, 0, "reasonA")}
	idMaps := models.NewIDMaps()
	idMaps.Flags[21] = 501

	set := newTestOperator().ChangeSet(newTestRemote(100), start, change, idMaps)

	assert.Empty(t, set.NewFlags)
}

// ── ChangeSet: form data ────────────────────────────────────────────────────

func TestChangeSet_FormData(t *testing.T) {
	start := newTestSnapshot(100)
	start.Core.FormData = map[string]models.WorksiteFormValue{
		"roof_damage":  {ValueString: "minor"},
		"tarps_needed": {IsBoolean: true, ValueBoolean: true},
		"removed_key":  {ValueString: "x"},
	}
	change := newTestSnapshot(100)
	change.Core.FormData = map[string]models.WorksiteFormValue{
		"roof_damage":  {ValueString: " minor "},
		"tarps_needed": {IsBoolean: true, ValueBoolean: false},
		"added_key":    {ValueString: "new"},
	}
	remote := newTestRemote(100)
	remote.FormData = []models.KeyDynamicValuePair{
		{Key: "roof_damage", Value: models.DynamicValue{ValueString: "major"}},
		{Key: "tarps_needed", Value: models.DynamicValue{IsBoolean: true, ValueBoolean: true}},
		{Key: "removed_key", Value: models.DynamicValue{ValueString: "x"}},
		{Key: "remote_only", Value: models.DynamicValue{ValueString: "keep"}},
	}

	set := newTestOperator().ChangeSet(remote, start, change, models.NewIDMaps())

	require.NotNil(t, set.Worksite)
	assert.Equal(t, []models.KeyDynamicValuePair{
		{Key: "added_key", Value: models.DynamicValue{ValueString: "new"}},
		{Key: "remote_only", Value: models.DynamicValue{ValueString: "keep"}},
		// пользователь не трогал: остаётся серверное значение
		{Key: "roof_damage", Value: models.DynamicValue{ValueString: "major"}},
		{Key: "tarps_needed", Value: models.DynamicValue{IsBoolean: true, ValueBoolean: false}},
	}, set.Worksite.FormData)
}

func TestGetFormDataChanges_NoDifferenceReturnsRemote(t *testing.T) {
	remote := []models.KeyDynamicValuePair{{Key: "b"}, {Key: "a"}}
	values := map[string]models.WorksiteFormValue{"a": {ValueString: "1"}}

	got, changed := getFormDataChanges(remote, values, values)

	assert.False(t, changed)
	assert.Equal(t, remote, got)
	assert.Same(t, &remote[0], &got[0])
}

// ── ChangeSet: notes ────────────────────────────────────────────────────────

func TestFilterDuplicateNotes_Window(t *testing.T) {
	remote := []models.NetworkNote{{ID: ptr(int64(1)), Note: "note-a", CreatedAt: fixtureTime}}

	tests := []struct {
		name      string
		createdAt time.Time
		wantKept  int
	}{
		{name: "within window is suppressed", createdAt: fixtureTime.Add(30 * time.Minute), wantKept: 0},
		{name: "outside window is kept", createdAt: fixtureTime.Add(13 * time.Hour), wantKept: 1},
		{name: "earlier within window is suppressed", createdAt: fixtureTime.Add(-time.Hour), wantKept: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates := []models.LocalNote{{LocalID: 31, Note: models.NetworkNote{Note: "Note-A ", CreatedAt: tt.createdAt}}}

			got := filterDuplicateNotes(remote, candidates, DefaultNoteDuplicateWindow)

			assert.Len(t, got, tt.wantKept)
		})
	}
}

func TestChangeSet_NewNotesOnly(t *testing.T) {
	start := newTestSnapshot(100)
	start.Notes = []models.NoteSnapshot{noteSnapshot(31, 0, "old", fixtureTime)}
	change := newTestSnapshot(100)
	change.Notes = []models.NoteSnapshot{
		noteSnapshot(31, 0, "old", fixtureTime),
		noteSnapshot(32, 0, "new", fixtureTime),
		noteSnapshot(33, 0, "mapped", fixtureTime),
	}
	idMaps := models.NewIDMaps()
	idMaps.Notes[33] = 603

	set := newTestOperator().ChangeSet(newTestRemote(100), start, change, idMaps)

	require.Len(t, set.ExtraNotes, 1)
	assert.Equal(t, int64(32), set.ExtraNotes[0].LocalID)
}

// ── ChangeSet: work types ───────────────────────────────────────────────────

func TestNewestWorkTypes_HighestIDWins(t *testing.T) {
	newest := models.NewestWorkTypes([]models.NetworkWorkType{
		remoteWorkType(5, "debris", "open", nil),
		remoteWorkType(9, "debris", "closed", nil),
		remoteWorkType(3, "debris", "open", nil),
	})

	require.Contains(t, newest, "debris")
	assert.Equal(t, int64(9), newest["debris"].NetworkID())
}

func TestChangeSet_WorkTypeChanges(t *testing.T) {
	org := ptr(int64(52))
	recur := ptr("RRULE:FREQ=WEEKLY")
	createdAt := fixtureTime.Add(-24 * time.Hour)

	start := newTestSnapshot(100)
	start.WorkTypes = []models.WorkTypeSnapshot{
		workTypeSnapshot(11, 71, "debris", "open_unassigned", nil),
		workTypeSnapshot(12, 0, "trees", "open_unassigned", nil),
		workTypeSnapshot(13, 73, "mold", "open_unassigned", nil),
	}
	change := newTestSnapshot(100)
	change.WorkTypes = []models.WorkTypeSnapshot{
		workTypeSnapshot(11, 71, "debris", "open_assigned", org),
		workTypeSnapshot(12, 0, "trees", "closed_completed", nil),
		workTypeSnapshot(14, 0, "muck_out", "open_unassigned", nil),
		workTypeSnapshot(15, 0, "roof", "open_unassigned", org),
	}

	remoteRoof := remoteWorkType(75, "roof", "open_unassigned", nil)
	remoteRoof.CreatedAt = &createdAt
	remoteRoof.Recur = recur
	remote := newTestRemote(100)
	remote.WorkTypes = []models.NetworkWorkType{
		remoteWorkType(71, "debris", "open_unassigned", nil),
		remoteWorkType(72, "trees", "open_unassigned", nil),
		remoteWorkType(73, "mold", "open_unassigned", nil),
		remoteRoof,
	}

	set := newTestOperator().ChangeSet(remote, start, change, models.NewIDMaps())

	byCode := map[string]models.WorkTypeChange{}
	for _, c := range set.WorkTypeChanges {
		byCode[c.WorkType.WorkType] = c
	}
	require.Len(t, byCode, 4)

	assert.True(t, byCode["debris"].IsClaimChange)
	assert.True(t, byCode["debris"].IsStatusChange)
	assert.Equal(t, int64(71), byCode["debris"].NetworkID)

	// trees resolved by code against the remote
	assert.False(t, byCode["trees"].IsClaimChange)
	assert.True(t, byCode["trees"].IsStatusChange)
	assert.Equal(t, int64(72), byCode["trees"].NetworkID)

	assert.Equal(t, int64(-1), byCode["muck_out"].NetworkID)
	assert.False(t, byCode["muck_out"].IsClaimChange)

	// roof already exists remotely: promoted to a change, remote metadata kept
	roof := byCode["roof"]
	assert.Equal(t, int64(75), roof.NetworkID)
	assert.True(t, roof.IsClaimChange)
	assert.False(t, roof.IsStatusChange)
	assert.Equal(t, &createdAt, roof.WorkType.CreatedAt)
	assert.Equal(t, recur, roof.WorkType.Recur)

	assert.Equal(t, []int64{73}, set.DeleteWorkTypeIDs)
}

// ── FilterExisting ──────────────────────────────────────────────────────────

func TestFilterExisting(t *testing.T) {
	change := newTestSnapshot(0)
	change.Core.IsAssignedToOrgMember = true
	change.Flags = []models.FlagSnapshot{flagSnapshot(21, 0, "A"), flagSnapshot(22, 0, "B")}
	change.Notes = []models.NoteSnapshot{noteSnapshot(31, 0, "hello", fixtureTime)}

	op := newTestOperator()
	set := op.NewChangeSet(change)

	remote := newTestRemote(100)
	remote.Flags = []models.NetworkFlag{remoteFlag(501, "A")}
	remote.Notes = []models.NetworkNote{{ID: ptr(int64(601)), Note: "hello", CreatedAt: fixtureTime}}
	remote.Favorite = &models.NetworkFavorite{ID: 5}

	filtered := op.FilterExisting(remote, set)

	require.NotNil(t, filtered.Worksite)
	require.NotNil(t, filtered.Worksite.ID)
	assert.Equal(t, int64(100), *filtered.Worksite.ID)
	require.Len(t, filtered.NewFlags, 1)
	assert.Equal(t, "B", filtered.NewFlags[0].Flag.ReasonT)
	assert.Empty(t, filtered.ExtraNotes)
	assert.Nil(t, filtered.IsOrgMember)

	// исходный набор не изменён
	assert.Nil(t, set.Worksite.ID)
	assert.Len(t, set.NewFlags, 2)
}
