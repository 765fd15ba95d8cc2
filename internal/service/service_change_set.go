// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"reflect"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/crisiscleanup/worksite-sync/models"
)

// DefaultNoteDuplicateWindow is how close in time a remote note with the same
// normalized text must be for a local note to count as already synced.
const DefaultNoteDuplicateWindow = 12 * time.Hour

// unsyncedNetworkID marks a work type change the remote does not know yet.
const unsyncedNetworkID int64 = -1

// MergePolicy decides what a core field pushes after comparing the local
// start and change values with the remote value.
type MergePolicy int

const (
	// TakeChangeIfDiffers pushes the local change when it differs from start
	// and otherwise keeps the remote value. The field is never left absent.
	TakeChangeIfDiffers MergePolicy = iota

	// DeferToRemoteIfUnchanged pushes the local change when it differs from
	// start and otherwise defers entirely to the remote, absent value included.
	DeferToRemoteIfUnchanged
)

// Core field names used as keys of [CoreFieldPolicies].
const (
	FieldAddress              = "address"
	FieldAutoContactFrequency = "auto_contact_frequency_t"
	FieldCity                 = "city"
	FieldCounty               = "county"
	FieldEmail                = "email"
	FieldName                 = "name"
	FieldPhone1               = "phone1"
	FieldPhone2               = "phone2"
	FieldPhoneNotes           = "phone_notes"
	FieldPlusCode             = "plus_code"
	FieldPostalCode           = "postal_code"
	FieldState                = "state"
	FieldWhat3Words           = "what3words"
)

// CoreFieldPolicies is the merge policy of every text core field.
var CoreFieldPolicies = map[string]MergePolicy{
	FieldAddress:              TakeChangeIfDiffers,
	FieldAutoContactFrequency: TakeChangeIfDiffers,
	FieldCity:                 TakeChangeIfDiffers,
	FieldName:                 TakeChangeIfDiffers,
	FieldPhone1:               TakeChangeIfDiffers,
	FieldState:                TakeChangeIfDiffers,

	FieldCounty:     DeferToRemoteIfUnchanged,
	FieldEmail:      DeferToRemoteIfUnchanged,
	FieldPhone2:     DeferToRemoteIfUnchanged,
	FieldPhoneNotes: DeferToRemoteIfUnchanged,
	FieldPlusCode:   DeferToRemoteIfUnchanged,
	FieldPostalCode: DeferToRemoteIfUnchanged,
	FieldWhat3Words: DeferToRemoteIfUnchanged,
}

// MergeText applies the policy to one optional text field. A nil pointer is
// "no information"; start and change are compared after trimming.
func (p MergePolicy) MergeText(start, change, remote *string) *string {
	if textEqual(start, change) {
		if p == TakeChangeIfDiffers && remote == nil {
			return textValue(change)
		}
		return cloneText(remote)
	}
	return textValue(change)
}

// changeSetOperator is the concrete implementation of ChangeSetOperator.
// Like the sync planner it is a pure, in-memory computation.
type changeSetOperator struct {
	noteDuplicateWindow time.Duration
	now                 func() time.Time
}

// NewChangeSetOperator constructs a ChangeSetOperator. A non-positive
// noteDuplicateWindow falls back to [DefaultNoteDuplicateWindow].
func NewChangeSetOperator(noteDuplicateWindow time.Duration) ChangeSetOperator {
	if noteDuplicateWindow <= 0 {
		noteDuplicateWindow = DefaultNoteDuplicateWindow
	}
	return &changeSetOperator{
		noteDuplicateWindow: noteDuplicateWindow,
		now:                 time.Now,
	}
}

// NewChangeSet implements ChangeSetOperator.
func (o *changeSetOperator) NewChangeSet(change models.WorksiteSnapshot) models.WorksiteChangeSet {
	core := change.Core
	updatedAt := o.updatedAt(core)

	push := &models.NetworkWorksitePush{
		Address:               core.Address,
		AutoContactFrequencyT: core.AutoContactFrequencyT,
		City:                  core.City,
		County:                textValue(&core.County),
		Email:                 textValue(core.Email),
		FormData:              formDataPush(core.FormData),
		Incident:              core.IncidentID,
		KeyWorkType:           keyWorkType(change, models.IDMaps{}, nil),
		Location:              models.NewLocationPoint(core.Latitude, core.Longitude),
		Name:                  core.Name,
		Phone1:                core.Phone1,
		Phone2:                textValue(&core.Phone2),
		PhoneNotes:            textValue(&core.PhoneNotes),
		PlusCode:              textValue(core.PlusCode),
		PostalCode:            textValue(&core.PostalCode),
		ReportedBy:            core.ReportedBy,
		State:                 core.State,
		UpdatedAt:             updatedAt,
		What3Words:            textValue(core.What3Words),
		SkipDuplicateCheck:    boolPtr(true),
		SendSMS:               boolPtr(true),
	}

	var isOrgMember *bool
	if core.IsAssignedToOrgMember {
		isOrgMember = boolPtr(true)
	}

	var workTypeChanges []models.WorkTypeChange
	for _, wt := range change.WorkTypes {
		if !wt.WorkType.IsClaimed() {
			continue
		}
		changedAt := updatedAt
		if wt.WorkType.CreatedAt != nil {
			changedAt = *wt.WorkType.CreatedAt
		}
		workTypeChanges = append(workTypeChanges, models.WorkTypeChange{
			LocalID:        wt.LocalID,
			NetworkID:      unsyncedNetworkID,
			WorkType:       wt.WorkType,
			ChangedAt:      changedAt,
			IsClaimChange:  true,
			IsStatusChange: true,
		})
	}

	newFlags, _ := getFlagChanges(nil, nil, change.Flags, nil)

	return models.WorksiteChangeSet{
		UpdatedAtFallback: updatedAt,
		Worksite:          push,
		IsOrgMember:       isOrgMember,
		ExtraNotes:        newNotes(nil, change.Notes, nil),
		NewFlags:          newFlags,
		WorkTypeChanges:   workTypeChanges,
	}
}

// ChangeSet implements ChangeSetOperator.
func (o *changeSetOperator) ChangeSet(
	base models.NetworkWorksiteFull,
	start, change models.WorksiteSnapshot,
	idMaps models.IDMaps,
) models.WorksiteChangeSet {
	updatedAt := o.updatedAt(change.Core)
	newest := models.NewestWorkTypes(base.WorkTypes)

	formData, isFormDataChanged := getFormDataChanges(base.FormData, start.Core.FormData, change.Core.FormData)

	var keyType *models.NetworkWorkType
	if keyWorkTypeCode(start) == keyWorkTypeCode(change) {
		keyType = base.KeyWorkType
	} else {
		keyType = keyWorkType(change, idMaps, newest)
	}

	push := getCoreChange(base, start.Core, change.Core, formData, isFormDataChanged, keyType, updatedAt)
	newFlags, deleteFlagIDs := getFlagChanges(base.Flags, start.Flags, change.Flags, idMaps.Flags)
	notes := filterDuplicateNotes(base.Notes, newNotes(start.Notes, change.Notes, idMaps.Notes), o.noteDuplicateWindow)
	workTypeChanges, deleteWorkTypeIDs := getWorkTypeChanges(newest, start.WorkTypes, change.WorkTypes, idMaps.WorkTypes, updatedAt)

	return models.WorksiteChangeSet{
		UpdatedAtFallback: updatedAt,
		Worksite:          push,
		IsOrgMember:       getFavoriteChange(base, start.Core, change.Core),
		ExtraNotes:        notes,
		NewFlags:          newFlags,
		DeleteFlagIDs:     deleteFlagIDs,
		DeleteWorkTypeIDs: deleteWorkTypeIDs,
		WorkTypeChanges:   workTypeChanges,
	}
}

// FilterExisting implements ChangeSetOperator.
func (o *changeSetOperator) FilterExisting(base models.NetworkWorksiteFull, set models.WorksiteChangeSet) models.WorksiteChangeSet {
	if set.Worksite != nil {
		push := *set.Worksite
		push.ID = int64Ptr(base.ID)
		set.Worksite = &push
	}

	remoteReasons := make(map[string]struct{}, len(base.Flags))
	for _, f := range base.Flags {
		remoteReasons[f.ReasonT] = struct{}{}
	}
	flags := make([]models.LocalFlag, 0, len(set.NewFlags))
	for _, f := range set.NewFlags {
		if _, ok := remoteReasons[f.Flag.ReasonT]; !ok {
			flags = append(flags, f)
		}
	}
	set.NewFlags = flags
	set.ExtraNotes = filterDuplicateNotes(base.Notes, set.ExtraNotes, o.noteDuplicateWindow)

	if set.IsOrgMember != nil && *set.IsOrgMember == (base.Favorite != nil) {
		set.IsOrgMember = nil
	}

	return set
}

func (o *changeSetOperator) updatedAt(core models.CoreSnapshot) time.Time {
	if core.UpdatedAt != nil {
		return *core.UpdatedAt
	}
	return o.now().UTC()
}

// getCoreChange returns nil when the user did not touch any core field.
func getCoreChange(
	base models.NetworkWorksiteFull,
	start, change models.CoreSnapshot,
	formData []models.KeyDynamicValuePair,
	isFormDataChanged bool,
	keyType *models.NetworkWorkType,
	updatedAt time.Time,
) *models.NetworkWorksitePush {
	if !isFormDataChanged && reflect.DeepEqual(normalizeCore(start), normalizeCore(change)) {
		return nil
	}

	location := base.Location
	if start.Latitude != change.Latitude || start.Longitude != change.Longitude {
		location = models.NewLocationPoint(change.Latitude, change.Longitude)
	}

	var caseNumber *string
	if base.CaseNumber != "" {
		caseNumber = cloneText(&base.CaseNumber)
	}

	return &models.NetworkWorksitePush{
		ID:                    int64Ptr(base.ID),
		Address:               mergeRequired(FieldAddress, start.Address, change.Address, base.Address),
		AutoContactFrequencyT: mergeRequired(FieldAutoContactFrequency, start.AutoContactFrequencyT, change.AutoContactFrequencyT, base.AutoContactFrequencyT),
		CaseNumber:            caseNumber,
		City:                  mergeRequired(FieldCity, start.City, change.City, base.City),
		County:                mergeOptional(FieldCounty, &start.County, &change.County, base.County),
		Email:                 mergeOptional(FieldEmail, start.Email, change.Email, base.Email),
		Favorite:              base.Favorite,
		FormData:              formData,
		Incident:              takeChange(start.IncidentID, change.IncidentID, base.Incident),
		KeyWorkType:           keyType,
		Location:              location,
		Name:                  mergeRequired(FieldName, start.Name, change.Name, base.Name),
		Phone1:                mergeRequired(FieldPhone1, start.Phone1, change.Phone1, base.Phone1),
		Phone2:                mergeOptional(FieldPhone2, &start.Phone2, &change.Phone2, base.Phone2),
		PhoneNotes:            mergeOptional(FieldPhoneNotes, &start.PhoneNotes, &change.PhoneNotes, base.PhoneNotes),
		PlusCode:              mergeOptional(FieldPlusCode, start.PlusCode, change.PlusCode, base.PlusCode),
		PostalCode:            mergeOptional(FieldPostalCode, &start.PostalCode, &change.PostalCode, base.PostalCode),
		ReportedBy:            base.ReportedBy,
		State:                 mergeRequired(FieldState, start.State, change.State, base.State),
		SVI:                   base.SVI,
		UpdatedAt:             updatedAt,
		What3Words:            mergeOptional(FieldWhat3Words, start.What3Words, change.What3Words, base.What3Words),
	}
}

// normalizeCore clears the fields that do not represent a user edit.
// Form data is compared separately.
func normalizeCore(core models.CoreSnapshot) *models.CoreSnapshot {
	core.UpdatedAt = nil
	core.IsAssignedToOrgMember = false
	core.NetworkID = 0
	core.FavoriteID = nil
	core.FormData = nil
	return &core
}

func mergeRequired(field string, start, change, remote string) string {
	merged := CoreFieldPolicies[field].MergeText(&start, &change, &remote)
	if merged == nil {
		return ""
	}
	return *merged
}

func mergeOptional(field string, start, change, remote *string) *string {
	return CoreFieldPolicies[field].MergeText(start, change, remote)
}

func takeChange[T comparable](start, change, remote T) T {
	if start != change {
		return change
	}
	return remote
}

// getFavoriteChange returns the favorite state to push, or nil.
func getFavoriteChange(base models.NetworkWorksiteFull, start, change models.CoreSnapshot) *bool {
	if start.IsAssignedToOrgMember == change.IsAssignedToOrgMember {
		return nil
	}
	if change.IsAssignedToOrgMember == (base.Favorite != nil) {
		return nil
	}
	return boolPtr(change.IsAssignedToOrgMember)
}

// getFlagChanges returns the flags to create and the remote flag ids to
// delete. Flags are matched by reason.
func getFlagChanges(
	remote []models.NetworkFlag,
	start, change []models.FlagSnapshot,
	idMap map[int64]int64,
) ([]models.LocalFlag, []int64) {
	resolve := func(f models.FlagSnapshot) int64 {
		if f.Flag.ID > 0 {
			return f.Flag.ID
		}
		if id := idMap[f.LocalID]; id > 0 {
			return id
		}
		return 0
	}

	remoteByReason := make(map[string][]int64, len(remote))
	remoteIDs := make(map[int64]struct{}, len(remote))
	for _, f := range remote {
		remoteByReason[f.ReasonT] = append(remoteByReason[f.ReasonT], f.NetworkID())
		if id := f.NetworkID(); id > 0 {
			remoteIDs[id] = struct{}{}
		}
	}

	startReasons := make(map[string]struct{}, len(start))
	for _, f := range start {
		startReasons[f.Flag.ReasonT] = struct{}{}
	}

	changeReasons := make(map[string]struct{}, len(change))
	var newFlags []models.LocalFlag
	for _, f := range change {
		reason := f.Flag.ReasonT
		if _, seen := changeReasons[reason]; seen {
			continue
		}
		changeReasons[reason] = struct{}{}

		if resolve(f) > 0 {
			continue
		}
		if _, ok := startReasons[reason]; ok {
			continue
		}
		if _, ok := remoteByReason[reason]; ok {
			continue
		}
		newFlags = append(newFlags, models.LocalFlag{LocalID: f.LocalID, Flag: toNetworkFlag(f.Flag)})
	}

	deleted := make(map[int64]struct{})
	for _, f := range start {
		if _, ok := changeReasons[f.Flag.ReasonT]; ok {
			continue
		}
		if id := resolve(f); id > 0 {
			if _, ok := remoteIDs[id]; ok {
				deleted[id] = struct{}{}
				continue
			}
		}
		for _, id := range remoteByReason[f.Flag.ReasonT] {
			if id > 0 {
				deleted[id] = struct{}{}
			}
		}
	}

	return newFlags, sortedIDs(deleted)
}

// getFormDataChanges merges local form edits into the remote form data.
// The second result is false, and remote is returned as is, when the user
// changed nothing.
func getFormDataChanges(
	remote []models.KeyDynamicValuePair,
	start, change map[string]models.WorksiteFormValue,
) ([]models.KeyDynamicValuePair, bool) {
	changed := make(map[string]models.WorksiteFormValue)
	var deleted []string
	for key, value := range change {
		startValue, ok := start[key]
		if !ok || !startValue.Equal(value) {
			changed[key] = value
		}
	}
	for key := range start {
		if _, ok := change[key]; !ok {
			deleted = append(deleted, key)
		}
	}

	if len(changed) == 0 && len(deleted) == 0 {
		return remote, false
	}

	merged := make(map[string]models.DynamicValue, len(remote)+len(changed))
	for _, kv := range remote {
		merged[kv.Key] = kv.Value
	}
	for key, value := range changed {
		merged[key] = toDynamicValue(value)
	}
	for _, key := range deleted {
		delete(merged, key)
	}

	return sortedFormData(merged), true
}

// newNotes returns the change's notes that the remote has not confirmed and
// that were not already part of start.
func newNotes(start, change []models.NoteSnapshot, idMap map[int64]int64) []models.LocalNote {
	startIDs := make(map[int64]struct{}, len(start))
	for _, n := range start {
		startIDs[n.LocalID] = struct{}{}
	}

	var notes []models.LocalNote
	for _, n := range change {
		if n.Note.ID > 0 || idMap[n.LocalID] > 0 {
			continue
		}
		if _, ok := startIDs[n.LocalID]; ok {
			continue
		}
		notes = append(notes, models.LocalNote{LocalID: n.LocalID, Note: toNetworkNote(n.Note)})
	}
	return notes
}

// filterDuplicateNotes drops candidates whose normalized text matches a
// remote note created within window of the candidate.
func filterDuplicateNotes(remote []models.NetworkNote, candidates []models.LocalNote, window time.Duration) []models.LocalNote {
	if len(candidates) == 0 || len(remote) == 0 {
		return candidates
	}

	byText := make(map[string][]time.Time, len(remote))
	for _, n := range remote {
		key := normalizeNote(n.Note)
		byText[key] = append(byText[key], n.CreatedAt)
	}

	filtered := make([]models.LocalNote, 0, len(candidates))
	for _, c := range candidates {
		isDuplicate := false
		for _, createdAt := range byText[normalizeNote(c.Note.Note)] {
			delta := c.Note.CreatedAt.Sub(createdAt)
			if delta < 0 {
				delta = -delta
			}
			if delta <= window {
				isDuplicate = true
				break
			}
		}
		if !isDuplicate {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func normalizeNote(note string) string {
	return strings.ToLower(strings.TrimSpace(note))
}

type resolvedWorkType struct {
	snapshot  models.WorkTypeSnapshot
	networkID int64
}

// getWorkTypeChanges returns the claim/status writes and the remote ids of
// work types removed locally.
func getWorkTypeChanges(
	newest map[string]models.NetworkWorkType,
	start, change []models.WorkTypeSnapshot,
	idMap map[int64]int64,
	changedAt time.Time,
) ([]models.WorkTypeChange, []int64) {
	startByCode := resolveWorkTypes(start, idMap, newest)
	changeByCode := resolveWorkTypes(change, idMap, newest)

	var changes []models.WorkTypeChange
	for code, c := range changeByCode {
		wt := c.snapshot.WorkType
		s, inStart := startByCode[code]

		if c.networkID <= 0 && !inStart {
			changes = append(changes, models.WorkTypeChange{
				LocalID:        c.snapshot.LocalID,
				NetworkID:      unsyncedNetworkID,
				WorkType:       wt,
				ChangedAt:      changedAt,
				IsClaimChange:  wt.IsClaimed(),
				IsStatusChange: true,
			})
			continue
		}

		remote, inRemote := newest[code]
		var reference models.WorkType
		switch {
		case inStart:
			reference = s.snapshot.WorkType
		case inRemote:
			reference = fromNetworkWorkType(remote)
		}

		isClaimChange := !sameClaim(reference.OrgClaim, wt.OrgClaim)
		isStatusChange := strings.TrimSpace(reference.Status) != strings.TrimSpace(wt.Status)
		if !isClaimChange && !isStatusChange {
			continue
		}

		wt.ID = c.networkID
		if inRemote {
			wt.CreatedAt = remote.CreatedAt
			wt.NextRecurAt = remote.NextRecurAt
			wt.Phase = remote.Phase
			wt.Recur = remote.Recur
		}
		networkID := c.networkID
		if networkID <= 0 {
			networkID = unsyncedNetworkID
		}
		changes = append(changes, models.WorkTypeChange{
			LocalID:        c.snapshot.LocalID,
			NetworkID:      networkID,
			WorkType:       wt,
			ChangedAt:      changedAt,
			IsClaimChange:  isClaimChange,
			IsStatusChange: isStatusChange,
		})
	}
	sort.Slice(changes, func(i, j int) bool {
		return changes[i].WorkType.WorkType < changes[j].WorkType.WorkType
	})

	deleted := make(map[int64]struct{})
	for code := range startByCode {
		if _, ok := changeByCode[code]; ok {
			continue
		}
		if remote, ok := newest[code]; ok && remote.NetworkID() > 0 {
			deleted[remote.NetworkID()] = struct{}{}
		}
	}

	return changes, sortedIDs(deleted)
}

// resolveWorkTypes indexes snapshots by code, resolving each network id from
// the embedded id, then the id map, then the remote work type of that code.
// Among duplicate codes the highest resolved id wins.
func resolveWorkTypes(
	workTypes []models.WorkTypeSnapshot,
	idMap map[int64]int64,
	newest map[string]models.NetworkWorkType,
) map[string]resolvedWorkType {
	byCode := make(map[string]resolvedWorkType, len(workTypes))
	for _, wt := range workTypes {
		code := wt.WorkType.WorkType
		id := wt.WorkType.ID
		if id <= 0 {
			id = idMap[wt.LocalID]
		}
		if id <= 0 {
			if remote, ok := newest[code]; ok {
				id = remote.NetworkID()
			}
		}
		if current, ok := byCode[code]; ok && current.networkID > id {
			continue
		}
		byCode[code] = resolvedWorkType{snapshot: wt, networkID: max(id, 0)}
	}
	return byCode
}

func keyWorkTypeCode(snapshot models.WorksiteSnapshot) string {
	if snapshot.Core.KeyWorkTypeID == nil {
		return ""
	}
	for _, wt := range snapshot.WorkTypes {
		if wt.LocalID == *snapshot.Core.KeyWorkTypeID {
			return wt.WorkType.WorkType
		}
	}
	return ""
}

// keyWorkType resolves the change's key work type reference.
func keyWorkType(snapshot models.WorksiteSnapshot, idMaps models.IDMaps, newest map[string]models.NetworkWorkType) *models.NetworkWorkType {
	if snapshot.Core.KeyWorkTypeID == nil {
		return nil
	}
	idx := slices.IndexFunc(snapshot.WorkTypes, func(wt models.WorkTypeSnapshot) bool {
		return wt.LocalID == *snapshot.Core.KeyWorkTypeID
	})
	if idx < 0 {
		return nil
	}

	wt := snapshot.WorkTypes[idx]
	id := wt.WorkType.ID
	if id <= 0 {
		id = idMaps.WorkTypeID(wt.LocalID)
	}
	if id <= 0 {
		if remote, ok := newest[wt.WorkType.WorkType]; ok {
			id = remote.NetworkID()
		}
	}

	keyType := toNetworkWorkType(wt.WorkType)
	keyType.ID = nil
	if id > 0 {
		keyType.ID = int64Ptr(id)
	}
	return &keyType
}

func sameClaim(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func toNetworkFlag(f models.Flag) models.NetworkFlag {
	flag := models.NetworkFlag{
		CreatedAt:      f.CreatedAt,
		IsHighPriority: boolPtr(f.IsHighPriority),
		ReasonT:        f.ReasonT,
	}
	if f.Action != "" {
		flag.Action = cloneText(&f.Action)
	}
	if f.Notes != "" {
		flag.Notes = cloneText(&f.Notes)
	}
	if f.RequestedAction != "" {
		flag.RequestedAction = cloneText(&f.RequestedAction)
	}
	return flag
}

func toNetworkNote(n models.Note) models.NetworkNote {
	return models.NetworkNote{
		CreatedAt:  n.CreatedAt,
		IsSurvivor: n.IsSurvivor,
		Note:       n.Note,
	}
}

func toNetworkWorkType(w models.WorkType) models.NetworkWorkType {
	wt := models.NetworkWorkType{
		CreatedAt:   w.CreatedAt,
		OrgClaim:    w.OrgClaim,
		NextRecurAt: w.NextRecurAt,
		Phase:       w.Phase,
		Recur:       w.Recur,
		Status:      w.Status,
		WorkType:    w.WorkType,
	}
	if w.ID > 0 {
		wt.ID = int64Ptr(w.ID)
	}
	return wt
}

func fromNetworkWorkType(w models.NetworkWorkType) models.WorkType {
	return models.WorkType{
		ID:          w.NetworkID(),
		CreatedAt:   w.CreatedAt,
		OrgClaim:    w.OrgClaim,
		NextRecurAt: w.NextRecurAt,
		Phase:       w.Phase,
		Recur:       w.Recur,
		Status:      w.Status,
		WorkType:    w.WorkType,
	}
}

func toDynamicValue(v models.WorksiteFormValue) models.DynamicValue {
	return models.DynamicValue{
		ValueString:  v.ValueString,
		IsBoolean:    v.IsBoolean,
		ValueBoolean: v.ValueBoolean,
	}
}

func formDataPush(formData map[string]models.WorksiteFormValue) []models.KeyDynamicValuePair {
	values := make(map[string]models.DynamicValue, len(formData))
	for key, value := range formData {
		values[key] = toDynamicValue(value)
	}
	return sortedFormData(values)
}

func sortedFormData(values map[string]models.DynamicValue) []models.KeyDynamicValuePair {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	formData := make([]models.KeyDynamicValuePair, 0, len(keys))
	for _, key := range keys {
		formData = append(formData, models.KeyDynamicValuePair{Key: key, Value: values[key]})
	}
	return formData
}

func sortedIDs(ids map[int64]struct{}) []int64 {
	if len(ids) == 0 {
		return nil
	}
	sorted := make([]int64, 0, len(ids))
	for id := range ids {
		sorted = append(sorted, id)
	}
	slices.Sort(sorted)
	return sorted
}

func textEqual(a, b *string) bool {
	return strings.TrimSpace(deref(a)) == strings.TrimSpace(deref(b))
}

// textValue returns an explicit value: nil input becomes a pointer to "".
func textValue(s *string) *string {
	v := deref(s)
	return &v
}

func cloneText(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func boolPtr(v bool) *bool {
	return &v
}

func int64Ptr(v int64) *int64 {
	return &v
}
