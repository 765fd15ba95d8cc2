// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the value types shared by the sync engine: local
// worksite snapshots, remote (network) records, queued changes, computed
// change sets, and identifier maps.
package models

import (
	"strings"
	"time"
)

// WorksiteSnapshot is an immutable capture of a worksite at a point in time.
// Sub-entities are always addressable by their local id; embedded network
// ids are <= 0 until the remote confirms them.
type WorksiteSnapshot struct {
	Core      CoreSnapshot       `json:"core"`
	Flags     []FlagSnapshot     `json:"flags"`
	Notes     []NoteSnapshot     `json:"notes"`
	WorkTypes []WorkTypeSnapshot `json:"work_types"`
}

// CoreSnapshot holds the scalar attributes of a worksite.
// NetworkID <= 0 means the worksite was not yet created on the remote.
type CoreSnapshot struct {
	ID                    int64                        `json:"id"`
	Address               string                       `json:"address"`
	AutoContactFrequencyT string                       `json:"auto_contact_frequency_t"`
	CaseNumber            string                       `json:"case_number"`
	City                  string                       `json:"city"`
	County                string                       `json:"county"`
	CreatedAt             *time.Time                   `json:"created_at,omitempty"`
	Email                 *string                      `json:"email,omitempty"`
	FavoriteID            *int64                       `json:"favorite_id,omitempty"`
	FormData              map[string]WorksiteFormValue `json:"form_data"`
	IncidentID            int64                        `json:"incident_id"`
	IsAssignedToOrgMember bool                         `json:"is_assigned_to_org_member"`
	KeyWorkTypeID         *int64                       `json:"key_work_type_id,omitempty"`
	Latitude              float64                      `json:"latitude"`
	Longitude             float64                      `json:"longitude"`
	Name                  string                       `json:"name"`
	NetworkID             int64                        `json:"network_id"`
	Phone1                string                       `json:"phone1"`
	Phone2                string                       `json:"phone2"`
	PhoneNotes            string                       `json:"phone_notes"`
	PlusCode              *string                      `json:"plus_code,omitempty"`
	PostalCode            string                       `json:"postal_code"`
	ReportedBy            *int64                       `json:"reported_by,omitempty"`
	State                 string                       `json:"state"`
	SVI                   *float64                     `json:"svi,omitempty"`
	UpdatedAt             *time.Time                   `json:"updated_at,omitempty"`
	What3Words            *string                      `json:"what3words,omitempty"`
}

// FlagSnapshot pairs a local flag id with the flag value.
type FlagSnapshot struct {
	LocalID int64 `json:"local_id"`
	Flag    Flag  `json:"flag"`
}

// Flag is a worksite flag. ReasonT is its merge identity.
type Flag struct {
	ID              int64     `json:"id"`
	Action          string    `json:"action"`
	CreatedAt       time.Time `json:"created_at"`
	IsHighPriority  bool      `json:"is_high_priority"`
	Notes           string    `json:"notes"`
	ReasonT         string    `json:"reason_t"`
	RequestedAction string    `json:"requested_action"`
}

// NoteSnapshot pairs a local note id with the note value.
type NoteSnapshot struct {
	LocalID int64 `json:"local_id"`
	Note    Note  `json:"note"`
}

// Note is free text attached to a worksite.
type Note struct {
	ID         int64     `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	IsSurvivor bool      `json:"is_survivor"`
	Note       string    `json:"note"`
}

// WorkTypeSnapshot pairs a local work type id with the work type value.
type WorkTypeSnapshot struct {
	LocalID  int64    `json:"local_id"`
	WorkType WorkType `json:"work_type"`
}

// WorkType is a claimable unit of work identified by its code (WorkType).
// OrgClaim is nil when no organization claims it.
type WorkType struct {
	ID          int64      `json:"id"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	OrgClaim    *int64     `json:"org_claim,omitempty"`
	NextRecurAt *time.Time `json:"next_recur_at,omitempty"`
	Phase       *int       `json:"phase,omitempty"`
	Recur       *string    `json:"recur,omitempty"`
	Status      string     `json:"status"`
	WorkType    string     `json:"work_type"`
}

// WorksiteFormValue is a single form data entry, either boolean or text.
type WorksiteFormValue struct {
	IsBoolean    bool   `json:"is_boolean"`
	ValueString  string `json:"value_string"`
	ValueBoolean bool   `json:"value_boolean"`
}

// IsBooleanEqual reports whether both values are booleans with equal value.
func (v WorksiteFormValue) IsBooleanEqual(other WorksiteFormValue) bool {
	return v.IsBoolean && other.IsBoolean && v.ValueBoolean == other.ValueBoolean
}

// IsStringEqual reports whether both values are text with equal trimmed value.
func (v WorksiteFormValue) IsStringEqual(other WorksiteFormValue) bool {
	return !v.IsBoolean && !other.IsBoolean &&
		strings.TrimSpace(v.ValueString) == strings.TrimSpace(other.ValueString)
}

// Equal reports whether v and other hold the same form value.
func (v WorksiteFormValue) Equal(other WorksiteFormValue) bool {
	return v.IsBooleanEqual(other) || v.IsStringEqual(other)
}

// IsClaimed reports whether an organization claims the work type.
func (w WorkType) IsClaimed() bool {
	return w.OrgClaim != nil
}

// ClaimedBy reports whether orgID claims the work type.
func (w WorkType) ClaimedBy(orgID int64) bool {
	return w.OrgClaim != nil && *w.OrgClaim == orgID
}
