// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// NetworkWorksiteFull is the authoritative remote worksite record.
type NetworkWorksiteFull struct {
	ID                    int64                 `json:"id"`
	Address               string                `json:"address"`
	AutoContactFrequencyT string                `json:"auto_contact_frequency_t"`
	CaseNumber            string                `json:"case_number"`
	City                  string                `json:"city"`
	County                *string               `json:"county"`
	Email                 *string               `json:"email"`
	Favorite              *NetworkFavorite      `json:"favorite"`
	Flags                 []NetworkFlag         `json:"flags"`
	FormData              []KeyDynamicValuePair `json:"form_data"`
	Incident              int64                 `json:"incident"`
	KeyWorkType           *NetworkWorkType      `json:"key_work_type"`
	Location              NetworkLocation       `json:"location"`
	Name                  string                `json:"name"`
	Notes                 []NetworkNote         `json:"notes"`
	Phone1                string                `json:"phone1"`
	Phone2                *string               `json:"phone2"`
	PhoneNotes            *string               `json:"phone_notes"`
	PlusCode              *string               `json:"plus_code"`
	PostalCode            *string               `json:"postal_code"`
	ReportedBy            *int64                `json:"reported_by"`
	State                 string                `json:"state"`
	SVI                   *float64              `json:"svi"`
	UpdatedAt             time.Time             `json:"updated_at"`
	What3Words            *string               `json:"what3words"`
	WorkTypes             []NetworkWorkType     `json:"work_types"`
}

// NetworkFavorite marks a worksite as favorited by the current user.
type NetworkFavorite struct {
	ID        int64     `json:"id"`
	TypeT     string    `json:"type_t"`
	CreatedAt time.Time `json:"created_at"`
}

// NetworkFlag is a flag as stored on the remote.
type NetworkFlag struct {
	ID              *int64    `json:"id,omitempty"`
	Action          *string   `json:"action,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	IsHighPriority  *bool     `json:"is_high_priority,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
	ReasonT         string    `json:"reason_t"`
	RequestedAction *string   `json:"requested_action,omitempty"`
}

// NetworkNote is a note as stored on the remote.
type NetworkNote struct {
	ID         *int64    `json:"id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	IsSurvivor bool      `json:"is_survivor"`
	Note       string    `json:"note"`
}

// NetworkWorkType is a work type as stored on the remote.
type NetworkWorkType struct {
	ID          *int64     `json:"id,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	OrgClaim    *int64     `json:"claimed_by,omitempty"`
	NextRecurAt *time.Time `json:"next_recur_at,omitempty"`
	Phase       *int       `json:"phase,omitempty"`
	Recur       *string    `json:"recur,omitempty"`
	Status      string     `json:"status"`
	WorkType    string     `json:"work_type"`
}

// NetworkWorkTypeRequest is a pending request to transfer a claimed work type.
type NetworkWorkTypeRequest struct {
	ID           int64           `json:"id"`
	WorkType     NetworkWorkType `json:"worksite_work_type"`
	RequestedBy  int64           `json:"requested_by"`
	ApprovedAt   *time.Time      `json:"approved_at,omitempty"`
	RejectedAt   *time.Time      `json:"rejected_at,omitempty"`
	TokenExpired *time.Time      `json:"token_expiration,omitempty"`
}

// KeyDynamicValuePair is one remote form data entry.
type KeyDynamicValuePair struct {
	Key   string       `json:"field_key"`
	Value DynamicValue `json:"field_value"`
}

// DynamicValue is a remote form value, either boolean or text.
type DynamicValue struct {
	ValueString  string `json:"value_string"`
	IsBoolean    bool   `json:"is_boolean"`
	ValueBoolean bool   `json:"value_boolean"`
}

// NetworkLocation is a GeoJSON point. Coordinates are longitude, latitude.
type NetworkLocation struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// NewLocationPoint builds a point location from latitude and longitude.
func NewLocationPoint(latitude, longitude float64) NetworkLocation {
	return NetworkLocation{Type: "Point", Coordinates: [2]float64{longitude, latitude}}
}

// NetworkWorksitePush is the core payload written to the remote.
// Optional text fields distinguish nil (no information) from a pointer to
// an empty string (explicitly cleared).
type NetworkWorksitePush struct {
	ID                    *int64                `json:"id,omitempty"`
	Address               string                `json:"address"`
	AutoContactFrequencyT string                `json:"auto_contact_frequency_t"`
	CaseNumber            *string               `json:"case_number,omitempty"`
	City                  string                `json:"city"`
	County                *string               `json:"county,omitempty"`
	Email                 *string               `json:"email,omitempty"`
	Favorite              *NetworkFavorite      `json:"favorite,omitempty"`
	FormData              []KeyDynamicValuePair `json:"form_data"`
	Incident              int64                 `json:"incident"`
	KeyWorkType           *NetworkWorkType      `json:"key_work_type,omitempty"`
	Location              NetworkLocation       `json:"location"`
	Name                  string                `json:"name"`
	Phone1                string                `json:"phone1"`
	Phone2                *string               `json:"phone2,omitempty"`
	PhoneNotes            *string               `json:"phone_notes,omitempty"`
	PlusCode              *string               `json:"plus_code,omitempty"`
	PostalCode            *string               `json:"postal_code,omitempty"`
	ReportedBy            *int64                `json:"reported_by,omitempty"`
	State                 string                `json:"state"`
	SVI                   *float64              `json:"svi,omitempty"`
	UpdatedAt             time.Time             `json:"updated_at"`
	What3Words            *string               `json:"what3words,omitempty"`
	SkipDuplicateCheck    *bool                 `json:"skip_duplicate_check,omitempty"`
	SendSMS               *bool                 `json:"send_sms,omitempty"`
}

// NewestWorkTypes indexes workTypes by code. When a code repeats, the entry
// with the highest network id wins.
func NewestWorkTypes(workTypes []NetworkWorkType) map[string]NetworkWorkType {
	newest := make(map[string]NetworkWorkType, len(workTypes))
	for _, wt := range workTypes {
		current, ok := newest[wt.WorkType]
		if !ok || wt.NetworkID() > current.NetworkID() {
			newest[wt.WorkType] = wt
		}
	}
	return newest
}

// NetworkID returns the work type id or 0 when it has none.
func (w NetworkWorkType) NetworkID() int64 {
	if w.ID == nil {
		return 0
	}
	return *w.ID
}

// NetworkID returns the flag id or 0 when it has none.
func (f NetworkFlag) NetworkID() int64 {
	if f.ID == nil {
		return 0
	}
	return *f.ID
}

// NetworkID returns the note id or 0 when it has none.
func (n NetworkNote) NetworkID() int64 {
	if n.ID == nil {
		return 0
	}
	return *n.ID
}

// Latitude returns the latitude of the point.
func (l NetworkLocation) Latitude() float64 {
	return l.Coordinates[1]
}

// Longitude returns the longitude of the point.
func (l NetworkLocation) Longitude() float64 {
	return l.Coordinates[0]
}
