// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"time"

	"github.com/crisiscleanup/worksite-sync/models"
)

const favoriteTypeT = "favorite"

type refreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type favoriteRequest struct {
	TypeT string `json:"type_t"`
}

type unfavoriteRequest struct {
	FavoriteID int64 `json:"favorite_id"`
}

type deleteFlagRequest struct {
	FlagID int64 `json:"flag_id"`
}

type noteRequest struct {
	Note       string    `json:"note"`
	CreatedAt  time.Time `json:"created_at"`
	IsSurvivor bool      `json:"is_survivor"`
}

type workTypeStatusRequest struct {
	Status string `json:"status"`
}

// workTypesRequest is the body of claim, unclaim and transfer calls.
type workTypesRequest struct {
	WorkTypes       []string `json:"work_types"`
	RequestedReason string   `json:"requested_reason,omitempty"`
	UnclaimReason   string   `json:"unclaim_reason,omitempty"`
}

type workTypeRequestsResponse struct {
	Count   int                             `json:"count"`
	Results []models.NetworkWorkTypeRequest `json:"results"`
}
