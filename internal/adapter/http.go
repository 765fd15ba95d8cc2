// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/crisiscleanup/worksite-sync/internal/config"
	"github.com/crisiscleanup/worksite-sync/internal/logger"
	"github.com/crisiscleanup/worksite-sync/internal/utils"
	"github.com/crisiscleanup/worksite-sync/models"
	"github.com/go-resty/resty/v2"
)

type httpWorksiteGateway struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPWorksiteGateway constructs an HTTP/REST implementation of
// [WorksiteGateway]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPWorksiteGateway(adapterCfg config.ClientAdapter, log *logger.Logger) (WorksiteGateway, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	if log == nil {
		log = logger.Nop()
	}

	return &httpWorksiteGateway{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [AuthGateway]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (h *httpWorksiteGateway) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [AuthGateway].
func (h *httpWorksiteGateway) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// RefreshToken implements [AuthGateway]. It POSTs the refresh token to
// POST /api-mobile-refresh-token and returns the new token pair.
func (h *httpWorksiteGateway) RefreshToken(ctx context.Context, refreshToken string) (models.AuthTokens, error) {
	var tokens models.AuthTokens
	body := refreshTokenRequest{RefreshToken: refreshToken}
	if err := h.send(ctx, "refresh token", http.MethodPost, "/api-mobile-refresh-token", body, &tokens); err != nil {
		return models.AuthTokens{}, err
	}
	return tokens, nil
}

// SaveWorksite implements [WorksiteWriteGateway]. New worksites are POSTed to
// POST /worksites, existing ones PUT to PUT /worksites/{id}.
func (h *httpWorksiteGateway) SaveWorksite(ctx context.Context, push models.NetworkWorksitePush) (models.NetworkWorksiteFull, error) {
	method, path := http.MethodPost, "/worksites"
	if push.ID != nil {
		method, path = http.MethodPut, worksitePath(*push.ID)
	}

	var saved models.NetworkWorksiteFull
	if err := h.send(ctx, "save worksite", method, path, push, &saved); err != nil {
		return models.NetworkWorksiteFull{}, err
	}
	return saved, nil
}

// FavoriteWorksite implements [WorksiteWriteGateway].
func (h *httpWorksiteGateway) FavoriteWorksite(ctx context.Context, worksiteID int64) (models.NetworkFavorite, error) {
	var favorite models.NetworkFavorite
	body := favoriteRequest{TypeT: favoriteTypeT}
	if err := h.send(ctx, "favorite worksite", http.MethodPost, worksitePath(worksiteID)+"/favorite", body, &favorite); err != nil {
		return models.NetworkFavorite{}, err
	}
	return favorite, nil
}

// UnfavoriteWorksite implements [WorksiteWriteGateway].
func (h *httpWorksiteGateway) UnfavoriteWorksite(ctx context.Context, worksiteID, favoriteID int64) error {
	body := unfavoriteRequest{FavoriteID: favoriteID}
	return h.send(ctx, "unfavorite worksite", http.MethodDelete, worksitePath(worksiteID)+"/favorite", body, nil)
}

// AddFlag implements [WorksiteWriteGateway].
func (h *httpWorksiteGateway) AddFlag(ctx context.Context, worksiteID int64, flag models.NetworkFlag) (models.NetworkFlag, error) {
	var saved models.NetworkFlag
	if err := h.send(ctx, "add flag", http.MethodPost, worksitePath(worksiteID)+"/flags", flag, &saved); err != nil {
		return models.NetworkFlag{}, err
	}
	return saved, nil
}

// DeleteFlag implements [WorksiteWriteGateway].
func (h *httpWorksiteGateway) DeleteFlag(ctx context.Context, worksiteID, flagID int64) error {
	body := deleteFlagRequest{FlagID: flagID}
	return h.send(ctx, "delete flag", http.MethodDelete, worksitePath(worksiteID)+"/flags", body, nil)
}

// AddNote implements [WorksiteWriteGateway].
func (h *httpWorksiteGateway) AddNote(ctx context.Context, worksiteID int64, note models.NetworkNote) (models.NetworkNote, error) {
	var saved models.NetworkNote
	body := noteRequest{Note: note.Note, CreatedAt: note.CreatedAt, IsSurvivor: note.IsSurvivor}
	if err := h.send(ctx, "add note", http.MethodPost, worksitePath(worksiteID)+"/notes", body, &saved); err != nil {
		return models.NetworkNote{}, err
	}
	return saved, nil
}

// UpdateWorkTypeStatus implements [WorksiteWriteGateway]. It PATCHes
// PATCH /worksite_work_types/{id}.
func (h *httpWorksiteGateway) UpdateWorkTypeStatus(ctx context.Context, workTypeID int64, status string) (models.NetworkWorkType, error) {
	var saved models.NetworkWorkType
	body := workTypeStatusRequest{Status: status}
	path := "/worksite_work_types/" + strconv.FormatInt(workTypeID, 10)
	if err := h.send(ctx, "update work type status", http.MethodPatch, path, body, &saved); err != nil {
		return models.NetworkWorkType{}, err
	}
	return saved, nil
}

// DeleteWorkType implements [WorksiteWriteGateway].
func (h *httpWorksiteGateway) DeleteWorkType(ctx context.Context, worksiteID, workTypeID int64) error {
	path := worksitePath(worksiteID) + "/work_types/" + strconv.FormatInt(workTypeID, 10)
	return h.send(ctx, "delete work type", http.MethodDelete, path, nil, nil)
}

// ClaimWorkTypes implements [WorksiteWriteGateway].
func (h *httpWorksiteGateway) ClaimWorkTypes(ctx context.Context, worksiteID int64, workTypes []string) error {
	if len(workTypes) == 0 {
		return ErrEmptyWorkTypes
	}
	body := workTypesRequest{WorkTypes: workTypes}
	return h.send(ctx, "claim work types", http.MethodPost, worksitePath(worksiteID)+"/claim", body, nil)
}

// UnclaimWorkTypes implements [WorksiteWriteGateway].
func (h *httpWorksiteGateway) UnclaimWorkTypes(ctx context.Context, worksiteID int64, workTypes []string) error {
	if len(workTypes) == 0 {
		return ErrEmptyWorkTypes
	}
	body := workTypesRequest{WorkTypes: workTypes}
	return h.send(ctx, "unclaim work types", http.MethodPost, worksitePath(worksiteID)+"/unclaim", body, nil)
}

// RequestWorkTypes implements [WorksiteWriteGateway].
func (h *httpWorksiteGateway) RequestWorkTypes(ctx context.Context, worksiteID int64, workTypes []string, reason string) error {
	if len(workTypes) == 0 {
		return ErrEmptyWorkTypes
	}
	body := workTypesRequest{WorkTypes: workTypes, RequestedReason: reason}
	return h.send(ctx, "request work types", http.MethodPost, worksitePath(worksiteID)+"/request_take", body, nil)
}

// ReleaseWorkTypes implements [WorksiteWriteGateway].
func (h *httpWorksiteGateway) ReleaseWorkTypes(ctx context.Context, worksiteID int64, workTypes []string, reason string) error {
	if len(workTypes) == 0 {
		return ErrEmptyWorkTypes
	}
	body := workTypesRequest{WorkTypes: workTypes, UnclaimReason: reason}
	return h.send(ctx, "release work types", http.MethodPost, worksitePath(worksiteID)+"/release", body, nil)
}

// GetWorksite implements [WorksiteReadGateway].
func (h *httpWorksiteGateway) GetWorksite(ctx context.Context, worksiteID int64) (models.NetworkWorksiteFull, error) {
	var worksite models.NetworkWorksiteFull
	if err := h.send(ctx, "get worksite", http.MethodGet, worksitePath(worksiteID), nil, &worksite); err != nil {
		return models.NetworkWorksiteFull{}, err
	}
	return worksite, nil
}

// GetWorkTypeRequests implements [WorksiteReadGateway]. It GETs
// GET /worksite_requests filtered by worksite.
func (h *httpWorksiteGateway) GetWorkTypeRequests(ctx context.Context, worksiteID int64) ([]models.NetworkWorkTypeRequest, error) {
	var page workTypeRequestsResponse
	path := "/worksite_requests?worksite_work_type__worksite=" + strconv.FormatInt(worksiteID, 10)
	if err := h.send(ctx, "get work type requests", http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// send executes one authenticated request. A request that never got a
// response is reported as [ErrNoConnection]; non-2xx responses are mapped by
// mapHTTPError. When result is non-nil the response body is decoded into it.
func (h *httpWorksiteGateway) send(ctx context.Context, op, method, path string, body, result any) error {
	req := h.authedRequest(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Err(err).
			Str("func", "httpWorksiteGateway.send").
			Str("method", method).
			Str("path", path).
			Msg("request did not reach remote")
		return mapTransportError(op+" request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if result == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("decode %s response: %w", op, err)
	}
	return nil
}

func (h *httpWorksiteGateway) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func worksitePath(worksiteID int64) string {
	return "/worksites/" + strconv.FormatInt(worksiteID, 10)
}
