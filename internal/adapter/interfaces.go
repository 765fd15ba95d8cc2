// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the Crisis Cleanup API.
//
// The sync engine talks to the remote through [WorksiteWriteGateway],
// [WorksiteReadGateway] and [AuthGateway]. The package ships an HTTP/REST
// implementation of all three ([NewHTTPWorksiteGateway]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNoConnection] when the request never reached the remote,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/crisiscleanup/worksite-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/worksite_gateway_mock.go -package=mock

// WorksiteWriteGateway writes worksites and their sub-resources.
// Claim, unclaim and transfer calls never send an empty code list; they
// return [ErrEmptyWorkTypes] instead.
type WorksiteWriteGateway interface {
	// SaveWorksite creates the worksite when push.ID is nil and updates it
	// otherwise. Returns the authoritative record after the write.
	SaveWorksite(ctx context.Context, push models.NetworkWorksitePush) (models.NetworkWorksiteFull, error)

	// FavoriteWorksite marks the worksite as assigned to the caller's org member.
	FavoriteWorksite(ctx context.Context, worksiteID int64) (models.NetworkFavorite, error)

	// UnfavoriteWorksite removes the favorite favoriteID from the worksite.
	UnfavoriteWorksite(ctx context.Context, worksiteID, favoriteID int64) error

	// AddFlag creates a flag and returns it with its network id.
	AddFlag(ctx context.Context, worksiteID int64, flag models.NetworkFlag) (models.NetworkFlag, error)

	// DeleteFlag removes the flag flagID from the worksite.
	DeleteFlag(ctx context.Context, worksiteID, flagID int64) error

	// AddNote creates a note and returns it with its network id.
	AddNote(ctx context.Context, worksiteID int64, note models.NetworkNote) (models.NetworkNote, error)

	// UpdateWorkTypeStatus sets the status of the work type workTypeID.
	UpdateWorkTypeStatus(ctx context.Context, workTypeID int64, status string) (models.NetworkWorkType, error)

	// DeleteWorkType removes the work type workTypeID from the worksite.
	DeleteWorkType(ctx context.Context, worksiteID, workTypeID int64) error

	// ClaimWorkTypes claims the work types with the given codes.
	ClaimWorkTypes(ctx context.Context, worksiteID int64, workTypes []string) error

	// UnclaimWorkTypes releases the caller's claims on the given codes.
	UnclaimWorkTypes(ctx context.Context, worksiteID int64, workTypes []string) error

	// RequestWorkTypes asks the claiming organizations to transfer the codes.
	RequestWorkTypes(ctx context.Context, worksiteID int64, workTypes []string, reason string) error

	// ReleaseWorkTypes gives up claims held by other organizations.
	ReleaseWorkTypes(ctx context.Context, worksiteID int64, workTypes []string, reason string) error
}

// WorksiteReadGateway reads authoritative remote records.
type WorksiteReadGateway interface {
	// GetWorksite fetches the full worksite. Returns [ErrNotFound] (wrapped)
	// when the remote has no such worksite.
	GetWorksite(ctx context.Context, worksiteID int64) (models.NetworkWorksiteFull, error)

	// GetWorkTypeRequests lists pending transfer requests of the worksite.
	GetWorkTypeRequests(ctx context.Context, worksiteID int64) ([]models.NetworkWorkTypeRequest, error)
}

// AuthGateway manages the bearer token attached to every request.
type AuthGateway interface {
	// SetToken stores the access token used by subsequent requests.
	SetToken(token string)

	// Token returns the stored access token, or an empty string.
	Token() string

	// RefreshToken exchanges refreshToken for a new token pair. It does not
	// install the new access token; the caller does.
	RefreshToken(ctx context.Context, refreshToken string) (models.AuthTokens, error)
}

// WorksiteGateway is the full remote API used by the sync engine.
type WorksiteGateway interface {
	WorksiteWriteGateway
	WorksiteReadGateway
	AuthGateway
}
