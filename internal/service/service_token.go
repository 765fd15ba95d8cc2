// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/crisiscleanup/worksite-sync/internal/adapter"
	"github.com/crisiscleanup/worksite-sync/internal/logger"
	"github.com/crisiscleanup/worksite-sync/internal/utils"
)

// tokenExpiryLeeway treats a token about to expire as already expired, so a
// request does not fail halfway through a change.
const tokenExpiryLeeway = 30 * time.Second

type tokenService struct {
	auth adapter.AuthGateway

	mu           sync.Mutex
	refreshToken string

	now func() time.Time
}

// NewTokenService installs accessToken on auth and returns a TokenService
// that refreshes it with refreshToken.
func NewTokenService(auth adapter.AuthGateway, accessToken, refreshToken string) TokenService {
	if accessToken != "" {
		auth.SetToken(accessToken)
	}
	return &tokenService{
		auth:         auth,
		refreshToken: refreshToken,
		now:          time.Now,
	}
}

// IsTokenValid implements TokenService. A token without an exp claim is
// accepted; the remote rejects it if it disagrees.
func (s *tokenService) IsTokenValid() bool {
	token := s.auth.Token()
	if token == "" {
		return false
	}

	exp, err := utils.TokenExpiry(token)
	if errors.Is(err, utils.ErrNoExpiry) {
		return true
	}
	if err != nil {
		return false
	}
	return s.now().Add(tokenExpiryLeeway).Before(exp)
}

// RefreshToken implements TokenService.
func (s *tokenService) RefreshToken(ctx context.Context) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.refreshToken == "" {
		return fmt.Errorf("%w: no refresh token", ErrExpiredToken)
	}

	tokens, err := s.auth.RefreshToken(ctx, s.refreshToken)
	if err != nil {
		log.Err(err).Str("func", "tokenService.RefreshToken").Msg("failed to refresh access token")
		err = mapAdapterError(err)
		if isAbortError(err) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrExpiredToken, err)
	}
	if tokens.AccessToken == "" {
		return fmt.Errorf("%w: refresh returned no access token", ErrExpiredToken)
	}

	s.auth.SetToken(tokens.AccessToken)
	if tokens.RefreshToken != "" {
		s.refreshToken = tokens.RefreshToken
	}
	log.Debug().Str("func", "tokenService.RefreshToken").Msg("access token refreshed")

	return nil
}
