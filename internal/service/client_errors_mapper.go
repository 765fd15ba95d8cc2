// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/crisiscleanup/worksite-sync/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// error. The adapter error stays in the chain for diagnostics.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrNoConnection):
		return fmt.Errorf("%w: %w", ErrNoInternetConnection, err)
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrExpiredToken, err)
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrRemoteNotFound, err)
	case errors.Is(err, adapter.ErrBadRequest), errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrRemoteRejected, err)
	case errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%w: %w", ErrRemoteConflict, err)
	case errors.Is(err, adapter.ErrInternalServerError), errors.Is(err, adapter.ErrBadGateway):
		return fmt.Errorf("%w: %w", ErrRemoteFailure, err)
	}

	return err
}

// mapWorksiteFetchError is mapAdapterError for reads of the worksite itself,
// where a missing record means the worksite was deleted remotely.
func mapWorksiteFetchError(err error) error {
	if errors.Is(err, adapter.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrWorksiteNotFound, err)
	}
	return mapAdapterError(err)
}
