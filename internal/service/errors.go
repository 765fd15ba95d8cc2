// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrNoInternetConnection = errors.New("no internet connection")
	ErrExpiredToken         = errors.New("access token is expired or invalid")

	ErrWorksiteNotFound     = errors.New("worksite not found on remote")
	ErrWorkTypeNotFound     = errors.New("work type not found on remote")
	ErrConcurrentProcessing = errors.New("worksite is already being synced")

	ErrInvalidChangeChain       = errors.New("invalid change chain")
	ErrChangeChainGap           = errors.New("change chain has a gap")
	ErrUnsupportedChangeVersion = errors.New("unsupported change model version")
	ErrInvalidChangePayload     = errors.New("invalid change payload")

	ErrRemoteNotFound = errors.New("remote resource not found")
	ErrRemoteRejected = errors.New("remote rejected the request")
	ErrRemoteConflict = errors.New("remote record conflict")
	ErrRemoteFailure  = errors.New("remote internal failure")
)

// isAbortError reports whether err must stop the whole sync loop.
func isAbortError(err error) bool {
	return errors.Is(err, ErrNoInternetConnection) || errors.Is(err, ErrExpiredToken)
}
