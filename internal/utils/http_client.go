// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent is sent with every request to the Crisis Cleanup API.
const UserAgent = "worksite-sync/1"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("/worksites/42")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that accepts JSON and
// identifies itself with [UserAgent]. Retries are left to the sync loop,
// which re-queues failed changes.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", UserAgent).
		SetRetryCount(0)
	return &HTTPClient{Client: client}
}
