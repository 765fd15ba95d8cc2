// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"sync"
)

// worksiteGuard admits at most one sync pass per worksite.
type worksiteGuard struct {
	mu     sync.Mutex
	active map[int64]struct{}
}

func newWorksiteGuard() *worksiteGuard {
	return &worksiteGuard{active: make(map[int64]struct{})}
}

// acquire marks worksiteID as in flight. It fails fast with
// ErrConcurrentProcessing instead of waiting. The returned release may be
// called more than once.
func (g *worksiteGuard) acquire(worksiteID int64) (release func(), err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.active[worksiteID]; busy {
		return nil, fmt.Errorf("%w: worksite %d", ErrConcurrentProcessing, worksiteID)
	}
	g.active[worksiteID] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.active, worksiteID)
			g.mu.Unlock()
		})
	}, nil
}

// isActive reports whether a pass over worksiteID is in flight.
func (g *worksiteGuard) isActive(worksiteID int64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, busy := g.active[worksiteID]
	return busy
}
