// SPDX-License-Identifier: GPL-3.0-or-later

package geo

import (
	"context"
	"sync"
)

// MemoryCache is a process-local Cache safe for concurrent use
type MemoryCache struct {
	mux       sync.RWMutex
	locations map[string]Location
}

// NewMemoryCache returns an empty in-memory cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		locations: map[string]Location{},
	}
}

// Lookup returns the cached location for an address if present
func (c *MemoryCache) Lookup(_ context.Context, addr string) (*Location, bool, error) {
	c.mux.RLock()
	defer c.mux.RUnlock()

	loc, ok := c.locations[addr]

	if !ok {
		return nil, false, nil
	}

	out := loc

	return &out, true, nil
}

// Store records the location for an address
func (c *MemoryCache) Store(_ context.Context, addr string, loc *Location) error {
	c.mux.Lock()
	defer c.mux.Unlock()

	c.locations[addr] = *loc

	return nil
}
