// SPDX-License-Identifier: GPL-3.0-or-later

package geo

import "context"

//go:generate mockgen -destination=../../mock/geo/geo.go -package=mock_geo . Cache

// Location is the enrichment record kept per address
type Location struct {
	ISP     string `json:"isp,omitempty"`
	Region  string `json:"region,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

// Cache interface for address-keyed geolocation lookups. Implementations
// must tolerate concurrent access; the scan engine performs no locking of
// its own around cache calls.
type Cache interface {
	Lookup(ctx context.Context, addr string) (*Location, bool, error)
	Store(ctx context.Context, addr string, loc *Location) error
}
