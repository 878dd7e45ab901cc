// SPDX-License-Identifier: GPL-3.0-or-later

package target

import (
	"fmt"
	"strings"
)

// staticBlocks is a snapshot of announced prefixes per ISP, keyed by a
// lowercase short name. Derived from public allocation data for the ISPs
// the surrounding product targets; refreshingly out of date by design since
// the expander only ever takes a bounded prefix of each list.
var staticBlocks = map[string][]string{
	"tci":        {"2.176.0.0/16", "2.177.0.0/16", "5.116.0.0/16", "5.117.0.0/16"},
	"irancell":   {"5.112.0.0/16", "5.113.0.0/16", "37.129.0.0/16"},
	"rightel":    {"37.156.0.0/16", "95.162.0.0/16"},
	"shatel":     {"94.182.0.0/16", "94.183.0.0/16"},
	"parsonline": {"91.98.0.0/16", "91.99.0.0/16"},
	"mobinnet":   {"178.131.0.0/16"},
}

// StaticRegistry is an in-process Registry backed by a fixed table
type StaticRegistry struct {
	blocks map[string][]string
}

// NewStaticRegistry returns a Registry backed by the built-in ISP table
func NewStaticRegistry() *StaticRegistry {
	return &StaticRegistry{blocks: staticBlocks}
}

// Blocks returns the announced CIDR blocks for a named ISP
func (r *StaticRegistry) Blocks(isp string) ([]string, error) {
	key := strings.ToLower(strings.TrimSpace(isp))

	blocks, ok := r.blocks[key]

	if !ok {
		return nil, fmt.Errorf("unknown isp: %s", isp)
	}

	out := make([]string, len(blocks))
	copy(out, blocks)

	return out, nil
}

// Names lists the ISPs the registry knows about
func (r *StaticRegistry) Names() []string {
	names := make([]string, 0, len(r.blocks))

	for name := range r.blocks {
		names = append(names, name)
	}

	return names
}
