// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePorts expands a comma separated port spec into a deduplicated port
// list. Elements may be single ports ("8332") or ranges ("3333-3336").
func ParsePorts(spec string) ([]uint16, error) {
	ports := []uint16{}

	add := func(p int) error {
		if p < 1 || p > 65535 {
			return fmt.Errorf("port out of range: %d", p)
		}

		if !SliceIncludes(ports, uint16(p)) {
			ports = append(ports, uint16(p))
		}

		return nil
	}

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)

		if part == "" {
			continue
		}

		if strings.Contains(part, "-") {
			bounds := strings.SplitN(part, "-", 2)

			start, err := strconv.Atoi(strings.TrimSpace(bounds[0]))

			if err != nil {
				return nil, fmt.Errorf("invalid port: %s", part)
			}

			end, err := strconv.Atoi(strings.TrimSpace(bounds[1]))

			if err != nil {
				return nil, fmt.Errorf("invalid port: %s", part)
			}

			if end < start {
				return nil, fmt.Errorf("invalid port range: %s", part)
			}

			for p := start; p <= end; p++ {
				if err := add(p); err != nil {
					return nil, err
				}
			}
		} else {
			p, err := strconv.Atoi(part)

			if err != nil {
				return nil, fmt.Errorf("invalid port: %s", part)
			}

			if err := add(p); err != nil {
				return nil, err
			}
		}
	}

	return ports, nil
}
