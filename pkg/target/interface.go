// SPDX-License-Identifier: GPL-3.0-or-later

package target

//go:generate mockgen -destination=../../mock/target/target.go -package=mock_target . Registry

// Registry interface for looking up the CIDR blocks an ISP announces
type Registry interface {
	Blocks(isp string) ([]string, error)
}
