// SPDX-License-Identifier: GPL-3.0-or-later

package probe

import (
	"context"
	"net"
)

//go:generate mockgen -destination=../../mock/probe/probe.go -package=mock_probe . Dialer,Resolver

// Dialer interface for opening connections, injectable for testing
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Resolver interface for reverse name lookups, satisfied by net.Resolver
// and injectable for testing
type Resolver interface {
	LookupAddr(ctx context.Context, addr string) ([]string, error)
}

// Outcome represents the result of a single bounded probe attempt
type Outcome string

const (
	// Open the target accepted the connection
	Open Outcome = "open"
	// Closed the target actively refused the connection
	Closed Outcome = "closed"
	// TimedOut the attempt exceeded its deadline with no response
	TimedOut Outcome = "timeout"
)

// Reachable reports whether an outcome counts as an open port for scan
// purposes; Closed and TimedOut both count as not-open
func (o Outcome) Reachable() bool {
	return o == Open
}
