// SPDX-License-Identifier: GPL-3.0-or-later

package scan

import (
	"context"
	"time"

	"github.com/minerdetect/minerscan/pkg/probe"
	"github.com/minerdetect/minerscan/pkg/target"
)

//go:generate mockgen -destination=../../mock/scan/scan.go -package=mock_scan . Prober,Sink

// Prober is the bounded-time probing surface the orchestrator drives.
// Satisfied by probe.Prober; injectable for tests.
type Prober interface {
	Alive(ctx context.Context, addr string) (bool, time.Duration)
	Hostname(ctx context.Context, addr string) string
	Port(ctx context.Context, addr string, port uint16) probe.Outcome
	Banner(ctx context.Context, addr string, port uint16) string
}

// Sink receives run and host records as a side effect of scanning. Assumed
// safe for concurrent use; sink failures are logged, never fatal.
type Sink interface {
	CreateRun(run *Run) error
	UpdateRun(run *Run) error
	SaveHost(runID string, host *HostResult) error
}

// Expander produces the bounded address list for a run
type Expander interface {
	Expand(spec target.Spec) ([]string, error)
}
