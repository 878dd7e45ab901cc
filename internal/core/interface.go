// SPDX-License-Identifier: GPL-3.0-or-later

package core

import (
	"context"

	"github.com/minerdetect/minerscan/pkg/scan"
)

//go:generate mockgen -destination=../mock/core/core.go -package=mock_core . Runner,Orchestrator

// Runner drives one scan end to end and renders its output
type Runner interface {
	Initialize(
		orchestrator Orchestrator,
		targetLen int,
		noProgress bool,
		printJson bool,
		outFile string,
	)
	Run(ctx context.Context) (*scan.Run, error)
}

// Orchestrator is the scanning surface the runner consumes. Satisfied by
// scan.Orchestrator.
type Orchestrator interface {
	Events() <-chan *scan.Event
	Run(ctx context.Context) (*scan.Run, error)
}
