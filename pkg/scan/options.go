// SPDX-License-Identifier: GPL-3.0-or-later

package scan

import (
	"github.com/minerdetect/minerscan/pkg/geo"
)

// Option mutates an Orchestrator during construction
type Option = func(o *Orchestrator)

// WithExpander overrides the target expander
func WithExpander(e Expander) Option {
	return func(o *Orchestrator) {
		o.expander = e
	}
}

// WithProber overrides the probing implementation
func WithProber(p Prober) Option {
	return func(o *Orchestrator) {
		o.prober = p
	}
}

// WithSink wires a persistence sink for run and host records
func WithSink(s Sink) Option {
	return func(o *Orchestrator) {
		o.sink = s
	}
}

// WithGeoCache wires the geolocation cache used for enrichment
func WithGeoCache(c geo.Cache) Option {
	return func(o *Orchestrator) {
		o.cache = c
	}
}
