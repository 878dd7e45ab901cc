// SPDX-License-Identifier: GPL-3.0-or-later

package scan

import (
	"time"

	"github.com/minerdetect/minerscan/pkg/target"
)

// Status represents the lifecycle of a scan run
type Status string

const (
	// StatusNotStarted run record exists but no work has begun
	StatusNotStarted Status = "not_started"
	// StatusInProgress host pipelines are in flight
	StatusInProgress Status = "in_progress"
	// StatusCompleted every expanded address was processed
	StatusCompleted Status = "completed"
	// StatusCancelled the caller cancelled mid-run; partial results stand
	StatusCancelled Status = "cancelled"
	// StatusFailed setup or target expansion failed before any pipeline ran
	StatusFailed Status = "failed"
)

const (
	defaultTimeout       = time.Second * 3
	defaultMaxConcurrent = 50
)

// Config describes one scan. Immutable once the run starts: the
// orchestrator keeps its own copy
type Config struct {
	Targets target.Spec `yaml:"targets"`

	Ports         []uint16      `yaml:"ports"`
	Timeout       time.Duration `yaml:"timeout"`
	MaxConcurrent int           `yaml:"max_concurrent"`

	Ping            bool `yaml:"ping"`
	GrabBanners     bool `yaml:"grab_banners"`
	MiningPortsOnly bool `yaml:"mining_ports_only"`
	Enrich          bool `yaml:"enrich"`
}

// withDefaults fills the zero values a caller left unset
func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}

	if c.MaxConcurrent <= 0 {
		c.MaxConcurrent = defaultMaxConcurrent
	}

	return c
}

// Run is the record of one scan from start to terminal state. Mutated only
// by the orchestrator; counters are finalized after the fan-out join.
type Run struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"startedAt"`
	EndedAt   time.Time `json:"endedAt,omitempty"`
	Status    Status    `json:"status"`

	TotalTargets int `json:"totalTargets"`
	Processed    int `json:"processed"`
	Online       int `json:"online"`
	Miners       int `json:"miners"`
}

// Port is one observed open port on a host
type Port struct {
	ID      uint16 `json:"id"`
	Service string `json:"service"`
}

// HostResult is the observation for one probed address. Append-only from
// the orchestrator's perspective: never mutated after emission. OpenPorts
// order reflects probe completion, not port number.
type HostResult struct {
	Address    string        `json:"address"`
	Hostname   string        `json:"hostname,omitempty"`
	Online     bool          `json:"online"`
	Latency    time.Duration `json:"latency"`
	OpenPorts  []Port        `json:"openPorts"`
	Miner      bool          `json:"miner"`
	Confidence float64       `json:"confidence"`
	Label      string        `json:"label,omitempty"`
	Family     string        `json:"family,omitempty"`
	Banner     string        `json:"banner,omitempty"`
	ISP        string        `json:"isp,omitempty"`
	Region     string        `json:"region,omitempty"`
}

// EventType discriminates the payloads pushed to consumers
type EventType string

const (
	// ProgressEvent carries a *Progress payload
	ProgressEvent EventType = "progress"
	// HostEvent carries a *HostResult payload
	HostEvent EventType = "host"
	// LogEvent carries a free-text string payload
	LogEvent EventType = "log"
)

// Event is the envelope pushed on the orchestrator's results channel
type Event struct {
	Type    EventType
	Payload any
}

// Progress reports how far along a run is
type Progress struct {
	Processed int
	Total     int
}
