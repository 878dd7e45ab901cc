// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads scan configuration from a YAML file. Every field is
// optional; command line flags override whatever the file sets.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/minerdetect/minerscan/pkg/scan"
	"github.com/minerdetect/minerscan/pkg/target"
	"gopkg.in/yaml.v3"
)

// File is the YAML shape of a scan configuration
type File struct {
	Targets target.Spec `yaml:"targets"`

	Ports         string `yaml:"ports"`
	TimeoutSec    int    `yaml:"timeout_seconds"`
	MaxConcurrent int    `yaml:"max_concurrent"`

	Ping            *bool `yaml:"ping"`
	GrabBanners     bool  `yaml:"grab_banners"`
	MiningPortsOnly bool  `yaml:"mining_ports_only"`
	Enrich          bool  `yaml:"enrich"`

	DBPath    string `yaml:"db_path"`
	RedisAddr string `yaml:"redis_addr"`
	OutFile   string `yaml:"out_file"`
}

// Load reads and parses the YAML file at path
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	f := File{}

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &f, nil
}

// Apply overlays the file's non-zero values onto cfg and returns it. The
// ports field stays a string here; the caller parses it alongside the
// flag value.
func (f *File) Apply(cfg scan.Config) scan.Config {
	if f.Targets.Range != "" {
		cfg.Targets.Range = f.Targets.Range
	}

	if f.Targets.CIDR != "" {
		cfg.Targets.CIDR = f.Targets.CIDR
	}

	if f.Targets.ISP != "" {
		cfg.Targets.ISP = f.Targets.ISP
	}

	if f.Targets.Region != "" {
		cfg.Targets.Region = f.Targets.Region
	}

	if f.TimeoutSec > 0 {
		cfg.Timeout = time.Duration(f.TimeoutSec) * time.Second
	}

	if f.MaxConcurrent > 0 {
		cfg.MaxConcurrent = f.MaxConcurrent
	}

	if f.Ping != nil {
		cfg.Ping = *f.Ping
	}

	if f.GrabBanners {
		cfg.GrabBanners = true
	}

	if f.MiningPortsOnly {
		cfg.MiningPortsOnly = true
	}

	if f.Enrich {
		cfg.Enrich = true
	}

	return cfg
}
