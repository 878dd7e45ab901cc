// SPDX-License-Identifier: GPL-3.0-or-later

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/minerdetect/minerscan/internal/config"
	"github.com/minerdetect/minerscan/pkg/scan"
	"github.com/minerdetect/minerscan/pkg/target"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "minerscan.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("parses a full config file", func(st *testing.T) {
		path := writeConfig(st, `
targets:
  cidr: 10.0.0.0/24
ports: 22,8332-8333
timeout_seconds: 5
max_concurrent: 25
ping: false
grab_banners: true
enrich: true
db_path: /tmp/scans.db
redis_addr: localhost:6379
`)

		f, err := config.Load(path)
		require.NoError(st, err)

		assert.Equal(st, "10.0.0.0/24", f.Targets.CIDR)
		assert.Equal(st, "22,8332-8333", f.Ports)
		assert.Equal(st, 5, f.TimeoutSec)
		require.NotNil(st, f.Ping)
		assert.False(st, *f.Ping)
		assert.True(st, f.GrabBanners)
		assert.Equal(st, "localhost:6379", f.RedisAddr)
	})

	t.Run("missing file errors", func(st *testing.T) {
		_, err := config.Load(filepath.Join(st.TempDir(), "nope.yml"))
		assert.Error(st, err)
	})

	t.Run("malformed yaml errors", func(st *testing.T) {
		path := writeConfig(st, "targets: [not: a mapping")

		_, err := config.Load(path)
		assert.Error(st, err)
	})
}

func TestApply(t *testing.T) {
	t.Run("overlays only set values", func(st *testing.T) {
		f := &config.File{
			TimeoutSec: 5,
		}

		base := scan.Config{
			Targets:       target.Spec{Range: "10.0.0.1-10.0.0.5"},
			MaxConcurrent: 10,
			Ping:          true,
		}

		cfg := f.Apply(base)

		assert.Equal(st, "10.0.0.1-10.0.0.5", cfg.Targets.Range)
		assert.Equal(st, time.Second*5, cfg.Timeout)
		assert.Equal(st, 10, cfg.MaxConcurrent)
		assert.True(st, cfg.Ping)
	})

	t.Run("explicit ping false wins over the default", func(st *testing.T) {
		off := false

		f := &config.File{Ping: &off}

		cfg := f.Apply(scan.Config{Ping: true})
		assert.False(st, cfg.Ping)
	})
}
