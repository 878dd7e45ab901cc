// SPDX-License-Identifier: GPL-3.0-or-later

package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/minerdetect/minerscan/pkg/scan"
	"github.com/minerdetect/minerscan/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.New(filepath.Join(t.TempDir(), "scans.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	return s
}

func TestRunLifecycle(t *testing.T) {
	t.Run("create then update preserves identity and state", func(st *testing.T) {
		s := newStore(st)

		run := &scan.Run{
			ID:        "run-1",
			StartedAt: time.Now().UTC(),
			Status:    scan.StatusInProgress,
		}

		require.NoError(st, s.CreateRun(run))

		run.Status = scan.StatusCompleted
		run.TotalTargets = 10
		run.Processed = 10
		run.Online = 4
		run.Miners = 1
		run.EndedAt = time.Now().UTC()

		require.NoError(st, s.UpdateRun(run))

		got, err := s.GetRun("run-1")
		require.NoError(st, err)

		assert.Equal(st, scan.StatusCompleted, got.Status)
		assert.Equal(st, 10, got.Processed)
		assert.Equal(st, 1, got.Miners)
	})

	t.Run("missing run yields ErrNotFound", func(st *testing.T) {
		s := newStore(st)

		_, err := s.GetRun("nope")
		assert.ErrorIs(st, err, store.ErrNotFound)
	})

	t.Run("lists runs most recent first with a cap", func(st *testing.T) {
		s := newStore(st)

		base := time.Now().UTC()

		for i, id := range []string{"a", "b", "c"} {
			require.NoError(st, s.CreateRun(&scan.Run{
				ID:        id,
				StartedAt: base.Add(time.Duration(i) * time.Minute),
				Status:    scan.StatusCompleted,
			}))
		}

		runs, err := s.Runs(2)
		require.NoError(st, err)

		require.Len(st, runs, 2)
		assert.Equal(st, "c", runs[0].ID)
		assert.Equal(st, "b", runs[1].ID)
	})
}

func TestHostRecords(t *testing.T) {
	t.Run("hosts are scoped to their run", func(st *testing.T) {
		s := newStore(st)

		require.NoError(st, s.SaveHost("run-1", &scan.HostResult{
			Address: "10.0.0.1",
			Online:  true,
			OpenPorts: []scan.Port{
				{ID: 8333, Service: "Bitcoin P2P"},
			},
			Miner:      true,
			Confidence: 0.8,
		}))
		require.NoError(st, s.SaveHost("run-1", &scan.HostResult{
			Address: "10.0.0.2",
		}))
		require.NoError(st, s.SaveHost("run-2", &scan.HostResult{
			Address: "10.0.0.9",
		}))

		hosts, err := s.HostsForRun("run-1")
		require.NoError(st, err)

		require.Len(st, hosts, 2)
		assert.Equal(st, "10.0.0.1", hosts[0].Address)
		assert.True(st, hosts[0].Miner)
		assert.Equal(st, "10.0.0.2", hosts[1].Address)
	})

	t.Run("re-saving a host overwrites its record", func(st *testing.T) {
		s := newStore(st)

		require.NoError(st, s.SaveHost("run-1", &scan.HostResult{
			Address: "10.0.0.1",
		}))
		require.NoError(st, s.SaveHost("run-1", &scan.HostResult{
			Address: "10.0.0.1",
			Online:  true,
			Banner:  "stratum ready",
		}))

		hosts, err := s.HostsForRun("run-1")
		require.NoError(st, err)

		require.Len(st, hosts, 1)
		assert.True(st, hosts[0].Online)
		assert.Equal(st, "stratum ready", hosts[0].Banner)
	})

	t.Run("filters miners for a run", func(st *testing.T) {
		s := newStore(st)

		require.NoError(st, s.SaveHost("run-1", &scan.HostResult{
			Address: "10.0.0.1",
			Miner:   true,
		}))
		require.NoError(st, s.SaveHost("run-1", &scan.HostResult{
			Address: "10.0.0.2",
		}))

		miners, err := s.MinersForRun("run-1")
		require.NoError(st, err)

		require.Len(st, miners, 1)
		assert.Equal(st, "10.0.0.1", miners[0].Address)
	})
}
