// SPDX-License-Identifier: GPL-3.0-or-later

package core_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/minerdetect/minerscan/internal/core"
	mock_core "github.com/minerdetect/minerscan/internal/mock/core"
	"github.com/minerdetect/minerscan/pkg/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func orchestrate(
	ctrl *gomock.Controller,
	run *scan.Run,
	hosts []*scan.HostResult,
) *mock_core.MockOrchestrator {
	mockOrch := mock_core.NewMockOrchestrator(ctrl)

	events := make(chan *scan.Event)

	var readOnly <-chan *scan.Event = events

	mockOrch.EXPECT().Events().Return(readOnly)

	mockOrch.EXPECT().Run(gomock.Any()).DoAndReturn(
		func(ctx context.Context) (*scan.Run, error) {
			for i, h := range hosts {
				events <- &scan.Event{Type: scan.HostEvent, Payload: h}
				events <- &scan.Event{Type: scan.ProgressEvent, Payload: &scan.Progress{
					Processed: i + 1,
					Total:     len(hosts),
				}}
			}

			close(events)

			return run, nil
		},
	)

	return mockOrch
}

func TestCoreRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("writes a json report sorted by address", func(st *testing.T) {
		run := &scan.Run{
			ID:           "run-1",
			Status:       scan.StatusCompleted,
			TotalTargets: 2,
			Processed:    2,
			Online:       2,
			Miners:       1,
		}

		hosts := []*scan.HostResult{
			{
				Address: "10.0.0.2",
				Online:  true,
				OpenPorts: []scan.Port{
					{ID: 8333, Service: "Bitcoin P2P"},
				},
				Miner:      true,
				Confidence: 0.8,
				Label:      "Mining Operation Detected",
			},
			{
				Address:   "10.0.0.1",
				Online:    true,
				OpenPorts: []scan.Port{},
			},
		}

		mockOrch := orchestrate(ctrl, run, hosts)

		outFile := filepath.Join(st.TempDir(), "report.json")

		runner := core.New()
		runner.Initialize(mockOrch, len(hosts), true, true, outFile)

		got, err := runner.Run(context.Background())

		require.NoError(st, err)
		assert.Equal(st, scan.StatusCompleted, got.Status)

		data, err := os.ReadFile(outFile)
		require.NoError(st, err)

		results := core.Results{}
		require.NoError(st, json.Unmarshal(data, &results))

		require.Len(st, results.Hosts, 2)
		assert.Equal(st, "10.0.0.1", results.Hosts[0].Address)
		assert.Equal(st, "10.0.0.2", results.Hosts[1].Address)
		assert.True(st, results.Hosts[1].Miner)
		assert.Equal(st, "run-1", results.Run.ID)
	})

	t.Run("writes a table report", func(st *testing.T) {
		run := &scan.Run{
			ID:           "run-2",
			Status:       scan.StatusCompleted,
			TotalTargets: 1,
			Processed:    1,
		}

		hosts := []*scan.HostResult{
			{
				Address:  "10.0.0.9",
				Hostname: "miner-rig.lan",
				Online:   true,
				Latency:  time.Millisecond * 12,
				OpenPorts: []scan.Port{
					{ID: 3333, Service: "Stratum Mining"},
				},
				Miner:      true,
				Confidence: 0.8,
				Label:      "Mining Operation Detected",
				Family:     "stratum",
			},
		}

		mockOrch := orchestrate(ctrl, run, hosts)

		outFile := filepath.Join(st.TempDir(), "report.txt")

		runner := core.New()
		runner.Initialize(mockOrch, len(hosts), true, false, outFile)

		_, err := runner.Run(context.Background())
		require.NoError(st, err)

		data, err := os.ReadFile(outFile)
		require.NoError(st, err)

		output := string(data)

		assert.Contains(st, output, "ADDRESS")
		assert.Contains(st, output, "10.0.0.9")
		assert.Contains(st, output, "miner-rig.lan")
		assert.Contains(st, output, "Stratum Mining:3333")
		assert.Contains(st, output, "Mining Operation Detected (stratum)")
	})

	t.Run("records each address once", func(st *testing.T) {
		run := &scan.Run{
			ID:           "run-3",
			Status:       scan.StatusCompleted,
			TotalTargets: 1,
			Processed:    1,
		}

		hosts := []*scan.HostResult{
			{Address: "10.0.0.7", Online: true},
			{Address: "10.0.0.7", Online: true},
		}

		mockOrch := orchestrate(ctrl, run, hosts)

		outFile := filepath.Join(st.TempDir(), "report.json")

		runner := core.New()
		runner.Initialize(mockOrch, 1, true, true, outFile)

		_, err := runner.Run(context.Background())
		require.NoError(st, err)

		data, err := os.ReadFile(outFile)
		require.NoError(st, err)

		results := core.Results{}
		require.NoError(st, json.Unmarshal(data, &results))

		assert.Len(st, results.Hosts, 1)
	})

	t.Run("propagates orchestrator failure", func(st *testing.T) {
		mockOrch := mock_core.NewMockOrchestrator(ctrl)

		events := make(chan *scan.Event)

		var readOnly <-chan *scan.Event = events

		mockOrch.EXPECT().Events().Return(readOnly)

		mockOrch.EXPECT().Run(gomock.Any()).DoAndReturn(
			func(ctx context.Context) (*scan.Run, error) {
				close(events)
				return &scan.Run{Status: scan.StatusFailed}, assert.AnError
			},
		)

		runner := core.New()
		runner.Initialize(mockOrch, 0, true, false, "")

		_, err := runner.Run(context.Background())
		assert.Error(st, err)
	})
}
