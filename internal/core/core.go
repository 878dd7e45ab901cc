// SPDX-License-Identifier: GPL-3.0-or-later

package core

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/jedib0t/go-pretty/progress"
	"github.com/jedib0t/go-pretty/table"
	"github.com/minerdetect/minerscan/internal/logger"
	"github.com/minerdetect/minerscan/internal/util"
	"github.com/minerdetect/minerscan/pkg/scan"
	"github.com/rs/zerolog"
)

// Results aggregates every host observation from one run
type Results struct {
	Run   *scan.Run          `json:"run"`
	Hosts []*scan.HostResult `json:"hosts"`
}

// Core consumes orchestrator events and renders progress plus a final
// report as a table or JSON
type Core struct {
	noProgress   bool
	printJson    bool
	outFile      string
	results      *Results
	pw           progress.Writer
	tracker      *progress.Tracker
	seen         int64
	orchestrator Orchestrator
	mux          *sync.RWMutex
	log          logger.Logger
}

func New() *Core {
	return &Core{
		mux: &sync.RWMutex{},
		log: logger.New(),
	}
}

func (c *Core) Initialize(
	orchestrator Orchestrator,
	targetLen int,
	noProgress bool,
	printJson bool,
	outFile string,
) {
	tracker := &progress.Tracker{Message: "starting scan"}
	tracker.Total = int64(targetLen)

	if noProgress {
		logger.SetGlobalLevel(zerolog.Disabled)
	}

	c.orchestrator = orchestrator
	c.results = &Results{Hosts: []*scan.HostResult{}}
	c.pw = progressWriter()
	c.tracker = tracker
	c.noProgress = noProgress
	c.printJson = printJson
	c.outFile = outFile
}

// Run executes the scan and blocks until the report is rendered
func (c *Core) Run(ctx context.Context) (*scan.Run, error) {
	start := time.Now()

	if !c.noProgress {
		c.pw.AppendTracker(c.tracker)
		go c.pw.Render()
	}

	var run *scan.Run
	var runErr error

	done := make(chan struct{})

	// run in go routine so we can process events in parallel
	go func() {
		run, runErr = c.orchestrator.Run(ctx)
		close(done)
	}()

	for event := range c.orchestrator.Events() {
		switch event.Type {
		case scan.ProgressEvent:
			c.processProgress(event.Payload.(*scan.Progress))
		case scan.HostEvent:
			c.processHost(event.Payload.(*scan.HostResult))
		}
	}

	<-done

	if runErr != nil {
		return run, runErr
	}

	if !c.noProgress {
		c.pw.Stop()
	}

	c.results.Run = run

	if err := c.printResults(); err != nil {
		return run, err
	}

	c.log.Info().
		Str("duration", time.Since(start).String()).
		Int("miners", run.Miners).
		Msg("minerscan complete")

	return run, nil
}

func (c *Core) processProgress(p *scan.Progress) {
	if c.noProgress {
		return
	}

	if c.tracker.Total == 0 && p.Total > 0 {
		c.tracker.Total = int64(p.Total)
	}

	// progress events from sibling pipelines may arrive out of order, so
	// advance by delta rather than setting an absolute value
	if delta := int64(p.Processed) - c.seen; delta > 0 {
		c.tracker.Increment(delta)
		c.seen += delta
	}

	message := fmt.Sprintf("scanned %d of %d hosts", p.Processed, p.Total)

	if c.tracker.IsDone() {
		message = "scan complete"
	}

	c.tracker.Message = message
}

func (c *Core) processHost(host *scan.HostResult) {
	c.mux.Lock()
	defer c.mux.Unlock()

	exists := util.SliceIncludesFunc(c.results.Hosts, func(h *scan.HostResult, i int) bool {
		return h.Address == host.Address
	})

	if exists {
		return
	}

	c.results.Hosts = append(c.results.Hosts, host)

	slices.SortFunc(c.results.Hosts, func(h1, h2 *scan.HostResult) int {
		return strings.Compare(h1.Address, h2.Address)
	})
}

func (c *Core) printResults() error {
	c.mux.RLock()
	defer c.mux.RUnlock()

	if c.printJson {
		data, err := json.Marshal(c.results)

		if err != nil {
			return err
		}

		fmt.Println(string(data))

		return c.writeReport(data)
	}

	resultTable := table.NewWriter()
	resultTable.SetOutputMirror(os.Stdout)
	resultTable.AppendHeader(table.Row{
		"ADDRESS", "HOSTNAME", "ONLINE", "LATENCY", "OPEN PORTS", "VERDICT", "CONFIDENCE", "ISP",
	})

	for _, h := range c.results.Hosts {
		openPorts := []string{}

		for _, p := range h.OpenPorts {
			openPorts = append(openPorts, fmt.Sprintf("%s:%d", p.Service, p.ID))
		}

		verdict := ""

		if h.Miner {
			verdict = h.Label

			if h.Family != "" {
				verdict += " (" + h.Family + ")"
			}
		}

		resultTable.AppendRow(table.Row{
			h.Address,
			h.Hostname,
			h.Online,
			h.Latency.Round(time.Millisecond).String(),
			strings.Join(openPorts, ", "),
			verdict,
			fmt.Sprintf("%.2f", h.Confidence),
			h.ISP,
		})
	}

	output := resultTable.Render()

	return c.writeReport([]byte(output))
}

func (c *Core) writeReport(data []byte) error {
	if c.outFile == "" {
		return nil
	}

	if err := os.WriteFile(c.outFile, data, 0644); err != nil {
		c.log.Error().Err(err).Msg("failed to write output report")
		return err
	}

	return nil
}

// helpers
func progressWriter() progress.Writer {
	pw := progress.NewWriter()
	pw.SetOutputWriter(os.Stdout)
	pw.SetAutoStop(false)
	pw.SetTrackerLength(25)
	pw.SetMessageWidth(47)
	pw.SetNumTrackersExpected(1)
	pw.SetSortBy(progress.SortByPercentDsc)
	pw.SetStyle(progress.StyleDefault)
	pw.SetTrackerPosition(progress.PositionRight)
	pw.SetUpdateFrequency(time.Millisecond * 100)
	pw.Style().Colors = progress.StyleColorsExample
	pw.Style().Options.PercentFormat = "%4.3f%%"

	return pw
}
