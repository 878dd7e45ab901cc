// SPDX-License-Identifier: GPL-3.0-or-later

package scan

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/minerdetect/minerscan/internal/logger"
	"github.com/minerdetect/minerscan/pkg/geo"
	"github.com/minerdetect/minerscan/pkg/probe"
	"github.com/minerdetect/minerscan/pkg/signature"
	"github.com/minerdetect/minerscan/pkg/target"
)

// Orchestrator drives one scan run end to end: expansion, bounded fan-out
// of per-host pipelines, classification, enrichment, and event emission
type Orchestrator struct {
	cfg      Config
	expander Expander
	prober   Prober
	sink     Sink
	cache    geo.Cache
	events   chan *Event
	log      logger.Logger
}

// New returns an Orchestrator for a single run. The config is copied and
// never mutated. Callers must drain Events() while Run is in flight.
func New(cfg Config, options ...Option) *Orchestrator {
	cfg = cfg.withDefaults()

	o := &Orchestrator{
		cfg:    cfg,
		events: make(chan *Event),
		log:    logger.New(),
	}

	for _, opt := range options {
		opt(o)
	}

	if o.expander == nil {
		o.expander = target.NewExpander(
			target.WithRegistry(target.NewStaticRegistry()),
		)
	}

	if o.prober == nil {
		o.prober = probe.NewProber(cfg.Timeout)
	}

	return o
}

// Events returns the channel progress, host, and log events are pushed on.
// Closed when the run reaches a terminal state.
func (o *Orchestrator) Events() <-chan *Event {
	return o.events
}

// Run executes the scan until every expanded address is processed or ctx
// is cancelled, and returns the finalized run record. The returned error
// is non-nil only for fatal setup failures; per-host failures are absorbed.
func (o *Orchestrator) Run(ctx context.Context) (*Run, error) {
	defer close(o.events)

	run := &Run{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
		Status:    StatusInProgress,
	}

	o.createRun(run)

	addrs, err := o.expander.Expand(o.cfg.Targets)

	if err != nil {
		run.Status = StatusFailed
		run.EndedAt = time.Now()
		o.updateRun(run)

		return run, fmt.Errorf("target expansion failed: %w", err)
	}

	run.TotalTargets = len(addrs)

	o.log.Info().
		Str("runID", run.ID).
		Int("targets", run.TotalTargets).
		Msg("starting scan")

	o.emit(ctx, &Event{Type: ProgressEvent, Payload: &Progress{Total: run.TotalTargets}})

	ports := o.cfg.Ports

	if o.cfg.MiningPortsOnly {
		ports = signature.MinerPorts()
	}

	var processed, online, miners atomic.Int64

	slots := make(chan struct{}, o.cfg.MaxConcurrent)
	wg := sync.WaitGroup{}

	for _, addr := range addrs {
		// cancellation is observed at slot acquisition: in-flight
		// pipelines drain but no new ones start
		select {
		case <-ctx.Done():
		case slots <- struct{}{}:
		}

		if ctx.Err() != nil {
			break
		}

		wg.Add(1)

		go func(addr string) {
			defer wg.Done()
			defer func() { <-slots }()

			host := o.runPipeline(ctx, addr, ports)

			processed.Add(1)

			if host.Online {
				online.Add(1)
			}

			if host.Miner {
				miners.Add(1)
			}

			o.saveHost(run.ID, host)

			o.emit(ctx, &Event{Type: HostEvent, Payload: host})
			o.emit(ctx, &Event{Type: LogEvent, Payload: summarize(host)})
			o.emit(ctx, &Event{Type: ProgressEvent, Payload: &Progress{
				Processed: int(processed.Load()),
				Total:     run.TotalTargets,
			}})
		}(addr)
	}

	wg.Wait()

	run.Processed = int(processed.Load())
	run.Online = int(online.Load())
	run.Miners = int(miners.Load())
	run.EndedAt = time.Now()

	if ctx.Err() != nil {
		run.Status = StatusCancelled
	} else {
		run.Status = StatusCompleted
	}

	o.updateRun(run)

	o.log.Info().
		Str("runID", run.ID).
		Str("status", string(run.Status)).
		Int("processed", run.Processed).
		Int("online", run.Online).
		Int("miners", run.Miners).
		Str("duration", run.EndedAt.Sub(run.StartedAt).String()).
		Msg("scan finished")

	return run, nil
}

// runPipeline shields the run from any single host's failure: a panicking
// pipeline yields a degraded offline observation instead of aborting
// sibling hosts
func (o *Orchestrator) runPipeline(ctx context.Context, addr string, ports []uint16) (host *HostResult) {
	defer func() {
		if r := recover(); r != nil {
			o.log.Error().
				Str("addr", addr).
				Any("panic", r).
				Msg("host pipeline failed")

			host = &HostResult{Address: addr, OpenPorts: []Port{}}
		}
	}()

	return o.scanHost(ctx, addr, ports)
}

// scanHost runs the full per-host pipeline: liveness, port fan-out,
// classification, banner capture, enrichment
func (o *Orchestrator) scanHost(ctx context.Context, addr string, ports []uint16) *HostResult {
	host := &HostResult{
		Address:   addr,
		OpenPorts: []Port{},
	}

	if o.cfg.Ping {
		alive, latency := o.prober.Alive(ctx, addr)

		host.Latency = latency

		if !alive {
			return host
		}
	}

	host.Online = true
	host.Hostname = o.prober.Hostname(ctx, addr)

	// the ports of one host race freely; the host's semaphore slot already
	// bounds outer fan-out. Open ports land in completion order.
	mux := sync.Mutex{}
	wg := sync.WaitGroup{}

	start := time.Now()

	for _, port := range ports {
		wg.Add(1)

		go func(port uint16) {
			defer wg.Done()

			if !o.prober.Port(ctx, addr, port).Reachable() {
				return
			}

			mux.Lock()
			defer mux.Unlock()

			host.OpenPorts = append(host.OpenPorts, Port{
				ID:      port,
				Service: signature.ServiceName(port),
			})

			if host.Latency == 0 {
				host.Latency = time.Since(start)
			}
		}(port)
	}

	wg.Wait()

	openIDs := make([]uint16, len(host.OpenPorts))

	for i, p := range host.OpenPorts {
		openIDs[i] = p.ID
	}

	verdict := signature.Classify(openIDs, "")

	if verdict.Miner && o.cfg.GrabBanners {
		for _, p := range host.OpenPorts {
			if !signature.IsMinerPort(p.ID) {
				continue
			}

			if banner := o.prober.Banner(ctx, addr, p.ID); banner != "" {
				host.Banner = banner
				break
			}
		}

		if family := signature.FamilyFromBanner(host.Banner); family != "" {
			verdict.Family = family
		}
	}

	host.Miner = verdict.Miner
	host.Confidence = verdict.Confidence
	host.Label = verdict.Label
	host.Family = verdict.Family

	o.enrich(ctx, host)

	return host
}

// enrich fills ISP/region from the cache, falling back to the local prefix
// heuristic on a miss. Enrichment failures never fail the host pipeline.
func (o *Orchestrator) enrich(ctx context.Context, host *HostResult) {
	if !o.cfg.Enrich {
		return
	}

	if o.cache != nil {
		loc, ok, err := o.cache.Lookup(ctx, host.Address)

		if err != nil {
			o.log.Warn().
				Str("addr", host.Address).
				Err(err).
				Msg("geo cache lookup failed")
		}

		if ok {
			host.ISP = loc.ISP
			host.Region = loc.Region
			return
		}
	}

	isp := geo.GuessISP(host.Address)

	if isp == "" {
		return
	}

	host.ISP = isp

	if o.cache != nil {
		if err := o.cache.Store(ctx, host.Address, &geo.Location{ISP: isp}); err != nil {
			o.log.Warn().
				Str("addr", host.Address).
				Err(err).
				Msg("geo cache store failed")
		}
	}
}

// emit pushes an event, giving up if the run is cancelled and nobody is
// draining anymore
func (o *Orchestrator) emit(ctx context.Context, event *Event) {
	select {
	case o.events <- event:
	case <-ctx.Done():
	}
}

func (o *Orchestrator) createRun(run *Run) {
	if o.sink == nil {
		return
	}

	if err := o.sink.CreateRun(run); err != nil {
		o.log.Warn().Str("runID", run.ID).Err(err).Msg("failed to persist run")
	}
}

func (o *Orchestrator) updateRun(run *Run) {
	if o.sink == nil {
		return
	}

	if err := o.sink.UpdateRun(run); err != nil {
		o.log.Warn().Str("runID", run.ID).Err(err).Msg("failed to update run")
	}
}

func (o *Orchestrator) saveHost(runID string, host *HostResult) {
	if o.sink == nil {
		return
	}

	if err := o.sink.SaveHost(runID, host); err != nil {
		o.log.Warn().
			Str("runID", runID).
			Str("addr", host.Address).
			Err(err).
			Msg("failed to persist host")
	}
}

// summarize renders the one-line log entry for a host observation
func summarize(host *HostResult) string {
	if !host.Online {
		return fmt.Sprintf("%s: not reachable", host.Address)
	}

	ports := make([]uint16, len(host.OpenPorts))

	for i, p := range host.OpenPorts {
		ports[i] = p.ID
	}

	if host.Miner {
		return fmt.Sprintf(
			"%s: %s (confidence %.1f) ports=%v",
			host.Address, host.Label, host.Confidence, ports,
		)
	}

	return fmt.Sprintf("%s: online, open ports %v", host.Address, ports)
}
