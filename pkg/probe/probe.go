// SPDX-License-Identifier: GPL-3.0-or-later

package probe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/minerdetect/minerscan/internal/logger"
)

const defaultBannerTimeout = time.Second * 2

// ports tried for the TCP liveness fallback when ping cannot run
var defaultLivenessPorts = []uint16{80, 443, 22, 8080}

// Prober performs bounded-time liveness checks and TCP connect probes
type Prober struct {
	timeout       time.Duration
	bannerTimeout time.Duration
	livenessPorts []uint16
	dialer        Dialer
	resolver      Resolver
	log           logger.Logger
}

// ProberOption mutates a Prober during construction
type ProberOption = func(p *Prober)

// WithDialer overrides the dialer used for connect attempts
func WithDialer(d Dialer) ProberOption {
	return func(p *Prober) {
		p.dialer = d
	}
}

// WithResolver overrides the resolver used for reverse name lookups
func WithResolver(r Resolver) ProberOption {
	return func(p *Prober) {
		p.resolver = r
	}
}

// WithBannerTimeout overrides the banner read deadline
func WithBannerTimeout(d time.Duration) ProberOption {
	return func(p *Prober) {
		p.bannerTimeout = d
	}
}

// WithLivenessPorts overrides the ports tried by the TCP liveness fallback
func WithLivenessPorts(ports []uint16) ProberOption {
	return func(p *Prober) {
		p.livenessPorts = ports
	}
}

// NewProber returns a Prober whose every attempt is bounded by timeout
func NewProber(timeout time.Duration, options ...ProberOption) *Prober {
	p := &Prober{
		timeout:       timeout,
		bannerTimeout: defaultBannerTimeout,
		livenessPorts: defaultLivenessPorts,
		dialer:        &net.Dialer{},
		resolver:      net.DefaultResolver,
		log:           logger.New(),
	}

	for _, o := range options {
		o(p)
	}

	return p
}

// Port attempts a single TCP connection to addr:port, racing the attempt
// against the configured timeout. No retries; the losing attempt is
// abandoned via context cancellation rather than awaited.
func (p *Prober) Port(ctx context.Context, addr string, port uint16) Outcome {
	dialCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	conn, err := p.dialer.DialContext(
		dialCtx,
		"tcp",
		net.JoinHostPort(addr, strconv.Itoa(int(port))),
	)

	if err != nil {
		return classifyDialError(err)
	}

	conn.Close()

	return Open
}

// Alive performs a lightweight reachability check independent of any
// specific port, bounded by the probe timeout. It reports reachability and
// the observed response latency.
func (p *Prober) Alive(ctx context.Context, addr string) (bool, time.Duration) {
	start := time.Now()

	alive, err := p.ping(ctx, addr)

	if err == nil {
		return alive, time.Since(start)
	}

	p.log.Debug().
		Str("addr", addr).
		Err(err).
		Msg("ping unavailable, falling back to tcp reachability")

	return p.tcpAlive(ctx, addr), time.Since(start)
}

// Hostname performs a bounded reverse lookup for addr. Any failure or
// empty answer collapses to "".
func (p *Prober) Hostname(ctx context.Context, addr string) string {
	lookupCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	names, err := p.resolver.LookupAddr(lookupCtx, addr)

	if err != nil || len(names) == 0 {
		return ""
	}

	return strings.TrimSuffix(names[0], ".")
}

// ping shells out to the system ping binary for a single echo request.
// Returns an error only when ping could not be executed at all.
func (p *Prober) ping(ctx context.Context, addr string) (bool, error) {
	pingCtx, cancel := context.WithTimeout(ctx, p.timeout+time.Second)
	defer cancel()

	var cmd *exec.Cmd

	if runtime.GOOS == "windows" {
		ms := strconv.Itoa(int(p.timeout.Milliseconds()))
		cmd = exec.CommandContext(pingCtx, "ping", "-n", "1", "-w", ms, addr)
	} else {
		secs := int(p.timeout.Seconds())

		if secs < 1 {
			secs = 1
		}

		cmd = exec.CommandContext(pingCtx, "ping", "-c", "1", "-W", strconv.Itoa(secs), addr)
	}

	err := cmd.Run()

	if err == nil {
		return true, nil
	}

	var exitErr *exec.ExitError

	if errors.As(err, &exitErr) {
		// ping ran and the host did not answer
		return false, nil
	}

	return false, fmt.Errorf("ping execution failed: %w", err)
}

// tcpAlive treats any response on a common port, including an active
// refusal, as proof of life. Only silence means unreachable.
func (p *Prober) tcpAlive(ctx context.Context, addr string) bool {
	for _, port := range p.livenessPorts {
		if ctx.Err() != nil {
			return false
		}

		dialCtx, cancel := context.WithTimeout(ctx, p.timeout)

		conn, err := p.dialer.DialContext(
			dialCtx,
			"tcp",
			net.JoinHostPort(addr, strconv.Itoa(int(port))),
		)

		cancel()

		if err == nil {
			conn.Close()
			return true
		}

		if errors.Is(err, syscall.ECONNREFUSED) {
			return true
		}
	}

	return false
}

// classifyDialError maps a dial failure to a probe outcome
func classifyDialError(err error) Outcome {
	if errors.Is(err, context.DeadlineExceeded) {
		return TimedOut
	}

	var netErr net.Error

	if errors.As(err, &netErr) && netErr.Timeout() {
		return TimedOut
	}

	return Closed
}
