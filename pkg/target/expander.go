// SPDX-License-Identifier: GPL-3.0-or-later

package target

import (
	"bytes"
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"strings"

	"github.com/minerdetect/minerscan/internal/logger"
	"github.com/minerdetect/minerscan/internal/util"
	"github.com/minerdetect/minerscan/pkg/network"
)

// MaxTargets caps the worst-case cost of a single scan regardless of how
// large a range the caller asks for
const MaxTargets = 1000

// maxISPBlocks bounds how many of an ISP's announced blocks are expanded
const maxISPBlocks = 3

// wideCIDRSubnets bounds expansion of prefixes shorter than /24 to the
// first few /24-equivalent subnets so we never generate millions of
// addresses
const wideCIDRSubnets = MaxTargets / 256

// Spec selects the address source for one scan. The first non-empty field
// wins, checked in order: Range, CIDR, ISP, Region.
type Spec struct {
	Range  string `yaml:"range"`
	CIDR   string `yaml:"cidr"`
	ISP    string `yaml:"isp"`
	Region string `yaml:"region"`
}

// Expander turns a target Spec into a bounded, deduplicated address list
type Expander struct {
	max      int
	registry Registry
	log      logger.Logger
}

// ExpanderOption mutates an Expander during construction
type ExpanderOption = func(e *Expander)

// WithMaxTargets overrides the address cap (used in tests)
func WithMaxTargets(max int) ExpanderOption {
	return func(e *Expander) {
		e.max = max
	}
}

// WithRegistry provides the ISP registry collaborator for ISP mode
func WithRegistry(r Registry) ExpanderOption {
	return func(e *Expander) {
		e.registry = r
	}
}

// NewExpander returns a new Expander
func NewExpander(options ...ExpanderOption) *Expander {
	e := &Expander{
		max: MaxTargets,
		log: logger.New(),
	}

	for _, o := range options {
		o(e)
	}

	return e
}

// Expand produces the finite address list for a Spec. Malformed range or
// CIDR strings are logged and degrade to a partial or empty result; only a
// missing target source or a failing registry collaborator is an error.
func (e *Expander) Expand(spec Spec) ([]string, error) {
	var addrs []string

	switch {
	case spec.Range != "":
		addrs = e.expandRange(spec.Range)
	case spec.CIDR != "":
		addrs = e.expandCIDR(spec.CIDR, e.max)
	case spec.ISP != "":
		ispAddrs, err := e.expandISP(spec.ISP)

		if err != nil {
			return nil, err
		}

		addrs = ispAddrs
	case spec.Region != "":
		addrs = e.expandRegion(spec.Region)
	default:
		return nil, errors.New("no scan target specified")
	}

	addrs = util.DedupeSlice(addrs)

	if len(addrs) > e.max {
		addrs = addrs[:e.max]
	}

	return addrs, nil
}

// expandRange enumerates START-END inclusive, stopping at the declared end
// or the cap, whichever comes first
func (e *Expander) expandRange(ipRange string) []string {
	parts := strings.SplitN(ipRange, "-", 2)

	if len(parts) != 2 {
		e.log.Error().
			Str("range", ipRange).
			Msg("malformed ip range: expected START-END")
		return nil
	}

	start := net.ParseIP(strings.TrimSpace(parts[0]))
	end := net.ParseIP(strings.TrimSpace(parts[1]))

	if start == nil || end == nil || start.To4() == nil || end.To4() == nil {
		e.log.Error().
			Str("range", ipRange).
			Msg("malformed ip range: invalid address")
		return nil
	}

	startIP := start.To4()
	endIP := end.To4()

	if bytes.Compare(startIP, endIP) > 0 {
		e.log.Error().
			Str("range", ipRange).
			Msg("malformed ip range: end precedes start")
		return nil
	}

	addrs := []string{}
	cur := make(net.IP, len(startIP))
	copy(cur, startIP)

	for len(addrs) < e.max {
		addrs = append(addrs, cur.String())

		if cur.Equal(endIP) {
			break
		}

		network.IncrementIP(cur)
	}

	return addrs
}

// expandCIDR enumerates a CIDR block. Prefixes of /24 and longer expand in
// full; shorter prefixes are restricted to the first few /24-equivalent
// subnets of the block.
func (e *Expander) expandCIDR(cidr string, limit int) []string {
	_, ipnet, err := net.ParseCIDR(cidr)

	if err != nil {
		e.log.Error().
			Str("cidr", cidr).
			Err(err).
			Msg("malformed cidr")
		return nil
	}

	ones, bits := ipnet.Mask.Size()

	if bits != 32 {
		e.log.Error().
			Str("cidr", cidr).
			Msg("only ipv4 blocks are supported")
		return nil
	}

	if ones < 24 {
		subnetLimit := wideCIDRSubnets * 256

		if subnetLimit < limit {
			limit = subnetLimit
		}
	}

	addrs := []string{}
	ip := ipnet.IP.Mask(ipnet.Mask).To4()
	cur := make(net.IP, len(ip))
	copy(cur, ip)

	for ipnet.Contains(cur) && len(addrs) < limit {
		addrs = append(addrs, cur.String())
		network.IncrementIP(cur)
	}

	return addrs
}

// expandISP consults the registry for an ISP's announced blocks and expands
// a bounded prefix of them
func (e *Expander) expandISP(isp string) ([]string, error) {
	if e.registry == nil {
		return nil, errors.New("isp targeting requires a registry")
	}

	blocks, err := e.registry.Blocks(isp)

	if err != nil {
		return nil, fmt.Errorf("isp registry lookup for %q failed: %w", isp, err)
	}

	if len(blocks) > maxISPBlocks {
		blocks = blocks[:maxISPBlocks]
	}

	addrs := []string{}

	for _, block := range blocks {
		remaining := e.max - len(addrs)

		if remaining <= 0 {
			break
		}

		addrs = append(addrs, e.expandCIDR(block, remaining)...)
	}

	return addrs, nil
}

// expandRegion derives a synthetic /24 base from a region name and expands
// it. This is a deterministic placeholder, not a real geolocation-to-range
// mapping: the same region always yields the same block, and nothing more.
func (e *Expander) expandRegion(region string) []string {
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(region))))
	sum := h.Sum32()

	cidr := fmt.Sprintf("10.%d.%d.0/24", byte(sum>>8), byte(sum))

	e.log.Info().
		Str("region", region).
		Str("cidr", cidr).
		Msg("derived synthetic block for region (approximation)")

	return e.expandCIDR(cidr, e.max)
}
