// SPDX-License-Identifier: GPL-3.0-or-later

package signature

import (
	"slices"
	"strings"
	"sync"

	"github.com/thediveo/netdb"
)

// netdb lookups are not guaranteed goroutine safe
var serviceQueryMux sync.Mutex

// BaselineConfidence is the fixed confidence assigned when any observed
// open port intersects the known mining-port table. Banner contents are
// captured for the record but do not yet move this score.
const BaselineConfidence = 0.8

// MinerLabel is the classification label attached to positive verdicts
const MinerLabel = "Mining Operation Detected"

// minerPorts maps well known mining related ports to a service description.
// Process-wide immutable configuration data; never mutated after init.
var minerPorts = map[uint16]string{
	3333:  "Stratum Mining",
	4028:  "CGMiner API",
	4444:  "Stratum Mining",
	5555:  "Stratum Mining",
	7777:  "Stratum Mining",
	8332:  "Bitcoin RPC",
	8333:  "Bitcoin P2P",
	8545:  "Ethereum RPC",
	8546:  "Ethereum RPC (WS)",
	8888:  "Stratum Mining",
	9332:  "Litecoin RPC",
	9333:  "Litecoin P2P",
	9999:  "Stratum Mining",
	14433: "Stratum Mining (SSL)",
	14444: "Stratum Mining (SSL)",
	18080: "Monero P2P",
	18081: "Monero RPC",
	18332: "Bitcoin Testnet RPC",
	18333: "Bitcoin Testnet P2P",
	30303: "Ethereum P2P",
	30304: "Ethereum P2P (Discovery)",
}

// bannerSignatures lists, per miner family, greeting substrings that betray
// it. Checked in order so overlapping signatures resolve deterministically.
// Matches set the verdict family only; confidence weighting from banners is
// an extension point.
var bannerSignatures = []struct {
	family string
	sigs   []string
}{
	{"stratum", []string{"stratum", "mining.subscribe", "mining.authorize", "mining.notify", "eth_submitlogin", "eth_getwork"}},
	{"bitcoin", []string{"bitcoin", "satoshi", "getwork", "getblocktemplate"}},
	{"ethereum", []string{"eth_", "net_version", "web3_clientversion", "geth", "parity"}},
	{"monero", []string{"monero", "cryptonight", "xmr-", "monerod"}},
}

// Verdict is the outcome of classifying one host's observations
type Verdict struct {
	Miner      bool
	Confidence float64
	Label      string
	Family     string
}

// MinerPorts returns the known mining-signature ports in ascending order,
// used when a scan is restricted to mining ports only
func MinerPorts() []uint16 {
	ports := make([]uint16, 0, len(minerPorts))

	for p := range minerPorts {
		ports = append(ports, p)
	}

	slices.Sort(ports)

	return ports
}

// ServiceName returns a human readable service label for a port, preferring
// the mining table and falling back to the system services database
func ServiceName(port uint16) string {
	if name, ok := minerPorts[port]; ok {
		return name
	}

	serviceQueryMux.Lock()
	svc := netdb.ServiceByPort(int(port), "")
	serviceQueryMux.Unlock()

	if svc != nil {
		return svc.Name
	}

	return "unknown"
}

// IsMinerPort reports whether a port appears in the mining-port table
func IsMinerPort(port uint16) bool {
	_, ok := minerPorts[port]
	return ok
}

// Classify maps a host's observed open ports, and optionally a captured
// banner, to a miner-detection verdict. Any intersection with the known
// port table yields a positive verdict at BaselineConfidence; no
// intersection yields a negative verdict at confidence 0.
func Classify(openPorts []uint16, banner string) Verdict {
	verdict := Verdict{}

	for _, p := range openPorts {
		if _, ok := minerPorts[p]; ok {
			verdict.Miner = true
			verdict.Confidence = BaselineConfidence
			verdict.Label = MinerLabel
			break
		}
	}

	if family := FamilyFromBanner(banner); family != "" {
		verdict.Family = family
	}

	return verdict
}

// FamilyFromBanner matches banner text against known miner greeting
// signatures and returns the matching family, or "" for no match
func FamilyFromBanner(banner string) string {
	if banner == "" {
		return ""
	}

	lower := strings.ToLower(banner)

	for _, entry := range bannerSignatures {
		for _, sig := range entry.sigs {
			if strings.Contains(lower, sig) {
				return entry.family
			}
		}
	}

	return ""
}
