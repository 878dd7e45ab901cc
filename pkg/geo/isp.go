// SPDX-License-Identifier: GPL-3.0-or-later

package geo

import (
	"net"
	"strings"
)

// ispPrefixes is a local last-resort heuristic used when the cache has no
// record for an address. It mirrors the expander's static registry data and
// makes no claim beyond "this prefix was once announced by this ISP".
var ispPrefixes = []struct {
	prefix string
	isp    string
}{
	{"2.176.", "TCI"},
	{"2.177.", "TCI"},
	{"5.116.", "TCI"},
	{"5.117.", "TCI"},
	{"5.112.", "Irancell"},
	{"5.113.", "Irancell"},
	{"37.129.", "Irancell"},
	{"37.156.", "Rightel"},
	{"95.162.", "Rightel"},
	{"94.182.", "Shatel"},
	{"94.183.", "Shatel"},
	{"91.98.", "Pars Online"},
	{"91.99.", "Pars Online"},
	{"178.131.", "Mobinnet"},
}

// GuessISP identifies the likely ISP for an address by prefix. Private and
// unparseable addresses, and anything outside the table, yield "".
func GuessISP(addr string) string {
	ip := net.ParseIP(addr)

	if ip == nil || ip.To4() == nil {
		return ""
	}

	if ip.IsPrivate() || ip.IsLoopback() {
		return ""
	}

	for _, entry := range ispPrefixes {
		if strings.HasPrefix(addr, entry.prefix) {
			return entry.isp
		}
	}

	return ""
}
