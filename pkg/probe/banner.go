// SPDX-License-Identifier: GPL-3.0-or-later

package probe

import (
	"context"
	"net"
	"strconv"
	"strings"
	"time"
)

const bannerMaxBytes = 1024

// stratumProbe coaxes a greeting out of mining services that stay silent
// until spoken to
const stratumProbe = `{"id": 1, "method": "mining.subscribe", "params": []}` + "\n"

// Banner attempts one bounded connect-and-read against a port already
// confirmed open. A silent service gets a single stratum subscribe probe
// before the second read. Zero bytes, errors, and timeouts all collapse to
// an empty banner.
func (p *Prober) Banner(ctx context.Context, addr string, port uint16) string {
	dialCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	conn, err := p.dialer.DialContext(
		dialCtx,
		"tcp",
		net.JoinHostPort(addr, strconv.Itoa(int(port))),
	)

	if err != nil {
		return ""
	}

	defer conn.Close()

	banner := p.readBanner(conn)

	if banner == "" {
		if _, err := conn.Write([]byte(stratumProbe)); err != nil {
			return ""
		}

		banner = p.readBanner(conn)
	}

	return banner
}

func (p *Prober) readBanner(conn net.Conn) string {
	if err := conn.SetReadDeadline(time.Now().Add(p.bannerTimeout)); err != nil {
		return ""
	}

	buf := make([]byte, bannerMaxBytes)

	n, err := conn.Read(buf)

	if err != nil || n == 0 {
		return ""
	}

	return strings.TrimSpace(strings.ToValidUTF8(string(buf[:n]), ""))
}
