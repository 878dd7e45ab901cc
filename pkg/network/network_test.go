// SPDX-License-Identifier: GPL-3.0-or-later

package network_test

import (
	"net"
	"testing"

	"github.com/minerdetect/minerscan/pkg/network"
	"github.com/stretchr/testify/assert"
)

func TestIncrementIP(t *testing.T) {
	t.Run("increments ip", func(st *testing.T) {
		ip := net.ParseIP("172.17.1.1")
		network.IncrementIP(ip)

		assert.Equal(st, "172.17.1.2", ip.String())
	})

	t.Run("carries across octets", func(st *testing.T) {
		ip := net.ParseIP("10.0.0.255")
		network.IncrementIP(ip)

		assert.Equal(st, "10.0.1.0", ip.String())
	})
}

func TestDefaultUserNetwork(t *testing.T) {
	userNet, err := network.NewDefaultNetwork()

	if err != nil {
		t.Skipf("no default network available: %s", err)
	}

	t.Run("gets hostname", func(st *testing.T) {
		assert.NotEmpty(st, userNet.Hostname())
	})

	t.Run("gets user ip", func(st *testing.T) {
		assert.NotNil(st, userNet.UserIP())
	})

	t.Run("gets interface", func(st *testing.T) {
		assert.NotNil(st, userNet.Interface())
	})

	t.Run("derives a usable cidr target", func(st *testing.T) {
		cidr := userNet.Cidr()

		assert.NotEmpty(st, cidr)

		_, _, err := net.ParseCIDR(cidr)
		assert.NoError(st, err)
	})
}
