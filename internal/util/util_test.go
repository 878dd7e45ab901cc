// SPDX-License-Identifier: GPL-3.0-or-later

package util_test

import (
	"testing"

	"github.com/minerdetect/minerscan/internal/util"
	"github.com/stretchr/testify/assert"
)

func TestParsePorts(t *testing.T) {
	t.Run("parses single ports", func(st *testing.T) {
		ports, err := util.ParsePorts("8332,8333")
		assert.NoError(st, err)
		assert.Equal(st, []uint16{8332, 8333}, ports)
	})

	t.Run("expands port ranges", func(st *testing.T) {
		ports, err := util.ParsePorts("3333-3336")
		assert.NoError(st, err)
		assert.Equal(st, []uint16{3333, 3334, 3335, 3336}, ports)
	})

	t.Run("dedupes overlapping elements", func(st *testing.T) {
		ports, err := util.ParsePorts("8332,8332-8333")
		assert.NoError(st, err)
		assert.Equal(st, []uint16{8332, 8333}, ports)
	})

	t.Run("errors on invalid port", func(st *testing.T) {
		_, err := util.ParsePorts("nope")
		assert.Error(st, err)
	})

	t.Run("errors on inverted range", func(st *testing.T) {
		_, err := util.ParsePorts("9000-8000")
		assert.Error(st, err)
	})

	t.Run("errors on out of range port", func(st *testing.T) {
		_, err := util.ParsePorts("70000")
		assert.Error(st, err)
	})
}

func TestSliceIncludes(t *testing.T) {
	t.Run("returns true if slice includes value", func(st *testing.T) {
		s := []uint16{8332, 8333}
		assert.True(st, util.SliceIncludes(s, uint16(8333)))
	})

	t.Run("returns false if slice does not include value", func(st *testing.T) {
		s := []uint16{8332, 8333}
		assert.False(st, util.SliceIncludes(s, uint16(3333)))
	})
}

func TestDedupeSlice(t *testing.T) {
	t.Run("removes duplicates preserving order", func(st *testing.T) {
		s := []string{"10.0.0.1", "10.0.0.2", "10.0.0.1"}
		assert.Equal(st, []string{"10.0.0.1", "10.0.0.2"}, util.DedupeSlice(s))
	})
}
