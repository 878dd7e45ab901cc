// SPDX-License-Identifier: GPL-3.0-or-later

package geo_test

import (
	"context"
	"sync"
	"testing"

	"github.com/minerdetect/minerscan/pkg/geo"
	"github.com/stretchr/testify/assert"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("misses before store", func(st *testing.T) {
		cache := geo.NewMemoryCache()

		loc, ok, err := cache.Lookup(ctx, "91.98.0.1")

		assert.NoError(st, err)
		assert.False(st, ok)
		assert.Nil(st, loc)
	})

	t.Run("round trips a location", func(st *testing.T) {
		cache := geo.NewMemoryCache()

		err := cache.Store(ctx, "91.98.0.1", &geo.Location{
			ISP:    "Pars Online",
			Region: "Ilam",
		})
		assert.NoError(st, err)

		loc, ok, err := cache.Lookup(ctx, "91.98.0.1")

		assert.NoError(st, err)
		assert.True(st, ok)
		assert.Equal(st, "Pars Online", loc.ISP)
		assert.Equal(st, "Ilam", loc.Region)
	})

	t.Run("returned locations are copies", func(st *testing.T) {
		cache := geo.NewMemoryCache()

		_ = cache.Store(ctx, "91.98.0.1", &geo.Location{ISP: "Pars Online"})

		loc, _, _ := cache.Lookup(ctx, "91.98.0.1")
		loc.ISP = "mutated"

		again, _, _ := cache.Lookup(ctx, "91.98.0.1")
		assert.Equal(st, "Pars Online", again.ISP)
	})

	t.Run("tolerates concurrent access", func(st *testing.T) {
		cache := geo.NewMemoryCache()

		wg := sync.WaitGroup{}

		for i := 0; i < 50; i++ {
			wg.Add(2)

			go func() {
				defer wg.Done()
				_ = cache.Store(ctx, "2.176.0.1", &geo.Location{ISP: "TCI"})
			}()

			go func() {
				defer wg.Done()
				_, _, _ = cache.Lookup(ctx, "2.176.0.1")
			}()
		}

		wg.Wait()
	})
}

func TestGuessISP(t *testing.T) {
	t.Run("identifies a known prefix", func(st *testing.T) {
		assert.Equal(st, "Pars Online", geo.GuessISP("91.98.12.34"))
		assert.Equal(st, "TCI", geo.GuessISP("2.176.200.1"))
	})

	t.Run("returns empty for unknown prefixes", func(st *testing.T) {
		assert.Empty(st, geo.GuessISP("8.8.8.8"))
	})

	t.Run("returns empty for private and invalid addresses", func(st *testing.T) {
		assert.Empty(st, geo.GuessISP("192.168.1.1"))
		assert.Empty(st, geo.GuessISP("127.0.0.1"))
		assert.Empty(st, geo.GuessISP("not-an-ip"))
	})
}
