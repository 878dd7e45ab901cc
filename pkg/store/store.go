// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/minerdetect/minerscan/pkg/scan"
	"go.etcd.io/bbolt"
)

const (
	bucketRuns  = "runs"
	bucketHosts = "hosts"
)

// ErrNotFound indicates the requested run does not exist
var ErrNotFound = errors.New("run not found")

// Store persists scan runs and host observations in a single bbolt file.
// Host records are keyed "<runID>/<addr>" so one run's hosts occupy a
// contiguous key range. Implements scan.Sink.
type Store struct {
	db *bbolt.DB
}

// New opens (creating if needed) the database at path
func New(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, nil)

	if err != nil {
		return nil, fmt.Errorf("failed to open scan database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(bucketRuns)); err != nil {
			return err
		}

		_, err := tx.CreateBucketIfNotExists([]byte(bucketHosts))

		return err
	})

	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize scan database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database file
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}

// CreateRun writes the initial record for a run
func (s *Store) CreateRun(run *scan.Run) error {
	return s.putRun(run)
}

// UpdateRun overwrites the record for a run with its current state
func (s *Store) UpdateRun(run *scan.Run) error {
	return s.putRun(run)
}

func (s *Store) putRun(run *scan.Run) error {
	data, err := json.Marshal(run)

	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketRuns)).Put([]byte(run.ID), data)
	})
}

// SaveHost records one host observation under its run
func (s *Store) SaveHost(runID string, host *scan.HostResult) error {
	data, err := json.Marshal(host)

	if err != nil {
		return err
	}

	key := runID + "/" + host.Address

	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketHosts)).Put([]byte(key), data)
	})
}

// GetRun returns the record for one run, or ErrNotFound
func (s *Store) GetRun(id string) (*scan.Run, error) {
	var run *scan.Run

	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(bucketRuns)).Get([]byte(id))

		if v == nil {
			return ErrNotFound
		}

		r := scan.Run{}

		if err := json.Unmarshal(v, &r); err != nil {
			return err
		}

		run = &r

		return nil
	})

	if err != nil {
		return nil, err
	}

	return run, nil
}

// Runs lists stored runs, most recent first, capped at limit when
// limit > 0
func (s *Store) Runs(limit int) ([]scan.Run, error) {
	out := []scan.Run{}

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketRuns)).ForEach(func(k, v []byte) error {
			r := scan.Run{}

			if err := json.Unmarshal(v, &r); err != nil {
				return err
			}

			out = append(out, r)

			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartedAt.After(out[j].StartedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

// HostsForRun returns every host observation recorded for a run, in key
// order
func (s *Store) HostsForRun(runID string) ([]scan.HostResult, error) {
	out := []scan.HostResult{}
	prefix := []byte(runID + "/")

	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket([]byte(bucketHosts)).Cursor()

		for k, v := c.Seek(prefix); k != nil && strings.HasPrefix(string(k), string(prefix)); k, v = c.Next() {
			h := scan.HostResult{}

			if err := json.Unmarshal(v, &h); err != nil {
				return err
			}

			out = append(out, h)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return out, nil
}

// MinersForRun filters a run's observations to detected miners
func (s *Store) MinersForRun(runID string) ([]scan.HostResult, error) {
	hosts, err := s.HostsForRun(runID)

	if err != nil {
		return nil, err
	}

	miners := []scan.HostResult{}

	for _, h := range hosts {
		if h.Miner {
			miners = append(miners, h)
		}
	}

	return miners, nil
}
