// Package boltstore is the Bolt-backed persistence adapter. The history
// record maps directly onto a bbolt bucket: one bucket, one key, the
// serialized record as the value.
package boltstore

import (
	"fmt"
	"time"

	"github.com/rwalden/clipwatch/internal/store"
	"go.etcd.io/bbolt"
)

const (
	historyBucket = "history"
	recordKey     = "record"
)

// BoltStore is a bbolt-backed implementation of store.Store
type BoltStore struct {
	db *bbolt.DB
}

// NewBoltStore opens (or creates) the database file at the given path.
func NewBoltStore(dbPath string) (*BoltStore, error) {
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(historyBucket))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Save replaces the stored record with the serialized entries.
func (s *BoltStore) Save(entries []*store.Entry) error {
	data, err := store.EncodeRecord(entries)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(historyBucket)).Put([]byte(recordKey), data)
	})
}

// Load reads the stored record. A missing or malformed record yields an
// empty list.
func (s *BoltStore) Load() ([]*store.Entry, error) {
	var entries []*store.Entry
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(historyBucket)).Get([]byte(recordKey))
		entries = store.DecodeRecord(data)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load record: %w", err)
	}
	return entries, nil
}

// Clear deletes the stored record.
func (s *BoltStore) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(historyBucket)).Delete([]byte(recordKey))
	})
}

// Stats reports the stored entry count and serialized size.
func (s *BoltStore) Stats() (store.Stats, error) {
	var stats store.Stats
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(historyBucket)).Get([]byte(recordKey))
		if data == nil {
			return nil
		}
		stats.Entries = len(store.DecodeRecord(data))
		stats.Bytes = int64(len(data))
		return nil
	})
	if err != nil {
		return store.Stats{}, fmt.Errorf("failed to read record: %w", err)
	}
	return stats, nil
}

// Close closes the database file.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
