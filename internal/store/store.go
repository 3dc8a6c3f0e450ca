// Package store defines the entry model and the persistence contract for
// clipwatch's history. The history is persisted as one versioned record,
// replaced whole on every save; backends only move that record in and out
// of their key-value store and hold no independent copy of the list.
package store

// Store persists the full ordered entry list as a single record.
type Store interface {
	// Save replaces the persisted record with the given entries.
	// Last writer wins; there is no merge.
	Save(entries []*Entry) error

	// Load returns the persisted entries in saved order. An absent or
	// malformed record yields an empty list, not an error.
	Load() ([]*Entry, error)

	// Clear deletes the persisted record.
	Clear() error

	// Stats reports the stored entry count and serialized byte length.
	// Both are zero when no record exists. Diagnostic only.
	Stats() (Stats, error)

	// Close releases any resources (DB connections, file handles).
	Close() error
}
