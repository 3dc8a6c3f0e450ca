package store

import (
	"encoding/json"
	"time"
)

// RecordVersion tags the persisted record format. It is written on every
// save and carried forward on load; no migration branches on it yet.
const RecordVersion = "1"

// ContentType is a coarse classification of an entry's text.
type ContentType string

const (
	ContentText ContentType = "text"
	ContentCode ContentType = "code"
)

// Entry is one captured clipboard snapshot.
type Entry struct {
	// ID is an opaque unique identifier generated at capture time.
	ID string `json:"id"`

	// Content is the captured clipboard text.
	Content string `json:"content"`

	// Timestamp is the capture instant.
	Timestamp time.Time `json:"timestamp"`

	// Pinned entries are exempt from size-cap eviction and age cleanup.
	Pinned bool `json:"pinned"`

	// SourceFile is optional provenance, populated when the entry was
	// added from a file rather than captured from the clipboard.
	SourceFile string `json:"source_file,omitempty"`

	// LineCount is the number of newline-delimited segments in Content.
	LineCount int `json:"line_count"`

	// ContentType is the heuristic text/code classification.
	ContentType ContentType `json:"content_type"`
}

// Clone returns a copy of the entry.
func (e *Entry) Clone() *Entry {
	c := *e
	return &c
}

// Record is the persisted shape: the full entry list plus a version tag,
// stored whole under a single key and replaced on every save.
type Record struct {
	Entries []*Entry `json:"entries"`
	Version string   `json:"version"`
}

// Stats describes the persisted record for diagnostics.
type Stats struct {
	// Entries is the number of stored entries, 0 when no record exists.
	Entries int

	// Bytes is the serialized length of the stored record, 0 when absent.
	Bytes int64
}

// EncodeRecord serializes entries into a versioned record.
func EncodeRecord(entries []*Entry) ([]byte, error) {
	if entries == nil {
		entries = []*Entry{}
	}
	return json.Marshal(&Record{Entries: entries, Version: RecordVersion})
}

// DecodeRecord parses a persisted record. Malformed data or a record
// without an entries field yields an empty list, never an error.
func DecodeRecord(data []byte) []*Entry {
	if len(data) == 0 {
		return []*Entry{}
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return []*Entry{}
	}

	// JSON null elements decode to nil pointers; drop them so callers
	// never see a nil entry.
	entries := make([]*Entry, 0, len(record.Entries))
	for _, e := range record.Entries {
		if e != nil {
			entries = append(entries, e)
		}
	}
	return entries
}
