package boltstore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rwalden/clipwatch/internal/store"
)

func newTestStore(t *testing.T) *BoltStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "history.bolt")
	s, err := NewBoltStore(dbPath)
	if err != nil {
		t.Fatalf("NewBoltStore failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testEntries() []*store.Entry {
	return []*store.Entry{
		{ID: "aa", Content: "first", Timestamp: time.Now().Round(0), Pinned: true, LineCount: 1, ContentType: store.ContentText},
		{ID: "bb", Content: "second\nline", Timestamp: time.Now().Round(0), LineCount: 2, ContentType: store.ContentCode},
	}
}

func TestBoltStore_SaveAndLoad(t *testing.T) {
	s := newTestStore(t)

	if err := s.Save(testEntries()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(loaded) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(loaded))
	}
	if loaded[0].ID != "aa" || loaded[1].ID != "bb" {
		t.Errorf("Order not preserved: %s, %s", loaded[0].ID, loaded[1].ID)
	}
	if !loaded[0].Pinned {
		t.Error("Pin flag lost in round trip")
	}
}

func TestBoltStore_LoadEmpty(t *testing.T) {
	s := newTestStore(t)

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("Expected empty list, got %d entries", len(loaded))
	}
}

func TestBoltStore_PersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.bolt")

	s, err := NewBoltStore(dbPath)
	if err != nil {
		t.Fatalf("NewBoltStore failed: %v", err)
	}
	if err := s.Save(testEntries()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := NewBoltStore(dbPath)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer reopened.Close()

	loaded, err := reopened.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Errorf("Expected 2 entries after reopen, got %d", len(loaded))
	}
}

func TestBoltStore_ClearAndStats(t *testing.T) {
	s := newTestStore(t)

	if err := s.Save(testEntries()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	stats, err := s.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Entries != 2 || stats.Bytes == 0 {
		t.Errorf("Stats = %+v, want 2 entries and nonzero size", stats)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("Expected empty list after clear, got %d entries", len(loaded))
	}

	stats, err = s.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Entries != 0 || stats.Bytes != 0 {
		t.Errorf("Expected zero stats after clear, got %+v", stats)
	}
}
