// Package history implements the clipboard history engine. A Manager owns
// the ordered entry list, polls the clipboard on a timer, applies the
// exclusion, deduplication, size-cap and age-cleanup policies, and
// persists the result through a store.Store.
//
// Failure policy: clipboard and store errors degrade to no-ops. A failed
// poll is retried on the next tick, a failed save leaves the in-memory
// list authoritative, and operations on unknown ids report false rather
// than returning errors.
package history

import (
	"crypto/rand"
	"regexp"
	"sort"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rwalden/clipwatch/internal/clipboard"
	"github.com/rwalden/clipwatch/internal/config"
	"github.com/rwalden/clipwatch/internal/notify"
	"github.com/rwalden/clipwatch/internal/store"
)

// Manager is the history engine.
type Manager struct {
	mu           sync.Mutex
	store        store.Store
	clip         clipboard.Clipboard
	notifier     notify.Notifier
	cfg          config.Config
	patterns     []*regexp.Regexp
	entries      []*store.Entry
	lastObserved string
	entropy      *ulid.MonotonicEntropy

	subMu       sync.Mutex
	subscribers map[int]func()
	nextSub     int

	// monitor state machine: idle (stop == nil) or running.
	monMu sync.Mutex
	stop  chan struct{}
	done  chan struct{}

	now func() time.Time
}

// NewManager creates a history engine over the given store, clipboard and
// notifier. Monitoring does not start until Init or StartMonitoring.
func NewManager(s store.Store, clip clipboard.Clipboard, notifier notify.Notifier, cfg *config.Config) *Manager {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	return &Manager{
		store:       s,
		clip:        clip,
		notifier:    notifier,
		cfg:         *cfg,
		patterns:    compilePatterns(cfg.ExcludePatterns),
		entries:     []*store.Entry{},
		entropy:     ulid.Monotonic(rand.Reader, 0),
		subscribers: make(map[int]func()),
		now:         time.Now,
	}
}

// Init loads persisted entries, runs the age cleanup sweep, snapshots the
// current clipboard text as the change-detection baseline, and starts
// monitoring. A clipboard read failure at startup leaves the baseline
// empty; a store failure leaves the history empty. Neither is an error.
func (m *Manager) Init() {
	m.Load()

	m.mu.Lock()
	if text, err := m.clip.ReadText(); err == nil {
		m.lastObserved = text
	}
	m.mu.Unlock()

	m.StartMonitoring()
}

// Load restores the persisted list and runs the age cleanup sweep,
// without touching the clipboard or starting the monitor. One-shot
// commands use this directly; Init builds on it.
func (m *Manager) Load() {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries, err := m.store.Load()
	if err != nil {
		entries = []*store.Entry{}
	}
	m.entries = entries
	m.resort()

	m.cleanupOldLocked()
}

// StartMonitoring arms the polling timer. No-op when already running.
func (m *Manager) StartMonitoring() {
	m.monMu.Lock()
	defer m.monMu.Unlock()

	if m.stop != nil {
		return
	}

	m.mu.Lock()
	interval := time.Duration(m.cfg.MonitoringInterval) * time.Millisecond
	m.mu.Unlock()

	stop := make(chan struct{})
	done := make(chan struct{})
	m.stop = stop
	m.done = done

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				m.pollOnce()
			case <-stop:
				return
			}
		}
	}()
}

// StopMonitoring disarms the polling timer and waits for any in-flight
// tick to finish. No-op when idle.
func (m *Manager) StopMonitoring() {
	m.monMu.Lock()
	defer m.monMu.Unlock()

	if m.stop == nil {
		return
	}

	close(m.stop)
	<-m.done
	m.stop = nil
	m.done = nil
}

// pollOnce runs a single poll tick. Ticks are serialized by the monitor
// goroutine, so a slow clipboard read delays the next tick rather than
// overlapping it.
func (m *Manager) pollOnce() {
	text, err := m.clip.ReadText()
	if err != nil {
		// Treated as "no new content"; the next tick retries.
		return
	}

	m.mu.Lock()

	if text == m.lastObserved {
		m.mu.Unlock()
		return
	}

	// Advance the baseline before any policy check so an excluded value
	// is not re-evaluated on every subsequent tick.
	m.lastObserved = text

	if m.excludedLocked(text) {
		m.mu.Unlock()
		return
	}

	if len(m.entries) > 0 && m.entries[0].Content == text {
		m.mu.Unlock()
		return
	}

	m.captureLocked(text, "")
	m.mu.Unlock()

	m.notifySubscribers()
	m.toast(text)
}

// Add records content outside the polling path (programmatic capture).
// Exclude and duplicate checks are the caller's responsibility. Returns a
// copy of the created entry.
func (m *Manager) Add(content, sourceFile string) *store.Entry {
	m.mu.Lock()
	entry := m.captureLocked(content, sourceFile)
	clone := entry.Clone()
	m.mu.Unlock()

	m.notifySubscribers()
	m.toast(content)
	return clone
}

// captureLocked builds a new entry, inserts it, applies the size cap and
// persists. Caller holds mu.
func (m *Manager) captureLocked(content, sourceFile string) *store.Entry {
	entry := &store.Entry{
		ID:          m.newID(),
		Content:     content,
		Timestamp:   m.now(),
		SourceFile:  sourceFile,
		LineCount:   CountLines(content),
		ContentType: DetectContentType(content),
	}

	m.entries = append([]*store.Entry{entry}, m.entries...)
	m.resort()
	m.applyCapLocked()
	m.persistLocked()
	return entry
}

// Entries returns a defensive copy of the ordered list.
func (m *Manager) Entries() []*store.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*store.Entry, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Clone()
	}
	return out
}

// Entry returns a copy of the entry with the given id, or nil if absent.
func (m *Manager) Entry(id string) *store.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e := m.findLocked(id); e != nil {
		return e.Clone()
	}
	return nil
}

// Delete removes an entry by id. Returns true only if a removal occurred;
// an unknown id is a no-op and nothing is persisted or announced.
func (m *Manager) Delete(id string) bool {
	m.mu.Lock()

	idx := -1
	for i, e := range m.entries {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		m.mu.Unlock()
		return false
	}

	m.entries = append(m.entries[:idx], m.entries[idx+1:]...)
	m.persistLocked()
	m.mu.Unlock()

	m.notifySubscribers()
	return true
}

// TogglePin flips an entry's pin flag and re-sorts so pinned entries stay
// ahead of unpinned ones. Returns false for an unknown id.
func (m *Manager) TogglePin(id string) bool {
	m.mu.Lock()

	entry := m.findLocked(id)
	if entry == nil {
		m.mu.Unlock()
		return false
	}

	entry.Pinned = !entry.Pinned
	m.resort()
	m.persistLocked()
	m.mu.Unlock()

	m.notifySubscribers()
	return true
}

// Clear empties the history unconditionally, pinned entries included.
func (m *Manager) Clear() {
	m.mu.Lock()
	m.entries = []*store.Entry{}
	m.store.Clear()
	m.mu.Unlock()

	m.notifySubscribers()
}

// CopyToClipboard writes an entry's content back to the clipboard and
// advances the baseline to match, so the following tick does not
// re-capture the write-back. Returns false for an unknown id; a write
// failure is swallowed.
func (m *Manager) CopyToClipboard(id string) bool {
	m.mu.Lock()
	entry := m.findLocked(id)
	if entry == nil {
		m.mu.Unlock()
		return false
	}
	content := entry.Content
	m.lastObserved = content
	m.mu.Unlock()

	m.clip.WriteText(content)
	return true
}

// Preview renders content for display using the configured preview length.
func (m *Manager) Preview(content string) string {
	m.mu.Lock()
	maxLen := m.cfg.PreviewLength
	m.mu.Unlock()
	return Preview(content, maxLen)
}

// Config returns a copy of the active configuration.
func (m *Manager) Config() config.Config {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cfg
}

// UpdateConfig replaces the active configuration, recompiles exclude
// patterns and restarts the polling timer with the new interval.
func (m *Manager) UpdateConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}

	m.mu.Lock()
	m.cfg = *cfg
	m.patterns = compilePatterns(cfg.ExcludePatterns)
	m.mu.Unlock()

	m.monMu.Lock()
	running := m.stop != nil
	m.monMu.Unlock()

	if running {
		m.StopMonitoring()
		m.StartMonitoring()
	}
}

// Subscribe registers a change callback invoked after every
// state-changing operation. The callback carries no payload; subscribers
// re-query the engine. The returned function unsubscribes.
func (m *Manager) Subscribe(fn func()) func() {
	m.subMu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subscribers[id] = fn
	m.subMu.Unlock()

	return func() {
		m.subMu.Lock()
		delete(m.subscribers, id)
		m.subMu.Unlock()
	}
}

// Dispose stops monitoring and drops all subscribers. Safe to call more
// than once.
func (m *Manager) Dispose() {
	m.StopMonitoring()

	m.subMu.Lock()
	m.subscribers = make(map[int]func())
	m.subMu.Unlock()
}

// cleanupOldLocked removes unpinned entries older than the configured age
// threshold. Pinned entries are never removed regardless of age. Caller
// holds mu.
func (m *Manager) cleanupOldLocked() {
	if m.cfg.AutoCleanupDays <= 0 {
		return
	}

	cutoff := m.now().AddDate(0, 0, -m.cfg.AutoCleanupDays)
	kept := m.entries[:0]
	removed := false
	for _, e := range m.entries {
		if !e.Pinned && e.Timestamp.Before(cutoff) {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	m.entries = kept

	if removed {
		m.persistLocked()
	}
}

// applyCapLocked drops the oldest unpinned entries beyond the configured
// maximum. Pinned entries do not count against the cap. Caller holds mu.
func (m *Manager) applyCapLocked() {
	max := m.cfg.MaxHistorySize
	if max <= 0 {
		return
	}

	kept := m.entries[:0]
	unpinned := 0
	for _, e := range m.entries {
		if e.Pinned {
			kept = append(kept, e)
			continue
		}
		// The list is sorted newest first within the unpinned segment,
		// so overflow entries are always the oldest.
		if unpinned < max {
			kept = append(kept, e)
			unpinned++
		}
	}
	m.entries = kept
}

// resort restores the ordering invariant: all pinned entries before all
// unpinned, each segment newest first. Sorting by capture time means a
// pin/unpin round-trip restores an entry's prior slot exactly. Caller
// holds mu.
func (m *Manager) resort() {
	sort.SliceStable(m.entries, func(i, j int) bool {
		a, b := m.entries[i], m.entries[j]
		if a.Pinned != b.Pinned {
			return a.Pinned
		}
		return a.Timestamp.After(b.Timestamp)
	})
}

// persistLocked saves the current list, fire-and-continue: a store
// failure does not roll back the in-memory change. Caller holds mu.
func (m *Manager) persistLocked() {
	m.store.Save(m.entries)
}

// excludedLocked reports whether any configured pattern matches content.
// Caller holds mu.
func (m *Manager) excludedLocked(content string) bool {
	for _, re := range m.patterns {
		if re.MatchString(content) {
			return true
		}
	}
	return false
}

// findLocked returns the live entry with the given id, or nil.
func (m *Manager) findLocked(id string) *store.Entry {
	for _, e := range m.entries {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// notifySubscribers invokes all change callbacks outside the engine lock.
func (m *Manager) notifySubscribers() {
	m.subMu.Lock()
	callbacks := make([]func(), 0, len(m.subscribers))
	for _, fn := range m.subscribers {
		callbacks = append(callbacks, fn)
	}
	m.subMu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

// toast surfaces a short preview of captured content when notifications
// are enabled.
func (m *Manager) toast(content string) {
	m.mu.Lock()
	enabled := m.cfg.EnableNotifications
	maxLen := m.cfg.PreviewLength
	m.mu.Unlock()

	if !enabled || m.notifier == nil {
		return
	}
	m.notifier.Notify("Copied to history", Preview(content, maxLen))
}

// newID generates a fresh ULID for an entry. The shared entropy source
// keeps same-millisecond ids strictly increasing; callers hold mu, which
// serializes access to it.
func (m *Manager) newID() string {
	return ulid.MustNew(ulid.Timestamp(m.now()), m.entropy).String()
}

// compilePatterns compiles exclude patterns, skipping invalid ones so a
// single bad pattern cannot disable the rest.
func compilePatterns(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			continue
		}
		compiled = append(compiled, re)
	}
	return compiled
}
