// Package mockboard provides a mock clipboard implementation for testing.
package mockboard

import (
	"fmt"
	"sync"
)

// MockClipboard implements clipboard.Clipboard for testing
type MockClipboard struct {
	mu   sync.Mutex
	text string

	// FailRead forces ReadText to return an error.
	FailRead bool

	// FailWrite forces WriteText to return an error.
	FailWrite bool

	// Writes counts successful WriteText calls.
	Writes int
}

// New creates a new MockClipboard instance
func New() *MockClipboard {
	return &MockClipboard{}
}

// ReadText implements clipboard.Clipboard.ReadText
func (m *MockClipboard) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailRead {
		return "", fmt.Errorf("clipboard read failed")
	}
	return m.text, nil
}

// WriteText implements clipboard.Clipboard.WriteText
func (m *MockClipboard) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWrite {
		return fmt.Errorf("clipboard write failed")
	}
	m.text = text
	m.Writes++
	return nil
}

// IsSupported always returns true for the mock clipboard
func (m *MockClipboard) IsSupported() bool {
	return true
}

// SetText sets the mock clipboard content directly (for testing)
func (m *MockClipboard) SetText(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
}

// Text returns the current clipboard content (for testing)
func (m *MockClipboard) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}
