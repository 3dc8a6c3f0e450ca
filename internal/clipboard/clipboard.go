// Package clipboard defines the clipboard contract the history engine
// polls and writes through. Implementations live in subpackages: sysboard
// shells out to platform helpers, nativeboard binds the display server
// directly, mockboard is a test fake.
package clipboard

// Clipboard reads and writes the system clipboard as text.
type Clipboard interface {
	// ReadText returns the current clipboard text. A failure means "no
	// new content" to callers polling for changes.
	ReadText() (string, error)

	// WriteText replaces the clipboard content.
	WriteText(text string) error

	// IsSupported reports whether this implementation can work on the
	// current system.
	IsSupported() bool
}
