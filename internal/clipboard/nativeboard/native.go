// Package nativeboard implements clipboard operations through
// golang.design/x/clipboard, which talks to the display server directly.
// It is used when no system helper command (pbpaste, xclip, xsel) is
// available.
package nativeboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

// NativeClipboard implements clipboard.Clipboard via golang.design/x/clipboard
type NativeClipboard struct {
	initOnce sync.Once
	initErr  error
}

// New creates a new NativeClipboard instance
func New() *NativeClipboard {
	return &NativeClipboard{}
}

// init initializes the underlying clipboard library once.
// clipboard.Init fails when no display is available.
func (n *NativeClipboard) init() error {
	n.initOnce.Do(func() {
		n.initErr = clipboard.Init()
	})
	return n.initErr
}

// IsSupported returns true if the clipboard library can initialize
func (n *NativeClipboard) IsSupported() bool {
	return n.init() == nil
}

// ReadText implements clipboard.Clipboard.ReadText
func (n *NativeClipboard) ReadText() (string, error) {
	if err := n.init(); err != nil {
		return "", fmt.Errorf("clipboard unavailable: %w", err)
	}
	return string(clipboard.Read(clipboard.FmtText)), nil
}

// WriteText implements clipboard.Clipboard.WriteText
func (n *NativeClipboard) WriteText(text string) error {
	if err := n.init(); err != nil {
		return fmt.Errorf("clipboard unavailable: %w", err)
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
