// Package sysboard implements clipboard operations using platform-specific commands.
// On macOS it uses pbcopy/pbpaste, on Linux it uses xclip or xsel as a fallback.
package sysboard

import (
	"bytes"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// SystemClipboard implements clipboard.Clipboard using system commands
type SystemClipboard struct{}

// New creates a new SystemClipboard instance
func New() *SystemClipboard {
	return &SystemClipboard{}
}

// IsSupported returns true if the platform helper commands are available
func (s *SystemClipboard) IsSupported() bool {
	switch runtime.GOOS {
	case "darwin":
		if _, err := exec.LookPath("pbcopy"); err != nil {
			return false
		}
		if _, err := exec.LookPath("pbpaste"); err != nil {
			return false
		}
		return true
	case "linux":
		if _, err := exec.LookPath("xclip"); err == nil {
			return true
		}
		if _, err := exec.LookPath("xsel"); err == nil {
			return true
		}
		return false
	default:
		return false
	}
}

// ReadText implements clipboard.Clipboard.ReadText
func (s *SystemClipboard) ReadText() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		return readWithCommand("pbpaste")
	case "linux":
		return readLinux()
	default:
		return "", fmt.Errorf("clipboard operations not supported on %s", runtime.GOOS)
	}
}

// WriteText implements clipboard.Clipboard.WriteText
func (s *SystemClipboard) WriteText(text string) error {
	switch runtime.GOOS {
	case "darwin":
		return writeWithCommand(text, "pbcopy")
	case "linux":
		return writeLinux(text)
	default:
		return fmt.Errorf("clipboard operations not supported on %s", runtime.GOOS)
	}
}

// readLinux reads from clipboard on Linux using xclip or xsel
func readLinux() (string, error) {
	// Try xclip first
	if text, err := readWithCommand("xclip", "-selection", "clipboard", "-o"); err == nil {
		return text, nil
	}

	// Fall back to xsel
	text, err := readWithCommand("xsel", "--clipboard", "--output")
	if err != nil {
		return "", fmt.Errorf("failed to read clipboard (tried xclip and xsel): %w", err)
	}

	return text, nil
}

// writeLinux writes to clipboard on Linux using xclip or xsel
func writeLinux(text string) error {
	// Try xclip first
	if err := writeWithCommand(text, "xclip", "-selection", "clipboard"); err == nil {
		return nil
	}

	// Fall back to xsel
	if err := writeWithCommand(text, "xsel", "--clipboard", "--input"); err != nil {
		return fmt.Errorf("failed to write clipboard (tried xclip and xsel): %w", err)
	}

	return nil
}

// readWithCommand executes a command and returns its output
func readWithCommand(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return "", err
	}

	return out.String(), nil
}

// writeWithCommand executes a command with text as stdin
func writeWithCommand(text string, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(text)

	return cmd.Run()
}
