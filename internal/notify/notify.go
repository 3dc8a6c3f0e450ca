// Package notify surfaces short user-visible messages for captured
// entries. The desktop implementation shells out to the platform's
// notification command; when notifications are disabled or unsupported a
// no-op notifier is used instead.
package notify

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Notifier delivers a short user-visible message.
type Notifier interface {
	Notify(title, body string) error
}

// DesktopNotifier implements Notifier using system commands
// (notify-send on Linux, osascript on macOS).
type DesktopNotifier struct{}

// NewDesktop creates a new DesktopNotifier instance
func NewDesktop() *DesktopNotifier {
	return &DesktopNotifier{}
}

// Notify sends a desktop notification
func (d *DesktopNotifier) Notify(title, body string) error {
	switch runtime.GOOS {
	case "darwin":
		script := fmt.Sprintf("display notification %q with title %q", body, title)
		return exec.Command("osascript", "-e", script).Run()
	case "linux":
		if _, err := exec.LookPath("notify-send"); err != nil {
			return fmt.Errorf("notify-send not available: %w", err)
		}
		return exec.Command("notify-send", title, body).Run()
	default:
		return fmt.Errorf("notifications not supported on %s", runtime.GOOS)
	}
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

// NewNop creates a new NopNotifier instance
func NewNop() *NopNotifier {
	return &NopNotifier{}
}

// Notify discards the message
func (n *NopNotifier) Notify(title, body string) error {
	return nil
}

// Recorder captures notifications for tests.
type Recorder struct {
	Titles []string
	Bodies []string
}

// NewRecorder creates a new Recorder instance
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Notify records the message
func (r *Recorder) Notify(title, body string) error {
	r.Titles = append(r.Titles, title)
	r.Bodies = append(r.Bodies, body)
	return nil
}
