// Package notification sends desktop notifications through beeep.
package notification

import (
	"sync/atomic"

	"github.com/gen2brain/beeep"
	"github.com/zhubert/gigglegen/internal/logger"
)

// AppName is the title used on every notification.
const AppName = "GiggleGen"

// Messages shown after a copy attempt.
const (
	CopiedMessage       = "Joke copied to clipboard!"
	TerminalCopyMessage = "Joke copied via terminal only"
)

// notifier is the function that delivers notifications; tests replace it.
var notifier = beeep.Notify

var enabled atomic.Bool

// SetNotifier replaces the delivery function.
func SetNotifier(fn func(title, message string, icon any) error) {
	notifier = fn
}

// ResetNotifier restores beeep as the delivery function.
func ResetNotifier() {
	notifier = beeep.Notify
}

// SetEnabled turns desktop notifications on or off. They start disabled.
func SetEnabled(on bool) {
	enabled.Store(on)
}

// Enabled reports whether notifications will be delivered.
func Enabled() bool {
	return enabled.Load()
}

// Send delivers a notification if notifications are enabled.
func Send(title, message string) error {
	if !Enabled() {
		return nil
	}
	log := logger.ComponentLogger("notification")
	log.Debug("sending", "title", title, "message", message)
	if err := notifier(title, message, ""); err != nil {
		log.Warn("failed to send notification", "error", err)
		return err
	}
	return nil
}

// JokeCopied reports a successful copy.
func JokeCopied() error {
	return Send(AppName, CopiedMessage)
}

// CopiedViaTerminal reports a copy that only reached the terminal clipboard.
func CopiedViaTerminal() error {
	return Send(AppName, TerminalCopyMessage)
}
