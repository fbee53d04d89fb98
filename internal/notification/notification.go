// Package notification sends desktop notifications through beeep.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/zhubert/chatkit/internal/logger"
)

// Title heads every notification chatkit sends.
const Title = "chatkit"

// notify is replaced in tests.
var notify = beeep.Notify

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	log := logger.ComponentLogger("Notification")
	log.Debug("sending", "title", title, "message", message)
	// Empty icon lets beeep pick the platform default.
	if err := notify(title, message, ""); err != nil {
		log.Warn("send failed", "error", err)
		return err
	}
	return nil
}

// Rejected reports an attachment rejection while the terminal is in the
// background.
func Rejected(message string) error {
	return Send(Title, message)
}
