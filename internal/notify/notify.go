// Package notify is the transient notification surface: fire-and-forget
// messages with a severity, no return value, no acknowledgment.
package notify

import (
	"go.uber.org/zap"
)

// Notification severities.
const (
	SeverityInfo    = "info"
	SeveritySuccess = "success"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// Notification is one transient user-facing message.
type Notification struct {
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// Notifier shows a transient message. Implementations must not block and
// must not fail the caller.
type Notifier interface {
	Notify(message, severity string)
}

// LogNotifier mirrors notifications to the application log; the HTTP layer
// embeds the notification in its response, so no push channel is needed.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(message, severity string) {
	switch severity {
	case SeverityWarning:
		zap.S().Warnf("[NOTIFY] %s", message)
	case SeverityError:
		zap.S().Errorf("[NOTIFY] %s", message)
	default:
		zap.S().Infof("[NOTIFY] %s", message)
	}
}
