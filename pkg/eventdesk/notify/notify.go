// Package notify provides the user-notification channel for eventdesk.
//
// The core never renders anything itself; when a form submission fails
// validation or a persistence write fails, it hands a Notification to a
// Notifier and moves on. Notifications are transient (they carry a TTL,
// 5 seconds by default) and individually dismissible via their ID.
package notify

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is how long a notification stays visible before it
// auto-dismisses.
const DefaultTTL = 5 * time.Second

// Severity classifies a notification.
type Severity string

// Notification severities.
const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is a single transient message for the user.
type Notification struct {
	// ID uniquely identifies the notification for dismissal.
	ID string `json:"id"`
	// Severity controls presentation (error, warning, info).
	Severity Severity `json:"severity"`
	// Message is the user-facing text.
	Message string `json:"message"`
	// CreatedAt is when the notification was raised.
	CreatedAt time.Time `json:"created_at"`
	// TTL is how long the notification stays active.
	TTL time.Duration `json:"ttl"`
}

// Expired reports whether the notification's TTL has elapsed at now.
func (n Notification) Expired(now time.Time) bool {
	return now.After(n.CreatedAt.Add(n.TTL))
}

// New creates a notification with a fresh ID and the default TTL.
func New(severity Severity, message string) Notification {
	return Notification{
		ID:        uuid.NewString(),
		Severity:  severity,
		Message:   message,
		CreatedAt: time.Now().UTC(),
		TTL:       DefaultTTL,
	}
}

// Error creates an error-severity notification.
func Error(message string) Notification {
	return New(SeverityError, message)
}

// Warning creates a warning-severity notification.
func Warning(message string) Notification {
	return New(SeverityWarning, message)
}

// Info creates an info-severity notification.
func Info(message string) Notification {
	return New(SeverityInfo, message)
}

// Notifier accepts notifications for display.
// Implementations must be safe for concurrent use.
type Notifier interface {
	Notify(n Notification)
}

// Multi fans a notification out to several notifiers.
type Multi []Notifier

// Notify implements Notifier.
func (m Multi) Notify(n Notification) {
	for _, target := range m {
		if target != nil {
			target.Notify(n)
		}
	}
}

// Func adapts a function to the Notifier interface.
type Func func(n Notification)

// Notify implements Notifier.
func (f Func) Notify(n Notification) {
	f(n)
}
