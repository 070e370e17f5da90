package notify

import (
	"context"
	"log/slog"
)

// Slogger writes notifications to a structured logger. Useful for
// headless runs and as a secondary target behind a Multi.
type Slogger struct {
	logger *slog.Logger
}

// NewSlogger creates a notifier backed by the given logger.
// A nil logger produces a notifier that drops everything.
func NewSlogger(logger *slog.Logger) *Slogger {
	return &Slogger{logger: logger}
}

// Notify implements Notifier.
func (s *Slogger) Notify(n Notification) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(context.Background(), level(n.Severity), n.Message,
		slog.String("notification_id", n.ID),
		slog.String("severity", string(n.Severity)),
	)
}

// level maps a notification severity to a slog level.
func level(s Severity) slog.Level {
	switch s {
	case SeverityError:
		return slog.LevelError
	case SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
