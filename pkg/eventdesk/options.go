package eventdesk

import (
	"log/slog"
	"time"

	"github.com/randalmurphal/eventdesk/pkg/eventdesk/notify"
	"github.com/randalmurphal/eventdesk/pkg/eventdesk/observability"
	"github.com/randalmurphal/eventdesk/pkg/eventdesk/storage"
)

// DefaultSlot is the storage slot the collection is persisted under.
const DefaultSlot = "events"

// storeConfig holds configuration for a Store.
type storeConfig struct {
	storage  storage.Store
	slot     string
	notifier notify.Notifier
	logger   *slog.Logger
	metrics  observability.MetricsRecorder
	now      func() time.Time
	seed     []Event
}

// defaultStoreConfig returns the default store configuration:
// in-memory storage, the default slot, no notifier, no logger,
// no-op metrics, wall clock, and the standard seed collection.
func defaultStoreConfig() storeConfig {
	return storeConfig{
		slot:    DefaultSlot,
		metrics: observability.NoopMetrics{},
		now:     time.Now,
		seed:    SeedEvents(),
	}
}

// StoreOption configures a Store.
type StoreOption func(*storeConfig)

// WithStorage sets the persistence backend.
// Default: a fresh storage.MemoryStore.
func WithStorage(s storage.Store) StoreOption {
	return func(c *storeConfig) {
		if s != nil {
			c.storage = s
		}
	}
}

// WithSlot sets the storage slot the collection is saved under.
// Default: DefaultSlot.
func WithSlot(slot string) StoreOption {
	return func(c *storeConfig) {
		if slot != "" {
			c.slot = slot
		}
	}
}

// WithNotifier sets the notification channel for persistence warnings.
// Default: none (warnings are only logged).
func WithNotifier(n notify.Notifier) StoreOption {
	return func(c *storeConfig) {
		c.notifier = n
	}
}

// WithLogger sets the structured logger.
// Default: none.
func WithLogger(l *slog.Logger) StoreOption {
	return func(c *storeConfig) {
		c.logger = l
	}
}

// WithMetrics sets the metrics recorder.
// Default: observability.NoopMetrics.
func WithMetrics(m observability.MetricsRecorder) StoreOption {
	return func(c *storeConfig) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithClock sets the time source used for snapshot timestamps.
// Default: time.Now. Intended for tests.
func WithClock(now func() time.Time) StoreOption {
	return func(c *storeConfig) {
		if now != nil {
			c.now = now
		}
	}
}

// WithSeed replaces the seed collection used when storage holds no
// readable snapshot. Default: SeedEvents().
func WithSeed(events []Event) StoreOption {
	return func(c *storeConfig) {
		c.seed = events
	}
}

// formConfig holds configuration for a Form.
type formConfig struct {
	notifier notify.Notifier
	now      func() time.Time
}

// FormOption configures a Form.
type FormOption func(*formConfig)

// WithFormNotifier sets the notification channel for validation
// failures. Default: the store's notifier.
func WithFormNotifier(n notify.Notifier) FormOption {
	return func(c *formConfig) {
		c.notifier = n
	}
}

// WithFormClock sets the time source used for the today-or-later date
// check. Default: time.Now. Intended for tests.
func WithFormClock(now func() time.Time) FormOption {
	return func(c *formConfig) {
		if now != nil {
			c.now = now
		}
	}
}
