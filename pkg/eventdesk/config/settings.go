package config

import (
	"fmt"
	"time"

	"github.com/randalmurphal/eventdesk/pkg/eventdesk/storage"
)

// Storage driver names accepted in settings.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// Settings are the resolved knobs of the event manager.
type Settings struct {
	// PageSize is the number of events per table page.
	PageSize int
	// StorageDriver selects the persistence backend: memory, file, or sqlite.
	StorageDriver string
	// StoragePath is the directory (file driver) or database path
	// (sqlite driver). Ignored by the memory driver.
	StoragePath string
	// StorageSlot is the slot key the collection is saved under.
	StorageSlot string
	// NotifyTTL is how long notifications stay visible.
	NotifyTTL time.Duration
}

// DefaultSettings returns the settings used when nothing is configured:
// five events per page, in-memory storage under the "events" slot, and
// five-second notifications.
func DefaultSettings() Settings {
	return Settings{
		PageSize:      5,
		StorageDriver: DriverMemory,
		StorageSlot:   "events",
		NotifyTTL:     5 * time.Second,
	}
}

// SettingsFromConfig resolves settings from a Config, falling back to
// the defaults for missing or malformed keys.
//
// Recognized keys: page_size, storage_driver, storage_path,
// storage_slot, notify_ttl.
func SettingsFromConfig(cfg Config) Settings {
	def := DefaultSettings()
	s := Settings{
		PageSize:      cfg.Int("page_size", def.PageSize),
		StorageDriver: cfg.String("storage_driver", def.StorageDriver),
		StoragePath:   cfg.String("storage_path", def.StoragePath),
		StorageSlot:   cfg.String("storage_slot", def.StorageSlot),
		NotifyTTL:     cfg.Duration("notify_ttl", def.NotifyTTL),
	}
	if s.PageSize < 1 {
		s.PageSize = def.PageSize
	}
	return s
}

// OpenStorage constructs the storage backend named by the settings.
func OpenStorage(s Settings) (storage.Store, error) {
	switch s.StorageDriver {
	case DriverMemory:
		return storage.NewMemoryStore(), nil
	case DriverFile:
		return storage.NewFileStore(s.StoragePath)
	case DriverSQLite:
		return storage.NewSQLiteStore(s.StoragePath)
	default:
		return nil, fmt.Errorf("unknown storage driver: %q", s.StorageDriver)
	}
}
