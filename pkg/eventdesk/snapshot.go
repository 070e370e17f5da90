package eventdesk

import (
	"encoding/json"
	"fmt"
	"time"
)

// SnapshotVersion is the current snapshot format version.
// Increment when making breaking changes to the snapshot structure.
const SnapshotVersion = 1

// Snapshot is the persisted form of the whole event collection. The
// Store rewrites it in full on every mutation and reads it back once at
// startup.
type Snapshot struct {
	Version int       `json:"version"`
	SavedAt time.Time `json:"saved_at"`
	Events  []Event   `json:"events"`
}

// NewSnapshot wraps a collection in a snapshot envelope.
func NewSnapshot(events []Event, at time.Time) *Snapshot {
	return &Snapshot{
		Version: SnapshotVersion,
		SavedAt: at.UTC(),
		Events:  events,
	}
}

// Marshal serializes the snapshot to JSON.
func (s *Snapshot) Marshal() ([]byte, error) {
	return json.Marshal(s)
}

// UnmarshalSnapshot deserializes and validates a snapshot blob.
// Any failure means the blob is corrupt or incompatible; the caller is
// expected to fall back to the seed collection.
func UnmarshalSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the snapshot's shape: version, ID uniqueness, enum
// tags, and date format. Storage is not trusted; a blob edited by hand
// or written by a newer format must not make it into the collection.
func (s *Snapshot) Validate() error {
	if s.Version != SnapshotVersion {
		return fmt.Errorf("%w: got %d, want %d", ErrSnapshotVersion, s.Version, SnapshotVersion)
	}
	seen := make(map[int64]bool, len(s.Events))
	for _, e := range s.Events {
		if seen[e.ID] {
			return fmt.Errorf("%w: duplicate event id %d", ErrSnapshotInvalid, e.ID)
		}
		seen[e.ID] = true
		if !e.Category.IsValid() {
			return fmt.Errorf("%w: event %d has category %q", ErrSnapshotInvalid, e.ID, e.Category)
		}
		if !e.Status.IsValid() {
			return fmt.Errorf("%w: event %d has status %q", ErrSnapshotInvalid, e.ID, e.Status)
		}
		if _, err := e.ParseDate(); err != nil {
			return fmt.Errorf("%w: event %d has date %q", ErrSnapshotInvalid, e.ID, e.Date)
		}
	}
	return nil
}
