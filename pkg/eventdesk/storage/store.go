// Package storage provides durable blob storage for event snapshots.
//
// A Store maps a named slot to a single opaque blob. The event manager
// serializes its entire collection into one blob and rewrites it on
// every mutation, so each implementation only needs atomic whole-value
// replacement, not partial updates.
package storage

import "errors"

// Store persists snapshot blobs by slot name.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save stores a blob under slot, replacing any previous value.
	Save(slot string, data []byte) error

	// Load retrieves the blob stored under slot.
	// Returns ErrNotFound if the slot has never been written.
	Load(slot string) ([]byte, error)

	// Delete removes the blob under slot.
	// Returns nil if the slot doesn't exist.
	Delete(slot string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Sentinel errors for storage operations.
var (
	// ErrNotFound indicates the slot has no stored blob.
	ErrNotFound = errors.New("snapshot not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("storage closed")
)
