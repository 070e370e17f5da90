package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSQLiteStore_SurvivesReopen verifies persistence across store
// instances backed by the same database file.
func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.db")

	first, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Save("events", []byte("persisted")))
	require.NoError(t, first.Close())

	second, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.Load("events")
	require.NoError(t, err)
	assert.Equal(t, []byte("persisted"), got)
}

// TestSQLiteStore_DoubleClose verifies Close is idempotent.
func TestSQLiteStore_DoubleClose(t *testing.T) {
	store, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)

	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}

// TestSQLiteStore_LargeBlob verifies round-tripping a blob well past
// typical snapshot sizes.
func TestSQLiteStore_LargeBlob(t *testing.T) {
	store, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	blob := make([]byte, 1<<20)
	for i := range blob {
		blob[i] = byte(i % 251)
	}
	require.NoError(t, store.Save("events", blob))

	got, err := store.Load("events")
	require.NoError(t, err)
	assert.Equal(t, blob, got)
}
