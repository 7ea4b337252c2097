package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	id1, err := store.Record(ctx, "query.yaml", "Egap(1.0*)")
	require.NoError(t, err)
	id2, err := store.Record(ctx, "cli", "nspecies(2*),nspecies(*5)")
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	entries, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, id2, entries[0].ID)
	assert.Equal(t, "cli", entries[0].Source)
	assert.Equal(t, "nspecies(2*),nspecies(*5)", entries[0].Query)
	assert.Equal(t, id1, entries[1].ID)
	assert.False(t, entries[0].CreatedAt.Before(entries[1].CreatedAt))
}

func TestRecent_Limit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := store.Record(ctx, "cli", "Egap")
		require.NoError(t, err)
	}

	entries, err := store.Recent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	_, err = store.Recent(ctx, 0)
	assert.Error(t, err)
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := Open(path)
	require.NoError(t, err)
	_, err = store.Record(context.Background(), "cli", "Egap")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening applies the schema again without clobbering rows.
	store, err = Open(path)
	require.NoError(t, err)
	defer store.Close()

	entries, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRecent_EmptyStore(t *testing.T) {
	store := openTestStore(t)
	entries, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
