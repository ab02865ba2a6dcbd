package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/forkcook/internal/domain"
	"github.com/hammamikhairi/forkcook/internal/logger"
)

// storeContract runs the behaviour every BlobStore must share.
func storeContract(t *testing.T, store domain.BlobStore) {
	t.Helper()
	ctx := context.Background()

	// Missing key.
	_, err := store.Get(ctx, "likes")
	require.ErrorIs(t, err, domain.ErrNotFound)

	// Put then get.
	require.NoError(t, store.Put(ctx, "likes", []byte(`[{"id":"1"}]`)))
	got, err := store.Get(ctx, "likes")
	require.NoError(t, err)
	require.Equal(t, `[{"id":"1"}]`, string(got))

	// Overwrite replaces the whole blob.
	require.NoError(t, store.Put(ctx, "likes", []byte(`[]`)))
	got, err = store.Get(ctx, "likes")
	require.NoError(t, err)
	require.Equal(t, `[]`, string(got))

	// Keys are independent.
	require.NoError(t, store.Put(ctx, "other", []byte("x")))
	got, err = store.Get(ctx, "likes")
	require.NoError(t, err)
	require.Equal(t, `[]`, string(got))
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, NewMemoryStore(logger.New(logger.LevelOff, nil)))
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	store := NewMemoryStore(logger.New(logger.LevelOff, nil))
	ctx := context.Background()

	buf := []byte("abc")
	require.NoError(t, store.Put(ctx, "k", buf))
	buf[0] = 'z'

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "abc", string(got))

	got[1] = 'z'
	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "abc", string(again))
}

func TestFileStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	store, err := NewFileStore(dir, logger.New(logger.LevelOff, nil))
	require.NoError(t, err)

	storeContract(t, store)

	data, err := os.ReadFile(filepath.Join(dir, "likes.json"))
	require.NoError(t, err)
	require.Equal(t, `[]`, string(data))

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func TestFileStoreRejectsBadKeys(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), logger.New(logger.LevelOff, nil))
	require.NoError(t, err)
	ctx := context.Background()

	for _, key := range []string{"", "../escape", "a/b", "with space"} {
		require.Error(t, store.Put(ctx, key, []byte("x")), "key %q", key)
		_, err := store.Get(ctx, key)
		require.Error(t, err, "key %q", key)
	}
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "forkcook.db")

	store, err := OpenSQLite(ctx, path, logger.New(logger.LevelOff, nil))
	require.NoError(t, err)
	storeContract(t, store)
	require.NoError(t, store.Close())

	// Values survive a reopen.
	reopened, err := OpenSQLite(ctx, path, logger.New(logger.LevelOff, nil))
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "other")
	require.NoError(t, err)
	require.Equal(t, "x", string(got))
}
