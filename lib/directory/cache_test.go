package directory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testCache(t *testing.T) *Cache {
	t.Helper()
	return NewCache(filepath.Join(t.TempDir(), "users.json"))
}

func TestCacheSaveLoad(t *testing.T) {
	c := testCache(t)

	dir := Directory{
		{ID: "U1", Team: "T1", Name: "Alice"},
		{ID: "U2", Team: "T1", Name: "Bob"},
	}
	require.NoError(t, c.Save(dir))

	got, ok := c.Load()
	require.True(t, ok)
	require.Equal(t, dir, got)
}

func TestCacheLoadMissing(t *testing.T) {
	got, ok := testCache(t).Load()
	require.False(t, ok)
	require.Nil(t, got)
}

func TestCacheLoadCorrupt(t *testing.T) {
	c := testCache(t)
	require.NoError(t, os.WriteFile(c.Path(), []byte("{not json"), 0644))

	_, ok := c.Load()
	require.False(t, ok)
}

func TestCacheLoadEmptyFile(t *testing.T) {
	c := testCache(t)
	require.NoError(t, os.WriteFile(c.Path(), []byte{}, 0644))

	_, ok := c.Load()
	require.False(t, ok)
}

func TestCacheSaveEmptyDirectory(t *testing.T) {
	c := testCache(t)
	require.NoError(t, c.Save(Directory{}))

	got, ok := c.Load()
	require.True(t, ok)
	require.Empty(t, got)
}

func TestCacheSaveOverwrites(t *testing.T) {
	c := testCache(t)
	require.NoError(t, c.Save(Directory{{ID: "U1", Team: "T1", Name: "Alice"}}))
	require.NoError(t, c.Save(Directory{{ID: "U2", Team: "T2", Name: "Bob"}}))

	got, ok := c.Load()
	require.True(t, ok)
	require.Equal(t, Directory{{ID: "U2", Team: "T2", Name: "Bob"}}, got)
}

func TestCacheSaveCreatesParentDirs(t *testing.T) {
	c := NewCache(filepath.Join(t.TempDir(), "nested", "cache", "users.json"))
	require.NoError(t, c.Save(Directory{{ID: "U1", Team: "T1", Name: "Alice"}}))

	_, ok := c.Load()
	require.True(t, ok)
}

func TestCacheSaveUnwritablePath(t *testing.T) {
	// A regular file where the parent directory should be makes every
	// write under it fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	c := NewCache(filepath.Join(blocker, "users.json"))
	require.Error(t, c.Save(Directory{{ID: "U1", Team: "T1", Name: "Alice"}}))
}

func TestCacheClearIdempotent(t *testing.T) {
	c := testCache(t)
	require.NoError(t, c.Save(Directory{{ID: "U1", Team: "T1", Name: "Alice"}}))

	require.NoError(t, c.Clear())
	require.NoError(t, c.Clear())

	_, ok := c.Load()
	require.False(t, ok)
}
