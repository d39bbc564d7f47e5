package directory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Cache persists the last fetched Directory as a JSON document at a fixed
// path. It holds a single value; every Save replaces the previous one.
type Cache struct {
	path string
}

// NewCache returns a cache backed by the file at path. The file is not
// touched until the first Load or Save.
func NewCache(path string) *Cache {
	return &Cache{path: path}
}

// Path reports the location of the cache file.
func (c *Cache) Path() string {
	return c.path
}

// Load reads the cached directory. Any store that cannot be read back as a
// directory is a miss, never an error; the caller falls back to a fresh
// fetch. Corrupt stores are logged before being treated as absent.
func (c *Cache) Load() (Directory, bool) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logrus.WithError(err).WithField("path", c.path).Warn("could not read user cache")
		}
		return nil, false
	}

	if len(data) == 0 {
		return nil, false
	}

	var dir Directory
	if err := json.Unmarshal(data, &dir); err != nil {
		logrus.WithError(err).WithField("path", c.path).Warn("discarding corrupt user cache")
		return nil, false
	}

	return dir, true
}

// Save serializes dir and atomically replaces the store, creating the
// parent directory on first use.
func (c *Cache) Save(dir Directory) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	data, err := json.MarshalIndent(dir, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding user cache: %w", err)
	}

	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing user cache: %w", err)
	}

	if err := os.Rename(tmp, c.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing user cache: %w", err)
	}

	return nil
}

// Clear removes the store. Clearing an absent store is not an error.
func (c *Cache) Clear() error {
	if err := os.Remove(c.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing user cache: %w", err)
	}
	return nil
}
