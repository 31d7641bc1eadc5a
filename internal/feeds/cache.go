package feeds

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Cache is an on-disk page cache with time-based expiry. Freshness is
// derived from the file modification time, so entries survive restarts and
// expire without a background sweeper.
type Cache struct {
	Dir string
	TTL time.Duration
}

// Get returns the cached page for key if it exists and is younger than the
// TTL. A zero TTL means entries never expire.
func (c *Cache) Get(key string) (string, bool) {
	path := c.path(key)
	info, err := os.Stat(path)
	if err != nil {
		return "", false
	}
	if c.TTL > 0 && time.Since(info.ModTime()) > c.TTL {
		return "", false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Put stores the page for key, creating the cache dir as needed.
func (c *Cache) Put(key, page string) error {
	if err := os.MkdirAll(c.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache dir %s: %w", c.Dir, err)
	}
	if err := os.WriteFile(c.path(key), []byte(page), 0644); err != nil {
		return fmt.Errorf("failed to write cache entry %s: %w", key, err)
	}
	return nil
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.Dir, key+".mu")
}
