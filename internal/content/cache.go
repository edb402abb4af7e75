package content

import (
	"sort"

	gocache "github.com/patrickmn/go-cache"
	"github.com/studiowebux/docpeek/internal/types"
)

// Cache holds file contents for the lifetime of the process.
// Entries never expire and are never evicted. It is safe for concurrent use.
type Cache struct {
	store *gocache.Cache
}

// NewCache creates an empty cache
func NewCache() *Cache {
	return &Cache{
		// No expiration and no janitor goroutine
		store: gocache.New(gocache.NoExpiration, 0),
	}
}

// Get returns the cached content of a file
func (c *Cache) Get(file types.FileID) (string, bool) {
	v, ok := c.store.Get(file)
	if !ok {
		return "", false
	}
	text, ok := v.(string)
	return text, ok
}

// Set stores content unless the file is already cached.
// Returns false when an earlier writer won.
func (c *Cache) Set(file types.FileID, text string) bool {
	// Add fails when the key exists, which is the first-writer-wins rule
	return c.store.Add(file, text, gocache.NoExpiration) == nil
}

// Has reports whether a file is cached
func (c *Cache) Has(file types.FileID) bool {
	_, ok := c.store.Get(file)
	return ok
}

// Len returns the number of cached files
func (c *Cache) Len() int {
	return c.store.ItemCount()
}

// Files returns the cached identifiers in sorted order
func (c *Cache) Files() []types.FileID {
	items := c.store.Items()
	files := make([]types.FileID, 0, len(items))
	for k := range items {
		files = append(files, k)
	}
	sort.Strings(files)
	return files
}
