package triage

import (
	"context"
	"sync"
	"time"
)

// Ensure Cache implements SectionSource at compile time.
var _ SectionSource = (*Cache)(nil)

// Cache is a single-slot render cache keyed by the guide file's
// modification time. There is exactly one guide file, so no eviction
// policy is needed beyond replace-on-change. A mutex guards the slot
// because net/http serves requests concurrently.
type Cache struct {
	store GuideStore

	mu       sync.Mutex
	valid    bool
	modTime  time.Time
	sections []Section
}

// NewCache creates a cache reading through to store.
func NewCache(store GuideStore) *Cache {
	return &Cache{store: store}
}

// Sections returns the parsed guide, re-parsing only when the guide's
// modification time differs from the cached one. On a hit the cached
// slice is returned as-is, not recomputed.
func (c *Cache) Sections(ctx context.Context) ([]Section, time.Time, error) {
	guide, err := c.store.Read(ctx)
	if err != nil {
		return nil, time.Time{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid && guide.ModTime.Equal(c.modTime) {
		return c.sections, c.modTime, nil
	}

	c.sections = ParseGuide(guide.Content)
	c.modTime = guide.ModTime
	c.valid = true
	return c.sections, c.modTime, nil
}

// Invalidate empties the slot so the next read re-parses. Called by the
// file watcher on external edits; also covers filesystems with coarse
// mtime granularity, where a quick save-then-read could otherwise serve
// stale content.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
	c.sections = nil
}
