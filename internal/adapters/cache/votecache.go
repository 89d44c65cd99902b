// Package cache holds in-process caches used by the application core.
package cache

import (
	"strconv"
	"sync"

	"github.com/jsamuelsen/quoteboard/internal/ports"
)

// VoteCache is an advisory in-memory cache of recent vote values. It
// trades strict freshness for cheap reads: entries are written after a
// vote commits and evicted only by the size cap, so a stale or missing
// entry is normal and callers fall through to the store.
//
// Quote deletion does not invalidate entries; a cached vote for a
// deleted quote is harmless because nothing renders the quote anymore.
type VoteCache struct {
	mu      sync.RWMutex
	entries map[string]int

	// maxEntries caps memory use. When the cap is hit the whole map is
	// dropped rather than tracking eviction order; the cache is
	// advisory, so losing it is fine.
	maxEntries int
}

const defaultMaxEntries = 100_000

// NewVoteCache creates a VoteCache. A maxEntries of zero or less uses
// the default cap.
func NewVoteCache(maxEntries int) *VoteCache {
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}

	return &VoteCache{
		entries:    make(map[string]int),
		maxEntries: maxEntries,
	}
}

func voteKey(quoteID int64, userID string) string {
	return "vote|" + userID + "|" + strconv.FormatInt(quoteID, 10)
}

// Get returns the cached vote value for (quoteID, userID).
func (c *VoteCache) Get(quoteID int64, userID string) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	value, ok := c.entries[voteKey(quoteID, userID)]

	return value, ok
}

// Set records a vote value for (quoteID, userID).
func (c *VoteCache) Set(quoteID int64, userID string, value int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxEntries {
		c.entries = make(map[string]int)
	}

	c.entries[voteKey(quoteID, userID)] = value
}

var _ ports.VoteCache = (*VoteCache)(nil)
