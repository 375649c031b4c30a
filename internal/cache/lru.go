// Package cache provides a small thread-safe LRU used to keep hot,
// decoded objects in memory between lookups.
package cache

import (
	"sync"

	lru "github.com/golang/groupcache/lru"
	"golang.org/x/xerrors"
)

// ErrInvalidSize is returned when NewLRU is given a non-positive size.
var ErrInvalidSize = xerrors.New("cache size must be greater than zero")

// Key may be any comparable value.
type Key = lru.Key

// LRU is a thread-safe, fixed-size least-recently-used cache.
type LRU struct {
	cache *lru.Cache
	mu    sync.Mutex
}

// NewLRU creates a new LRU cache that holds at most maxEntries items.
func NewLRU(maxEntries int) (*LRU, error) {
	if maxEntries <= 0 {
		return nil, ErrInvalidSize
	}
	return &LRU{cache: lru.New(maxEntries)}, nil
}

// Get looks up a key's value from the cache.
func (c *LRU) Get(key Key) (value interface{}, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cache.Get(key)
}

// Add adds a value to the cache, evicting the least recently used entry
// if the cache is full.
func (c *LRU) Add(key Key, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Add(key, value)
}

// Clear purges all stored items from the cache.
func (c *LRU) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Clear()
}

// Len returns the number of items currently in the cache.
func (c *LRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cache.Len()
}
