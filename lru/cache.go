// Package lru implements a fixed-capacity, in-memory key/value cache
// with least-recently-used eviction.
//
// The cache is two cooperating structures kept consistent on every
// operation: a map from key to entry (O(1) lookup) and an intrusive
// doubly-linked recency list (O(1) move-to-front and removal). It is
// not safe for concurrent use; callers needing concurrency must add
// external synchronization or partition keys across per-shard
// instances (see the shard package).
package lru

import (
	"github.com/satmihir/lrucache/internal/utils"
)

// ReleaseFunc is called exactly once for an entry at the moment it
// leaves the cache, whether by eviction, replacement, Remove or Purge.
type ReleaseFunc[K comparable, V any] func(key K, value V)

// Cache is a fixed-capacity LRU cache. The zero value is not usable;
// construct with New or NewWithRelease.
type Cache[K comparable, V any] struct {
	// capacity is the maximum number of entries. 0 means the cache
	// retains nothing: inserts are accepted and immediately evicted.
	capacity int
	// index maps each live key to its entry.
	index map[K]*entry[K, V]
	// order tracks recency, head = most recently used.
	order recencyList[K, V]
	// release, if set, observes every entry leaving the cache.
	release ReleaseFunc[K, V]
}

// New constructs an empty cache holding at most capacity entries.
// A negative capacity is treated as 0.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	return NewWithRelease[K, V](capacity, nil)
}

// NewWithRelease constructs a cache whose release hook is invoked
// exactly once per entry as it is removed from the cache.
func NewWithRelease[K comparable, V any](capacity int, release ReleaseFunc[K, V]) *Cache[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return &Cache[K, V]{
		capacity: capacity,
		index:    make(map[K]*entry[K, V], capacity),
		release:  release,
	}
}

// Len returns the number of entries currently stored.
func (c *Cache[K, V]) Len() int {
	return len(c.index)
}

// Cap returns the capacity the cache was constructed with.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// Get looks up a key. On a hit the entry becomes the most recently
// used. A miss changes nothing.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	if e, ok := c.index[key]; ok {
		c.order.moveToFront(e)
		return e.value, true
	}
	var zero V
	return zero, false
}

// Insert stores value under key. It never fails: capacity is enforced
// through eviction, not by rejecting the write.
//
// If key is already present its old entry is released and replaced,
// the count is unchanged, and recency resets to most recent. If key is
// new and the cache is over capacity, the least recently used entry is
// evicted; a single insert evicts at most one entry.
func (c *Cache[K, V]) Insert(key K, value V) {
	e := &entry[K, V]{key: key, value: value}
	c.order.pushFront(e)

	if old, ok := c.index[key]; ok {
		// Replacement never changes Len, so it can never push a
		// third key out.
		c.index[key] = e
		c.order.remove(old)
		c.releaseEntry(old)
		return
	}

	c.index[key] = e
	if len(c.index) > c.capacity {
		c.evictOldest()
	}
}

// Remove detaches and releases the entry for key. Absent keys are a
// no-op, not an error.
func (c *Cache[K, V]) Remove(key K) {
	e, ok := c.index[key]
	if !ok {
		return
	}
	delete(c.index, key)
	c.order.remove(e)
	c.releaseEntry(e)
}

// Purge releases every remaining entry exactly once and resets the
// cache to empty. The walk follows entry links directly rather than
// the index, so the two structures are torn down together. The cache
// remains usable afterwards.
func (c *Cache[K, V]) Purge() {
	for e := c.order.front(); e != nil; {
		next := e.next
		c.releaseEntry(e)
		e = next
	}
	c.order = recencyList[K, V]{}
	c.index = make(map[K]*entry[K, V], c.capacity)
}

// Keys returns the live keys in most- to least-recently-used order.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.index))
	for e := c.order.front(); e != nil; e = e.next {
		keys = append(keys, e.key)
	}
	return keys
}

// evictOldest removes and releases the least recently used entry.
func (c *Cache[K, V]) evictOldest() {
	victim := c.order.back()
	utils.MustBeTrue(victim != nil, "lru: eviction requested on an empty recency list")
	c.order.remove(victim)
	delete(c.index, victim.key)
	c.releaseEntry(victim)
}

// releaseEntry is the single release point reachable from every
// removal path: eviction, replacement, Remove and Purge.
func (c *Cache[K, V]) releaseEntry(e *entry[K, V]) {
	if c.release != nil {
		c.release(e.key, e.value)
	}
}
