// Package shard partitions a string keyspace across a fixed set of
// independent LRU cache shards using deterministic xxh3 routing.
//
// The Map itself adds no locking: each shard remains a single-owner
// structure, and the Map only guarantees that a given key always lands
// on the same shard. Callers that want concurrent access synchronize
// per shard (Shard hands out the instance a key belongs to).
package shard

import (
	"github.com/zeebo/xxh3"

	"github.com/satmihir/lrucache/internal/constants"
	"github.com/satmihir/lrucache/lru"
)

// Options configures a Map.
type Options[V any] struct {
	// ShardCount is the number of shards to split the keyspace
	// across. Defaults to constants.DefaultShardCount when <= 0.
	ShardCount int
	// Salt perturbs the routing hash so two Maps built from the same
	// keys need not agree on placement. Empty means unsalted.
	Salt []byte
	// Release is passed through to every shard and observes each
	// entry leaving its shard.
	Release lru.ReleaseFunc[string, V]
}

// Map routes string keys to per-shard LRU caches.
type Map[V any] struct {
	seed   uint64
	shards []*lru.Cache[string, V]
}

// New constructs a Map whose total capacity is split evenly across its
// shards. A total capacity that is positive but smaller than the shard
// count still leaves each shard room for one entry; a capacity <= 0
// makes every shard an always-empty sink.
func New[V any](capacity int, opts ...Options[V]) *Map[V] {
	var o Options[V]
	if len(opts) > 0 {
		o = opts[0]
	}

	shardCount := o.ShardCount
	if shardCount <= 0 {
		shardCount = constants.DefaultShardCount
	}

	perShard := 0
	if capacity > 0 {
		perShard = capacity / shardCount
		if perShard == 0 {
			perShard = 1
		}
	}

	m := &Map[V]{
		shards: make([]*lru.Cache[string, V], shardCount),
	}
	if len(o.Salt) > 0 {
		// Hash the salt down to a 64-bit routing seed
		m.seed = xxh3.Hash(o.Salt)
	}
	for i := range m.shards {
		m.shards[i] = lru.NewWithRelease(perShard, o.Release)
	}
	return m
}

// Shard returns the cache instance the key routes to. Callers that
// own their synchronization operate on the returned shard directly.
func (m *Map[V]) Shard(key string) *lru.Cache[string, V] {
	return m.shards[xxh3.HashStringSeed(key, m.seed)%uint64(len(m.shards))]
}

// ShardCount returns the number of shards.
func (m *Map[V]) ShardCount() int {
	return len(m.shards)
}

// Get looks up key on its owning shard, refreshing its recency there.
func (m *Map[V]) Get(key string) (V, bool) {
	return m.Shard(key).Get(key)
}

// Insert stores value under key on its owning shard.
func (m *Map[V]) Insert(key string, value V) {
	m.Shard(key).Insert(key, value)
}

// Remove removes key from its owning shard if present.
func (m *Map[V]) Remove(key string) {
	m.Shard(key).Remove(key)
}

// GetBytes looks up a key given as a byte view. Routing hashes the
// bytes directly; only the shard-local index lookup converts.
func (m *Map[V]) GetBytes(key []byte) (V, bool) {
	return m.shardForBytes(key).Get(string(key))
}

// RemoveBytes removes a key given as a byte view.
func (m *Map[V]) RemoveBytes(key []byte) {
	m.shardForBytes(key).Remove(string(key))
}

// Len returns the total number of entries across all shards.
func (m *Map[V]) Len() int {
	n := 0
	for _, s := range m.shards {
		n += s.Len()
	}
	return n
}

// Cap returns the total capacity across all shards.
func (m *Map[V]) Cap() int {
	n := 0
	for _, s := range m.shards {
		n += s.Cap()
	}
	return n
}

// Purge releases every entry on every shard.
func (m *Map[V]) Purge() {
	for _, s := range m.shards {
		s.Purge()
	}
}

func (m *Map[V]) shardForBytes(key []byte) *lru.Cache[string, V] {
	return m.shards[xxh3.HashSeed(key, m.seed)%uint64(len(m.shards))]
}
