// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cache

// DefaultCapacity is used when New is given a non-positive capacity.
const DefaultCapacity = 256

// Cache is a generic LRU cache holding at most Capacity entries. Entries
// leaving the cache, by eviction, Delete or Clear, are passed to the
// eviction callback so native resources can be freed.
type Cache[K comparable, V any] struct {
	entries  map[K]*entry[K, V]
	lru      lruList[K, V]
	capacity int
	onEvict  func(K, V)

	hits, misses, evictions uint64
}

type entry[K comparable, V any] struct {
	value V
	node  *lruNode[K, V]
}

// New creates a cache holding up to capacity entries.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache[K, V]{
		entries:  make(map[K]*entry[K, V]),
		capacity: capacity,
	}
}

// OnEvict sets the callback run for every entry that leaves the cache.
func (c *Cache[K, V]) OnEvict(fn func(K, V)) {
	c.onEvict = fn
}

// Get returns the value for key and marks it most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	e, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.lru.MoveToFront(e.node)
	return e.value, true
}

// Set stores value under key, replacing and evicting any previous value.
func (c *Cache[K, V]) Set(key K, value V) {
	if e, ok := c.entries[key]; ok {
		old := e.value
		e.value = value
		e.node.value = value
		c.lru.MoveToFront(e.node)
		c.evicted(key, old)
		return
	}
	c.insert(key, value)
}

// GetOrCreate returns the cached value for key or stores the result of
// create. A create error is returned as is and nothing is cached.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err := create()
	if err != nil {
		return v, err
	}
	c.insert(key, v)
	return v, nil
}

// Delete removes key, running the eviction callback. It reports whether
// key was present.
func (c *Cache[K, V]) Delete(key K) bool {
	e, ok := c.entries[key]
	if !ok {
		return false
	}
	c.lru.Remove(e.node)
	delete(c.entries, key)
	c.evicted(key, e.value)
	return true
}

// Clear evicts every entry, least recently used first.
func (c *Cache[K, V]) Clear() {
	for {
		k, v, ok := c.lru.RemoveOldest()
		if !ok {
			break
		}
		delete(c.entries, k)
		c.evicted(k, v)
	}
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int { return len(c.entries) }

// Capacity returns the maximum number of entries.
func (c *Cache[K, V]) Capacity() int { return c.capacity }

// Stats returns cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	var rate float64
	if total := c.hits + c.misses; total > 0 {
		rate = float64(c.hits) / float64(total)
	}
	return Stats{
		Len:       len(c.entries),
		Capacity:  c.capacity,
		Hits:      c.hits,
		Misses:    c.misses,
		HitRate:   rate,
		Evictions: c.evictions,
	}
}

func (c *Cache[K, V]) insert(key K, value V) {
	for c.lru.Len() >= c.capacity {
		k, v, ok := c.lru.RemoveOldest()
		if !ok {
			break
		}
		delete(c.entries, k)
		c.evictions++
		c.evicted(k, v)
	}
	c.entries[key] = &entry[K, V]{value: value, node: c.lru.PushFront(key, value)}
}

func (c *Cache[K, V]) evicted(k K, v V) {
	if c.onEvict != nil {
		c.onEvict(k, v)
	}
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the maximum number of entries.
	Capacity int
	// Hits and Misses count Get and GetOrCreate lookups.
	Hits, Misses uint64
	// HitRate is Hits / (Hits + Misses), 0 when nothing was looked up.
	HitRate float64
	// Evictions counts entries dropped to make room.
	Evictions uint64
}
