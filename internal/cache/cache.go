package cache

import (
	"cmp"
	"container/list"
)

// DefaultCapacity is a reasonable capacity for callers that don't care.
const DefaultCapacity = 3

// Stats holds cumulative lookup counters.
//
// Only Get moves these: a found key counts as a hit, an absent key as a
// miss. Set and Clear never touch them; in particular the counters survive
// Clear and keep accumulating over the cache's whole lifetime.
type Stats struct {
	Hits   uint64
	Misses uint64
}

// Cache is a capacity-bounded key–value cache with LRU eviction.
//
// The core design is intentionally explicit and "mechanical":
// a map gives O(1) key lookup, and a doubly-linked list maintains recency
// ordering. Each entry additionally records the logical age at which it was
// last touched; because ages only ever grow, list order and age order are
// the same thing, and the list traversed Back-to-Front is the age index in
// ascending order.
//
// K requires a total order, not just equality; the key contract permits an
// ordered-index representation even though this one only uses equality.
//
// Not safe for concurrent use; see the package documentation.
type Cache[K cmp.Ordered, V any] struct {
	capacity int
	items    map[K]*list.Element
	recency  *list.List // Front = most recently used (MRU), Back = least recently used (LRU)

	// lastAge is the logical clock, bumped on every Set and every Get hit.
	lastAge uint64

	stats Stats
}

// entry is the value stored in the recency list elements.
// We keep the key here because eviction starts from list nodes.
type entry[K cmp.Ordered, V any] struct {
	key   K
	value V
	age   uint64
}

// New constructs a cache holding at most capacity entries.
//
// Capacity 0 is legal and makes the cache a degenerate no-op store: every
// Set is immediately evicted and every Get misses. Negative capacities are
// clamped to 0. New never returns a nil Cache.
func New[K cmp.Ordered, V any](capacity int) *Cache[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return &Cache[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element),
		recency:  list.New(),
	}
}

// Get reads a key, reporting whether it was present.
//
// A hit refreshes the entry: it takes a fresh age and becomes the most
// recently used, and the hit counter increments. A miss increments only
// the miss counter. Get never changes the number of live entries.
//
// Values are returned by copy, never as aliases into cache storage.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	el, ok := c.items[key]
	if !ok {
		c.stats.Misses++
		var zero V
		return zero, false
	}

	e := el.Value.(*entry[K, V])
	value := e.value

	// nextAge purges the whole cache on counter wrap. The entry is gone in
	// that case and there is nothing left to refresh, but the value was
	// captured above and the lookup still counts as a hit.
	age, purged := c.nextAge()
	if !purged {
		e.age = age
		c.recency.MoveToFront(el)
	}

	c.stats.Hits++
	return value, true
}

// Set writes/overwrites a key, then evicts down to capacity if needed.
//
// The age counter advances first, whether the key is new or already
// present; an existing entry gets the fresh age, the new value, and moves
// to the MRU position. Set never changes the hit/miss counters.
//
// Complexity:
//   - O(1) to locate/insert
//   - O(1) eviction per removed entry
func (c *Cache[K, V]) Set(key K, value V) {
	// A wrap inside nextAge empties the map, so the membership check must
	// come after it.
	age, _ := c.nextAge()

	if el, ok := c.items[key]; ok {
		e := el.Value.(*entry[K, V])
		e.value = value
		e.age = age
		c.recency.MoveToFront(el)
	} else {
		c.items[key] = c.recency.PushFront(&entry[K, V]{key: key, value: value, age: age})
	}

	c.trimToCapacity()
}

// Clear removes every entry and resets the age counter to zero.
//
// Statistics are deliberately kept: Stats keeps reporting hits and misses
// accumulated before the Clear. Capacity is unchanged.
func (c *Cache[K, V]) Clear() {
	c.purge()
	c.lastAge = 0
}

// SetCapacity changes the capacity and immediately trims to it.
//
// Lowering below the current entry count evicts the oldest entries down to
// the new bound; raising never evicts. Negative values clamp to 0.
func (c *Cache[K, V]) SetCapacity(capacity int) {
	if capacity < 0 {
		capacity = 0
	}
	c.capacity = capacity
	c.trimToCapacity()
}

// Capacity returns the current capacity.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// Stats returns a snapshot of the cumulative hit/miss counters.
func (c *Cache[K, V]) Stats() Stats {
	return c.stats
}

// Len returns the number of currently stored entries.
func (c *Cache[K, V]) Len() int {
	return len(c.items)
}

// Keys returns keys in MRU -> LRU order.
//
// This is a debug/teaching helper; it is not part of the cache contract.
func (c *Cache[K, V]) Keys() []K {
	out := make([]K, 0, c.recency.Len())
	for el := c.recency.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(*entry[K, V]).key)
	}
	return out
}
