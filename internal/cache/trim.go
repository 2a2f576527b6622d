package cache

// trimToCapacity evicts least-recently-used entries until the live count is
// within capacity. The LRU entry is always the recency list's back node,
// which is also the minimum-age entry.
//
// Runs after every Set and SetCapacity; Get never changes the count, so it
// never trims.
func (c *Cache[K, V]) trimToCapacity() {
	for len(c.items) > c.capacity {
		el := c.recency.Back()
		if el == nil {
			return
		}
		delete(c.items, el.Value.(*entry[K, V]).key)
		c.recency.Remove(el)
	}
}

// nextAge advances the logical clock and returns the new age.
//
// If the increment wraps (detected by the new value comparing
// below the old one), recency ordering can no longer be trusted and the
// entire cache is purged before the triggering operation proceeds. The
// clock then continues from the wrapped value. The second return reports
// whether that purge happened.
func (c *Cache[K, V]) nextAge() (uint64, bool) {
	next := c.lastAge + 1
	wrapped := next < c.lastAge
	if wrapped {
		c.purge()
	}
	c.lastAge = next
	return next, wrapped
}

// purge drops every live entry. The age counter and statistics are left
// alone; Clear is the one that resets the counter.
func (c *Cache[K, V]) purge() {
	clear(c.items)
	c.recency.Init()
}
