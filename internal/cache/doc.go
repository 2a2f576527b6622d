// Package cache implements a generic, capacity-bounded, in-process LRU cache.
//
// Goals for this package:
//   - Make the core data structures explicit (map + doubly-linked recency list)
//   - Provide O(1) Get/Set via map index + LRU pointers
//   - Keep recency bookkeeping explicit: every entry carries a logical age,
//     and the recency list read LRU-to-MRU is ascending age order
//   - Track cumulative hit/miss statistics across the cache's lifetime
//
// The cache is not safe for concurrent use. Get mutates recency state and
// counters even though it is a read, so callers sharing one instance across
// goroutines must provide their own locking.
package cache
