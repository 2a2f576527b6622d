// Package bench implements the lrubench exerciser: it fills a cache with
// random entries, drives random lookup bursts over a wider key space, and
// reports the resulting hit/miss statistics, either once to stdout or
// continuously as Prometheus metrics.
package bench

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"lrucache/internal/cache"
)

// Run executes the exerciser workload: a burst of random inserts up to
// capacity, followed by lookups over the wider key space. In the default
// one-shot mode it prints the last value seen and the cumulative hit/miss
// statistics to out. With Options.MetricsAddr set it loops, publishing
// Prometheus metrics, until ctx is canceled.
func Run(ctx context.Context, out io.Writer, opts *Options) error {
	rng := rand.New(rand.NewSource(opts.Seed))
	c := cache.New[int, int](opts.Capacity)

	for i := 0; i < c.Capacity(); i++ {
		c.Set(rng.Intn(opts.Keyspace), rng.Intn(opts.Keyspace))
	}

	if opts.MetricsAddr == "" {
		last := lookupBurst(c, rng, opts)
		st := c.Stats()
		fmt.Fprintf(out, "last value: %d\n", last)
		fmt.Fprintf(out, "hits: %d / misses: %d\n", st.Hits, st.Misses)
		return nil
	}

	return runLoop(ctx, out, c, rng, opts)
}

// lookupBurst issues capacity*LookupFactor random lookups and returns the
// value of the last hit (zero if every lookup missed).
func lookupBurst(c *cache.Cache[int, int], rng *rand.Rand, opts *Options) int {
	var last int
	for i := 0; i < opts.Capacity*opts.LookupFactor; i++ {
		if v, ok := c.Get(rng.Intn(opts.Keyspace)); ok {
			last = v
		}
	}
	return last
}

// runLoop re-issues lookup bursts and publishes metrics after each one.
// The final statistics line is still printed on shutdown so looping runs
// end the same way one-shot runs do.
func runLoop(ctx context.Context, out io.Writer, c *cache.Cache[int, int], rng *rand.Rand, opts *Options) error {
	m := NewMetrics("lrubench")
	srv := NewMetricsServer(opts.MetricsAddr)
	srv.StartAsync()
	defer func() {
		if err := srv.Stop(); err != nil {
			log.Printf("metrics server stop: %v", err)
		}
	}()

	log.Printf("serving metrics on http://%s/metrics", opts.MetricsAddr)

	var prev cache.Stats
	for {
		start := time.Now()
		lookupBurst(c, rng, opts)
		st := c.Stats()
		m.RecordBurst(st, prev, time.Since(start))
		m.UpdateCacheSize(c.Len(), c.Capacity())
		prev = st

		select {
		case <-ctx.Done():
			fmt.Fprintf(out, "hits: %d / misses: %d\n", st.Hits, st.Misses)
			return nil
		default:
		}
	}
}
