package bench

import (
	"fmt"
	"time"
)

// Options configure one exerciser run.
//
// The defaults reproduce the classic workload: fill a 10k-entry cache from
// a 1M key space, then look up 100x capacity random keys so the run sees a
// realistic mix of hits and misses.
type Options struct {
	Capacity     int
	Keyspace     int
	LookupFactor int
	Seed         int64

	// MetricsAddr, when set, switches the run into a loop that keeps
	// issuing lookup bursts and exposes Prometheus metrics on this address
	// until interrupted.
	MetricsAddr string
}

func newDefaultOptions() *Options {
	return &Options{
		Capacity:     10000,
		Keyspace:     1000000,
		LookupFactor: 100,
	}
}

// Prepare validates the options and fills the seed if the caller left it
// unset.
func (o *Options) Prepare() error {
	if o.Capacity < 0 {
		return fmt.Errorf("capacity must be >= 0, got %d", o.Capacity)
	}
	if o.Keyspace <= 0 {
		return fmt.Errorf("keyspace must be > 0, got %d", o.Keyspace)
	}
	if o.LookupFactor <= 0 {
		return fmt.Errorf("lookup factor must be > 0, got %d", o.LookupFactor)
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	return nil
}
