package bench

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lrucache/internal/cache"
)

// Metrics holds the Prometheus metrics published while looping.
type Metrics struct {
	// Lookup metrics
	HitsTotal     prometheus.Counter
	MissesTotal   prometheus.Counter
	BurstsTotal   prometheus.Counter
	BurstDuration prometheus.Histogram

	// Cache state metrics
	Entries  prometheus.Gauge
	Capacity prometheus.Gauge
}

// NewMetrics creates a Metrics instance with the given namespace.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		HitsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hits_total",
			Help:      "Total number of cache lookup hits",
		}),
		MissesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "misses_total",
			Help:      "Total number of cache lookup misses",
		}),
		BurstsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bursts_total",
			Help:      "Total number of lookup bursts completed",
		}),
		BurstDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "burst_duration_seconds",
			Help:      "Lookup burst duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}),
		Entries: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "entries",
			Help:      "Current number of live cache entries",
		}),
		Capacity: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "capacity",
			Help:      "Current cache capacity",
		}),
	}
}

// RecordBurst records one completed lookup burst. The cache's counters are
// cumulative, so the published counters advance by the delta against the
// previous snapshot.
func (m *Metrics) RecordBurst(st, prev cache.Stats, duration time.Duration) {
	m.HitsTotal.Add(float64(st.Hits - prev.Hits))
	m.MissesTotal.Add(float64(st.Misses - prev.Misses))
	m.BurstsTotal.Inc()
	m.BurstDuration.Observe(duration.Seconds())
}

// UpdateCacheSize updates the cache state gauges.
func (m *Metrics) UpdateCacheSize(entries, capacity int) {
	m.Entries.Set(float64(entries))
	m.Capacity.Set(float64(capacity))
}

// MetricsServer runs an HTTP server exposing a /metrics endpoint.
type MetricsServer struct {
	server *http.Server
}

// NewMetricsServer creates a metrics server on the given address.
func NewMetricsServer(addr string) *MetricsServer {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return &MetricsServer{
		server: &http.Server{
			Addr:    addr,
			Handler: mux,
		},
	}
}

// StartAsync starts the metrics server in a goroutine.
func (s *MetricsServer) StartAsync() {
	go func() {
		_ = s.server.ListenAndServe()
	}()
}

// Stop stops the metrics server.
func (s *MetricsServer) Stop() error {
	return s.server.Close()
}
