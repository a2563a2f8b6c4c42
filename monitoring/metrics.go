package monitoring

import (
	"context"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

var (
	recordWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "record_writes_total",
			Help: "Write attempts per collection and outcome",
		},
		[]string{"collection", "status"},
	)

	validationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "validation_failures_total",
			Help: "Field-level validation failures per collection",
		},
		[]string{"collection", "field"},
	)

	interceptDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "write_intercept_duration_seconds",
			Help:    "Duration of the validation/normalization pipeline",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
		},
		[]string{"collection"},
	)

	cacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "event_cache_lookups_total",
			Help: "Event cache lookups by result",
		},
		[]string{"result"},
	)

	cachedEvents = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "event_cache_entries_total",
			Help: "Current number of cached event documents",
		},
	)

	goroutineCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_goroutines_total",
			Help: "Current number of active goroutines",
		},
	)
)

// Write outcome labels.
const (
	WriteOK         = "ok"
	WriteInvalid    = "validation_error"
	WriteDuplicate  = "duplicate_slug"
	WriteRefMissing = "reference_error"
	WriteStoreError = "store_error"
)

func TrackWrite(collection, status string) {
	recordWrites.WithLabelValues(collection, status).Inc()
}

func TrackValidationFailure(collection, field string) {
	validationFailures.WithLabelValues(collection, field).Inc()
}

func TrackIntercept(collection string, duration time.Duration) {
	interceptDuration.WithLabelValues(collection).Observe(duration.Seconds())
}

func TrackCacheLookup(result string) {
	cacheLookups.WithLabelValues(result).Inc()
}

type Monitor struct {
	redis *redis.Client
	stop  chan struct{}
	once  sync.Once
}

func NewMonitor(redisClient *redis.Client) *Monitor {
	monitor := &Monitor{
		redis: redisClient,
		stop:  make(chan struct{}),
	}

	go monitor.collectMetrics()

	return monitor
}

// Stop terminates the background collector. Safe to call repeatedly.
func (m *Monitor) Stop() {
	m.once.Do(func() {
		close(m.stop)
	})
}

func (m *Monitor) collectMetrics() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.collectCacheMetrics(context.Background())
			goroutineCount.Set(float64(runtime.NumGoroutine()))
		}
	}
}

func (m *Monitor) collectCacheMetrics(ctx context.Context) {
	keys, err := m.redis.Keys(ctx, "event:slug:*").Result()
	if err != nil {
		return
	}
	cachedEvents.Set(float64(len(keys)))
}

// Serve exposes /metrics on its own port.
func Serve(port string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(":"+port, mux)
}
