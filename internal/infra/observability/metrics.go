package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Metrics holds all Prometheus metrics for the bridge.
type Metrics struct {
	// Registry is the Prometheus registry that owns these metrics.
	// Exposed so the /metrics endpoint can use it.
	Registry *prometheus.Registry

	toolDuration   *prometheus.HistogramVec
	toolsTotal     *prometheus.CounterVec
	upstreamErrors *prometheus.CounterVec
	spillFiles     *prometheus.CounterVec
	spillBytes     prometheus.Counter
	cacheHits      *prometheus.CounterVec
	cacheMisses    *prometheus.CounterVec
}

// ToolSnapshot is a JSON summary of tool activity for the
// GET /v1/metrics/tools endpoint.
type ToolSnapshot struct {
	TotalInvocations int64   `json:"total_invocations"`
	ErrorCount       int64   `json:"error_count"`
	ErrorRate        float64 `json:"error_rate"`
	SpillFiles       int64   `json:"spill_files"`
	SpillBytes       int64   `json:"spill_bytes"`
	CacheHitRate     float64 `json:"cache_hit_rate"`
	Period           string  `json:"period"`
}

// NewMetrics creates a dedicated Prometheus registry and registers all
// application metrics in it. Using a private registry avoids "duplicate
// collector" panics when NewMetrics is called more than once (e.g. in tests).
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		toolDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bridge_tool_duration_seconds",
				Help:    "Duration of tool invocations by tool name.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"tool"},
		),
		toolsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bridge_tool_invocations_total",
				Help: "Total tool invocations by outcome.",
			},
			[]string{"status"},
		),
		upstreamErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bridge_upstream_errors_total",
				Help: "Total classified failures from the budgeting API.",
			},
			[]string{"category"},
		),
		spillFiles: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bridge_spill_files_total",
				Help: "Total results persisted to spill files.",
			},
			[]string{"reason"},
		),
		spillBytes: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "bridge_spill_bytes_total",
				Help: "Total bytes written to spill files.",
			},
		),
		cacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bridge_cache_hits_total",
				Help: "Total cache hits.",
			},
			[]string{"cache"},
		),
		cacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bridge_cache_misses_total",
				Help: "Total cache misses.",
			},
			[]string{"cache"},
		),
	}
}

// RecordToolDuration records the duration of one tool invocation.
func (m *Metrics) RecordToolDuration(tool string, d time.Duration) {
	m.toolDuration.WithLabelValues(tool).Observe(d.Seconds())
}

// IncrTool increments the invocation counter with a status label
// ("success" or "error").
func (m *Metrics) IncrTool(status string) {
	m.toolsTotal.WithLabelValues(status).Inc()
}

// IncrUpstreamError counts a classified upstream failure category.
func (m *Metrics) IncrUpstreamError(category string) {
	m.upstreamErrors.WithLabelValues(category).Inc()
}

// RecordSpill counts one persisted spill file and its size.
// Reason is "explicit" or "oversize".
func (m *Metrics) RecordSpill(reason string, bytes int) {
	m.spillFiles.WithLabelValues(reason).Inc()
	m.spillBytes.Add(float64(bytes))
}

// IncrCacheHit increments the cache hit counter.
func (m *Metrics) IncrCacheHit(cache string) {
	m.cacheHits.WithLabelValues(cache).Inc()
}

// IncrCacheMiss increments the cache miss counter.
func (m *Metrics) IncrCacheMiss(cache string) {
	m.cacheMisses.WithLabelValues(cache).Inc()
}

// GetToolSnapshot reads the counters back into a JSON-friendly summary.
func (m *Metrics) GetToolSnapshot() *ToolSnapshot {
	success := getCounterValue(m.toolsTotal, "success")
	errCount := getCounterValue(m.toolsTotal, "error")
	total := success + errCount

	spills := getCounterValue(m.spillFiles, "explicit") + getCounterValue(m.spillFiles, "oversize")
	bytes := readCounter(m.spillBytes)

	hits := getCounterValue(m.cacheHits, "budgets") + getCounterValue(m.cacheHits, "payees")
	misses := getCounterValue(m.cacheMisses, "budgets") + getCounterValue(m.cacheMisses, "payees")

	errorRate := float64(0)
	if total > 0 {
		errorRate = errCount / total
	}
	cacheHitRate := float64(0)
	if hits+misses > 0 {
		cacheHitRate = hits / (hits + misses)
	}

	return &ToolSnapshot{
		TotalInvocations: int64(total),
		ErrorCount:       int64(errCount),
		ErrorRate:        errorRate,
		SpillFiles:       int64(spills),
		SpillBytes:       int64(bytes),
		CacheHitRate:     cacheHitRate,
		Period:           "all_time",
	}
}

// getCounterValue extracts the current float64 value from a CounterVec for a given label.
func getCounterValue(cv *prometheus.CounterVec, label string) float64 {
	counter := cv.WithLabelValues(label)
	m := &dto.Metric{}
	if err := counter.(prometheus.Metric).Write(m); err != nil {
		return 0
	}
	if m.Counter != nil && m.Counter.Value != nil {
		return *m.Counter.Value
	}
	return 0
}

func readCounter(c prometheus.Counter) float64 {
	m := &dto.Metric{}
	if err := c.Write(m); err != nil {
		return 0
	}
	if m.Counter != nil && m.Counter.Value != nil {
		return *m.Counter.Value
	}
	return 0
}
