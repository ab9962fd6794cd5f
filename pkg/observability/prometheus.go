package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusHooks records pipeline, pass and cache events as Prometheus
// metrics. It implements [PipelineHooks], [PassHooks] and [CacheHooks].
type PrometheusHooks struct {
	parseTotal    *prometheus.CounterVec
	gatesRemoved  prometheus.Counter
	stageDuration *prometheus.HistogramVec
	passRuns      *prometheus.CounterVec
	passDuration  *prometheus.HistogramVec
	cacheOps      *prometheus.CounterVec
	cacheBytes    prometheus.Counter
}

// NewPrometheusHooks creates the collectors and registers them with reg.
func NewPrometheusHooks(reg prometheus.Registerer) *PrometheusHooks {
	f := promauto.With(reg)
	return &PrometheusHooks{
		// Labels: result (success, error)
		parseTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "paulitower",
				Subsystem: "pipeline",
				Name:      "parses_total",
				Help:      "Total number of circuit parses",
			},
			[]string{"result"},
		),
		gatesRemoved: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: "paulitower",
				Subsystem: "pipeline",
				Name:      "gates_removed_total",
				Help:      "Total number of gates removed by optimisation",
			},
		),
		// Labels: stage (parse, optimise, emit)
		stageDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "paulitower",
				Subsystem: "pipeline",
				Name:      "stage_duration_seconds",
				Help:      "Duration of pipeline stages in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"stage"},
		),
		// Labels: pass, changed (true, false)
		passRuns: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "paulitower",
				Subsystem: "pass",
				Name:      "runs_total",
				Help:      "Total number of pass applications",
			},
			[]string{"pass", "changed"},
		),
		// Labels: pass
		passDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "paulitower",
				Subsystem: "pass",
				Name:      "duration_seconds",
				Help:      "Duration of a single pass application in seconds",
				Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
			},
			[]string{"pass"},
		),
		// Labels: type, op (hit, miss, set)
		cacheOps: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "paulitower",
				Subsystem: "cache",
				Name:      "operations_total",
				Help:      "Total number of cache operations",
			},
			[]string{"type", "op"},
		),
		cacheBytes: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: "paulitower",
				Subsystem: "cache",
				Name:      "written_bytes_total",
				Help:      "Total number of bytes written to the cache",
			},
		),
	}
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func (h *PrometheusHooks) OnParseStart(context.Context, string) {}

func (h *PrometheusHooks) OnParseComplete(_ context.Context, _ string, _ int, d time.Duration, err error) {
	h.parseTotal.WithLabelValues(result(err)).Inc()
	h.stageDuration.WithLabelValues("parse").Observe(d.Seconds())
}

func (h *PrometheusHooks) OnOptimiseStart(context.Context, string, int) {}

func (h *PrometheusHooks) OnOptimiseComplete(_ context.Context, _ string, before, after int, d time.Duration) {
	if before > after {
		h.gatesRemoved.Add(float64(before - after))
	}
	h.stageDuration.WithLabelValues("optimise").Observe(d.Seconds())
}

func (h *PrometheusHooks) OnEmitComplete(_ context.Context, _ string, _ int, d time.Duration, _ error) {
	h.stageDuration.WithLabelValues("emit").Observe(d.Seconds())
}

func (h *PrometheusHooks) OnPassComplete(_ context.Context, pass string, changed bool, d time.Duration) {
	c := "false"
	if changed {
		c = "true"
	}
	h.passRuns.WithLabelValues(pass, c).Inc()
	h.passDuration.WithLabelValues(pass).Observe(d.Seconds())
}

func (h *PrometheusHooks) OnCacheHit(_ context.Context, keyType string) {
	h.cacheOps.WithLabelValues(keyType, "hit").Inc()
}

func (h *PrometheusHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.cacheOps.WithLabelValues(keyType, "miss").Inc()
}

func (h *PrometheusHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.cacheOps.WithLabelValues(keyType, "set").Inc()
	h.cacheBytes.Add(float64(size))
}

var (
	_ PipelineHooks = (*PrometheusHooks)(nil)
	_ PassHooks     = (*PrometheusHooks)(nil)
	_ CacheHooks    = (*PrometheusHooks)(nil)
)
