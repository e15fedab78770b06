package host

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the rendering host. One Metrics
// value is shared by all views registered against the same registry.
type Metrics struct {
	rendersTotal   prometheus.Counter
	renderErrors   prometheus.Counter
	effectErrors   prometheus.Counter
	renderDuration prometheus.Histogram
	activeViews    prometheus.Gauge
	framesSent     prometheus.Counter
	clicksTotal    prometheus.Counter
}

// NewMetrics creates host metrics registered with reg under the given
// namespace. An empty namespace defaults to "loom"; a nil registry uses the
// default registerer.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	if namespace == "" {
		namespace = "loom"
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		rendersTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "host",
			Name:      "renders_total",
			Help:      "Completed render passes.",
		}),
		renderErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "host",
			Name:      "render_errors_total",
			Help:      "Render passes that failed with a hook contract violation.",
		}),
		effectErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "host",
			Name:      "effect_errors_total",
			Help:      "Effect flushes halted by a panicking effect or cleanup.",
		}),
		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "host",
			Name:      "render_duration_seconds",
			Help:      "Duration of one render tick (render, commit, flush).",
			Buckets:   prometheus.DefBuckets,
		}),
		activeViews: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "host",
			Name:      "active_views",
			Help:      "Views with a running event loop.",
		}),
		framesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "host",
			Name:      "frames_committed_total",
			Help:      "HTML frames committed to subscribers.",
		}),
		clicksTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "host",
			Name:      "clicks_total",
			Help:      "Click events routed to component handlers.",
		}),
	}
}
