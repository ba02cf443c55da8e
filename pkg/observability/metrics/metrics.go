// Package metrics implements the observability hooks with Prometheus
// collectors.
//
//	reg := prometheus.NewRegistry()
//	hooks := metrics.New(reg)
//	observability.SetCardHooks(hooks)
//	observability.SetServerHooks(hooks)
//	http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/matzehuels/cardgen/pkg/observability"
)

const namespace = "cardgen"

// Hooks records card and request events as Prometheus metrics.
type Hooks struct {
	cardsTotal      *prometheus.CounterVec
	shapesTotal     *prometheus.CounterVec
	cardDuration    *prometheus.HistogramVec
	bytesWritten    prometheus.Counter
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

var (
	_ observability.CardHooks   = (*Hooks)(nil)
	_ observability.ServerHooks = (*Hooks)(nil)
)

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Hooks {
	h := &Hooks{
		cardsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cards",
			Name:      "generated_total",
			Help:      "Number of generated cards by preset and result.",
		}, []string{"preset", "result"}),
		shapesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cards",
			Name:      "shapes_total",
			Help:      "Number of shapes drawn on successful cards.",
		}, []string{"preset"}),
		cardDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "cards",
			Name:      "duration_seconds",
			Help:      "Time to generate one card.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"preset"}),
		bytesWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cards",
			Name:      "written_bytes_total",
			Help:      "Bytes of HTML written to disk.",
		}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Number of preview server requests.",
		}, []string{"route", "method", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Preview server request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
	reg.MustRegister(
		h.cardsTotal,
		h.shapesTotal,
		h.cardDuration,
		h.bytesWritten,
		h.requestsTotal,
		h.requestDuration,
	)
	return h
}

// OnCardStart implements observability.CardHooks.
func (h *Hooks) OnCardStart(context.Context, string, int) {}

// OnCardComplete implements observability.CardHooks.
func (h *Hooks) OnCardComplete(_ context.Context, preset string, shapes int, d time.Duration, err error) {
	if err != nil {
		h.cardsTotal.WithLabelValues(preset, "error").Inc()
		return
	}
	h.cardsTotal.WithLabelValues(preset, "ok").Inc()
	h.shapesTotal.WithLabelValues(preset).Add(float64(shapes))
	h.cardDuration.WithLabelValues(preset).Observe(d.Seconds())
}

// OnCardWritten implements observability.CardHooks.
func (h *Hooks) OnCardWritten(_ context.Context, _ string, size int) {
	h.bytesWritten.Add(float64(size))
}

// OnRequest implements observability.ServerHooks. route should be a route
// pattern rather than a raw path to keep label cardinality bounded.
func (h *Hooks) OnRequest(_ context.Context, method, route string, status int, d time.Duration) {
	h.requestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	h.requestDuration.WithLabelValues(route).Observe(d.Seconds())
}
