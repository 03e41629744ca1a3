package metrics

import (
	"net/http"

	"exchangerates-service/internal/application"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "exchangerates"

var _ application.RefreshObserver = (*Metrics)(nil)

type Metrics struct {
	reg *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	RefreshCyclesTotal prometheus.Counter
	RefreshCodesTotal  *prometheus.CounterVec
	RefreshDuration    prometheus.Histogram
	CachedCurrencies   prometheus.Gauge
}

// NewMetrics registers every collector on a private registry, plus Go and process collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)
	return &Metrics{
		reg: reg,
		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"route", "method", "status_code"},
		),
		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		RefreshCyclesTotal: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "refresh_cycles_total",
				Help:      "Completed refresh cycles",
			},
		),
		RefreshCodesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "refresh_codes_total",
				Help:      "Currencies processed by refresh cycles, by result",
			},
			[]string{"result"},
		),
		RefreshDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "refresh_duration_seconds",
				Help:      "Wall time of a refresh cycle",
				Buckets:   []float64{.1, .5, 1, 2.5, 5, 10, 30, 60, 120},
			},
		),
		CachedCurrencies: f.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "cached_currencies",
				Help:      "Number of currencies held in the rate cache",
			},
		),
	}
}

func (m *Metrics) RefreshCompleted(r application.RefreshReport) {
	m.RefreshCyclesTotal.Inc()
	m.RefreshCodesTotal.WithLabelValues("refreshed").Add(float64(r.Refreshed))
	m.RefreshCodesTotal.WithLabelValues("failed").Add(float64(r.Failed))
	m.RefreshDuration.Observe(r.Took.Seconds())
}

func (m *Metrics) CacheSize(n int) { m.CachedCurrencies.Set(float64(n)) }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}
