// README: Prometheus registry for request and prediction metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	AnalyzeRequests prometheus.Counter
	AnalyzeRejected prometheus.Counter
	AnalyzeErrors   prometheus.Counter
	AnalyzeLatency  prometheus.Histogram
	QuantileModels  prometheus.Gauge
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	requests := prometheus.NewCounter(prometheus.CounterOpts{Name: "pulse_analyze_requests_total"})
	rejected := prometheus.NewCounter(prometheus.CounterOpts{Name: "pulse_analyze_rejected_total"})
	errors := prometheus.NewCounter(prometheus.CounterOpts{Name: "pulse_analyze_errors_total"})
	latency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "pulse_analyze_latency_seconds",
		Buckets: prometheus.DefBuckets,
	})
	quantileModels := prometheus.NewGauge(prometheus.GaugeOpts{Name: "pulse_quantile_models_loaded"})

	r.MustRegister(requests, rejected, errors, latency, quantileModels)
	return &Registry{
		reg:             r,
		AnalyzeRequests: requests,
		AnalyzeRejected: rejected,
		AnalyzeErrors:   errors,
		AnalyzeLatency:  latency,
		QuantileModels:  quantileModels,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
