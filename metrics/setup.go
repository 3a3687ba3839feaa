package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a Prometheus registry and, optionally, the HTTP server that
// exposes it.
type Metrics struct {
	// Server serves the registry on /metrics. It is nil when the address
	// was explicitly disabled.
	Server *http.Server

	// Registry holds every metric created via CreateCounter, CreateGauge
	// and CreateHistogram.
	Registry *prometheus.Registry

	namespace  string
	registerer prometheus.Registerer
}

// NewMetrics initializes a registry wrapped with a constant `service` label
// and prepares the HTTP server for it.
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "scopetrace-demo"})
//	go m.Server.ListenAndServe()
//
// Metrics are then available at http://localhost:9091/metrics.
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()
	registerer := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	if cfg.RuntimeMetrics {
		registerer.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m := &Metrics{
		Registry:   registry,
		namespace:  cfg.Namespace,
		registerer: registerer,
	}

	addr := DefaultAddress
	if cfg.Address != nil {
		addr = *cfg.Address
	}
	if addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		m.Server = &http.Server{Addr: addr, Handler: mux}
	}

	return m
}
