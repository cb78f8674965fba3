package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type PrometheusParams struct {
	Version        string
	StorageBackend string
	// e.g. the postgres pool collector
	Collectors []prometheus.Collector
}

// SetupPrometheus builds the registry served on /metrics: runtime and process collectors,
// a constant tracker_info series and the given collectors.
func SetupPrometheus(params PrometheusParams) *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()

	info := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "practice",
		Name:      "tracker_info",
		Help:      "Version and storage backend of the running tracker",
		ConstLabels: prometheus.Labels{
			"version": params.Version,
			"storage": params.StorageBackend,
		},
	})
	info.Set(1)

	promRegistry.MustRegister(
		info,
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promRegistry.MustRegister(params.Collectors...)

	return promRegistry
}
