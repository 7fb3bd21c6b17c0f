package compiler

import "github.com/prometheus/client_golang/prometheus"

// Metrics collectors a host service can register and scrape. The
// compiler updates them on every Compile call but never serves or
// scrapes them itself.
var (
	CompileTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rendergraph_compile_total",
		Help: "Number of Compile calls, partitioned by outcome.",
	}, []string{"outcome"})

	CompileDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "rendergraph_compile_duration_seconds",
		Help:    "Wall-clock duration of Compile calls.",
		Buckets: prometheus.DefBuckets,
	})

	ResourcePreCount = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "rendergraph_resource_pre_count",
		Help: "Logical resource count from the most recent optimizer run.",
	})

	ResourcePostCount = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "rendergraph_resource_post_count",
		Help: "Physical resource count from the most recent optimizer run.",
	})

	ResourceReduction = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "rendergraph_resource_reduction",
		Help: "pre_count - post_count from the most recent optimizer run.",
	})
)

func init() {
	prometheus.MustRegister(CompileTotal, CompileDurationSeconds, ResourcePreCount, ResourcePostCount, ResourceReduction)
}
