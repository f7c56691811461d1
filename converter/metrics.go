package converter

import "github.com/prometheus/client_golang/prometheus"

// Counters register on the default registry. The one-shot CLI does not
// expose them; long-running embedders serve them by mounting
// promhttp.Handler() on the process they already run.
var (
	eventsConverted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "geotrafic",
		Name:      "events_converted_total",
		Help:      "Total number of source events converted to Open511.",
	})
	eventsSkipped = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "geotrafic",
		Name:      "events_skipped_total",
		Help:      "Total number of source events dropped as unconvertible.",
	})
	conversionWarnings = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "geotrafic",
		Name:      "conversion_warnings_total",
		Help:      "Non-fatal conversion anomalies by kind.",
	}, []string{"kind"})
)

func init() {
	prometheus.MustRegister(eventsConverted, eventsSkipped, conversionWarnings)
}
