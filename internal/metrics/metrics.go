package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder holds the lookup collectors once Init has run.
type Recorder struct {
	lookups      *prometheus.CounterVec
	fetchSeconds prometheus.Histogram
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the lookup collectors with reg.
// Must be called once at startup; later calls are no-ops.
func Init(reg prometheus.Registerer) {
	recorderOnce.Do(func() {
		r := &Recorder{
			lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "pokecard_lookups_total",
				Help: "Total lookups by outcome",
			}, []string{"outcome"}),
			fetchSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
				Name:    "pokecard_catalog_fetch_seconds",
				Help:    "Latency of catalog API requests",
				Buckets: prometheus.DefBuckets,
			}),
		}
		reg.MustRegister(r.lookups, r.fetchSeconds)
		recorder = r
	})
}

// RecordLookup counts one lookup outcome. It does nothing before Init.
func RecordLookup(outcome string) {
	if recorder == nil {
		return
	}
	recorder.lookups.WithLabelValues(outcome).Inc()
}

// ObserveCatalogFetch records the duration of one catalog request.
func ObserveCatalogFetch(d time.Duration) {
	if recorder == nil {
		return
	}
	recorder.fetchSeconds.Observe(d.Seconds())
}
