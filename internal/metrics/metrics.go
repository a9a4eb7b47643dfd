package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ingestion counters, exposed on GET /metrics.
var (
	// IngestCycles counts completed ingestion cycles by outcome:
	// "ok", "unavailable" (provider down or empty body), "malformed"
	// (undecodable body).
	IngestCycles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "planit_ingest_cycles_total",
		Help: "Number of ingestion cycles by outcome.",
	}, []string{"outcome"})

	// EventsUpserted counts persisted events by action ("inserted" or
	// "updated").
	EventsUpserted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "planit_events_upserted_total",
		Help: "Number of events written to the store by action.",
	}, []string{"action"})

	// EventsSkipped counts provider elements dropped for lacking an
	// external id.
	EventsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "planit_events_skipped_total",
		Help: "Number of provider events skipped during normalization.",
	})
)
