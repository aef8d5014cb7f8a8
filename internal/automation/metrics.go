package automation

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds the Prometheus collectors of the orchestrator.
//
// Metrics:
//   - ripples_entries_total{event,outcome} - entry events by outcome (analysed, skipped, failed)
//   - ripples_candidates_extracted_total - candidates found before the sieve
//   - ripples_sieve_rejections_total{reason} - candidates rejected by the sieve
//   - ripples_created_total{type} - ripples stored
//   - ripples_direct_upserts_total{kind} - appointments and events created from explicit dates
type Metrics struct {
	EntriesTotal        *prometheus.CounterVec
	CandidatesExtracted prometheus.Counter
	SieveRejections     *prometheus.CounterVec
	RipplesCreated      *prometheus.CounterVec
	DirectUpserts       *prometheus.CounterVec
}

// NewMetrics registers the collectors once with the default registry.
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			EntriesTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "ripples_entries_total",
					Help: "Total number of entry events handled",
				},
				[]string{"event", "outcome"},
			),
			CandidatesExtracted: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "ripples_candidates_extracted_total",
					Help: "Total number of action candidates extracted",
				},
			),
			SieveRejections: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "ripples_sieve_rejections_total",
					Help: "Total number of candidates rejected by the sieve",
				},
				[]string{"reason"},
			),
			RipplesCreated: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "ripples_created_total",
					Help: "Total number of ripples stored",
				},
				[]string{"type"},
			),
			DirectUpserts: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "ripples_direct_upserts_total",
					Help: "Total number of appointments and events created from explicit dates",
				},
				[]string{"kind"},
			),
		}
	})
	return globalMetrics
}

func (m *Metrics) recordEntry(event, outcome string) {
	m.EntriesTotal.WithLabelValues(event, outcome).Inc()
}

func (m *Metrics) recordAnalysis(candidates int, rejected map[string]int) {
	m.CandidatesExtracted.Add(float64(candidates))
	for reason, n := range rejected {
		m.SieveRejections.WithLabelValues(reason).Add(float64(n))
	}
}
