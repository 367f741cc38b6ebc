package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/klogins-hash/collectiv-intelligence/internal/report"
)

const namespace = "alignment"

// Metrics holds the report gauges. Each instance owns its registry so tests
// and the server do not share global state.
type Metrics struct {
	Registry *prometheus.Registry

	entityScore      *prometheus.GaugeVec
	verdictEntities  *prometheus.GaugeVec
	reportsGenerated prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		entityScore: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "entity_score",
			Help:      "Alignment score of an entity in the latest report, -100 to 100.",
		}, []string{"entity", "verdict"}),
		verdictEntities: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "verdict_entities",
			Help:      "Number of entities per verdict band in the latest report.",
		}, []string{"verdict"}),
		reportsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_generated_total",
			Help:      "Reports built by this process.",
		}),
	}

	m.Registry.MustRegister(
		m.entityScore,
		m.verdictEntities,
		m.reportsGenerated,
	)
	return m
}

// Observe replaces the gauges with the contents of r.
func (m *Metrics) Observe(r *report.Report) {
	m.entityScore.Reset()
	for _, row := range r.Rows {
		m.entityScore.WithLabelValues(row.Name, string(row.Verdict)).Set(row.Score)
	}
	for _, vc := range r.VerdictCounts() {
		m.verdictEntities.WithLabelValues(string(vc.Verdict)).Set(float64(vc.Count))
	}
	m.reportsGenerated.Inc()
}
