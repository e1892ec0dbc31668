package metrics

import "github.com/prometheus/client_golang/prometheus"

// Submission outcomes recorded on lead_submissions_total.
const (
	OutcomeAccepted  = "accepted"
	OutcomeRejected  = "rejected"
	OutcomeDuplicate = "duplicate"
	OutcomeError     = "error"
)

// IntakeMetrics exposes counters/histograms for the lead intake flow.
type IntakeMetrics struct {
	submissionsTotal *prometheus.CounterVec
	fieldErrorsTotal *prometheus.CounterVec
	persistLatency   prometheus.Histogram
}

func NewIntakeMetrics(reg prometheus.Registerer) *IntakeMetrics {
	m := &IntakeMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "luvium",
			Subsystem: "intake",
			Name:      "lead_submissions_total",
			Help:      "Total lead submissions by outcome",
		}, []string{"outcome"}),
		fieldErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "luvium",
			Subsystem: "intake",
			Name:      "lead_field_errors_total",
			Help:      "Total per-field validation failures",
		}, []string{"field"}),
		persistLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "luvium",
			Subsystem: "intake",
			Name:      "lead_persist_seconds",
			Help:      "Latency of lead persistence",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.fieldErrorsTotal, m.persistLatency)
	return m
}

func (m *IntakeMetrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(outcome).Inc()
}

func (m *IntakeMetrics) ObserveFieldError(field string) {
	if m == nil {
		return
	}
	m.fieldErrorsTotal.WithLabelValues(field).Inc()
}

func (m *IntakeMetrics) ObservePersistLatency(seconds float64) {
	if m == nil {
		return
	}
	m.persistLatency.Observe(seconds)
}
