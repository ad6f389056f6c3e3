package metrics

import "github.com/prometheus/client_golang/prometheus"

// LeadMetrics exposes counters/histograms for lead capture and the AI advisor.
type LeadMetrics struct {
	submissionsTotal *prometheus.CounterVec
	advisorCalls     *prometheus.CounterVec
	advisorLatency   *prometheus.HistogramVec
}

func NewLeadMetrics(reg prometheus.Registerer) *LeadMetrics {
	m := &LeadMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "realty",
			Subsystem: "leads",
			Name:      "submissions_total",
			Help:      "Lead form submissions by outcome",
		}, []string{"outcome"}),
		advisorCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "realty",
			Subsystem: "advisor",
			Name:      "calls_total",
			Help:      "Generative AI calls by operation and whether fallback content was served",
		}, []string{"operation", "fallback"}),
		advisorLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "realty",
			Subsystem: "advisor",
			Name:      "call_latency_seconds",
			Help:      "Latency of generative AI calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.advisorCalls, m.advisorLatency)
	return m
}

// ObserveSubmission counts a submission; outcome is "accepted" or "rejected"
func (m *LeadMetrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(outcome).Inc()
}

func (m *LeadMetrics) ObserveAdvisorCall(operation string, fallback bool, seconds float64) {
	if m == nil {
		return
	}
	label := "false"
	if fallback {
		label = "true"
	}
	m.advisorCalls.WithLabelValues(operation, label).Inc()
	m.advisorLatency.WithLabelValues(operation).Observe(seconds)
}
