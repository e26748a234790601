package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MikeSquared-Agency/replymate/internal/analyzer"
)

// Metrics exposes counters/histograms for analysis and reply flows.
type Metrics struct {
	analysesTotal    *prometheus.CounterVec
	redFlagsTotal    *prometheus.CounterVec
	repliesTotal     *prometheus.CounterVec
	generatorCalls   *prometheus.CounterVec
	generatorLatency *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		analysesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "replymate",
			Subsystem: "analyzer",
			Name:      "analyses_total",
			Help:      "Transcripts analyzed, by vibe",
		}, []string{"vibe"}),
		redFlagsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "replymate",
			Subsystem: "analyzer",
			Name:      "red_flags_total",
			Help:      "Red flags raised, by flag",
		}, []string{"flag"}),
		repliesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "replymate",
			Subsystem: "reply",
			Name:      "replies_total",
			Help:      "Replies produced, by source",
		}, []string{"source"}),
		generatorCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "replymate",
			Subsystem: "generator",
			Name:      "calls_total",
			Help:      "External generator calls, by generator and outcome",
		}, []string{"generator", "outcome"}),
		generatorLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "replymate",
			Subsystem: "generator",
			Name:      "latency_seconds",
			Help:      "Latency of external generator calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"generator"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.analysesTotal, m.redFlagsTotal, m.repliesTotal, m.generatorCalls, m.generatorLatency)
	return m
}

func (m *Metrics) ObserveAnalysis(r analyzer.Result) {
	if m == nil {
		return
	}
	m.analysesTotal.WithLabelValues(string(r.Vibe)).Inc()
	for _, f := range r.RedFlags {
		m.redFlagsTotal.WithLabelValues(string(f)).Inc()
	}
}

func (m *Metrics) ObserveReply(source string) {
	if m == nil {
		return
	}
	m.repliesTotal.WithLabelValues(source).Inc()
}

// ObserveGenerator records one external call; outcome is "ok", "empty" or "error".
func (m *Metrics) ObserveGenerator(name, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.generatorCalls.WithLabelValues(name, outcome).Inc()
	m.generatorLatency.WithLabelValues(name).Observe(seconds)
}
