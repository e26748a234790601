package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/MikeSquared-Agency/replymate/internal/analyzer"
)

func TestObserveAnalysis(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.ObserveAnalysis(analyzer.Result{
		Vibe:     analyzer.VibeConflict,
		RedFlags: []analyzer.RedFlag{analyzer.FlagConflict, analyzer.FlagFinancial},
	})
	m.ObserveAnalysis(analyzer.Result{Vibe: analyzer.VibeConflict})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.analysesTotal.WithLabelValues("anger/conflict")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.redFlagsTotal.WithLabelValues(string(analyzer.FlagFinancial))))
}

func TestObserveReplyAndGenerator(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.ObserveReply("local")
	m.ObserveGenerator("anthropic", "error", 0.2)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.repliesTotal.WithLabelValues("local")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.generatorCalls.WithLabelValues("anthropic", "error")))
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	m.ObserveAnalysis(analyzer.Result{})
	m.ObserveReply("local")
	m.ObserveGenerator("http", "ok", 0.1)
}
