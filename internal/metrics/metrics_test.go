package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pcrgen/core/anneal"
	"pcrgen/core/cost"
)

func result(status anneal.Status, total float64, failing ...string) anneal.Result {
	rep := cost.Report{Total: total}
	for _, name := range failing {
		rep.Entries = append(rep.Entries, cost.Entry{Name: name, Weight: 1, Penalty: 1, Cost: 1})
	}
	rep.Entries = append(rep.Entries, cost.Entry{Name: "run_length", Weight: 1})
	return anneal.Result{Status: status, Report: rep, Iterations: 500}
}

func TestObserveRun(t *testing.T) {
	m := New()
	m.ObserveRun(result(anneal.Converged, 0))
	m.ObserveRun(result(anneal.Exhausted, 2, "gc_overall", "hairpin"))
	m.ObserveRun(result(anneal.Exhausted, 1, "gc_overall"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues("converged")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Runs.WithLabelValues("exhausted")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.RuleFailures.WithLabelValues("gc_overall")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RuleFailures.WithLabelValues("hairpin")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.RuleFailures.WithLabelValues("run_length")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.Runs))
}

func TestInstancesAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.AddSamples(10)
	assert.Equal(t, 10.0, testutil.ToFloat64(a.Samples))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Samples))
}

func TestNilSafe(t *testing.T) {
	var m *Metrics
	m.ObserveRun(result(anneal.Converged, 0))
	m.ObserveBatch(time.Second)
	m.AddSamples(3)
	assert.NoError(t, m.WriteFile("ignored"))
}

func TestWriteFile(t *testing.T) {
	m := New()
	m.ObserveRun(result(anneal.Cancelled, 4))
	m.ObserveBatch(1500 * time.Millisecond)
	path := filepath.Join(t.TempDir(), "pcrgen.prom")
	require.NoError(t, m.WriteFile(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(b), `pcrgen_runs_total{status="cancelled"} 1`))
	assert.True(t, strings.Contains(string(b), "pcrgen_batch_duration_seconds 1.5"))
}
