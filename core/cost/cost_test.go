package cost

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pcrgen/core/layout"
	"pcrgen/core/oligo"
	"pcrgen/core/rules"
)

type fixed struct {
	name    string
	weight  float64
	penalty float64
}

func (f fixed) Name() string    { return f.name }
func (f fixed) Weight() float64 { return f.weight }
func (f fixed) Evaluate(layout.Template, rules.Config) rules.Outcome {
	return rules.Outcome{Penalty: f.penalty, Note: "fixed"}
}

func randomTemplate(rng *rand.Rand) layout.Template {
	r := layout.DefaultRegions()
	return layout.Template{Seq: oligo.Random(rng, r.SeqLength), Regions: r}
}

func TestEvaluate_SumMatchesTotal(t *testing.T) {
	ev, err := NewEvaluator(rules.DefaultConfig(), rules.Default(nil))
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		rep := ev.Evaluate(randomTemplate(rng))
		sum := 0.0
		for _, e := range rep.Entries {
			assert.GreaterOrEqual(t, e.Penalty, 0.0, e.Name)
			assert.InDelta(t, e.Weight*e.Penalty, e.Cost, 1e-12, e.Name)
			sum += e.Cost
		}
		assert.InDelta(t, rep.Total, sum, 1e-9)
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	ev, err := NewEvaluator(rules.DefaultConfig(), rules.Default(nil))
	require.NoError(t, err)
	tp := randomTemplate(rand.New(rand.NewSource(9)))
	assert.Equal(t, ev.Evaluate(tp), ev.Evaluate(tp))
}

func TestEvaluate_WeightsAndOrder(t *testing.T) {
	rs := []rules.Rule{
		fixed{"b", 2, 1.5},
		fixed{"a", 0.5, 4},
		fixed{"c", 1, 0},
	}
	ev, err := NewEvaluator(rules.DefaultConfig(), rs)
	require.NoError(t, err)

	rep := ev.Evaluate(randomTemplate(rand.New(rand.NewSource(1))))
	assert.InDelta(t, 5.0, rep.Total, 1e-12)
	require.Len(t, rep.Entries, 3)
	assert.Equal(t, []string{"b", "a", "c"}, []string{rep.Entries[0].Name, rep.Entries[1].Name, rep.Entries[2].Name})
	assert.False(t, rep.Compliant())
	assert.Len(t, rep.Failing(), 2)

	e, ok := rep.Lookup("a")
	require.True(t, ok)
	assert.InDelta(t, 2.0, e.Cost, 1e-12)
	_, ok = rep.Lookup("zzz")
	assert.False(t, ok)
}

func TestReport_Info(t *testing.T) {
	rep := Report{Total: 2.5, Entries: []Entry{
		{Name: "gc_overall", Cost: 2.5, Note: "template GC 41.3% outside [49.0,51.0]"},
		{Name: "run_length", Cost: 0, Note: "longest run 3"},
	}}
	assert.Equal(t, "2.5 gc_overall template GC 41.3% outside [49.0,51.0]\n", rep.Info(false))

	all := rep.Info(true)
	assert.Equal(t, 2, strings.Count(all, "\n"))
	assert.Contains(t, all, "0.0 run_length longest run 3")
}

func TestNewEvaluator_Errors(t *testing.T) {
	cfg := rules.DefaultConfig()
	cfg.OverallGC = rules.Band{Min: 60, Max: 40}
	_, err := NewEvaluator(cfg, nil)
	var ce *rules.ConfigError
	require.True(t, errors.As(err, &ce))

	_, err = NewEvaluator(rules.DefaultConfig(), []rules.Rule{fixed{"neg", -1, 1}})
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "weights.neg", ce.Field)
}
