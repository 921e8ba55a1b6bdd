package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"pcrgen/core/anneal"
	"pcrgen/core/cost"
	"pcrgen/core/layout"
	"pcrgen/core/oligo"
	"pcrgen/core/rules"
	"pcrgen/pkg/api"
)

func sampleResult(t *testing.T) anneal.Result {
	t.Helper()
	r := layout.DefaultRegions()
	tpl, err := layout.New(oligo.MustParse(strings.Repeat("ACGTTGCAAG", 8)[:75]), r)
	require.NoError(t, err)
	ev, err := cost.NewEvaluator(rules.DefaultConfig(), rules.Default(nil))
	require.NoError(t, err)
	return anneal.Result{
		Template:   tpl,
		Report:     ev.Evaluate(tpl),
		Status:     anneal.Exhausted,
		Iterations: 10,
		Seed:       5,
	}
}

func TestToAPITemplate(t *testing.T) {
	res := sampleResult(t)
	v := ToAPITemplate(2, res, nil)

	assert.Equal(t, 2, v.Run)
	assert.Equal(t, "exhausted", v.Status)
	assert.False(t, v.Converged)
	assert.Equal(t, api.TemplateID(v.Sequence, 5), v.ID)
	assert.Equal(t, res.Template.FwdPrimer(), v.FwdPrimer)
	assert.Equal(t, res.Template.RevPrimer(), v.RevPrimer)
	assert.Equal(t, api.SpanV1{Start: 25, End: 50}, v.Regions.Probe)
	assert.InDelta(t, res.Report.Total, v.Cost, 1e-12)
	assert.Len(t, v.Rules, len(res.Report.Entries))
}

func TestToAPIStats(t *testing.T) {
	s := ToAPIStats(22, 1, []float64{50, 60}, []float64{40, 60})
	assert.Equal(t, 2, s.Samples)
	assert.InDelta(t, 55, s.Tm.Mean, 1e-12)
	assert.InDelta(t, 1, s.Correlation, 1e-12)
}

func TestToAPIRules(t *testing.T) {
	list := ToAPIRules(map[string]float64{"hairpin": 2})
	require.Len(t, list, len(rules.Names()))
	for _, r := range list {
		if r.Name == "hairpin" {
			assert.Equal(t, 0.0, r.DefaultWeight)
			assert.Equal(t, 2.0, r.Weight)
		}
	}
}

func TestWriters(t *testing.T) {
	v := ToAPITemplate(0, sampleResult(t), nil)

	var fa bytes.Buffer
	require.NoError(t, WriteFASTA(&fa, []api.TemplateV1{v}))
	assert.True(t, strings.HasPrefix(fa.String(), ">pcrgen_1 id="+v.ID))
	assert.Contains(t, fa.String(), "\n"+v.Sequence+"\n")

	var tsv bytes.Buffer
	require.NoError(t, WriteTSV(&tsv, []api.TemplateV1{v}, true))
	lines := strings.Split(strings.TrimSpace(tsv.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, TSVHeader, lines[0])
	assert.Equal(t, strings.Count(TSVHeader, "\t"), strings.Count(lines[1], "\t"))

	var y bytes.Buffer
	require.NoError(t, EncodeYAML(&y, v))
	var back api.TemplateV1
	require.NoError(t, yaml.Unmarshal(y.Bytes(), &back))
	assert.Equal(t, v.Sequence, back.Sequence)
	assert.Equal(t, v.Regions, back.Regions)

	var js bytes.Buffer
	require.NoError(t, EncodePretty(&js, v))
	assert.Contains(t, js.String(), "\n  \"sequence\": ")
}
