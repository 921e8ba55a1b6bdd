// internal/output/api.go
package output

import (
	"pcrgen/core/anneal"
	"pcrgen/core/batch"
	"pcrgen/core/cost"
	"pcrgen/core/layout"
	"pcrgen/core/oligo"
	"pcrgen/core/rules"
	"pcrgen/core/thermo"
	"pcrgen/pkg/api"
)

// ToAPITemplate converts a finished run to the stable wire schema (v1).
func ToAPITemplate(run int, res anneal.Result, o thermo.Oracle) api.TemplateV1 {
	v := ToAPIScored(res.Template, res.Report, o)
	v.ID = api.TemplateID(v.Sequence, res.Seed)
	v.Run = run
	v.Status = res.Status.String()
	v.Converged = res.Converged()
	v.Iterations = res.Iterations
	v.Accepted = res.Accepted
	v.Seed = res.Seed
	return v
}

// ToAPIScored describes a template that was evaluated, not optimised.
func ToAPIScored(t layout.Template, rep cost.Report, o thermo.Oracle) api.TemplateV1 {
	if o == nil {
		o = thermo.Default
	}
	r := t.Regions
	v := api.TemplateV1{
		ID:        api.TemplateID(t.Fwd(), 0),
		Sequence:  t.Fwd(),
		Length:    t.Seq.Len(),
		FwdPrimer: t.FwdPrimer(),
		RevPrimer: t.RevPrimer(),
		Probe:     t.Probe(),
		Regions: api.RegionsV1{
			FwdPrimer: span(r.FwdPrimer),
			Probe:     span(r.Probe),
			Gap:       span(r.Gap),
			RevPrimer: span(r.RevPrimer),
		},
		Status:    "scored",
		Converged: rep.Compliant(),
		Cost:      rep.Total,
		GC:        oligo.GCPercent(t.Fwd()),
		TmFwd:     o.MeltingTemp(t.FwdPrimer()),
		TmRev:     o.MeltingTemp(t.RevPrimer()),
		TmProbe:   o.MeltingTemp(t.Probe()),
	}
	for _, e := range rep.Entries {
		v.Rules = append(v.Rules, api.RuleCostV1{
			Name: e.Name, Weight: e.Weight, Penalty: e.Penalty, Cost: e.Cost, Note: e.Note,
		})
	}
	return v
}

func span(s layout.Span) api.SpanV1 { return api.SpanV1{Start: s.Start, End: s.End} }

// ToAPIStats converts sampled values into the `analyze` schema.
func ToAPIStats(length int, seed int64, tms, gcs []float64) api.StatsV1 {
	tm := batch.Summarize(tms)
	gc := batch.Summarize(gcs)
	return api.StatsV1{
		Length:      length,
		Samples:     len(tms),
		Seed:        seed,
		Tm:          api.SummaryV1{Mean: tm.Mean, StdDev: tm.StdDev, Min: tm.Min, Max: tm.Max},
		GC:          api.SummaryV1{Mean: gc.Mean, StdDev: gc.StdDev, Min: gc.Min, Max: gc.Max},
		Correlation: batch.Correlation(gcs, tms),
	}
}

// ToAPIRules lists the registry with the effective weights in use.
func ToAPIRules(weights map[string]float64) []api.RuleV1 {
	entries := rules.Entries()
	out := make([]api.RuleV1, 0, len(entries))
	for _, e := range entries {
		w := e.DefaultWeight
		if v, ok := weights[e.Name]; ok {
			w = v
		}
		out = append(out, api.RuleV1{
			Name:          e.Name,
			Description:   e.Description,
			DefaultWeight: e.DefaultWeight,
			Weight:        w,
		})
	}
	return out
}
