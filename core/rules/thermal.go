// core/rules/thermal.go
package rules

import (
	"fmt"
	"math"

	"pcrgen/core/layout"
	"pcrgen/core/thermo"
)

// MeltingTempMatchRule keeps the two primer Tm values within
// PrimerTmTolerance of each other.
type MeltingTempMatchRule struct {
	base
	Oracle thermo.Oracle
}

func NewMeltingTempMatch(name string, weight float64, o thermo.Oracle) MeltingTempMatchRule {
	return MeltingTempMatchRule{base: base{name, weight}, Oracle: o}
}

func (r MeltingTempMatchRule) Evaluate(t layout.Template, cfg Config) Outcome {
	fwd := r.Oracle.MeltingTemp(t.FwdPrimer())
	rev := r.Oracle.MeltingTemp(t.RevPrimer())
	diff := math.Abs(fwd - rev)
	p := math.Max(0, diff-cfg.PrimerTmTolerance)
	note := fmt.Sprintf("Tm fwd %.1f°C rev %.1f°C (Δ %.1f, tolerance %.1f)", fwd, rev, diff, cfg.PrimerTmTolerance)
	return Outcome{Penalty: p, Note: note}
}

// MeltingRangeRule keeps one primer's Tm inside PrimerMelt ± PrimerTmTolerance.
type MeltingRangeRule struct {
	base
	Region Region
	Oracle thermo.Oracle
}

func NewMeltingRange(name string, weight float64, region Region, o thermo.Oracle) MeltingRangeRule {
	return MeltingRangeRule{base: base{name, weight}, Region: region, Oracle: o}
}

func (r MeltingRangeRule) Evaluate(t layout.Template, cfg Config) Outcome {
	tm := r.Oracle.MeltingTemp(r.Region.extract(t))
	band := cfg.PrimerTmBand()
	d := band.Distance(tm)
	if d == 0 {
		return Outcome{Note: fmt.Sprintf("%s Tm %.1f°C", r.Region, tm)}
	}
	return Outcome{Penalty: d, Note: fmt.Sprintf("%s Tm %.1f°C outside %s", r.Region, tm, band)}
}

// ProbeTmDeltaRule keeps Tm(probe) − mean(Tm(fwd), Tm(rev)) inside
// ProbeTmDelta.
type ProbeTmDeltaRule struct {
	base
	Oracle thermo.Oracle
}

func NewProbeTmDelta(name string, weight float64, o thermo.Oracle) ProbeTmDeltaRule {
	return ProbeTmDeltaRule{base: base{name, weight}, Oracle: o}
}

func (r ProbeTmDeltaRule) Evaluate(t layout.Template, cfg Config) Outcome {
	probe := r.Oracle.MeltingTemp(t.Probe())
	mean := (r.Oracle.MeltingTemp(t.FwdPrimer()) + r.Oracle.MeltingTemp(t.RevPrimer())) / 2
	delta := probe - mean
	d := cfg.ProbeTmDelta
	p := math.Max(0, d.Min-delta) + math.Max(0, delta-d.Max)
	note := fmt.Sprintf("probe Tm %.1f°C, %+.1f over primers (want %s)", probe, delta, d)
	return Outcome{Penalty: p, Note: note}
}

// HairpinRule scores intramolecular stems in both primers and the probe.
type HairpinRule struct{ base }

func NewHairpin(name string, weight float64) HairpinRule {
	return HairpinRule{base{name, weight}}
}

func (r HairpinRule) Evaluate(t layout.Template, _ Config) Outcome {
	f := thermo.HairpinPenalty(t.FwdPrimer())
	v := thermo.HairpinPenalty(t.RevPrimer())
	p := thermo.HairpinPenalty(t.Probe())
	return Outcome{
		Penalty: f + v + p,
		Note:    fmt.Sprintf("hairpin fwd %.1f rev %.1f probe %.1f", f, v, p),
	}
}
