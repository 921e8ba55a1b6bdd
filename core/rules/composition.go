// core/rules/composition.go
package rules

import (
	"fmt"

	"pcrgen/core/layout"
	"pcrgen/core/oligo"
)

// GCContentRule keeps the GC% of one region inside its configured band.
type GCContentRule struct {
	base
	Region Region
}

func NewGCContent(name string, weight float64, region Region) GCContentRule {
	return GCContentRule{base: base{name, weight}, Region: region}
}

func (r GCContentRule) band(cfg Config) Band {
	switch r.Region {
	case RegionFwdPrimer, RegionRevPrimer:
		return cfg.PrimerGC
	case RegionProbe:
		return cfg.ProbeGC
	default:
		return cfg.OverallGC
	}
}

func (r GCContentRule) Evaluate(t layout.Template, cfg Config) Outcome {
	gc := oligo.GCPercent(r.Region.extract(t))
	band := r.band(cfg)
	d := band.Distance(gc)
	if d == 0 {
		return Outcome{Note: fmt.Sprintf("%s GC %.1f%%", r.Region, gc)}
	}
	return Outcome{Penalty: d, Note: fmt.Sprintf("%s GC %.1f%% outside %s", r.Region, gc, band)}
}

// GCClampRule requires ClampMinGC G/C among the last ClampLength bases of a
// primer.
type GCClampRule struct {
	base
	Region Region // RegionFwdPrimer or RegionRevPrimer
}

func NewGCClamp(name string, weight float64, region Region) GCClampRule {
	return GCClampRule{base: base{name, weight}, Region: region}
}

func (r GCClampRule) Evaluate(t layout.Template, cfg Config) Outcome {
	p := r.Region.extract(t)
	k := cfg.ClampLength
	if k > len(p) {
		k = len(p)
	}
	clamp := p[len(p)-k:]
	n := oligo.GCCount(clamp)
	if n >= cfg.ClampMinGC {
		return Outcome{Note: fmt.Sprintf("%s clamp %s has %d G/C", r.Region, clamp, n)}
	}
	return Outcome{
		Penalty: float64(cfg.ClampMinGC - n),
		Note:    fmt.Sprintf("%s clamp %s has %d G/C, want >= %d", r.Region, clamp, n, cfg.ClampMinGC),
	}
}

// RunLengthRule penalises homopolymer runs longer than MaxRunLength.
type RunLengthRule struct{ base }

func NewRunLength(name string, weight float64) RunLengthRule {
	return RunLengthRule{base{name, weight}}
}

func (r RunLengthRule) Evaluate(t layout.Template, cfg Config) Outcome {
	n, b := oligo.LongestRun(t.Fwd())
	if n <= cfg.MaxRunLength {
		return Outcome{Note: fmt.Sprintf("longest run %d", n)}
	}
	return Outcome{
		Penalty: float64(n - cfg.MaxRunLength),
		Note:    fmt.Sprintf("run of %d %c exceeds %d", n, b, cfg.MaxRunLength),
	}
}

// BaseClassRule counts bases at fixed sites that should be G/C (WantGC) or
// A/T (!WantGC) but are not. One penalty point per offending base.
type BaseClassRule struct {
	base
	WantGC bool
	Label  string
	Sites  func(t layout.Template) string
}

func (r BaseClassRule) Evaluate(t layout.Template, _ Config) Outcome {
	s := r.Sites(t)
	bad := 0
	for i := 0; i < len(s); i++ {
		if isGC(s[i]) != r.WantGC {
			bad++
		}
	}
	want := "A/T"
	if r.WantGC {
		want = "G/C"
	}
	if bad == 0 {
		return Outcome{Note: fmt.Sprintf("%s %s", r.Label, s)}
	}
	return Outcome{
		Penalty: float64(bad),
		Note:    fmt.Sprintf("%s %s: %d base(s) not %s", r.Label, s, bad, want),
	}
}

// NewPrimerThreePrimeGC wants each primer to end in G or C.
func NewPrimerThreePrimeGC(name string, weight float64) BaseClassRule {
	return BaseClassRule{
		base:   base{name, weight},
		WantGC: true,
		Label:  "primer 3' ends",
		Sites: func(t layout.Template) string {
			return last(t.FwdPrimer(), 1) + last(t.RevPrimer(), 1)
		},
	}
}

// NewTemplateThreePrimeAT wants both template strands to end in A or T.
func NewTemplateThreePrimeAT(name string, weight float64) BaseClassRule {
	return BaseClassRule{
		base:  base{name, weight},
		Label: "template 3' ends",
		Sites: func(t layout.Template) string {
			return last(t.Fwd(), 1) + last(t.Rev(), 1)
		},
	}
}

// NewPrimerForcing wants the two bases following each primer on its own
// strand to be A or T.
func NewPrimerForcing(name string, weight float64) BaseClassRule {
	return BaseClassRule{
		base:  base{name, weight},
		Label: "bases after primers",
		Sites: func(t layout.Template) string {
			p := t.Regions.PrimerLength
			return window(t.Fwd(), p, p+2) + window(t.Rev(), p, p+2)
		},
	}
}

// NewProbeFivePrime wants the probe to start with A or T.
func NewProbeFivePrime(name string, weight float64) BaseClassRule {
	return BaseClassRule{
		base:  base{name, weight},
		Label: "probe 5' end",
		Sites: func(t layout.Template) string {
			return window(t.Probe(), 0, 1)
		},
	}
}

func isGC(b byte) bool { return b == 'G' || b == 'C' }

func last(s string, k int) string {
	if k >= len(s) {
		return s
	}
	return s[len(s)-k:]
}

func window(s string, i, j int) string {
	if j > len(s) {
		j = len(s)
	}
	if i >= j {
		return ""
	}
	return s[i:j]
}
