// core/rules/structure.go
package rules

import (
	"fmt"
	"strings"

	"pcrgen/core/layout"
	"pcrgen/core/oligo"
	"pcrgen/core/primer"
)

// SecondaryStructureRule counts SecondaryMinStem-long windows of the template
// whose reverse complement also occurs in it (hairpin / self-dimer seeds).
type SecondaryStructureRule struct{ base }

func NewSecondaryStructure(name string, weight float64) SecondaryStructureRule {
	return SecondaryStructureRule{base{name, weight}}
}

func (r SecondaryStructureRule) Evaluate(t layout.Template, cfg Config) Outcome {
	s := t.Fwd()
	w := cfg.SecondaryMinStem
	n := 0
	for i := 0; i+w <= len(s); i++ {
		if strings.Contains(s, oligo.RevComp(s[i:i+w])) {
			n++
		}
	}
	if n == 0 {
		return Outcome{Note: "no secondary structures"}
	}
	return Outcome{
		Penalty: float64(n),
		Note:    fmt.Sprintf("%d window(s) of %d bp pair elsewhere", n, w),
	}
}

// PrimerDimerRule wants every 3' end (both template strands and both
// primers) to bind the template exactly once. Equal primer ends bind twice.
type PrimerDimerRule struct{ base }

func NewPrimerDimer(name string, weight float64) PrimerDimerRule {
	return PrimerDimerRule{base{name, weight}}
}

func (r PrimerDimerRule) Evaluate(t layout.Template, cfg Config) Outcome {
	return uniqueEnds(t, cfg, t.ThreePrimeEnds(cfg.UniqueEndLength))
}

// UniqueEndRule applies the same check to the probe 3' end.
type UniqueEndRule struct{ base }

func NewProbeUniqueEnd(name string, weight float64) UniqueEndRule {
	return UniqueEndRule{base{name, weight}}
}

func (r UniqueEndRule) Evaluate(t layout.Template, cfg Config) Outcome {
	return uniqueEnds(t, cfg, []string{last(t.Probe(), cfg.UniqueEndLength)})
}

func uniqueEnds(t layout.Template, cfg Config, ends []string) Outcome {
	seq := t.Seq.Bytes()
	excess := 0
	var dup []string
	for _, e := range ends {
		c := primer.CountBothStrands(seq, []byte(e), cfg.DimerMismatches)
		if c > 1 {
			excess += c - 1
			dup = append(dup, fmt.Sprintf("%s×%d", e, c))
		}
	}
	if excess == 0 {
		return Outcome{Note: "3' ends unique: " + strings.Join(ends, " ")}
	}
	return Outcome{
		Penalty: float64(excess),
		Note:    "repeated 3' ends: " + strings.Join(dup, " "),
	}
}
