// core/rules/registry.go
package rules

import (
	"fmt"
	"math"
	"sort"

	"pcrgen/core/thermo"
)

// Entry describes one registered rule.
type Entry struct {
	Name          string
	Description   string
	DefaultWeight float64
	New           func(name string, weight float64, o thermo.Oracle) Rule
}

// registry lists rules in evaluation (and report) order.
var registry = []Entry{
	{"run_length", "longest homopolymer run beyond max_run_length", 1,
		func(n string, w float64, _ thermo.Oracle) Rule { return NewRunLength(n, w) }},
	{"gc_overall", "template GC% outside overall_gc band", 1,
		func(n string, w float64, _ thermo.Oracle) Rule { return NewGCContent(n, w, RegionTemplate) }},
	{"gc_fwd_primer", "forward primer GC% outside primer_gc band", 1,
		func(n string, w float64, _ thermo.Oracle) Rule { return NewGCContent(n, w, RegionFwdPrimer) }},
	{"gc_rev_primer", "reverse primer GC% outside primer_gc band", 1,
		func(n string, w float64, _ thermo.Oracle) Rule { return NewGCContent(n, w, RegionRevPrimer) }},
	{"primer_tm_fwd", "forward primer Tm outside primer_melt ± primer_tm_tolerance", 1,
		func(n string, w float64, o thermo.Oracle) Rule { return NewMeltingRange(n, w, RegionFwdPrimer, o) }},
	{"primer_tm_rev", "reverse primer Tm outside primer_melt ± primer_tm_tolerance", 1,
		func(n string, w float64, o thermo.Oracle) Rule { return NewMeltingRange(n, w, RegionRevPrimer, o) }},
	{"primer_tm_match", "primer Tm difference beyond primer_tm_tolerance", 1,
		func(n string, w float64, o thermo.Oracle) Rule { return NewMeltingTempMatch(n, w, o) }},
	{"gc_clamp_fwd", "fewer than clamp_min_gc G/C in the forward primer 3' clamp", 1,
		func(n string, w float64, _ thermo.Oracle) Rule { return NewGCClamp(n, w, RegionFwdPrimer) }},
	{"gc_clamp_rev", "fewer than clamp_min_gc G/C in the reverse primer 3' clamp", 1,
		func(n string, w float64, _ thermo.Oracle) Rule { return NewGCClamp(n, w, RegionRevPrimer) }},
	{"primer_3prime_gc", "primer 3' base is not G/C", 1,
		func(n string, w float64, _ thermo.Oracle) Rule { return NewPrimerThreePrimeGC(n, w) }},
	{"primer_dimer", "3' ends of primers or template occur more than once", 1,
		func(n string, w float64, _ thermo.Oracle) Rule { return NewPrimerDimer(n, w) }},
	{"template_3prime_at", "template 3' base is not A/T", 1,
		func(n string, w float64, _ thermo.Oracle) Rule { return NewTemplateThreePrimeAT(n, w) }},
	{"primer_forcing", "two bases after each primer are not A/T", 1,
		func(n string, w float64, _ thermo.Oracle) Rule { return NewPrimerForcing(n, w) }},
	{"probe_tm_delta", "probe Tm minus mean primer Tm outside probe_tm_delta band", 1,
		func(n string, w float64, o thermo.Oracle) Rule { return NewProbeTmDelta(n, w, o) }},
	{"gc_probe", "probe GC% outside probe_gc band", 1,
		func(n string, w float64, _ thermo.Oracle) Rule { return NewGCContent(n, w, RegionProbe) }},
	{"probe_unique_end", "probe 3' end occurs more than once", 1,
		func(n string, w float64, _ thermo.Oracle) Rule { return NewProbeUniqueEnd(n, w) }},
	{"probe_5prime", "probe 5' base is not A/T", 1,
		func(n string, w float64, _ thermo.Oracle) Rule { return NewProbeFivePrime(n, w) }},
	{"secondary_structure", "windows of secondary_min_stem bp with a reverse complement elsewhere", 1,
		func(n string, w float64, _ thermo.Oracle) Rule { return NewSecondaryStructure(n, w) }},
	{"hairpin", "intramolecular stems in primers and probe (off unless weighted)", 0,
		func(n string, w float64, _ thermo.Oracle) Rule { return NewHairpin(n, w) }},
}

// Entries returns the registry in evaluation order.
func Entries() []Entry {
	out := make([]Entry, len(registry))
	copy(out, registry)
	return out
}

// Names lists registered rule names in evaluation order.
func Names() []string {
	out := make([]string, len(registry))
	for i, e := range registry {
		out[i] = e.Name
	}
	return out
}

// Build instantiates every registered rule whose effective weight is > 0.
// weights overrides defaults by name; unknown names and negative or
// non-finite weights are a *ConfigError. A nil oracle means thermo.Default.
func Build(weights map[string]float64, o thermo.Oracle) ([]Rule, error) {
	if o == nil {
		o = thermo.Default
	}
	known := make(map[string]bool, len(registry))
	for _, e := range registry {
		known[e.Name] = true
	}
	names := make([]string, 0, len(weights))
	for n := range weights {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		w := weights[n]
		if !known[n] {
			return nil, &ConfigError{Field: "weights." + n, Reason: "unknown rule"}
		}
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, &ConfigError{Field: "weights." + n, Reason: fmt.Sprintf("must be a finite value >= 0, got %v", w)}
		}
	}

	out := make([]Rule, 0, len(registry))
	for _, e := range registry {
		w := e.DefaultWeight
		if v, ok := weights[e.Name]; ok {
			w = v
		}
		if w == 0 {
			continue
		}
		out = append(out, e.New(e.Name, w, o))
	}
	return out, nil
}

// Default is Build with stock weights.
func Default(o thermo.Oracle) []Rule {
	rs, err := Build(nil, o)
	if err != nil {
		panic(err)
	}
	return rs
}
