package config

import (
	"github.com/spf13/pflag"
)

// AddLayoutFlags registers the template layout flags.
func AddLayoutFlags(fs *pflag.FlagSet) {
	d := Defaults()
	fs.Int("seq-length", d.SeqLength, "template length (bp)")
	fs.Int("primer-length", d.PrimerLength, "primer length (bp)")
	fs.Int("probe-length", d.ProbeLength, "probe length (bp)")
	fs.Int("probe-gap", d.ProbeGap, "bases between probe 3' end and reverse primer site")
}

// AddRuleFlags registers rule thresholds and weight overrides.
func AddRuleFlags(fs *pflag.FlagSet) {
	d := Defaults()
	fs.Float64("primer-melt", d.PrimerMelt, "target primer Tm (°C)")
	fs.Float64("primer-tm-tolerance", d.PrimerTmTolerance, "allowed primer Tm deviation (°C)")
	fs.Float64("overall-gc-min", d.OverallGCMin, "template GC lower bound (%)")
	fs.Float64("overall-gc-max", d.OverallGCMax, "template GC upper bound (%)")
	fs.Float64("primer-gc-min", d.PrimerGCMin, "primer GC lower bound (%)")
	fs.Float64("primer-gc-max", d.PrimerGCMax, "primer GC upper bound (%)")
	fs.Float64("probe-gc-min", d.ProbeGCMin, "probe GC lower bound (%)")
	fs.Float64("probe-gc-max", d.ProbeGCMax, "probe GC upper bound (%)")
	fs.Float64("probe-tm-delta-min", d.ProbeTmDeltaMin, "probe Tm above mean primer Tm, lower bound (°C)")
	fs.Float64("probe-tm-delta-max", d.ProbeTmDeltaMax, "probe Tm above mean primer Tm, upper bound (°C)")
	fs.Int("max-run-length", d.MaxRunLength, "longest allowed single-base run")
	fs.Int("clamp-length", d.ClampLength, "3' bases inspected for the GC clamp")
	fs.Int("clamp-min-gc", d.ClampMinGC, "G/C required in the clamp")
	fs.Int("unique-end-length", d.UniqueEndLength, "3' end length that must occur once")
	fs.Int("secondary-min-stem", d.SecondaryMinStem, "shortest self-complementary stretch counted")
	fs.Int("dimer-mismatches", d.DimerMismatches, "mismatches tolerated when matching 3' ends")
	fs.StringToString("weight", nil, "rule weight override name=value (repeatable; 0 disables)")
}

// AddThermoFlags registers the reaction conditions.
func AddThermoFlags(fs *pflag.FlagSet) {
	d := Defaults()
	fs.String("na", d.Na, "monovalent salt (e.g. 50mM)")
	fs.String("mg", d.Mg, "magnesium (e.g. 1.5mM; 0 ignores)")
	fs.String("strand-conc", d.StrandConc, "total strand concentration (e.g. 50nM)")
}

// AddAnnealFlags registers the annealing schedule.
func AddAnnealFlags(fs *pflag.FlagSet) {
	d := Defaults()
	fs.Int("max-iterations", d.MaxIterations, "iteration budget per run")
	fs.Int("mutations", d.Mutations, "positions redrawn per step")
	fs.Float64("initial-temperature", d.InitialTemperature, "starting temperature")
	fs.Float64("cooling", d.Cooling, "geometric cooling factor")
	fs.Int("cool-every", d.CoolEvery, "steps between cooling")
	fs.Float64("min-temperature", d.MinTemperature, "temperature floor")
	fs.Float64("target-cost", d.TargetCost, "stop once the best cost is at or below this")
	fs.Int("stall-limit", d.StallLimit, "stop after this many steps without improvement (0 = off)")
}

// AddSeedFlag registers --seed. Unset means time-based.
func AddSeedFlag(fs *pflag.FlagSet) {
	fs.Int64("seed", 0, "random seed (default: time-based)")
}

// AddBatchFlags registers --count and --workers.
func AddBatchFlags(fs *pflag.FlagSet) {
	d := Defaults()
	fs.IntP("count", "n", d.Count, "templates to generate")
	fs.IntP("workers", "j", d.Workers, "parallel runs (0 = GOMAXPROCS)")
}
