// Package config is for run-wide settings unmarshalled from viper: a YAML
// config file, PCRGEN_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/viper"

	"pcrgen/core/anneal"
	"pcrgen/core/cost"
	"pcrgen/core/layout"
	"pcrgen/core/rules"
	"pcrgen/core/thermo"
)

// EnvPrefix prefixes every environment variable (PCRGEN_SEQ_LENGTH, ...).
const EnvPrefix = "PCRGEN"

// Params is the flat settings surface. Keys match the flag names.
type Params struct {
	// layout
	SeqLength    int `mapstructure:"seq-length"`
	PrimerLength int `mapstructure:"primer-length"`
	ProbeLength  int `mapstructure:"probe-length"`
	ProbeGap     int `mapstructure:"probe-gap"`

	// rule thresholds
	PrimerMelt        float64 `mapstructure:"primer-melt"`
	PrimerTmTolerance float64 `mapstructure:"primer-tm-tolerance"`
	OverallGCMin      float64 `mapstructure:"overall-gc-min"`
	OverallGCMax      float64 `mapstructure:"overall-gc-max"`
	PrimerGCMin       float64 `mapstructure:"primer-gc-min"`
	PrimerGCMax       float64 `mapstructure:"primer-gc-max"`
	ProbeGCMin        float64 `mapstructure:"probe-gc-min"`
	ProbeGCMax        float64 `mapstructure:"probe-gc-max"`
	ProbeTmDeltaMin   float64 `mapstructure:"probe-tm-delta-min"`
	ProbeTmDeltaMax   float64 `mapstructure:"probe-tm-delta-max"`
	MaxRunLength      int     `mapstructure:"max-run-length"`
	ClampLength       int     `mapstructure:"clamp-length"`
	ClampMinGC        int     `mapstructure:"clamp-min-gc"`
	UniqueEndLength   int     `mapstructure:"unique-end-length"`
	SecondaryMinStem  int     `mapstructure:"secondary-min-stem"`
	DimerMismatches   int     `mapstructure:"dimer-mismatches"`

	// per-rule weights; "weights" comes from the config file, "weight" from
	// repeated --weight name=value flags and wins
	Weights         map[string]float64 `mapstructure:"weights"`
	WeightOverrides map[string]string  `mapstructure:"weight"`

	// reaction conditions, with units ("50mM", "250nM")
	Na         string `mapstructure:"na"`
	Mg         string `mapstructure:"mg"`
	StrandConc string `mapstructure:"strand-conc"`

	// annealing schedule
	MaxIterations      int     `mapstructure:"max-iterations"`
	Mutations          int     `mapstructure:"mutations"`
	Seed               int64   `mapstructure:"seed"`
	InitialTemperature float64 `mapstructure:"initial-temperature"`
	Cooling            float64 `mapstructure:"cooling"`
	CoolEvery          int     `mapstructure:"cool-every"`
	MinTemperature     float64 `mapstructure:"min-temperature"`
	TargetCost         float64 `mapstructure:"target-cost"`
	StallLimit         int     `mapstructure:"stall-limit"`

	// batch
	Count   int `mapstructure:"count"`
	Workers int `mapstructure:"workers"`

	// SeedSet is false when no source gave a seed; a time-based one is used.
	SeedSet bool `mapstructure:"-"`
}

// Defaults returns the stock settings.
func Defaults() Params {
	rc := rules.DefaultConfig()
	ao := anneal.DefaultOptions()
	r := layout.DefaultRegions()
	return Params{
		SeqLength:    r.SeqLength,
		PrimerLength: r.PrimerLength,
		ProbeLength:  r.ProbeLength,
		ProbeGap:     r.ProbeGap,

		PrimerMelt:        rc.PrimerMelt,
		PrimerTmTolerance: rc.PrimerTmTolerance,
		OverallGCMin:      rc.OverallGC.Min,
		OverallGCMax:      rc.OverallGC.Max,
		PrimerGCMin:       rc.PrimerGC.Min,
		PrimerGCMax:       rc.PrimerGC.Max,
		ProbeGCMin:        rc.ProbeGC.Min,
		ProbeGCMax:        rc.ProbeGC.Max,
		ProbeTmDeltaMin:   rc.ProbeTmDelta.Min,
		ProbeTmDeltaMax:   rc.ProbeTmDelta.Max,
		MaxRunLength:      rc.MaxRunLength,
		ClampLength:       rc.ClampLength,
		ClampMinGC:        rc.ClampMinGC,
		UniqueEndLength:   rc.UniqueEndLength,
		SecondaryMinStem:  rc.SecondaryMinStem,
		DimerMismatches:   rc.DimerMismatches,

		Na:         "50mM",
		Mg:         "0",
		StrandConc: "50nM",

		MaxIterations:      ao.MaxIterations,
		Mutations:          ao.Mutations,
		InitialTemperature: ao.InitialTemperature,
		Cooling:            ao.Cooling,
		CoolEvery:          ao.CoolEvery,
		MinTemperature:     ao.MinTemperature,
		TargetCost:         ao.TargetCost,
		StallLimit:         ao.StallLimit,

		Count:   1,
		Workers: 0,
	}
}

// New returns a viper instance carrying the defaults and the environment
// binding. configFile, when set, is read as YAML.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}
	return v, nil
}

// SetDefaults registers every key of Defaults with v.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	for k, val := range map[string]any{
		"seq-length":          d.SeqLength,
		"primer-length":       d.PrimerLength,
		"probe-length":        d.ProbeLength,
		"probe-gap":           d.ProbeGap,
		"primer-melt":         d.PrimerMelt,
		"primer-tm-tolerance": d.PrimerTmTolerance,
		"overall-gc-min":      d.OverallGCMin,
		"overall-gc-max":      d.OverallGCMax,
		"primer-gc-min":       d.PrimerGCMin,
		"primer-gc-max":       d.PrimerGCMax,
		"probe-gc-min":        d.ProbeGCMin,
		"probe-gc-max":        d.ProbeGCMax,
		"probe-tm-delta-min":  d.ProbeTmDeltaMin,
		"probe-tm-delta-max":  d.ProbeTmDeltaMax,
		"max-run-length":      d.MaxRunLength,
		"clamp-length":        d.ClampLength,
		"clamp-min-gc":        d.ClampMinGC,
		"unique-end-length":   d.UniqueEndLength,
		"secondary-min-stem":  d.SecondaryMinStem,
		"dimer-mismatches":    d.DimerMismatches,
		"na":                  d.Na,
		"mg":                  d.Mg,
		"strand-conc":         d.StrandConc,
		"max-iterations":      d.MaxIterations,
		"mutations":           d.Mutations,
		"initial-temperature": d.InitialTemperature,
		"cooling":             d.Cooling,
		"cool-every":          d.CoolEvery,
		"min-temperature":     d.MinTemperature,
		"target-cost":         d.TargetCost,
		"stall-limit":         d.StallLimit,
		"count":               d.Count,
		"workers":             d.Workers,
	} {
		v.SetDefault(k, val)
	}
}

// Load unmarshals v into Params.
func Load(v *viper.Viper) (Params, error) {
	var p Params
	if err := v.Unmarshal(&p); err != nil {
		return Params{}, fmt.Errorf("unable to decode settings: %w", err)
	}
	p.SeedSet = v.IsSet("seed")
	return p, nil
}

// Setup is Params converted into the core configuration objects.
type Setup struct {
	Regions    layout.Regions
	Rules      rules.Config
	Conditions thermo.Conditions
	Oracle     thermo.Oracle
	Weights    map[string]float64
	Evaluator  *cost.Evaluator
	Anneal     anneal.Options
}

// Build validates p and assembles the core objects. Errors are
// *layout.LayoutError or *rules.ConfigError.
func (p Params) Build(log logr.Logger) (*Setup, error) {
	regions, err := layout.DeriveRegions(p.SeqLength, p.PrimerLength, p.ProbeLength, p.ProbeGap)
	if err != nil {
		return nil, err
	}
	cond, err := p.Conditions()
	if err != nil {
		return nil, err
	}
	weights, err := p.RuleWeights()
	if err != nil {
		return nil, err
	}
	o := thermo.NearestNeighbor{Cond: cond}
	rs, err := rules.Build(weights, o)
	if err != nil {
		return nil, err
	}
	rc := p.RuleConfig()
	eval, err := cost.NewEvaluator(rc, rs)
	if err != nil {
		return nil, err
	}
	ao := p.AnnealOptions()
	if log.GetSink() != nil {
		ao.Logger = log
	}
	if err := ao.Validate(); err != nil {
		return nil, err
	}
	return &Setup{
		Regions:    regions,
		Rules:      rc,
		Conditions: cond,
		Oracle:     o,
		Weights:    weights,
		Evaluator:  eval,
		Anneal:     ao,
	}, nil
}

// RuleConfig maps the threshold keys onto rules.Config.
func (p Params) RuleConfig() rules.Config {
	return rules.Config{
		PrimerMelt:        p.PrimerMelt,
		PrimerTmTolerance: p.PrimerTmTolerance,
		OverallGC:         rules.Band{Min: p.OverallGCMin, Max: p.OverallGCMax},
		PrimerGC:          rules.Band{Min: p.PrimerGCMin, Max: p.PrimerGCMax},
		ProbeGC:           rules.Band{Min: p.ProbeGCMin, Max: p.ProbeGCMax},
		ProbeTmDelta:      rules.Band{Min: p.ProbeTmDeltaMin, Max: p.ProbeTmDeltaMax},
		MaxRunLength:      p.MaxRunLength,
		ClampLength:       p.ClampLength,
		ClampMinGC:        p.ClampMinGC,
		UniqueEndLength:   p.UniqueEndLength,
		SecondaryMinStem:  p.SecondaryMinStem,
		DimerMismatches:   p.DimerMismatches,
	}
}

// AnnealOptions maps the schedule keys onto anneal.Options. Without a
// configured seed the wall clock picks one.
func (p Params) AnnealOptions() anneal.Options {
	ao := anneal.DefaultOptions()
	ao.MaxIterations = p.MaxIterations
	ao.Mutations = p.Mutations
	ao.Seed = p.ResolvedSeed()
	ao.InitialTemperature = p.InitialTemperature
	ao.Cooling = p.Cooling
	ao.CoolEvery = p.CoolEvery
	ao.MinTemperature = p.MinTemperature
	ao.TargetCost = p.TargetCost
	ao.StallLimit = p.StallLimit
	return ao
}

// ResolvedSeed is Seed, or a time-based seed when none was configured.
func (p Params) ResolvedSeed() int64 {
	if p.SeedSet {
		return p.Seed
	}
	return time.Now().UnixNano()
}

// Conditions parses the concentration keys.
func (p Params) Conditions() (thermo.Conditions, error) {
	var c thermo.Conditions
	for _, f := range []struct {
		key, raw string
		dst      *float64
	}{
		{"na", p.Na, &c.NaM},
		{"mg", p.Mg, &c.MgM},
		{"strand-conc", p.StrandConc, &c.PrimerTotalM},
	} {
		v, err := thermo.ParseConc(f.raw)
		if err != nil {
			return c, &rules.ConfigError{Field: f.key, Reason: err.Error()}
		}
		*f.dst = v
	}
	if err := c.Validate(); err != nil {
		return c, &rules.ConfigError{Field: "conditions", Reason: err.Error()}
	}
	return c, nil
}

// RuleWeights merges file weights with --weight overrides.
func (p Params) RuleWeights() (map[string]float64, error) {
	out := make(map[string]float64, len(p.Weights)+len(p.WeightOverrides))
	for k, w := range p.Weights {
		out[k] = w
	}
	for k, raw := range p.WeightOverrides {
		w, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || math.IsNaN(w) {
			return nil, &rules.ConfigError{Field: "weights." + k, Reason: fmt.Sprintf("not a number: %q", raw)}
		}
		out[k] = w
	}
	return out, nil
}

// IsUsage reports whether err comes from bad settings rather than a failed
// run.
func IsUsage(err error) bool {
	var le *layout.LayoutError
	var ce *rules.ConfigError
	return errors.As(err, &le) || errors.As(err, &ce)
}
