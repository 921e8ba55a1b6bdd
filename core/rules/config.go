// core/rules/config.go
package rules

import (
	"fmt"
	"math"

	"pcrgen/core/layout"
)

// ConfigError reports a threshold or weight outside its valid domain.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Field, e.Reason)
}

// Band is an inclusive target range. Values inside cost nothing.
type Band struct {
	Min float64 `json:"min" yaml:"min" mapstructure:"min"`
	Max float64 `json:"max" yaml:"max" mapstructure:"max"`
}

// Distance is 0 inside the band and the gap to the nearest edge outside it.
func (b Band) Distance(v float64) float64 {
	switch {
	case v < b.Min:
		return b.Min - v
	case v > b.Max:
		return v - b.Max
	default:
		return 0
	}
}

func (b Band) Contains(v float64) bool { return v >= b.Min && v <= b.Max }

func (b Band) String() string { return fmt.Sprintf("[%.1f,%.1f]", b.Min, b.Max) }

// Config holds the thresholds every rule reads. Build once per run; treat as
// read-only afterwards.
type Config struct {
	PrimerMelt        float64 // target primer Tm, °C
	PrimerTmTolerance float64 // °C

	OverallGC Band // %
	PrimerGC  Band // %
	ProbeGC   Band // %

	ProbeTmDelta Band // °C above mean primer Tm

	MaxRunLength int

	ClampLength int // 3' bases inspected for the GC clamp
	ClampMinGC  int // G/C required among them

	UniqueEndLength  int // 3' end length that must be unique in the template
	SecondaryMinStem int // shortest reverse-complement match counted as structure
	DimerMismatches  int // mismatches tolerated when matching 3' ends
}

// DefaultConfig returns the stock thresholds.
func DefaultConfig() Config {
	return Config{
		PrimerMelt:        54.6,
		PrimerTmTolerance: 0.5,
		OverallGC:         Band{49, 51},
		PrimerGC:          Band{49, 51},
		ProbeGC:           Band{48, 52},
		ProbeTmDelta:      Band{8, 10},
		MaxRunLength:      3,
		ClampLength:       layout.DefaultClampLength,
		ClampMinGC:        3,
		UniqueEndLength:   4,
		SecondaryMinStem:  4,
		DimerMismatches:   0,
	}
}

// PrimerTmBand is PrimerMelt ± PrimerTmTolerance.
func (c Config) PrimerTmBand() Band {
	return Band{c.PrimerMelt - c.PrimerTmTolerance, c.PrimerMelt + c.PrimerTmTolerance}
}

// Validate returns a *ConfigError for the first out-of-domain value.
func (c Config) Validate() error {
	bad := func(field, format string, args ...any) error {
		return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
	}
	if !finite(c.PrimerMelt) {
		return bad("primer_melt", "must be finite, got %v", c.PrimerMelt)
	}
	if !finite(c.PrimerTmTolerance) || c.PrimerTmTolerance < 0 {
		return bad("primer_tm_tolerance", "must be >= 0, got %v", c.PrimerTmTolerance)
	}
	for _, b := range []struct {
		name string
		band Band
		pct  bool
	}{
		{"overall_gc", c.OverallGC, true},
		{"primer_gc", c.PrimerGC, true},
		{"probe_gc", c.ProbeGC, true},
		{"probe_tm_delta", c.ProbeTmDelta, false},
	} {
		if !finite(b.band.Min) || !finite(b.band.Max) {
			return bad(b.name, "bounds must be finite")
		}
		if b.band.Min > b.band.Max {
			return bad(b.name, "min %.2f > max %.2f", b.band.Min, b.band.Max)
		}
		if b.pct && (b.band.Min < 0 || b.band.Max > 100) {
			return bad(b.name, "must lie within [0,100], got %s", b.band)
		}
	}
	if c.MaxRunLength < 1 {
		return bad("max_run_length", "must be >= 1, got %d", c.MaxRunLength)
	}
	if c.ClampLength < 1 {
		return bad("clamp_length", "must be >= 1, got %d", c.ClampLength)
	}
	if c.ClampMinGC < 0 || c.ClampMinGC > c.ClampLength {
		return bad("clamp_min_gc", "must be within [0,%d], got %d", c.ClampLength, c.ClampMinGC)
	}
	if c.UniqueEndLength < 1 {
		return bad("unique_end_length", "must be >= 1, got %d", c.UniqueEndLength)
	}
	if c.SecondaryMinStem < 2 {
		return bad("secondary_min_stem", "must be >= 2, got %d", c.SecondaryMinStem)
	}
	if c.DimerMismatches < 0 || c.DimerMismatches >= c.UniqueEndLength {
		return bad("dimer_mismatches", "must be within [0,%d), got %d", c.UniqueEndLength, c.DimerMismatches)
	}
	return nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
