// core/batch/stats.go
package batch

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"pcrgen/core/oligo"
	"pcrgen/core/thermo"
)

// SampleConfig configures SampleStatistics.
type SampleConfig struct {
	Oracle thermo.Oracle // nil means thermo.Default
	Seed   int64
}

// SampleStatistics draws sampleCount uniformly random sequences of
// regionLength bases and returns each one's Tm (°C) and GC (%). Nothing is
// optimised; the values calibrate rule bands.
func SampleStatistics(regionLength, sampleCount int, cfg SampleConfig) (tms, gcs []float64, err error) {
	if regionLength < 2 {
		return nil, nil, fmt.Errorf("sample length must be >= 2, got %d", regionLength)
	}
	if sampleCount < 0 {
		return nil, nil, fmt.Errorf("sample count must be >= 0, got %d", sampleCount)
	}
	o := cfg.Oracle
	if o == nil {
		o = thermo.Default
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	tms = make([]float64, sampleCount)
	gcs = make([]float64, sampleCount)
	for i := 0; i < sampleCount; i++ {
		s := oligo.Random(rng, regionLength).String()
		tms[i] = o.MeltingTemp(s)
		gcs[i] = oligo.GCPercent(s)
	}
	return tms, gcs, nil
}

// Summary describes one sampled distribution.
type Summary struct {
	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summarize returns the zero Summary for no values.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	mean, sd := stat.MeanStdDev(values, nil)
	if len(values) == 1 {
		sd = 0
	}
	return Summary{
		N:      len(values),
		Mean:   mean,
		StdDev: sd,
		Min:    floats.Min(values),
		Max:    floats.Max(values),
	}
}

// Correlation is Pearson's r between two samples of equal length.
func Correlation(x, y []float64) float64 {
	if len(x) < 2 || len(x) != len(y) {
		return 0
	}
	return stat.Correlation(x, y, nil)
}
