package cli

import (
	"time"

	"github.com/spf13/cobra"

	"pcrgen/core/batch"
	"pcrgen/core/thermo"
	"pcrgen/internal/cliutil"
	"pcrgen/internal/config"
	"pcrgen/internal/logging"
	"pcrgen/internal/metrics"
	"pcrgen/internal/output"
	"pcrgen/internal/writers"
)

func newAnalyzeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Sample random sequences and summarise their Tm and GC",
		Long: `Score uniformly random sequences of one length and report the mean,
standard deviation and range of their melting temperature and GC content.
Use it to pick realistic primer and probe bands.`,
		Example: "  pcrgen analyze --length 22 --samples 10000 --seed 1",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.analyze()
		},
	}
	fs := cmd.Flags()
	fs.Int("length", config.Defaults().PrimerLength, "sequence length (bp)")
	fs.Int("samples", 10000, "sequences to draw")
	fs.String("metrics-file", "", "write Prometheus metrics to this file when done")
	config.AddSeedFlag(fs)
	config.AddThermoFlags(fs)
	return cmd
}

func (a *app) analyze() error {
	p, err := a.params()
	if err != nil {
		return err
	}
	cond, err := p.Conditions()
	if err != nil {
		return err
	}
	seed := p.ResolvedSeed()
	if !p.SeedSet {
		cliutil.Warnf(a.stderr, a.quiet(), "no --seed given; using %d", seed)
	}
	length, samples := a.v.GetInt("length"), a.v.GetInt("samples")

	began := time.Now()
	tms, gcs, err := batch.SampleStatistics(length, samples, batch.SampleConfig{
		Oracle: thermo.NearestNeighbor{Cond: cond},
		Seed:   seed,
	})
	if err != nil {
		return usageError{err}
	}
	m := metrics.New()
	m.AddSamples(len(tms))
	m.ObserveBatch(time.Since(began))
	if err := m.WriteFile(a.v.GetString("metrics-file")); err != nil {
		cliutil.Warnf(a.stderr, a.quiet(), "metrics: %v", err)
	}
	a.log.V(logging.DEBUG).Info("sampled", "length", length, "samples", len(tms), "elapsed", time.Since(began))

	return writers.WriteStats(a.format(), a.stdout, output.ToAPIStats(length, seed, tms, gcs))
}
