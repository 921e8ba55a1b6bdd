package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pcrgen/core/batch"
	"pcrgen/internal/cliutil"
	"pcrgen/internal/config"
	"pcrgen/internal/metrics"
	"pcrgen/internal/output"
	"pcrgen/internal/pretty"
	"pcrgen/internal/writers"
)

func newGenerateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Anneal one or more templates",
		Long: `Anneal one or more templates from random starting sequences.

Each run is seeded from --seed and its index, so a batch is reproducible and
any single run can be replayed. Runs execute in parallel (--workers) and are
printed in run order.`,
		Example: `  pcrgen generate -n 4 --seed 42
  pcrgen generate --seq-length 90 --primer-melt 60 -o jsonl
  pcrgen generate --weight hairpin=1 --require-converged`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.generate(cmd)
		},
	}
	fs := cmd.Flags()
	config.AddLayoutFlags(fs)
	config.AddRuleFlags(fs)
	config.AddThermoFlags(fs)
	config.AddAnnealFlags(fs)
	config.AddSeedFlag(fs)
	config.AddBatchFlags(fs)
	fs.Bool("require-converged", false, "exit 1 unless at least one template reaches the target cost")
	fs.String("metrics-file", "", "write Prometheus metrics to this file when done")
	fs.BoolP("verbose", "v", false, "text output: list every rule, not only failing ones")
	fs.Bool("header", true, "tsv output: print a header row")
	fs.Bool("no-ruler", false, "text output: omit the position ruler")
	return cmd
}

func (a *app) generate(cmd *cobra.Command) error {
	p, err := a.params()
	if err != nil {
		return err
	}
	if p.Count < 1 {
		return usageError{fmt.Errorf("count must be >= 1, got %d", p.Count)}
	}
	setup, err := p.Build(a.log)
	if err != nil {
		return err
	}
	if !p.SeedSet {
		cliutil.Warnf(a.stderr, a.quiet(), "no --seed given; using %d", setup.Anneal.Seed)
	}

	m := metrics.New()
	metricsFile := a.v.GetString("metrics-file")
	defer func() {
		if err := m.WriteFile(metricsFile); err != nil {
			cliutil.Warnf(a.stderr, a.quiet(), "metrics: %v", err)
		}
	}()

	popt := pretty.DefaultOptions
	popt.Ruler = !a.v.GetBool("no-ruler")
	in, done := writers.StartTemplateWriter(a.stdout, a.format(), writers.TemplateOptions{
		Header:  a.v.GetBool("header"),
		Verbose: a.v.GetBool("verbose"),
		Pretty:  popt,
	}, 16)

	job := batch.Job{
		Regions:   setup.Regions,
		Evaluator: setup.Evaluator,
		Options:   setup.Anneal,
		Workers:   p.Workers,
		Logger:    a.log,
	}
	began := time.Now()
	run, converged := 0, 0
	var runErr error
	for res, err := range batch.Generate(cmd.Context(), p.Count, job) {
		if res.Template.Seq.Len() > 0 {
			m.ObserveRun(res)
			in <- output.ToAPITemplate(run, res, setup.Oracle)
			if res.Converged() {
				converged++
			}
		}
		if err != nil {
			runErr = err
			break
		}
		run++
	}
	close(in)
	m.ObserveBatch(time.Since(began))
	writeErr := <-done

	a.log.Info("batch finished", "runs", run, "converged", converged, "elapsed", time.Since(began).Round(time.Millisecond))
	switch {
	case runErr != nil:
		return runErr
	case writeErr != nil:
		return writeErr
	case a.v.GetBool("require-converged") && converged == 0:
		return errNotConverged
	}
	return nil
}
