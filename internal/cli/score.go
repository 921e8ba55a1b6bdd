package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pcrgen/core/layout"
	"pcrgen/core/oligo"
	"pcrgen/internal/cliutil"
	"pcrgen/internal/config"
	"pcrgen/internal/fasta"
	"pcrgen/internal/logging"
	"pcrgen/internal/output"
	"pcrgen/internal/pretty"
	"pcrgen/internal/writers"
)

func newScoreCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score SEQ|FILE...",
		Short: "Evaluate existing templates against the rules",
		Long: `Evaluate existing templates against the design rules.

Each argument is either a literal sequence or a FASTA file (gzip and "-" for
stdin are accepted; files without headers hold one sequence per line). The
layout comes from --primer-length, --probe-length and --probe-gap applied to
each sequence's own length.`,
		Example: `  pcrgen score ACGT...
  pcrgen score designs.fa.gz -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.score(args)
		},
	}
	fs := cmd.Flags()
	config.AddLayoutFlags(fs)
	config.AddRuleFlags(fs)
	config.AddThermoFlags(fs)
	fs.BoolP("verbose", "v", false, "text output: list every rule, not only failing ones")
	fs.Bool("header", true, "tsv output: print a header row")
	return cmd
}

func (a *app) score(args []string) error {
	p, err := a.params()
	if err != nil {
		return err
	}
	setup, err := p.Build(a.log)
	if err != nil {
		return err
	}
	inputs, err := cliutil.ClassifyPositionals(args)
	if err != nil {
		return usageError{err}
	}

	var recs []fasta.Record
	for _, in := range inputs {
		if in.Path == "" {
			recs = append(recs, fasta.Record{ID: fmt.Sprintf("arg%d", len(recs)+1), Seq: in.Literal})
			continue
		}
		got, err := fasta.ReadFile(in.Path)
		if err != nil {
			return err
		}
		if len(got) == 0 {
			cliutil.Warnf(a.stderr, a.quiet(), "%s: no sequences", in.Path)
		}
		recs = append(recs, got...)
	}

	popt := pretty.DefaultOptions
	popt.Header = true
	out, done := writers.StartTemplateWriter(a.stdout, a.format(), writers.TemplateOptions{
		Header:  a.v.GetBool("header"),
		Verbose: a.v.GetBool("verbose"),
		Pretty:  popt,
	}, 16)

	var scoreErr error
	for i, rec := range recs {
		tpl, err := templateFor(rec, p)
		if err != nil {
			scoreErr = usageError{fmt.Errorf("%s: %w", rec.ID, err)}
			break
		}
		rep := setup.Evaluator.Evaluate(tpl)
		v := output.ToAPIScored(tpl, rep, setup.Oracle)
		v.Run = i
		v.SourceID = rec.ID
		a.log.V(logging.DEBUG).Info("scored", "id", rec.ID, "cost", rep.Total)
		out <- v
	}
	close(out)
	if err := <-done; err != nil && scoreErr == nil {
		scoreErr = err
	}
	return scoreErr
}

// templateFor lays the configured primer and probe sites over a sequence of
// any length.
func templateFor(rec fasta.Record, p config.Params) (layout.Template, error) {
	seq, err := oligo.Parse(rec.Seq)
	if err != nil {
		return layout.Template{}, err
	}
	r, err := layout.DeriveRegions(seq.Len(), p.PrimerLength, p.ProbeLength, p.ProbeGap)
	if err != nil {
		return layout.Template{}, err
	}
	return layout.New(seq, r)
}
