// Package cli is the cobra command tree for pcrgen.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pcrgen/internal/appshell"
	"pcrgen/internal/config"
	"pcrgen/internal/logging"
	"pcrgen/internal/output"
)

// Version is stamped at build time.
var Version = "dev"

// errNotConverged ends generate --require-converged without a compliant
// template.
var errNotConverged = errors.New("no template reached the target cost")

// usageError marks bad input that is not a settings error.
type usageError struct{ error }

func (e usageError) Unwrap() error { return e.error }

// app is the state shared by one command invocation.
type app struct {
	stdout, stderr io.Writer

	v   *viper.Viper
	log logr.Logger

	started bool // a command's RunE was entered
}

// newRoot builds the command tree writing to stdout and stderr.
func newRoot(stdout, stderr io.Writer) (*cobra.Command, *app) {
	a := &app{stdout: stdout, stderr: stderr, log: logr.Discard()}

	root := &cobra.Command{
		Use:   "pcrgen",
		Short: "Design synthetic PCR templates with primer and probe sites",
		Long: `Design synthetic DNA templates for probe-based PCR.

pcrgen searches for a template that holds a forward primer site, a probe
site and a reverse primer site and scores every candidate against a set of
weighted design rules (GC bands, melting temperatures, runs, clamps,
self-complementarity). Simulated annealing drives the total cost to zero.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.String("config", "", "YAML config file")
	pf.String("log-level", "info", "log level: error, warn, info, debug, trace")
	pf.StringP("output", "o", output.FormatText, "output format: text, json, jsonl, yaml, fasta, tsv")
	pf.BoolP("quiet", "q", false, "suppress warnings")

	root.AddCommand(
		newGenerateCommand(a),
		newAnalyzeCommand(a),
		newScoreCommand(a),
		newRulesCommand(a),
	)
	return root, a
}

// setup reads the config file, binds the executing command's flags and
// builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	file, _ := cmd.Flags().GetString("config")
	v, err := config.New(file)
	if err != nil {
		return usageError{err}
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	a.v = v

	log, err := logging.New(a.stderr, v.GetString("log-level"))
	if err != nil {
		return usageError{err}
	}
	a.log = log.WithName(cmd.Name())
	return nil
}

// params loads the bound settings.
func (a *app) params() (config.Params, error) {
	a.started = true
	return config.Load(a.v)
}

func (a *app) format() string { return a.v.GetString("output") }

func (a *app) quiet() bool { return a.v.GetBool("quiet") }

// Run executes argv and maps the outcome to an exit code.
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	root, a := newRoot(stdout, stderr)
	root.SetArgs(argv)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return appshell.ExitOK
	}
	fmt.Fprintf(stderr, "pcrgen: %v\n", err)
	return exitCode(err, a.started)
}

func exitCode(err error, started bool) int {
	var ue usageError
	switch {
	case errors.Is(err, errNotConverged):
		return appshell.ExitNotConverged
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return appshell.ExitCancelled
	case config.IsUsage(err), errors.As(err, &ue):
		return appshell.ExitUsage
	case !started:
		// cobra failed before a command ran: unknown command or bad flags
		return appshell.ExitUsage
	}
	return appshell.ExitRuntime
}
