// core/anneal/anneal.go
package anneal

import (
	"context"
	"math"
	"math/rand"

	"github.com/go-logr/logr"

	"pcrgen/core/cost"
	"pcrgen/core/layout"
	"pcrgen/core/mutate"
	"pcrgen/core/oligo"
)

// Log verbosity used by the annealer.
const (
	debugLevel = 1
	traceLevel = 2
)

// State is the mutable state of one run. It is never shared between runs.
type State struct {
	Current     layout.Template
	CurrentCost float64
	Best        layout.Template
	BestReport  cost.Report
	Temperature float64
	Iteration   int
	Accepted    int
	LastImprove int
	Status      Status
}

// Result is what a finished run hands back: the best template seen and how
// the run ended.
type Result struct {
	Template    layout.Template
	Report      cost.Report
	Status      Status
	Iterations  int
	Accepted    int
	Temperature float64
	Seed        int64
	Stalled     bool
}

func (r Result) Converged() bool { return r.Status == Converged }

// Annealer runs simulated annealing over one fixed layout.
type Annealer struct {
	eval    *cost.Evaluator
	regions layout.Regions
	opts    Options
}

// New validates opts. The evaluator is shared read-only.
func New(eval *cost.Evaluator, regions layout.Regions, opts Options) (*Annealer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Logger.GetSink() == nil {
		opts.Logger = logr.Discard()
	}
	return &Annealer{eval: eval, regions: regions, opts: opts}, nil
}

func (a *Annealer) Options() Options { return a.opts }

// Run anneals from start, or from a random sequence when start is empty.
// Non-convergence is a normal Exhausted result. When ctx ends first the best
// result so far comes back with Status Cancelled and ctx.Err().
func (a *Annealer) Run(ctx context.Context, start oligo.Sequence) (Result, error) {
	rng := rand.New(rand.NewSource(a.opts.Seed))
	log := a.opts.Logger.WithValues("seed", a.opts.Seed)

	if start.Len() == 0 {
		start = oligo.Random(rng, a.regions.SeqLength)
	}
	tpl, err := layout.New(start, a.regions)
	if err != nil {
		return Result{}, err
	}

	st := a.init(tpl)
	log.V(debugLevel).Info("annealing started", "cost", st.CurrentCost, "temperature", st.Temperature)

	for !st.Status.Terminal() {
		if err := ctx.Err(); err != nil {
			st.Status = Cancelled
			log.V(debugLevel).Info("annealing cancelled", "iteration", st.Iteration, "bestCost", st.BestReport.Total)
			return a.result(st, false), err
		}
		a.step(&st, rng, log)
	}

	stalled := st.Status == Exhausted && st.Iteration < a.opts.MaxIterations
	log.V(debugLevel).Info("annealing finished",
		"status", st.Status, "iterations", st.Iteration, "bestCost", st.BestReport.Total, "accepted", st.Accepted)
	return a.result(st, stalled), nil
}

func (a *Annealer) init(tpl layout.Template) State {
	rep := a.eval.Evaluate(tpl)
	st := State{
		Current:     tpl,
		CurrentCost: rep.Total,
		Best:        tpl,
		BestReport:  rep,
		Temperature: a.opts.InitialTemperature,
		Status:      Iterating,
	}
	a.settle(&st)
	return st
}

// step performs one propose → evaluate → accept → cool cycle.
func (a *Annealer) step(st *State, rng *rand.Rand, log logr.Logger) {
	cand := st.Current.With(mutate.Mutate(st.Current.Seq, a.opts.Mutations, rng))
	rep := a.eval.Evaluate(cand)

	if accept(st.CurrentCost, rep.Total, st.Temperature, rng) {
		st.Current = cand
		st.CurrentCost = rep.Total
		st.Accepted++
	}
	if rep.Total < st.BestReport.Total {
		st.Best = cand
		st.BestReport = rep
		st.LastImprove = st.Iteration + 1
		log.V(debugLevel).Info("cost reduced", "cost", rep.Total, "iteration", st.Iteration)
		if log.V(traceLevel).Enabled() {
			log.V(traceLevel).Info("rule breakdown", "rules", rep.Info(false))
		}
	}

	st.Iteration++
	if st.Iteration%a.opts.CoolEvery == 0 {
		st.Temperature = math.Max(st.Temperature*a.opts.Cooling, a.opts.MinTemperature)
	}
	a.settle(st)
}

// settle moves st to a terminal status when one applies.
func (a *Annealer) settle(st *State) {
	switch {
	case st.BestReport.Total <= a.opts.TargetCost:
		st.Status = Converged
	case st.Iteration >= a.opts.MaxIterations:
		st.Status = Exhausted
	case a.opts.StallLimit > 0 && st.Iteration-st.LastImprove >= a.opts.StallLimit:
		st.Status = Exhausted
	}
}

func (a *Annealer) result(st State, stalled bool) Result {
	return Result{
		Template:    st.Best,
		Report:      st.BestReport,
		Status:      st.Status,
		Iterations:  st.Iteration,
		Accepted:    st.Accepted,
		Temperature: st.Temperature,
		Seed:        a.opts.Seed,
		Stalled:     stalled,
	}
}

// accept is the Metropolis criterion. Improvements and ties always pass;
// a worse candidate passes with probability exp(-Δ/T).
func accept(cur, cand, temp float64, rng *rand.Rand) bool {
	if cand <= cur {
		return true
	}
	if temp <= 0 {
		return false
	}
	return rng.Float64() < math.Exp(-(cand-cur)/temp)
}
