// core/batch/generate.go
package batch

import (
	"context"
	"iter"
	"runtime"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"

	"pcrgen/core/anneal"
	"pcrgen/core/cost"
	"pcrgen/core/layout"
	"pcrgen/core/oligo"
)

// Job describes a batch of independent annealing runs sharing one layout,
// evaluator and schedule. Options.Seed is the base seed.
type Job struct {
	Regions   layout.Regions
	Evaluator *cost.Evaluator
	Options   anneal.Options
	Workers   int // <= 0 means GOMAXPROCS
	Logger    logr.Logger
}

// RunSeed derives the seed of run i from the base seed (splitmix64 step), so
// each run is reproducible on its own.
func RunSeed(base int64, i int) int64 {
	z := uint64(base) + uint64(i+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}

type slot struct {
	res anneal.Result
	err error
}

// Generate runs count annealers on a bounded worker pool and yields their
// results in run order. The sequence is lazy and restartable: every range
// re-runs the batch with the same seeds. Stopping early cancels outstanding
// runs. The first failed or cancelled run is yielded with its error and ends
// the sequence.
func Generate(ctx context.Context, count int, job Job) iter.Seq2[anneal.Result, error] {
	return func(yield func(anneal.Result, error) bool) {
		if count <= 0 {
			return
		}
		log := job.Logger
		if log.GetSink() == nil {
			log = logr.Discard()
		}
		workers := job.Workers
		if workers <= 0 {
			workers = runtime.GOMAXPROCS(0)
		}

		runCtx, cancel := context.WithCancel(ctx)
		g, gctx := errgroup.WithContext(runCtx)
		g.SetLimit(workers)

		slots := make([]chan slot, count)
		for i := range slots {
			slots[i] = make(chan slot, 1)
		}

		launched := make(chan struct{})
		go func() {
			defer close(launched)
			for i := 0; i < count; i++ {
				if gctx.Err() != nil {
					// Unlaunched runs report why the batch stopped.
					for ; i < count; i++ {
						slots[i] <- slot{anneal.Result{Status: anneal.Cancelled}, context.Cause(gctx)}
					}
					return
				}
				g.Go(func() error {
					res, err := runOne(gctx, job, i, log)
					slots[i] <- slot{res, err}
					return err
				})
			}
		}()
		defer func() {
			cancel()
			<-launched
			_ = g.Wait()
		}()

		for i := 0; i < count; i++ {
			s := <-slots[i]
			if !yield(s.res, s.err) || s.err != nil {
				return
			}
		}
	}
}

func runOne(ctx context.Context, job Job, i int, log logr.Logger) (anneal.Result, error) {
	opts := job.Options
	opts.Seed = RunSeed(job.Options.Seed, i)
	opts.Logger = log.WithValues("run", i)
	a, err := anneal.New(job.Evaluator, job.Regions, opts)
	if err != nil {
		return anneal.Result{}, err
	}
	res, err := a.Run(ctx, oligo.Sequence{})
	if err == nil {
		log.V(1).Info("run finished", "run", i, "status", res.Status, "cost", res.Report.Total, "iterations", res.Iterations)
	}
	return res, err
}

// GenerateAll drains Generate. On error it returns the results gathered so
// far together with the error.
func GenerateAll(ctx context.Context, count int, job Job) ([]anneal.Result, error) {
	out := make([]anneal.Result, 0, max(count, 0))
	for res, err := range Generate(ctx, count, job) {
		if err != nil {
			return out, err
		}
		out = append(out, res)
	}
	return out, nil
}
