// core/anneal/options.go
package anneal

import (
	"fmt"
	"math"

	"github.com/go-logr/logr"

	"pcrgen/core/rules"
)

// Options controls one annealing run.
type Options struct {
	MaxIterations int   // budget; the run stops as Exhausted when reached
	Mutations     int   // positions redrawn per proposal
	Seed          int64 // RNG seed; equal seeds give equal runs

	InitialTemperature float64
	Cooling            float64 // geometric factor applied every CoolEvery steps
	CoolEvery          int
	MinTemperature     float64

	TargetCost float64 // Converged once best cost <= TargetCost
	StallLimit int     // stop after this many steps without a new best (0 = off)

	Logger logr.Logger
}

// DefaultOptions returns the stock schedule: 10000 steps cooling from 2.0.
func DefaultOptions() Options {
	return Options{
		MaxIterations:      10000,
		Mutations:          1,
		InitialTemperature: 2.0,
		Cooling:            0.9995,
		CoolEvery:          1,
		MinTemperature:     1e-3,
		Logger:             logr.Discard(),
	}
}

// Validate reports the first invalid option as a *rules.ConfigError.
func (o Options) Validate() error {
	bad := func(field, format string, args ...any) error {
		return &rules.ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
	}
	switch {
	case o.MaxIterations < 0:
		return bad("max_iterations", "must be >= 0, got %d", o.MaxIterations)
	case o.Mutations < 1:
		return bad("mutations", "must be >= 1, got %d", o.Mutations)
	case !(o.InitialTemperature > 0) || math.IsInf(o.InitialTemperature, 0):
		return bad("initial_temperature", "must be > 0, got %v", o.InitialTemperature)
	case !(o.Cooling > 0 && o.Cooling <= 1):
		return bad("cooling", "must be in (0,1], got %v", o.Cooling)
	case o.CoolEvery < 1:
		return bad("cool_every", "must be >= 1, got %d", o.CoolEvery)
	case o.MinTemperature < 0 || math.IsNaN(o.MinTemperature):
		return bad("min_temperature", "must be >= 0, got %v", o.MinTemperature)
	case o.TargetCost < 0 || math.IsNaN(o.TargetCost):
		return bad("target_cost", "must be >= 0, got %v", o.TargetCost)
	case o.StallLimit < 0:
		return bad("stall_limit", "must be >= 0, got %d", o.StallLimit)
	}
	return nil
}
