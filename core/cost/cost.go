// core/cost/cost.go
package cost

import (
	"fmt"
	"strings"

	"pcrgen/core/layout"
	"pcrgen/core/rules"
)

// Entry is one rule's contribution to a Report.
type Entry struct {
	Name    string  `json:"name"`
	Weight  float64 `json:"weight"`
	Penalty float64 `json:"penalty"`
	Cost    float64 `json:"cost"` // Weight * Penalty
	Note    string  `json:"note,omitempty"`
}

// Report is the outcome of one evaluation. Entries keep rule order and sum
// to Total.
type Report struct {
	Total   float64 `json:"total"`
	Entries []Entry `json:"rules"`
}

// Compliant reports a zero-cost design.
func (r Report) Compliant() bool { return r.Total == 0 }

// Lookup finds a rule's entry by name.
func (r Report) Lookup(name string) (Entry, bool) {
	for _, e := range r.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Failing returns entries with a positive cost.
func (r Report) Failing() []Entry {
	var out []Entry
	for _, e := range r.Entries {
		if e.Cost > 0 {
			out = append(out, e)
		}
	}
	return out
}

// Info renders one "cost name note" line per failing rule, or per rule when
// verbose.
func (r Report) Info(verbose bool) string {
	var b strings.Builder
	for _, e := range r.Entries {
		if e.Cost > 0 || verbose {
			fmt.Fprintf(&b, "%.1f %s %s\n", e.Cost, e.Name, e.Note)
		}
	}
	return b.String()
}

// Evaluator sums weighted rule penalties. It holds no mutable state and may
// be shared between goroutines.
type Evaluator struct {
	cfg   rules.Config
	rules []rules.Rule
}

// NewEvaluator validates cfg and the rule weights.
func NewEvaluator(cfg rules.Config, rs []rules.Rule) (*Evaluator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for _, r := range rs {
		if r.Weight() < 0 {
			return nil, &rules.ConfigError{
				Field:  "weights." + r.Name(),
				Reason: fmt.Sprintf("must be >= 0, got %v", r.Weight()),
			}
		}
	}
	own := make([]rules.Rule, len(rs))
	copy(own, rs)
	return &Evaluator{cfg: cfg, rules: own}, nil
}

func (e *Evaluator) Config() rules.Config { return e.cfg }
func (e *Evaluator) Rules() []rules.Rule  { return e.rules }

// Evaluate scores t with every rule.
func (e *Evaluator) Evaluate(t layout.Template) Report {
	rep := Report{Entries: make([]Entry, 0, len(e.rules))}
	for _, r := range e.rules {
		o := r.Evaluate(t, e.cfg)
		c := r.Weight() * o.Penalty
		rep.Entries = append(rep.Entries, Entry{
			Name:    r.Name(),
			Weight:  r.Weight(),
			Penalty: o.Penalty,
			Cost:    c,
			Note:    o.Note,
		})
		rep.Total += c
	}
	return rep
}

// Cost is Evaluate(t).Total.
func (e *Evaluator) Cost(t layout.Template) float64 { return e.Evaluate(t).Total }
