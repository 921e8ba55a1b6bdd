// core/rules/rule.go
package rules

import "pcrgen/core/layout"

// Outcome is one rule's verdict: a non-negative penalty and a short note.
type Outcome struct {
	Penalty float64
	Note    string
}

// Rule scores a template. Implementations are stateless, deterministic and
// safe for concurrent use.
type Rule interface {
	Name() string
	Weight() float64
	Evaluate(t layout.Template, cfg Config) Outcome
}

type base struct {
	name   string
	weight float64
}

func (b base) Name() string    { return b.name }
func (b base) Weight() float64 { return b.weight }

// Region names a projection of the template.
type Region int

const (
	RegionTemplate Region = iota
	RegionFwdPrimer
	RegionRevPrimer
	RegionProbe
)

func (r Region) String() string {
	switch r {
	case RegionTemplate:
		return "template"
	case RegionFwdPrimer:
		return "fwd primer"
	case RegionRevPrimer:
		return "rev primer"
	case RegionProbe:
		return "probe"
	default:
		return "unknown"
	}
}

func (r Region) extract(t layout.Template) string {
	switch r {
	case RegionFwdPrimer:
		return t.FwdPrimer()
	case RegionRevPrimer:
		return t.RevPrimer()
	case RegionProbe:
		return t.Probe()
	default:
		return t.Fwd()
	}
}
